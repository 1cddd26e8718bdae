package service

import (
	"context"
	"strings"

	"github.com/forgo/gambit/internal/model"
)

// RegistryRepository defines the interface for registry storage
type RegistryRepository interface {
	Create(ctx context.Context, registry *model.Registry) error
	GetByID(ctx context.Context, id string) (*model.Registry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Registry, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

// RegistryService handles card registry business logic
type RegistryService struct {
	registryRepo RegistryRepository
}

// RegistryServiceConfig holds configuration for the registry service
type RegistryServiceConfig struct {
	RegistryRepo RegistryRepository
}

// NewRegistryService creates a new registry service
func NewRegistryService(cfg RegistryServiceConfig) *RegistryService {
	return &RegistryService{
		registryRepo: cfg.RegistryRepo,
	}
}

// CreateRegistry creates a new registry owned by the calling user.
// Ownership is fixed at creation and never changes.
func (s *RegistryService) CreateRegistry(ctx context.Context, ownerID string, req *model.CreateRegistryRequest) (*model.Registry, error) {
	// Check registry limit for user
	count, err := s.registryRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= model.MaxRegistriesPerUser {
		return nil, ErrRegistryLimitReached
	}

	registry := &model.Registry{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		OwnerID:     ownerID,
	}

	if err := s.registryRepo.Create(ctx, registry); err != nil {
		return nil, err
	}

	return registry, nil
}

// GetRegistry retrieves a registry by ID
func (s *RegistryService) GetRegistry(ctx context.Context, registryID string) (*model.Registry, error) {
	registry, err := s.registryRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrRegistryNotFound
	}
	return registry, nil
}

// ListRegistries retrieves all registries owned by the calling user
func (s *RegistryService) ListRegistries(ctx context.Context, ownerID string) ([]*model.Registry, error) {
	return s.registryRepo.ListByOwner(ctx, ownerID)
}
