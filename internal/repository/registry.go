package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgo/gambit/internal/database"
	"github.com/forgo/gambit/internal/model"
)

// RegistryRepository handles card registry data access
type RegistryRepository struct {
	db database.Database
}

// NewRegistryRepository creates a new registry repository
func NewRegistryRepository(db database.Database) *RegistryRepository {
	return &RegistryRepository{db: db}
}

// Create creates a new registry with a zero card count
func (r *RegistryRepository) Create(ctx context.Context, registry *model.Registry) error {
	// Build query dynamically to avoid NULL values
	fields := []string{
		"name: $name",
		"owner: type::record($owner)",
		"card_count: 0",
		"created_on: time::now()",
		"updated_on: time::now()",
	}
	vars := map[string]interface{}{
		"name":  registry.Name,
		"owner": registry.OwnerID,
	}

	if registry.Description != "" {
		fields = append(fields, "description: $description")
		vars["description"] = registry.Description
	}

	query := fmt.Sprintf("CREATE registry CONTENT { %s }", strings.Join(fields, ", "))

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to extract created registry: %w", err)
	}

	registry.ID = created.ID
	registry.CardCount = 0
	registry.CreatedOn = created.CreatedOn
	registry.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a registry by ID
func (r *RegistryRepository) GetByID(ctx context.Context, id string) (*model.Registry, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get registry: %w", err)
	}

	return r.parseRegistry(result)
}

// ListByOwner retrieves all registries owned by a user, oldest first
func (r *RegistryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.Registry, error) {
	query := `SELECT * FROM registry WHERE owner = type::record($owner) ORDER BY created_on ASC`
	vars := map[string]interface{}{"owner": ownerID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list registries: %w", err)
	}

	return r.parseRegistries(result)
}

// CountByOwner counts the registries owned by a user
func (r *RegistryRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT count() AS count FROM registry WHERE owner = type::record($owner) GROUP ALL`
	vars := map[string]interface{}{"owner": ownerID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

func (r *RegistryRepository) parseRegistry(result interface{}) (*model.Registry, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	registry := &model.Registry{
		ID:          extractRecordID(data["id"]),
		Name:        getString(data, "name"),
		Description: getString(data, "description"),
		OwnerID:     extractRecordID(data["owner"]),
		CardCount:   getInt(data, "card_count"),
	}

	if t := getTime(data, "created_on"); t != nil {
		registry.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		registry.UpdatedOn = *t
	}

	return registry, nil
}

func (r *RegistryRepository) parseRegistries(result []interface{}) ([]*model.Registry, error) {
	registries := make([]*model.Registry, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					registry, err := r.parseRegistry(item)
					if err != nil {
						continue
					}
					registries = append(registries, registry)
				}
			}
		}
	}

	return registries, nil
}
