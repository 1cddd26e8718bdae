package service

import (
	"context"
	"strings"

	"github.com/forgo/gambit/internal/model"
)

const (
	// Page sizes for card listing
	defaultCardPageSize = 50
	maxCardPageSize     = 200
)

// CardRepository defines the interface for card storage
type CardRepository interface {
	Mint(ctx context.Context, card *model.Card) error
	GetByToken(ctx context.Context, registryID string, tokenID int) (*model.Card, error)
	ListByRegistry(ctx context.Context, registryID, holderID string, afterToken, limit int) ([]*model.Card, error)
	Transfer(ctx context.Context, cardID, fromUserID, toUserID string) error
}

// ProvenanceRepository defines the interface for provenance reads
type ProvenanceRepository interface {
	ListByCard(ctx context.Context, cardID string) ([]*model.ProvenanceEntry, error)
}

// CardService handles card business logic: minting, lookup, transfer, and
// provenance
type CardService struct {
	cardRepo       CardRepository
	registryRepo   RegistryRepository
	provenanceRepo ProvenanceRepository
	userRepo       UserRepository
}

// CardServiceConfig holds configuration for the card service
type CardServiceConfig struct {
	CardRepo       CardRepository
	RegistryRepo   RegistryRepository
	ProvenanceRepo ProvenanceRepository
	UserRepo       UserRepository
}

// NewCardService creates a new card service
func NewCardService(cfg CardServiceConfig) *CardService {
	return &CardService{
		cardRepo:       cfg.CardRepo,
		registryRepo:   cfg.RegistryRepo,
		provenanceRepo: cfg.ProvenanceRepo,
		userRepo:       cfg.UserRepo,
	}
}

// MintCard mints a new card into a registry. Only the registry owner may
// mint, and the minted card's holder starts as the owner. Token IDs are
// assigned sequentially by the repository transaction.
func (s *CardService) MintCard(ctx context.Context, registryID, callerID string, req *model.MintCardRequest) (*model.Card, error) {
	registry, err := s.registryRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrRegistryNotFound
	}
	if registry.OwnerID != callerID {
		return nil, ErrNotRegistryOwner
	}

	card := &model.Card{
		RegistryID:  registry.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Attack:      req.Attack,
		Defense:     req.Defense,
		HolderID:    callerID,
	}

	if err := s.cardRepo.Mint(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// GetCard retrieves a card by token ID. Token IDs outside 1..card_count are
// reported as not found rather than as errors.
func (s *CardService) GetCard(ctx context.Context, registryID string, tokenID int) (*model.Card, error) {
	registry, err := s.registryRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrRegistryNotFound
	}

	if tokenID < 1 || tokenID > registry.CardCount {
		return nil, ErrCardNotFound
	}

	card, err := s.cardRepo.GetByToken(ctx, registry.ID, tokenID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// ListCards retrieves a page of a registry's cards ordered by token ID.
// afterToken is an exclusive cursor; pass 0 for the first page. A non-empty
// holderID restricts the page to cards that user currently holds. The returned
// bool reports whether more cards remain after the page.
func (s *CardService) ListCards(ctx context.Context, registryID, holderID string, afterToken, limit int) ([]*model.Card, bool, error) {
	registry, err := s.registryRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, false, err
	}
	if registry == nil {
		return nil, false, ErrRegistryNotFound
	}

	if limit <= 0 {
		limit = defaultCardPageSize
	}
	if limit > maxCardPageSize {
		limit = maxCardPageSize
	}
	if afterToken < 0 {
		afterToken = 0
	}

	// Fetch one extra row to detect whether another page exists
	cards, err := s.cardRepo.ListByRegistry(ctx, registry.ID, holderID, afterToken, limit+1)
	if err != nil {
		return nil, false, err
	}

	hasMore := false
	if len(cards) > limit {
		hasMore = true
		cards = cards[:limit]
	}

	return cards, hasMore, nil
}

// TransferCard moves a card to another user. Only the current holder may
// transfer, and transferring a card to its current holder is rejected.
func (s *CardService) TransferCard(ctx context.Context, registryID string, tokenID int, callerID, toUserID string) (*model.Card, error) {
	card, err := s.GetCard(ctx, registryID, tokenID)
	if err != nil {
		return nil, err
	}

	if card.HolderID != callerID {
		return nil, ErrNotCardHolder
	}
	if toUserID == card.HolderID {
		return nil, ErrTransferToSelf
	}

	recipient, err := s.userRepo.GetByID(ctx, toUserID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	if err := s.cardRepo.Transfer(ctx, card.ID, card.HolderID, recipient.ID); err != nil {
		return nil, err
	}

	card.HolderID = recipient.ID
	return card, nil
}

// GetProvenance returns the custody history of a card, oldest entry first.
// The first entry is always the mint.
func (s *CardService) GetProvenance(ctx context.Context, registryID string, tokenID int) ([]*model.ProvenanceEntry, error) {
	card, err := s.GetCard(ctx, registryID, tokenID)
	if err != nil {
		return nil, err
	}

	return s.provenanceRepo.ListByCard(ctx, card.ID)
}
