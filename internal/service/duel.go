package service

import (
	"context"
	"fmt"

	"github.com/forgo/gambit/internal/model"
)

// DuelService resolves duels between two cards in a registry. Duels are pure
// reads: any authenticated caller may run one and nothing is persisted.
type DuelService struct {
	cardRepo     CardRepository
	registryRepo RegistryRepository
}

// DuelServiceConfig holds configuration for the duel service
type DuelServiceConfig struct {
	CardRepo     CardRepository
	RegistryRepo RegistryRepository
}

// NewDuelService creates a new duel service
func NewDuelService(cfg DuelServiceConfig) *DuelService {
	return &DuelService{
		cardRepo:     cfg.CardRepo,
		registryRepo: cfg.RegistryRepo,
	}
}

// ResolveDuel fetches both cards and compares their power. The card with the
// higher attack + defense total wins; equal powers tie. A missing card is
// reported as an error naming its token, distinct from a tie.
func (s *DuelService) ResolveDuel(ctx context.Context, registryID string, req *model.DuelRequest) (*model.DuelResult, error) {
	registry, err := s.registryRepo.GetByID(ctx, registryID)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrRegistryNotFound
	}

	cardOne, err := s.fetchDuelCard(ctx, registry, req.CardOneTokenID)
	if err != nil {
		return nil, err
	}
	cardTwo, err := s.fetchDuelCard(ctx, registry, req.CardTwoTokenID)
	if err != nil {
		return nil, err
	}

	result := &model.DuelResult{
		CardOne: model.DuelCard{TokenID: cardOne.TokenID, Name: cardOne.Name, Power: cardOne.Power()},
		CardTwo: model.DuelCard{TokenID: cardTwo.TokenID, Name: cardTwo.Name, Power: cardTwo.Power()},
	}

	switch {
	case result.CardOne.Power > result.CardTwo.Power:
		result.Outcome = model.DuelOutcomeCardOne
		result.WinnerTokenID = &cardOne.TokenID
	case result.CardTwo.Power > result.CardOne.Power:
		result.Outcome = model.DuelOutcomeCardTwo
		result.WinnerTokenID = &cardTwo.TokenID
	default:
		result.Outcome = model.DuelOutcomeTie
	}

	return result, nil
}

func (s *DuelService) fetchDuelCard(ctx context.Context, registry *model.Registry, tokenID int) (*model.Card, error) {
	if tokenID >= 1 && tokenID <= registry.CardCount {
		card, err := s.cardRepo.GetByToken(ctx, registry.ID, tokenID)
		if err != nil {
			return nil, err
		}
		if card != nil {
			return card, nil
		}
	}
	return nil, fmt.Errorf("%w: token %d", ErrDuelCardNotFound, tokenID)
}
