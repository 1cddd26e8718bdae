// Package tests contains end-to-end acceptance tests for the Gambit API.
package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/forgo/gambit/internal/model"
	"github.com/forgo/gambit/internal/repository"
	"github.com/forgo/gambit/internal/service"
	"github.com/forgo/gambit/internal/testing/fixtures"
	"github.com/forgo/gambit/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Duels
DOMAIN: Duel

ACCEPTANCE CRITERIA:
===================

AC-DUEL-001: Higher Power Wins
  GIVEN two cards in a registry
  WHEN they duel
  THEN the card with the higher attack + defense total wins
  AND the result names the winning token

AC-DUEL-002: Equal Power Ties
  GIVEN two cards with equal attack + defense totals
  WHEN they duel
  THEN the result is a tie with no winner

AC-DUEL-003: Duels Are Read-Only
  GIVEN any two cards
  WHEN they duel
  THEN neither card changes
  AND nothing is persisted

AC-DUEL-004: Duels Are Permissionless
  GIVEN cards held by other users
  WHEN any user runs a duel over them
  THEN the duel resolves normally

AC-DUEL-005: Missing Duel Card
  GIVEN a token ID outside the registry's sequence
  WHEN a duel names it
  THEN the request fails with an error naming the missing token

AC-DUEL-006: Duel in Missing Registry
  GIVEN a registry ID that does not exist
  WHEN a duel is requested
  THEN the request fails with a not found error
*/

// createDuelService creates a DuelService backed by the test database
func createDuelService(t *testing.T, tdb *testdb.TestDB) *service.DuelService {
	t.Helper()

	return service.NewDuelService(service.DuelServiceConfig{
		CardRepo:     repository.NewCardRepository(tdb.DB),
		RegistryRepo: repository.NewRegistryRepository(tdb.DB),
	})
}

func TestDuels_HigherPowerWins(t *testing.T) {
	// AC-DUEL-001: Higher Power Wins
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	duelService := createDuelService(t, tdb)
	ctx := context.Background()

	owner := f.CreateUser(t)
	registry := f.CreateRegistry(t, owner)

	strong := f.MintCard(t, registry, fixtures.WithCardName("Strong"), fixtures.WithCardStats(120, 80))
	weak := f.MintCard(t, registry, fixtures.WithCardName("Weak"), fixtures.WithCardStats(40, 30))

	result, err := duelService.ResolveDuel(ctx, registry.ID, &model.DuelRequest{
		CardOneTokenID: strong.TokenID,
		CardTwoTokenID: weak.TokenID,
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, model.DuelOutcomeCardOne, result.Outcome)
	require.NotNil(t, result.WinnerTokenID)
	assert.Equal(t, strong.TokenID, *result.WinnerTokenID)
	assert.Equal(t, 200, result.CardOne.Power)
	assert.Equal(t, 70, result.CardTwo.Power)
	assert.Equal(t, "Strong", result.CardOne.Name)
	assert.Equal(t, "Weak", result.CardTwo.Name)
}

func TestDuels_SecondCardCanWin(t *testing.T) {
	// AC-DUEL-001 (variation): Order in the request does not decide the winner
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	duelService := createDuelService(t, tdb)
	ctx := context.Background()

	owner := f.CreateUser(t)
	registry := f.CreateRegistry(t, owner)

	weak := f.MintCard(t, registry, fixtures.WithCardStats(10, 10))
	strong := f.MintCard(t, registry, fixtures.WithCardStats(90, 90))

	result, err := duelService.ResolveDuel(ctx, registry.ID, &model.DuelRequest{
		CardOneTokenID: weak.TokenID,
		CardTwoTokenID: strong.TokenID,
	})

	require.NoError(t, err)
	assert.Equal(t, model.DuelOutcomeCardTwo, result.Outcome)
	require.NotNil(t, result.WinnerTokenID)
	assert.Equal(t, strong.TokenID, *result.WinnerTokenID)
}

func TestDuels_EqualPowerTies(t *testing.T) {
	// AC-DUEL-002: Equal Power Ties
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	duelService := createDuelService(t, tdb)
	ctx := context.Background()

	owner := f.CreateUser(t)
	registry := f.CreateRegistry(t, owner)

	// Different stat splits, same total
	aggro := f.MintCard(t, registry, fixtures.WithCardStats(150, 50))
	tank := f.MintCard(t, registry, fixtures.WithCardStats(50, 150))

	result, err := duelService.ResolveDuel(ctx, registry.ID, &model.DuelRequest{
		CardOneTokenID: aggro.TokenID,
		CardTwoTokenID: tank.TokenID,
	})

	require.NoError(t, err)
	assert.Equal(t, model.DuelOutcomeTie, result.Outcome)
	assert.Nil(t, result.WinnerTokenID)
	assert.Equal(t, result.CardOne.Power, result.CardTwo.Power)
}

func TestDuels_CardDuelsItself(t *testing.T) {
	// AC-DUEL-002 (variation): A card dueling itself always ties
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	duelService := createDuelService(t, tdb)
	ctx := context.Background()

	owner := f.CreateUser(t)
	registry := f.CreateRegistry(t, owner)
	card := f.MintCard(t, registry, fixtures.WithCardStats(77, 33))

	result, err := duelService.ResolveDuel(ctx, registry.ID, &model.DuelRequest{
		CardOneTokenID: card.TokenID,
		CardTwoTokenID: card.TokenID,
	})

	require.NoError(t, err)
	assert.Equal(t, model.DuelOutcomeTie, result.Outcome)
	assert.Nil(t, result.WinnerTokenID)
}

func TestDuels_DuelsAreReadOnly(t *testing.T) {
	// AC-DUEL-003: Duels Are Read-Only
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	duelService := createDuelService(t, tdb)
	cardService := createCardService(t, tdb)
	ctx := context.Background()

	owner := f.CreateUser(t)
	registry := f.CreateRegistry(t, owner)

	one := f.MintCard(t, registry, fixtures.WithCardStats(100, 100))
	two := f.MintCard(t, registry, fixtures.WithCardStats(5, 5))

	_, err := duelService.ResolveDuel(ctx, registry.ID, &model.DuelRequest{
		CardOneTokenID: one.TokenID,
		CardTwoTokenID: two.TokenID,
	})
	require.NoError(t, err)

	// Both cards are untouched
	for _, minted := range []*model.Card{one, two} {
		card, err := cardService.GetCard(ctx, registry.ID, minted.TokenID)
		require.NoError(t, err)
		assert.Equal(t, minted.Attack, card.Attack)
		assert.Equal(t, minted.Defense, card.Defense)
		assert.Equal(t, minted.HolderID, card.HolderID)
	}
}

func TestDuels_DuelsArePermissionless(t *testing.T) {
	// AC-DUEL-004: Duels Are Permissionless
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	duelService := createDuelService(t, tdb)
	ctx := context.Background()

	owner := f.CreateUser(t)
	holderOne := f.CreateUser(t)
	holderTwo := f.CreateUser(t)
	registry := f.CreateRegistry(t, owner)

	one := f.MintCard(t, registry, fixtures.WithCardStats(60, 60))
	two := f.MintCard(t, registry, fixtures.WithCardStats(30, 30))
	f.TransferCard(t, one, holderOne)
	f.TransferCard(t, two, holderTwo)

	// The duel service takes no caller; cards held by others resolve fine
	result, err := duelService.ResolveDuel(ctx, registry.ID, &model.DuelRequest{
		CardOneTokenID: one.TokenID,
		CardTwoTokenID: two.TokenID,
	})

	require.NoError(t, err)
	assert.Equal(t, model.DuelOutcomeCardOne, result.Outcome)
}

func TestDuels_MissingDuelCard(t *testing.T) {
	// AC-DUEL-005: Missing Duel Card
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	duelService := createDuelService(t, tdb)
	ctx := context.Background()

	owner := f.CreateUser(t)
	registry := f.CreateRegistry(t, owner)
	card := f.MintCard(t, registry)

	_, err := duelService.ResolveDuel(ctx, registry.ID, &model.DuelRequest{
		CardOneTokenID: card.TokenID,
		CardTwoTokenID: 7,
	})

	require.ErrorIs(t, err, service.ErrDuelCardNotFound)
	// The error names the missing token, not just "not found"
	assert.Contains(t, err.Error(), fmt.Sprintf("token %d", 7))
}

func TestDuels_DuelInMissingRegistry(t *testing.T) {
	// AC-DUEL-006: Duel in Missing Registry
	tdb := testdb.New(t)
	defer tdb.Close()

	duelService := createDuelService(t, tdb)
	ctx := context.Background()

	_, err := duelService.ResolveDuel(ctx, "registry:doesnotexist", &model.DuelRequest{
		CardOneTokenID: 1,
		CardTwoTokenID: 2,
	})

	require.ErrorIs(t, err, service.ErrRegistryNotFound)
}
