package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forgo/gambit/internal/model"
	"github.com/forgo/gambit/internal/service"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newDuelHandler wires the real handler and service to mock repositories,
// serving the given cards out of a registry with the given card count
func newDuelHandler(cards map[int]*model.Card, cardCount int) *DuelHandler {
	registryRepo := &mockRegistryRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Registry, error) {
			return &model.Registry{
				ID:        id,
				Name:      "Tournament Deck",
				OwnerID:   "user:alice",
				CardCount: cardCount,
			}, nil
		},
	}
	cardRepo := &mockCardRepo{
		getByTokenFunc: func(ctx context.Context, registryID string, tokenID int) (*model.Card, error) {
			return cards[tokenID], nil
		},
	}
	svc := service.NewDuelService(service.DuelServiceConfig{
		CardRepo:     cardRepo,
		RegistryRepo: registryRepo,
	})
	return NewDuelHandler(svc)
}

func duelRequest(userID string, body interface{}) *http.Request {
	req := makeJSONRequest(http.MethodPost, "/v1/registries/registry:abc123/duels", body)
	req.SetPathValue("registryId", "registry:abc123")
	return withUserContext(req, userID)
}

// ============================================================================
// ResolveDuel Tests
// ============================================================================

func TestResolveDuel_HigherPowerWins(t *testing.T) {
	t.Parallel()

	cards := map[int]*model.Card{
		1: {TokenID: 1, Name: "Storm Dragon", Attack: 70, Defense: 40},
		2: {TokenID: 2, Name: "Mud Golem", Attack: 30, Defense: 50},
	}
	handler := newDuelHandler(cards, 2)

	req := duelRequest("user:bob", model.DuelRequest{
		CardOneTokenID: 1,
		CardTwoTokenID: 2,
	})
	rr := httptest.NewRecorder()

	handler.ResolveDuel(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp DataResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data := resp.Data.(map[string]interface{})
	if data["outcome"] != "card_one" {
		t.Errorf("expected outcome card_one, got %v", data["outcome"])
	}
	if data["winner_token_id"] != float64(1) {
		t.Errorf("expected winner token 1, got %v", data["winner_token_id"])
	}

	cardOne := data["card_one"].(map[string]interface{})
	if cardOne["power"] != float64(110) {
		t.Errorf("expected card one power 110, got %v", cardOne["power"])
	}
}

func TestResolveDuel_EqualPower_ReturnsTie(t *testing.T) {
	t.Parallel()

	cards := map[int]*model.Card{
		1: {TokenID: 1, Name: "Storm Dragon", Attack: 70, Defense: 40},
		2: {TokenID: 2, Name: "Iron Sentinel", Attack: 40, Defense: 70},
	}
	handler := newDuelHandler(cards, 2)

	req := duelRequest("user:bob", model.DuelRequest{
		CardOneTokenID: 1,
		CardTwoTokenID: 2,
	})
	rr := httptest.NewRecorder()

	handler.ResolveDuel(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp DataResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data := resp.Data.(map[string]interface{})
	if data["outcome"] != "tie" {
		t.Errorf("expected tie, got %v", data["outcome"])
	}
	if _, ok := data["winner_token_id"]; ok {
		t.Error("tie must not report a winner token")
	}
}

func TestResolveDuel_MissingCard_ReturnsNotFoundNamingToken(t *testing.T) {
	t.Parallel()

	cards := map[int]*model.Card{
		1: {TokenID: 1, Name: "Storm Dragon", Attack: 70, Defense: 40},
	}
	handler := newDuelHandler(cards, 9)

	req := duelRequest("user:bob", model.DuelRequest{
		CardOneTokenID: 1,
		CardTwoTokenID: 7,
	})
	rr := httptest.NewRecorder()

	handler.ResolveDuel(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}

	problem := parseErrorResponse(t, rr.Body.Bytes())
	if !strings.Contains(problem.Detail, "token 7") {
		t.Errorf("expected detail to name token 7, got %q", problem.Detail)
	}
}

func TestResolveDuel_TokenZero_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	handler := newDuelHandler(nil, 5)

	req := duelRequest("user:bob", model.DuelRequest{
		CardOneTokenID: 0,
		CardTwoTokenID: 2,
	})
	rr := httptest.NewRecorder()

	handler.ResolveDuel(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}

	problem := parseErrorResponse(t, rr.Body.Bytes())
	if len(problem.Errors) == 0 || problem.Errors[0].Field != "card_one_token_id" {
		t.Error("expected validation error on card_one_token_id")
	}
}

func TestResolveDuel_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()

	handler := newDuelHandler(nil, 5)

	req := makeJSONRequest(http.MethodPost, "/v1/registries/registry:abc123/duels", model.DuelRequest{
		CardOneTokenID: 1,
		CardTwoTokenID: 2,
	})
	req.SetPathValue("registryId", "registry:abc123")
	rr := httptest.NewRecorder()

	handler.ResolveDuel(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
