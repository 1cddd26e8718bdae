package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forgo/gambit/internal/model"
	"github.com/forgo/gambit/internal/service"
)

// ============================================================================
// Mock RegistryRepository
// ============================================================================

type mockRegistryRepo struct {
	createFunc       func(ctx context.Context, registry *model.Registry) error
	getByIDFunc      func(ctx context.Context, id string) (*model.Registry, error)
	listByOwnerFunc  func(ctx context.Context, ownerID string) ([]*model.Registry, error)
	countByOwnerFunc func(ctx context.Context, ownerID string) (int, error)
}

func (m *mockRegistryRepo) Create(ctx context.Context, registry *model.Registry) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, registry)
	}
	return nil
}

func (m *mockRegistryRepo) GetByID(ctx context.Context, id string) (*model.Registry, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRegistryRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Registry, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockRegistryRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	if m.countByOwnerFunc != nil {
		return m.countByOwnerFunc(ctx, ownerID)
	}
	return 0, nil
}

// ============================================================================
// Test Helpers
// ============================================================================

// newRegistryHandler wires the real handler and service to a mock repository
// so requests exercise the full handler -> service -> error mapping path
func newRegistryHandler(repo *mockRegistryRepo) *RegistryHandler {
	svc := service.NewRegistryService(service.RegistryServiceConfig{RegistryRepo: repo})
	return NewRegistryHandler(svc)
}

func testRegistry() *model.Registry {
	now := time.Now()
	return &model.Registry{
		ID:        "registry:abc123",
		Name:      "Tournament Deck",
		OwnerID:   "user:alice",
		CardCount: 3,
		CreatedOn: now,
		UpdatedOn: now,
	}
}

// ============================================================================
// CreateRegistry Tests
// ============================================================================

func TestCreateRegistry_Valid_ReturnsCreated(t *testing.T) {
	t.Parallel()

	repo := &mockRegistryRepo{
		createFunc: func(ctx context.Context, registry *model.Registry) error {
			registry.ID = "registry:abc123"
			return nil
		},
	}
	handler := newRegistryHandler(repo)

	req := makeJSONRequest(http.MethodPost, "/v1/registries", model.CreateRegistryRequest{
		Name:        "Tournament Deck",
		Description: "Cards for the spring tournament",
	})
	req = withUserContext(req, "user:alice")
	rr := httptest.NewRecorder()

	handler.CreateRegistry(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	var resp DataResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatal("expected data to be map")
	}
	if data["name"] != "Tournament Deck" {
		t.Errorf("expected name Tournament Deck, got %v", data["name"])
	}
	if data["owner_id"] != "user:alice" {
		t.Errorf("expected owner user:alice, got %v", data["owner_id"])
	}
	if data["card_count"] != float64(0) {
		t.Errorf("expected card_count 0, got %v", data["card_count"])
	}
	if resp.Links["self"] != "/v1/registries/registry:abc123" {
		t.Errorf("expected self link, got %v", resp.Links["self"])
	}
}

func TestCreateRegistry_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()

	handler := newRegistryHandler(&mockRegistryRepo{})

	req := makeJSONRequest(http.MethodPost, "/v1/registries", model.CreateRegistryRequest{
		Name: "Tournament Deck",
	})
	rr := httptest.NewRecorder()

	handler.CreateRegistry(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestCreateRegistry_MissingName_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	handler := newRegistryHandler(&mockRegistryRepo{})

	req := makeJSONRequest(http.MethodPost, "/v1/registries", model.CreateRegistryRequest{
		Name: "",
	})
	req = withUserContext(req, "user:alice")
	rr := httptest.NewRecorder()

	handler.CreateRegistry(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}

	problem := parseErrorResponse(t, rr.Body.Bytes())
	if len(problem.Errors) == 0 || problem.Errors[0].Field != "name" {
		t.Error("expected validation error on name field")
	}
}

func TestCreateRegistry_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	t.Parallel()

	handler := newRegistryHandler(&mockRegistryRepo{})

	req := httptest.NewRequest(http.MethodPost, "/v1/registries", nil)
	req = withUserContext(req, "user:alice")
	rr := httptest.NewRecorder()

	handler.CreateRegistry(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestCreateRegistry_LimitReached_ReturnsLimitExceeded(t *testing.T) {
	t.Parallel()

	repo := &mockRegistryRepo{
		countByOwnerFunc: func(ctx context.Context, ownerID string) (int, error) {
			return model.MaxRegistriesPerUser, nil
		},
	}
	handler := newRegistryHandler(repo)

	req := makeJSONRequest(http.MethodPost, "/v1/registries", model.CreateRegistryRequest{
		Name: "One Too Many",
	})
	req = withUserContext(req, "user:alice")
	rr := httptest.NewRecorder()

	handler.CreateRegistry(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}

	problem := parseErrorResponse(t, rr.Body.Bytes())
	if problem.Limit == nil || *problem.Limit != model.MaxRegistriesPerUser {
		t.Error("expected limit info in problem details")
	}
}

// ============================================================================
// GetRegistry Tests
// ============================================================================

func TestGetRegistry_Found_ReturnsOK(t *testing.T) {
	t.Parallel()

	repo := &mockRegistryRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Registry, error) {
			return testRegistry(), nil
		},
	}
	handler := newRegistryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/v1/registries/registry:abc123", nil)
	req.SetPathValue("registryId", "registry:abc123")
	req = withUserContext(req, "user:bob")
	rr := httptest.NewRecorder()

	handler.GetRegistry(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp DataResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data := resp.Data.(map[string]interface{})
	if data["card_count"] != float64(3) {
		t.Errorf("expected card_count 3, got %v", data["card_count"])
	}
}

func TestGetRegistry_Missing_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockRegistryRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Registry, error) {
			return nil, nil
		},
	}
	handler := newRegistryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/v1/registries/registry:missing", nil)
	req.SetPathValue("registryId", "registry:missing")
	req = withUserContext(req, "user:bob")
	rr := httptest.NewRecorder()

	handler.GetRegistry(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

// ============================================================================
// ListRegistries Tests
// ============================================================================

func TestListRegistries_ReturnsOwnedRegistries(t *testing.T) {
	t.Parallel()

	repo := &mockRegistryRepo{
		listByOwnerFunc: func(ctx context.Context, ownerID string) ([]*model.Registry, error) {
			return []*model.Registry{
				{ID: "registry:one", Name: "First", OwnerID: ownerID},
				{ID: "registry:two", Name: "Second", OwnerID: ownerID},
			}, nil
		},
	}
	handler := newRegistryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/v1/registries", nil)
	req = withUserContext(req, "user:alice")
	rr := httptest.NewRecorder()

	handler.ListRegistries(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp DataResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	items, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatal("expected data to be a list")
	}
	if len(items) != 2 {
		t.Errorf("expected 2 registries, got %d", len(items))
	}
}
