package handler

import (
	"net/http"

	"github.com/forgo/gambit/internal/middleware"
	"github.com/forgo/gambit/internal/model"
	"github.com/forgo/gambit/internal/service"
)

// RegistryHandler handles registry HTTP requests
type RegistryHandler struct {
	registryService *service.RegistryService
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registryService *service.RegistryService) *RegistryHandler {
	return &RegistryHandler{
		registryService: registryService,
	}
}

// CreateRegistry handles POST /v1/registries - create a new registry
func (h *RegistryHandler) CreateRegistry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateRegistryRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	registry, err := h.registryService.CreateRegistry(ctx, userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, registry, map[string]string{
		"self":  "/v1/registries/" + registry.ID,
		"cards": "/v1/registries/" + registry.ID + "/cards",
	})
}

// GetRegistry handles GET /v1/registries/{registryId} - get registry details
func (h *RegistryHandler) GetRegistry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	registryID := r.PathValue("registryId")
	if registryID == "" {
		WriteError(w, model.NewBadRequestError("registry ID required"))
		return
	}

	registry, err := h.registryService.GetRegistry(ctx, registryID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, registry, map[string]string{
		"self":  "/v1/registries/" + registry.ID,
		"cards": "/v1/registries/" + registry.ID + "/cards",
	})
}

// ListRegistries handles GET /v1/registries - list registries owned by the caller
func (h *RegistryHandler) ListRegistries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	registries, err := h.registryService.ListRegistries(ctx, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, registries, nil)
}
