package handler

import (
	"net/http"

	"github.com/forgo/gambit/internal/middleware"
	"github.com/forgo/gambit/internal/model"
	"github.com/forgo/gambit/internal/service"
)

// DuelHandler handles duel HTTP requests
type DuelHandler struct {
	duelService *service.DuelService
}

// NewDuelHandler creates a new duel handler
func NewDuelHandler(duelService *service.DuelService) *DuelHandler {
	return &DuelHandler{
		duelService: duelService,
	}
}

// ResolveDuel handles POST /v1/registries/{registryId}/duels - duel two cards.
// Any authenticated user may run a duel; nothing is persisted.
func (h *DuelHandler) ResolveDuel(w http.ResponseWriter, r *http.Request) {
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

	var req model.DuelRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	result, err := h.duelService.ResolveDuel(ctx, registryID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"registry": "/v1/registries/" + registryID,
	})
}
