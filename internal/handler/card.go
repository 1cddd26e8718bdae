package handler

import (
	"net/http"
	"strconv"

	"github.com/forgo/gambit/internal/middleware"
	"github.com/forgo/gambit/internal/model"
	"github.com/forgo/gambit/internal/service"
)

// CardHandler handles card HTTP requests
type CardHandler struct {
	cardService *service.CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// MintCard handles POST /v1/registries/{registryId}/cards - mint a new card
func (h *CardHandler) MintCard(w http.ResponseWriter, r *http.Request) {
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

	var req model.MintCardRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	card, err := h.cardService.MintCard(ctx, registryID, userID, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "mint card"))
		return
	}

	WriteData(w, http.StatusCreated, card, cardLinks(registryID, card.TokenID))
}

// GetCard handles GET /v1/registries/{registryId}/cards/{tokenId} - get a card
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	registryID, tokenID, ok := cardPath(w, r)
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(ctx, registryID, tokenID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, card, cardLinks(registryID, card.TokenID))
}

// ListCards handles GET /v1/registries/{registryId}/cards - list cards in
// token order. Supports cursor pagination via after and limit query params,
// and a holder filter ("me" or a user ID) for current holdings.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
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

	afterToken := 0
	if after := r.URL.Query().Get("after"); after != "" {
		parsed, err := strconv.Atoi(after)
		if err != nil || parsed < 0 {
			WriteError(w, model.NewBadRequestError("invalid after cursor"))
			return
		}
		afterToken = parsed
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			WriteError(w, model.NewBadRequestError("invalid limit"))
			return
		}
		limit = parsed
	}

	// "me" resolves to the authenticated caller, so clients can ask for
	// their own holdings without knowing their user ID
	holderID := r.URL.Query().Get("holder")
	if holderID == "me" {
		holderID = userID
	}

	cards, hasMore, err := h.cardService.ListCards(ctx, registryID, holderID, afterToken, limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	pagination := &PaginationInfo{HasMore: hasMore}
	if hasMore && len(cards) > 0 {
		pagination.Cursor = strconv.Itoa(cards[len(cards)-1].TokenID)
	}

	WriteCollection(w, http.StatusOK, cards, pagination, map[string]string{
		"registry": "/v1/registries/" + registryID,
	})
}

// TransferCard handles POST /v1/registries/{registryId}/cards/{tokenId}/transfer
// Only the current holder may transfer a card.
func (h *CardHandler) TransferCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	registryID, tokenID, ok := cardPath(w, r)
	if !ok {
		return
	}

	var req model.TransferCardRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	card, err := h.cardService.TransferCard(ctx, registryID, tokenID, userID, req.ToUserID)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "transfer card"))
		return
	}

	WriteData(w, http.StatusOK, card, cardLinks(registryID, card.TokenID))
}

// GetProvenance handles GET /v1/registries/{registryId}/cards/{tokenId}/provenance
// Returns the card's custody history, oldest entry first.
func (h *CardHandler) GetProvenance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	registryID, tokenID, ok := cardPath(w, r)
	if !ok {
		return
	}

	entries, err := h.cardService.GetProvenance(ctx, registryID, tokenID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, entries, map[string]string{
		"card": "/v1/registries/" + registryID + "/cards/" + strconv.Itoa(tokenID),
	})
}

// cardPath extracts and validates the registry ID and token ID path values,
// writing an error response and returning ok=false when either is unusable
func cardPath(w http.ResponseWriter, r *http.Request) (registryID string, tokenID int, ok bool) {
	registryID = r.PathValue("registryId")
	if registryID == "" {
		WriteError(w, model.NewBadRequestError("registry ID required"))
		return "", 0, false
	}

	tokenStr := r.PathValue("tokenId")
	if tokenStr == "" {
		WriteError(w, model.NewBadRequestError("token ID required"))
		return "", 0, false
	}

	tokenID, err := strconv.Atoi(tokenStr)
	if err != nil {
		WriteError(w, model.NewBadRequestError("token ID must be an integer"))
		return "", 0, false
	}

	return registryID, tokenID, true
}

func cardLinks(registryID string, tokenID int) map[string]string {
	base := "/v1/registries/" + registryID + "/cards/" + strconv.Itoa(tokenID)
	return map[string]string{
		"self":       base,
		"provenance": base + "/provenance",
		"registry":   "/v1/registries/" + registryID,
	}
}
