package handler

import (
	"errors"

	"github.com/forgo/gambit/internal/model"
	"github.com/forgo/gambit/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for the registry, card, and duel
// handlers, ensuring consistent HTTP status codes across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotRegistryOwner),
		errors.Is(err, service.ErrNotCardHolder):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrRegistryNotFound):
		return model.NewNotFoundError("registry")
	case errors.Is(err, service.ErrCardNotFound):
		return model.NewNotFoundError("card")
	case errors.Is(err, service.ErrDuelCardNotFound):
		// Keep the token number so callers know which card was missing
		pd := model.NewNotFoundError("card")
		pd.Detail = err.Error()
		return pd
	case errors.Is(err, service.ErrRecipientNotFound):
		return model.NewNotFoundError("recipient user")
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrTransferToSelf):
		return model.NewValidationError([]model.FieldError{
			{Field: "to_user_id", Message: "card is already held by this user"},
		})
	case errors.Is(err, service.ErrRegistryLimitReached):
		return model.NewLimitExceededError("registries", model.MaxRegistriesPerUser, model.MaxRegistriesPerUser)

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails
// response with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
