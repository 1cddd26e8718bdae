package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "card not found",
	}

	errMsg := pd.Error()

	if !strings.Contains(errMsg, "404") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "Not Found") {
		t.Errorf("error message should contain title, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "card not found") {
		t.Errorf("error message should contain detail, got: %s", errMsg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestProblemDetails_WriteJSON_SetsContentType(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("card")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	contentType := rr.Header().Get("Content-Type")
	if contentType != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", contentType)
	}
}

func TestProblemDetails_WriteJSON_SetsStatusCode(t *testing.T) {
	t.Parallel()

	pd := NewForbiddenError("not the registry owner")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestProblemDetails_WriteJSON_EncodesBody(t *testing.T) {
	t.Parallel()

	pd := NewBadRequestError("invalid request body")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	var result ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if result.Title != "Bad Request" {
		t.Errorf("expected title 'Bad Request', got %q", result.Title)
	}
	if result.Detail != "invalid request body" {
		t.Errorf("expected detail 'invalid request body', got %q", result.Detail)
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestErrorConstructors_StatusTitleAndCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pd         *ProblemDetails
		wantStatus int
		wantTitle  string
		wantCode   ErrorCode
		wantType   string
	}{
		{
			name:       "unauthorized",
			pd:         NewUnauthorizedError("authentication required"),
			wantStatus: http.StatusUnauthorized,
			wantTitle:  "Unauthorized",
			wantCode:   ErrCodeUnauthorized,
			wantType:   "unauthorized",
		},
		{
			name:       "forbidden",
			pd:         NewForbiddenError("not the card holder"),
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
			wantCode:   ErrCodeForbidden,
			wantType:   "forbidden",
		},
		{
			name:       "not found",
			pd:         NewNotFoundError("registry"),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
			wantCode:   ErrCodeNotFound,
			wantType:   "not-found",
		},
		{
			name:       "conflict",
			pd:         NewConflictError("email already registered"),
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
			wantCode:   ErrCodeConflict,
			wantType:   "conflict",
		},
		{
			name:       "bad request",
			pd:         NewBadRequestError("invalid request body"),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
			wantCode:   ErrCodeInvalidInput,
			wantType:   "bad-request",
		},
		{
			name:       "internal",
			pd:         NewInternalError("an unexpected error occurred"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
			wantCode:   ErrCodeInternal,
			wantType:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.pd.Status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.pd.Status)
			}
			if tt.pd.Title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, tt.pd.Title)
			}
			if tt.pd.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, tt.pd.Code)
			}
			if !strings.Contains(tt.pd.Type, tt.wantType) {
				t.Errorf("expected type to contain %q, got %q", tt.wantType, tt.pd.Type)
			}
		})
	}
}

func TestNewNotFoundError_FormatsResourceName(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("card")

	if pd.Detail != "card not found" {
		t.Errorf("expected detail 'card not found', got %q", pd.Detail)
	}
}

func TestNewValidationError_BuildsDetailFromFields(t *testing.T) {
	t.Parallel()

	pd := NewValidationError([]FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "attack", Message: "attack must not be negative"},
	})

	if pd.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, pd.Status)
	}
	if !strings.Contains(pd.Detail, "name is required") {
		t.Errorf("expected detail to mention first field error, got %q", pd.Detail)
	}
	if !strings.Contains(pd.Detail, "1 more") {
		t.Errorf("expected detail to count remaining errors, got %q", pd.Detail)
	}
	if len(pd.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(pd.Errors))
	}
}

func TestNewValidationError_NoFields(t *testing.T) {
	t.Parallel()

	pd := NewValidationError(nil)

	if pd.Detail != "One or more fields failed validation" {
		t.Errorf("unexpected default detail: %q", pd.Detail)
	}
}

func TestNewLimitExceededError_CarriesLimitAndCurrent(t *testing.T) {
	t.Parallel()

	pd := NewLimitExceededError("registries per user", 25, 25)

	if pd.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, pd.Status)
	}
	if pd.Limit == nil || *pd.Limit != 25 {
		t.Error("expected limit extension field to be 25")
	}
	if pd.Current == nil || *pd.Current != 25 {
		t.Error("expected current extension field to be 25")
	}
}

func TestNewInternalError_DefaultsDetail(t *testing.T) {
	t.Parallel()

	pd := NewInternalError("")

	if pd.Detail != "An unexpected error occurred" {
		t.Errorf("expected default detail, got %q", pd.Detail)
	}
}

func TestNewMethodNotAllowedError_NamesMethod(t *testing.T) {
	t.Parallel()

	pd := NewMethodNotAllowedError("POST")

	if pd.Status != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, pd.Status)
	}
	if !strings.Contains(pd.Detail, "POST") {
		t.Errorf("expected detail to mention method, got %q", pd.Detail)
	}
}

func TestNewRateLimitError_MentionsRetryAfter(t *testing.T) {
	t.Parallel()

	pd := NewRateLimitError(30)

	if pd.Status != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, pd.Status)
	}
	if !strings.Contains(pd.Detail, "30") {
		t.Errorf("expected detail to mention retry seconds, got %q", pd.Detail)
	}
}
