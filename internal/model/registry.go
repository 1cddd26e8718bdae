package model

import (
	"strings"
	"time"
)

// Registry represents a card collection bound to the account that created it.
// The owner is set at creation and never changes; only the owner may mint cards.
type Registry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CardCount   int       `json:"card_count"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Business constraints
const (
	MaxRegistriesPerUser  = 25
	MaxRegistryNameLength = 100
	MaxRegistryDescLength = 500
)

// CreateRegistryRequest represents a request to create a registry
type CreateRegistryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Validate checks the request fields and returns any validation errors.
// Names are judged after trimming, matching what gets persisted.
func (r *CreateRegistryRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxRegistryNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}
	if len(r.Description) > MaxRegistryDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 500 characters or less"})
	}

	return errors
}
