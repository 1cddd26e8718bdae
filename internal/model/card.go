package model

import (
	"strings"
	"time"
)

// Card represents a minted collectible within a registry. Name, attack, and
// defense are fixed at mint time; only the holder changes, through transfers.
// Token IDs are assigned sequentially per registry starting at 1 and are
// never reused.
type Card struct {
	ID          string    `json:"id"`
	RegistryID  string    `json:"registry_id"`
	TokenID     int       `json:"token_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Attack      int       `json:"attack"`
	Defense     int       `json:"defense"`
	HolderID    string    `json:"holder_id"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Business constraints
const (
	MaxCardNameLength = 100
	MaxCardDescLength = 1000

	// MaxCardStat bounds attack and defense at mint time so that power
	// sums stay far inside the int range on every supported platform.
	MaxCardStat = 1_000_000

	// MaxCardPower is the ceiling for combined attack and defense.
	MaxCardPower = 2 * MaxCardStat
)

// Power returns the card's duel score: attack + defense, saturating at
// MaxCardPower. Mint validation keeps both stats at or below MaxCardStat,
// so saturation is a backstop rather than an expected path.
func (c *Card) Power() int {
	power := c.Attack + c.Defense
	if power > MaxCardPower {
		return MaxCardPower
	}
	return power
}

// MintCardRequest represents a request to mint a new card
type MintCardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
}

// Validate checks the request fields and returns any validation errors.
// Names are judged after trimming, matching what gets persisted.
func (r *MintCardRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxCardNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}
	if len(r.Description) > MaxCardDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 1000 characters or less"})
	}
	if r.Attack < 0 {
		errors = append(errors, FieldError{Field: "attack", Message: "attack must not be negative"})
	} else if r.Attack > MaxCardStat {
		errors = append(errors, FieldError{Field: "attack", Message: "attack must be 1000000 or less"})
	}
	if r.Defense < 0 {
		errors = append(errors, FieldError{Field: "defense", Message: "defense must not be negative"})
	} else if r.Defense > MaxCardStat {
		errors = append(errors, FieldError{Field: "defense", Message: "defense must be 1000000 or less"})
	}

	return errors
}

// TransferCardRequest represents a request to transfer a card to another user
type TransferCardRequest struct {
	ToUserID string `json:"to_user_id"`
}

// Validate checks the request fields and returns any validation errors
func (r *TransferCardRequest) Validate() []FieldError {
	var errors []FieldError

	if r.ToUserID == "" {
		errors = append(errors, FieldError{Field: "to_user_id", Message: "to_user_id is required"})
	}

	return errors
}

// Provenance event types
const (
	ProvenanceEventMint     = "mint"
	ProvenanceEventTransfer = "transfer"
)

// ProvenanceEntry records one custody change for a card. The first entry of
// every card is its mint; later entries are transfers, oldest first.
type ProvenanceEntry struct {
	ID         string    `json:"id"`
	CardID     string    `json:"card_id"`
	Event      string    `json:"event"` // mint, transfer
	FromUserID string    `json:"from_user_id,omitempty"`
	ToUserID   string    `json:"to_user_id"`
	CreatedOn  time.Time `json:"created_on"`
}
