package model

// DuelOutcome identifies which card won a duel, or that the duel tied
type DuelOutcome string

const (
	DuelOutcomeCardOne DuelOutcome = "card_one"
	DuelOutcomeCardTwo DuelOutcome = "card_two"
	DuelOutcomeTie     DuelOutcome = "tie"
)

// IsValid returns true if the outcome is a recognized duel outcome
func (o DuelOutcome) IsValid() bool {
	switch o {
	case DuelOutcomeCardOne, DuelOutcomeCardTwo, DuelOutcomeTie:
		return true
	default:
		return false
	}
}

// DuelRequest names the two cards to pit against each other.
// Both token IDs refer to cards in the same registry.
type DuelRequest struct {
	CardOneTokenID int `json:"card_one_token_id"`
	CardTwoTokenID int `json:"card_two_token_id"`
}

// Validate checks the request fields and returns any validation errors
func (r *DuelRequest) Validate() []FieldError {
	var errors []FieldError

	if r.CardOneTokenID < 1 {
		errors = append(errors, FieldError{Field: "card_one_token_id", Message: "card_one_token_id must be 1 or greater"})
	}
	if r.CardTwoTokenID < 1 {
		errors = append(errors, FieldError{Field: "card_two_token_id", Message: "card_two_token_id must be 1 or greater"})
	}

	return errors
}

// DuelCard is the scoring view of one card in a duel
type DuelCard struct {
	TokenID int    `json:"token_id"`
	Name    string `json:"name"`
	Power   int    `json:"power"`
}

// DuelResult reports the outcome of a duel. The card with the higher power
// (attack + defense) wins; equal powers tie. Duels read card state but never
// change it, and nothing about the duel is persisted.
type DuelResult struct {
	Outcome       DuelOutcome `json:"outcome"`
	WinnerTokenID *int        `json:"winner_token_id,omitempty"`
	CardOne       DuelCard    `json:"card_one"`
	CardTwo       DuelCard    `json:"card_two"`
}
