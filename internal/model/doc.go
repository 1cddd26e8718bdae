// Package model defines domain entities and data structures for the Gambit API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with authentication credentials
//   - Registry: Card collection owned by the account that created it
//   - Card: Minted collectible with fixed stats and a transferable holder
//   - ProvenanceEntry: Custody record for a card (mint and transfers)
//   - DuelResult: Outcome of pitting two cards against each other
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Card struct {
//	    TokenID int    `json:"token_id"`
//	    Name    string `json:"name"`
//	    Attack  int    `json:"attack"`
//	    Defense int    `json:"defense"`
//	}
//
// # Validation Constants
//
// The package defines validation constants:
//
//	const (
//	    MaxCardNameLength    = 100
//	    MaxCardStat          = 1_000_000
//	    MaxRegistriesPerUser = 25
//	)
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
