// Package repository implements the data access layer for the Gambit API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles data access for a specific domain entity:
// users, refresh tokens, registries, cards, and provenance.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, ListByOwner, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Database Connection
//
// Repositories accept a database.Database interface, allowing:
//
//   - Connection pooling and management at a higher level
//   - Transaction support when needed
//   - Easy testing with mock implementations
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//   - Multi-statement transactions (via database.TxBuilder) where several
//     writes must commit together, such as minting a card
//
// # Example Usage
//
//	repo := NewRegistryRepository(db)
//	registry, err := repo.GetByID(ctx, "registry:abc123")
//	if err != nil {
//	    return err
//	}
//	if registry == nil {
//	    // Handle not found
//	}
package repository
