// Package fixtures provides test data factories for the Gambit API.
//
// The fixtures package contains factory functions for creating test data
// with sensible defaults and optional customization.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(testDB)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	user := f.CreateUser(t)                  // Default user
//	registry := f.CreateRegistry(t, user)    // Registry owned by user
//	card := f.MintCard(t, registry)          // Card held by the owner
//	f.TransferCard(t, card, otherUser)       // Move the holding
//
// # Customization
//
// Use option functions for customization:
//
//	registry := f.CreateRegistry(t, user, WithRegistryName("Dragon Vault"))
//	card := f.MintCard(t, registry, WithCardStats(100, 50))
//
// # Random Data
//
// Unique identifiers are generated automatically:
//
//	user1 := f.CreateUser(t) // user_abc123
//	user2 := f.CreateUser(t) // user_def456
//
// # Cleanup
//
// Test data is cleaned up when the test database is closed.
package fixtures
