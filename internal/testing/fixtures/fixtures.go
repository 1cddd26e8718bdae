// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	registry := f.CreateRegistry(t, user)
//	card := f.MintCard(t, registry)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/gambit/internal/database"
	"github.com/forgo/gambit/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email         string
	Username      string
	Password      string
	Role          model.UserRole
	EmailVerified bool
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:         fmt.Sprintf("user_%s@test.local", randomID()),
		Username:      fmt.Sprintf("user_%s", randomID()),
		Password:      "testpass123",
		Role:          model.UserRoleUser,
		EmailVerified: true,
	}
	for _, fn := range opts {
		fn(o)
	}

	// Hash password; an empty password creates a user without one, like
	// seeded accounts that only authenticate with issued tokens
	var hash interface{}
	if o.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("fixtures: failed to hash password: %v", err)
		}
		hash = string(h)
	}

	query := `
		CREATE user CONTENT {
			email: $email,
			username: $username,
			hash: IF $hash IS NOT NULL THEN $hash ELSE NONE END,
			role: $role,
			email_verified: $email_verified,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"email":          o.Email,
		"username":       o.Username,
		"hash":           hash,
		"role":           string(o.Role),
		"email_verified": o.EmailVerified,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	user := parseUserResult(t, results)
	user.Hash = nil // Don't expose hash in fixture
	return user
}

// CreateAdmin creates an admin user
func (f *Factory) CreateAdmin(t *testing.T) *model.User {
	return f.CreateUser(t, func(o *UserOpts) {
		o.Role = model.UserRoleAdmin
	})
}

// ============================================================================
// Registry Fixtures
// ============================================================================

// RegistryOpts customizes registry creation
type RegistryOpts struct {
	Name        string
	Description string
}

// WithRegistryName sets the registry name
func WithRegistryName(name string) func(*RegistryOpts) {
	return func(o *RegistryOpts) {
		o.Name = name
	}
}

// CreateRegistry creates a registry owned by the given user
func (f *Factory) CreateRegistry(t *testing.T, owner *model.User, opts ...func(*RegistryOpts)) *model.Registry {
	t.Helper()

	o := &RegistryOpts{
		Name:        fmt.Sprintf("Registry %s", randomID()),
		Description: "Test registry",
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE registry CONTENT {
			name: $name,
			description: $description,
			owner: type::record($owner),
			card_count: 0,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":        o.Name,
		"description": o.Description,
		"owner":       owner.ID,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create registry: %v", err)
	}

	return parseRegistryResult(t, results)
}

// ============================================================================
// Card Fixtures
// ============================================================================

// CardOpts customizes card creation
type CardOpts struct {
	Name        string
	Description string
	Attack      int
	Defense     int
}

// WithCardStats sets the card's attack and defense
func WithCardStats(attack, defense int) func(*CardOpts) {
	return func(o *CardOpts) {
		o.Attack = attack
		o.Defense = defense
	}
}

// WithCardName sets the card name
func WithCardName(name string) func(*CardOpts) {
	return func(o *CardOpts) {
		o.Name = name
	}
}

// MintCard mints a card into a registry, held by the registry owner. The
// counter update, card insert, and mint provenance commit together so token
// IDs stay sequential even when fixtures run concurrently.
func (f *Factory) MintCard(t *testing.T, registry *model.Registry, opts ...func(*CardOpts)) *model.Card {
	t.Helper()

	o := &CardOpts{
		Name:    fmt.Sprintf("Card %s", randomID()),
		Attack:  10,
		Defense: 10,
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		BEGIN TRANSACTION;
		LET $reg = (UPDATE ONLY type::record($registry_id) SET card_count += 1, updated_on = time::now() RETURN AFTER);
		LET $card = (CREATE ONLY card CONTENT {
			registry: type::record($registry_id),
			token_id: $reg.card_count,
			name: $name,
			description: $description,
			attack: $attack,
			defense: $defense,
			holder: type::record($holder_id),
			created_on: time::now(),
			updated_on: time::now()
		});
		CREATE provenance CONTENT { card: $card.id, event: 'mint', to_user: $card.holder, created_on: time::now() };
		RETURN $card;
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{
		"registry_id": registry.ID,
		"name":        o.Name,
		"description": o.Description,
		"attack":      o.Attack,
		"defense":     o.Defense,
		"holder_id":   registry.OwnerID,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to mint card: %v", err)
	}

	card := findCardResult(t, results)
	registry.CardCount = card.TokenID
	return card
}

// TransferCard moves a card to a new holder and records the transfer
// provenance entry, mirroring what the API does on transfer
func (f *Factory) TransferCard(t *testing.T, card *model.Card, to *model.User) {
	t.Helper()

	query := `
		BEGIN TRANSACTION;
		UPDATE type::record($card_id) SET holder = type::record($to_user), updated_on = time::now();
		CREATE provenance CONTENT { card: type::record($card_id), event: 'transfer', from_user: type::record($from_user), to_user: type::record($to_user), created_on: time::now() };
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{
		"card_id":   card.ID,
		"from_user": card.HolderID,
		"to_user":   to.ID,
	}

	if err := f.db.Execute(ctx(), query, vars); err != nil {
		t.Fatalf("fixtures: failed to transfer card: %v", err)
	}

	card.HolderID = to.ID
}

// ============================================================================
// Result Parsing
// ============================================================================

func parseUserResult(t *testing.T, results []interface{}) *model.User {
	t.Helper()
	data := extractFirstResult(t, results)

	return &model.User{
		ID:            getString(data, "id"),
		Email:         getString(data, "email"),
		Username:      getStringPtr(data, "username"),
		Role:          model.UserRole(getString(data, "role")),
		EmailVerified: getBool(data, "email_verified"),
		CreatedOn:     getTime(data, "created_on"),
		UpdatedOn:     getTime(data, "updated_on"),
	}
}

func parseRegistryResult(t *testing.T, results []interface{}) *model.Registry {
	t.Helper()
	data := extractFirstResult(t, results)

	return &model.Registry{
		ID:          getString(data, "id"),
		Name:        getString(data, "name"),
		Description: getString(data, "description"),
		OwnerID:     getString(data, "owner"),
		CardCount:   getInt(data, "card_count"),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
}

// findCardResult scans transaction results for the created card. Depending on
// the server version the RETURN value may be the only result entry or one of
// several, so match on the token_id field rather than position.
func findCardResult(t *testing.T, results []interface{}) *model.Card {
	t.Helper()

	for _, res := range results {
		resp, ok := res.(map[string]interface{})
		if !ok {
			continue
		}
		payload := resp["result"]
		if arr, ok := payload.([]interface{}); ok {
			if len(arr) == 0 {
				continue
			}
			payload = arr[0]
		}
		data, ok := payload.(map[string]interface{})
		if !ok {
			continue
		}
		if _, hasToken := data["token_id"]; !hasToken {
			continue
		}

		return &model.Card{
			ID:          getString(data, "id"),
			RegistryID:  getString(data, "registry"),
			TokenID:     getInt(data, "token_id"),
			Name:        getString(data, "name"),
			Description: getString(data, "description"),
			Attack:      getInt(data, "attack"),
			Defense:     getInt(data, "defense"),
			HolderID:    getString(data, "holder"),
			CreatedOn:   getTime(data, "created_on"),
			UpdatedOn:   getTime(data, "updated_on"),
		}
	}

	t.Fatal("fixtures: no card in mint results")
	return nil
}

// ============================================================================
// Value Extraction Helpers
// ============================================================================

func extractFirstResult(t *testing.T, results []interface{}) map[string]interface{} {
	t.Helper()
	if len(results) == 0 {
		t.Fatal("fixtures: no results returned")
	}

	// Handle SurrealDB response wrapper
	resp, ok := results[0].(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", results[0])
	}

	result, ok := resp["result"]
	if !ok {
		t.Fatal("fixtures: no result in response")
	}

	// Handle array result
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			t.Fatal("fixtures: empty result array")
		}
		data, ok := arr[0].(map[string]interface{})
		if !ok {
			t.Fatalf("fixtures: unexpected array item type: %T", arr[0])
		}
		return data
	}

	// Handle single result
	data, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", result)
	}
	return data
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	// Handle SurrealDB 3 record ID type - could be a struct or map
	if v := data[key]; v != nil {
		// Try to get the ID as a map with "tb" (table) and "id" fields
		if m, ok := v.(map[string]interface{}); ok {
			if tb, ok := m["tb"].(string); ok {
				if id := m["id"]; id != nil {
					return fmt.Sprintf("%s:%v", tb, id)
				}
			}
		}
		// Fallback: use string conversion but fix the format if needed
		s := fmt.Sprintf("%v", v)
		// Convert "{table id}" to "table:id"
		if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
			inner := s[1 : len(s)-1]
			for i, c := range inner {
				if c == ' ' {
					return inner[:i] + ":" + inner[i+1:]
				}
			}
		}
		return s
	}
	return ""
}

func getStringPtr(data map[string]interface{}, key string) *string {
	if v, ok := data[key].(string); ok {
		return &v
	}
	return nil
}

func getBool(data map[string]interface{}, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

func getInt(data map[string]interface{}, key string) int {
	if v, ok := data[key].(float64); ok {
		return int(v)
	}
	if v, ok := data[key].(int64); ok {
		return int(v)
	}
	return 0
}

func getTime(data map[string]interface{}, key string) time.Time {
	if v, ok := data[key].(string); ok {
		t, _ := time.Parse(time.RFC3339Nano, v)
		return t
	}
	return time.Time{}
}
