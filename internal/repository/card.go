package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgo/gambit/internal/database"
	"github.com/forgo/gambit/internal/model"
)

// CardRepository handles card data access
type CardRepository struct {
	db database.Database
}

// NewCardRepository creates a new card repository
func NewCardRepository(db database.Database) *CardRepository {
	return &CardRepository{db: db}
}

// Mint creates a card in a single transaction that increments the registry
// card counter, assigns the resulting value as the card's token ID, and
// writes the mint provenance entry. Token IDs stay sequential and gapless
// because the counter update and the card insert commit together.
func (r *CardRepository) Mint(ctx context.Context, card *model.Card) error {
	tb := database.NewTxBuilder()

	tb.Add(`LET $reg = (UPDATE ONLY type::record($registry_id) SET card_count += 1, updated_on = time::now() RETURN AFTER)`,
		map[string]interface{}{"registry_id": card.RegistryID})

	fields := []string{
		"registry: type::record($registry_id)",
		"token_id: $reg.card_count",
		"name: $name",
		"attack: $attack",
		"defense: $defense",
		"holder: type::record($holder_id)",
		"created_on: time::now()",
		"updated_on: time::now()",
	}
	vars := map[string]interface{}{
		"registry_id": card.RegistryID,
		"name":        card.Name,
		"attack":      card.Attack,
		"defense":     card.Defense,
		"holder_id":   card.HolderID,
	}
	if card.Description != "" {
		fields = append(fields, "description: $description")
		vars["description"] = card.Description
	}
	tb.Add(fmt.Sprintf("LET $card = (CREATE ONLY card CONTENT { %s })", strings.Join(fields, ", ")), vars)

	tb.AddRaw(`CREATE provenance CONTENT { card: $card.id, event: 'mint', to_user: $card.holder, created_on: time::now() }`)
	tb.AddRaw(`RETURN $card`)

	results, err := database.ExecuteTransaction(ctx, r.db, tb)
	if err != nil {
		return fmt.Errorf("failed to mint card: %w", err)
	}

	minted, err := r.findMintedCard(results)
	if err != nil {
		return err
	}

	card.ID = minted.ID
	card.TokenID = minted.TokenID
	card.CreatedOn = minted.CreatedOn
	card.UpdatedOn = minted.UpdatedOn
	return nil
}

// GetByToken retrieves a card by its token ID within a registry
func (r *CardRepository) GetByToken(ctx context.Context, registryID string, tokenID int) (*model.Card, error) {
	query := `SELECT * FROM card WHERE registry = type::record($registry) AND token_id = $token_id LIMIT 1`
	vars := map[string]interface{}{
		"registry": registryID,
		"token_id": tokenID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return r.parseCard(result)
}

// ListByRegistry retrieves cards in a registry ordered by token ID, starting
// after the given token. Pass afterToken 0 to start from the beginning; a
// non-empty holderID filters to cards currently held by that user.
func (r *CardRepository) ListByRegistry(ctx context.Context, registryID, holderID string, afterToken, limit int) ([]*model.Card, error) {
	query := `
		SELECT * FROM card
		WHERE registry = type::record($registry) AND token_id > $after
	`
	vars := map[string]interface{}{
		"registry": registryID,
		"after":    afterToken,
		"limit":    limit,
	}

	if holderID != "" {
		query += ` AND holder = type::record($holder)`
		vars["holder"] = holderID
	}

	query += `
		ORDER BY token_id ASC
		LIMIT $limit
	`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return r.parseCards(result)
}

// Transfer moves a card to a new holder and records the transfer provenance
// entry atomically
func (r *CardRepository) Transfer(ctx context.Context, cardID, fromUserID, toUserID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`UPDATE type::record($card_id) SET holder = type::record($to_user), updated_on = time::now()`,
		map[string]interface{}{
			"card_id": cardID,
			"to_user": toUserID,
		})
	batch.Add(`CREATE provenance CONTENT { card: type::record($card_id), event: 'transfer', from_user: type::record($from_user), to_user: type::record($to_user), created_on: time::now() }`,
		map[string]interface{}{
			"card_id":   cardID,
			"from_user": fromUserID,
			"to_user":   toUserID,
		})

	if err := batch.Execute(ctx, r.db); err != nil {
		return fmt.Errorf("failed to transfer card: %w", err)
	}
	return nil
}

// findMintedCard scans transaction results for the created card. Depending on
// the server version the RETURN value may be the only result entry or one of
// several, so match on the token_id field rather than position.
func (r *CardRepository) findMintedCard(results []interface{}) (*model.Card, error) {
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
		if _, ok := data["token_id"]; !ok {
			continue
		}
		return r.parseCard(data)
	}
	return nil, errors.New("mint transaction returned no card")
}

func (r *CardRepository) parseCard(result interface{}) (*model.Card, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	card := &model.Card{
		ID:          extractRecordID(data["id"]),
		RegistryID:  extractRecordID(data["registry"]),
		TokenID:     getInt(data, "token_id"),
		Name:        getString(data, "name"),
		Description: getString(data, "description"),
		Attack:      getInt(data, "attack"),
		Defense:     getInt(data, "defense"),
		HolderID:    extractRecordID(data["holder"]),
	}

	if t := getTime(data, "created_on"); t != nil {
		card.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		card.UpdatedOn = *t
	}

	return card, nil
}

func (r *CardRepository) parseCards(result []interface{}) ([]*model.Card, error) {
	cards := make([]*model.Card, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					card, err := r.parseCard(item)
					if err != nil {
						continue
					}
					cards = append(cards, card)
				}
			}
		}
	}

	return cards, nil
}
