package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/gambit/internal/database"
	"github.com/forgo/gambit/internal/model"
)

// ProvenanceRepository handles card provenance data access. Provenance rows
// are written inside the mint and transfer transactions in CardRepository,
// so this repository only reads them.
type ProvenanceRepository struct {
	db database.Database
}

// NewProvenanceRepository creates a new provenance repository
func NewProvenanceRepository(db database.Database) *ProvenanceRepository {
	return &ProvenanceRepository{db: db}
}

// ListByCard retrieves the custody history of a card, oldest entry first
func (r *ProvenanceRepository) ListByCard(ctx context.Context, cardID string) ([]*model.ProvenanceEntry, error) {
	query := `SELECT * FROM provenance WHERE card = type::record($card_id) ORDER BY created_on ASC`
	vars := map[string]interface{}{"card_id": cardID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list provenance: %w", err)
	}

	return r.parseEntries(result)
}

func (r *ProvenanceRepository) parseEntry(result interface{}) (*model.ProvenanceEntry, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	entry := &model.ProvenanceEntry{
		ID:       extractRecordID(data["id"]),
		CardID:   extractRecordID(data["card"]),
		Event:    getString(data, "event"),
		ToUserID: extractRecordID(data["to_user"]),
	}

	// from_user is absent on mint entries
	if fu, ok := data["from_user"]; ok && fu != nil {
		entry.FromUserID = extractRecordID(fu)
	}
	if t := getTime(data, "created_on"); t != nil {
		entry.CreatedOn = *t
	}

	return entry, nil
}

func (r *ProvenanceRepository) parseEntries(result []interface{}) ([]*model.ProvenanceEntry, error) {
	entries := make([]*model.ProvenanceEntry, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					entry, err := r.parseEntry(item)
					if err != nil {
						continue
					}
					entries = append(entries, entry)
				}
			}
		}
	}

	return entries, nil
}
