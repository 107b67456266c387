package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rcliao/verbseed/internal/model"
)

// ExportAll returns every stored verb in insertion order.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Verb, error) {
	stored, err := s.queryVerbs(ctx, `SELECT `+verbColumns+` FROM verbs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	verbs := make([]model.Verb, 0, len(stored))
	for _, v := range stored {
		verbs = append(verbs, v.Verb)
	}
	return verbs, nil
}

// Import replaces the stored verbs with verbs, keeping their order.
// Either every verb is stored or, on error, nothing changes.
func (s *SQLiteStore) Import(ctx context.Context, verbs []model.Verb) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM forms`); err != nil {
		return 0, fmt.Errorf("clear forms: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM verbs`); err != nil {
		return 0, fmt.Errorf("clear verbs: %w", err)
	}

	now := time.Now().UTC()
	for _, v := range verbs {
		if _, err := s.insertVerb(ctx, tx, v, now); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(verbs), nil
}
