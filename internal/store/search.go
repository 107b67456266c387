package store

import (
	"context"
	"fmt"

	"github.com/rcliao/verbseed/internal/conjugation"
	"github.com/rcliao/verbseed/internal/model"
)

// Search finds every verb, tense and person producing the given form, ordered
// by verb insertion then canonical tense and person order.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.FormMatch, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	cond, arg := "f.form = ?", p.Form
	if p.Partial {
		cond, arg = "f.form LIKE ?", "%"+p.Form+"%"
	}

	query := fmt.Sprintf(`
		SELECT v.infinitive, v.english, f.tense, f.person, f.form
		FROM forms f
		INNER JOIN verbs v ON v.id = f.verb_id
		WHERE %s
		ORDER BY v.id, f.tense, f.person
		LIMIT ?`, cond)

	rows, err := s.db.QueryContext(ctx, query, arg, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.FormMatch
	for rows.Next() {
		var m model.FormMatch
		var tense, person int
		if err := rows.Scan(&m.Infinitive, &m.English, &tense, &person, &m.Form); err != nil {
			return nil, err
		}
		m.Tense = conjugation.Tense(tense).String()
		m.Person = conjugation.Person(person).String()
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
