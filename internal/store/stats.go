package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath         string          `json:"db_path"`
	DBSizeBytes    int64           `json:"db_size_bytes"`
	TotalVerbs     int             `json:"total_verbs"`
	IrregularVerbs int             `json:"irregular_verbs"`
	EmptyTables    int             `json:"empty_tables"`
	TotalForms     int             `json:"total_forms"`
	Categories     []CategoryStats `json:"categories"`
}

// CategoryStats holds per-category counts. Verbs without a category are
// reported under the empty name.
type CategoryStats struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verbs`).Scan(&st.TotalVerbs)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verbs WHERE is_irregular = 1`).Scan(&st.IrregularVerbs)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verbs WHERE conjugations = '{}'`).Scan(&st.EmptyTables)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM forms`).Scan(&st.TotalForms)

	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(category, '') AS cat, COUNT(*) AS cnt
		FROM verbs GROUP BY cat ORDER BY cnt DESC, cat`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var c CategoryStats
		rows.Scan(&c.Category, &c.Count)
		st.Categories = append(st.Categories, c)
	}

	return st, nil
}
