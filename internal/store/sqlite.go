package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/verbseed/internal/conjugation"
	"github.com/rcliao/verbseed/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID returns IDs that sort in creation order, which List and ExportAll
// rely on to reproduce the dataset order.
func (s *SQLiteStore) newID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS verbs (
		id              TEXT PRIMARY KEY,
		infinitive      TEXT NOT NULL UNIQUE,
		english         TEXT NOT NULL,
		conjugations    TEXT NOT NULL DEFAULT '{}',
		example_spanish TEXT,
		example_english TEXT,
		is_irregular    INTEGER NOT NULL DEFAULT 0,
		category        TEXT,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_verbs_category ON verbs(category);

	CREATE TABLE IF NOT EXISTS forms (
		verb_id  TEXT NOT NULL REFERENCES verbs(id) ON DELETE CASCADE,
		tense    INTEGER NOT NULL,
		person   INTEGER NOT NULL,
		form     TEXT NOT NULL,
		PRIMARY KEY (verb_id, tense, person)
	);
	CREATE INDEX IF NOT EXISTS idx_forms_form ON forms(form);
	`
	_, err := s.db.Exec(schema)
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// insertVerb writes v and its form index. Callers run it inside a transaction.
func (s *SQLiteStore) insertVerb(ctx context.Context, tx execer, v model.Verb, now time.Time) (*model.StoredVerb, error) {
	id := s.newID(now)

	conj, err := json.Marshal(v.Conjugations)
	if err != nil {
		return nil, fmt.Errorf("encode conjugations: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO verbs (id, infinitive, english, conjugations, example_spanish, example_english, is_irregular, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, v.Infinitive, v.English, string(conj), v.ExampleSpanish, v.ExampleEnglish,
		v.IsIrregular, v.Category, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert verb %s: %w", v.Infinitive, err)
	}

	var insertErr error
	v.Conjugations.Each(func(tense conjugation.Tense, person conjugation.Person, form string) {
		if insertErr != nil {
			return
		}
		_, insertErr = tx.ExecContext(ctx,
			`INSERT INTO forms (verb_id, tense, person, form) VALUES (?, ?, ?, ?)`,
			id, int(tense), int(person), form)
	})
	if insertErr != nil {
		return nil, fmt.Errorf("insert forms %s: %w", v.Infinitive, insertErr)
	}

	return &model.StoredVerb{ID: id, CreatedAt: now.Truncate(time.Second), Verb: v}, nil
}

func (s *SQLiteStore) Put(ctx context.Context, v model.Verb) (*model.StoredVerb, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM verbs WHERE infinitive = ?`, v.Infinitive); err != nil {
		return nil, fmt.Errorf("replace verb %s: %w", v.Infinitive, err)
	}

	stored, err := s.insertVerb(ctx, tx, v, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}

const verbColumns = `id, infinitive, english, conjugations, example_spanish, example_english, is_irregular, category, created_at`

func (s *SQLiteStore) Get(ctx context.Context, infinitive string) (*model.StoredVerb, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+verbColumns+` FROM verbs WHERE infinitive = ?`, infinitive)
	v, err := scanVerb(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, infinitive)
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.StoredVerb, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	var args []interface{}
	if p.Category != "" {
		where = append(where, "category = ?")
		args = append(args, p.Category)
	}
	if p.IrregularOnly {
		where = append(where, "is_irregular = 1")
	}

	query := fmt.Sprintf(`SELECT %s FROM verbs WHERE %s ORDER BY id LIMIT ?`,
		verbColumns, strings.Join(where, " AND "))
	args = append(args, limit)

	return s.queryVerbs(ctx, query, args...)
}

func (s *SQLiteStore) queryVerbs(ctx context.Context, query string, args ...interface{}) ([]model.StoredVerb, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verbs []model.StoredVerb
	for rows.Next() {
		v, err := scanVerb(rows)
		if err != nil {
			return nil, err
		}
		verbs = append(verbs, v)
	}
	return verbs, rows.Err()
}

func (s *SQLiteStore) Rm(ctx context.Context, infinitive string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM verbs WHERE infinitive = ?`, infinitive)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, infinitive)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanVerb(row scanner) (model.StoredVerb, error) {
	var v model.StoredVerb
	var conj, createdAt string
	var exampleSpanish, exampleEnglish, category sql.NullString

	err := row.Scan(
		&v.ID, &v.Infinitive, &v.English, &conj, &exampleSpanish, &exampleEnglish,
		&v.IsIrregular, &category, &createdAt,
	)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal([]byte(conj), &v.Conjugations); err != nil {
		return v, fmt.Errorf("decode conjugations of %s: %w", v.Infinitive, err)
	}
	v.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if exampleSpanish.Valid {
		v.ExampleSpanish = &exampleSpanish.String
	}
	if exampleEnglish.Valid {
		v.ExampleEnglish = &exampleEnglish.String
	}
	if category.Valid {
		v.Category = &category.String
	}
	return v, nil
}
