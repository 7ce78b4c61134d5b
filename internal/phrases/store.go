package phrases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"bilingo/internal/config"
)

var (
	// ErrNotFound reports that no phrase exists at the requested timestamp.
	ErrNotFound = errors.New("phrase not found")
	// ErrLocked reports that another process holds the phrases database.
	ErrLocked = errors.New("phrases database is locked by another bilingo process")
)

// Phrase is one bookmarked subtitle moment.
type Phrase struct {
	// Timestamp is the playback position in seconds.
	Timestamp float64   `json:"timestamp" yaml:"timestamp"`
	Chinese   string    `json:"chinese" yaml:"chinese"`
	English   string    `json:"english" yaml:"english"`
	Source    string    `json:"source,omitempty" yaml:"source,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages phrase persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open creates the data directory if needed, locks the database, and applies
// migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.PhrasesPath())
}

// OpenPath opens the database at dbPath.
func OpenPath(dbPath string) (*Store, error) {
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire phrases lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database and releases the lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.lock != nil {
		errs = append(errs, s.lock.Unlock())
	}
	return errors.Join(errs...)
}

func toMillis(seconds float64) int64 {
	return int64(math.Round(seconds * 1000))
}

func fromMillis(ms int64) float64 {
	return float64(ms) / 1000
}

// Save inserts p, replacing any phrase already stored at the same timestamp.
func (s *Store) Save(ctx context.Context, p Phrase) (Phrase, error) {
	if p.Timestamp < 0 || math.IsNaN(p.Timestamp) || math.IsInf(p.Timestamp, 0) {
		return Phrase{}, fmt.Errorf("invalid timestamp %v", p.Timestamp)
	}
	p.Chinese = strings.TrimSpace(p.Chinese)
	p.English = strings.TrimSpace(p.English)
	if p.Chinese == "" && p.English == "" {
		return Phrase{}, errors.New("phrase has no text")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.CreatedAt = p.CreatedAt.UTC().Truncate(time.Second)
	p.Timestamp = fromMillis(toMillis(p.Timestamp))

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO phrases (timestamp_ms, chinese, english, source, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(timestamp_ms) DO UPDATE SET
             chinese = excluded.chinese,
             english = excluded.english,
             source = excluded.source,
             created_at = excluded.created_at`,
		toMillis(p.Timestamp),
		p.Chinese,
		p.English,
		p.Source,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Phrase{}, fmt.Errorf("save phrase: %w", err)
	}
	return p, nil
}

const phraseColumns = "timestamp_ms, chinese, english, source, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhrase(row rowScanner) (Phrase, error) {
	var (
		p         Phrase
		ms        int64
		createdAt string
	)
	if err := row.Scan(&ms, &p.Chinese, &p.English, &p.Source, &createdAt); err != nil {
		return Phrase{}, err
	}
	p.Timestamp = fromMillis(ms)
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Phrase{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	p.CreatedAt = parsed
	return p, nil
}

// Get fetches the phrase saved at timestamp.
func (s *Store) Get(ctx context.Context, timestamp float64) (Phrase, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+phraseColumns+` FROM phrases WHERE timestamp_ms = ?`, toMillis(timestamp))
	p, err := scanPhrase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Phrase{}, ErrNotFound
	}
	if err != nil {
		return Phrase{}, fmt.Errorf("get phrase: %w", err)
	}
	return p, nil
}

// List returns all phrases ordered by timestamp.
func (s *Store) List(ctx context.Context) ([]Phrase, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+phraseColumns+` FROM phrases ORDER BY timestamp_ms`)
	if err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}
	defer rows.Close()

	var out []Phrase
	for rows.Next() {
		p, err := scanPhrase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phrase: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate phrases: %w", err)
	}
	return out, nil
}

// Remove deletes the phrase saved at timestamp.
func (s *Store) Remove(ctx context.Context, timestamp float64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM phrases WHERE timestamp_ms = ?`, toMillis(timestamp))
	if err != nil {
		return fmt.Errorf("remove phrase: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
