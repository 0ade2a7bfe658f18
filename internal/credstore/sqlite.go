package credstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/danakir/planvite/internal/credstore/migrations"
)

// tokenKey names the single slot the store manages.
const tokenKey = "session_token"

// SQLiteStore keeps the credential slot in a local SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore wraps an already-migrated database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// InitDatabase opens the local database at dsn and applies pending schema
// migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, tokenKey, token, expiresAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (string, bool, error) {
	var (
		token     string
		expiresAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM credentials WHERE key = ?`, tokenKey,
	).Scan(&token, &expiresAt)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load credential: %w", err)
	}

	if s.now().UnixMilli() >= expiresAt {
		if err := s.Clear(ctx); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	return token, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
