package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each document as one JSONB row in the documents table,
// keyed by name.
type PostgresStore struct {
	db      *pgxpool.Pool
	key     string
	timeout time.Duration
}

func NewPostgresStore(db *pgxpool.Pool, key string, timeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, key: key, timeout: timeout}
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresStore) Load(ctx context.Context, v any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var body []byte
	err := s.db.QueryRow(ctx, `SELECT body FROM documents WHERE key = $1`, s.key).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotExist
	}
	if err != nil {
		return fmt.Errorf("select document %q: %w", s.key, err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode document %q: %w", s.key, err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (key, body, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`,
		s.key, string(body))
	if err != nil {
		return fmt.Errorf("upsert document %q: %w", s.key, err)
	}
	return nil
}

// Connect opens a pool and checks that the database answers.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", RedactDSN(dsn), err)
	}
	return pool, nil
}

// RedactDSN hides the credentials part of a connection string.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
