// Package repository implements the persistent context store: tracked
// tokens, report history, generation templates, learned memory and
// broadcast recipients, backed by SQLite.
package repository

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store contains all repository instances sharing one connection pool
type Store struct {
	Token     *TokenRepository
	Report    *ReportRepository
	Template  *TemplateRepository
	Memory    *MemoryRepository
	Recipient *RecipientRepository
	DB        *sqlx.DB
}

// NewStore opens the database, applies the schema and seeds defaults
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:coinscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	// initialize schema
	if err := initSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	store := &Store{
		Token:     NewTokenRepository(db),
		Report:    NewReportRepository(db),
		Template:  NewTemplateRepository(db),
		Memory:    NewMemoryRepository(db),
		Recipient: NewRecipientRepository(db),
		DB:        db,
	}

	if err := store.seedDefaults(ctx); err != nil {
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.DB.Close()
}

// Ping verifies the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}
