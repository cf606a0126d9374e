package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coinscope/coinscope/pkg/domain"
)

// MemoryRepository handles learned-context database operations
type MemoryRepository struct {
	db *sqlx.DB
}

// memorySQL represents a memory row for SQL operations
type memorySQL struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewMemoryRepository creates a new memory repository
func NewMemoryRepository(database *sqlx.DB) *MemoryRepository {
	return &MemoryRepository{db: database}
}

// GetMemory returns the value for a key, empty string when missing
func (r *MemoryRepository) GetMemory(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM memory WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get memory: %w", err)
	}
	return value, nil
}

// SetMemory upserts a key/value entry
func (r *MemoryRepository) SetMemory(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO memory (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set memory: %w", err)
	}
	return nil
}

// DeleteMemory removes an entry by key
func (r *MemoryRepository) DeleteMemory(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM memory WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete memory: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("memory key %s not found", key)
	}
	return nil
}

// GetAllMemory returns every entry ordered by key
func (r *MemoryRepository) GetAllMemory(ctx context.Context) ([]domain.MemoryEntry, error) {
	var rows []memorySQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM memory ORDER BY key"); err != nil {
		return nil, fmt.Errorf("get all memory: %w", err)
	}

	entries := make([]domain.MemoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.MemoryEntry{Key: row.Key, Value: row.Value, UpdatedAt: row.UpdatedAt})
	}
	return entries, nil
}
