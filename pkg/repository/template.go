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

// TemplateRepository handles generation template database operations
type TemplateRepository struct {
	db *sqlx.DB
}

// templateSQL represents a template row for SQL operations
type templateSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Body      string    `db:"body"`
	Active    bool      `db:"active"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(database *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: database}
}

// GetTemplate returns the active template body for a name, empty string
// when no active row exists (the generator falls back to its default)
func (r *TemplateRepository) GetTemplate(ctx context.Context, name string) (string, error) {
	var body string
	err := r.db.GetContext(ctx, &body, "SELECT body FROM templates WHERE name = ? AND active = 1", name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get template: %w", err)
	}
	return body, nil
}

// UpdateTemplate upserts a template body by name
func (r *TemplateRepository) UpdateTemplate(ctx context.Context, name, body string) error {
	query := `
		INSERT INTO templates (name, body, active, updated_at) VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, name, body); err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// GetTemplates returns all templates
func (r *TemplateRepository) GetTemplates(ctx context.Context) ([]domain.Template, error) {
	var rows []templateSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM templates ORDER BY name"); err != nil {
		return nil, fmt.Errorf("get templates: %w", err)
	}

	templates := make([]domain.Template, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, domain.Template{
			ID: row.ID, Name: row.Name, Body: row.Body, Active: row.Active, UpdatedAt: row.UpdatedAt,
		})
	}
	return templates, nil
}
