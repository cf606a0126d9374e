package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coinscope/coinscope/pkg/domain"
)

// TokenRepository handles tracked-token database operations
type TokenRepository struct {
	db *sqlx.DB
}

// tokenSQL represents a token row for SQL operations
type tokenSQL struct {
	ID          int64     `db:"id"`
	Symbol      string    `db:"symbol"`
	Name        string    `db:"name"`
	QuoteSlug   string    `db:"quote_slug"`
	SearchQuery string    `db:"search_query"`
	ChainID     string    `db:"chain_id"`
	Address     string    `db:"address"`
	FeedQueries string    `db:"feed_queries"`
	Active      bool      `db:"active"`
	AddedAt     time.Time `db:"added_at"`
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(database *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: database}
}

// CreateToken inserts a new tracked token
func (r *TokenRepository) CreateToken(ctx context.Context, token *domain.Token) error {
	queries, err := json.Marshal(defaultFeedQueries(token))
	if err != nil {
		return fmt.Errorf("marshal feed queries: %w", err)
	}

	row := &tokenSQL{
		Symbol:      strings.ToUpper(token.Symbol),
		Name:        token.Name,
		QuoteSlug:   token.QuoteSlug,
		SearchQuery: token.SearchQuery,
		ChainID:     token.ChainID,
		Address:     token.Address,
		FeedQueries: string(queries),
		Active:      token.Active,
	}

	query := `
		INSERT INTO tokens (symbol, name, quote_slug, search_query, chain_id, address, feed_queries, active)
		VALUES (:symbol, :name, :quote_slug, :search_query, :chain_id, :address, :feed_queries, :active)
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("create token: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	token.ID = id
	return nil
}

// GetToken retrieves a token by symbol
func (r *TokenRepository) GetToken(ctx context.Context, symbol string) (*domain.Token, error) {
	var row tokenSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM tokens WHERE symbol = ?", strings.ToUpper(symbol))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}
	return r.toDomain(&row), nil
}

// GetTokens retrieves tokens, optionally only active ones
func (r *TokenRepository) GetTokens(ctx context.Context, activeOnly bool) ([]domain.Token, error) {
	query := "SELECT * FROM tokens"
	if activeOnly {
		query += " WHERE active = 1"
	}
	query += " ORDER BY symbol"

	var rows []tokenSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}

	tokens := make([]domain.Token, 0, len(rows))
	for i := range rows {
		tokens = append(tokens, *r.toDomain(&rows[i]))
	}
	return tokens, nil
}

// ToggleToken flips the active flag, returning the new state
func (r *TokenRepository) ToggleToken(ctx context.Context, symbol string) (bool, error) {
	var active bool
	err := r.db.GetContext(ctx, &active, "SELECT active FROM tokens WHERE symbol = ?", strings.ToUpper(symbol))
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("token %s not found", symbol)
	}
	if err != nil {
		return false, fmt.Errorf("get token state: %w", err)
	}

	newState := !active
	if _, err := r.db.ExecContext(ctx, "UPDATE tokens SET active = ? WHERE symbol = ?", newState, strings.ToUpper(symbol)); err != nil {
		return false, fmt.Errorf("toggle token: %w", err)
	}
	return newState, nil
}

// DeleteToken removes a token by symbol
func (r *TokenRepository) DeleteToken(ctx context.Context, symbol string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tokens WHERE symbol = ?", strings.ToUpper(symbol))
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("token %s not found", symbol)
	}
	return nil
}

// toDomain converts a SQL row to a domain token
func (r *TokenRepository) toDomain(row *tokenSQL) *domain.Token {
	var queries []string
	if err := json.Unmarshal([]byte(row.FeedQueries), &queries); err != nil {
		queries = []string{"#" + row.Symbol, "$" + row.Symbol}
	}
	return &domain.Token{
		ID:          row.ID,
		Symbol:      row.Symbol,
		Name:        row.Name,
		QuoteSlug:   row.QuoteSlug,
		SearchQuery: row.SearchQuery,
		ChainID:     row.ChainID,
		Address:     row.Address,
		FeedQueries: queries,
		Active:      row.Active,
		AddedAt:     row.AddedAt,
	}
}

// defaultFeedQueries falls back to hashtag/cashtag terms when a token
// has no explicit feed queries
func defaultFeedQueries(token *domain.Token) []string {
	if len(token.FeedQueries) > 0 {
		return token.FeedQueries
	}
	symbol := strings.ToUpper(token.Symbol)
	return []string{"#" + symbol, "$" + symbol}
}
