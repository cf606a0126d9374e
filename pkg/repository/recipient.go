package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coinscope/coinscope/pkg/domain"
)

// RecipientRepository handles broadcast recipient database operations
type RecipientRepository struct {
	db *sqlx.DB
}

// recipientSQL represents a recipient row for SQL operations
type recipientSQL struct {
	ID         int64     `db:"id"`
	ChatID     int64     `db:"chat_id"`
	Username   string    `db:"username"`
	FirstName  string    `db:"first_name"`
	Subscribed bool      `db:"subscribed"`
	FirstSeen  time.Time `db:"first_seen"`
	LastActive time.Time `db:"last_active"`
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(database *sqlx.DB) *RecipientRepository {
	return &RecipientRepository{db: database}
}

// UpsertRecipient inserts or refreshes a recipient by chat id
func (r *RecipientRepository) UpsertRecipient(ctx context.Context, chatID int64, username, firstName string) error {
	query := `
		INSERT INTO recipients (chat_id, username, first_name) VALUES (?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			username = excluded.username,
			first_name = excluded.first_name,
			last_active = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, chatID, username, firstName); err != nil {
		return fmt.Errorf("upsert recipient: %w", err)
	}
	return nil
}

// SetSubscribed flips the subscription flag for a chat id
func (r *RecipientRepository) SetSubscribed(ctx context.Context, chatID int64, subscribed bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE recipients SET subscribed = ? WHERE chat_id = ?", subscribed, chatID)
	if err != nil {
		return fmt.Errorf("set subscribed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recipient %d not found", chatID)
	}
	return nil
}

// GetSubscribed returns every subscribed recipient
func (r *RecipientRepository) GetSubscribed(ctx context.Context) ([]domain.Recipient, error) {
	var rows []recipientSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM recipients WHERE subscribed = 1 ORDER BY id"); err != nil {
		return nil, fmt.Errorf("get subscribed recipients: %w", err)
	}

	recipients := make([]domain.Recipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, domain.Recipient{
			ID:         row.ID,
			ChatID:     row.ChatID,
			Username:   row.Username,
			FirstName:  row.FirstName,
			Subscribed: row.Subscribed,
			FirstSeen:  row.FirstSeen,
			LastActive: row.LastActive,
		})
	}
	return recipients, nil
}

// CountRecipients returns the total number of known recipients
func (r *RecipientRepository) CountRecipients(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM recipients"); err != nil {
		return 0, fmt.Errorf("count recipients: %w", err)
	}
	return count, nil
}
