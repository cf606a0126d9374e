package repository

import (
	"context"

	"github.com/coinscope/coinscope/pkg/domain"
)

// Facade methods exposing the store as the single context-store
// dependency the pipeline consumes.

// GetActiveTokens returns all tokens enabled for reporting
func (s *Store) GetActiveTokens(ctx context.Context) ([]domain.Token, error) {
	return s.Token.GetTokens(ctx, true)
}

// GetTemplate returns the active template body for a name
func (s *Store) GetTemplate(ctx context.Context, name string) (string, error) {
	return s.Template.GetTemplate(ctx, name)
}

// GetAllMemory returns every learned-context entry
func (s *Store) GetAllMemory(ctx context.Context) ([]domain.MemoryEntry, error) {
	return s.Memory.GetAllMemory(ctx)
}

// SaveReport appends a report row
func (s *Store) SaveReport(ctx context.Context, report *domain.Report) error {
	return s.Report.SaveReport(ctx, report)
}

// GetLatestReport returns the most recent report for a symbol
func (s *Store) GetLatestReport(ctx context.Context, symbol string) (*domain.Report, error) {
	return s.Report.GetLatestReport(ctx, symbol)
}

// GetSubscribedRecipients returns every subscribed recipient
func (s *Store) GetSubscribedRecipients(ctx context.Context) ([]domain.Recipient, error) {
	return s.Recipient.GetSubscribed(ctx)
}
