package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/coinscope/coinscope/pkg/domain"
)

// ReportRepository handles report history database operations.
// Reports are append-only; "latest" is determined by created_at.
type ReportRepository struct {
	db *sqlx.DB
}

// reportSQL represents a report row for SQL operations
type reportSQL struct {
	ID        int64     `db:"id"`
	Symbol    string    `db:"symbol"`
	Kind      string    `db:"kind"`
	Content   string    `db:"content"`
	RawBlocks string    `db:"raw_blocks"`
	CreatedAt time.Time `db:"created_at"`
}

// NewReportRepository creates a new report repository
func NewReportRepository(database *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: database}
}

// SaveReport appends a report row. Writes retry on SQLite lock errors
// since aggregation workers share the connection pool.
func (r *ReportRepository) SaveReport(ctx context.Context, report *domain.Report) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO reports (symbol, kind, content, raw_blocks)
			VALUES (?, ?, ?, ?)
		`
		result, err := r.db.ExecContext(ctx, query, report.Symbol, string(report.Kind), report.Content, report.RawBlocks)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save report: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		report.ID = id
		return nil
	})
}

// GetLatestReport returns the most recent report for a symbol, nil when
// no report exists yet
func (r *ReportRepository) GetLatestReport(ctx context.Context, symbol string) (*domain.Report, error) {
	var row reportSQL
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM reports WHERE symbol = ? ORDER BY created_at DESC, id DESC LIMIT 1", symbol)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest report: %w", err)
	}
	return toDomainReport(&row), nil
}

// GetReports returns report history for a symbol, newest first
func (r *ReportRepository) GetReports(ctx context.Context, symbol string, limit int) ([]domain.Report, error) {
	var rows []reportSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM reports WHERE symbol = ? ORDER BY created_at DESC, id DESC LIMIT ?", symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("get reports: %w", err)
	}

	reports := make([]domain.Report, 0, len(rows))
	for i := range rows {
		reports = append(reports, *toDomainReport(&rows[i]))
	}
	return reports, nil
}

// CountReports returns the total number of persisted reports
func (r *ReportRepository) CountReports(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM reports"); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return count, nil
}

func toDomainReport(row *reportSQL) *domain.Report {
	return &domain.Report{
		ID:        row.ID,
		Symbol:    row.Symbol,
		Kind:      domain.ReportKind(row.Kind),
		Content:   row.Content,
		RawBlocks: row.RawBlocks,
		CreatedAt: row.CreatedAt,
	}
}
