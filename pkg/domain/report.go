package domain

import "time"

// ReportKind identifies what triggered a report run
type ReportKind string

// report kinds, stored verbatim in the reports table
const (
	ReportMorning  ReportKind = "morning"
	ReportEvening  ReportKind = "evening"
	ReportOnDemand ReportKind = "on-demand"
	ReportTest     ReportKind = "admin-test"
)

// Report is the persisted narrative output of one aggregation run for
// one token. Immutable once created, history is append-only and "latest"
// is determined by CreatedAt.
type Report struct {
	ID        int64
	Symbol    string
	Kind      ReportKind
	Content   string
	RawBlocks string // serialized normalized source blocks
	CreatedAt time.Time
}

// MemoryEntry is one key/value line of learned context fed to the
// generator on every run
type MemoryEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Template is a named generation template with placeholders
type Template struct {
	ID        int64
	Name      string
	Body      string
	Active    bool
	UpdatedAt time.Time
}

// Recipient is a delivery destination for broadcast reports
type Recipient struct {
	ID         int64
	ChatID     int64
	Username   string
	FirstName  string
	Subscribed bool
	FirstSeen  time.Time
	LastActive time.Time
}
