package domain

import "time"

// Token represents a tracked token the service reports on.
// The symbol is the stable identity used to correlate data across
// all sources and across persisted reports.
type Token struct {
	ID          int64
	Symbol      string
	Name        string
	QuoteSlug   string   // optional identifier for the exchange quote API
	SearchQuery string   // optional free-text query for the DEX pool API
	ChainID     string   // optional chain for exact pool lookup
	Address     string   // optional contract address for exact pool lookup
	FeedQueries []string // query terms for the social feed search
	Active      bool
	AddedAt     time.Time
}

// HasExactPair reports whether the token carries a (chain, address) pair
// usable for an exact pool lookup.
func (t *Token) HasExactPair() bool {
	return t.ChainID != "" && t.Address != ""
}

// PoolQuery returns the free-text query for pool search, falling back
// to the symbol when no explicit query is configured.
func (t *Token) PoolQuery() string {
	if t.SearchQuery != "" {
		return t.SearchQuery
	}
	return t.Symbol
}
