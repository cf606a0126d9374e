package domain

import "time"

// QuoteRecord is a single canonical price/volume record from the
// exchange-style quote API
type QuoteRecord struct {
	Name      string
	Symbol    string
	Price     float64
	Change1h  float64
	Change24h float64
	Change7d  float64
	Volume24h float64
	MarketCap float64
}

// TxnCount holds buy/sell transaction counts for one time horizon
type TxnCount struct {
	Buys  int
	Sells int
}

// PoolRecord is one DEX liquidity pool for a token
type PoolRecord struct {
	BaseSymbol   string
	QuoteSymbol  string
	PriceUSD     string
	Change5m     float64
	Change1h     float64
	Change6h     float64
	Change24h    float64
	Volume1h     float64
	Volume6h     float64
	Volume24h    float64
	LiquidityUSD float64
	Txns1h       TxnCount
	Txns24h      TxnCount
	MarketCap    float64
	FDV          float64
	DexID        string
	Labels       []string
	ChainID      string
	URL          string
}

// FeedPost is one social post from the mirror pool
type FeedPost struct {
	Text      string
	Author    string
	Published time.Time
	Link      string
}

// NewsArticle is one headline from the news API
type NewsArticle struct {
	Title  string
	Source string
	Body   string
	URL    string
}

// SourceBlocks holds the normalized text representation of every source
// for one token, ready for prompt assembly. Each field is guaranteed
// non-empty: absence of data maps to an explicit sentinel text.
type SourceBlocks struct {
	Market string `json:"market"`
	Dex    string `json:"dex"`
	Social string `json:"social"`
	News   string `json:"news"`
}
