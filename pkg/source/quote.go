package source

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-resty/resty/v2"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/domain"
)

// QuoteSource fetches canonical price/volume records from a
// CoinMarketCap-compatible quote API. Every failure mode (transport,
// non-200, API error code) degrades to a nil record, never an error:
// the pipeline must tolerate total unavailability of this source.
type QuoteSource struct {
	client *resty.Client
	apiKey string
}

// quoteResponse mirrors the quote API payload, decoded once here so the
// rest of the pipeline never sees the upstream shape
type quoteResponse struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
	Data map[string]quoteEntry `json:"data"`
}

type quoteEntry struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Quote  struct {
		USD struct {
			Price            float64 `json:"price"`
			PercentChange1h  float64 `json:"percent_change_1h"`
			PercentChange24h float64 `json:"percent_change_24h"`
			PercentChange7d  float64 `json:"percent_change_7d"`
			Volume24h        float64 `json:"volume_24h"`
			MarketCap        float64 `json:"market_cap"`
		} `json:"USD"`
	} `json:"quote"`
}

// NewQuoteSource creates a quote source. A missing API key is logged once
// here, not per call.
func NewQuoteSource(cfg config.QuoteConfig) *QuoteSource {
	if cfg.APIKey == "" {
		lgr.Printf("[WARN] quote API key not configured, market data disabled")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &QuoteSource{
		client: resty.New().
			SetBaseURL(cfg.Endpoint).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		apiKey: cfg.APIKey,
	}
}

// Fetch returns the latest quote for a symbol, or nil when the source has
// no data. A single attempt per call, retry policy stays with the caller.
func (s *QuoteSource) Fetch(ctx context.Context, symbol string) *domain.QuoteRecord {
	if s.apiKey == "" {
		return nil
	}

	upper := strings.ToUpper(symbol)
	var body quoteResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("X-CMC_PRO_API_KEY", s.apiKey).
		SetQueryParams(map[string]string{"symbol": upper, "convert": "USD"}).
		SetResult(&body).
		Get("/v1/cryptocurrency/quotes/latest")
	if err != nil {
		lgr.Printf("[WARN] quote request failed for %s: %v", symbol, err)
		return nil
	}
	if resp.StatusCode() != 200 {
		lgr.Printf("[WARN] quote API returned %d for %s", resp.StatusCode(), symbol)
		return nil
	}
	if body.Status.ErrorCode != 0 {
		lgr.Printf("[WARN] quote API error for %s: %s", symbol, body.Status.ErrorMessage)
		return nil
	}

	entry, ok := body.Data[upper]
	if !ok {
		return nil
	}
	usd := entry.Quote.USD
	return &domain.QuoteRecord{
		Name:      entry.Name,
		Symbol:    entry.Symbol,
		Price:     usd.Price,
		Change1h:  usd.PercentChange1h,
		Change24h: usd.PercentChange24h,
		Change7d:  usd.PercentChange7d,
		Volume24h: usd.Volume24h,
		MarketCap: usd.MarketCap,
	}
}
