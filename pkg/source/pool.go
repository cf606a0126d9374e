package source

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-resty/resty/v2"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/domain"
)

// stablecoin symbols accepted as a USD-denominated quote side
var usdStables = map[string]bool{
	"USDT":  true,
	"USDC":  true,
	"DAI":   true,
	"BUSD":  true,
	"TUSD":  true,
	"FDUSD": true,
}

// searchFallbackLimit caps raw search results kept when the base-symbol
// filter matches nothing
const searchFallbackLimit = 5

// PoolSource fetches DEX liquidity pools from a DexScreener-compatible
// API. Exact (chain, address) identity beats fuzzy search; filters never
// empty the result set when data exists. All failures degrade to an
// empty list.
type PoolSource struct {
	client *resty.Client
}

// poolJSON mirrors one pool object from the API
type poolJSON struct {
	ChainID   string   `json:"chainId"`
	DexID     string   `json:"dexId"`
	URL       string   `json:"url"`
	Labels    []string `json:"labels"`
	BaseToken struct {
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
	} `json:"baseToken"`
	QuoteToken struct {
		Symbol string `json:"symbol"`
	} `json:"quoteToken"`
	PriceUSD    string `json:"priceUsd"`
	PriceChange struct {
		M5  floatOrString `json:"m5"`
		H1  floatOrString `json:"h1"`
		H6  floatOrString `json:"h6"`
		H24 floatOrString `json:"h24"`
	} `json:"priceChange"`
	Volume struct {
		H1  float64 `json:"h1"`
		H6  float64 `json:"h6"`
		H24 float64 `json:"h24"`
	} `json:"volume"`
	Liquidity struct {
		USD floatOrString `json:"usd"`
	} `json:"liquidity"`
	Txns struct {
		H1  txnJSON `json:"h1"`
		H24 txnJSON `json:"h24"`
	} `json:"txns"`
	MarketCap float64 `json:"marketCap"`
	FDV       float64 `json:"fdv"`
}

type txnJSON struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// floatOrString absorbs numeric fields the API serves either as numbers
// or as quoted strings; unparseable values decode to 0
type floatOrString float64

// UnmarshalJSON implements json.Unmarshaler
func (f *floatOrString) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		*f = 0
		return nil //nolint:nilerr // unparseable liquidity is treated as zero
	}
	*f = floatOrString(v)
	return nil
}

type searchResponse struct {
	Pairs []poolJSON `json:"pairs"`
}

// NewPoolSource creates a pool source
func NewPoolSource(cfg config.PoolConfig) *PoolSource {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &PoolSource{
		client: resty.New().
			SetBaseURL(cfg.Endpoint).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Fetch returns pools for a token ordered by liquidity, largest first.
// The list may be empty but the call never fails.
func (s *PoolSource) Fetch(ctx context.Context, token *domain.Token) []domain.PoolRecord {
	pools := s.lookup(ctx, token)

	// keep only USD-stable quoted pools, unless that loses all data
	if filtered := filterStableQuoted(pools); len(filtered) > 0 {
		pools = filtered
	}

	sort.SliceStable(pools, func(i, j int) bool {
		return pools[i].LiquidityUSD > pools[j].LiquidityUSD
	})
	return pools
}

// lookup tries the exact (chain, address) pair first, falling back to
// free-text search only when the exact lookup yields nothing
func (s *PoolSource) lookup(ctx context.Context, token *domain.Token) []domain.PoolRecord {
	if token.HasExactPair() {
		if pools := s.byTokenAddress(ctx, token.ChainID, token.Address); len(pools) > 0 {
			return pools
		}
	}
	return s.search(ctx, token)
}

// byTokenAddress queries pools for an exact (chain, address) pair
func (s *PoolSource) byTokenAddress(ctx context.Context, chainID, address string) []domain.PoolRecord {
	var body []poolJSON
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/token-pairs/v1/%s/%s", chainID, address))
	if err != nil {
		lgr.Printf("[WARN] pool lookup failed for %s/%s: %v", chainID, address, err)
		return nil
	}
	if resp.StatusCode() != 200 {
		lgr.Printf("[WARN] pool lookup returned %d for %s/%s", resp.StatusCode(), chainID, address)
		return nil
	}
	return toRecords(body)
}

// search queries pools by free text and narrows to the token's base
// symbol; an over-strict symbol filter falls back to the raw head
func (s *PoolSource) search(ctx context.Context, token *domain.Token) []domain.PoolRecord {
	var body searchResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("q", token.PoolQuery()).
		SetResult(&body).
		Get("/latest/dex/search")
	if err != nil {
		lgr.Printf("[WARN] pool search failed for %q: %v", token.PoolQuery(), err)
		return nil
	}
	if resp.StatusCode() != 200 {
		lgr.Printf("[WARN] pool search returned %d for %q", resp.StatusCode(), token.PoolQuery())
		return nil
	}

	all := toRecords(body.Pairs)
	matched := make([]domain.PoolRecord, 0, len(all))
	for _, p := range all {
		if strings.EqualFold(p.BaseSymbol, token.Symbol) {
			matched = append(matched, p)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	if len(all) > searchFallbackLimit {
		all = all[:searchFallbackLimit]
	}
	return all
}

// filterStableQuoted keeps pools whose quote side is a USD stablecoin
func filterStableQuoted(pools []domain.PoolRecord) []domain.PoolRecord {
	res := make([]domain.PoolRecord, 0, len(pools))
	for _, p := range pools {
		if usdStables[strings.ToUpper(p.QuoteSymbol)] {
			res = append(res, p)
		}
	}
	return res
}

// toRecords converts API pool objects to domain records
func toRecords(pools []poolJSON) []domain.PoolRecord {
	res := make([]domain.PoolRecord, 0, len(pools))
	for _, p := range pools {
		res = append(res, domain.PoolRecord{
			BaseSymbol:   p.BaseToken.Symbol,
			QuoteSymbol:  p.QuoteToken.Symbol,
			PriceUSD:     p.PriceUSD,
			Change5m:     float64(p.PriceChange.M5),
			Change1h:     float64(p.PriceChange.H1),
			Change6h:     float64(p.PriceChange.H6),
			Change24h:    float64(p.PriceChange.H24),
			Volume1h:     p.Volume.H1,
			Volume6h:     p.Volume.H6,
			Volume24h:    p.Volume.H24,
			LiquidityUSD: float64(p.Liquidity.USD),
			Txns1h:       domain.TxnCount{Buys: p.Txns.H1.Buys, Sells: p.Txns.H1.Sells},
			Txns24h:      domain.TxnCount{Buys: p.Txns.H24.Buys, Sells: p.Txns.H24.Sells},
			MarketCap:    p.MarketCap,
			FDV:          p.FDV,
			DexID:        p.DexID,
			Labels:       p.Labels,
			ChainID:      p.ChainID,
			URL:          p.URL,
		})
	}
	return res
}
