package source

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscope/coinscope/pkg/domain"
)

func TestNormalizeQuote(t *testing.T) {
	q := &domain.QuoteRecord{
		Name:      "OpenWorld",
		Symbol:    "OWB",
		Price:     0.0123,
		Change1h:  1.5,
		Change24h: -3.25,
		Change7d:  10,
		Volume24h: 1234567.89,
		MarketCap: 9500000,
	}

	block := NormalizeQuote(q)
	assert.True(t, strings.HasPrefix(block, "Source: CoinMarketCap\n"))
	assert.Contains(t, block, "Name: OpenWorld (OWB)")
	assert.Contains(t, block, "Change 24h: -3.25%")
	assert.Contains(t, block, "Change 1h: +1.50%")
	assert.Contains(t, block, "Volume 24h: $1,234,567.89")

	assert.Equal(t, block, NormalizeQuote(q), "identical input yields identical text")
	assert.Equal(t, "No CoinMarketCap data available", NormalizeQuote(nil))
}

func TestNormalizePools(t *testing.T) {
	pools := []domain.PoolRecord{
		{BaseSymbol: "OWB", QuoteSymbol: "USDC", PriceUSD: "0.0123", LiquidityUSD: 50000,
			DexID: "raydium", ChainID: "solana", Labels: []string{"v3"},
			Txns24h: domain.TxnCount{Buys: 100, Sells: 80}, URL: "https://dexscreener.com/p/1"},
		{BaseSymbol: "OWB", QuoteSymbol: "USDT", PriceUSD: "0.0124", LiquidityUSD: 30000,
			DexID: "orca", ChainID: "solana"},
	}

	block := NormalizePools(pools)
	assert.True(t, strings.HasPrefix(block, "Source: DexScreener\n"))
	assert.Contains(t, block, "Pair #1: OWB/USDC on raydium v3 (solana)")
	assert.Contains(t, block, "Pair #2: OWB/USDT on orca (solana)")
	assert.Contains(t, block, "Txns 24h: 100 buys / 80 sells")
	assert.Contains(t, block, "URL: https://dexscreener.com/p/1")

	assert.Equal(t, "No DexScreener data available", NormalizePools(nil))
}

func TestNormalizePools_TopThreeOnly(t *testing.T) {
	pools := make([]domain.PoolRecord, 5)
	for i := range pools {
		pools[i] = domain.PoolRecord{BaseSymbol: "OWB", QuoteSymbol: "USDC", DexID: "raydium", ChainID: "solana"}
	}

	block := NormalizePools(pools)
	assert.Contains(t, block, "Pair #3:")
	assert.NotContains(t, block, "Pair #4:", "only top pools make it into the prompt")
}

func TestNormalizePosts(t *testing.T) {
	published := time.Date(2023, 1, 2, 15, 4, 0, 0, time.UTC)
	posts := []domain.FeedPost{
		{Text: "OWB listing confirmed", Author: "@alice", Published: published, Link: "https://n/p/1"},
		{Text: strings.Repeat("x", 300)},
	}

	block := NormalizePosts(posts)
	assert.True(t, strings.HasPrefix(block, "Source: Twitter/X (via Nitter)\n"))
	assert.Contains(t, block, "Post #1 by @alice (2023-01-02 15:04)")
	assert.Contains(t, block, "Link: https://n/p/1")
	assert.Contains(t, block, "Post #2 by Unknown (N/A)")
	assert.Contains(t, block, strings.Repeat("x", 200)+"...", "long posts truncated")
	assert.NotContains(t, block, strings.Repeat("x", 201))

	assert.Equal(t, "No social media data available", NormalizePosts(nil))
}

func TestNormalizePosts_CapsCount(t *testing.T) {
	posts := make([]domain.FeedPost, 20)
	for i := range posts {
		posts[i] = domain.FeedPost{Text: "post", Author: "@a"}
	}

	block := NormalizePosts(posts)
	assert.Contains(t, block, "Post #15")
	assert.NotContains(t, block, "Post #16")
}

func TestNormalizeNews(t *testing.T) {
	articles := []domain.NewsArticle{
		{Title: "OpenWorld mainnet live", Source: "CoinDesk", Body: "The network launched today", URL: "https://news/1"},
		{Title: "Headline only"},
	}

	block := NormalizeNews(articles)
	assert.True(t, strings.HasPrefix(block, "Source: CryptoCompare News\n"))
	assert.Contains(t, block, "Article #1: OpenWorld mainnet live")
	assert.Contains(t, block, "Source: CoinDesk")
	assert.Contains(t, block, "Summary: The network launched today")
	assert.Contains(t, block, "Article #2: Headline only")

	assert.Equal(t, "No crypto news available at this time", NormalizeNews(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))

	// rune-safe on multibyte text
	res := truncate(strings.Repeat("я", 10), 5)
	require.Equal(t, strings.Repeat("я", 5)+"...", res)
}
