package scheduler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscope/coinscope/pkg/domain"
	"github.com/coinscope/coinscope/pkg/generator"
	"github.com/coinscope/coinscope/pkg/scheduler/mocks"
)

func aggregatorFixtures() (*mocks.QuoteProviderMock, *mocks.PoolProviderMock, *mocks.FeedProviderMock, *mocks.NewsProviderMock) {
	quotes := &mocks.QuoteProviderMock{
		FetchFunc: func(ctx context.Context, symbol string) *domain.QuoteRecord {
			return &domain.QuoteRecord{Name: "OpenWorld", Symbol: symbol, Price: 0.01}
		},
	}
	pools := &mocks.PoolProviderMock{
		FetchFunc: func(ctx context.Context, token *domain.Token) []domain.PoolRecord {
			return []domain.PoolRecord{{BaseSymbol: token.Symbol, QuoteSymbol: "USDC", DexID: "raydium", ChainID: "solana"}}
		},
	}
	feed := &mocks.FeedProviderMock{
		SearchFunc: func(ctx context.Context, queries []string, maxResults int) []domain.FeedPost {
			return []domain.FeedPost{{Text: "bullish", Author: "@alice"}}
		},
	}
	news := &mocks.NewsProviderMock{
		FetchFunc: func(ctx context.Context, keywords []string, limit int) []domain.NewsArticle {
			return []domain.NewsArticle{{Title: "OpenWorld news"}}
		},
	}
	return quotes, pools, feed, news
}

func testStore() *mocks.ContextStoreMock {
	return &mocks.ContextStoreMock{
		GetAllMemoryFunc: func(ctx context.Context) ([]domain.MemoryEntry, error) {
			return []domain.MemoryEntry{{Key: "style", Value: "terse"}}, nil
		},
		GetTemplateFunc: func(ctx context.Context, name string) (string, error) {
			return "", nil
		},
		SaveReportFunc: func(ctx context.Context, report *domain.Report) error {
			report.ID = 1
			return nil
		},
	}
}

func TestAggregator_Run(t *testing.T) {
	quotes, pools, feed, news := aggregatorFixtures()
	store := testStore()
	gen := &mocks.ReportGeneratorMock{
		GenerateFunc: func(ctx context.Context, req generator.Request) string {
			return "narrative text"
		},
	}

	agg := NewAggregator(quotes, pools, feed, news, gen, store)
	token := &domain.Token{Symbol: "OWB", Name: "OpenWorld", FeedQueries: []string{"#owb"}}

	report, err := agg.Run(context.Background(), token, domain.ReportMorning)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "OWB", report.Symbol)
	assert.Equal(t, domain.ReportMorning, report.Kind)
	assert.Equal(t, "narrative text", report.Content)

	// every source consulted exactly once
	assert.Len(t, quotes.FetchCalls(), 1)
	assert.Len(t, pools.FetchCalls(), 1)
	require.Len(t, feed.SearchCalls(), 1)
	assert.Equal(t, []string{"#owb"}, feed.SearchCalls()[0].Queries)
	require.Len(t, news.FetchCalls(), 1)
	assert.Equal(t, []string{"OWB", "OpenWorld"}, news.FetchCalls()[0].Keywords)

	// generator sees normalized blocks and memory
	require.Len(t, gen.GenerateCalls(), 1)
	genReq := gen.GenerateCalls()[0].Req
	assert.Contains(t, genReq.Blocks.Market, "Source: CoinMarketCap")
	assert.Contains(t, genReq.Blocks.Dex, "OWB/USDC")
	assert.Contains(t, genReq.Blocks.Social, "bullish")
	assert.Contains(t, genReq.Blocks.News, "OpenWorld news")
	assert.Equal(t, "terse", genReq.Memory[0].Value)

	// raw blocks persisted as JSON alongside the narrative
	require.Len(t, store.SaveReportCalls(), 1)
	saved := store.SaveReportCalls()[0].Report
	var blocks domain.SourceBlocks
	require.NoError(t, json.Unmarshal([]byte(saved.RawBlocks), &blocks))
	assert.Equal(t, genReq.Blocks, blocks)
}

func TestAggregator_AllSourcesEmpty(t *testing.T) {
	quotes := &mocks.QuoteProviderMock{
		FetchFunc: func(ctx context.Context, symbol string) *domain.QuoteRecord { return nil },
	}
	pools := &mocks.PoolProviderMock{
		FetchFunc: func(ctx context.Context, token *domain.Token) []domain.PoolRecord { return nil },
	}
	feed := &mocks.FeedProviderMock{
		SearchFunc: func(ctx context.Context, queries []string, maxResults int) []domain.FeedPost { return nil },
	}
	news := &mocks.NewsProviderMock{
		FetchFunc: func(ctx context.Context, keywords []string, limit int) []domain.NewsArticle { return nil },
	}
	gen := &mocks.ReportGeneratorMock{
		GenerateFunc: func(ctx context.Context, req generator.Request) string { return "degraded" },
	}

	agg := NewAggregator(quotes, pools, feed, news, gen, testStore())
	token := &domain.Token{Symbol: "OWB", Name: "OpenWorld"}

	report, err := agg.Run(context.Background(), token, domain.ReportEvening)
	require.NoError(t, err)
	require.NotNil(t, report, "total source unavailability still yields a report")

	genReq := gen.GenerateCalls()[0].Req
	assert.Equal(t, "No CoinMarketCap data available", genReq.Blocks.Market)
	assert.Equal(t, "No DexScreener data available", genReq.Blocks.Dex)
	assert.Equal(t, "No social media data available", genReq.Blocks.Social)
	assert.Equal(t, "No crypto news available at this time", genReq.Blocks.News)
}

func TestAggregator_StoreReadFailuresDoNotBlock(t *testing.T) {
	quotes, pools, feed, news := aggregatorFixtures()
	store := testStore()
	store.GetAllMemoryFunc = func(ctx context.Context) ([]domain.MemoryEntry, error) {
		return nil, assert.AnError
	}
	store.GetTemplateFunc = func(ctx context.Context, name string) (string, error) {
		return "", assert.AnError
	}
	gen := &mocks.ReportGeneratorMock{
		GenerateFunc: func(ctx context.Context, req generator.Request) string { return "still generated" },
	}

	agg := NewAggregator(quotes, pools, feed, news, gen, store)
	report, err := agg.Run(context.Background(), &domain.Token{Symbol: "OWB", Name: "OpenWorld"}, domain.ReportMorning)
	require.NoError(t, err)
	assert.Equal(t, "still generated", report.Content)

	genReq := gen.GenerateCalls()[0].Req
	assert.Empty(t, genReq.Memory)
	assert.Empty(t, genReq.SystemPrompt, "defaults kick in downstream")
}

func TestAggregator_SaveFailureReturnsReport(t *testing.T) {
	quotes, pools, feed, news := aggregatorFixtures()
	store := testStore()
	store.SaveReportFunc = func(ctx context.Context, report *domain.Report) error { return assert.AnError }
	gen := &mocks.ReportGeneratorMock{
		GenerateFunc: func(ctx context.Context, req generator.Request) string { return "content" },
	}

	agg := NewAggregator(quotes, pools, feed, news, gen, store)
	report, err := agg.Run(context.Background(), &domain.Token{Symbol: "OWB", Name: "OpenWorld"}, domain.ReportMorning)
	require.Error(t, err)
	require.NotNil(t, report, "report survives persistence failure so it can still be delivered")
	assert.Equal(t, "content", report.Content)
}
