// Package scheduler orchestrates the aggregation pipeline: per-token
// multi-source collection, normalization, report generation and
// persistence, triggered at fixed times of day or on demand.
package scheduler

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/coinscope/coinscope/pkg/domain"
	"github.com/coinscope/coinscope/pkg/generator"
	"github.com/coinscope/coinscope/pkg/source"
)

//go:generate moq -out mocks/quote_provider.go -pkg mocks -skip-ensure -fmt goimports . QuoteProvider
//go:generate moq -out mocks/pool_provider.go -pkg mocks -skip-ensure -fmt goimports . PoolProvider
//go:generate moq -out mocks/feed_provider.go -pkg mocks -skip-ensure -fmt goimports . FeedProvider
//go:generate moq -out mocks/news_provider.go -pkg mocks -skip-ensure -fmt goimports . NewsProvider
//go:generate moq -out mocks/report_generator.go -pkg mocks -skip-ensure -fmt goimports . ReportGenerator
//go:generate moq -out mocks/context_store.go -pkg mocks -skip-ensure -fmt goimports . ContextStore

// QuoteProvider fetches one canonical quote record; nil means no data
type QuoteProvider interface {
	Fetch(ctx context.Context, symbol string) *domain.QuoteRecord
}

// PoolProvider fetches DEX pools ordered by liquidity
type PoolProvider interface {
	Fetch(ctx context.Context, token *domain.Token) []domain.PoolRecord
}

// FeedProvider fetches recent social posts for query terms
type FeedProvider interface {
	Search(ctx context.Context, queries []string, maxResults int) []domain.FeedPost
}

// NewsProvider fetches news headlines for keywords
type NewsProvider interface {
	Fetch(ctx context.Context, keywords []string, limit int) []domain.NewsArticle
}

// ReportGenerator turns a generation request into narrative text
type ReportGenerator interface {
	Generate(ctx context.Context, req generator.Request) string
}

// ContextStore is the persistence boundary the pipeline reads from and
// writes reports to
type ContextStore interface {
	GetActiveTokens(ctx context.Context) ([]domain.Token, error)
	GetTemplate(ctx context.Context, name string) (string, error)
	GetAllMemory(ctx context.Context) ([]domain.MemoryEntry, error)
	SaveReport(ctx context.Context, report *domain.Report) error
	GetSubscribedRecipients(ctx context.Context) ([]domain.Recipient, error)
}

// per-run collection limits
const (
	maxFeedPosts    = 15
	maxNewsArticles = 8
)

// Aggregator runs the collect-normalize-generate-persist pipeline for
// one token. Source failures are already absorbed into "no data"
// signals by the sources, so there are no error branches for partial
// data here.
type Aggregator struct {
	quotes QuoteProvider
	pools  PoolProvider
	feed   FeedProvider
	news   NewsProvider
	gen    ReportGenerator
	store  ContextStore
}

// NewAggregator creates an aggregator over the given collaborators
func NewAggregator(quotes QuoteProvider, pools PoolProvider, feed FeedProvider, news NewsProvider,
	gen ReportGenerator, store ContextStore) *Aggregator {
	return &Aggregator{quotes: quotes, pools: pools, feed: feed, news: news, gen: gen, store: store}
}

// Run aggregates all sources for a token, generates the narrative and
// persists the result. The returned report always carries content, a
// degraded placeholder at worst.
func (a *Aggregator) Run(ctx context.Context, token *domain.Token, kind domain.ReportKind) (*domain.Report, error) {
	blocks := a.collect(ctx, token)

	memory, err := a.store.GetAllMemory(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to load memory, generating without it: %v", err)
	}
	systemPrompt, err := a.store.GetTemplate(ctx, "system_prompt")
	if err != nil {
		lgr.Printf("[WARN] failed to load system prompt template: %v", err)
	}
	summaryTemplate, err := a.store.GetTemplate(ctx, "summary_template")
	if err != nil {
		lgr.Printf("[WARN] failed to load summary template: %v", err)
	}

	content := a.gen.Generate(ctx, generator.Request{
		Token:           token,
		Kind:            kind,
		Blocks:          blocks,
		Memory:          memory,
		SystemPrompt:    systemPrompt,
		SummaryTemplate: summaryTemplate,
	})

	raw, err := json.Marshal(blocks)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Symbol:    token.Symbol,
		Kind:      kind,
		Content:   content,
		RawBlocks: string(raw),
	}
	if err := a.store.SaveReport(ctx, report); err != nil {
		return report, err
	}

	lgr.Printf("[INFO] generated %s report for %s (%d chars)", kind, token.Symbol, len(content))
	return report, nil
}

// collect invokes all sources concurrently and normalizes each result.
// Sources share no mutable state; each goroutine writes only its own
// slot.
func (a *Aggregator) collect(ctx context.Context, token *domain.Token) domain.SourceBlocks {
	var (
		quote    *domain.QuoteRecord
		pools    []domain.PoolRecord
		posts    []domain.FeedPost
		articles []domain.NewsArticle
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		quote = a.quotes.Fetch(ctx, token.Symbol)
	}()
	go func() {
		defer wg.Done()
		pools = a.pools.Fetch(ctx, token)
	}()
	go func() {
		defer wg.Done()
		posts = a.feed.Search(ctx, token.FeedQueries, maxFeedPosts)
	}()
	go func() {
		defer wg.Done()
		articles = a.news.Fetch(ctx, newsKeywords(token), maxNewsArticles)
	}()
	wg.Wait()

	return domain.SourceBlocks{
		Market: source.NormalizeQuote(quote),
		Dex:    source.NormalizePools(pools),
		Social: source.NormalizePosts(posts),
		News:   source.NormalizeNews(articles),
	}
}

// newsKeywords derives the keyword filter for the news source
func newsKeywords(token *domain.Token) []string {
	return []string{token.Symbol, token.Name}
}
