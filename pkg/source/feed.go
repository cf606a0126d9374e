package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/domain"
)

// maxQueries caps how many query terms a single search fans out to
const maxQueries = 5

// FeedSource fetches recent social posts from a failover pool of
// Nitter-style mirror endpoints. Mirrors are attempted in priority order
// per query; a query is abandoned only when every mirror fails for it.
// Absence of social data never blocks report generation, so the source
// returns an empty list instead of an error.
type FeedSource struct {
	mirrors   []string
	parser    *gofeed.Parser
	sanitizer *bluemonday.Policy
	timeout   time.Duration
}

// NewFeedSource creates a feed source over the configured mirror pool
func NewFeedSource(cfg config.FeedConfig) *FeedSource {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &FeedSource{
		mirrors:   cfg.Mirrors,
		parser:    gofeed.NewParser(),
		sanitizer: bluemonday.StrictPolicy(),
		timeout:   timeout,
	}
}

// Search fetches posts matching the query terms, deduplicated by post
// identity in first-seen order and truncated to maxResults
func (s *FeedSource) Search(ctx context.Context, queries []string, maxResults int) []domain.FeedPost {
	if len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}

	var all []domain.FeedPost
	for _, q := range queries {
		posts := s.firstAnswering(ctx, func(mirror string) string {
			return fmt.Sprintf("%s/search/rss?f=tweets&q=%s", mirror, url.QueryEscape(q))
		})
		if posts == nil {
			lgr.Printf("[WARN] all mirrors failed for query %q", q)
			continue
		}
		all = append(all, posts...)
	}

	return dedupPosts(all, maxResults)
}

// ByAuthor fetches recent posts of a single author through the same
// failover pool
func (s *FeedSource) ByAuthor(ctx context.Context, handle string, maxResults int) []domain.FeedPost {
	handle = strings.TrimPrefix(handle, "@")
	posts := s.firstAnswering(ctx, func(mirror string) string {
		return fmt.Sprintf("%s/%s/rss", mirror, url.PathEscape(handle))
	})
	if posts == nil {
		lgr.Printf("[WARN] all mirrors failed for author %q", handle)
		return []domain.FeedPost{}
	}
	return dedupPosts(posts, maxResults)
}

// firstAnswering walks the mirror pool in priority order and returns the
// first non-empty result; nil means every mirror failed or was empty
func (s *FeedSource) firstAnswering(ctx context.Context, buildURL func(mirror string) string) []domain.FeedPost {
	for _, mirror := range s.mirrors {
		posts, err := s.fetchFeed(ctx, buildURL(strings.TrimSuffix(mirror, "/")))
		if err != nil {
			lgr.Printf("[DEBUG] mirror %s failed: %v", mirror, err)
			continue
		}
		if len(posts) > 0 {
			return posts
		}
	}
	return nil
}

// fetchFeed retrieves and parses one syndication feed URL
func (s *FeedSource) fetchFeed(ctx context.Context, feedURL string) ([]domain.FeedPost, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	posts := make([]domain.FeedPost, 0, len(feed.Items))
	for _, item := range feed.Items {
		post := domain.FeedPost{
			Text: strings.TrimSpace(s.sanitizer.Sanitize(firstNonEmpty(item.Description, item.Title))),
			Link: item.Link,
		}
		if item.Author != nil {
			post.Author = item.Author.Name
		}
		if post.Author == "" && item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
			post.Author = item.DublinCoreExt.Creator[0]
		}
		if item.PublishedParsed != nil {
			post.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			post.Published = *item.UpdatedParsed
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// dedupPosts removes duplicates by stable identity (permalink, falling
// back to text) preserving first-seen order, then truncates
func dedupPosts(posts []domain.FeedPost, maxResults int) []domain.FeedPost {
	seen := make(map[string]bool, len(posts))
	unique := make([]domain.FeedPost, 0, len(posts))
	for _, p := range posts {
		key := p.Link
		if key == "" {
			key = p.Text
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	if maxResults > 0 && len(unique) > maxResults {
		unique = unique[:maxResults]
	}
	return unique
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
