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

// NewsSource fetches general crypto headlines from a free news API and
// filters them client-side by keyword. When nothing matches the keywords
// the top general headlines are returned instead, so the generator still
// gets market context.
type NewsSource struct {
	client   *resty.Client
	endpoint string
}

type newsResponse struct {
	Data []struct {
		Title      string `json:"title"`
		Body       string `json:"body"`
		URL        string `json:"url"`
		Source     string `json:"source"`
		SourceInfo struct {
			Name string `json:"name"`
		} `json:"source_info"`
	} `json:"Data"`
}

// NewNewsSource creates a news source
func NewNewsSource(cfg config.NewsConfig) *NewsSource {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &NewsSource{
		client:   resty.New().SetTimeout(timeout).SetHeader("Accept", "application/json"),
		endpoint: cfg.Endpoint,
	}
}

// Fetch returns up to limit articles mentioning any of the keywords,
// falling back to general headlines; failures degrade to an empty list
func (s *NewsSource) Fetch(ctx context.Context, keywords []string, limit int) []domain.NewsArticle {
	var body newsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"lang": "EN", "extraParams": "coinscope"}).
		SetResult(&body).
		Get(s.endpoint)
	if err != nil {
		lgr.Printf("[WARN] news fetch failed: %v", err)
		return nil
	}
	if resp.StatusCode() != 200 {
		lgr.Printf("[WARN] news API returned %d", resp.StatusCode())
		return nil
	}

	articles := make([]domain.NewsArticle, 0, len(body.Data))
	for _, a := range body.Data {
		src := a.SourceInfo.Name
		if src == "" {
			src = a.Source
		}
		articles = append(articles, domain.NewsArticle{Title: a.Title, Source: src, Body: a.Body, URL: a.URL})
	}

	if len(keywords) > 0 {
		matched := make([]domain.NewsArticle, 0, len(articles))
		for _, a := range articles {
			text := strings.ToLower(a.Title + " " + a.Body)
			for _, kw := range keywords {
				if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
					matched = append(matched, a)
					break
				}
			}
		}
		if len(matched) > 0 {
			articles = matched
		}
	}

	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}
