package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/domain"
)

// completionRequest is the slice of the chat completion payload the
// tests need to inspect
type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionServer(t *testing.T, content string, capture *completionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		fmt.Fprintf(w, `{"choices": [{"message": {"role": "assistant", "content": %q}}]}`, content)
	}))
}

func testRequest() Request {
	return Request{
		Token: &domain.Token{Symbol: "OWB", Name: "OpenWorld"},
		Kind:  domain.ReportMorning,
		Blocks: domain.SourceBlocks{
			Market: "Source: CoinMarketCap\nPrice: $0.01",
			Dex:    "Source: DexScreener\nPair #1",
			Social: "Source: Twitter/X (via Nitter)\nPost #1",
			News:   "Source: CryptoCompare News\nArticle #1",
		},
		Memory: []domain.MemoryEntry{{Key: "analysis_style", Value: "concise"}},
	}
}

func TestGenerator_Generate(t *testing.T) {
	var captured completionRequest
	ts := completionServer(t, "OWB is up today", &captured)
	defer ts.Close()

	gen := New(config.LLMConfig{Endpoint: ts.URL, APIKey: "key", Model: "test-model", MaxTokens: 100})
	out := gen.Generate(context.Background(), testRequest())

	assert.Equal(t, "OWB is up today", out)
	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)

	user := captured.Messages[1].Content
	assert.Contains(t, user, "morning crypto market summary for OpenWorld (OWB)")
	assert.Contains(t, user, "Source: CoinMarketCap\nPrice: $0.01")
	assert.Contains(t, user, "Source: DexScreener")
	assert.Contains(t, user, "Source: Twitter/X (via Nitter)")
	assert.Contains(t, user, "Source: CryptoCompare News", "news rides in the social slot")
	assert.Contains(t, user, "- analysis_style: concise")
	assert.NotContains(t, user, "{market_data}", "all placeholders substituted")
}

func TestGenerator_CustomTemplates(t *testing.T) {
	var captured completionRequest
	ts := completionServer(t, "ok", &captured)
	defer ts.Close()

	gen := New(config.LLMConfig{Endpoint: ts.URL, APIKey: "key", Model: "m"})
	req := testRequest()
	req.SystemPrompt = "custom system"
	req.SummaryTemplate = "only {coin_symbol} and {report_type}"
	gen.Generate(context.Background(), req)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "custom system", captured.Messages[0].Content)
	assert.Equal(t, "only OWB and morning", captured.Messages[1].Content)
}

func TestGenerator_EmptyMemory(t *testing.T) {
	var captured completionRequest
	ts := completionServer(t, "ok", &captured)
	defer ts.Close()

	gen := New(config.LLMConfig{Endpoint: ts.URL, APIKey: "key", Model: "m"})
	req := testRequest()
	req.Memory = nil
	gen.Generate(context.Background(), req)

	assert.Contains(t, captured.Messages[1].Content, "No learned context yet")
}

func TestGenerator_EmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices": []}`},
		{"empty content", `{"choices": [{"message": {"role": "assistant", "content": ""}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			gen := New(config.LLMConfig{Endpoint: ts.URL, APIKey: "key", Model: "m"})
			assert.Equal(t, "AI returned empty response", gen.Generate(context.Background(), testRequest()))
		})
	}
}

func TestGenerator_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": {"message": "upstream exploded"}}`)
	}))
	defer ts.Close()

	gen := New(config.LLMConfig{Endpoint: ts.URL, APIKey: "key", Model: "m"})
	out := gen.Generate(context.Background(), testRequest())
	assert.Contains(t, out, "AI analysis unavailable:")
	assert.LessOrEqual(t, len(out), len("AI analysis unavailable: ")+100)
}

func TestGenerator_TimeoutBoundsSlowEndpoint(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release // endpoint hangs until the test is over
	}))
	defer ts.Close()
	defer close(release)

	gen := New(config.LLMConfig{Endpoint: ts.URL, APIKey: "key", Model: "m", Timeout: 100 * time.Millisecond})

	started := time.Now()
	out := gen.Generate(context.Background(), testRequest())
	assert.Contains(t, out, "AI analysis unavailable:")
	assert.Less(t, time.Since(started), 2*time.Second, "call bounded by the configured timeout")
}

func TestGenerator_NotConfigured(t *testing.T) {
	gen := New(config.LLMConfig{})
	out := gen.Generate(context.Background(), testRequest())
	assert.Equal(t, "AI analysis not configured (missing API key)", out)
}

func TestRenderMemory(t *testing.T) {
	entries := []domain.MemoryEntry{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
	}
	assert.Equal(t, "- a: 1\n- b: 2", renderMemory(entries))
	assert.Equal(t, "No learned context yet", renderMemory(nil))
}
