// Package generator assembles prompts from templates, learned memory and
// normalized source blocks, and turns them into narrative report text
// through an OpenAI-compatible chat completion endpoint.
package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/domain"
)

// built-in fallbacks used when no active template row exists, so
// generation never hard-fails for a missing template
const (
	defaultSystemPrompt = "You are a cryptocurrency analyst. Provide clear, concise and data-driven market summaries. " +
		"If data is missing, note it clearly. Keep the summary under 2000 characters."

	defaultSummaryTemplate = "Generate a {report_type} crypto market summary for {coin_name} ({coin_symbol}).\n\n" +
		"=== MARKET DATA ===\n{market_data}\n\n" +
		"=== DEX DATA ===\n{dex_data}\n\n" +
		"=== SOCIAL MEDIA / NEWS ===\n{twitter_data}\n\n" +
		"=== AI MEMORY (learned context) ===\n{ai_memory}\n\n" +
		"Provide a well-structured summary with all available metrics. " +
		"Include buy/sell volumes, price change, and any significant observations."

	emptyMemorySentinel = "No learned context yet"
)

// degraded-service texts returned instead of errors; a failed generation
// must never abort aggregation for other tokens
const (
	msgNotConfigured = "AI analysis not configured (missing API key)"
	msgEmptyResponse = "AI returned empty response"
)

// Generator produces narrative text from templates and source blocks
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	configured  bool
}

// Request carries everything one generation run needs. Templates are
// resolved by the caller; empty strings select the built-in defaults.
type Request struct {
	Token           *domain.Token
	Kind            domain.ReportKind
	Blocks          domain.SourceBlocks
	Memory          []domain.MemoryEntry
	SystemPrompt    string
	SummaryTemplate string
}

// New creates a generator. A missing API key is logged once here and
// makes every Generate call return a degraded placeholder.
func New(cfg config.LLMConfig) *Generator {
	if cfg.APIKey == "" {
		lgr.Printf("[WARN] LLM API key not configured, reports will be degraded")
		return &Generator{configured: false}
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		// a hung completion endpoint must not stall the whole run
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Generator{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
		configured:  true,
	}
}

// Generate returns narrative text for the request. It never returns an
// error: generation failures degrade to short labeled placeholders that
// are persisted like any other report.
func (g *Generator) Generate(ctx context.Context, req Request) string {
	userPrompt := g.buildPrompt(req)
	return g.complete(ctx, firstNonEmpty(req.SystemPrompt, defaultSystemPrompt), userPrompt)
}

// buildPrompt substitutes named placeholders into the summary template
func (g *Generator) buildPrompt(req Request) string {
	tmpl := firstNonEmpty(req.SummaryTemplate, defaultSummaryTemplate)

	social := req.Blocks.Social
	if req.Blocks.News != "" {
		social += "\n\n" + req.Blocks.News
	}

	r := strings.NewReplacer(
		"{report_type}", string(req.Kind),
		"{coin_name}", req.Token.Name,
		"{coin_symbol}", req.Token.Symbol,
		"{market_data}", req.Blocks.Market,
		"{dex_data}", req.Blocks.Dex,
		"{twitter_data}", social,
		"{ai_memory}", renderMemory(req.Memory),
	)
	return r.Replace(tmpl)
}

// complete invokes the chat completion endpoint with degradation on
// every failure mode
func (g *Generator) complete(ctx context.Context, systemPrompt, userPrompt string) string {
	if !g.configured {
		return msgNotConfigured
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		lgr.Printf("[ERROR] generation failed: %v", err)
		return fmt.Sprintf("AI analysis unavailable: %s", trim(err.Error(), 100))
	}
	if len(resp.Choices) == 0 {
		lgr.Printf("[WARN] generation returned no choices")
		return msgEmptyResponse
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return msgEmptyResponse
	}
	return content
}

// renderMemory flattens memory entries into bulleted context lines
func renderMemory(entries []domain.MemoryEntry) string {
	if len(entries) == 0 {
		return emptyMemorySentinel
	}
	lines := make([]string, 0, len(entries))
	for _, m := range entries {
		lines = append(lines, fmt.Sprintf("- %s: %s", m.Key, m.Value))
	}
	return strings.Join(lines, "\n")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func trim(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
