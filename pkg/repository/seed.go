package repository

import (
	"context"
	"fmt"
)

// default generation templates, inserted once so the first run works
// out of the box; operators edit them in place afterwards
const (
	seedSystemPrompt = "You are a professional cryptocurrency analyst bot. " +
		"You provide clear, concise, and actionable market summaries. " +
		"Analyze the provided data and generate a comprehensive summary including:\n" +
		"- Current price and price changes (daily)\n" +
		"- Trading volume and liquidity analysis\n" +
		"- Buy vs sell pressure analysis\n" +
		"- Notable transactions or whale activity\n" +
		"- Social media sentiment\n" +
		"- Key news and developments\n" +
		"- Brief outlook and important levels to watch\n\n" +
		"Format your response with emojis for readability. " +
		"Be factual and data-driven. If data is missing, note it clearly. " +
		"Keep the summary under 2000 characters for readability."

	seedSummaryTemplate = "Generate a {report_type} crypto market summary for {coin_name} ({coin_symbol}).\n\n" +
		"=== MARKET DATA ===\n{market_data}\n\n" +
		"=== DEX DATA ===\n{dex_data}\n\n" +
		"=== SOCIAL MEDIA / NEWS ===\n{twitter_data}\n\n" +
		"=== AI MEMORY (learned context) ===\n{ai_memory}\n\n" +
		"Provide a well-structured summary with all available metrics. " +
		"Use emojis for visual structure. Include buy/sell volumes, price change, " +
		"and any significant observations."
)

// seedDefaults inserts default tokens, templates and memory entries on
// first start; existing rows are never touched
func (s *Store) seedDefaults(ctx context.Context) error {
	tokens := []struct {
		symbol, name, searchQuery, feedQueries string
	}{
		{"OWB", "OpenWorld", "OWB", `["owb", "#owb", "#OWB", "$OWB"]`},
		{"RNBW", "Rainbow", "rainbow token", `["rnbw", "rainbow", "#rnbw", "#rainbow", "#RNBW", "$RNBW"]`},
	}
	for _, t := range tokens {
		_, err := s.DB.ExecContext(ctx, `
			INSERT OR IGNORE INTO tokens (symbol, name, search_query, feed_queries, active)
			VALUES (?, ?, ?, ?, 1)`,
			t.symbol, t.name, t.searchQuery, t.feedQueries)
		if err != nil {
			return fmt.Errorf("seed token %s: %w", t.symbol, err)
		}
	}

	templates := map[string]string{
		"system_prompt":    seedSystemPrompt,
		"summary_template": seedSummaryTemplate,
	}
	for name, body := range templates {
		_, err := s.DB.ExecContext(ctx,
			"INSERT OR IGNORE INTO templates (name, body, active) VALUES (?, ?, 1)", name, body)
		if err != nil {
			return fmt.Errorf("seed template %s: %w", name, err)
		}
	}

	memory := map[string]string{
		"analysis_style":  "Professional, concise, data-driven with emoji formatting",
		"target_audience": "Crypto traders and investors interested in tracked tokens",
		"language":        "English with crypto terminology",
	}
	for key, value := range memory {
		_, err := s.DB.ExecContext(ctx,
			"INSERT OR IGNORE INTO memory (key, value) VALUES (?, ?)", key, value)
		if err != nil {
			return fmt.Errorf("seed memory %s: %w", key, err)
		}
	}

	return nil
}
