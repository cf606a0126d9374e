package source

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/coinscope/coinscope/pkg/domain"
)

// Normalization converts each source's records into a fixed-shape,
// source-labeled text block for prompt assembly. The functions are pure:
// identical input always yields identical text, and empty input maps to
// an explicit "no data" sentinel so every prompt slot is non-empty.

// limits on how much of each source makes it into the prompt
const (
	maxPoolsInBlock    = 3
	maxPostsInBlock    = 15
	maxArticlesInBlock = 10
	maxPostTextLen     = 200
	maxArticleBodyLen  = 200
)

// NormalizeQuote renders a quote record as a labeled metric block
func NormalizeQuote(q *domain.QuoteRecord) string {
	if q == nil {
		return "No CoinMarketCap data available"
	}

	var sb strings.Builder
	sb.WriteString("Source: CoinMarketCap\n")
	fmt.Fprintf(&sb, "Name: %s (%s)\n", q.Name, q.Symbol)
	fmt.Fprintf(&sb, "Price: $%.8f\n", q.Price)
	fmt.Fprintf(&sb, "Change 1h: %+.2f%%\n", q.Change1h)
	fmt.Fprintf(&sb, "Change 24h: %+.2f%%\n", q.Change24h)
	fmt.Fprintf(&sb, "Change 7d: %+.2f%%\n", q.Change7d)
	fmt.Fprintf(&sb, "Volume 24h: $%s\n", money(q.Volume24h))
	fmt.Fprintf(&sb, "Market Cap: $%s", money(q.MarketCap))
	return sb.String()
}

// NormalizePools renders the top pools as a labeled block, one group of
// lines per pool
func NormalizePools(pools []domain.PoolRecord) string {
	if len(pools) == 0 {
		return "No DexScreener data available"
	}
	if len(pools) > maxPoolsInBlock {
		pools = pools[:maxPoolsInBlock]
	}

	var sb strings.Builder
	sb.WriteString("Source: DexScreener\n")
	for i, p := range pools {
		venue := p.DexID
		if len(p.Labels) > 0 {
			venue += " " + strings.Join(p.Labels, ", ")
		}
		fmt.Fprintf(&sb, "--- Pair #%d: %s/%s on %s (%s) ---\n", i+1, p.BaseSymbol, p.QuoteSymbol, venue, p.ChainID)
		fmt.Fprintf(&sb, "Price USD: $%s\n", p.PriceUSD)
		fmt.Fprintf(&sb, "Price change 5m: %.2f%%\n", p.Change5m)
		fmt.Fprintf(&sb, "Price change 1h: %.2f%%\n", p.Change1h)
		fmt.Fprintf(&sb, "Price change 6h: %.2f%%\n", p.Change6h)
		fmt.Fprintf(&sb, "Price change 24h: %.2f%%\n", p.Change24h)
		fmt.Fprintf(&sb, "Volume 24h: $%s\n", money(p.Volume24h))
		fmt.Fprintf(&sb, "Volume 6h: $%s\n", money(p.Volume6h))
		fmt.Fprintf(&sb, "Volume 1h: $%s\n", money(p.Volume1h))
		fmt.Fprintf(&sb, "Liquidity USD: $%s\n", money(p.LiquidityUSD))
		fmt.Fprintf(&sb, "Txns 24h: %d buys / %d sells\n", p.Txns24h.Buys, p.Txns24h.Sells)
		fmt.Fprintf(&sb, "Txns 1h: %d buys / %d sells\n", p.Txns1h.Buys, p.Txns1h.Sells)
		fmt.Fprintf(&sb, "Market Cap: $%s\n", money(p.MarketCap))
		fmt.Fprintf(&sb, "FDV: $%s\n", money(p.FDV))
		if p.URL != "" {
			fmt.Fprintf(&sb, "URL: %s\n", p.URL)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// NormalizePosts renders social posts as a labeled block
func NormalizePosts(posts []domain.FeedPost) string {
	if len(posts) == 0 {
		return "No social media data available"
	}
	if len(posts) > maxPostsInBlock {
		posts = posts[:maxPostsInBlock]
	}

	var sb strings.Builder
	sb.WriteString("Source: Twitter/X (via Nitter)\n")
	for i, p := range posts {
		author := p.Author
		if author == "" {
			author = "Unknown"
		}
		published := "N/A"
		if !p.Published.IsZero() {
			published = p.Published.UTC().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&sb, "Post #%d by %s (%s):\n", i+1, author, published)
		fmt.Fprintf(&sb, "  %s\n", truncate(p.Text, maxPostTextLen))
		if p.Link != "" {
			fmt.Fprintf(&sb, "  Link: %s\n", p.Link)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// NormalizeNews renders news articles as a labeled block
func NormalizeNews(articles []domain.NewsArticle) string {
	if len(articles) == 0 {
		return "No crypto news available at this time"
	}
	if len(articles) > maxArticlesInBlock {
		articles = articles[:maxArticlesInBlock]
	}

	var sb strings.Builder
	sb.WriteString("Source: CryptoCompare News\n")
	for i, a := range articles {
		fmt.Fprintf(&sb, "Article #%d: %s\n", i+1, a.Title)
		if a.Source != "" {
			fmt.Fprintf(&sb, "  Source: %s\n", a.Source)
		}
		if a.Body != "" {
			fmt.Fprintf(&sb, "  Summary: %s\n", truncate(a.Body, maxArticleBodyLen))
		}
		if a.URL != "" {
			fmt.Fprintf(&sb, "  URL: %s\n", a.URL)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// money formats a dollar amount with thousands separators and two
// decimal places
func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// truncate shortens text to limit runes adding an ellipsis
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
