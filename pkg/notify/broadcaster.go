package notify

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/coinscope/coinscope/pkg/domain"
)

//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// Sender is the delivery channel consumed by the broadcaster
type Sender interface {
	Send(ctx context.Context, chatID int64, text string, markdown bool) error
}

// Summary is one generated report ready for delivery
type Summary struct {
	Symbol  string
	Name    string
	Kind    domain.ReportKind
	Content string
}

// Broadcaster fans generated reports out to recipients. Deliveries are
// independent per recipient: one recipient's failure never stops the
// rest, and partial failure is reported as a tally, not an error.
type Broadcaster struct {
	sender      Sender
	maxMsgSize  int
	maxParallel int
}

// NewBroadcaster creates a broadcaster over the given delivery channel
func NewBroadcaster(sender Sender, maxMsgSize, maxParallel int) *Broadcaster {
	if maxMsgSize <= 0 {
		maxMsgSize = 4000
	}
	if maxParallel <= 0 {
		maxParallel = 5
	}
	return &Broadcaster{sender: sender, maxMsgSize: maxMsgSize, maxParallel: maxParallel}
}

// Deliver sends every summary to every recipient and returns the
// success/failure tally. Chunks for one recipient are always sent in
// sequence; recipients are processed with bounded concurrency.
func (b *Broadcaster) Deliver(ctx context.Context, summaries []Summary, recipients []domain.Recipient) (sent, failed int) {
	if len(summaries) == 0 || len(recipients) == 0 {
		return 0, 0
	}

	// pre-chunk each summary once, the same chunks go to everyone
	messages := make([]string, 0, len(summaries))
	for _, s := range summaries {
		messages = append(messages, b.chunk(header(s)+s.Content)...)
	}

	var okCount, failCount int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.maxParallel)

	for _, rcpt := range recipients {
		g.Go(func() error {
			for _, msg := range messages {
				if err := b.sendWithFallback(gctx, rcpt.ChatID, msg); err != nil {
					lgr.Printf("[WARN] delivery to %d failed: %v", rcpt.ChatID, err)
					atomic.AddInt64(&failCount, 1)
					return nil // other recipients continue
				}
			}
			atomic.AddInt64(&okCount, 1)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures are counted

	sent, failed = int(okCount), int(failCount)
	lgr.Printf("[INFO] broadcast complete: %d delivered, %d failed of %d recipients", sent, failed, len(recipients))
	return sent, failed
}

// sendWithFallback tries rich formatting first and resends once as
// plain text when the channel rejects the markup
func (b *Broadcaster) sendWithFallback(ctx context.Context, chatID int64, text string) error {
	err := b.sender.Send(ctx, chatID, text, true)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrBadMarkup) {
		return err
	}

	lgr.Printf("[WARN] markdown send failed (%v), retrying as plain text", err)
	plain := strings.NewReplacer("*", "", "_", "").Replace(text)
	return b.sender.Send(ctx, chatID, plain, false)
}

// chunk splits a message into sequential pieces of at most maxMsgSize
// runes; concatenation of the pieces reconstructs the original exactly
func (b *Broadcaster) chunk(text string) []string {
	runes := []rune(text)
	if len(runes) <= b.maxMsgSize {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/b.maxMsgSize+1)
	for start := 0; start < len(runes); start += b.maxMsgSize {
		end := start + b.maxMsgSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// header builds the per-kind banner prepended to a summary
func header(s Summary) string {
	divider := strings.Repeat("━", 30)
	switch s.Kind {
	case domain.ReportMorning:
		return "🌅 Morning Summary — " + s.Name + " (" + s.Symbol + ")\n" + divider + "\n\n"
	case domain.ReportEvening:
		return "🌙 Evening Summary — " + s.Name + " (" + s.Symbol + ")\n" + divider + "\n\n"
	default:
		return "📊 " + s.Name + " (" + s.Symbol + ") Summary\n" + divider + "\n\n"
	}
}
