package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/domain"
	"github.com/coinscope/coinscope/pkg/notify"
)

//go:generate moq -out mocks/token_runner.go -pkg mocks -skip-ensure -fmt goimports . TokenRunner
//go:generate moq -out mocks/summary_broadcaster.go -pkg mocks -skip-ensure -fmt goimports . SummaryBroadcaster

// ErrRunInProgress is returned when a run is requested while another one
// is still in flight
var ErrRunInProgress = errors.New("report run already in progress")

// TokenRunner produces a report for one token
type TokenRunner interface {
	Run(ctx context.Context, token *domain.Token, kind domain.ReportKind) (*domain.Report, error)
}

// SummaryBroadcaster delivers generated summaries to recipients
type SummaryBroadcaster interface {
	Deliver(ctx context.Context, summaries []notify.Summary, recipients []domain.Recipient) (sent, failed int)
}

// how often the loop checks whether a scheduled time has arrived
const tickInterval = 30 * time.Second

// Scheduler fires full report runs at the configured morning and evening
// times and on demand. At most one run is in flight at any moment, late
// triggers are rejected rather than queued.
type Scheduler struct {
	runner      TokenRunner
	broadcaster SummaryBroadcaster
	store       ContextStore
	cfg         config.ScheduleConfig
	loc         *time.Location

	running atomic.Bool
	wg      sync.WaitGroup

	ctxMu   sync.Mutex // guards baseCtx, Start and Trigger run concurrently
	baseCtx context.Context
}

// NewScheduler creates a scheduler. Times in cfg are interpreted in loc.
func NewScheduler(runner TokenRunner, broadcaster SummaryBroadcaster, store ContextStore,
	cfg config.ScheduleConfig, loc *time.Location) *Scheduler {
	return &Scheduler{
		runner:      runner,
		broadcaster: broadcaster,
		store:       store,
		cfg:         cfg,
		loc:         loc,
		baseCtx:     context.Background(),
	}
}

// Start runs the trigger loop until ctx is canceled. Blocks.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctxMu.Lock()
	s.baseCtx = ctx
	s.ctxMu.Unlock()

	now := time.Now().In(s.loc)
	morning := nextRun(now, s.cfg.MorningHour, s.cfg.MorningMinute)
	evening := nextRun(now, s.cfg.EveningHour, s.cfg.EveningMinute)
	lgr.Printf("[INFO] scheduler started, morning run at %s, evening run at %s",
		morning.Format("2006-01-02 15:04 MST"), evening.Format("2006-01-02 15:04 MST"))

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait() // let an in-flight on-demand run finish
			return ctx.Err()
		case <-ticker.C:
			now = time.Now().In(s.loc)
			if !now.Before(morning) {
				s.fire(ctx, domain.ReportMorning)
				morning = nextRun(now.Add(time.Minute), s.cfg.MorningHour, s.cfg.MorningMinute)
			}
			if !now.Before(evening) {
				s.fire(ctx, domain.ReportEvening)
				evening = nextRun(now.Add(time.Minute), s.cfg.EveningHour, s.cfg.EveningMinute)
			}
		}
	}
}

// fire executes a scheduled run, logging instead of failing when one is
// already in flight
func (s *Scheduler) fire(ctx context.Context, kind domain.ReportKind) {
	if _, _, err := s.RunAll(ctx, kind); err != nil {
		if errors.Is(err, ErrRunInProgress) {
			lgr.Printf("[WARN] skipped scheduled %s run, previous run still active", kind)
			return
		}
		lgr.Printf("[WARN] scheduled %s run failed: %v", kind, err)
	}
}

// Trigger starts an on-demand run in the background. Returns
// ErrRunInProgress without starting anything when a run is active.
func (s *Scheduler) Trigger(kind domain.ReportKind) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunInProgress
	}
	s.ctxMu.Lock()
	ctx := s.baseCtx
	s.ctxMu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)
		if _, _, err := s.run(ctx, kind); err != nil {
			lgr.Printf("[WARN] on-demand %s run failed: %v", kind, err)
		}
	}()
	return nil
}

// IsRunning reports whether a run is currently in flight
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

// RunAll executes a full run synchronously: every active token is
// aggregated with bounded concurrency and the results are broadcast in
// one batch. Returns the delivery tally.
func (s *Scheduler) RunAll(ctx context.Context, kind domain.ReportKind) (sent, failed int, err error) {
	if !s.running.CompareAndSwap(false, true) {
		return 0, 0, ErrRunInProgress
	}
	defer s.running.Store(false)
	return s.run(ctx, kind)
}

// run does the actual work, callers hold the running flag
func (s *Scheduler) run(ctx context.Context, kind domain.ReportKind) (sent, failed int, err error) {
	started := time.Now()
	tokens, err := s.store.GetActiveTokens(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("get active tokens: %w", err)
	}
	if len(tokens) == 0 {
		lgr.Printf("[WARN] no active tokens, nothing to report")
		return 0, 0, nil
	}

	var mu sync.Mutex
	summaries := make([]notify.Summary, 0, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxWorkers)
	for _, token := range tokens {
		g.Go(func() error {
			report, runErr := s.runner.Run(gctx, &token, kind)
			if runErr != nil {
				lgr.Printf("[WARN] report for %s failed to persist: %v", token.Symbol, runErr)
			}
			if report == nil {
				return nil
			}
			mu.Lock()
			summaries = append(summaries, notify.Summary{
				Symbol:  token.Symbol,
				Name:    token.Name,
				Kind:    kind,
				Content: report.Content,
			})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	// stable delivery order regardless of worker completion order
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Symbol < summaries[j].Symbol })

	recipients, err := s.store.GetSubscribedRecipients(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("get recipients: %w", err)
	}
	if len(recipients) == 0 {
		lgr.Printf("[INFO] %s run complete, %d reports generated, no subscribers", kind, len(summaries))
		return 0, 0, nil
	}

	sent, failed = s.broadcaster.Deliver(ctx, summaries, recipients)
	lgr.Printf("[INFO] %s run complete in %v: %d reports, %d delivered, %d failed",
		kind, time.Since(started).Round(time.Millisecond), len(summaries), sent, failed)
	return sent, failed, nil
}

// nextRun returns the next occurrence of hour:minute at or after now,
// in now's location
func nextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
