package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/domain"
	"github.com/coinscope/coinscope/pkg/notify"
	"github.com/coinscope/coinscope/pkg/scheduler/mocks"
)

func schedulerStore(tokens []domain.Token, recipients []domain.Recipient) *mocks.ContextStoreMock {
	return &mocks.ContextStoreMock{
		GetActiveTokensFunc: func(ctx context.Context) ([]domain.Token, error) { return tokens, nil },
		GetSubscribedRecipientsFunc: func(ctx context.Context) ([]domain.Recipient, error) {
			return recipients, nil
		},
	}
}

func okRunner() *mocks.TokenRunnerMock {
	return &mocks.TokenRunnerMock{
		RunFunc: func(ctx context.Context, token *domain.Token, kind domain.ReportKind) (*domain.Report, error) {
			return &domain.Report{Symbol: token.Symbol, Kind: kind, Content: "report for " + token.Symbol}, nil
		},
	}
}

func TestScheduler_RunAll(t *testing.T) {
	tokens := []domain.Token{
		{Symbol: "RNBW", Name: "Rainbow", Active: true},
		{Symbol: "OWB", Name: "OpenWorld", Active: true},
	}
	recipients := []domain.Recipient{{ChatID: 1, Subscribed: true}, {ChatID: 2, Subscribed: true}}

	runner := okRunner()
	broadcaster := &mocks.SummaryBroadcasterMock{
		DeliverFunc: func(ctx context.Context, summaries []notify.Summary, rcpts []domain.Recipient) (int, int) {
			return len(rcpts), 0
		},
	}

	s := NewScheduler(runner, broadcaster, schedulerStore(tokens, recipients),
		config.ScheduleConfig{MorningHour: 8, EveningHour: 23, MaxWorkers: 2}, time.UTC)

	sent, failed, err := s.RunAll(context.Background(), domain.ReportMorning)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 0, failed)
	assert.Len(t, runner.RunCalls(), 2)

	require.Len(t, broadcaster.DeliverCalls(), 1)
	summaries := broadcaster.DeliverCalls()[0].Summaries
	require.Len(t, summaries, 2)
	assert.Equal(t, "OWB", summaries[0].Symbol, "delivery order is stable by symbol")
	assert.Equal(t, "RNBW", summaries[1].Symbol)
	assert.Equal(t, domain.ReportMorning, summaries[0].Kind)
	assert.False(t, s.IsRunning(), "flag released after the run")
}

func TestScheduler_OverlapRejected(t *testing.T) {
	tokens := []domain.Token{{Symbol: "OWB", Name: "OpenWorld", Active: true}}

	started := make(chan struct{})
	release := make(chan struct{})
	runner := &mocks.TokenRunnerMock{
		RunFunc: func(ctx context.Context, token *domain.Token, kind domain.ReportKind) (*domain.Report, error) {
			close(started)
			<-release
			return &domain.Report{Symbol: token.Symbol, Kind: kind, Content: "slow"}, nil
		},
	}
	broadcaster := &mocks.SummaryBroadcasterMock{
		DeliverFunc: func(ctx context.Context, summaries []notify.Summary, rcpts []domain.Recipient) (int, int) {
			return 0, 0
		},
	}

	s := NewScheduler(runner, broadcaster, schedulerStore(tokens, nil),
		config.ScheduleConfig{MaxWorkers: 1}, time.UTC)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, err := s.RunAll(context.Background(), domain.ReportMorning)
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, s.IsRunning())

	_, _, err := s.RunAll(context.Background(), domain.ReportOnDemand)
	assert.ErrorIs(t, err, ErrRunInProgress)
	assert.ErrorIs(t, s.Trigger(domain.ReportOnDemand), ErrRunInProgress)

	close(release)
	<-done
	assert.False(t, s.IsRunning())
}

func TestScheduler_Trigger(t *testing.T) {
	tokens := []domain.Token{{Symbol: "OWB", Name: "OpenWorld", Active: true}}

	var delivered atomic.Int32
	runner := okRunner()
	broadcaster := &mocks.SummaryBroadcasterMock{
		DeliverFunc: func(ctx context.Context, summaries []notify.Summary, rcpts []domain.Recipient) (int, int) {
			delivered.Add(1)
			return len(rcpts), 0
		},
	}

	s := NewScheduler(runner, broadcaster, schedulerStore(tokens, []domain.Recipient{{ChatID: 1}}),
		config.ScheduleConfig{MaxWorkers: 1}, time.UTC)

	require.NoError(t, s.Trigger(domain.ReportOnDemand))
	require.Eventually(t, func() bool { return delivered.Load() == 1 }, time.Second, 10*time.Millisecond)
	assert.False(t, s.IsRunning())
	assert.Equal(t, domain.ReportOnDemand, runner.RunCalls()[0].Kind)
}

func TestScheduler_TriggerConcurrentWithStart(t *testing.T) {
	tokens := []domain.Token{{Symbol: "OWB", Name: "OpenWorld", Active: true}}

	var delivered atomic.Int32
	broadcaster := &mocks.SummaryBroadcasterMock{
		DeliverFunc: func(ctx context.Context, summaries []notify.Summary, rcpts []domain.Recipient) (int, int) {
			delivered.Add(1)
			return len(rcpts), 0
		},
	}

	s := NewScheduler(okRunner(), broadcaster, schedulerStore(tokens, []domain.Recipient{{ChatID: 1}}),
		config.ScheduleConfig{MorningHour: 8, EveningHour: 23, MaxWorkers: 1}, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	// fire while the loop is starting up
	require.NoError(t, s.Trigger(domain.ReportOnDemand))
	require.Eventually(t, func() bool { return delivered.Load() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_NoSubscribersSkipsBroadcast(t *testing.T) {
	tokens := []domain.Token{{Symbol: "OWB", Name: "OpenWorld", Active: true}}
	broadcaster := &mocks.SummaryBroadcasterMock{
		DeliverFunc: func(ctx context.Context, summaries []notify.Summary, rcpts []domain.Recipient) (int, int) {
			return 0, 0
		},
	}

	s := NewScheduler(okRunner(), broadcaster, schedulerStore(tokens, nil),
		config.ScheduleConfig{MaxWorkers: 1}, time.UTC)

	sent, failed, err := s.RunAll(context.Background(), domain.ReportEvening)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, failed)
	assert.Empty(t, broadcaster.DeliverCalls(), "no delivery without subscribers")
}

func TestScheduler_FailedTokenStillBroadcastsOthers(t *testing.T) {
	tokens := []domain.Token{
		{Symbol: "OWB", Name: "OpenWorld", Active: true},
		{Symbol: "RNBW", Name: "Rainbow", Active: true},
	}
	runner := &mocks.TokenRunnerMock{
		RunFunc: func(ctx context.Context, token *domain.Token, kind domain.ReportKind) (*domain.Report, error) {
			if token.Symbol == "OWB" {
				return nil, assert.AnError
			}
			return &domain.Report{Symbol: token.Symbol, Kind: kind, Content: "ok"}, nil
		},
	}
	broadcaster := &mocks.SummaryBroadcasterMock{
		DeliverFunc: func(ctx context.Context, summaries []notify.Summary, rcpts []domain.Recipient) (int, int) {
			return len(rcpts), 0
		},
	}

	s := NewScheduler(runner, broadcaster, schedulerStore(tokens, []domain.Recipient{{ChatID: 1}}),
		config.ScheduleConfig{MaxWorkers: 2}, time.UTC)

	_, _, err := s.RunAll(context.Background(), domain.ReportMorning)
	require.NoError(t, err)

	require.Len(t, broadcaster.DeliverCalls(), 1)
	summaries := broadcaster.DeliverCalls()[0].Summaries
	require.Len(t, summaries, 1, "failed token dropped, the rest still delivered")
	assert.Equal(t, "RNBW", summaries[0].Symbol)
}

func TestNextRun(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)

	t.Run("later today", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 7, 30, 0, 0, loc)
		next := nextRun(now, 8, 0)
		assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, loc), next)
	})

	t.Run("already passed rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 8, 30, 0, 0, loc)
		next := nextRun(now, 8, 0)
		assert.Equal(t, time.Date(2025, 6, 2, 8, 0, 0, 0, loc), next)
	})

	t.Run("exact boundary fires now", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 23, 0, 0, 0, loc)
		next := nextRun(now, 23, 0)
		assert.Equal(t, now, next)
	})
}
