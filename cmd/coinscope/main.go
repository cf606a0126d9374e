package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/coinscope/coinscope/pkg/config"
	"github.com/coinscope/coinscope/pkg/generator"
	"github.com/coinscope/coinscope/pkg/notify"
	"github.com/coinscope/coinscope/pkg/repository"
	"github.com/coinscope/coinscope/pkg/scheduler"
	"github.com/coinscope/coinscope/pkg/source"
	"github.com/coinscope/coinscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, cfg.Telegram.Token, cfg.LLM.APIKey, cfg.Sources.Quote.APIKey)

	log.Printf("[INFO] starting coinscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err = run(ctx, cfg, opts.Debug)
	cancel()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[ERROR] service failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	store, err := repository.NewStore(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close store: %v", closeErr)
		}
	}()

	telegram, err := notify.NewTelegram(cfg.Telegram)
	if err != nil {
		return fmt.Errorf("init telegram: %w", err)
	}

	quotes := source.NewQuoteSource(cfg.Sources.Quote)
	pools := source.NewPoolSource(cfg.Sources.Pool)
	feed := source.NewFeedSource(cfg.Sources.Feed)
	news := source.NewNewsSource(cfg.Sources.News)
	gen := generator.New(cfg.LLM)

	broadcaster := notify.NewBroadcaster(telegram, cfg.Telegram.MaxMsgSize, cfg.Telegram.MaxParallel)
	aggregator := scheduler.NewAggregator(quotes, pools, feed, news, gen, store)
	sched := scheduler.NewScheduler(aggregator, broadcaster, store, cfg.Schedule, cfg.ScheduleLocation())

	srv := server.New(cfg, store, sched, pools, feed, revision, debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sched.Start(gctx) })
	g.Go(func() error { return srv.Run(gctx) })
	return g.Wait()
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
