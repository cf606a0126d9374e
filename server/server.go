// Package server exposes the operational HTTP API: service status,
// current prices, latest reports and the on-demand run trigger.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/coinscope/coinscope/pkg/domain"
	"github.com/coinscope/coinscope/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/trigger.go -pkg mocks -skip-ensure -fmt goimports . Trigger
//go:generate moq -out mocks/price_provider.go -pkg mocks -skip-ensure -fmt goimports . PriceProvider
//go:generate moq -out mocks/feed_provider.go -pkg mocks -skip-ensure -fmt goimports . FeedProvider

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	db      Database
	trigger Trigger
	prices  PriceProvider
	feeds   FeedProvider
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetActiveTokens(ctx context.Context) ([]domain.Token, error)
	GetLatestReport(ctx context.Context, symbol string) (*domain.Report, error)
}

// Trigger interface for on-demand report runs
type Trigger interface {
	Trigger(kind domain.ReportKind) error
	IsRunning() bool
}

// PriceProvider fetches current DEX pools for a token
type PriceProvider interface {
	Fetch(ctx context.Context, token *domain.Token) []domain.PoolRecord
}

// FeedProvider fetches recent social posts of a single author
type FeedProvider interface {
	ByAuthor(ctx context.Context, handle string, maxResults int) []domain.FeedPost
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, trigger Trigger, prices PriceProvider, feeds FeedProvider, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		db:      db,
		trigger: trigger,
		prices:  prices,
		feeds:   feeds,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("coinscope", "coinscope", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64K is plenty for this API
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /prices", s.pricesHandler)
		r.HandleFunc("GET /reports/{symbol}/latest", s.latestReportHandler)
		r.HandleFunc("GET /feed/{handle}", s.feedHandler)
		r.HandleFunc("POST /run", s.runHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":     "ok",
		"version":    s.version,
		"time":       time.Now().UTC(),
		"run_active": s.trigger.IsRunning(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// tokenPrice is one row of the prices response
type tokenPrice struct {
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	PriceUSD     string `json:"price_usd,omitempty"`
	Change24h    string `json:"change_24h,omitempty"`
	LiquidityUSD string `json:"liquidity_usd,omitempty"`
	DexID        string `json:"dex_id,omitempty"`
	URL          string `json:"url,omitempty"`
	Available    bool   `json:"available"`
}

// pricesHandler returns the head pool price for every active token
func (s *Server) pricesHandler(w http.ResponseWriter, r *http.Request) {
	tokens, err := s.db.GetActiveTokens(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	result := make([]tokenPrice, 0, len(tokens))
	for _, token := range tokens {
		price := tokenPrice{Symbol: token.Symbol, Name: token.Name}
		if pools := s.prices.Fetch(r.Context(), &token); len(pools) > 0 {
			head := pools[0]
			price.PriceUSD = head.PriceUSD
			price.Change24h = fmt.Sprintf("%.2f%%", head.Change24h)
			price.LiquidityUSD = fmt.Sprintf("%.0f", head.LiquidityUSD)
			price.DexID = head.DexID
			price.URL = head.URL
			price.Available = true
		}
		result = append(result, price)
	}
	RenderJSON(w, r, http.StatusOK, result)
}

// latestReportHandler returns the most recent report for a symbol
func (s *Server) latestReportHandler(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(r.PathValue("symbol"))
	report, err := s.db.GetLatestReport(r.Context(), symbol)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if report == nil {
		RenderError(w, r, fmt.Errorf("no reports for %s", symbol), http.StatusNotFound)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"symbol":     report.Symbol,
		"kind":       report.Kind,
		"content":    report.Content,
		"created_at": report.CreatedAt.UTC(),
	})
}

// authorFeedLimit caps how many posts one author lookup returns
const authorFeedLimit = 20

// feedPost is one row of the author feed response
type feedPost struct {
	Author    string    `json:"author,omitempty"`
	Text      string    `json:"text"`
	Link      string    `json:"link,omitempty"`
	Published time.Time `json:"published,omitzero"`
}

// feedHandler returns recent posts of a single author through the
// mirror failover pool
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	posts := s.feeds.ByAuthor(r.Context(), handle, authorFeedLimit)

	result := make([]feedPost, 0, len(posts))
	for _, p := range posts {
		result = append(result, feedPost{Author: p.Author, Text: p.Text, Link: p.Link, Published: p.Published})
	}
	RenderJSON(w, r, http.StatusOK, result)
}

// runRequest is the optional body of POST /run
type runRequest struct {
	Kind string `json:"kind"`
}

// runHandler starts an on-demand report run
func (s *Server) runHandler(w http.ResponseWriter, r *http.Request) {
	kind := domain.ReportOnDemand
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Kind != "" {
		switch domain.ReportKind(req.Kind) {
		case domain.ReportMorning, domain.ReportEvening, domain.ReportOnDemand, domain.ReportTest:
			kind = domain.ReportKind(req.Kind)
		default:
			RenderError(w, r, fmt.Errorf("unknown report kind %q", req.Kind), http.StatusBadRequest)
			return
		}
	}

	if err := s.trigger.Trigger(kind); err != nil {
		if errors.Is(err, scheduler.ErrRunInProgress) {
			RenderError(w, r, err, http.StatusConflict)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusAccepted, map[string]string{"result": "started", "kind": string(kind)})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
