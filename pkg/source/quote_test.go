package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscope/coinscope/pkg/config"
)

func TestQuoteSource_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/cryptocurrency/quotes/latest", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-CMC_PRO_API_KEY"))
		assert.Equal(t, "OWB", r.URL.Query().Get("symbol"))
		assert.Equal(t, "USD", r.URL.Query().Get("convert"))

		respondJSON(w, `{
			"status": {"error_code": 0},
			"data": {
				"OWB": {
					"name": "OpenWorld",
					"symbol": "OWB",
					"quote": {"USD": {
						"price": 0.0123,
						"percent_change_1h": 1.5,
						"percent_change_24h": -3.2,
						"percent_change_7d": 10.1,
						"volume_24h": 125000.5,
						"market_cap": 9500000
					}}
				}
			}
		}`)
	}))
	defer ts.Close()

	src := NewQuoteSource(config.QuoteConfig{Endpoint: ts.URL, APIKey: "test-key"})
	rec := src.Fetch(context.Background(), "owb") // lower case input normalized

	require.NotNil(t, rec)
	assert.Equal(t, "OpenWorld", rec.Name)
	assert.Equal(t, "OWB", rec.Symbol)
	assert.InDelta(t, 0.0123, rec.Price, 1e-9)
	assert.InDelta(t, -3.2, rec.Change24h, 1e-9)
	assert.InDelta(t, 125000.5, rec.Volume24h, 1e-9)
}

func TestQuoteSource_FetchDegradations(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"api error code", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, `{"status": {"error_code": 1001, "error_message": "bad key"}}`)
		}},
		{"http error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}},
		{"symbol missing from data", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, `{"status": {"error_code": 0}, "data": {}}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			src := NewQuoteSource(config.QuoteConfig{Endpoint: ts.URL, APIKey: "test-key"})
			assert.Nil(t, src.Fetch(context.Background(), "OWB"))
		})
	}
}

func TestQuoteSource_NoAPIKey(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	src := NewQuoteSource(config.QuoteConfig{Endpoint: ts.URL})
	assert.Nil(t, src.Fetch(context.Background(), "OWB"))
	assert.False(t, called, "no request without an API key")
}
