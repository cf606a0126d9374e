package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscope/coinscope/pkg/config"
)

func TestTelegram_Send(t *testing.T) {
	var received sendMessageRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok": true}`)
	}))
	defer ts.Close()

	tg, err := NewTelegram(config.TelegramConfig{Token: "test-token", APIBase: ts.URL})
	require.NoError(t, err)

	err = tg.Send(context.Background(), 42, "*hello*", true)
	require.NoError(t, err)
	assert.Equal(t, int64(42), received.ChatID)
	assert.Equal(t, "*hello*", received.Text)
	assert.Equal(t, "Markdown", received.ParseMode)
}

func TestTelegram_SendPlain(t *testing.T) {
	var received sendMessageRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok": true}`)
	}))
	defer ts.Close()

	tg, err := NewTelegram(config.TelegramConfig{Token: "test-token", APIBase: ts.URL})
	require.NoError(t, err)

	require.NoError(t, tg.Send(context.Background(), 42, "hello", false))
	assert.Empty(t, received.ParseMode, "no parse mode for plain text")
}

func TestTelegram_MarkupRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"ok": false, "error_code": 400, "description": "Bad Request: can't parse entities: unclosed bold"}`)
	}))
	defer ts.Close()

	tg, err := NewTelegram(config.TelegramConfig{Token: "test-token", APIBase: ts.URL})
	require.NoError(t, err)

	err = tg.Send(context.Background(), 42, "*broken", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadMarkup, "API's own formatting rejection maps to the sentinel")
}

func TestTelegram_OtherAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"ok": false, "error_code": 403, "description": "Forbidden: bot was blocked by the user"}`)
	}))
	defer ts.Close()

	tg, err := NewTelegram(config.TelegramConfig{Token: "test-token", APIBase: ts.URL})
	require.NoError(t, err)

	err = tg.Send(context.Background(), 42, "hello", true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadMarkup)
	assert.Contains(t, err.Error(), "blocked")
}

func TestTelegram_MissingToken(t *testing.T) {
	_, err := NewTelegram(config.TelegramConfig{})
	require.Error(t, err, "service cannot start without a delivery token")
}
