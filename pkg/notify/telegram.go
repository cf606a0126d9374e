// Package notify delivers generated reports to Telegram recipients with
// size-aware chunking, markdown fallback and per-recipient failure
// isolation.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/coinscope/coinscope/pkg/config"
)

// ErrBadMarkup signals that the delivery channel rejected the message
// formatting; the caller retries once with formatting stripped
var ErrBadMarkup = errors.New("formatting rejected")

// Telegram sends messages through the Telegram Bot API
type Telegram struct {
	client *resty.Client
	token  string
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// NewTelegram creates a Telegram sender. A missing token is a hard
// startup failure: without the delivery channel the service is useless.
func NewTelegram(cfg config.TelegramConfig) (*Telegram, error) {
	if cfg.Token == "" {
		return nil, errors.New("telegram token is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Telegram{
		client: resty.New().
			SetBaseURL(strings.TrimSuffix(cfg.APIBase, "/")).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		token: cfg.Token,
	}, nil
}

// Send delivers one message to a chat. Formatting rejection is reported
// as ErrBadMarkup so the caller can distinguish it from recipient
// failures (blocked, unreachable).
func (t *Telegram) Send(ctx context.Context, chatID int64, text string, markdown bool) error {
	req := sendMessageRequest{ChatID: chatID, Text: text}
	if markdown {
		req.ParseMode = "Markdown"
	}

	var body apiResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		SetError(&body).
		Post(fmt.Sprintf("/bot%s/sendMessage", t.token))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	if body.OK {
		return nil
	}

	if isMarkupError(body.Description) {
		return fmt.Errorf("%w: %s", ErrBadMarkup, body.Description)
	}
	return fmt.Errorf("send message: status %d, %s", resp.StatusCode(), body.Description)
}

// isMarkupError matches the API's own formatting validation errors;
// content is never inspected locally
func isMarkupError(description string) bool {
	desc := strings.ToLower(description)
	return strings.Contains(desc, "can't parse entities") ||
		strings.Contains(desc, "can't parse message text")
}
