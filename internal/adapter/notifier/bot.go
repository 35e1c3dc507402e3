// Package notifier forwards ledger mutations to the Telegram bot backend.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// BotWebhook implements usecase.BotNotifier by POSTing each payload to the
// bot's webhook URL. Delivery is best effort: the ledger never blocks on it.
type BotWebhook struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewBotWebhook creates a new BotWebhook.
func NewBotWebhook(url string, logger zerolog.Logger) *BotWebhook {
	return &BotWebhook{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
		logger: logger,
	}
}

// Notify sends one payload as a JSON POST body.
func (n *BotWebhook) Notify(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach bot webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("bot webhook returned status %d", resp.StatusCode)
	}

	n.logger.Debug().
		Str("action", fmt.Sprint(payload["action"])).
		Msg("bot notified")

	return nil
}

// LogNotifier logs payloads instead of delivering them. Used when no
// webhook URL is configured.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the payload.
func (n *LogNotifier) Notify(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	n.logger.Info().
		RawJSON("payload", body).
		Msg("bot notification")

	return nil
}
