package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestBotWebhookPostsJSON(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewBotWebhook(server.URL, zerolog.Nop())
	err := n.Notify(context.Background(), map[string]any{
		"action":         "add_transaction",
		"transaction_id": int64(42),
	})
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}

	var payload map[string]any
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if payload["action"] != "add_transaction" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestBotWebhookErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := NewBotWebhook(server.URL, zerolog.Nop())
	if err := n.Notify(context.Background(), map[string]any{"action": "export"}); err == nil {
		t.Fatal("expected error for 5xx response")
	}
}

func TestBotWebhookUnreachable(t *testing.T) {
	n := NewBotWebhook("http://127.0.0.1:1", zerolog.Nop())
	if err := n.Notify(context.Background(), map[string]any{"action": "export"}); err == nil {
		t.Fatal("expected error for unreachable webhook")
	}
}

func TestLogNotifierNeverFails(t *testing.T) {
	n := NewLogNotifier(zerolog.Nop())
	if err := n.Notify(context.Background(), map[string]any{"action": "delete_transaction"}); err != nil {
		t.Fatalf("log notifier failed: %v", err)
	}
}
