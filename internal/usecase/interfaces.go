package usecase

import (
	"context"
	"time"
)

// CloudStore is the platform key-value persistence collaborator. Values are
// raw JSON. Get reports ok=false for absent keys; malformed stored values
// are the caller's problem to tolerate, never the store's.
type CloudStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// BotNotifier delivers one-way payloads to the bot process. The bot is the
// system of record; no acknowledgement is consumed here.
type BotNotifier interface {
	Notify(ctx context.Context, payload map[string]any) error
}

// Clock supplies the current time. Injected so derived statistics
// (daily averages, month windows) are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
