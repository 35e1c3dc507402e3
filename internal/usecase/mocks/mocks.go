package mocks

import (
	"context"
	"sync"
	"time"
)

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}

// SteppingClock returns Time and advances it by Step on every call, so
// consecutive transaction ids never collide.
type SteppingClock struct {
	mu   sync.Mutex
	Time time.Time
	Step time.Duration
}

func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.Time
	c.Time = c.Time.Add(c.Step)
	return now
}

// MemoryCloudStore is an in-memory CloudStore. Zero value is usable.
type MemoryCloudStore struct {
	mu     sync.RWMutex
	values map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc func(ctx context.Context, key string, value []byte) error
}

func NewMemoryCloudStore() *MemoryCloudStore {
	return &MemoryCloudStore{values: make(map[string][]byte)}
}

func (s *MemoryCloudStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, key)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryCloudStore) Set(ctx context.Context, key string, value []byte) error {
	if s.SetFunc != nil {
		return s.SetFunc(ctx, key, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Stored returns the last value written at key.
func (s *MemoryCloudStore) Stored(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Seed stores a value directly, bypassing Set hooks.
func (s *MemoryCloudStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
}

// RecordingNotifier collects every payload it is handed.
type RecordingNotifier struct {
	mu       sync.Mutex
	payloads []map[string]any

	NotifyFunc func(ctx context.Context, payload map[string]any) error
}

func (n *RecordingNotifier) Notify(ctx context.Context, payload map[string]any) error {
	if n.NotifyFunc != nil {
		return n.NotifyFunc(ctx, payload)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, payload)
	return nil
}

// Payloads returns a copy of everything notified so far.
func (n *RecordingNotifier) Payloads() []map[string]any {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]map[string]any(nil), n.payloads...)
}
