package audit

import (
	"context"
	"sync"
	"time"
)

// Query filters the audit read path.
type Query struct {
	PluginID    string   // empty matches all plugins
	MinSeverity Severity // zero matches all severities
	Limit       int
}

// LogStore is the durable relational store behind the audit read path.
type LogStore interface {
	Insert(ctx context.Context, event *SecurityEvent) error

	// QueryRecent returns events in reverse-chronological order.
	QueryRecent(ctx context.Context, q Query) ([]*SecurityEvent, error)

	// DeleteOlderThan removes events older than the cutoff and returns the
	// number deleted. Only the explicit retention sweep calls this.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteAll removes every event and returns the number deleted.
	DeleteAll(ctx context.Context) (int64, error)
}

// AnalyticsStore is the append-only telemetry sink. Failure is non-fatal
// to the caller.
type AnalyticsStore interface {
	Append(ctx context.Context, event *SecurityEvent) error
}

// MemoryLogStore is an in-memory LogStore for tests and single-process
// deployments without a database.
type MemoryLogStore struct {
	mu     sync.Mutex
	events []*SecurityEvent
}

func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{}
}

func (s *MemoryLogStore) Insert(_ context.Context, event *SecurityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryLogStore) QueryRecent(_ context.Context, q Query) ([]*SecurityEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*SecurityEvent
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if q.PluginID != "" && e.PluginID != q.PluginID {
			continue
		}
		if q.MinSeverity != 0 && e.Severity < q.MinSeverity {
			continue
		}
		out = append(out, e)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryLogStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	var deleted int64
	for _, e := range s.events {
		if e.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return deleted, nil
}

func (s *MemoryLogStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := int64(len(s.events))
	s.events = nil
	return deleted, nil
}

// Len reports the current number of stored events.
func (s *MemoryLogStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
