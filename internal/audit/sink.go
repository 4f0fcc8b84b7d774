package audit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	queueCapacity = 10_000
	drainBatch    = 256
	writeTimeout  = 5 * time.Second
)

// Sink is the append-only audit pipeline. Record() never blocks the caller
// and never returns an error: losing an audit write must not make the
// mediated operation itself fail. A single consumer goroutine drains the
// queue, so events from the same plugin are persisted in the order they
// were recorded.
//
// When the queue is full the oldest LOW/MEDIUM entry is sacrificed to admit
// the newcomer. HIGH and CRITICAL entries are never dropped: if nothing in
// the queue is droppable, the queue grows past capacity instead.
type Sink struct {
	store     LogStore
	analytics AnalyticsStore // may be nil
	logger    *zap.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []*SecurityEvent
	pending int
	closed  bool

	notify  chan struct{}
	done    chan struct{}
	flushed chan struct{}
	dropped atomic.Int64
}

// NewSink creates a Sink backed by the given stores and starts the drain loop.
// analytics may be nil.
func NewSink(store LogStore, analytics AnalyticsStore, logger *zap.Logger) *Sink {
	s := &Sink{
		store:     store,
		analytics: analytics,
		logger:    logger,
		notify:    make(chan struct{}, 1),
		done:      make(chan struct{}),
		flushed:   make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.drainLoop()
	return s
}

// Record queues a security event for asynchronous persistence.
func (s *Sink) Record(event *SecurityEvent) {
	if event == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logger.Warn("audit sink closed, event lost",
			zap.String("event_type", string(event.Type)),
			zap.String("plugin_id", event.PluginID),
		)
		return
	}

	if len(s.queue) >= queueCapacity && !s.evictDroppableLocked() {
		if event.Severity < SeverityHigh {
			s.mu.Unlock()
			s.dropped.Add(1)
			s.logger.Warn("audit queue full, dropping event",
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)),
			)
			return
		}
		// Queue is saturated with HIGH/CRITICAL entries and so is the
		// newcomer: grow past capacity rather than block or drop.
	}

	s.queue = append(s.queue, event)
	s.pending++
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// evictDroppableLocked removes the oldest LOW/MEDIUM entry from the queue.
// Caller holds s.mu. Reports whether an entry was evicted.
func (s *Sink) evictDroppableLocked() bool {
	for i, e := range s.queue {
		if e.Severity < SeverityHigh {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			s.pending--
			s.dropped.Add(1)
			return true
		}
	}
	return false
}

// Dropped reports how many events have been sacrificed to the full-queue policy.
func (s *Sink) Dropped() int64 {
	return s.dropped.Load()
}

// Recent returns persisted events matching the query, newest first.
func (s *Sink) Recent(ctx context.Context, q Query) ([]*SecurityEvent, error) {
	return s.store.QueryRecent(ctx, q)
}

// PurgeOlderThan deletes events older than the cutoff. This is the only
// sanctioned deletion path besides Clear; nothing is purged implicitly.
func (s *Sink) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.store.DeleteOlderThan(ctx, cutoff)
}

// Clear deletes every persisted event and returns the count removed.
func (s *Sink) Clear(ctx context.Context) (int64, error) {
	return s.store.DeleteAll(ctx)
}

// Flush blocks until every previously recorded event has been handed to the
// backing stores.
func (s *Sink) Flush() {
	s.mu.Lock()
	for s.pending > 0 {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// Close drains remaining events and stops the consumer. Events recorded
// after Close are lost.
func (s *Sink) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	<-s.flushed
}

func (s *Sink) drainLoop() {
	defer close(s.flushed)

	for {
		select {
		case <-s.notify:
			s.drain()
		case <-s.done:
			s.drain()
			return
		}
	}
}

func (s *Sink) drain() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		n := len(s.queue)
		if n > drainBatch {
			n = drainBatch
		}
		batch := make([]*SecurityEvent, n)
		copy(batch, s.queue)
		s.queue = append(s.queue[:0], s.queue[n:]...)
		s.mu.Unlock()

		for _, e := range batch {
			s.persist(e)
		}

		s.mu.Lock()
		s.pending -= n
		if s.pending == 0 {
			s.cond.Broadcast()
		}
		s.mu.Unlock()
	}
}

func (s *Sink) persist(e *SecurityEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.store.Insert(ctx, e); err != nil {
		// Audit write failure is never surfaced to the mediated caller.
		s.logger.Error("audit log store insert failed",
			zap.String("event_id", e.ID),
			zap.String("event_type", string(e.Type)),
			zap.Error(err),
		)
	}

	if s.analytics != nil {
		if err := s.analytics.Append(ctx, e); err != nil {
			s.logger.Warn("analytics append failed",
				zap.String("event_id", e.ID),
				zap.Error(err),
			)
		}
	}
}
