package audit

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// blockingStore wraps MemoryLogStore and parks the consumer on the first
// Insert until released, so tests can fill the sink queue deterministically.
type blockingStore struct {
	MemoryLogStore
	entered chan struct{} // closed once the consumer is inside Insert
	release chan struct{}
	once    sync.Once
	blocked bool
	mu      sync.Mutex
}

func newBlockingStore() *blockingStore {
	return &blockingStore{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *blockingStore) Insert(ctx context.Context, event *SecurityEvent) error {
	s.mu.Lock()
	first := !s.blocked
	s.blocked = true
	s.mu.Unlock()
	if first {
		s.once.Do(func() { close(s.entered) })
		<-s.release
	}
	return s.MemoryLogStore.Insert(ctx, event)
}

func TestSink_PersistsRecordedEvents(t *testing.T) {
	store := NewMemoryLogStore()
	sink := NewSink(store, nil, zap.NewNop())
	defer sink.Close()

	for i := 0; i < 50; i++ {
		sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "call"))
	}
	sink.Flush()

	if store.Len() != 50 {
		t.Fatalf("expected 50 persisted events, got %d", store.Len())
	}
	if sink.Dropped() != 0 {
		t.Fatalf("expected no drops, got %d", sink.Dropped())
	}
}

func TestSink_PerPluginOrderPreserved(t *testing.T) {
	store := NewMemoryLogStore()
	sink := NewSink(store, nil, zap.NewNop())
	defer sink.Close()

	const perPlugin = 200
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			pluginID := fmt.Sprintf("plug-%d", p)
			for i := 0; i < perPlugin; i++ {
				e := NewEvent(EventCapabilityCall, SeverityLow, "test", pluginID, "call")
				e.WithDetail("seq", strconv.Itoa(i))
				sink.Record(e)
			}
		}(p)
	}
	wg.Wait()
	sink.Flush()

	events, err := store.QueryRecent(context.Background(), Query{})
	if err != nil {
		t.Fatal(err)
	}
	// QueryRecent is newest first; walk backwards to get insertion order.
	next := map[string]int{}
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		seq, _ := strconv.Atoi(e.Detail["seq"])
		if seq != next[e.PluginID] {
			t.Fatalf("plugin %s: expected seq %d, got %d", e.PluginID, next[e.PluginID], seq)
		}
		next[e.PluginID]++
	}
	for p := 0; p < 4; p++ {
		pluginID := fmt.Sprintf("plug-%d", p)
		if next[pluginID] != perPlugin {
			t.Fatalf("plugin %s: expected %d events, got %d", pluginID, perPlugin, next[pluginID])
		}
	}
}

func TestSink_FullQueueDropsOldestDroppable(t *testing.T) {
	store := newBlockingStore()
	sink := NewSink(store, nil, zap.NewNop())

	// Park the consumer inside the store so the queue fills.
	sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "parked"))
	<-store.entered

	for i := 0; i < queueCapacity; i++ {
		sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "fill"))
	}
	if sink.Dropped() != 0 {
		t.Fatalf("queue at capacity should not have dropped yet, got %d", sink.Dropped())
	}

	// One past capacity sacrifices the oldest LOW entry.
	sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "overflow-low"))
	if sink.Dropped() != 1 {
		t.Fatalf("expected 1 drop after low overflow, got %d", sink.Dropped())
	}

	// A HIGH arrival also evicts a LOW rather than being turned away.
	sink.Record(NewEvent(EventPermissionDenied, SeverityHigh, "test", "plug-a", "overflow-high"))
	if sink.Dropped() != 2 {
		t.Fatalf("expected 2 drops after high overflow, got %d", sink.Dropped())
	}

	close(store.release)
	sink.Flush()
	sink.Close()

	events, err := store.QueryRecent(context.Background(), Query{MinSeverity: SeverityHigh})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Message != "overflow-high" {
		t.Fatalf("high-severity overflow event lost: %v", events)
	}
}

func TestSink_HighSeverityNeverDropped(t *testing.T) {
	store := newBlockingStore()
	sink := NewSink(store, nil, zap.NewNop())

	sink.Record(NewEvent(EventControlAction, SeverityHigh, "test", "", "parked"))
	<-store.entered

	for i := 0; i < queueCapacity; i++ {
		sink.Record(NewEvent(EventControlAction, SeverityHigh, "test", "", "fill"))
	}
	// Queue saturated with HIGH entries; further HIGH arrivals grow the
	// queue instead of dropping anything.
	for i := 0; i < 100; i++ {
		sink.Record(NewEvent(EventControlAction, SeverityCritical, "test", "", "critical"))
	}
	if sink.Dropped() != 0 {
		t.Fatalf("high/critical events must never be dropped, got %d drops", sink.Dropped())
	}

	close(store.release)
	sink.Flush()
	sink.Close()

	if got := store.Len(); got != queueCapacity+101 {
		t.Fatalf("expected %d persisted events, got %d", queueCapacity+101, got)
	}
}

func TestSink_RecordAfterCloseIsLost(t *testing.T) {
	store := NewMemoryLogStore()
	sink := NewSink(store, nil, zap.NewNop())

	sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "before"))
	sink.Close()
	sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "after"))

	if store.Len() != 1 {
		t.Fatalf("expected only pre-close event persisted, got %d", store.Len())
	}
}

func TestSink_NoImplicitRetention(t *testing.T) {
	store := NewMemoryLogStore()
	sink := NewSink(store, nil, zap.NewNop())
	defer sink.Close()

	old := NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "old")
	old.Timestamp = time.Now().Add(-365 * 24 * time.Hour)
	sink.Record(old)
	sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "new"))
	sink.Flush()

	// Nothing ages out on its own.
	if store.Len() != 2 {
		t.Fatalf("expected 2 events before sweep, got %d", store.Len())
	}

	deleted, err := sink.PurgeOlderThan(context.Background(), time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 1 {
		t.Fatalf("expected sweep to delete 1 event, got %d", deleted)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 event after sweep, got %d", store.Len())
	}
}

func TestSink_Clear(t *testing.T) {
	store := NewMemoryLogStore()
	sink := NewSink(store, nil, zap.NewNop())
	defer sink.Close()

	for i := 0; i < 10; i++ {
		sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "call"))
	}
	sink.Flush()

	deleted, err := sink.Clear(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 10 {
		t.Fatalf("expected 10 deleted, got %d", deleted)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}

// failingAnalytics always errors; analytics failures must not affect the
// durable write.
type failingAnalytics struct{}

func (failingAnalytics) Append(context.Context, *SecurityEvent) error {
	return fmt.Errorf("analytics unavailable")
}

func TestSink_AnalyticsFailureIsNonFatal(t *testing.T) {
	store := NewMemoryLogStore()
	sink := NewSink(store, failingAnalytics{}, zap.NewNop())
	defer sink.Close()

	sink.Record(NewEvent(EventCapabilityCall, SeverityLow, "test", "plug-a", "call"))
	sink.Flush()

	if store.Len() != 1 {
		t.Fatalf("durable write must survive analytics failure, got %d events", store.Len())
	}
}
