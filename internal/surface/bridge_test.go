package surface

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/connectias/warden/internal/audit"
	"go.uber.org/zap"
)

// fakeContainer records every operation in order so tests can assert the
// teardown sequence.
type fakeContainer struct {
	mu       sync.Mutex
	ops      []string
	released bool
}

func (c *fakeContainer) record(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

func (c *fakeContainer) Attach(_ Content) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return fmt.Errorf("attach to released container")
	}
	c.ops = append(c.ops, "attach")
	return nil
}

func (c *fakeContainer) Detach() { c.record("detach") }

func (c *fakeContainer) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released = true
	c.ops = append(c.ops, "release")
}

func (c *fakeContainer) opList() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ops...)
}

type fakeDisplay struct {
	id         string
	containers []*fakeContainer
	allocErr   error
}

func (d *fakeDisplay) ID() string { return d.id }

func (d *fakeDisplay) Allocate(_ string) (Container, error) {
	if d.allocErr != nil {
		return nil, d.allocErr
	}
	c := &fakeContainer{}
	d.containers = append(d.containers, c)
	return c, nil
}

type fakeContent struct{ pluginID string }

func (c *fakeContent) PluginID() string { return c.pluginID }

func newTestBridge(t *testing.T) *Bridge {
	t.Helper()
	sink := audit.NewSink(audit.NewMemoryLogStore(), nil, zap.NewNop())
	t.Cleanup(sink.Close)
	return NewBridge(sink, zap.NewNop())
}

func TestHandle_Lifecycle(t *testing.T) {
	b := newTestBridge(t)
	d := &fakeDisplay{id: "disp-1"}

	h, err := b.Create("plug-a", d)
	if err != nil {
		t.Fatal(err)
	}
	if h.State() != StateCreated {
		t.Fatalf("expected created, got %s", h.State())
	}

	content := &fakeContent{pluginID: "plug-a"}
	if err := h.Start(content); err != nil {
		t.Fatal(err)
	}
	if h.State() != StateStarted {
		t.Fatalf("expected started, got %s", h.State())
	}

	// Re-entrant Start is a no-op, no second attach.
	if err := h.Start(content); err != nil {
		t.Fatal(err)
	}

	if err := h.Stop(); err != nil {
		t.Fatal(err)
	}
	if h.State() != StateStopped {
		t.Fatalf("expected stopped, got %s", h.State())
	}

	// Restart after Stop reuses the previous content when passed nil.
	if err := h.Start(nil); err != nil {
		t.Fatal(err)
	}

	if err := h.Dismiss(); err != nil {
		t.Fatal(err)
	}
	if h.State() != StateDismissed {
		t.Fatalf("expected dismissed, got %s", h.State())
	}

	want := []string{"attach", "detach", "attach", "detach", "release"}
	got := d.containers[0].opList()
	if len(got) != len(want) {
		t.Fatalf("expected ops %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("op %d: expected %s, got %s (full: %v)", i, want[i], got[i], got)
		}
	}
}

func TestHandle_DismissedIsTerminal(t *testing.T) {
	b := newTestBridge(t)
	d := &fakeDisplay{id: "disp-1"}

	h, _ := b.Create("plug-a", d)
	_ = h.Start(&fakeContent{pluginID: "plug-a"})
	if err := h.Dismiss(); err != nil {
		t.Fatal(err)
	}

	if err := h.Start(&fakeContent{pluginID: "plug-a"}); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("Start on dismissed handle: expected ErrStaleHandle, got %v", err)
	}
	if err := h.Stop(); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("Stop on dismissed handle: expected ErrStaleHandle, got %v", err)
	}
	if err := h.Dismiss(); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("double Dismiss: expected ErrStaleHandle, got %v", err)
	}
}

func TestHandle_DetachBeforeReleaseWhenStarted(t *testing.T) {
	b := newTestBridge(t)
	d := &fakeDisplay{id: "disp-1"}

	h, _ := b.Create("plug-a", d)
	_ = h.Start(&fakeContent{pluginID: "plug-a"})
	_ = h.Dismiss()

	ops := d.containers[0].opList()
	if len(ops) != 3 || ops[1] != "detach" || ops[2] != "release" {
		t.Fatalf("expected detach before release, got %v", ops)
	}
}

func TestHandle_DismissFromCreatedSkipsDetach(t *testing.T) {
	b := newTestBridge(t)
	d := &fakeDisplay{id: "disp-1"}

	h, _ := b.Create("plug-a", d)
	_ = h.Dismiss()

	ops := d.containers[0].opList()
	if len(ops) != 1 || ops[0] != "release" {
		t.Fatalf("nothing was attached, expected bare release, got %v", ops)
	}
}

func TestBridge_OneSurfacePerPlugin(t *testing.T) {
	b := newTestBridge(t)
	d := &fakeDisplay{id: "disp-1"}

	if _, err := b.Create("plug-a", d); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Create("plug-a", d); !errors.Is(err, ErrSurfaceExists) {
		t.Fatalf("expected ErrSurfaceExists, got %v", err)
	}

	// After dismiss the plugin may create again.
	b.DismissPlugin("plug-a")
	if _, err := b.Create("plug-a", d); err != nil {
		t.Fatalf("create after dismiss should succeed: %v", err)
	}
}

func TestBridge_AllocateFailurePropagates(t *testing.T) {
	b := newTestBridge(t)
	d := &fakeDisplay{id: "disp-1", allocErr: fmt.Errorf("display busy")}

	if _, err := b.Create("plug-a", d); err == nil {
		t.Fatal("expected allocation error")
	}
	if b.Active() != 0 {
		t.Fatal("failed create must not register a handle")
	}
}

func TestBridge_DisplayRemovalDismissesAll(t *testing.T) {
	b := newTestBridge(t)
	d1 := &fakeDisplay{id: "disp-1"}
	d2 := &fakeDisplay{id: "disp-2"}

	hA, _ := b.Create("plug-a", d1)
	hB, _ := b.Create("plug-b", d1)
	hC, _ := b.Create("plug-c", d2)
	_ = hA.Start(&fakeContent{pluginID: "plug-a"})

	b.OnDisplayRemoved("disp-1")

	if hA.State() != StateDismissed || hB.State() != StateDismissed {
		t.Fatal("surfaces on the removed display should be dismissed")
	}
	if hC.State() == StateDismissed {
		t.Fatal("surfaces on other displays must survive")
	}
	if b.Active() != 1 {
		t.Fatalf("expected 1 live handle, got %d", b.Active())
	}
}

func TestBridge_LookupTracksLiveHandle(t *testing.T) {
	b := newTestBridge(t)
	d := &fakeDisplay{id: "disp-1"}

	h, _ := b.Create("plug-a", d)
	if b.Lookup("plug-a") != h {
		t.Fatal("lookup should return the live handle")
	}

	_ = h.Dismiss()
	if b.Lookup("plug-a") != nil {
		t.Fatal("lookup after dismiss should return nil")
	}
}

func TestHandle_ConcurrentStartDismiss(t *testing.T) {
	for i := 0; i < 50; i++ {
		b := newTestBridge(t)
		d := &fakeDisplay{id: "disp-1"}
		h, _ := b.Create("plug-a", d)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = h.Start(&fakeContent{pluginID: "plug-a"})
		}()
		go func() {
			defer wg.Done()
			_ = h.Dismiss()
		}()
		wg.Wait()

		// Whatever the interleaving, content must never attach to a
		// released container.
		ops := d.containers[0].opList()
		released := false
		for _, op := range ops {
			if op == "release" {
				released = true
			}
			if op == "attach" && released {
				t.Fatalf("attach after release: %v", ops)
			}
		}
		if h.State() != StateDismissed {
			t.Fatalf("expected dismissed after race, got %s", h.State())
		}
	}
}
