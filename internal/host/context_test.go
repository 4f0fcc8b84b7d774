package host

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/connectias/warden/internal/audit"
	"github.com/connectias/warden/internal/capability"
	"github.com/connectias/warden/internal/ratelimit"
	"github.com/connectias/warden/internal/surface"
	"go.uber.org/zap"
)

type echoHandler struct {
	kind capability.Kind
}

func (h *echoHandler) Kind() capability.Kind { return h.kind }

func (h *echoHandler) Invoke(_ context.Context, call *capability.Call) (*capability.Result, error) {
	return &capability.Result{Output: call.Op}, nil
}

type hostFixture struct {
	ctx   *Context
	store *audit.MemoryLogStore
	sink  *audit.Sink
}

func newHostFixture(t *testing.T, ceiling int) *hostFixture {
	t.Helper()
	store := audit.NewMemoryLogStore()
	sink := audit.NewSink(store, nil, zap.NewNop())
	t.Cleanup(sink.Close)

	ctx := NewContext(Config{
		RateConfig: ratelimit.Config{
			Default: ratelimit.Window{Length: time.Minute, Ceiling: ceiling},
		},
		Handlers: []capability.Handler{
			&echoHandler{kind: capability.KindLogger},
			&echoHandler{kind: capability.KindNetwork},
		},
		Sink:   sink,
		Logger: zap.NewNop(),
	})
	return &hostFixture{ctx: ctx, store: store, sink: sink}
}

type stubDisplay struct{ id string }

func (d *stubDisplay) ID() string { return d.id }

func (d *stubDisplay) Allocate(string) (surface.Container, error) {
	return &stubContainer{}, nil
}

type stubContainer struct{}

func (*stubContainer) Attach(surface.Content) error { return nil }
func (*stubContainer) Detach()                      {}
func (*stubContainer) Release()                     {}

func TestContext_ActivateDeactivate(t *testing.T) {
	f := newHostFixture(t, 100)

	if err := f.ctx.Activate("plug-a", nil); err != nil {
		t.Fatal(err)
	}
	if err := f.ctx.Activate("plug-a", nil); err == nil {
		t.Fatal("double activate should fail")
	}

	f.ctx.Deactivate("plug-a")
	if len(f.ctx.ActivePlugins()) != 0 {
		t.Fatal("expected no active plugins")
	}

	// Deactivating twice is a no-op, not an error.
	f.ctx.Deactivate("plug-a")

	f.sink.Flush()
	events, _ := f.store.QueryRecent(context.Background(), audit.Query{PluginID: "plug-a"})
	if len(events) != 2 {
		t.Fatalf("expected activate and deactivate events, got %d", len(events))
	}
	if events[0].Type != audit.EventPluginLifecycle || events[1].Type != audit.EventPluginLifecycle {
		t.Fatalf("expected plugin_lifecycle events, got %s/%s", events[0].Type, events[1].Type)
	}
}

func TestContext_InvokeRequiresActivePlugin(t *testing.T) {
	f := newHostFixture(t, 100)

	call := &capability.Call{PluginID: "plug-a", Kind: capability.KindLogger, Op: "info"}
	if _, err := f.ctx.Invoke(context.Background(), call); !errors.Is(err, capability.ErrPermissionDenied) {
		t.Fatalf("inactive plugin: expected ErrPermissionDenied, got %v", err)
	}

	if err := f.ctx.Activate("plug-a", nil); err != nil {
		t.Fatal(err)
	}
	res, err := f.ctx.Invoke(context.Background(), call)
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != "info" {
		t.Fatalf("unexpected result: %q", res.Output)
	}

	f.ctx.Deactivate("plug-a")
	if _, err := f.ctx.Invoke(context.Background(), call); !errors.Is(err, capability.ErrPermissionDenied) {
		t.Fatalf("deactivated plugin: expected ErrPermissionDenied, got %v", err)
	}
}

func TestContext_DeactivateEvictsAllState(t *testing.T) {
	f := newHostFixture(t, 1)

	if err := f.ctx.Activate("plug-a", []capability.Kind{capability.KindLogger, capability.KindNetwork, capability.KindUI}); err != nil {
		t.Fatal(err)
	}

	// Exhaust the plugin's window and give it a surface.
	call := &capability.Call{PluginID: "plug-a", Kind: capability.KindLogger, Op: "info"}
	if _, err := f.ctx.Invoke(context.Background(), call); err != nil {
		t.Fatal(err)
	}
	if _, err := f.ctx.Invoke(context.Background(), call); !errors.Is(err, capability.ErrRateLimited) {
		t.Fatalf("expected rate limit at ceiling, got %v", err)
	}
	h, err := f.ctx.Bridge().Create("plug-a", &stubDisplay{id: "disp-1"})
	if err != nil {
		t.Fatal(err)
	}

	f.ctx.Deactivate("plug-a")

	if h.State() != surface.StateDismissed {
		t.Fatal("deactivation should dismiss the plugin's surface")
	}
	if f.ctx.Limiter().ActivePlugins() != 0 {
		t.Fatal("deactivation should evict rate-limiter state")
	}
	if f.ctx.Grants().Allowed("plug-a", capability.KindNetwork) {
		t.Fatal("deactivation should evict explicit grants")
	}

	// A returning identity starts clean: default grants, fresh window.
	if err := f.ctx.Activate("plug-a", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := f.ctx.Invoke(context.Background(), call); err != nil {
		t.Fatalf("reactivated plugin should have a fresh window: %v", err)
	}
}

func TestContext_CloseDeactivatesEverything(t *testing.T) {
	f := newHostFixture(t, 100)

	for _, id := range []string{"plug-a", "plug-b", "plug-c"} {
		if err := f.ctx.Activate(id, nil); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.ctx.Bridge().Create("plug-b", &stubDisplay{id: "disp-1"}); err != nil {
		t.Fatal(err)
	}

	f.ctx.Close()

	if len(f.ctx.ActivePlugins()) != 0 {
		t.Fatal("expected no active plugins after close")
	}
	if f.ctx.Bridge().Active() != 0 {
		t.Fatal("expected no live surfaces after close")
	}
}
