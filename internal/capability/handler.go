package capability

import (
	"context"
	"time"
)

// Call is one unit of work a plugin requests from the host. Transient:
// created per call, discarded after completion.
type Call struct {
	PluginID string
	Kind     Kind
	Op       string
	Args     map[string]string
	Time     time.Time
}

// Result is the outcome of a successful capability invocation.
type Result struct {
	Output string
}

// Handler is the real implementation behind one capability kind. The proxy
// never invokes a handler while holding its own bookkeeping locks, so a
// slow handler stalls only its caller.
type Handler interface {
	// Kind returns the capability this handler serves.
	Kind() Kind

	// Invoke executes the call. Must respect ctx cancellation.
	Invoke(ctx context.Context, call *Call) (*Result, error)
}
