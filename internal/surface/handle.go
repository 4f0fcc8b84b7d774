package surface

import (
	"errors"
	"fmt"
	"sync"
)

// ErrStaleHandle is returned by every operation on a dismissed handle.
// Callers must request a fresh surface; a stale handle never silently
// no-ops.
var ErrStaleHandle = errors.New("stale surface handle")

// State is the lifecycle position of a surface handle.
type State int

const (
	StateCreated State = iota
	StateStarted
	StateStopped
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Handle ties a plugin identity to a live container on a display.
// All transitions are serialized under the handle mutex, so a Dismiss
// racing a Start can never leave content attached to a released container.
type Handle struct {
	id        string
	pluginID  string
	displayID string
	bridge    *Bridge

	mu        sync.Mutex
	state     State
	container Container
	content   Content
}

// ID returns the handle's unique identifier.
func (h *Handle) ID() string { return h.id }

// PluginID returns the owning plugin identity.
func (h *Handle) PluginID() string { return h.pluginID }

// DisplayID returns the display the surface was created on.
func (h *Handle) DisplayID() string { return h.displayID }

// State returns the current lifecycle state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Start attaches the content and makes it visible. Re-entrant Start calls
// are no-ops. A nil content reuses the content from a previous Start.
func (h *Handle) Start(content Content) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateDismissed:
		return ErrStaleHandle
	case StateStarted:
		return nil
	}

	if content == nil {
		content = h.content
	}
	if content == nil {
		return errors.New("no content to attach")
	}

	if err := h.container.Attach(content); err != nil {
		return fmt.Errorf("Start: %w", err)
	}
	h.content = content
	h.state = StateStarted
	return nil
}

// Stop detaches the content from visibility but keeps the handle alive.
// Start may follow.
func (h *Handle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateDismissed:
		return ErrStaleHandle
	case StateStarted:
		h.container.Detach()
		h.state = StateStopped
	}
	return nil
}

// Dismiss terminates the handle: content is detached before the container
// is released, on every path, and the handle is invalidated. Any later
// operation returns ErrStaleHandle.
func (h *Handle) Dismiss() error {
	h.mu.Lock()
	if h.state == StateDismissed {
		h.mu.Unlock()
		return ErrStaleHandle
	}

	// Teardown ordering is load-bearing: detach before release, always.
	if h.state == StateStarted {
		h.container.Detach()
	}
	h.container.Release()
	h.state = StateDismissed
	h.content = nil
	h.mu.Unlock()

	h.bridge.forget(h)
	return nil
}
