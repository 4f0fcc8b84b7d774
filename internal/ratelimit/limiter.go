// Package ratelimit provides per-plugin fixed-window admission control.
// Contention is plugin-local: the plugin map is guarded by a read-mostly
// lock and each plugin's counters by their own mutex, so one plugin's
// call volume never serializes another's.
package ratelimit

import (
	"sync"
	"time"
)

// Window is the admission configuration for one capability risk class.
type Window struct {
	Length  time.Duration
	Ceiling int
}

// Config maps risk class names to their windows. Classes without an entry
// fall back to Default.
type Config struct {
	PerClass map[string]Window
	Default  Window
}

// Decision is the outcome of an admission check. Denials are side-effect
// free: asking again with no new calls in between yields the same answer.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration // zero when allowed
}

type windowState struct {
	start time.Time
	count int
}

type pluginState struct {
	mu      sync.Mutex
	windows map[string]*windowState
}

// Limiter enforces per-plugin call ceilings over fixed windows.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.RWMutex
	plugins map[string]*pluginState
}

func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		now:     time.Now,
		plugins: make(map[string]*pluginState),
	}
}

func (l *Limiter) window(class string) Window {
	if w, ok := l.cfg.PerClass[class]; ok {
		return w
	}
	return l.cfg.Default
}

func (l *Limiter) state(pluginID string) *pluginState {
	l.mu.RLock()
	ps, ok := l.plugins[pluginID]
	l.mu.RUnlock()
	if ok {
		return ps
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if ps, ok = l.plugins[pluginID]; ok {
		return ps
	}
	ps = &pluginState{windows: make(map[string]*windowState)}
	l.plugins[pluginID] = ps
	return ps
}

// TryAcquire consumes one admission slot for the plugin in the given risk
// class. The slot is consumed whether or not the mediated call later
// succeeds: attempting is what costs.
func (l *Limiter) TryAcquire(pluginID, class string) Decision {
	w := l.window(class)
	if w.Ceiling <= 0 {
		return Decision{Allowed: true}
	}

	ps := l.state(pluginID)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	now := l.now()
	ws, ok := ps.windows[class]
	if !ok {
		ws = &windowState{start: now}
		ps.windows[class] = ws
	}

	// Rollover resets the counter atomically under the plugin lock; a call
	// landing exactly on the boundary counts toward the new window only.
	if now.Sub(ws.start) >= w.Length {
		ws.start = now
		ws.count = 0
	}

	if ws.count >= w.Ceiling {
		return Decision{
			Allowed:    false,
			RetryAfter: ws.start.Add(w.Length).Sub(now),
		}
	}

	ws.count++
	return Decision{Allowed: true}
}

// Peek reports the decision TryAcquire would make without consuming a slot.
func (l *Limiter) Peek(pluginID, class string) Decision {
	w := l.window(class)
	if w.Ceiling <= 0 {
		return Decision{Allowed: true}
	}

	ps := l.state(pluginID)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	now := l.now()
	ws, ok := ps.windows[class]
	if !ok || now.Sub(ws.start) >= w.Length || ws.count < w.Ceiling {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed:    false,
		RetryAfter: ws.start.Add(w.Length).Sub(now),
	}
}

// Evict discards all window state for a plugin. Called on plugin
// deactivation; state is rebuilt lazily if the identity ever returns.
func (l *Limiter) Evict(pluginID string) {
	l.mu.Lock()
	delete(l.plugins, pluginID)
	l.mu.Unlock()
}

// ActivePlugins reports how many plugins currently hold window state.
func (l *Limiter) ActivePlugins() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.plugins)
}
