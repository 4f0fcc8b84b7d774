// Package host owns the per-process security context: the shared
// limiter, audit sink, capability proxy and surface bridge, plus the
// plugin lifecycle hooks that keep their per-plugin state from leaking.
package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/connectias/warden/internal/audit"
	"github.com/connectias/warden/internal/capability"
	"github.com/connectias/warden/internal/ratelimit"
	"github.com/connectias/warden/internal/surface"
	"go.uber.org/zap"
)

const hostSource = "plugin_host"

// Context is the top-level mediation context. One per process; plugins
// share the limiter, sink, proxy and bridge through it.
type Context struct {
	limiter *ratelimit.Limiter
	sink    *audit.Sink
	grants  *capability.Grants
	proxy   *capability.Proxy
	bridge  *surface.Bridge
	logger  *zap.Logger

	mu     sync.Mutex
	active map[string]bool
}

// Config collects the dependencies a Context mediates between.
type Config struct {
	RateConfig ratelimit.Config
	Handlers   []capability.Handler
	Sink       *audit.Sink
	Logger     *zap.Logger
}

// NewContext builds a Context and its owned components.
func NewContext(cfg Config) *Context {
	limiter := ratelimit.NewLimiter(cfg.RateConfig)
	grants := capability.NewGrants()
	return &Context{
		limiter: limiter,
		sink:    cfg.Sink,
		grants:  grants,
		proxy:   capability.NewProxy(cfg.Handlers, grants, limiter, cfg.Sink, cfg.Logger),
		bridge:  surface.NewBridge(cfg.Sink, cfg.Logger),
		logger:  cfg.Logger,
		active:  make(map[string]bool),
	}
}

// Proxy returns the capability proxy plugins call through.
func (c *Context) Proxy() *capability.Proxy { return c.proxy }

// Bridge returns the surface bridge.
func (c *Context) Bridge() *surface.Bridge { return c.bridge }

// Limiter returns the shared admission limiter.
func (c *Context) Limiter() *ratelimit.Limiter { return c.limiter }

// Grants returns the capability grant table.
func (c *Context) Grants() *capability.Grants { return c.grants }

// Activate marks a plugin active and installs its grant set. Passing nil
// kinds leaves the plugin on the default grants.
func (c *Context) Activate(pluginID string, kinds []capability.Kind) error {
	c.mu.Lock()
	if c.active[pluginID] {
		c.mu.Unlock()
		return fmt.Errorf("Activate: plugin %s already active", pluginID)
	}
	c.active[pluginID] = true
	c.mu.Unlock()

	if kinds != nil {
		c.grants.Set(pluginID, kinds)
	}

	c.sink.Record(audit.NewEvent(
		audit.EventPluginLifecycle, audit.SeverityLow, hostSource,
		pluginID, "plugin activated",
	))
	return nil
}

// Deactivate tears down everything attributable to the plugin: its
// surface, its grant set and its rate-limiter state. Nothing persists
// across a deactivate/activate cycle except the audit trail itself.
func (c *Context) Deactivate(pluginID string) {
	c.mu.Lock()
	if !c.active[pluginID] {
		c.mu.Unlock()
		return
	}
	delete(c.active, pluginID)
	c.mu.Unlock()

	c.bridge.DismissPlugin(pluginID)
	c.grants.Evict(pluginID)
	c.limiter.Evict(pluginID)

	c.sink.Record(audit.NewEvent(
		audit.EventPluginLifecycle, audit.SeverityLow, hostSource,
		pluginID, "plugin deactivated",
	))
}

// ActivePlugins returns the IDs of plugins currently active.
func (c *Context) ActivePlugins() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.active))
	for id := range c.active {
		ids = append(ids, id)
	}
	return ids
}

// Invoke mediates a capability call for an active plugin. Calls from a
// plugin that was never activated, or was deactivated, are rejected
// before any handler or limiter state is touched.
func (c *Context) Invoke(ctx context.Context, call *capability.Call) (*capability.Result, error) {
	c.mu.Lock()
	ok := c.active[call.PluginID]
	c.mu.Unlock()
	if !ok {
		c.sink.Record(audit.NewEvent(
			audit.EventPermissionDenied, audit.SeverityMedium, hostSource,
			call.PluginID, "capability call from inactive plugin",
		).WithDetail("capability", call.Kind.String()))
		return nil, fmt.Errorf("plugin %s: %w", call.PluginID, capability.ErrPermissionDenied)
	}
	return c.proxy.Invoke(ctx, call)
}

// Close deactivates every remaining plugin. The sink is owned by the
// caller and is not closed here.
func (c *Context) Close() {
	for _, id := range c.ActivePlugins() {
		c.Deactivate(id)
	}
}
