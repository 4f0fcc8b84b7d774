// Package surface projects plugin-owned UI content into containers owned
// by the trusted process, and tears the projection down deterministically
// when either side disappears.
package surface

// Content is plugin-rendered UI handed across the isolation boundary.
// The bridge never inspects it; it only attaches and detaches it.
type Content interface {
	PluginID() string
}

// Container is a host-owned region on a display that plugin content can be
// attached to. Implementations are not required to be safe for concurrent
// use; the owning Handle serializes all access.
type Container interface {
	Attach(content Content) error
	Detach()
	Release()
}

// Display allocates containers for plugin surfaces.
type Display interface {
	ID() string
	Allocate(pluginID string) (Container, error)
}
