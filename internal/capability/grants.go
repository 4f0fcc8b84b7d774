package capability

import "sync"

// DefaultGrants are the kinds every active plugin may use without an
// explicit grant.
var DefaultGrants = []Kind{KindStorage, KindLogger, KindSystemInfo}

// Grants tracks which capability kinds each plugin has been granted.
// Plugins without an explicit grant set fall back to DefaultGrants.
type Grants struct {
	mu       sync.RWMutex
	perPlug  map[string]map[Kind]bool
	defaults map[Kind]bool
}

func NewGrants() *Grants {
	defaults := make(map[Kind]bool, len(DefaultGrants))
	for _, k := range DefaultGrants {
		defaults[k] = true
	}
	return &Grants{
		perPlug:  make(map[string]map[Kind]bool),
		defaults: defaults,
	}
}

// Set replaces a plugin's grant set.
func (g *Grants) Set(pluginID string, kinds []Kind) {
	granted := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		granted[k] = true
	}
	g.mu.Lock()
	g.perPlug[pluginID] = granted
	g.mu.Unlock()
}

// Allowed reports whether the plugin may invoke the kind.
func (g *Grants) Allowed(pluginID string, kind Kind) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if granted, ok := g.perPlug[pluginID]; ok {
		return granted[kind]
	}
	return g.defaults[kind]
}

// Evict removes a plugin's grant set on deactivation.
func (g *Grants) Evict(pluginID string) {
	g.mu.Lock()
	delete(g.perPlug, pluginID)
	g.mu.Unlock()
}
