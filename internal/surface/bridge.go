package surface

import (
	"errors"
	"fmt"
	"sync"

	"github.com/connectias/warden/internal/audit"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const bridgeSource = "surface_bridge"

// ErrSurfaceExists means the plugin already owns a live surface. Handles
// are 1:1 with an active plugin lifetime; dismiss the old one first.
var ErrSurfaceExists = errors.New("plugin already has an active surface")

// Bridge tracks every live surface handle and tears them down when the
// owning plugin or the underlying display disappears.
type Bridge struct {
	sink   *audit.Sink
	logger *zap.Logger

	mu        sync.Mutex
	byPlugin  map[string]*Handle
	byDisplay map[string]map[*Handle]struct{}
}

func NewBridge(sink *audit.Sink, logger *zap.Logger) *Bridge {
	return &Bridge{
		sink:      sink,
		logger:    logger,
		byPlugin:  make(map[string]*Handle),
		byDisplay: make(map[string]map[*Handle]struct{}),
	}
}

// Create allocates a container on the display and returns a handle in the
// Created state, content not yet attached.
func (b *Bridge) Create(pluginID string, display Display) (*Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.byPlugin[pluginID]; ok {
		return nil, fmt.Errorf("Create %s: %w", pluginID, ErrSurfaceExists)
	}

	container, err := display.Allocate(pluginID)
	if err != nil {
		return nil, fmt.Errorf("Create %s: %w", pluginID, err)
	}

	h := &Handle{
		id:        uuid.New().String(),
		pluginID:  pluginID,
		displayID: display.ID(),
		bridge:    b,
		state:     StateCreated,
		container: container,
	}
	b.byPlugin[pluginID] = h
	handles, ok := b.byDisplay[display.ID()]
	if !ok {
		handles = make(map[*Handle]struct{})
		b.byDisplay[display.ID()] = handles
	}
	handles[h] = struct{}{}

	b.sink.Record(audit.NewEvent(
		audit.EventSurfaceLifecycle, audit.SeverityLow, bridgeSource,
		pluginID, "surface created",
	).WithDetail("surface_id", h.id).WithDetail("display_id", display.ID()))

	return h, nil
}

// DismissPlugin tears down the plugin's surface if it has one. Used on
// plugin deactivation; dismissing a plugin without a surface is a no-op.
func (b *Bridge) DismissPlugin(pluginID string) {
	b.mu.Lock()
	h := b.byPlugin[pluginID]
	b.mu.Unlock()

	if h == nil {
		return
	}
	if err := h.Dismiss(); err != nil && !errors.Is(err, ErrStaleHandle) {
		b.logger.Warn("surface dismiss failed",
			zap.String("plugin_id", pluginID),
			zap.Error(err),
		)
	}
}

// OnDisplayRemoved dismisses every surface projected onto the display.
func (b *Bridge) OnDisplayRemoved(displayID string) {
	b.mu.Lock()
	var affected []*Handle
	for h := range b.byDisplay[displayID] {
		affected = append(affected, h)
	}
	b.mu.Unlock()

	for _, h := range affected {
		if err := h.Dismiss(); err != nil && !errors.Is(err, ErrStaleHandle) {
			b.logger.Warn("surface dismiss on display removal failed",
				zap.String("plugin_id", h.PluginID()),
				zap.String("display_id", displayID),
				zap.Error(err),
			)
		}
	}
}

// Lookup returns the plugin's live handle, or nil.
func (b *Bridge) Lookup(pluginID string) *Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.byPlugin[pluginID]
}

// Active reports the number of live handles.
func (b *Bridge) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.byPlugin)
}

// forget unregisters a dismissed handle. Called by Handle.Dismiss after
// the handle's own teardown completed, without the handle lock held.
func (b *Bridge) forget(h *Handle) {
	b.mu.Lock()
	if b.byPlugin[h.pluginID] == h {
		delete(b.byPlugin, h.pluginID)
	}
	if handles, ok := b.byDisplay[h.displayID]; ok {
		delete(handles, h)
		if len(handles) == 0 {
			delete(b.byDisplay, h.displayID)
		}
	}
	b.mu.Unlock()

	b.sink.Record(audit.NewEvent(
		audit.EventSurfaceLifecycle, audit.SeverityLow, bridgeSource,
		h.pluginID, "surface dismissed",
	).WithDetail("surface_id", h.id).WithDetail("display_id", h.displayID))
}
