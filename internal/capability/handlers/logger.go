package handlers

import (
	"context"
	"fmt"

	"github.com/connectias/warden/internal/capability"
	"go.uber.org/zap"
)

// LogHandler backs the logger capability. Plugin log lines land in the
// host log stream tagged with the plugin identity, so a plugin cannot
// forge host log entries.
type LogHandler struct {
	logger *zap.Logger
}

func NewLogHandler(logger *zap.Logger) *LogHandler {
	return &LogHandler{logger: logger.Named("plugin")}
}

func (h *LogHandler) Kind() capability.Kind {
	return capability.KindLogger
}

func (h *LogHandler) Invoke(_ context.Context, call *capability.Call) (*capability.Result, error) {
	msg := call.Args["message"]
	field := zap.String("plugin_id", call.PluginID)

	switch call.Op {
	case "debug":
		h.logger.Debug(msg, field)
	case "info":
		h.logger.Info(msg, field)
	case "warn":
		h.logger.Warn(msg, field)
	case "error":
		h.logger.Error(msg, field)
	default:
		return nil, fmt.Errorf("unknown logger op %q", call.Op)
	}
	return &capability.Result{}, nil
}
