package handlers

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/connectias/warden/internal/capability"
)

// SysInfoHandler backs the system_info capability with coarse host facts.
// Nothing here identifies the user or other plugins.
type SysInfoHandler struct{}

func NewSysInfoHandler() *SysInfoHandler {
	return &SysInfoHandler{}
}

func (h *SysInfoHandler) Kind() capability.Kind {
	return capability.KindSystemInfo
}

func (h *SysInfoHandler) Invoke(_ context.Context, call *capability.Call) (*capability.Result, error) {
	switch call.Op {
	case "os":
		return &capability.Result{Output: runtime.GOOS + "/" + runtime.GOARCH}, nil
	case "cpus":
		return &capability.Result{Output: strconv.Itoa(runtime.NumCPU())}, nil
	case "memory":
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return &capability.Result{Output: strconv.FormatUint(m.Sys, 10)}, nil
	default:
		return nil, fmt.Errorf("unknown system_info op %q", call.Op)
	}
}
