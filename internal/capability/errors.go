package capability

import (
	"errors"
	"fmt"
)

// ErrRateLimited means the plugin exhausted its admission window for the
// capability's risk class. Recoverable: retry after the window elapses.
var ErrRateLimited = errors.New("rate limited")

// ErrPermissionDenied means the plugin was never granted the capability.
// Not transient; retrying does not help.
var ErrPermissionDenied = errors.New("permission denied")

// ErrUnknownCapability means no handler is registered for the kind.
var ErrUnknownCapability = errors.New("unknown capability")

// CapabilityError wraps a failure from the underlying capability
// implementation. Recoverability follows that capability's own semantics.
type CapabilityError struct {
	Kind Kind
	Err  error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability %s failed: %v", e.Kind, e.Err)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}
