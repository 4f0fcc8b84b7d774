// Package gate validates caller identity at the service boundary. The
// same transport carries two method families: external submissions
// checked against capability grants, and main-process control calls
// checked against a fixed process allow-list. The check is selected per
// method — a passed check never carries over to a later call on the same
// connection.
package gate

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/metadata"
)

// ErrUnauthenticated is returned when no usable credentials are present.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrPermissionDenied is returned when credentials are present but wrong
// for the method family. Not transient.
var ErrPermissionDenied = errors.New("permission denied")

// GrantContext identifies an external caller holding a capability grant.
type GrantContext struct {
	GrantID  string
	PluginID string
}

// GrantAuthenticator validates submission-family callers.
type GrantAuthenticator interface {
	Authenticate(ctx context.Context) (*GrantContext, error)
}

// ExtractGrantKey extracts a cgk_ capability grant key from gRPC metadata.
func ExtractGrantKey(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", ErrUnauthenticated
	}
	key := values[0]
	key = strings.TrimPrefix(key, "Bearer ")
	key = strings.TrimPrefix(key, "bearer ")
	if !strings.HasPrefix(key, "cgk_") {
		return "", ErrUnauthenticated
	}
	return key, nil
}

// ExtractProcessToken extracts the main-process identity token from gRPC
// metadata.
func ExtractProcessToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	values := md.Get("x-warden-process")
	if len(values) == 0 || values[0] == "" {
		return "", ErrUnauthenticated
	}
	return values[0], nil
}
