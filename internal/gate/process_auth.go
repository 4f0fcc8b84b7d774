package gate

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ProcessVerifier checks control-family callers against a fixed
// allow-list of trusted process identities. The list is supplied at
// startup and never grows at runtime.
type ProcessVerifier struct {
	// identity name -> bcrypt hash of the process token issued at spawn.
	allowed map[string]string
}

// NewProcessVerifier builds a verifier from identity -> token-hash pairs.
func NewProcessVerifier(allowed map[string]string) *ProcessVerifier {
	cp := make(map[string]string, len(allowed))
	for identity, hash := range allowed {
		cp[identity] = hash
	}
	return &ProcessVerifier{allowed: cp}
}

// Verify returns the trusted identity name for the calling process, or
// ErrPermissionDenied. The allow-list is small, so comparing against
// every entry is fine; bcrypt keeps each comparison constant-time for a
// given entry.
func (v *ProcessVerifier) Verify(ctx context.Context) (string, error) {
	token, err := ExtractProcessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("Verify: %w", ErrPermissionDenied)
	}

	for identity, hash := range v.allowed {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil {
			return identity, nil
		}
	}
	return "", fmt.Errorf("Verify: %w", ErrPermissionDenied)
}

// HashProcessToken produces the bcrypt hash to put on the allow-list for
// a freshly issued process token.
func HashProcessToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("HashProcessToken: %w", err)
	}
	return string(hash), nil
}
