package gate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/metadata"
)

func ctxWithAuth(value string) context.Context {
	md := metadata.New(map[string]string{"authorization": value})
	return metadata.NewIncomingContext(context.Background(), md)
}

func ctxWithProcessToken(token string) context.Context {
	md := metadata.New(map[string]string{"x-warden-process": token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestExtractGrantKey(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		wantKey string
		wantErr bool
	}{
		{"no metadata", context.Background(), "", true},
		{"bearer prefix stripped", ctxWithAuth("Bearer cgk_abcdef1234"), "cgk_abcdef1234", false},
		{"lowercase bearer", ctxWithAuth("bearer cgk_abcdef1234"), "cgk_abcdef1234", false},
		{"bare key", ctxWithAuth("cgk_abcdef1234"), "cgk_abcdef1234", false},
		{"wrong prefix", ctxWithAuth("Bearer sk_abcdef1234"), "", true},
		{"empty", ctxWithAuth(""), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ExtractGrantKey(tt.ctx)
			if tt.wantErr {
				if !errors.Is(err, ErrUnauthenticated) {
					t.Fatalf("expected ErrUnauthenticated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if key != tt.wantKey {
				t.Fatalf("expected %s, got %s", tt.wantKey, key)
			}
		})
	}
}

func TestProcessVerifier(t *testing.T) {
	hash, err := HashProcessToken("tok-main-secret")
	if err != nil {
		t.Fatal(err)
	}
	v := NewProcessVerifier(map[string]string{"main": hash})

	identity, err := v.Verify(ctxWithProcessToken("tok-main-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if identity != "main" {
		t.Fatalf("expected identity main, got %s", identity)
	}

	if _, err := v.Verify(ctxWithProcessToken("tok-wrong")); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("wrong token: expected ErrPermissionDenied, got %v", err)
	}
	if _, err := v.Verify(context.Background()); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("missing token: expected ErrPermissionDenied, got %v", err)
	}
}

func TestProcessVerifier_EmptyAllowListRejectsAll(t *testing.T) {
	v := NewProcessVerifier(nil)
	if _, err := v.Verify(ctxWithProcessToken("anything")); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

// fakeGrantStore serves canned rows keyed by prefix.
type fakeGrantStore struct {
	rows    map[string]*grantRow
	err     error
	lookups int
}

func (s *fakeGrantStore) LookupByPrefix(_ context.Context, prefix string) (*grantRow, error) {
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	row, ok := s.rows[prefix]
	if !ok {
		return nil, fmt.Errorf("no row for prefix %s", prefix)
	}
	return row, nil
}

func grantFixture(t *testing.T, key string) *fakeGrantStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &fakeGrantStore{rows: map[string]*grantRow{
		key[:8]: {GrantID: "grant-1", PluginID: "plug-a", KeyHash: string(hash)},
	}}
}

func TestGrantAuthenticator_ValidKey(t *testing.T) {
	key := "cgk_live_0123456789"
	store := grantFixture(t, key)
	a := NewPostgresGrantAuthenticatorWithStore(store, 30*time.Second, zap.NewNop())

	grant, err := a.Authenticate(ctxWithAuth("Bearer " + key))
	if err != nil {
		t.Fatal(err)
	}
	if grant.GrantID != "grant-1" || grant.PluginID != "plug-a" {
		t.Fatalf("unexpected grant: %+v", grant)
	}
}

func TestGrantAuthenticator_CachesLookups(t *testing.T) {
	key := "cgk_live_0123456789"
	store := grantFixture(t, key)
	a := NewPostgresGrantAuthenticatorWithStore(store, 30*time.Second, zap.NewNop())

	for i := 0; i < 5; i++ {
		if _, err := a.Authenticate(ctxWithAuth(key)); err != nil {
			t.Fatal(err)
		}
	}
	if store.lookups != 1 {
		t.Fatalf("expected 1 store lookup, got %d", store.lookups)
	}
}

func TestGrantAuthenticator_WrongKeyRejected(t *testing.T) {
	key := "cgk_live_0123456789"
	store := grantFixture(t, key)
	a := NewPostgresGrantAuthenticatorWithStore(store, 30*time.Second, zap.NewNop())

	// Same prefix, different suffix: bcrypt comparison must fail.
	if _, err := a.Authenticate(ctxWithAuth("cgk_live_9999999999")); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestGrantAuthenticator_RevokedKeyRejected(t *testing.T) {
	key := "cgk_live_0123456789"
	store := grantFixture(t, key)
	store.rows[key[:8]].Revoked = true
	a := NewPostgresGrantAuthenticatorWithStore(store, 30*time.Second, zap.NewNop())

	if _, err := a.Authenticate(ctxWithAuth(key)); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for revoked key, got %v", err)
	}
}

func TestGrantAuthenticator_ShortKeyRejected(t *testing.T) {
	store := &fakeGrantStore{}
	a := NewPostgresGrantAuthenticatorWithStore(store, 30*time.Second, zap.NewNop())

	if _, err := a.Authenticate(ctxWithAuth("cgk_a")); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if store.lookups != 0 {
		t.Fatal("short key must not hit the store")
	}
}

func TestGrantAuthenticator_StoreOutageFailsClosed(t *testing.T) {
	store := &fakeGrantStore{err: fmt.Errorf("connection refused")}
	a := NewPostgresGrantAuthenticatorWithStore(store, 30*time.Second, zap.NewNop())

	if _, err := a.Authenticate(ctxWithAuth("cgk_live_0123456789")); err == nil {
		t.Fatal("store outage must reject, not admit")
	}
}

func TestGrantCache_StaleHitSignalsSingleRefresh(t *testing.T) {
	c := NewGrantCache(1 * time.Millisecond)
	c.Set("key", &GrantContext{GrantID: "grant-1", PluginID: "plug-a"})

	time.Sleep(5 * time.Millisecond)

	refreshes := 0
	for i := 0; i < 10; i++ {
		result := c.Get("key")
		if !result.Hit {
			t.Fatal("stale entry should still hit")
		}
		if result.NeedsRefresh {
			refreshes++
		}
	}
	if refreshes != 1 {
		t.Fatalf("expected exactly 1 refresh signal, got %d", refreshes)
	}
}

func TestGrantCache_Delete(t *testing.T) {
	c := NewGrantCache(30 * time.Second)
	c.Set("key", &GrantContext{GrantID: "grant-1"})
	c.Delete("key")

	if c.Get("key").Hit {
		t.Fatal("expected miss after delete")
	}
}
