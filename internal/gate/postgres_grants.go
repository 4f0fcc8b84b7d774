package gate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GrantStore abstracts DB queries for testability.
type GrantStore interface {
	LookupByPrefix(ctx context.Context, prefix string) (*grantRow, error)
}

type grantRow struct {
	GrantID  string
	PluginID string
	KeyHash  string
	Revoked  bool
}

// sqlGrantStore is the real implementation using *sql.DB.
type sqlGrantStore struct {
	db *sql.DB
}

func (s *sqlGrantStore) LookupByPrefix(ctx context.Context, prefix string) (*grantRow, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, plugin_id, key_hash, revoked
		FROM capability_grants
		WHERE key_prefix = $1
	`, prefix)

	var r grantRow
	if err := row.Scan(&r.GrantID, &r.PluginID, &r.KeyHash, &r.Revoked); err != nil {
		return nil, err
	}
	return &r, nil
}

// PostgresGrantAuthenticator validates grant keys against the
// capability_grants table. Unlike softer boundaries this one fails
// closed: a store outage rejects submissions rather than admitting them.
type PostgresGrantAuthenticator struct {
	store  GrantStore
	cache  *GrantCache
	logger *zap.Logger
}

// PostgresGrantConfig configures the PostgresGrantAuthenticator.
type PostgresGrantConfig struct {
	DB       *sql.DB
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// NewPostgresGrantAuthenticator creates a new PostgresGrantAuthenticator.
func NewPostgresGrantAuthenticator(cfg PostgresGrantConfig) *PostgresGrantAuthenticator {
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &PostgresGrantAuthenticator{
		store:  &sqlGrantStore{db: cfg.DB},
		cache:  NewGrantCache(ttl),
		logger: cfg.Logger,
	}
}

// NewPostgresGrantAuthenticatorWithStore creates an authenticator with a
// custom store (for testing).
func NewPostgresGrantAuthenticatorWithStore(store GrantStore, cacheTTL time.Duration, logger *zap.Logger) *PostgresGrantAuthenticator {
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Second
	}
	return &PostgresGrantAuthenticator{
		store:  store,
		cache:  NewGrantCache(cacheTTL),
		logger: logger,
	}
}

func (a *PostgresGrantAuthenticator) Authenticate(ctx context.Context) (*GrantContext, error) {
	key, err := ExtractGrantKey(ctx)
	if err != nil {
		return nil, err
	}

	cacheResult := a.cache.Get(key)
	if cacheResult.Hit {
		if cacheResult.NeedsRefresh {
			go a.refreshInBackground(key)
		}
		return cacheResult.Grant, nil
	}

	grant, err := a.authenticateFromDB(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}

	a.cache.Set(key, grant)
	return grant, nil
}

func (a *PostgresGrantAuthenticator) authenticateFromDB(ctx context.Context, key string) (*GrantContext, error) {
	if len(key) < 8 {
		return nil, ErrUnauthenticated
	}
	prefix := key[:8]

	row, err := a.store.LookupByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("authenticateFromDB: %w", err)
	}
	if row.Revoked {
		return nil, ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.KeyHash), []byte(key)); err != nil {
		return nil, ErrUnauthenticated
	}

	return &GrantContext{
		GrantID:  row.GrantID,
		PluginID: row.PluginID,
	}, nil
}

func (a *PostgresGrantAuthenticator) refreshInBackground(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	grant, err := a.authenticateFromDB(ctx, key)
	if err != nil {
		a.logger.Warn("background grant refresh failed", zap.Error(err))
		a.cache.Delete(key)
		return
	}
	a.cache.Set(key, grant)
}

// StaticGrantAuthenticator is a development-only authenticator that
// accepts any cgk_ key.
type StaticGrantAuthenticator struct{}

func NewStaticGrantAuthenticator() *StaticGrantAuthenticator {
	return &StaticGrantAuthenticator{}
}

func (a *StaticGrantAuthenticator) Authenticate(ctx context.Context) (*GrantContext, error) {
	key, err := ExtractGrantKey(ctx)
	if err != nil {
		return nil, err
	}
	return &GrantContext{
		GrantID:  "static-" + key[:8],
		PluginID: "static",
	}, nil
}
