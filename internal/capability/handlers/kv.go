// Package handlers holds the built-in capability implementations that run
// behind the mediation proxy.
package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/connectias/warden/internal/capability"
)

// KVHandler backs the storage capability with a per-plugin key/value table.
// Rows are namespaced by plugin identity; one plugin can never read
// another's keys.
type KVHandler struct {
	db *sql.DB
}

func NewKVHandler(db *sql.DB) *KVHandler {
	return &KVHandler{db: db}
}

func (h *KVHandler) Kind() capability.Kind {
	return capability.KindStorage
}

func (h *KVHandler) Invoke(ctx context.Context, call *capability.Call) (*capability.Result, error) {
	switch call.Op {
	case "put":
		key, value := call.Args["key"], call.Args["value"]
		if key == "" {
			return nil, errors.New("put requires a key")
		}
		_, err := h.db.ExecContext(ctx, `
			INSERT INTO plugin_kv (plugin_id, key, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (plugin_id, key) DO UPDATE SET value = EXCLUDED.value
		`, call.PluginID, key, value)
		if err != nil {
			return nil, fmt.Errorf("kv put: %w", err)
		}
		return &capability.Result{}, nil

	case "get":
		key := call.Args["key"]
		var value string
		err := h.db.QueryRowContext(ctx, `
			SELECT value FROM plugin_kv WHERE plugin_id = $1 AND key = $2
		`, call.PluginID, key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return &capability.Result{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("kv get: %w", err)
		}
		return &capability.Result{Output: value}, nil

	case "delete":
		_, err := h.db.ExecContext(ctx, `
			DELETE FROM plugin_kv WHERE plugin_id = $1 AND key = $2
		`, call.PluginID, call.Args["key"])
		if err != nil {
			return nil, fmt.Errorf("kv delete: %w", err)
		}
		return &capability.Result{}, nil

	case "clear":
		_, err := h.db.ExecContext(ctx, `
			DELETE FROM plugin_kv WHERE plugin_id = $1
		`, call.PluginID)
		if err != nil {
			return nil, fmt.Errorf("kv clear: %w", err)
		}
		return &capability.Result{}, nil

	case "size":
		var n int64
		err := h.db.QueryRowContext(ctx, `
			SELECT count(*) FROM plugin_kv WHERE plugin_id = $1
		`, call.PluginID).Scan(&n)
		if err != nil {
			return nil, fmt.Errorf("kv size: %w", err)
		}
		return &capability.Result{Output: strconv.FormatInt(n, 10)}, nil

	default:
		return nil, fmt.Errorf("unknown storage op %q", call.Op)
	}
}
