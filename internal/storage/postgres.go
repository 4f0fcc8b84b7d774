package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/connectias/warden/internal/audit"
)

// PostgresLogStore is the durable relational store behind the audit read
// path. Inserts preserve arrival order per plugin because the sink hands
// them over from a single consumer goroutine.
type PostgresLogStore struct {
	db *sql.DB
}

func NewPostgresLogStore(db *sql.DB) *PostgresLogStore {
	return &PostgresLogStore{db: db}
}

func (s *PostgresLogStore) Insert(ctx context.Context, e *audit.SecurityEvent) error {
	detail, err := json.Marshal(e.Detail)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO security_log (
			event_id, event_type, severity, source, plugin_id,
			message, detail, failure, ts
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		e.ID, string(e.Type), int(e.Severity), e.Source, e.PluginID,
		e.Message, detail, e.Failure, e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

func (s *PostgresLogStore) QueryRecent(ctx context.Context, q audit.Query) ([]*audit.SecurityEvent, error) {
	conditions := []string{"true"}
	args := []any{}

	if q.PluginID != "" {
		args = append(args, q.PluginID)
		conditions = append(conditions, fmt.Sprintf("plugin_id = $%d", len(args)))
	}
	if q.MinSeverity != 0 {
		args = append(args, int(q.MinSeverity))
		conditions = append(conditions, fmt.Sprintf("severity >= $%d", len(args)))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT event_id, event_type, severity, source, plugin_id,
		       message, detail, failure, ts
		FROM security_log
		WHERE %s
		ORDER BY ts DESC, id DESC
		LIMIT $%d
	`, strings.Join(conditions, " AND "), len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("QueryRecent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*audit.SecurityEvent
	for rows.Next() {
		var (
			e         audit.SecurityEvent
			eventType string
			severity  int
			detail    []byte
		)
		if err := rows.Scan(
			&e.ID, &eventType, &severity, &e.Source, &e.PluginID,
			&e.Message, &detail, &e.Failure, &e.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("QueryRecent scan: %w", err)
		}
		e.Type = audit.EventType(eventType)
		e.Severity = audit.Severity(severity)
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &e.Detail); err != nil {
				return nil, fmt.Errorf("QueryRecent detail: %w", err)
			}
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (s *PostgresLogStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM security_log WHERE ts < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: %w", err)
	}
	return res.RowsAffected()
}

func (s *PostgresLogStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM security_log`)
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: %w", err)
	}
	return res.RowsAffected()
}
