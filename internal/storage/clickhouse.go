// Package storage holds the durable collaborators behind the audit
// pipeline: an append-only ClickHouse analytics sink and a relational
// Postgres log store.
package storage

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/connectias/warden/internal/audit"
	"go.uber.org/zap"
)

const (
	chBufferSize    = 10_000
	chFlushInterval = 100 * time.Millisecond
	chFlushBatch    = 1000
	chDrainTimeout  = 2 * time.Second
)

// ClickHouseAnalytics appends security events to ClickHouse asynchronously.
// Append() is non-blocking — events are buffered and batch-inserted in a
// background goroutine. Losing an analytics append is non-fatal by
// contract, so a full buffer drops rather than blocks.
type ClickHouseAnalytics struct {
	conn    driver.Conn
	buffer  chan *audit.SecurityEvent
	done    chan struct{}
	flushed chan struct{}
	logger  *zap.Logger
}

// NewClickHouseAnalytics connects to ClickHouse and starts the flush loop.
func NewClickHouseAnalytics(dsn string, logger *zap.Logger) (*ClickHouseAnalytics, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	if opts.TLS == nil {
		opts.TLS = &tls.Config{}
	}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, err
	}

	a := &ClickHouseAnalytics{
		conn:    conn,
		buffer:  make(chan *audit.SecurityEvent, chBufferSize),
		done:    make(chan struct{}),
		flushed: make(chan struct{}),
		logger:  logger,
	}

	go a.flushLoop()
	return a, nil
}

// Append queues a security event for async insertion.
func (a *ClickHouseAnalytics) Append(_ context.Context, event *audit.SecurityEvent) error {
	select {
	case a.buffer <- event:
	default:
		a.logger.Warn("clickhouse buffer full, dropping event",
			zap.String("event_id", event.ID),
		)
	}
	return nil
}

// Close signals the flush loop to drain remaining events.
func (a *ClickHouseAnalytics) Close() {
	close(a.done)
	<-a.flushed
}

func (a *ClickHouseAnalytics) flushLoop() {
	defer close(a.flushed)

	ticker := time.NewTicker(chFlushInterval)
	defer ticker.Stop()

	batch := make([]*audit.SecurityEvent, 0, chFlushBatch)

	for {
		select {
		case event := <-a.buffer:
			batch = append(batch, event)
			if len(batch) >= chFlushBatch {
				a.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				a.flush(batch)
				batch = batch[:0]
			}
		case <-a.done:
			drainCtx, cancel := context.WithTimeout(context.Background(), chDrainTimeout)
			defer cancel()
		drainLoop:
			for {
				select {
				case event := <-a.buffer:
					batch = append(batch, event)
				case <-drainCtx.Done():
					break drainLoop
				default:
					break drainLoop
				}
			}
			if len(batch) > 0 {
				a.flush(batch)
			}
			return
		}
	}
}

func (a *ClickHouseAnalytics) flush(events []*audit.SecurityEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	batch, err := a.conn.PrepareBatch(ctx, `
		INSERT INTO security_events (
			event_id, event_type, severity, source, plugin_id,
			message, detail, failure, timestamp
		)
	`)
	if err != nil {
		a.logger.Error("clickhouse prepare batch failed", zap.Error(err))
		return
	}

	for _, e := range events {
		if err := batch.Append(
			e.ID,
			string(e.Type),
			e.Severity.String(),
			e.Source,
			e.PluginID,
			e.Message,
			e.Detail,
			e.Failure,
			e.Timestamp,
		); err != nil {
			a.logger.Error("clickhouse append event failed",
				zap.String("event_id", e.ID),
				zap.Error(err),
			)
		}
	}

	if err := batch.Send(); err != nil {
		a.logger.Error("clickhouse batch send failed",
			zap.Int("batch_size", len(events)),
			zap.Error(err),
		)
	}
}
