package capability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/connectias/warden/internal/audit"
	"github.com/connectias/warden/internal/ratelimit"
	"go.uber.org/zap"
)

const proxySource = "capability_proxy"

// Proxy is the single choke point for plugin-to-host capability calls.
// Every call is grant-checked, rate-limited and audited; the real handler
// runs outside all proxy locks.
type Proxy struct {
	handlers map[Kind]Handler
	grants   *Grants
	limiter  *ratelimit.Limiter
	sink     *audit.Sink
	logger   *zap.Logger
}

// NewProxy creates a Proxy mediating the given handlers.
func NewProxy(handlers []Handler, grants *Grants, limiter *ratelimit.Limiter, sink *audit.Sink, logger *zap.Logger) *Proxy {
	hs := make(map[Kind]Handler, len(handlers))
	for _, h := range handlers {
		hs[h.Kind()] = h
	}
	return &Proxy{
		handlers: hs,
		grants:   grants,
		limiter:  limiter,
		sink:     sink,
		logger:   logger,
	}
}

// Invoke mediates one capability call. Errors crossing back to the plugin
// are always one of ErrPermissionDenied, ErrRateLimited,
// ErrUnknownCapability or a CapabilityError; nothing internal leaks
// through unclassified.
func (p *Proxy) Invoke(ctx context.Context, call *Call) (*Result, error) {
	if call.Time.IsZero() {
		call.Time = time.Now().UTC()
	}

	handler, ok := p.handlers[call.Kind]
	if !ok {
		return nil, fmt.Errorf("%s: %w", call.Kind, ErrUnknownCapability)
	}

	// Grant check precedes rate accounting: an ungranted call must not
	// consume an admission slot.
	if !p.grants.Allowed(call.PluginID, call.Kind) {
		p.sink.Record(audit.NewEvent(
			audit.EventPermissionDenied, audit.SeverityMedium, proxySource,
			call.PluginID, "capability not granted",
		).WithDetail("capability", call.Kind.String()))
		return nil, fmt.Errorf("%s: %w", call.Kind, ErrPermissionDenied)
	}

	if d := p.limiter.TryAcquire(call.PluginID, call.Kind.RiskClass()); !d.Allowed {
		p.sink.Record(audit.NewEvent(
			audit.EventRateLimitExceeded, audit.SeverityMedium, proxySource,
			call.PluginID, "capability call rate limit exceeded",
		).WithDetail("capability", call.Kind.String()).
			WithDetail("retry_after", d.RetryAfter.String()))
		return nil, fmt.Errorf("%s: %w", call.Kind, ErrRateLimited)
	}

	// No proxy or limiter lock is held past this point: a slow handler
	// must not serialize other plugins' traffic.
	result, err := handler.Invoke(ctx, call)
	if err != nil {
		// Cancelled or timed-out attempts are audited too, and the
		// admission slot they consumed is not refunded.
		msg := "capability call failed"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msg = "capability call cancelled"
		}
		p.sink.Record(audit.NewEvent(
			audit.EventCapabilityFailure, failureSeverity(call.Kind), proxySource,
			call.PluginID, msg,
		).WithDetail("capability", call.Kind.String()).
			WithDetail("op", call.Op).
			WithFailure(err))
		return nil, &CapabilityError{Kind: call.Kind, Err: err}
	}

	// Successful calls are audited only for critical-risk capabilities,
	// to bound log volume.
	if call.Kind.RiskClass() == ClassCritical {
		p.sink.Record(audit.NewEvent(
			audit.EventCapabilityCall, audit.SeverityLow, proxySource,
			call.PluginID, "capability call completed",
		).WithDetail("capability", call.Kind.String()).
			WithDetail("op", call.Op))
	}

	return result, nil
}

// failureSeverity maps a capability's risk class to the severity of its
// failure events.
func failureSeverity(k Kind) audit.Severity {
	switch k.RiskClass() {
	case ClassRead:
		return audit.SeverityLow
	case ClassWrite:
		return audit.SeverityMedium
	default:
		return audit.SeverityHigh
	}
}
