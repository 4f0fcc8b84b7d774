package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	wardenv1 "github.com/connectias/warden/gen/warden/v1"
	"github.com/connectias/warden/internal/audit"
	"github.com/connectias/warden/internal/gate"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceSource = "security_log_service"

// submissionSchema bounds what external callers may put in the detail map.
// Oversized or non-string payloads are rejected before they reach the sink.
const submissionSchema = `{
	"type": "object",
	"maxProperties": 32,
	"propertyNames": {"maxLength": 64},
	"additionalProperties": {"type": "string", "maxLength": 1024}
}`

// SecurityLogServer implements the SecurityLogService gRPC service.
//
// SubmitEvent is grant-checked; every other method verifies the calling
// process against the trusted allow-list. Checks run per method — nothing
// is remembered between calls on the same connection.
type SecurityLogServer struct {
	wardenv1.UnimplementedSecurityLogServiceServer
	grants    gate.GrantAuthenticator
	procs     *gate.ProcessVerifier
	sink      *audit.Sink
	schema    *jsonschema.Schema
	logger    *zap.Logger
	ingestion atomic.Bool
}

// NewSecurityLogServer creates a SecurityLogServer with the given dependencies.
func NewSecurityLogServer(
	grants gate.GrantAuthenticator,
	procs *gate.ProcessVerifier,
	sink *audit.Sink,
	logger *zap.Logger,
) (*SecurityLogServer, error) {
	var schemaObj any
	if err := json.Unmarshal([]byte(submissionSchema), &schemaObj); err != nil {
		return nil, fmt.Errorf("NewSecurityLogServer: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("submission.json", schemaObj); err != nil {
		return nil, fmt.Errorf("NewSecurityLogServer: %w", err)
	}
	schema, err := c.Compile("submission.json")
	if err != nil {
		return nil, fmt.Errorf("NewSecurityLogServer: %w", err)
	}

	s := &SecurityLogServer{
		grants: grants,
		procs:  procs,
		sink:   sink,
		schema: schema,
		logger: logger,
	}
	s.ingestion.Store(true)
	return s, nil
}

// SubmitEvent implements the submission method family. Callers need a
// capability grant; failures are audited and rejected with a minimal,
// uniform error that leaks nothing about why.
func (s *SecurityLogServer) SubmitEvent(ctx context.Context, req *wardenv1.SubmitEventRequest) (*wardenv1.SubmitEventResponse, error) {
	grant, err := s.grants.Authenticate(ctx)
	if err != nil {
		s.sink.Record(audit.NewEvent(
			audit.EventPermissionDenied, audit.SeverityMedium, serviceSource,
			req.PluginId, "event submission rejected",
		).WithDetail("method", "SubmitEvent"))
		return nil, status.Error(codes.PermissionDenied, "permission denied")
	}

	if !s.ingestion.Load() {
		return &wardenv1.SubmitEventResponse{Accepted: false}, nil
	}

	if req.EventType == "" || len(req.EventType) > 64 {
		return nil, status.Error(codes.InvalidArgument, "invalid event_type")
	}
	if err := s.validateDetail(req.Detail); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid detail payload")
	}

	sev := severityFromProto(req.Severity)
	if sev == 0 {
		sev = audit.SeverityLow
	}

	// The audited plugin identity comes from the grant, not the request
	// body: a caller cannot submit events under another plugin's name.
	event := audit.NewEvent(
		audit.EventSubmission,
		sev,
		req.Source,
		grant.PluginID,
		req.Message,
	)
	event.Type = audit.EventType(req.EventType)
	for k, v := range req.Detail {
		event.WithDetail(k, v)
	}

	s.sink.Record(event)

	return &wardenv1.SubmitEventResponse{
		EventId:  event.ID,
		Accepted: true,
	}, nil
}

// SetIngestion enables or disables submission intake. Control family.
func (s *SecurityLogServer) SetIngestion(ctx context.Context, req *wardenv1.SetIngestionRequest) (*wardenv1.SetIngestionResponse, error) {
	identity, err := s.verifyControl(ctx, "SetIngestion")
	if err != nil {
		return nil, err
	}

	s.ingestion.Store(req.Enabled)
	s.sink.Record(audit.NewEvent(
		audit.EventControlAction, audit.SeverityLow, serviceSource,
		"", fmt.Sprintf("ingestion set to %t", req.Enabled),
	).WithDetail("identity", identity))

	return &wardenv1.SetIngestionResponse{Enabled: req.Enabled}, nil
}

// ListEvents returns recent events, newest first. Control family.
func (s *SecurityLogServer) ListEvents(ctx context.Context, req *wardenv1.ListEventsRequest) (*wardenv1.ListEventsResponse, error) {
	if _, err := s.verifyControl(ctx, "ListEvents"); err != nil {
		return nil, err
	}

	limit := int(req.Limit)
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	events, err := s.sink.Recent(ctx, audit.Query{
		PluginID:    req.PluginId,
		MinSeverity: severityFromProto(req.MinSeverity),
		Limit:       limit,
	})
	if err != nil {
		s.logger.Error("audit read failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "audit read failed")
	}

	records := make([]*wardenv1.SecurityEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, &wardenv1.SecurityEventRecord{
			EventId:     e.ID,
			PluginId:    e.PluginID,
			EventType:   string(e.Type),
			Severity:    severityToProto(e.Severity),
			Source:      e.Source,
			Message:     e.Message,
			Detail:      e.Detail,
			TimestampMs: e.Timestamp.UnixMilli(),
		})
	}
	return &wardenv1.ListEventsResponse{Events: records}, nil
}

// ClearEvents deletes every stored event. Control family.
func (s *SecurityLogServer) ClearEvents(ctx context.Context, _ *wardenv1.ClearEventsRequest) (*wardenv1.ClearEventsResponse, error) {
	identity, err := s.verifyControl(ctx, "ClearEvents")
	if err != nil {
		return nil, err
	}

	deleted, err := s.sink.Clear(ctx)
	if err != nil {
		s.logger.Error("audit clear failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "audit clear failed")
	}

	s.sink.Record(audit.NewEvent(
		audit.EventControlAction, audit.SeverityHigh, serviceSource,
		"", "security log cleared",
	).WithDetail("identity", identity).
		WithDetail("deleted", fmt.Sprintf("%d", deleted)))

	return &wardenv1.ClearEventsResponse{Deleted: deleted}, nil
}

// PurgeEvents is the explicit retention sweep. Control family.
func (s *SecurityLogServer) PurgeEvents(ctx context.Context, req *wardenv1.PurgeEventsRequest) (*wardenv1.PurgeEventsResponse, error) {
	identity, err := s.verifyControl(ctx, "PurgeEvents")
	if err != nil {
		return nil, err
	}

	cutoff := time.UnixMilli(req.OlderThanMs).UTC()
	deleted, err := s.sink.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("audit purge failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "audit purge failed")
	}

	s.sink.Record(audit.NewEvent(
		audit.EventControlAction, audit.SeverityLow, serviceSource,
		"", "security log retention sweep",
	).WithDetail("identity", identity).
		WithDetail("cutoff", cutoff.Format(time.RFC3339)).
		WithDetail("deleted", fmt.Sprintf("%d", deleted)))

	return &wardenv1.PurgeEventsResponse{Deleted: deleted}, nil
}

// verifyControl runs the main-process identity check for a control-family
// method. A mismatch is a HIGH-severity security event and a hard
// rejection.
func (s *SecurityLogServer) verifyControl(ctx context.Context, method string) (string, error) {
	identity, err := s.procs.Verify(ctx)
	if err != nil {
		s.sink.Record(audit.NewEvent(
			audit.EventPermissionDenied, audit.SeverityHigh, serviceSource,
			"", "control method called by untrusted identity",
		).WithDetail("method", method))
		return "", status.Error(codes.PermissionDenied, "permission denied")
	}
	return identity, nil
}

func (s *SecurityLogServer) validateDetail(detail map[string]string) error {
	if len(detail) == 0 {
		return nil
	}
	obj := make(map[string]any, len(detail))
	for k, v := range detail {
		obj[k] = v
	}
	return s.schema.Validate(obj)
}

func severityFromProto(s wardenv1.Severity) audit.Severity {
	switch s {
	case wardenv1.Severity_SEVERITY_MEDIUM:
		return audit.SeverityMedium
	case wardenv1.Severity_SEVERITY_HIGH:
		return audit.SeverityHigh
	case wardenv1.Severity_SEVERITY_CRITICAL:
		return audit.SeverityCritical
	case wardenv1.Severity_SEVERITY_LOW:
		return audit.SeverityLow
	default:
		return 0
	}
}

func severityToProto(s audit.Severity) wardenv1.Severity {
	switch s {
	case audit.SeverityLow:
		return wardenv1.Severity_SEVERITY_LOW
	case audit.SeverityMedium:
		return wardenv1.Severity_SEVERITY_MEDIUM
	case audit.SeverityHigh:
		return wardenv1.Severity_SEVERITY_HIGH
	case audit.SeverityCritical:
		return wardenv1.Severity_SEVERITY_CRITICAL
	default:
		return wardenv1.Severity_SEVERITY_UNSPECIFIED
	}
}
