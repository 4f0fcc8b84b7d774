package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	wardenv1 "github.com/connectias/warden/gen/warden/v1"
	"github.com/connectias/warden/internal/audit"
	"github.com/connectias/warden/internal/capability"
	"github.com/connectias/warden/internal/capability/handlers"
	"github.com/connectias/warden/internal/config"
	"github.com/connectias/warden/internal/gate"
	"github.com/connectias/warden/internal/host"
	"github.com/connectias/warden/internal/server"
	"github.com/connectias/warden/internal/storage"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Logger
	logger := mustBuildLogger(envOrDefault("WARDEN_LOG_LEVEL", "info"))
	defer logger.Sync() //nolint:errcheck // best-effort flush

	// Config from env
	port := envOrDefault("WARDEN_PORT", "50061")
	rateConfigPath := os.Getenv("WARDEN_RATE_CONFIG")
	clickhouseDSN := os.Getenv("CLICKHOUSE_DSN")
	postgresDSN := os.Getenv("POSTGRES_DSN")
	grantCacheTTL := envOrDefaultInt("WARDEN_GRANT_CACHE_TTL_S", 30)
	trustedProcs := os.Getenv("WARDEN_TRUSTED_PROCESSES")

	// Rate-class windows from file if provided, built-in defaults otherwise
	rateCfg := config.DefaultRateConfig()
	if rateConfigPath != "" {
		loaded, err := config.LoadRateConfig(rateConfigPath)
		if err != nil {
			logger.Fatal("rate config load failed",
				zap.String("path", rateConfigPath),
				zap.Error(err),
			)
		}
		rateCfg = loaded
		logger.Info("rate config loaded", zap.String("path", rateConfigPath))
	}

	logger.Info("starting warden server",
		zap.String("port", port),
		zap.Int("rate_classes", len(rateCfg.PerClass)),
	)

	// Postgres — durable audit log and KV storage backend when configured
	var db *sql.DB
	var logStore audit.LogStore
	if postgresDSN != "" {
		var err error
		db, err = sql.Open("pgx", postgresDSN)
		if err != nil {
			logger.Fatal("failed to open postgres", zap.Error(err))
		}
		defer func() { _ = db.Close() }()
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(context.Background()); err != nil {
			logger.Fatal("failed to ping postgres", zap.Error(err))
		}
		logStore = storage.NewPostgresLogStore(db)
		logger.Info("postgres log store connected")
	} else {
		logStore = audit.NewMemoryLogStore()
		logger.Info("no POSTGRES_DSN set, using in-memory log store")
	}

	// ClickHouse analytics mirror is optional and non-fatal
	var analytics audit.AnalyticsStore
	if clickhouseDSN != "" {
		ch, err := storage.NewClickHouseAnalytics(clickhouseDSN, logger)
		if err != nil {
			logger.Warn("clickhouse connection failed, analytics disabled",
				zap.Error(err),
			)
		} else {
			analytics = ch
			defer ch.Close()
			logger.Info("clickhouse analytics connected")
		}
	}

	sink := audit.NewSink(logStore, analytics, logger)
	defer sink.Close()

	// Capability handlers; KV storage needs postgres, skipped without it
	capHandlers := []capability.Handler{
		handlers.NewLogHandler(logger),
		handlers.NewSysInfoHandler(),
	}
	if db != nil {
		capHandlers = append(capHandlers, handlers.NewKVHandler(db))
	} else {
		logger.Info("no POSTGRES_DSN set, storage capability unavailable")
	}

	hostCtx := host.NewContext(host.Config{
		RateConfig: rateCfg,
		Handlers:   capHandlers,
		Sink:       sink,
		Logger:     logger,
	})
	defer hostCtx.Close()

	// Grant gate — Postgres if DSN provided, otherwise static (dev only)
	var grants gate.GrantAuthenticator
	if db != nil {
		grants = gate.NewPostgresGrantAuthenticator(gate.PostgresGrantConfig{
			DB:       db,
			CacheTTL: time.Duration(grantCacheTTL) * time.Second,
			Logger:   logger,
		})
		logger.Info("postgres grant authenticator connected")
	} else {
		grants = gate.NewStaticGrantAuthenticator()
		logger.Warn("using static grant authenticator (no POSTGRES_DSN)")
	}

	procs := gate.NewProcessVerifier(parseTrustedProcesses(trustedProcs, logger))

	// gRPC server
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     5 * time.Minute,
			MaxConnectionAge:      30 * time.Minute,
			MaxConnectionAgeGrace: 10 * time.Second,
			Time:                  30 * time.Second,
			Timeout:               5 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             10 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.MaxRecvMsgSize(4*1024*1024),
		grpc.MaxSendMsgSize(4*1024*1024),
	)

	logServer, err := server.NewSecurityLogServer(grants, procs, sink, logger)
	if err != nil {
		logger.Fatal("failed to build log server", zap.Error(err))
	}
	wardenv1.RegisterSecurityLogServiceServer(grpcServer, logServer)

	// Health service for container health checks
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("warden.v1.SecurityLogService", healthpb.HealthCheckResponse_SERVING)

	// Enable reflection for debugging with grpcurl
	reflection.Register(grpcServer)

	// Listen
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		healthServer.SetServingStatus("warden.v1.SecurityLogService", healthpb.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
		sink.Flush()
	}()

	logger.Info("warden server listening", zap.String("addr", lis.Addr().String()))
	if err := grpcServer.Serve(lis); err != nil {
		logger.Fatal("grpc server failed", zap.Error(err))
	}
}

// parseTrustedProcesses parses "identity=bcrypt-hash" pairs separated by
// commas into the control-method allow-list.
func parseTrustedProcesses(raw string, logger *zap.Logger) map[string]string {
	allowed := make(map[string]string)
	if raw == "" {
		logger.Warn("WARDEN_TRUSTED_PROCESSES empty, control methods will reject all callers")
		return allowed
	}
	for _, pair := range strings.Split(raw, ",") {
		identity, hash, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || identity == "" || hash == "" {
			logger.Warn("skipping malformed trusted process entry")
			continue
		}
		allowed[identity] = hash
	}
	logger.Info("trusted process allow-list loaded", zap.Int("entries", len(allowed)))
	return allowed
}

func mustBuildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return logger
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
