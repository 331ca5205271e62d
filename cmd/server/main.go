// Server runs the asset/access dashboard HTTP API.
// Set DATABASE_URL; HTTP_ADDR, KAFKA_BROKERS, and OTLP_ENDPOINT are optional.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accessrepo "itam-control-plane/internal/access/repository"
	anomalyrepo "itam-control-plane/internal/anomaly/repository"
	anomalyservice "itam-control-plane/internal/anomaly/service"
	assetrepo "itam-control-plane/internal/asset/repository"
	"itam-control-plane/internal/audit"
	auditrepo "itam-control-plane/internal/audit/repository"
	checklistservice "itam-control-plane/internal/checklist/service"
	"itam-control-plane/internal/config"
	"itam-control-plane/internal/db"
	departmentrepo "itam-control-plane/internal/department/repository"
	departmentservice "itam-control-plane/internal/department/service"
	eventlogrepo "itam-control-plane/internal/eventlog/repository"
	offboardingrepo "itam-control-plane/internal/offboarding/repository"
	"itam-control-plane/internal/platform/retry"
	"itam-control-plane/internal/server"
	"itam-control-plane/internal/telemetry"
	"itam-control-plane/internal/telemetry/otel"
	"itam-control-plane/internal/telemetry/producer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if cfg.Env != "production" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "itam-server", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = providers.Shutdown(shutdownCtx)
	}()

	kafkaProducer, err := producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	var emitter telemetry.EventEmitter
	if kafkaProducer != nil {
		emitter = kafkaProducer
		log.Printf("telemetry: emitting to Kafka topic %s", cfg.TelemetryKafkaTopic)
	} else if cfg.OTLPEndpoint != "" {
		emitter = otel.NewEventEmitter(providers.LoggerProvider)
		log.Printf("telemetry: emitting as OTel log records to %s", cfg.OTLPEndpoint)
	}

	retryPolicy := retry.Policy{
		MaxAttempts: cfg.StoreRetryAttempts,
		BaseDelay:   cfg.RetryBaseDelay(),
	}
	auditRepo := auditrepo.NewPostgresRepository(database)
	auditLogger := audit.NewLogger(auditRepo)

	checklistSvc := checklistservice.New(
		offboardingrepo.NewPostgresRepository(database),
		eventlogrepo.NewPostgresRepository(database),
		assetrepo.NewPostgresRepository(database),
		accessrepo.NewPostgresRepository(database),
		retryPolicy,
		auditLogger,
		emitter,
	)
	departmentSvc := departmentservice.New(departmentrepo.NewPostgresRepository(database), retryPolicy, emitter)
	anomalySvc := anomalyservice.New(anomalyrepo.NewPostgresRepository(database), retryPolicy)

	router := server.NewRouter(server.Deps{
		Logger:     logger,
		Checklist:  checklistSvc,
		Department: departmentSvc,
		Anomaly:    anomalySvc,
		AuditRepo:  auditRepo,
		Pinger:     database,
		Emitter:    emitter,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	if kafkaProducer != nil {
		// Let in-flight async emits finish before closing the producer.
		time.Sleep(telemetry.ShutdownDrainDuration)
		_ = kafkaProducer.Close()
	}
	log.Println("HTTP server stopped")
}
