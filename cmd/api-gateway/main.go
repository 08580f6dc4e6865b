package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/noah-isme/acadledger-api/api/swagger"
	"github.com/noah-isme/acadledger-api/internal/events"
	"github.com/noah-isme/acadledger-api/internal/handler"
	"github.com/noah-isme/acadledger-api/internal/ledger"
	"github.com/noah-isme/acadledger-api/internal/models"
	"github.com/noah-isme/acadledger-api/internal/repository"
	"github.com/noah-isme/acadledger-api/internal/service"
	"github.com/noah-isme/acadledger-api/pkg/cache"
	"github.com/noah-isme/acadledger-api/pkg/config"
	"github.com/noah-isme/acadledger-api/pkg/database"
	"github.com/noah-isme/acadledger-api/pkg/export"
	"github.com/noah-isme/acadledger-api/pkg/logger"
)

// @title AcadLedger API
// @version 0.1.0
// @description Access-controlled academic record ledger
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	sinks := events.Multi{events.NewLogSink(logr)}

	if cfg.Events.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		pub := events.NewRedisPublisher(redisClient, events.RedisPublisherConfig{
			Channel: cfg.Events.Channel,
			Workers: cfg.Events.Workers,
			Logger:  logr,
		})
		pub.Start(context.Background())
		defer pub.Stop()
		sinks = append(sinks, pub)
	}

	ldgr, err := ledger.New(models.Identity(cfg.Ledger.Admin),
		ledger.WithSink(sinks),
		ledger.WithLogger(logr),
	)
	if err != nil {
		logr.Sugar().Fatalw("failed to init ledger", "error", err)
	}

	validate := validator.New()
	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		Secret:          cfg.Auth.Secret,
		Expiration:      cfg.Auth.Expiration,
		Issuer:          cfg.Auth.Issuer,
		BootstrapSecret: cfg.Auth.BootstrapSecret,
	})
	metricsSvc := service.NewMetricsService()
	transcriptSvc := service.NewTranscriptService(ldgr, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	var auditRepo *repository.AuditRepository
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		auditRepo = repository.NewAuditRepository(db)
	}

	deps := handler.RouterDeps{
		Config:  cfg,
		Logger:  logr,
		Auth:    authSvc,
		Metrics: metricsSvc,

		AuthHandler:       handler.NewAuthHandler(authSvc),
		TeacherHandler:    handler.NewTeacherHandler(ldgr, metricsSvc),
		StudentHandler:    handler.NewStudentHandler(ldgr, transcriptSvc, metricsSvc),
		CourseHandler:     handler.NewCourseHandler(ldgr, metricsSvc),
		EnrollmentHandler: handler.NewEnrollmentHandler(ldgr, metricsSvc),
		GradeHandler:      handler.NewGradeHandler(ldgr, metricsSvc),
		LedgerHandler:     handler.NewLedgerHandler(ldgr),
	}
	if auditRepo != nil {
		deps.Audit = auditRepo
		deps.AuditHandler = handler.NewAuditHandler(ldgr, auditRepo)
	}

	r := handler.NewRouter(deps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "admin", cfg.Ledger.Admin)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
