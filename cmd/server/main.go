package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"braik-api/internal/assistant"
	"braik-api/internal/audit"
	"braik-api/internal/authz"
	"braik-api/internal/cache"
	"braik-api/internal/clock"
	"braik-api/internal/config"
	"braik-api/internal/database"
	"braik-api/internal/handler"
	"braik-api/internal/logger"
	"braik-api/internal/metrics"
	"braik-api/internal/queue"
	"braik-api/internal/repository"
	"braik-api/internal/router"
	"braik-api/internal/service"
	"braik-api/internal/storage"
	"braik-api/internal/validator"
	"braik-api/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Braik API
// @version         1.0
// @description     Team management API for coaches, players and parents.

// @contact.name    API Support
// @contact.email   support@braik.io

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	validator.RegisterCustomValidators()
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Database
	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		return err
	}
	defer mongoDB.Close()

	if err := repository.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		return err
	}

	// Redis Cache
	redisCache, err := cache.NewRedis(ctx, cfg.RedisURI)
	if err != nil {
		return err
	}
	defer func() { _ = redisCache.Close() }()

	// S3 Storage
	s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
	})
	if err != nil {
		return err
	}
	if err := s3Client.EnsureBucket(ctx); err != nil {
		log.Warn("document bucket unavailable", zap.Error(err))
	}

	clk := clock.Real{}
	m := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	db := mongoDB.Database
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMembershipRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	usageRepo := repository.NewAIUsageRepository(db)
	proposalRepo := repository.NewAIProposalRepository(db)
	impersonationRepo := repository.NewImpersonationRepository(db)
	configRepo := repository.NewSystemConfigRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Audit queue and processor
	auditQueue := queue.NewMemoryQueue(cfg.AuditQueueSize)
	auditProcessor := queue.NewProcessor(auditQueue, auditRepo, m, log, cfg.AuditWorkers)
	auditLog := audit.NewQueueLogger(auditQueue, clk, m, log)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(memberRepo)
	guard := authz.NewTeamOperationGuard(teamRepo, m)

	// Service layer
	userService := service.NewUserService(userRepo, redisCache, cfg.UserCacheTTL)
	authService := service.NewAuthService(userRepo, userService, jwtManager)
	teamService := service.NewTeamService(teamRepo, memberRepo, invitationRepo, auditLog, clk)
	membershipService := service.NewMembershipService(memberRepo, userRepo, auditLog, clk)
	invitationService := service.NewInvitationService(invitationRepo, memberRepo, teamRepo, userRepo, auditLog, clk)
	announcementService := service.NewAnnouncementService(announcementRepo, auditLog, clk)
	documentService := service.NewDocumentService(documentRepo, s3Client, auditLog, clk, cfg.DocumentURLExpiry, log)
	billingService := service.NewBillingService(teamRepo, auditLog)
	usageService := service.NewAIUsageService(usageRepo, teamRepo, configRepo, cfg.AIDefaultCredits, clk, m, log)

	provider := assistant.NewStubProvider()
	provider.SimulatedDelay = cfg.AssistantDelay
	executors := map[string]service.ProposalExecutor{
		service.ActionPostAnnouncement: service.NewPostAnnouncementExecutor(announcementService),
	}
	assistantService := service.NewAssistantService(provider, usageService, proposalRepo, executors, auditLog, clk, log)

	impersonationService := service.NewImpersonationService(impersonationRepo, userRepo, auth.NewSupportTokenGenerator(), auditLog, clk, m)
	adminService := service.NewAdminService(teamRepo, auditLog)
	configService := service.NewSystemConfigService(configRepo, auditLog, clk)
	auditLogService := service.NewAuditLogService(auditRepo)

	// Handler layer
	secure := cfg.IsProduction()
	r := router.Setup(&router.Config{
		AuthHandler:          handler.NewAuthHandler(authService, secure),
		UserHandler:          handler.NewUserHandler(userService, secure),
		TeamHandler:          handler.NewTeamHandler(teamService),
		TeamMemberHandler:    handler.NewTeamMemberHandler(membershipService),
		InvitationHandler:    handler.NewTeamInvitationHandler(invitationService),
		AnnouncementHandler:  handler.NewAnnouncementHandler(announcementService),
		DocumentHandler:      handler.NewDocumentHandler(documentService),
		BillingHandler:       handler.NewBillingHandler(billingService, teamService),
		AIHandler:            handler.NewAIHandler(assistantService, usageService, teamService),
		AdminHandler:         handler.NewAdminHandler(adminService),
		ImpersonationHandler: handler.NewImpersonationHandler(impersonationService, secure),
		SystemConfigHandler:  handler.NewSystemConfigHandler(configService),
		AuditLogHandler:      handler.NewAuditLogHandler(auditLogService),

		Sessions:       authService,
		Impersonations: impersonationService,
		Users:          userService,
		Authorizer:     authorizer,
		Guard:          guard,

		HealthChecks: map[string]router.Pinger{
			"mongodb": mongoDB,
			"redis":   redisCache,
		},
		Metrics:            m,
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SecureCookies:      secure,
	})

	// The processor context outlives the HTTP server so buffered rows drain.
	processorCtx, cancelProcessor := context.WithCancel(context.Background())
	defer cancelProcessor()
	auditProcessor.Start(processorCtx)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first so no new audit rows arrive
	log.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", zap.Error(err))
	}

	// Stop closes the queue and waits for workers to drain it
	log.Info("draining audit queue", zap.Int("pending", auditQueue.Len()))
	auditProcessor.Stop()
	cancelProcessor()

	log.Info("server shutdown complete")
	return nil
}
