package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "shgportal/docs"
	"shgportal/internal/config"
	"shgportal/internal/email/noop"
	"shgportal/internal/email/ses"
	"shgportal/internal/handler"
	"shgportal/internal/logger"
	"shgportal/internal/port"
	"shgportal/internal/repository/postgres"
	"shgportal/internal/router"
	"shgportal/internal/service"
	s3storage "shgportal/internal/storage/s3"
)

// @title SHG Portal API
// @version 1.0
// @description Administration API for self-help groups: location hierarchy, organizations, products, dashboards and reports.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	orgRepo := postgres.NewOrganizationRepo(db)
	productRepo := postgres.NewProductRepo(db)

	tree, err := service.LoadLocationTree(ctx, cfg.Location, postgres.NewLocationRepo(db))
	if err != nil {
		return fmt.Errorf("failed to load location tree: %w", err)
	}
	zl.Info("location tree loaded",
		zap.String("source", cfg.Location.Source),
		zap.Int("districts", len(tree.Districts())),
	)

	// Initialize storage. Publishing is disabled when S3 is unreachable at startup.
	var store port.ObjectStorage
	if cfg.S3.Bucket != "" {
		store, err = s3storage.NewReportStore(ctx, &cfg.S3)
		if err != nil {
			zl.Warn("report publishing disabled", zap.Error(err))
			store = nil
		}
	}

	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(ctx, cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender(zl)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	navSvc := service.NewNavigatorService(tree)
	userSvc := service.NewUserService(userRepo, navSvc)
	orgSvc := service.NewOrganizationService(orgRepo)
	productSvc := service.NewProductService(productRepo, orgRepo)
	locSvc := service.NewLocationService(tree)
	dashboardSvc := service.NewDashboardService(tree, orgRepo)
	reportSvc := service.NewReportService(tree, dashboardSvc, store, sender, cfg.S3, zl)

	r := router.Setup(authSvc, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		User:         handler.NewUserHandler(userSvc),
		Organization: handler.NewOrganizationHandler(orgSvc),
		Product:      handler.NewProductHandler(productSvc),
		Navigator:    handler.NewNavigatorHandler(navSvc),
		Location:     handler.NewLocationHandler(locSvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Report:       handler.NewReportHandler(reportSvc),
		Health:       handler.NewHealthHandler(db),
	}, zl, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
