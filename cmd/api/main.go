package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/repository/sqlite"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/imaging"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/storage"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Content, navigation, contact form and visit analytics for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pingers := map[string]usecase.Pinger{}

	// 3. Setup Visit Storage (optional)
	var visitRepo domain.VisitRepository
	switch {
	case cfg.DBUrl != "":
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		if err := postgres.EnsureVisitSchema(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to prepare database", "error", err)
			os.Exit(1)
		}
		visitRepo = postgres.NewVisitRepository(dbPool)
		pingers["database"] = dbPool.Ping
	case cfg.SQLitePath != "":
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			logger.Log.Error("Failed to open sqlite database", "error", err, "path", cfg.SQLitePath)
			os.Exit(1)
		}
		defer db.Close()
		if err := sqlite.EnsureVisitSchema(ctx, db); err != nil {
			logger.Log.Error("Failed to prepare database", "error", err)
			os.Exit(1)
		}
		visitRepo = sqlite.NewVisitRepository(db)
		pingers["database"] = db.PingContext
	default:
		pingers["database"] = nil
	}

	// 4. Setup Redis (optional, rate limiting)
	rateLimiter := middleware.NewRateLimiter(nil)
	pingers["redis"] = nil
	if cfg.UpstashRedisURL != "" {
		client, err := redis.NewClient(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting stays in memory", "error", err)
		} else {
			defer client.Close()
			rateLimiter = middleware.NewRateLimiter(client)
			pingers["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		}
	}

	// 5. Setup Assets
	var assets storage.Source = storage.NewLocal("")
	pingers["assets"] = nil
	if cfg.AssetsBucket != "" {
		client, err := storage.NewS3Client(ctx, storage.S3Config{
			Provider:        storage.S3Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.AssetsBucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to create S3 client", "error", err)
			os.Exit(1)
		}
		bucket := storage.NewS3(client, cfg.AssetsBucket)
		assets = bucket
		pingers["assets"] = bucket.Ping
	}

	// 6. Setup Email Service
	var mailer email.Mailer
	emailService := email.NewEmailService(cfg)
	if emailService.IsConfigured() {
		mailer = emailService
	} else {
		logger.Log.Warn("Email service not fully configured - contact messages will only be logged")
		mailer = email.NewLogMailer(logger.Log)
	}

	// 7. Setup UseCases
	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		logger.Log.Error("Failed to load content", "error", err, "path", cfg.ContentPath)
		os.Exit(1)
	}
	contactUC := usecase.NewContactUsecase(mailer, cfg.ContactEmailTo, logger.Log)
	contentUC := usecase.NewContentUsecase(portfolio, cfg.SiteURL)
	navigationUC := usecase.NewNavigationUsecase(cfg.Sections)
	analyticsUC := usecase.NewAnalyticsUsecase(visitRepo, cfg.VisitHashSalt)
	healthUC := usecase.NewHealthUsecase(pingers)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    contactUC,
		ContentUC:    contentUC,
		NavigationUC: navigationUC,
		AnalyticsUC:  analyticsUC,
		HealthUC:     healthUC,
		RateLimiter:  rateLimiter,
		Assets:       assets,
		ProfileImage: imaging.NewResizer(assets, cfg.ProfileImagePath),
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rateLimiter.Cleanup(gctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
	}

	logger.Log.Info("Server exiting")
}
