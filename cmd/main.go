package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-veritas/docs"
	"github.com/sbilibin2017/gw-veritas/internal/config"
	"github.com/sbilibin2017/gw-veritas/internal/handlers"
	"github.com/sbilibin2017/gw-veritas/internal/jwt"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/middlewares"
	"github.com/sbilibin2017/gw-veritas/internal/migrations"
	"github.com/sbilibin2017/gw-veritas/internal/repositories"
	"github.com/sbilibin2017/gw-veritas/internal/services"
	"github.com/sbilibin2017/gw-veritas/internal/tx"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-veritas API
// @version 1.0.0
// @description Contribution submission and moderation service
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It applies migrations, sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unavailable, asset catalog served from database", "error", err)
	}

	// Kafka is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("publishing decision events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           newRouter(cfg, db, rdb, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP router.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)
	txManager := tx.New(db, cfg.LockTimeout)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, tx.FromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, tx.FromContext)
	contributionReadRepo := repositories.NewContributionReadRepository(db, tx.FromContext)
	contributionWriteRepo := repositories.NewContributionWriteRepository(db, tx.FromContext)
	logReadRepo := repositories.NewVerificationLogReadRepository(db, tx.FromContext)
	logWriteRepo := repositories.NewVerificationLogWriteRepository(db, tx.FromContext)
	assetCache := repositories.NewAssetCacheRepository(rdb, cfg.AssetCacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	submissionService := services.NewSubmissionService(
		txManager, userReadRepo, contributionWriteRepo, contributionReadRepo, cfg.MaxPendingPerUser,
	)
	verificationService := services.NewVerificationService(
		txManager, userReadRepo, contributionWriteRepo, contributionReadRepo,
		logWriteRepo, logReadRepo, assetCache, kafkaWriter,
	)
	catalogService := services.NewCatalogService(userReadRepo, contributionReadRepo, assetCache)
	uploadService := services.NewUploadService(cfg.UploadBaseURL, cfg.UploadExpiry)

	pages := handlers.PageConfig{DefaultLimit: cfg.DefaultPageSize, MaxLimit: cfg.MaxPageSize}
	authMiddleware := middlewares.AuthMiddleware(tokens, authService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/assets", handlers.NewAssetsHandler(catalogService, pages))

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/submissions", handlers.NewSubmitHandler(submissionService))
			r.Get("/submissions/mine", handlers.NewMySubmissionsHandler(submissionService, pages))
			r.Get("/submissions/{id}", handlers.NewGetSubmissionHandler(submissionService))
			r.Post("/assets/presign", handlers.NewPresignHandler(uploadService))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middlewares.AdminOnly)
			r.Get("/pending", handlers.NewPendingHandler(catalogService, pages))
			r.Post("/verify/{id}", handlers.NewVerifyHandler(verificationService))
			r.Get("/contributions/{id}/logs", handlers.NewVerificationLogsHandler(verificationService))
		})
	})

	docs.SwaggerInfo.Host = cfg.HTTPAddr()
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr())),
	))

	return r
}
