package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/naturedex/naturedex-server/internal/handlers"
	appjwt "github.com/naturedex/naturedex-server/internal/jwt"
	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/middlewares"
	"github.com/naturedex/naturedex-server/internal/migrations"
	"github.com/naturedex/naturedex-server/internal/repositories"
	"github.com/naturedex/naturedex-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/naturedex/naturedex-server/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title naturedex-server API
// @version 1.0.0
// @description Backend for user accounts, JWT auth and nature discovery achievements
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, summaryCacheTTL,
		kafkaHost, kafkaPort, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, summaryCacheTTL,
		kafkaHost, kafkaPort, kafkaTopic,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
// Empty Redis and Kafka hosts disable the respective integrations.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	summaryCacheTTLSecond int,
	kafkaHost, kafkaPort, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "naturedex")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (optional summary cache)
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if summaryCacheTTLSecond, err = strconv.Atoi(getEnv("SUMMARY_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config (optional event publishing)
	kafkaHost = getEnv("KAFKA_HOST", "")
	kafkaPort = getEnv("KAFKA_PORT", "9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "naturedex-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, optional Redis and Kafka clients,
// and the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	summaryCacheTTLSecond int,
	kafkaHost, kafkaPort, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := migrations.Up(db); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis when configured
	var summaryCache services.SummaryCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		summaryCache = repositories.NewSummaryCacheRepository(rdb, time.Duration(summaryCacheTTLSecond)*time.Second)
	}

	// Connect to Kafka when configured
	var kafkaWriter services.KafkaWriter
	if kafkaHost != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(fmt.Sprintf("%s:%s", kafkaHost, kafkaPort)),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	tokener := appjwt.New(
		appjwt.WithSecretKey(jwtSecretKey),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	discoveryReadRepo := repositories.NewDiscoveryReadRepository(db)
	discoveryWriteRepo := repositories.NewDiscoveryWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	usageService := services.NewUsageService(userReadRepo, userWriteRepo, kafkaWriter)
	discoveryService := services.NewDiscoveryService(discoveryWriteRepo, discoveryReadRepo, summaryCache, kafkaWriter)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	currentUserHandler := handlers.NewCurrentUserHandler()
	usersHandler := handlers.NewUsersHandler(authService)
	adminDashboardHandler := handlers.NewAdminDashboardHandler()
	addUsageHandler := handlers.NewAddUsageHandler(usageService)
	getUsageHandler := handlers.NewGetUsageHandler(usageService)
	addDiscoveryHandler := handlers.NewAddDiscoveryHandler(discoveryService)
	naturedexHandler := handlers.NewNaturedexHandler(discoveryService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	txMiddleware := middlewares.TxMiddleware(db)
	authenticator := middlewares.Authenticator(tokener)

	// Public routes
	r.Get("/", handlers.NewHealthHandler())
	r.With(txMiddleware).Post("/api/auth/signup", signupHandler)
	r.Post("/api/auth/login", loginHandler)
	r.With(txMiddleware).Post("/api/auth/add", addUsageHandler)
	r.Get("/api/auth/get", getUsageHandler)
	r.With(txMiddleware).Post("/api/ai/item", addDiscoveryHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/api/auth/current-user", currentUserHandler)
		r.Get("/api/ai/naturedex", naturedexHandler)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(middlewares.RequireAdmin)
		r.Get("/api/auth/users", usersHandler)
		r.Get("/api/auth/admin-dashboard", adminDashboardHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
