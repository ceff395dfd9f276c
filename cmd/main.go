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

	"github.com/ucrconnect/dashboard-api/internal/audit"
	"github.com/ucrconnect/dashboard-api/internal/handlers"
	"github.com/ucrconnect/dashboard-api/internal/identity"
	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/middlewares"
	"github.com/ucrconnect/dashboard-api/internal/repositories"
	"github.com/ucrconnect/dashboard-api/internal/services"
	"github.com/ucrconnect/dashboard-api/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title UCR Connect dashboard API
// @version 1.0.0
// @description Backend for the UCR Connect administrative dashboard
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// config holds all application configuration.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	availabilityTTL   time.Duration

	kafkaBrokers string
	kafkaTopic   string

	identityBaseURL string
	identityAPIKey  string

	cookieSecure        bool
	authGuardEnabled    bool
	availabilityFixture bool
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	ttlSeconds, convErr := strconv.Atoi(getEnv("AVAILABILITY_CACHE_TTL_SECOND", "30"))
	if convErr != nil {
		err = convErr
		return
	}
	cfg.availabilityTTL = time.Duration(ttlSeconds) * time.Second

	// Kafka config (empty brokers disables audit publishing)
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_AUDIT_TOPIC", "dashboard-audit")

	// Identity provider config
	cfg.identityBaseURL = getEnv("IDENTITY_BASE_URL", "")
	cfg.identityAPIKey = getEnv("IDENTITY_API_KEY", "")

	cfg.cookieSecure = getEnv("COOKIE_SECURE", "false") == "true"
	cfg.authGuardEnabled = getEnv("AUTH_GUARD_ENABLED", "false") == "true"
	cfg.availabilityFixture = getEnv("AVAILABILITY_FIXTURE", "false") == "true"

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka audit writer
	var kafkaWriter audit.KafkaWriter
	if cfg.kafkaBrokers != "" {
		kafkaWriter = &kafka.Writer{
			Addr:  kafka.TCP(cfg.kafkaBrokers),
			Topic: cfg.kafkaTopic,
		}
		defer kafkaWriter.Close()
	}
	auditPublisher := audit.NewPublisher(kafkaWriter)

	// Identity provider client
	provider := identity.New(cfg.identityBaseURL, cfg.identityAPIKey)

	// Session cookie handling
	sess := sessions.New(cfg.cookieSecure)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	availabilityCache := repositories.NewAvailabilityCacheRepository(rdb, cfg.availabilityTTL)
	statsRepo := repositories.NewStatsFixtureRepository()

	// Initialize services
	authService := services.NewAuthService(provider, userReadRepo, auditPublisher)
	registrationService := services.NewRegistrationService(provider, userWriteRepo, auditPublisher)
	statsService := services.NewStatsService(statsRepo)

	var availability handlers.EmailChecker
	if cfg.availabilityFixture {
		availability = services.NewStaticAvailability(services.DefaultTakenEmails, 300*time.Millisecond)
	} else {
		availability = services.NewAvailabilityService(userReadRepo, availabilityCache)
	}

	// Initialize handlers
	signInHandler := handlers.NewSignInHandler(authService, sess)
	loginHandler := handlers.NewLoginHandler(authService, sess)
	logoutHandler := handlers.NewLogoutHandler(authService, sess)
	checkEmailHandler := handlers.NewCheckEmailHandler(availability)
	registerHandler := handlers.NewRegisterHandler(registrationService)
	statsHandler := handlers.NewStatsHandler(statsService)
	chartsHandler := handlers.NewChartsHandler(statsService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public auth bridge
	r.Post("/api/admin/auth/signin", signInHandler)
	r.Post("/api/admin/auth/login", loginHandler)
	r.Post("/api/admin/auth/logout", logoutHandler)

	// Admin routes behind the cookie guard
	guard := middlewares.RouteGuard(sess, cfg.authGuardEnabled)
	r.Group(func(r chi.Router) {
		r.Use(guard)
		r.Get("/api/admin/users/check-email", checkEmailHandler)
		r.Post("/api/admin/users/register", registerHandler)
		r.Get("/api/admin/stats", statsHandler)
		r.Get("/api/admin/charts", chartsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
