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

	"github.com/sbilibin2017/finance-tracker/internal/handlers"
	"github.com/sbilibin2017/finance-tracker/internal/jwt"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/middlewares"
	"github.com/sbilibin2017/finance-tracker/internal/repositories"
	"github.com/sbilibin2017/finance-tracker/internal/services"
	"github.com/sbilibin2017/finance-tracker/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/finance-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title finance-tracker API
// @version 1.0.0
// @description Service for tracking personal expenses and monthly budgets
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
		storageDriver, storageFile,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		storageDriver, storageFile,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
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
// application, storage, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	storageDriver, storageFile string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
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

	// Storage config
	storageDriver = getEnv("STORAGE_DRIVER", "postgres")
	storageFile = getEnv("STORAGE_FILE", "finance.json")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config, tokens are valid for 7 days by default
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	storageDriver, storageFile string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize storage
	var (
		userReadRepo     services.UserReader
		userWriteRepo    services.UserWriter
		expenseReadRepo  services.ExpenseReader
		expenseWriteRepo services.ExpenseWriter
	)

	switch storageDriver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			logger.Log.Error("PostgreSQL connection error:", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Error("PostgreSQL ping failed:", err)
			return err
		}

		if err := storage.RunMigrations(db); err != nil {
			logger.Log.Error("migrations failed:", err)
			return err
		}

		userReadRepo = repositories.NewUserReadRepository(db)
		userWriteRepo = repositories.NewUserWriteRepository(db)
		expenseReadRepo = repositories.NewExpenseReadRepository(db)
		expenseWriteRepo = repositories.NewExpenseWriteRepository(db)

	case "file":
		logger.Log.Infof("Using file storage at %s", storageFile)
		fs, err := repositories.NewFileStorage(storageFile)
		if err != nil {
			logger.Log.Error("file storage error:", err)
			return err
		}
		userRepo := repositories.NewFileUserRepository(fs)
		expenseRepo := repositories.NewFileExpenseRepository(fs)
		userReadRepo = userRepo
		userWriteRepo = userRepo
		expenseReadRepo = expenseRepo
		expenseWriteRepo = expenseRepo

	default:
		return fmt.Errorf("unknown storage driver %q", storageDriver)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	expenseService := services.NewExpenseService(expenseReadRepo, expenseWriteRepo)
	summaryService := services.NewSummaryService(userReadRepo, expenseReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	profileHandler := handlers.NewProfileHandler(userService)
	salaryHandler := handlers.NewSalaryHandler(userService)
	expensesListHandler := handlers.NewExpensesListHandler(expenseService)
	expensesAddHandler := handlers.NewExpensesAddHandler(expenseService)
	expensesDeleteHandler := handlers.NewExpensesDeleteHandler(expenseService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/register", registerHandler)
	r.Post("/api/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Get("/api/profile", profileHandler)
		r.Put("/api/salary", salaryHandler)
		r.Get("/api/expenses", expensesListHandler)
		r.Post("/api/expenses", expensesAddHandler)
		r.Delete("/api/expenses/{id}", expensesDeleteHandler)
		r.Get("/api/summary", summaryHandler)
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
