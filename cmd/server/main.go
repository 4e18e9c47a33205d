package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/desertfarm/backend/internal/delivery/http"
	"github.com/desertfarm/backend/internal/domain"
	"github.com/desertfarm/backend/internal/observability"
	"github.com/desertfarm/backend/internal/repository/firestore"
	"github.com/desertfarm/backend/internal/repository/memory"
	"github.com/desertfarm/backend/internal/repository/postgres"
	"github.com/desertfarm/backend/internal/service"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Configuration
	cfg := loadConfig()

	zlog, err := observability.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if envErr != nil {
		zlog.Info("No .env file found, using system environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Dependency Injection: Repositories
	historyRepo, closeRepo := openHistoryRepository(ctx, cfg, zlog)
	defer closeRepo()

	// Dependency Injection: Text generation
	var generator domain.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := service.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			zlog.Warn("Could not create Gemini client, using mock generator", zap.Error(err))
			generator = service.NewMockGenerator()
		} else {
			generator = client
			zlog.Info("Using Gemini")
		}
	} else {
		zlog.Info("GEMINI_API_KEY not set, using mock generator")
		generator = service.NewMockGenerator()
	}

	// Dependency Injection: Services
	adviceGen := service.NewAdviceGenerator(generator, cfg.GeminiModel, zlog)
	zlog.Info("Advice generator ready", zap.String("model", adviceGen.Model()))
	recorder := service.NewAdviceRecorder(historyRepo)
	adviceSvc := service.NewAdviceService(adviceGen, recorder, zlog)
	weatherSvc := service.NewWeatherService(cfg.OpenMeteoURL, cfg.GeocodingURL, cfg.HTTPTimeout, zlog)
	crops := service.NewCropCalendar()

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "DesertFarm API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, http.NewHandler(adviceSvc, weatherSvc, crops, zlog))

	// Graceful shutdown
	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited gracefully")
}

// openHistoryRepository selects the advice history backend. PostgreSQL and
// Firestore fall back to the in-memory store when they cannot be reached.
func openHistoryRepository(ctx context.Context, cfg *Config, zlog *zap.Logger) (domain.AdviceRepository, func()) {
	noop := func() {}

	switch cfg.HistoryBackend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
		}
		if err != nil {
			zlog.Warn("Could not connect to database, using in-memory history", zap.Error(err))
			if pool != nil {
				pool.Close()
			}
			return memory.NewStore(), noop
		}

		repo := postgres.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			zlog.Warn("Could not ensure schema, using in-memory history", zap.Error(err))
			pool.Close()
			return memory.NewStore(), noop
		}
		zlog.Info("Connected to PostgreSQL")
		return repo, pool.Close

	case "firestore":
		store, err := firestore.NewStore(ctx, cfg.FirestoreProject, cfg.FirestoreCollection)
		if err != nil {
			zlog.Warn("Could not open Firestore, using in-memory history", zap.Error(err))
			return memory.NewStore(), noop
		}
		zlog.Info("Using Firestore history", zap.String("project", cfg.FirestoreProject))
		return store, func() {
			if err := store.Close(); err != nil {
				zlog.Warn("Firestore close failed", zap.Error(err))
			}
		}

	default:
		zlog.Info("Using in-memory history")
		return memory.NewStore(), noop
	}
}

type Config struct {
	DatabaseURL         string
	HistoryBackend      string
	FirestoreProject    string
	FirestoreCollection string
	GeminiAPIKey        string
	GeminiModel         string
	OpenMeteoURL        string
	GeocodingURL        string
	HTTPTimeout         time.Duration
	Port                string
	Env                 string
}

func loadConfig() *Config {
	databaseURL := getEnv("DATABASE_URL", "")
	defaultBackend := "memory"
	if databaseURL != "" {
		defaultBackend = "postgres"
	}

	return &Config{
		DatabaseURL:         databaseURL,
		HistoryBackend:      getEnv("HISTORY_BACKEND", defaultBackend),
		FirestoreProject:    getEnv("FIRESTORE_PROJECT", ""),
		FirestoreCollection: getEnv("FIRESTORE_COLLECTION", firestore.DefaultCollection),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", service.DefaultModel),
		OpenMeteoURL:        getEnv("OPEN_METEO_URL", service.DefaultForecastURL),
		GeocodingURL:        getEnv("GEOCODING_URL", service.DefaultGeocodingURL),
		HTTPTimeout:         getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
