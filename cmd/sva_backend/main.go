package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/core/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
	"github.com/fieldtrax/sales_visit_app/internal/handlers"
	"github.com/fieldtrax/sales_visit_app/internal/middleware"
	"github.com/fieldtrax/sales_visit_app/internal/platform/config"
	"github.com/fieldtrax/sales_visit_app/internal/repositories/kvstore"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := newBlobStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized",
		slog.String("driver", cfg.StorageDriver),
		slog.Int64("capacity_bytes", cfg.StorageCapacityBytes))

	repos := kvstore.NewRepositoryContainer(store)
	svcs := &portssvc.ServiceContainer{
		User:      services.NewUserService(repos.UserRepository),
		Plan:      services.NewPlanService(repos.PlanRepository, repos.UserRepository, repos.ConfigRepository),
		PlanEntry: services.NewPlanEntryService(repos.EntryRepository, repos.PlanRepository, repos.VisitRepository, repos.UserRepository),
		Visit:     services.NewVisitService(repos.VisitRepository, repos.UserRepository),
		Config:    services.NewConfigService(repos.ConfigRepository, repos.UserRepository),
	}

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.ActorHeader)
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	handlers.RegisterRoutes(r, svcs, repos.UserRepository)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newBlobStore builds the configured storage backend.
func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.StorageDriver == config.DriverSQLite {
		return storage.NewSQLiteStore(cfg.SQLitePath, cfg.StorageCapacityBytes)
	}
	return storage.NewFileStore(cfg.DataDir, cfg.StorageCapacityBytes)
}
