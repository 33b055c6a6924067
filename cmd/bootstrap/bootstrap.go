package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-finder/config"
	deliveryHttp "doctor-finder/internal/delivery/http"
	"doctor-finder/internal/delivery/http/handler"
	"doctor-finder/internal/delivery/http/middleware"
	domainRepo "doctor-finder/internal/domain/repository"
	"doctor-finder/internal/infrastructure/cache"
	"doctor-finder/internal/infrastructure/source"
	"doctor-finder/internal/observability/metrics"
	"doctor-finder/internal/repository"
	"doctor-finder/internal/service"
	"doctor-finder/internal/usecase"
	"doctor-finder/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
	Loader      *service.DoctorLoader
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Initialize record store
	doctorRepo, err := app.initializeStore(cfg)
	if err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	directoryMetrics := metrics.NewDirectoryMetrics(registry)

	app.Loader = service.NewDoctorLoader(source.NewHTTPDoctorSource(cfg.Source, log), doctorRepo, log, directoryMetrics)
	app.Server = initializeServer(cfg, log, doctorRepo, directoryMetrics, registry)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func (app *App) initializeStore(cfg *config.Config) (domainRepo.DoctorRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory, "":
		return repository.NewDoctorMemoryRepository(), nil
	case config.StoreDriverRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
		return repository.NewDoctorRedisRepository(redisClient, cfg.Redis.Key), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	doctorRepo domainRepo.DoctorRepository,
	directoryMetrics *metrics.DirectoryMetrics,
	registry *prometheus.Registry,
) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)
	pageHandler := handler.NewPageHandler(directoryUsecase, customValidator, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log, directoryMetrics)

	// Initialize router
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	router := deliveryHttp.NewRouter(doctorHandler, pageHandler, metricsHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and the one-shot feed load, then blocks until
// an interrupt signal arrives and shuts everything down.
func (app *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	// The page serves an empty list until this finishes; a failed load is
	// logged by the loader and does not stop the server.
	g.Go(func() error {
		_ = app.Loader.Load(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("Server forced to shutdown: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.Errorf("Server stopped with error: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
