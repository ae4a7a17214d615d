package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	petnamesserver "github.com/Apurer/pet-name-generator/go"

	catmemory "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/memory"
	catobs "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/observability"
	catpostgres "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/persistence/postgres"
	catrandom "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/random"
	catapp "github.com/Apurer/pet-name-generator/internal/domains/catalog/application"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
	catports "github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
	platformmetrics "github.com/Apurer/pet-name-generator/internal/platform/metrics"
	"github.com/Apurer/pet-name-generator/internal/platform/middleware"
	platformobservability "github.com/Apurer/pet-name-generator/internal/platform/observability"
	platformpostgres "github.com/Apurer/pet-name-generator/internal/platform/postgres"
	"github.com/Apurer/pet-name-generator/internal/platform/web"
)

// ServiceName identifies the API in telemetry and on /version.
const ServiceName = "pet-name-generator-api"

const metricsNamespace = "pet_name_generator"

// Run boots the pet name HTTP API and blocks until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:    ServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		TracesExporter: cfg.TracesExporter,
		LogLevel:       cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	handler, err := NewHandler(ctx, cfg, instruments)
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("pet name API listening", slog.String("addr", server.Addr), slog.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("pet name API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down pet name API", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// NewHandler assembles the full HTTP stack: catalog service, gin routes,
// middleware, frontend, metrics and CORS.
func NewHandler(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (http.Handler, error) {
	logger := loggerFrom(instruments)
	gin.SetMode(cfg.GinMode)

	catalog := loadCatalog(ctx, cfg.PostgresDSN, logger)
	service := buildCatalogService(catalog, cfg.RandomSeed, instruments, logger)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware(ServiceName, otelgin.WithTracerProvider(instruments.TracerProviderOrGlobal())),
		middleware.RequestID(),
		middleware.AccessLog(logger),
	)
	if cfg.MetricsEnabled {
		httpMetrics := platformmetrics.NewHTTPMetrics(metricsNamespace)
		router.Use(httpMetrics.Middleware())
		router.GET("/metrics", gin.WrapH(httpMetrics.Handler()))
	}
	if err := web.Register(router); err != nil {
		return nil, err
	}
	petnamesserver.NewRouterWithGinEngine(router, petnamesserver.ApiHandleFunctions{
		PetAPI:    petnamesserver.NewPetAPI(service),
		FactAPI:   petnamesserver.NewFactAPI(service),
		HealthAPI: petnamesserver.NewHealthAPI(service, ServiceName, cfg.Version),
	})

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router), nil
}

// loadCatalog reads the catalog once. A configured but unusable database
// never blocks startup; the built-in tables are served instead.
func loadCatalog(ctx context.Context, dsn string, logger *slog.Logger) *domain.Catalog {
	var source catports.Source = catmemory.NewSource()
	db, cleanup := platformpostgres.ConnectOptional(ctx, dsn, logger)
	defer cleanup()
	if db != nil {
		source = catpostgres.NewSource(db)
	}
	catalog, err := source.Load(ctx)
	if err != nil {
		logger.Warn("failed to load catalog from postgres, using the built-in catalog", slog.String("error", err.Error()))
		return domain.Default()
	}
	logger.Info("catalog loaded",
		slog.Int("name_types", len(catalog.NameTypes())),
		slog.Int("fact_types", len(catalog.FactTypes())))
	return catalog
}

func buildCatalogService(catalog *domain.Catalog, seed uint64, instruments *platformobservability.Instruments, logger *slog.Logger) catports.Service {
	var opts []catapp.Option
	if seed != 0 {
		logger.Info("random draws are seeded", slog.Uint64("seed", seed))
		opts = append(opts, catapp.WithSampler(catrandom.NewSeeded(seed)))
	}
	return catobs.New(
		catapp.NewService(catalog, opts...),
		catobs.WithLogger(logger),
		catobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
}

func loggerFrom(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
