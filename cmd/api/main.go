package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/adapters/cache"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/adapters/database"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/adapters/events"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/api/handlers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/api/routes"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/application/services"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/repositories"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/clients/postgres"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/clients/redis"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Environment, cfg.App.LogLevel)

	ctx := context.Background()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry, continuing without export")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Storage is optional: without it the scoring routes still work and
	// the evaluation routes answer 503.
	var evaluationRepo repositories.EvaluationRepository
	if cfg.Database.Enabled {
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			log.Error().Err(err).Msg("PostgreSQL unavailable, evaluations disabled")
		} else {
			defer pgClient.Close()
			adapter := database.NewEvaluationAdapter(pgClient, metrics)
			if err := adapter.EnsureSchema(ctx); err != nil {
				log.Error().Err(err).Msg("failed to prepare evaluations schema, evaluations disabled")
			} else {
				evaluationRepo = adapter
				log.Info().Str("database", cfg.Database.Database).Msg("PostgreSQL client initialized")
			}
		}
	}

	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, falling back to in-process cache and event bus")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			eventBus = events.NewRedisEventBus(redisClient)
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
		}
	}
	if cacheProvider == nil {
		cacheProvider = cache.NewMemoryAdapter()
		eventBus = events.NewMemoryEventBus()
	}

	assessmentService := services.NewAssessmentService(cacheProvider, metrics, cfg.Assessment)
	evaluationService := services.NewEvaluationService(
		evaluationRepo,
		assessmentService,
		eventBus,
		cacheProvider,
		cfg.Assessment.CacheTTLSeconds,
	)

	cacheInvalidationService := services.NewCacheInvalidationService(cacheProvider, eventBus)
	invalidationStarted := true
	if err := cacheInvalidationService.Start(); err != nil {
		invalidationStarted = false
		log.Warn().Err(err).Msg("failed to start cache invalidation service")
	}

	router := routes.NewRouter(
		handlers.NewAssessmentHandler(assessmentService),
		handlers.NewReferenceHandler(),
		handlers.NewEvaluationHandler(evaluationService),
		handlers.NewSSEHandler(eventBus),
		cfg.Server.AllowedOrigins,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	// No WriteTimeout: it would cut the event streams.
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           router.SetupRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if invalidationStarted {
		cacheInvalidationService.Stop()
	}
	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("error closing event bus")
	}

	log.Info().Msg("server stopped")
}
