package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/analytics"
	"github.com/Sortedsinghal/URE-HR/internal/api"
	"github.com/Sortedsinghal/URE-HR/internal/cache"
	cachememory "github.com/Sortedsinghal/URE-HR/internal/cache/memory"
	cacheredis "github.com/Sortedsinghal/URE-HR/internal/cache/redis"
	"github.com/Sortedsinghal/URE-HR/internal/config"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/metrics"
	"github.com/Sortedsinghal/URE-HR/internal/scheduling"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/telemetry"
	"github.com/Sortedsinghal/URE-HR/internal/templates"
	"github.com/Sortedsinghal/URE-HR/internal/wizard"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newCache(cfg *config.Config, logger *zap.Logger) cache.Cache {
	opts := cache.DefaultOptions()
	opts.DefaultTTL = cfg.CacheTTL

	if cfg.RedisAddr == "" {
		logger.Info("redis not configured, using in-process cache")
		return cachememory.New(opts)
	}

	opts.RedisAddr = cfg.RedisAddr
	opts.RedisPassword = cfg.RedisPassword
	opts.RedisDB = cfg.RedisDB
	return cacheredis.New(opts)
}

func newRecorder(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (metrics.Recorder, error) {
	if cfg.ClickHouseDSN == "" {
		logger.Info("clickhouse not configured, event recording disabled")
		return metrics.NopRecorder{}, nil
	}

	recorder, err := metrics.NewClickHouseRecorder(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return recorder.Close(ctx)
		},
	})
	return recorder, nil
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	publisher, err := events.NewPublisher(logger, cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			publisher.Close()
			return nil
		},
	})
	return publisher, nil
}

func newAnalytics(st *store.Store, c cache.Cache, cfg *config.Config, logger *zap.Logger) *analytics.Service {
	return analytics.NewService(st, c, cfg.CacheTTL, cfg.AnalyticsCacheNS, logger)
}

func newRouter(h *api.Handler, logger *zap.Logger) *gin.Engine {
	return api.NewRouter(h, logger)
}

func registerTracing(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
	if cfg.OTLPCollectorURL == "" {
		return
	}

	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.InitTracer(ctx, "urehr-ats", cfg.OTLPCollectorURL)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}

func registerServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newPublisher,
			newCache,
			newRecorder,
			store.New,
			wizard.NewService,
			scheduling.NewService,
			templates.NewService,
			newAnalytics,
			api.NewHandler,
			newRouter,
		),
		fx.Invoke(
			registerTracing,
			registerServer,
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
