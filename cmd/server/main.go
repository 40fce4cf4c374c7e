package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/interbanking/backend/docs"
	companyapp "github.com/interbanking/backend/internal/application/company"
	transferapp "github.com/interbanking/backend/internal/application/transfer"
	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/infrastructure/cache"
	"github.com/interbanking/backend/internal/infrastructure/config"
	"github.com/interbanking/backend/internal/infrastructure/logger"
	"github.com/interbanking/backend/internal/infrastructure/migration"
	"github.com/interbanking/backend/internal/infrastructure/persistence"
	"github.com/interbanking/backend/internal/infrastructure/telemetry"
	"github.com/interbanking/backend/internal/interfaces/http/handler"
	"github.com/interbanking/backend/internal/interfaces/http/middleware"
	"github.com/interbanking/backend/internal/interfaces/http/router"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "1.0.0"

//	@title			Interbanking API
//	@version		1.0.0
//	@description	Company adhesion and transfer registry.

//	@contact.name	API Support

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// OTLP log export tees into the console logger once the provider is up
	logsProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfigFrom(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize log exporter", zap.Error(err))
	}
	if logsProvider.IsEnabled() {
		if log, err = logger.New(logCfg, logger.WithCore(logsProvider.NewZapCore(logger.ParseLevel(cfg.Log.Level)))); err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Interbanking API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", Version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.ConfigFrom(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfigFrom(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfigFrom(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}
	defer shutdownTelemetry(log, tracerProvider, meterProvider, logsProvider, profiler)

	if cfg.Database.AutoMigrate {
		if err := migration.UpDSN(cfg.Database.Driver, cfg.Database.DSN(), log); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabase(&cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", db.Driver))

	if err := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfigFrom(cfg.Telemetry, db.Driver), log).RegisterOtelGorm(db.DB); err != nil {
		log.Warn("Database tracing disabled", zap.Error(err))
	}
	dbMetrics, err := telemetry.RegisterDBMetrics(ctx, db.DB, meterProvider, telemetry.DBMetricsConfig{
		SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
	}, log)
	if err != nil {
		log.Warn("Database metrics disabled", zap.Error(err))
	}
	if dbMetrics != nil {
		defer dbMetrics.Stop()
	}

	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)

	var (
		companyOpts  []companyapp.Option
		transferOpts []transferapp.Option
	)
	if meterProvider.IsEnabled() {
		businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:         meterProvider.Meter("interbanking.business"),
			Logger:        log,
			StatsProvider: companyRepo,
		})
		if err != nil {
			log.Warn("Business metrics disabled", zap.Error(err))
		} else {
			businessMetrics.StartPeriodicCollection(ctx, 5*time.Minute)
			defer businessMetrics.Stop()
			companyOpts = append(companyOpts, companyapp.WithMetrics(businessMetrics))
			transferOpts = append(transferOpts, transferapp.WithMetrics(businessMetrics))
		}
	}

	companyService := companyapp.NewService(companyRepo, transferRepo, companyOpts...)
	transferService := transferapp.NewService(transferRepo, companyRepo, transferOpts...)

	// Redis is only dialled when a store asks for it
	var redisClient *redis.Client
	if cfg.HTTP.RateLimitStore == config.StoreRedis || cfg.Idempotency.Store == config.StoreRedis {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory stores", zap.Error(err))
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Error closing Redis client", zap.Error(err))
				}
			}()
			log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Global middleware, in order:
	// 1. RequestID - generate/propagate request ID
	// 2. Recovery - catch panics
	// 3. Logger - log requests
	// 4. Tracing - server spans, request_id attribute, error status
	// 5. Metrics and profiling labels
	// 6. CORS
	// 7. BodyLimit
	// 8. RateLimit (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	tracingConfig := middleware.DefaultTracingConfig(cfg.Telemetry.ServiceName)
	tracingConfig.Enabled = tracerProvider.IsEnabled()
	engine.Use(middleware.Tracing(tracingConfig)...)
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		Enabled:       cfg.Telemetry.MetricsEnabled,
		Logger:        log,
	}))
	if profiler.IsEnabled() {
		engine.Use(middleware.Profiling())
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	corsConfig.AllowCredentials = cfg.HTTP.CORSAllowCredentials
	engine.Use(middleware.CORS(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(newRateLimiter(cfg, redisClient, log), log))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
			zap.String("store", cfg.HTTP.RateLimitStore),
		)
	}

	health := handler.NewHealthHandler().AddCheck("database", db.Ping)
	if redisClient != nil {
		health.AddCheck("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	engine.GET("/health", health.Check)

	swagger := engine.Group("/swagger", middleware.SwaggerProtection(middleware.SwaggerConfig{
		Enabled:    cfg.Swagger.Enabled,
		AllowedIPs: cfg.Swagger.AllowedIPs,
	}))
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/api", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.Secure())

	if cfg.Idempotency.Enabled {
		store, err := cache.NewIdempotencyStoreFactory(redisClient, cache.WithLogger(log)).CreateStore(cfg.Idempotency.Store)
		if err != nil {
			log.Fatal("Failed to create idempotency store", zap.Error(err))
		}
		defer closeStore(log, store)
		r.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Store:  store,
			TTL:    cfg.Idempotency.TTL,
			Logger: log,
		}))
	}

	r.Register(router.CompanyRoutes(handler.NewCompanyHandler(companyService))).
		Register(router.TransferRoutes(handler.NewTransferHandler(transferService))).
		Register(router.SystemRoutes(handler.NewSystemHandler(cfg.App.Name, Version, handler.WithEnvironment(cfg.App.Env))))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}

// newRateLimiter picks the shared Redis window when available and the
// per-instance limiter otherwise.
func newRateLimiter(cfg *config.Config, client *redis.Client, log *zap.Logger) middleware.Limiter {
	if cfg.HTTP.RateLimitStore == config.StoreRedis && client != nil {
		return cache.NewRedisRateLimiter(client, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	}
	if cfg.HTTP.RateLimitStore == config.StoreRedis {
		log.Warn("Redis rate limit store unavailable, limiting per instance")
	}
	return middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
}

func closeStore(log *zap.Logger, store shared.IdempotencyStore) {
	if err := store.Close(); err != nil {
		log.Error("Error closing idempotency store", zap.Error(err))
	}
}

func shutdownTelemetry(
	log *zap.Logger,
	tp *telemetry.TracerProvider,
	mp *telemetry.MeterProvider,
	lp *telemetry.LoggerProvider,
	profiler *telemetry.Profiler,
) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := tp.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := mp.Shutdown(ctx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := lp.Shutdown(ctx); err != nil {
		log.Error("Error shutting down log provider", zap.Error(err))
	}
}
