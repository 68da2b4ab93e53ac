package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"contactcentre/internal/cases/cache"
	"contactcentre/internal/cases/client"
	"contactcentre/internal/cases/handler"
	casemetrics "contactcentre/internal/cases/metrics"
	"contactcentre/internal/cases/service"
	"contactcentre/internal/ccs"
	"contactcentre/internal/event"
	outboxmetrics "contactcentre/internal/event/outbox/metrics"
	outboxpostgres "contactcentre/internal/event/outbox/postgres"
	"contactcentre/internal/event/outbox/worker"
	"contactcentre/internal/launch/token"
	"contactcentre/internal/platform/config"
	"contactcentre/internal/platform/database"
	"contactcentre/internal/platform/health"
	"contactcentre/internal/platform/kafka"
	"contactcentre/internal/platform/kafka/producer"
	"contactcentre/internal/platform/logger"
	"contactcentre/internal/platform/redis"
	"contactcentre/internal/platform/tracer"
	"contactcentre/internal/product"
	"contactcentre/migrations"
	"contactcentre/pkg/platform/circuit"
	"contactcentre/pkg/platform/middleware/ratelimit"
	"contactcentre/pkg/platform/middleware/request"
)

// main wires dependencies and runs the HTTP server next to the outbox relay.
// Business logic lives in internal/cases/service.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

type eventProducer interface {
	Produce(ctx context.Context, msg *producer.Message) error
	Close(ctx context.Context) error
	Health(ctx context.Context) error
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	log.Info("initializing contact centre service",
		"addr", cfg.Addr,
		"env", cfg.Env,
		"outbox_enabled", cfg.Outbox.Enabled,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	trc := tracer.NewOTel()
	healthHandler := health.New(cfg.Env)

	db, err := database.New(ctx, database.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if db != nil {
		defer db.Close() //nolint:errcheck // shutdown path
		if err := db.Migrate(ctx, migrations.FS); err != nil {
			return err
		}
		if err := db.RegisterPoolMetrics(reg); err != nil {
			return fmt.Errorf("register database metrics: %w", err)
		}
		healthHandler.RegisterCheck("postgres", db.Health)
	}

	prod, err := newProducer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = prod.Close(closeCtx)
	}()
	healthHandler.RegisterCheck("kafka", prod.Health)

	var (
		relay *worker.Worker
		sink  event.Sink = event.NewKafkaSink(prod, cfg.Kafka.Topic)
	)
	if cfg.Outbox.Enabled {
		store := outboxpostgres.New(db.DB())
		sink = event.NewOutboxSink(store)
		relay = worker.New(store, prod,
			worker.WithTopic(cfg.Kafka.Topic),
			worker.WithBatchSize(cfg.Outbox.BatchSize),
			worker.WithPollInterval(cfg.Outbox.PollInterval),
			worker.WithMetrics(outboxmetrics.New(reg)),
			worker.WithTracer(trc),
			worker.WithLogger(log),
		)
	}
	publisher := event.NewPublisher(sink, event.WithTracer(trc), event.WithLogger(log))

	catalog, err := product.NewDefault()
	if err != nil {
		return fmt.Errorf("load product catalog: %w", err)
	}
	postcodes, err := ccs.FromConfig(cfg.CCS.PostcodesFile, cfg.CCS.Postcodes)
	if err != nil {
		return err
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(casemetrics.New(reg)),
		service.WithEventWhitelist(cfg.Events.Whitelist),
		service.WithEQHost(cfg.Launch.EQHost),
		service.WithLanguage(cfg.Launch.LanguageCode),
	}
	rdb, err := redis.New(ctx, cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close() //nolint:errcheck // shutdown path
		if err := rdb.RegisterPoolMetrics(reg); err != nil {
			return err
		}
		store := cache.NewRedisStore(rdb.Client, cfg.Redis.TTL,
			cache.WithRetryPolicy(cache.RetryPolicy{
				InitialDelay: cfg.Redis.RetryInitialDelay,
				Multiplier:   cfg.Redis.RetryMultiplier,
				MaxDelay:     cfg.Redis.RetryMaxDelay,
				MaxAttempts:  cfg.Redis.RetryMaxAttempts,
			}),
			cache.WithMetrics(cache.NewMetrics(reg)),
			cache.WithTracer(trc),
		)
		opts = append(opts, service.WithCache(store))
		healthHandler.RegisterCheck("redis", rdb.Health)
	}

	clientOpts := []client.Option{client.WithTracer(trc)}
	if cfg.CaseService.BreakerFailures > 0 {
		clientOpts = append(clientOpts, client.WithBreaker(circuit.New("case-service",
			circuit.WithFailureThreshold(cfg.CaseService.BreakerFailures),
			circuit.WithCooldown(cfg.CaseService.BreakerCooldown),
		)))
	}
	directory := client.New(cfg.CaseService.BaseURL, cfg.CaseService.APIKey, cfg.CaseService.Timeout, clientOpts...)
	tokens := token.NewIssuer(cfg.Launch.SigningKey, cfg.Launch.Issuer, cfg.Launch.TokenTTL)
	svc := service.New(directory, catalog, tokens, publisher, opts...)

	router := newRouter(cfg, log, reg, healthHandler, handler.New(svc, postcodes, log))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if relay != nil {
		g.Go(func() error {
			log.Info("starting outbox relay", "topic", cfg.Kafka.Topic)
			return relay.Run(gctx)
		})
	}
	return g.Wait()
}

// newProducer connects to Kafka when brokers are configured and creates the event
// topic. Without brokers events are logged and dropped.
func newProducer(ctx context.Context, cfg config.Server, log *slog.Logger) (eventProducer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		if cfg.IsProduction() {
			return nil, errors.New("KAFKA_BROKERS is required in production")
		}
		log.Warn("kafka not configured, events will be dropped")
		return producer.NewNoopProducer(log), nil
	}
	prod, err := producer.New(producer.Config{
		Brokers:         cfg.Kafka.Brokers,
		Acks:            cfg.Kafka.Acks,
		Retries:         cfg.Kafka.Retries,
		DeliveryTimeout: cfg.Kafka.DeliveryTimeout,
	}, log)
	if err != nil {
		return nil, err
	}
	if err := kafka.EnsureTopics(ctx, prod.Client(), 1, cfg.Kafka.Topic); err != nil {
		_ = prod.Close(ctx)
		return nil, err
	}
	return prod, nil
}

func newRouter(cfg config.Server, log *slog.Logger, reg *prometheus.Registry, healthHandler *health.Handler, cases *handler.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(request.ClientIP)
	r.Use(request.Logger(log))
	r.Use(request.Latency(request.NewMetrics(reg), routePattern))

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(request.Timeout(cfg.RequestTimeout))
		r.Use(request.ContentTypeJSON)
		if cfg.RateLimit.RPS > 0 {
			r.Use(ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log,
				ratelimit.WithIdleTTL(cfg.RateLimit.IdleTTL),
			).Middleware)
		}
		cases.Register(r)
	})
	return r
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
