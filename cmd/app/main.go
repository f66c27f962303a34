package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flights/api"
	"github.com/Domenick1991/flights/config"
	"github.com/Domenick1991/flights/internal/bootstrap"
	"github.com/Domenick1991/flights/internal/cache"
	"github.com/Domenick1991/flights/internal/kafka"
	"github.com/Domenick1991/flights/internal/logger"
	"github.com/Domenick1991/flights/internal/repository"
	"github.com/Domenick1991/flights/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var flightRepo repository.FlightRepository
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			logg.Fatal("connect postgres", "error", err)
		}
		defer pool.Close()

		pgRepo := repository.NewFlightRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			logg.Fatal("prepare schema", "error", err)
		}
		flightRepo = pgRepo
	default:
		logg.Warn("using in-memory flight store, data is lost on restart")
		flightRepo = repository.NewMemoryFlightRepository()
	}

	var flightCache flights.FlightCache
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cache.FlightsTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logg.Warn("redis unreachable, cache calls will fall back to the store", "addr", cfg.Redis.Addr, "error", err)
		}
		flightCache = redisCache
	}

	opts := []flights.FlightServiceOption{flights.WithLogger(logg)}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logg)
		defer producer.Close()
		opts = append(opts, flights.WithEvents(producer, cfg.Kafka.FlightEventsTopic))
	}

	flightService := flights.NewFlightService(flightRepo, flightCache, opts...)

	router := api.NewRouter(api.RouterDeps{
		Flights:    flightService,
		Log:        logg,
		SwaggerDir: cfg.HTTP.SwaggerDir,
	})

	if err := bootstrap.Run(ctx, cfg.HTTP, router, logg); err != nil {
		logg.Fatal("server error", "error", err)
	}
}
