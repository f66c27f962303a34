package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flights/config"
	"github.com/Domenick1991/flights/internal/kafka"
	"github.com/Domenick1991/flights/internal/logger"
	"github.com/Domenick1991/flights/internal/notify"
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

	if !cfg.Kafka.Enabled() {
		logg.Fatal("kafka brokers and flight_events_topic must be configured for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.FlightEventsTopic, logg)
	defer consumer.Close()

	notifier := notify.NewNotifier(logg)

	logg.Info("worker consuming flight events", "topic", cfg.Kafka.FlightEventsTopic, "group", cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, notifier.Notify); err != nil {
		logg.Error("consumer stopped", "error", err)
		return
	}
	logg.Info("worker stopped")
}
