package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/m-orlov/sheet-order-service/internal/app/background"
	"github.com/m-orlov/sheet-order-service/internal/config"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/cbr"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/kafka"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/metrics"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/migrate"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/postgres"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/postgres/repository"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/sheets"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/telegram"
	"github.com/m-orlov/sheet-order-service/internal/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Reference timezone for the expiration decision
	loc, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", cfg.Sync.Timezone, err)
	}

	// Init order repo
	orderRepo := repository.NewDefaultOrderRepository(db)

	// Init collaborators
	source := sheets.NewCSVExportSource(
		fmt.Sprintf(cfg.Sheet.ExportURL, cfg.Sheet.ID),
		time.Duration(cfg.Sheet.TimeoutSeconds)*time.Second,
	)
	rates := cbr.NewDailyRateProvider(
		cfg.Rates.URL,
		time.Duration(cfg.Rates.TimeoutSeconds)*time.Second,
	)
	notifier := telegram.NewBotNotifier(
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		time.Duration(cfg.Telegram.TimeoutSeconds)*time.Second,
	)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()

	syncMetrics := metrics.NewSyncMetrics()

	// Init sync usecase
	uc := usecase.NewDefaultSyncUsecase(
		orderRepo,
		source,
		rates,
		notifier,
		pub,
		syncMetrics,
		loc,
		cfg.KafkaService.Topic,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(
		uc,
		time.Duration(cfg.Sync.IntervalSeconds)*time.Second,
		time.Duration(cfg.Sync.CycleTimeoutSeconds)*time.Second,
	)
	tasks.StartAll(ctx)

	// Prometheus endpoint
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Printf("metrics server error: %v\n", err)
		}
	}()

	log.Printf("sheet-order-service started, sync interval %ds\n", cfg.Sync.IntervalSeconds)
	<-ctx.Done()
	log.Println("shutting down")
}
