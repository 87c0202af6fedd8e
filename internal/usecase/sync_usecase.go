package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type DefaultSyncUsecase struct {
	repo      domain.OrderRepository
	source    domain.OrderSource
	rates     domain.RateProvider
	notifier  domain.ExpirationNotifier
	publisher domain.PublisherPort
	metrics   *metrics.SyncMetrics
	loc       *time.Location
	topic     string
}

func NewDefaultSyncUsecase(
	repo domain.OrderRepository,
	source domain.OrderSource,
	rates domain.RateProvider,
	notifier domain.ExpirationNotifier,
	publisher domain.PublisherPort,
	syncMetrics *metrics.SyncMetrics,
	loc *time.Location,
	topic string,
) *DefaultSyncUsecase {
	return &DefaultSyncUsecase{
		repo:      repo,
		source:    source,
		rates:     rates,
		notifier:  notifier,
		publisher: publisher,
		metrics:   syncMetrics,
		loc:       loc,
		topic:     topic,
	}
}

// RunCycle runs one reconciliation pass. A source or rate failure aborts the
// cycle before any row is touched; per-row failures are isolated and logged.
func (uc *DefaultSyncUsecase) RunCycle(ctx context.Context) error {
	runID := uuid.New().String()
	start := time.Now()
	defer func() {
		uc.metrics.ObserveCycleDuration(time.Since(start).Seconds())
	}()

	rows, err := uc.source.FetchRows(ctx)
	if err != nil {
		uc.metrics.RecordCycleError("source")
		return fmt.Errorf("fetch order rows: %w", err)
	}

	rate, err := uc.rates.CurrentRate(ctx)
	if err != nil {
		uc.metrics.RecordCycleError("rate")
		return fmt.Errorf("fetch currency rate: %w", err)
	}

	// The first sheet row is the header.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	for i, row := range rows {
		if err := uc.processRow(ctx, runID, row, rate); err != nil {
			slog.Error("row processing failed",
				"run_id", runID,
				"row", i+2,
				"error", err)
		}
	}

	slog.Info("reconciliation cycle finished",
		"run_id", runID,
		"rows", len(rows),
		"rate", rate.String(),
		"duration", time.Since(start).String())
	return nil
}

func (uc *DefaultSyncUsecase) processRow(ctx context.Context, runID string, row domain.RawRow, rate decimal.Decimal) error {
	record, err := NormalizeRow(row, rate)
	if err != nil {
		uc.metrics.RecordRowMalformed()
		return err
	}

	persisted, err := uc.repo.UpsertOrder(ctx, record)
	if err != nil {
		uc.metrics.RecordCycleError("storage")
		return err
	}
	uc.metrics.RecordRowUpserted()
	uc.publishEvent(runID, persisted, EventStatusImported)

	// Expiration decision: "today" is evaluated per row in the configured zone.
	if persisted.Notified || !persisted.Overdue(time.Now().In(uc.loc)) {
		return nil
	}

	if err := uc.notifier.NotifyExpired(ctx, persisted.ID, persisted.DeliveryDate); err != nil {
		uc.metrics.RecordNotificationFailed()
		return fmt.Errorf("%w: order %d: %v", domain.ErrNotificationFailed, persisted.ID, err)
	}
	uc.metrics.RecordNotificationSent()

	// Separate commit after a successful notification. If the process dies
	// between the two, the next cycle re-notifies: at-least-once.
	if err := uc.repo.MarkNotified(ctx, persisted.ID); err != nil {
		uc.metrics.RecordCycleError("storage")
		return err
	}
	uc.publishEvent(runID, persisted, EventStatusOverdue)
	return nil
}

func (uc *DefaultSyncUsecase) publishEvent(runID string, order *domain.PersistedOrder, status string) {
	if uc.publisher == nil {
		return
	}

	event := OrderEvent{
		RunID:        runID,
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		CostLocal:    order.CostLocal.StringFixed(2),
		DeliveryDate: order.DeliveryDate.Format("2006-01-02"),
		Status:       status,
	}
	v, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal order event", "order_id", order.ID, "error", err)
		return
	}

	msg := domain.Message{Key: []byte(strconv.FormatInt(order.ID, 10)), Value: v}
	if err := uc.publisher.Publish(uc.topic, msg); err != nil {
		slog.Error("order event publish failed", "order_id", order.ID, "status", status, "error", err)
	}
}
