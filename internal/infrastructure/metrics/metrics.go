package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SyncMetrics covers one reconciliation cycle end to end.
type SyncMetrics struct {
	RowsUpsertedTotal         prometheus.Counter
	RowsMalformedTotal        prometheus.Counter
	NotificationsSentTotal    prometheus.Counter
	NotificationFailuresTotal prometheus.Counter
	CycleErrorsTotal          prometheus.CounterVec
	CycleDuration             prometheus.Histogram
}

func NewSyncMetrics() *SyncMetrics {
	return &SyncMetrics{
		RowsUpsertedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_rows_upserted_total",
				Help: "Общее количество строк, записанных в хранилище",
			},
		),

		RowsMalformedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_rows_malformed_total",
				Help: "Общее количество пропущенных некорректных строк",
			},
		),

		NotificationsSentTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_notifications_sent_total",
				Help: "Общее количество отправленных уведомлений о просрочке",
			},
		),

		NotificationFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_notification_failures_total",
				Help: "Общее количество неудачных отправок уведомлений",
			},
		),

		CycleErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_cycle_errors_total",
				Help: "Ошибки цикла синхронизации по этапам",
			},
			[]string{"stage"},
		),

		CycleDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sync_cycle_duration_seconds",
				Help:    "Длительность цикла синхронизации в секундах",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
	}
}

func (m *SyncMetrics) RecordRowUpserted() {
	m.RowsUpsertedTotal.Inc()
}

func (m *SyncMetrics) RecordRowMalformed() {
	m.RowsMalformedTotal.Inc()
}

func (m *SyncMetrics) RecordNotificationSent() {
	m.NotificationsSentTotal.Inc()
}

func (m *SyncMetrics) RecordNotificationFailed() {
	m.NotificationFailuresTotal.Inc()
}

func (m *SyncMetrics) RecordCycleError(stage string) {
	m.CycleErrorsTotal.WithLabelValues(stage).Inc()
}

func (m *SyncMetrics) ObserveCycleDuration(durationSeconds float64) {
	m.CycleDuration.Observe(durationSeconds)
}
