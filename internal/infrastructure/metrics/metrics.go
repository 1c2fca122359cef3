package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TariffMetrics holds the engine's operational metrics. Helper methods are
// nil-safe so usecases can run without a registry in tests.
type TariffMetrics struct {
	ResolutionsTotal  prometheus.CounterVec
	TariffAmountTotal prometheus.CounterVec
	ResolveDuration   prometheus.HistogramVec

	ConflictsRejectedTotal prometheus.CounterVec
	RatesCreatedTotal      prometheus.CounterVec
	RatesDeactivatedTotal  prometheus.CounterVec

	BatchShipmentsProcessedTotal prometheus.CounterVec
	BatchDuration                prometheus.HistogramVec
}

func NewTariffMetrics() *TariffMetrics {
	return &TariffMetrics{
		ResolutionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tariff_resolutions_total",
				Help: "Tariff resolutions by calculation method",
			},
			[]string{"method", "origin", "destination"},
		),

		TariffAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tariff_amount_total",
				Help: "Total tariff amount produced, by calculation method and currency",
			},
			[]string{"method", "currency"},
		),

		ResolveDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tariff_resolve_duration_seconds",
				Help:    "Duration of a single resolve and evaluate pass",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),

		ConflictsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tariff_rate_conflicts_rejected_total",
				Help: "Rate writes rejected by the conflict validator",
			},
			[]string{"origin", "destination"},
		),

		RatesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tariff_rates_created_total",
				Help: "Rates admitted into the store",
			},
			[]string{"origin", "destination"},
		),

		RatesDeactivatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tariff_rates_deactivated_total",
				Help: "Rates soft-deactivated",
			},
			[]string{"origin", "destination"},
		),

		BatchShipmentsProcessedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tariff_batch_shipments_processed_total",
				Help: "Shipments handled by batch recalculation, by outcome",
			},
			[]string{"outcome"},
		),

		BatchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tariff_batch_duration_seconds",
				Help:    "Duration of batch recalculation jobs",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
			},
			[]string{"trigger"},
		),
	}
}

func (m *TariffMetrics) ObserveResolution(method, origin, destination, currency string, amount float64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(method, origin, destination).Inc()
	m.TariffAmountTotal.WithLabelValues(method, currency).Add(amount)
	m.ResolveDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *TariffMetrics) ObserveConflictRejected(origin, destination string) {
	if m == nil {
		return
	}
	m.ConflictsRejectedTotal.WithLabelValues(origin, destination).Inc()
}

func (m *TariffMetrics) ObserveRateCreated(origin, destination string) {
	if m == nil {
		return
	}
	m.RatesCreatedTotal.WithLabelValues(origin, destination).Inc()
}

func (m *TariffMetrics) ObserveRateDeactivated(origin, destination string) {
	if m == nil {
		return
	}
	m.RatesDeactivatedTotal.WithLabelValues(origin, destination).Inc()
}

func (m *TariffMetrics) ObserveBatchShipment(outcome string) {
	if m == nil {
		return
	}
	m.BatchShipmentsProcessedTotal.WithLabelValues(outcome).Inc()
}

func (m *TariffMetrics) ObserveBatchDuration(trigger string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.BatchDuration.WithLabelValues(trigger).Observe(elapsed.Seconds())
}
