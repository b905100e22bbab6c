package metrics

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voucherpost"

// Metrics holds posting and approval metrics. It implements usecase.Metrics.
type Metrics struct {
	// Posting metrics
	VouchersPosted  *prometheus.CounterVec
	PostingDuration *prometheus.HistogramVec
	PostingFailures *prometheus.CounterVec

	// Approval metrics
	VouchersForwarded *prometheus.CounterVec

	// Reference data metrics
	RateResolutions *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		VouchersPosted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vouchers_posted_total",
				Help:      "Total number of vouchers posted by type",
			},
			[]string{"voucher_type"},
		),
		PostingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "posting_duration_seconds",
				Help:      "Duration of voucher posting including retries",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"voucher_type"},
		),
		PostingFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "posting_failures_total",
				Help:      "Total number of rejected or failed postings by type and reason",
			},
			[]string{"voucher_type", "reason"},
		),
		VouchersForwarded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vouchers_forwarded_total",
				Help:      "Forward-for-approval outcomes",
			},
			[]string{"outcome"},
		),
		RateResolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_resolutions_total",
				Help:      "Exchange rate resolutions by source",
			},
			[]string{"source"},
		),
	}
}

// VoucherPosted records a successful posting.
func (m *Metrics) VoucherPosted(voucherType string, duration time.Duration) {
	m.VouchersPosted.WithLabelValues(voucherType).Inc()
	m.PostingDuration.WithLabelValues(voucherType).Observe(duration.Seconds())
}

// PostingFailed records a rejected posting.
func (m *Metrics) PostingFailed(voucherType, reason string) {
	m.PostingFailures.WithLabelValues(voucherType, reason).Inc()
}

// VoucherForwarded records a forward outcome.
func (m *Metrics) VoucherForwarded(outcome string) {
	m.VouchersForwarded.WithLabelValues(outcome).Inc()
}

// RateResolved records how a rate was found.
func (m *Metrics) RateResolved(source string) {
	m.RateResolutions.WithLabelValues(source).Inc()
}

// RegisterPoolStats exposes connection pool gauges read from stat on scrape.
func RegisterPoolStats(reg prometheus.Registerer, stat func() *pgxpool.Stat) {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "db_connections_total",
		Help:      "Current number of database connections",
	}, func() float64 { return float64(stat().TotalConns()) })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "db_connections_acquired",
		Help:      "Database connections currently in use",
	}, func() float64 { return float64(stat().AcquiredConns()) })
}
