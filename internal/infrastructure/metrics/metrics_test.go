package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/voucherpost/internal/usecase"
)

var _ usecase.Metrics = (*Metrics)(nil)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.VouchersPosted == nil || m.PostingFailures == nil || m.RateResolutions == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.VoucherPosted("PV", 20*time.Millisecond)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecordsDomainEvents(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.VoucherPosted("PV", 10*time.Millisecond)
	m.VoucherPosted("PV", 30*time.Millisecond)
	m.PostingFailed("JV", "unbalanced")
	m.VoucherForwarded("unmatched")
	m.RateResolved("inverse")

	if got := testutil.ToFloat64(m.VouchersPosted.WithLabelValues("PV")); got != 2 {
		t.Fatalf("expected 2 PV postings, got %v", got)
	}
	if got := testutil.ToFloat64(m.PostingFailures.WithLabelValues("JV", "unbalanced")); got != 1 {
		t.Fatalf("expected 1 unbalanced failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.VouchersForwarded.WithLabelValues("unmatched")); got != 1 {
		t.Fatalf("expected 1 forward outcome, got %v", got)
	}
	if got := testutil.ToFloat64(m.RateResolutions.WithLabelValues("inverse")); got != 1 {
		t.Fatalf("expected 1 inverse resolution, got %v", got)
	}
	if got := testutil.CollectAndCount(m.PostingDuration); got != 1 {
		t.Fatalf("expected one duration series, got %d", got)
	}
}

func TestNewTwiceOnSameRegistryPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate registration to panic")
		}
	}()
	New(registry)
}
