package convert

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "convert"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of conversions, by target ("state" or "tokens") and result.
	Conversions metrics.Counter
	// Size of the decoded binary input, in bytes.
	InputBytes metrics.Histogram
	// Number of unread bytes ignored in permissive mode.
	TrailingBytes metrics.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library
// and registers them with reg. Optionally, labels can be provided along with
// their values ("foo", "fooValue").
func PrometheusMetrics(reg stdprometheus.Registerer, namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}

	conversions := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: MetricsSubsystem,
		Name:      "conversions",
		Help:      "Number of hex to JSON conversions.",
	}, withLabels(labels, "target", "result"))
	inputBytes := stdprometheus.NewHistogramVec(stdprometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: MetricsSubsystem,
		Name:      "input_bytes",
		Help:      "Size of the decoded binary input in bytes.",
		Buckets:   stdprometheus.ExponentialBuckets(16, 4, 8),
	}, withLabels(labels, "target"))
	trailingBytes := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: MetricsSubsystem,
		Name:      "trailing_bytes",
		Help:      "Number of trailing bytes ignored after a top level value.",
	}, labels)
	reg.MustRegister(conversions, inputBytes, trailingBytes)

	return &Metrics{
		Conversions:   prometheus.NewCounter(conversions).With(labelsAndValues...),
		InputBytes:    prometheus.NewHistogram(inputBytes).With(labelsAndValues...),
		TrailingBytes: prometheus.NewCounter(trailingBytes).With(labelsAndValues...),
	}
}

func withLabels(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	return append(append(out, base...), extra...)
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Conversions:   discard.NewCounter(),
		InputBytes:    discard.NewHistogram(),
		TrailingBytes: discard.NewCounter(),
	}
}
