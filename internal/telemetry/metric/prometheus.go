package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bigsum"

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	// Operand metrics
	OperandsAccepted prometheus.Counter
	OperandsRejected *prometheus.CounterVec
	OperandDigits    prometheus.Histogram

	// Result metrics
	SumsTotal    *prometheus.CounterVec
	ResultDigits prometheus.Histogram

	// Session metrics
	SessionsTotal *prometheus.CounterVec
}

// digitBuckets covers 1 to 1000+ significant digits.
var digitBuckets = []float64{1, 10, 20, 50, 100, 250, 500, 1000, 2000}

// NewRegistry creates the metrics and registers them with a private registry.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		OperandsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operands_accepted_total",
			Help:      "Operand lines accepted after validation and the digit limit.",
		}),
		OperandsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operands_rejected_total",
			Help:      "Operand lines rejected, by reason.",
		}, []string{"reason"}),
		OperandDigits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operand_digits",
			Help:      "Significant digits of accepted operands.",
			Buckets:   digitBuckets,
		}),
		SumsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sums_total",
			Help:      "Sums computed, by arithmetic path.",
		}, []string{"path"}),
		ResultDigits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "result_digits",
			Help:      "Significant digits of computed sums.",
			Buckets:   digitBuckets,
		}),
		SessionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Sessions finished, by outcome.",
		}, []string{"outcome"}),
	}

	r.reg.MustRegister(
		r.OperandsAccepted,
		r.OperandsRejected,
		r.OperandDigits,
		r.SumsTotal,
		r.ResultDigits,
		r.SessionsTotal,
	)
	return r
}

// Gatherer exposes the underlying registry for export and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics to path in Prometheus text format.
// The file is written to a temporary name and renamed into place.
func (r *Registry) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
