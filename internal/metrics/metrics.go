// Package metrics exposes inventory counters and gauges to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"

	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type Recorder struct {
	mutations          *prometheus.CounterVec
	validationFailures prometheus.Counter
	products           prometheus.Gauge
	inventoryValue     prometheus.Gauge
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "product_mutations_total",
			Help:      "Store mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		validationFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "draft_validation_failures_total",
			Help:      "Drafts rejected by validation on save.",
		}),
		products: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "products",
			Help:      "Products currently in the store.",
		}),
		inventoryValue: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "value",
			Help:      "Sum of saved product total costs.",
		}),
	}
}

func (r *Recorder) ObserveMutation(op, outcome string) {
	r.mutations.WithLabelValues(op, outcome).Inc()
}

func (r *Recorder) ObserveValidationFailure() {
	r.validationFailures.Inc()
}

func (r *Recorder) SetInventory(count int, value decimal.Decimal) {
	r.products.Set(float64(count))
	r.inventoryValue.Set(value.InexactFloat64())
}
