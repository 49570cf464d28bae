// Package metrics holds the Prometheus metrics of payroll runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Registry is the custom registry; nothing is registered on the global default.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// RecordsParsed counts service records that passed normalization.
var RecordsParsed = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "payroll",
	Name:      "records_parsed_total",
	Help:      "Service records normalized successfully",
})

// RowsSkipped counts dropped rows by reason (invalid_date_encoding, missing_field, ...).
var RowsSkipped = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "payroll",
	Name:      "rows_skipped_total",
	Help:      "Input rows skipped, by reason",
}, []string{"source", "reason"})

var SubstitutionsLoaded = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "payroll",
	Name:      "substitutions_loaded",
	Help:      "Entries in the substitution map of the last run",
})

var EmployeesProcessed = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "payroll",
	Name:      "employees_processed",
	Help:      "Employees in the last run",
})

var CoverPairs = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "payroll",
	Name:      "cover_pairs",
	Help:      "Employee/substitute pairs with redirected pay in the last run",
}, []string{"category"})

var RunDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "payroll",
	Name:      "run_duration_seconds",
	Help:      "Time taken to load, aggregate and tabulate one run",
	Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
})

// Push sends the registry to a Pushgateway.
func Push(url, job string) error {
	return push.New(url, job).Gatherer(Registry).Push()
}
