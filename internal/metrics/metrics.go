package metrics

import (
	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/prometheus/client_golang/prometheus"
)

type Registry struct {
	reg             *prometheus.Registry
	Orders          prometheus.Counter
	Lines           prometheus.Counter
	DroppedSegments prometheus.Counter
	UnpricedLines   prometheus.Counter
	MatchedNames    prometheus.Counter
	UnmatchedNames  prometheus.Counter
	Duplicates      prometheus.Counter
	Categories      *prometheus.CounterVec
	RunDurationSec  prometheus.Gauge
	LastRunUnix     prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	orders := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_orders_total"})
	lines := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_order_lines_total"})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_dropped_segments_total"})
	unpriced := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_unpriced_lines_total"})
	matched := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_matched_names_total"})
	unmatched := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_unmatched_names_total"})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_duplicate_lines_total"})
	categories := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "ledger_category_lines_total"}, []string{"corner", "category"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{Name: "ledger_run_duration_seconds"})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{Name: "ledger_last_run_timestamp_seconds"})

	r.MustRegister(orders, lines, dropped, unpriced, matched, unmatched, duplicates, categories, duration, lastRun)
	return &Registry{
		reg:             r,
		Orders:          orders,
		Lines:           lines,
		DroppedSegments: dropped,
		UnpricedLines:   unpriced,
		MatchedNames:    matched,
		UnmatchedNames:  unmatched,
		Duplicates:      duplicates,
		Categories:      categories,
		RunDurationSec:  duration,
		LastRunUnix:     lastRun,
	}
}

// ObserveRun records the counts of a finished reconciliation.
func (r *Registry) ObserveRun(rep *dto.Report) {
	r.Orders.Add(float64(rep.Orders))
	r.Lines.Add(float64(rep.ExplodedLines))
	r.DroppedSegments.Add(float64(rep.DroppedSegments))
	r.UnpricedLines.Add(float64(rep.UnpricedLines))
	r.MatchedNames.Add(float64(rep.MatchedNames))
	r.UnmatchedNames.Add(float64(len(rep.UnmatchedNames)))
	r.Duplicates.Add(float64(rep.Duplicates))
	for c, n := range rep.ByCategory {
		r.Categories.WithLabelValues(rep.Corner.Name, c).Add(float64(n))
	}
	r.RunDurationSec.Set(rep.Duration.Seconds())
	r.LastRunUnix.SetToCurrentTime()
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
