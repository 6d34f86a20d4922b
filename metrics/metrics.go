// Package metrics instruments one run of the MWDS search for node-exporter
// textfile-collector consumption. The search core itself never touches
// Prometheus — it has no mid-flight state worth scraping (the core's loop
// is synchronous, single-pass, anytime) — so this package is a one-shot
// summary dump wired up by cmd/mwds, grounded on the registerer-passed-in
// pattern used throughout flare-foundation-go-flare's snow/networking
// components.
package metrics

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Run holds the collectors for a single search invocation. A fresh Run
// (and its own Registry) is created per cmd/mwds process; there is no
// shared process-wide registry to avoid duplicate-registration panics
// across repeated test invocations.
type Run struct {
	registry *prometheus.Registry

	iterations     prometheus.Counter
	bestWeight     prometheus.Gauge
	searchDuration prometheus.Gauge
	greedyDuration prometheus.Gauge
}

// NewRun constructs and registers the collectors for one search run.
func NewRun() *Run {
	r := &Run{
		registry: prometheus.NewRegistry(),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mwds_search_iterations_total",
			Help: "Number of outer CC2FS loop iterations executed.",
		}),
		bestWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mwds_search_best_weight",
			Help: "Total weight of the best dominating set found.",
		}),
		searchDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mwds_search_duration_seconds",
			Help: "Wall-clock duration of the full search run.",
		}),
		greedyDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mwds_search_greedy_duration_seconds",
			Help: "Wall-clock duration of the initial greedy cover pass.",
		}),
	}
	r.registry.MustRegister(r.iterations, r.bestWeight, r.searchDuration, r.greedyDuration)
	return r
}

// AddIteration increments the outer-loop iteration counter by one.
func (r *Run) AddIteration() { r.iterations.Inc() }

// AddIterations increments the outer-loop iteration counter by n, for
// recording a cc2fs.Result's total iteration count in one call.
func (r *Run) AddIterations(n int64) { r.iterations.Add(float64(n)) }

// SetBestWeight records the final reported weight of S*.
func (r *Run) SetBestWeight(w int64) { r.bestWeight.Set(float64(w)) }

// SetSearchDuration records the total wall-clock time spent in cc2fs.Run.
func (r *Run) SetSearchDuration(seconds float64) { r.searchDuration.Set(seconds) }

// SetGreedyDuration records the wall-clock time spent in the initial
// greedy-cover pass, measured separately so an operator can see how much
// of the budget init_greedy itself consumed.
func (r *Run) SetGreedyDuration(seconds float64) { r.greedyDuration.Set(seconds) }

// WriteTextfile dumps all registered metrics in the Prometheus textfile
// exposition format to path, suitable for node_exporter's textfile
// collector directory.
func (r *Run) WriteTextfile(path string) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
