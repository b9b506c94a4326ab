// Package metrics exposes Prometheus counters for the watch
// subcommand's long-running rebuild loop (spec §2's ambient
// observability layer).
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "staticgen"

// Build holds the counters/histogram recorded around each pipeline
// run, whether triggered once by `build` or repeatedly by `watch`.
type Build struct {
	RunsTotal       *prometheus.CounterVec
	FilesProcessed  prometheus.Counter
	ErrorsTotal     *prometheus.CounterVec
	DurationSeconds prometheus.Histogram
}

// NewBuild registers the build metrics against reg. Pass nil to use
// the default (global) registry that promhttp.Handler serves.
func NewBuild(reg prometheus.Registerer) *Build {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Build{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total pipeline runs by outcome.",
		}, []string{"outcome"}),

		FilesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "Total .comp manifests and prebuilt assets processed.",
		}),

		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total build errors by kind.",
		}, []string{"kind"}),

		DurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of one pipeline run.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// RecordRun records one completed run's outcome and duration.
func (b *Build) RecordRun(success bool, seconds float64) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	b.RunsTotal.WithLabelValues(outcome).Inc()
	b.DurationSeconds.Observe(seconds)
}

// Serve starts a /metrics HTTP server on addr and blocks until ctx is
// canceled, then shuts down.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}
