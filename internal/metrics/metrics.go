// Package metrics provides prometheus histograms for the two
// lifecycle phases plus a /healthz and /metrics HTTP server, built on
// the promhttp.Handler() pattern.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric the worker emits, registered against a
// dedicated prometheus.Registry rather than the global default so
// cmd/consumer and cmd/indexer each get a clean set.
type Registry struct {
	reg *prometheus.Registry

	AssembleDuration *prometheus.HistogramVec
	SubmitDuration   *prometheus.HistogramVec
	EventsTotal      *prometheus.CounterVec
	FailuresTotal    *prometheus.CounterVec
	IndexerLag       prometheus.Gauge
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		AssembleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "solana_nfts",
			Name:      "assemble_duration_seconds",
			Help:      "Time to assemble a pending transaction, by event kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		SubmitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "solana_nfts",
			Name:      "submit_duration_seconds",
			Help:      "Time to submit a signed transaction, by event kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solana_nfts",
			Name:      "events_total",
			Help:      "Outbound events emitted, by kind and event type.",
		}, []string{"kind", "event"}),
		FailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solana_nfts",
			Name:      "failures_total",
			Help:      "Failed events emitted, by kind and reason.",
		}, []string{"kind", "reason"}),
		IndexerLag: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "solana_nfts",
			Name:      "indexer_slot_lag",
			Help:      "Difference between the latest observed slot and the most recently processed one.",
		}),
	}

	reg.MustRegister(r.AssembleDuration, r.SubmitDuration, r.EventsTotal, r.FailuresTotal, r.IndexerLag)
	return r
}

// ObserveAssemble times an assemble-phase call via a deferred closure
// at the caller, e.g. defer metrics.ObserveAssemble(reg, kind, time.Now()).
func ObserveAssemble(r *Registry, kind string, start time.Time) {
	r.AssembleDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func ObserveSubmit(r *Registry, kind string, start time.Time) {
	r.SubmitDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// Server exposes /healthz (liveness only — no dependency pinging, to
// keep the worker's own process health distinct from upstream outages)
// and /metrics on port.
type Server struct {
	http *http.Server
}

func NewServer(reg *Registry, port string) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg.reg, promhttp.HandlerOpts{}))

	return &Server{http: &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
