// Package observability exposes simulation state as Prometheus metrics.
// The collector is a sim.Reporter: it refreshes its gauges once per tick
// from the aggregate status, the slice registry, and the run counters.
package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/slicesim/slicesim/sim"
)

// SimCollector bundles Prometheus metrics for a simulation run.
type SimCollector struct {
	gatherer prometheus.Gatherer

	ConnectedUEs      prometheus.Gauge
	ConnectedByClass  *prometheus.GaugeVec
	SliceRemainingMHz *prometheus.GaugeVec
	AttemptOutcomes   *prometheus.GaugeVec
	Disconnects       prometheus.Gauge
	Tick              prometheus.Gauge

	slices  *sim.SliceRegistry
	metrics *sim.Metrics
}

// NewSimCollector registers simulation metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil. The
// slice registry and run metrics are read at report time; the simulation
// is strictly sequential, so no synchronization is needed.
func NewSimCollector(reg prometheus.Registerer, slices *sim.SliceRegistry, metrics *sim.Metrics) (*SimCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &SimCollector{
		gatherer: gatherer,
		ConnectedUEs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ran_connected_ues",
			Help: "Number of UEs currently holding a connection.",
		}),
		ConnectedByClass: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ran_connected_ues_by_class",
			Help: "Connected UEs keyed by required traffic class.",
		}, []string{"class"}),
		SliceRemainingMHz: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ran_slice_remaining_bandwidth_mhz",
			Help: "Raw unallocated bandwidth per slice pool.",
		}, []string{"slice", "class"}),
		AttemptOutcomes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ran_admission_attempts",
			Help: "Cumulative connection attempts by outcome.",
		}, []string{"outcome"}),
		Disconnects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ran_disconnects",
			Help: "Cumulative churn-driven disconnections.",
		}),
		Tick: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ran_simulation_tick",
			Help: "Most recently completed simulation tick.",
		}),
		slices:  slices,
		metrics: metrics,
	}

	collectors := []prometheus.Collector{
		c.ConnectedUEs, c.ConnectedByClass, c.SliceRemainingMHz,
		c.AttemptOutcomes, c.Disconnects, c.Tick,
	}
	for _, col := range collectors {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register simulation metrics: %w", err)
		}
	}
	return c, nil
}

// ReportTick implements sim.Reporter.
func (c *SimCollector) ReportTick(status sim.TickStatus) {
	c.Tick.Set(float64(status.Tick))
	c.ConnectedUEs.Set(float64(status.Connected))
	for _, class := range sim.SliceClasses {
		c.ConnectedByClass.WithLabelValues(string(class)).Set(float64(status.PerClass[class]))
	}
	for _, slice := range c.slices.All() {
		c.SliceRemainingMHz.WithLabelValues(strconv.Itoa(slice.ID()), string(slice.Class())).
			Set(slice.Remaining())
	}

	c.AttemptOutcomes.WithLabelValues(sim.OutcomeConnected.String()).Set(float64(c.metrics.Connections))
	c.AttemptOutcomes.WithLabelValues(sim.OutcomeNoViableStation.String()).Set(float64(c.metrics.NoViable))
	c.AttemptOutcomes.WithLabelValues(sim.OutcomeNoCapacity.String()).Set(float64(c.metrics.NoCapacity))
	c.AttemptOutcomes.WithLabelValues(sim.OutcomeAllocationRace.String()).Set(float64(c.metrics.RaceFailures))
	c.Disconnects.Set(float64(c.metrics.Disconnects))
}

// Handler returns an HTTP handler serving the collector's metrics.
func (c *SimCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on the given address in a background goroutine.
// The listener runs for the life of the process; simulation runs are short,
// so no graceful shutdown plumbing is carried.
func (c *SimCollector) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Errorf("metrics server: %v", err)
		}
	}()
}
