package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder exports simulation progress as prometheus collectors.
type Recorder struct {
	generations prometheus.Counter
	population  prometheus.Gauge
	tickSeconds prometheus.Histogram
	toggles     prometheus.Counter
	resets      prometheus.Counter
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Total number of generations computed",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Number of live cells in the current generation",
		}),
		tickSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "life_tick_duration_seconds",
			Help:    "Time spent computing one generation",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		toggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_toggles_total",
			Help: "Total number of cells flipped by hand",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_resets_total",
			Help: "Total number of random reseeds",
		}),
	}
	reg.MustRegister(r.generations, r.population, r.tickSeconds, r.toggles, r.resets)
	return r
}

// ObserveTick records one computed generation.
func (r *Recorder) ObserveTick(population int, d time.Duration) {
	r.generations.Inc()
	r.population.Set(float64(population))
	r.tickSeconds.Observe(d.Seconds())
}

// ObserveToggle records a manual cell flip.
func (r *Recorder) ObserveToggle(population int) {
	r.toggles.Inc()
	r.population.Set(float64(population))
}

// ObserveReset records a reseed or clear.
func (r *Recorder) ObserveReset(population int) {
	r.resets.Inc()
	r.population.Set(float64(population))
}

// Handler serves the metrics gathered by g in the text exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	srv := &http.Server{Addr: addr, Handler: Handler(g), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Printf("metrics endpoint listening on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
