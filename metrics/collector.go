// Package metrics exports sampling statistics in Prometheus format
package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/lixenwraith/orbital/orbital"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orbital"

// Collector records sampler calls on a private registry
// Implements orbital.Observer
type Collector struct {
	registry *prometheus.Registry
	samples  *prometheus.CounterVec
	points   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Sampler calls by kind.",
		}, []string{"kind"}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_points_total",
			Help:      "Points evaluated by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_duration_seconds",
			Help:      "Wall time of one sampler call.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"kind"}),
	}
	c.registry.MustRegister(c.samples, c.points, c.duration)
	return c
}

func (c *Collector) ObserveSample(kind orbital.Kind, points int, elapsed time.Duration) {
	k := kind.String()
	c.samples.WithLabelValues(k).Inc()
	c.points.WithLabelValues(k).Add(float64(points))
	c.duration.WithLabelValues(k).Observe(elapsed.Seconds())
}

// Handler serves the registry in the text exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Metrics server shutdown: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
