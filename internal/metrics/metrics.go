package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the prometheus collectors for the service.
type Metrics struct {
	registry     *prometheus.Registry
	generations  *prometheus.CounterVec
	bookings     prometheus.Counter
	httpDuration *prometheus.HistogramVec
}

// New creates and registers the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timetable_generations_total",
			Help: "Timetable generation runs by outcome.",
		}, []string{"outcome"}),
		bookings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timetable_bookings_committed_total",
			Help: "Total bookings committed by successful runs.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
	m.registry.MustRegister(m.generations, m.bookings, m.httpDuration)
	return m
}

// ObserveGeneration records the outcome of one generation run.
func (m *Metrics) ObserveGeneration(outcome string, committed int) {
	m.generations.WithLabelValues(outcome).Inc()
	if committed > 0 {
		m.bookings.Add(float64(committed))
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware captures per-request latency.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.httpDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
