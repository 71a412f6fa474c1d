package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobboard"

// Recorder owns the service's collectors and the registry they live in.
type Recorder struct {
	registry *prometheus.Registry

	recommendations    *prometheus.CounterVec
	recommendLatency   prometheus.Histogram
	recommendResults   prometheus.Histogram
	httpRequests       *prometheus.CounterVec
	wsClients          prometheus.Gauge
	jobEventsBroadcast *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_requests_total",
			Help:      "Recommendation requests by outcome.",
		}, []string{"outcome"}),
		recommendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Time spent loading inputs and ranking jobs.",
			Buckets:   prometheus.DefBuckets,
		}),
		recommendResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_results",
			Help:      "Number of jobs returned per recommendation.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20},
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status class.",
		}, []string{"method", "status"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_clients",
			Help:      "Connected websocket clients.",
		}),
		jobEventsBroadcast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_events_broadcast_total",
			Help:      "Job events pushed to websocket clients by type.",
		}, []string{"type"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.recommendations,
		r.recommendLatency,
		r.recommendResults,
		r.httpRequests,
		r.wsClients,
		r.jobEventsBroadcast,
	)
	return r
}

func (r *Recorder) ObserveRecommendation(outcome string, took time.Duration, results int) {
	if r == nil {
		return
	}
	r.recommendations.WithLabelValues(outcome).Inc()
	r.recommendLatency.Observe(took.Seconds())
	if outcome == "ok" {
		r.recommendResults.Observe(float64(results))
	}
}

func (r *Recorder) ObserveHTTPRequest(method string, status int) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, statusClass(status)).Inc()
}

func (r *Recorder) SetWSClients(n int) {
	if r == nil {
		return
	}
	r.wsClients.Set(float64(n))
}

func (r *Recorder) ObserveJobEvent(eventType string) {
	if r == nil {
		return
	}
	r.jobEventsBroadcast.WithLabelValues(eventType).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
