// Package metrics holds the Prometheus collectors of the orders service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orders"

// Publish results recorded by EventPublished.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics groups the HTTP and domain collectors. All collectors are registered on the
// registry passed to New, never on the global one.
type Metrics struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	OrdersCreated     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	EventsEmitted     *prometheus.CounterVec
	EventsDropped     prometheus.Counter
	EventsPublished   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of created orders.",
		}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Applied order status changes by source and target status.",
		}, []string{"from", "to"}),
		EventsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_events_emitted_total",
			Help:      "Domain events appended to the event log.",
		}, []string{"type"}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_events_dropped_total",
			Help:      "Domain events not offered to the relay because its queue was full.",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_events_published_total",
			Help:      "Domain events handed to the broker by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.Requests,
		m.LatencyMS,
		m.OrdersCreated,
		m.StatusTransitions,
		m.EventsEmitted,
		m.EventsDropped,
		m.EventsPublished,
	)
	return m
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route, status string, latencyMS float64) {
	m.Requests.WithLabelValues(method, route, status).Inc()
	m.LatencyMS.WithLabelValues(method, route).Observe(latencyMS)
}

func (m *Metrics) OrderCreated() {
	m.OrdersCreated.Inc()
}

func (m *Metrics) StatusChanged(from, to string) {
	m.StatusTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) EventEmitted(eventType string) {
	m.EventsEmitted.WithLabelValues(eventType).Inc()
}

func (m *Metrics) EventDropped() {
	m.EventsDropped.Inc()
}

func (m *Metrics) EventPublished(result string) {
	m.EventsPublished.WithLabelValues(result).Inc()
}
