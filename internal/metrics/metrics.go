package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Routing Metrics
	InboundEventsTotal       *prometheus.CounterVec
	MembershipLookupsTotal   *prometheus.CounterVec
	MembershipLookupDuration *prometheus.HistogramVec
	RoutingDecisionsTotal    *prometheus.CounterVec
	ResolveDuration          prometheus.Histogram
	ForwardsTotal            *prometheus.CounterVec
	ForwardDuration          prometheus.Histogram
	KeywordTriggersTotal     prometheus.Counter

	// System Metrics
	ServiceUptime    prometheus.Gauge
	ServiceVersion   *prometheus.GaugeVec
	Goroutines       prometheus.Gauge
	MemoryUsageBytes *prometheus.GaugeVec
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsrouter_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smsrouter_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "smsrouter_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		// Routing Metrics
		InboundEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsrouter_inbound_events_total",
				Help: "Total number of inbound webhook events by outcome",
			},
			[]string{"outcome"},
		),
		MembershipLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsrouter_membership_lookups_total",
				Help: "Total number of list membership lookups",
			},
			[]string{"list", "status"},
		),
		MembershipLookupDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smsrouter_membership_lookup_duration_seconds",
				Help:    "Duration of list roster fetches in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"list"},
		),
		RoutingDecisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsrouter_routing_decisions_total",
				Help: "Total number of routing decisions by area",
			},
			[]string{"area", "fallback"},
		),
		ResolveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "smsrouter_resolve_duration_seconds",
				Help:    "Duration of destination resolution across all lists in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		ForwardsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsrouter_forwards_total",
				Help: "Total number of forwarded messages by provider outcome",
			},
			[]string{"status"},
		),
		ForwardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "smsrouter_forward_duration_seconds",
				Help:    "Duration of provider send calls in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		KeywordTriggersTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "smsrouter_keyword_triggers_total",
				Help: "Total number of inbound messages containing the autoresponder trigger",
			},
		),

		// System Metrics
		ServiceUptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "smsrouter_service_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
		ServiceVersion: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smsrouter_service_version_info",
				Help: "Service version information (labels: version, commit, build_date)",
			},
			[]string{"version", "commit", "build_date"},
		),
		Goroutines: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "smsrouter_goroutines",
				Help: "Number of goroutines currently running",
			},
		),
		MemoryUsageBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smsrouter_memory_usage_bytes",
				Help: "Memory usage in bytes",
			},
			[]string{"type"},
		),
	}
}

// --- Recording Methods ---

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordInboundEvent(outcome string) {
	m.InboundEventsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordMembershipLookup(list, status string, duration time.Duration) {
	m.MembershipLookupsTotal.WithLabelValues(list, status).Inc()
	m.MembershipLookupDuration.WithLabelValues(list).Observe(duration.Seconds())
}

func (m *Metrics) RecordRoutingDecision(area string, fallback bool, duration time.Duration) {
	label := "false"
	if fallback {
		label = "true"
	}
	m.RoutingDecisionsTotal.WithLabelValues(area, label).Inc()
	m.ResolveDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordForward(status string, duration time.Duration) {
	m.ForwardsTotal.WithLabelValues(status).Inc()
	m.ForwardDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordKeywordTrigger() {
	m.KeywordTriggersTotal.Inc()
}

// UpdateSystemMetrics updates system-level metrics (goroutines, uptime, memory).
func (m *Metrics) UpdateSystemMetrics(uptime time.Duration, memStats *runtime.MemStats) {
	m.ServiceUptime.Set(uptime.Seconds())
	m.Goroutines.Set(float64(runtime.NumGoroutine()))

	m.MemoryUsageBytes.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	m.MemoryUsageBytes.WithLabelValues("sys").Set(float64(memStats.Sys))
	m.MemoryUsageBytes.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
	m.MemoryUsageBytes.WithLabelValues("heap_sys").Set(float64(memStats.HeapSys))
}

// SetServiceVersion sets the service version information (only once per start).
func (m *Metrics) SetServiceVersion(version, commit, buildDate string) {
	m.ServiceVersion.WithLabelValues(version, commit, buildDate).Set(1)
}
