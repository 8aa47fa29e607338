package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reservation outcomes
const (
	OutcomeReserved      = "reserved"
	OutcomeReplayed      = "replayed"
	OutcomeAlreadyBooked = "already_booked"
	OutcomeInvalid       = "invalid"
	OutcomeNotFound      = "not_found"
	OutcomeError         = "error"
)

// Cancellation outcomes
const (
	OutcomeCancelled = "cancelled"
	OutcomeNoop      = "noop"
)

// Metrics owns a private registry. A nil *Metrics records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestTotal       *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	reservations       *prometheus.CounterVec
	cancellations      *prometheus.CounterVec
	integrityConflicts prometheus.Counter
	cacheLookups       *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	reservations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_reservations_total",
		Help: "Reservation attempts by outcome",
	}, []string{"outcome"})

	cancellations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_cancellations_total",
		Help: "Cancellation requests by outcome",
	}, []string{"outcome"})

	integrityConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduling_integrity_conflicts_total",
		Help: "Slots observed with more than one active booking",
	})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_window_cache_lookups_total",
		Help: "Window cache lookups by result",
	}, []string{"result"})

	registry.MustRegister(
		requestTotal,
		requestDuration,
		reservations,
		cancellations,
		integrityConflicts,
		cacheLookups,
		prometheus.NewGoCollector(),
	)

	return &Metrics{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		reservations:       reservations,
		cancellations:      cancellations,
		integrityConflicts: integrityConflicts,
		cacheLookups:       cacheLookups,
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) Reservation(outcome string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Cancellation(outcome string) {
	if m == nil {
		return
	}
	m.cancellations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IntegrityConflicts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.integrityConflicts.Add(float64(n))
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// Counters exposed for assertions in tests.

func (m *Metrics) ReservationCounter(outcome string) prometheus.Counter {
	return m.reservations.WithLabelValues(outcome)
}

func (m *Metrics) CancellationCounter(outcome string) prometheus.Counter {
	return m.cancellations.WithLabelValues(outcome)
}

func (m *Metrics) IntegrityConflictCounter() prometheus.Counter {
	return m.integrityConflicts
}

func (m *Metrics) CacheLookupCounter(hit bool) prometheus.Counter {
	if hit {
		return m.cacheLookups.WithLabelValues("hit")
	}
	return m.cacheLookups.WithLabelValues("miss")
}
