package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	bookings *prometheus.CounterVec
	logins   *prometheus.CounterVec
	otps     *prometheus.CounterVec
	pruned   prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docslot_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "docslot_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docslot_bookings_total",
			Help: "Slot booking attempts by outcome.",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docslot_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		otps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docslot_otp_events_total",
			Help: "Password reset OTP events.",
		}, []string{"event"}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docslot_ratelimit_windows_pruned_total",
			Help: "Idle login rate limit windows dropped by the maintenance job.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.requests, m.latency, m.bookings, m.logins, m.otps, m.pruned,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware labels by the matched route pattern so ids do not blow up cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Booking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Login(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) OTP(event string) {
	if m == nil {
		return
	}
	m.otps.WithLabelValues(event).Inc()
}

func (m *Metrics) Pruned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pruned.Add(float64(n))
}
