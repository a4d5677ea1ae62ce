package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/doctors/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/doctors/"+id, nil))
	}

	assert.Contains(t, scrape(t, m), `docslot_http_requests_total{method="GET",route="/api/doctors/:id",status="200"} 2`)
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.Booking("booked")
	m.Booking("slot_taken")
	m.Login("failed")
	m.OTP("verified")
	m.Pruned(3)
	m.Pruned(0)

	out := scrape(t, m)
	assert.Contains(t, out, `docslot_bookings_total{outcome="booked"} 1`)
	assert.Contains(t, out, `docslot_bookings_total{outcome="slot_taken"} 1`)
	assert.Contains(t, out, `docslot_logins_total{outcome="failed"} 1`)
	assert.Contains(t, out, `docslot_otp_events_total{event="verified"} 1`)
	assert.Contains(t, out, "docslot_ratelimit_windows_pruned_total 3")

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.Booking("booked") })
}
