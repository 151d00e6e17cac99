package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestObserveRoutePlan(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveRoutePlan(&models.RoutePlan{
		RouteType:      models.RouteTypeSafe,
		Outcome:        models.OutcomePlanned,
		AvoidedHazards: make([]models.AvoidedHazard, 2),
	})
	c.ObserveRoutePlan(&models.RoutePlan{RouteType: models.RouteTypeDirect, Outcome: models.OutcomeDegraded})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.routePlans.WithLabelValues("safe", "planned")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.routePlans.WithLabelValues("direct", "degraded")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.hazardsAvoided))
}

func TestObserveLocationCheck(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveLocationCheck(&models.LocationRisk{
		Probability:   0.85,
		RiskLevel:     "very_high",
		NearbyHazards: []models.NearbyHazard{{Inside: true}},
	})
	c.ObserveLocationCheck(&models.LocationRisk{RiskLevel: "very_low"})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.locationChecks.WithLabelValues("very_high", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.locationChecks.WithLabelValues("very_low", "false")))
}

func TestNilCollector(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ObserveRoutePlan(&models.RoutePlan{})
		c.ObserveLocationCheck(&models.LocationRisk{})
	})
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewCollector(prometheus.NewRegistry())

	router := gin.New()
	router.Use(c.Middleware())
	router.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(c.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequestsTotal.WithLabelValues("GET", "/ping", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sinkhole_navigator_http_requests_total")
}
