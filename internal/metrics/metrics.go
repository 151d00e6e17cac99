package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/sinkhole_navigator/internal/models"
)

const namespace = "sinkhole_navigator"

// Collector - метрики Prometheus сервиса. Методы безопасны для nil-получателя.
type Collector struct {
	gatherer prometheus.Gatherer

	routePlans          *prometheus.CounterVec
	hazardsAvoided      prometheus.Counter
	locationChecks      *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewCollector регистрирует метрики в переданном реестре
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		gatherer: reg,
		routePlans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "route_plans_total",
				Help:      "Total number of planned routes by route type and outcome",
			},
			[]string{"route_type", "outcome"},
		),
		hazardsAvoided: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "hazards_avoided_total",
				Help:      "Total number of hazard zones reported as avoided",
			},
		),
		locationChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "location_checks_total",
				Help:      "Total number of location risk assessments",
			},
			[]string{"risk_level", "dangerous"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}

	reg.MustRegister(
		c.routePlans,
		c.hazardsAvoided,
		c.locationChecks,
		c.httpRequestsTotal,
		c.httpRequestDuration,
	)
	return c
}

func (c *Collector) ObserveRoutePlan(plan *models.RoutePlan) {
	if c == nil || plan == nil {
		return
	}
	c.routePlans.WithLabelValues(string(plan.RouteType), string(plan.Outcome)).Inc()
	c.hazardsAvoided.Add(float64(len(plan.AvoidedHazards)))
}

func (c *Collector) ObserveLocationCheck(risk *models.LocationRisk) {
	if c == nil || risk == nil {
		return
	}
	dangerous := strconv.FormatBool(risk.Dangerous())
	c.locationChecks.WithLabelValues(risk.RiskLevel, dangerous).Inc()
}

// Middleware считает запросы и их длительность по шаблону маршрута gin
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if c == nil {
			ctx.Next()
			return
		}
		start := time.Now()
		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		c.httpRequestsTotal.WithLabelValues(ctx.Request.Method, endpoint, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpRequestDuration.WithLabelValues(ctx.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает метрики в формате Prometheus
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
