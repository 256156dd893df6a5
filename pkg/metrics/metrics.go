// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the commission domain.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for the service
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec

	CommissionsPosted   prometheus.Counter
	WithdrawalsSettled  prometheus.Counter
	LedgerDriftDetected prometheus.Counter
}

// New registers and returns the service metrics
func New() *Metrics {
	return &Metrics{
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, path and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		CommissionsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "commissions_posted_total",
			Help: "Sales attributed and credited to the ledger",
		}),
		WithdrawalsSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "withdrawals_settled_total",
			Help: "Withdrawal requests marked paid",
		}),
		LedgerDriftDetected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_drift_detected_total",
			Help: "Balances found out of sync with the transaction log",
		}),
	}
}

// Middleware instruments every request with duration and count
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(labels...).Inc()
			return err
		}
	}
}

// Handler serves the Prometheus scrape endpoint
func (m *Metrics) Handler() echo.HandlerFunc {
	h := promhttp.Handler()
	return func(c echo.Context) error {
		h.ServeHTTP(c.Response(), c.Request())
		return nil
	}
}
