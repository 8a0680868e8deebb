package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(HTTPDuration)
}

// Metrics records a counter increment and a latency observation per request.
// Observation happens in a defer so requests that panic are still counted;
// the panic is re-raised for the recovery above, which answers 500.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			status := c.Writer.Status()
			rec := recover()
			if rec != nil {
				status = http.StatusInternalServerError
			}

			path := c.FullPath()
			if path == "" {
				path = c.Request.URL.Path
			}
			HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
			HTTPDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
