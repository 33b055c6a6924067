package middleware

import (
	"net/http"
	"strconv"
	"time"

	"doctor-finder/internal/observability/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs each request and records its latency.
type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.DirectoryMetrics
}

func NewLoggingMiddleware(log *logrus.Logger, metrics *metrics.DirectoryMetrics) *LoggingMiddleware {
	return &LoggingMiddleware{
		log:     log,
		metrics: metrics,
	}
}

func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		route := req.URL.Path
		if current := mux.CurrentRoute(req); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		elapsed := time.Since(start)
		m.metrics.ObserveRequest(route, req.Method, strconv.Itoa(rec.status), elapsed.Seconds())
		m.log.WithFields(logrus.Fields{
			"method":   req.Method,
			"route":    route,
			"status":   rec.status,
			"duration": elapsed.String(),
		}).Info("HTTP request")
	})
}
