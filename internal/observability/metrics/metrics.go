package metrics

import "github.com/prometheus/client_golang/prometheus"

// DirectoryMetrics exposes counters/histograms for the doctor directory.
type DirectoryMetrics struct {
	feedLoadsTotal  *prometheus.CounterVec
	recordsLoaded   prometheus.Gauge
	requestDuration *prometheus.HistogramVec
}

func NewDirectoryMetrics(reg prometheus.Registerer) *DirectoryMetrics {
	m := &DirectoryMetrics{
		feedLoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctor_finder",
			Subsystem: "feed",
			Name:      "loads_total",
			Help:      "Doctor feed load attempts by outcome",
		}, []string{"status"}),
		recordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "doctor_finder",
			Subsystem: "feed",
			Name:      "records",
			Help:      "Number of doctor records currently stored",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "doctor_finder",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.feedLoadsTotal, m.recordsLoaded, m.requestDuration)
	return m
}

func (m *DirectoryMetrics) ObserveFeedLoad(status string, records int) {
	if m == nil {
		return
	}
	m.feedLoadsTotal.WithLabelValues(status).Inc()
	m.recordsLoaded.Set(float64(records))
}

func (m *DirectoryMetrics) ObserveRequest(route, method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method, status).Observe(seconds)
}
