package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	likesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kindred",
		Name:      "likes_total",
		Help:      "Total number of like actions recorded",
	})

	matchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kindred",
		Name:      "matches_total",
		Help:      "Total number of new mutual matches",
	})

	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kindred",
		Name:      "calls_total",
		Help:      "Total number of call attempts by type",
	}, []string{"type"})

	signalEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kindred",
		Name:      "signal_events_total",
		Help:      "Total number of relayed signaling events by name",
	}, []string{"event"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kindred",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kindred",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// LikeRecorded counts a like action and, when it completed a pair, the match.
func LikeRecorded(newlyMutual bool) {
	likesTotal.Inc()
	if newlyMutual {
		matchesTotal.Inc()
	}
}

// CallRequested counts a call attempt by type.
func CallRequested(callType string) {
	callsTotal.WithLabelValues(callType).Inc()
}

// SignalEmitted counts a relayed signaling event.
func SignalEmitted(event string) {
	signalEventsTotal.WithLabelValues(event).Inc()
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware records request metrics with Prometheus labels.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": strconv.Itoa(rec.status),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
