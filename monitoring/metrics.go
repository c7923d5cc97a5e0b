package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	FollowsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "follows_total",
			Help: "Total number of follow edges created",
		},
	)

	LikesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "likes_total",
			Help: "Total number of likes recorded",
		},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of notifications fanned out",
		},
		[]string{"verb"},
	)
)

func init() {
	prometheus.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		FollowsTotal,
		LikesTotal,
		NotificationsTotal,
	)
}
