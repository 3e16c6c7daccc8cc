package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kova98/redd/enums"
	"github.com/kova98/redd/models"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "redd",
		Name:      "requests_total",
		Help:      "Reddit API requests by method and response code.",
	}, []string{"method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "redd",
		Name:      "request_duration_seconds",
		Help:      "Reddit API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	materializedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "redd",
		Name:      "materialized_total",
		Help:      "Objects materialized from response bodies by kind.",
	}, []string{"kind"})
)

// kindLabel keeps unknown kinds from growing the label set.
func kindLabel(kind enums.Kind) string {
	if models.Registered(kind) {
		return string(kind)
	}
	return "unknown"
}
