package slackmoji

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slackmoji_client",
			Name:      "requests_total",
			Help:      "Emoji API requests issued, by route.",
		},
		[]string{"route"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slackmoji_client",
			Name:      "request_failures_total",
			Help:      "Emoji API requests that returned an error, by route and failure kind.",
		},
		[]string{"route", "kind"},
	)
)

// observeRequest records one completed round trip for the route.
func observeRequest(route string, err error) {
	requestsTotal.WithLabelValues(route).Inc()
	if err == nil {
		return
	}
	requestFailuresTotal.WithLabelValues(route, failureKind(err)).Inc()
}

func failureKind(err error) string {
	switch {
	case IsRemoteError(err):
		return "remote"
	case IsTransportError(err):
		return "transport"
	default:
		return "other"
	}
}
