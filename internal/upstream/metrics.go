package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestCount = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "How many requests were sent to the upstream API, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method"},
)

var retryCount = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "upstream_retries_total",
		Help: "How many upstream calls were retried after a transient failure.",
	},
)
