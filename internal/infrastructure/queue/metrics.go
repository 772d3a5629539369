package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Delivery metrics live with the dispatcher that drives them; the API-facing
// metrics live in internal/api/metrics.
var (
	// pushAttemptsTotal counts real-time delivery attempts.
	// Label:
	//   - result: "ok", "error", or "dropped" (queue full)
	pushAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "contracts",
			Name:      "push_attempts_total",
			Help:      "Total number of real-time push attempts, by result.",
		},
		[]string{"result"},
	)

	// pushQueueDepth tracks notifications waiting in each delivery worker channel.
	// Label:
	//   - worker_id: numeric worker index (e.g. "0", "1", …)
	pushQueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "contracts",
			Name:      "push_queue_depth",
			Help:      "Current number of notifications pending in each push worker channel.",
		},
		[]string{"worker_id"},
	)
)
