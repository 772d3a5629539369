// Package metrics defines the custom Prometheus metrics incremented at the
// HTTP boundary. Registration happens through promauto at package init.
// Queue delivery metrics live with the dispatcher in infrastructure/queue.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contracts"

// ── Contract metrics ──────────────────────────────────────────────────────────

// ContractsCreatedTotal counts newly created contracts.
// Label:
//   - payment_terms: "hourly", "fixed", or "milestone"
var ContractsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of contracts created, by payment terms.",
	},
	[]string{"payment_terms"},
)

// SignaturesTotal counts recorded signatures.
// Label:
//   - result: "pending" (first signature), "active" (final signature),
//     "rejected" (duplicate signer or closed contract)
var SignaturesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signatures_total",
		Help:      "Total number of signature attempts, by result.",
	},
	[]string{"result"},
)

// MilestoneTransitionsTotal counts milestone status changes.
// Label:
//   - status: the new milestone status applied
var MilestoneTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "milestone_transitions_total",
		Help:      "Total number of milestone status changes, by new status.",
	},
	[]string{"status"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationEventsTotal counts notification events accepted at the HTTP
// boundary, after the dispatch to the recipients succeeded.
// Label:
//   - type: the notification event type (e.g. "contract_signed")
var NotificationEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_events_total",
		Help:      "Total number of notification events dispatched, by event type.",
	},
	[]string{"type"},
)
