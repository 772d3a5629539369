package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	pushTimeout    = 5 * time.Second
)

// PushDispatcher routes persisted notifications to a fixed set of delivery
// workers using consistent hashing on the recipient id, guaranteeing
// per-recipient delivery ordering. Delivery is best-effort: a failed push is
// logged and counted, never retried and never surfaced to the producer.
type PushDispatcher struct {
	workers []chan *domain.Notification
	push    ports.RealtimePush
	log     zerolog.Logger
}

// NewPushDispatcher creates a PushDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewPushDispatcher(numWorkers int, push ports.RealtimePush, log zerolog.Logger) *PushDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &PushDispatcher{
		workers: make([]chan *domain.Notification, numWorkers),
		push:    push,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *PushDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its recipient.
// When the worker's buffer is full the notification is dropped rather than
// blocking the producing request; the durable record already exists.
func (d *PushDispatcher) Enqueue(n *domain.Notification) {
	idx := d.shardIndex(n.UserID)
	select {
	case d.workers[idx] <- n:
		pushQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		pushAttemptsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("notification_id", n.ID).
			Str("user_id", n.UserID).
			Int("worker_id", idx).
			Msg("push queue full, notification dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *PushDispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *PushDispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, n)
			pushQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *PushDispatcher) deliver(ctx context.Context, workerID int, n *domain.Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()

	if err := d.push.Send(sendCtx, n.UserID, n); err != nil {
		pushAttemptsTotal.WithLabelValues("error").Inc()
		d.log.Warn().Err(err).
			Str("notification_id", n.ID).
			Str("user_id", n.UserID).
			Int("worker_id", workerID).
			Msg("realtime push failed")
		return
	}
	pushAttemptsTotal.WithLabelValues("ok").Inc()
}
