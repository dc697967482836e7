// Package eventbus carries deposit events from the chat path to the single
// background worker that replays them against the gateway.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/coinchat/pkg/domain"
)

// DepositQueue is an unbounded in-memory FIFO of deposit events, written by
// concurrent request handlers and drained by exactly one worker. It is owned
// by the service lifecycle and injected where needed, never global state.
// Nothing is persisted: a process restart discards pending events.
type DepositQueue struct {
	mu     sync.Mutex
	items  []domain.DepositEvent
	wake   chan struct{}
	logger *slog.Logger
}

// NewDepositQueue creates an empty queue.
func NewDepositQueue(logger *slog.Logger) *DepositQueue {
	return &DepositQueue{
		wake:   make(chan struct{}, 1),
		logger: logger.With("component", "deposit_queue"),
	}
}

// Publish enqueues the event and reports whether it reached a broker.
// There is no broker integration: events are only queued locally, so
// Publish never blocks, always succeeds, and always returns false.
func (q *DepositQueue) Publish(_ context.Context, event domain.DepositEvent) bool {
	q.mu.Lock()
	q.items = append(q.items, event)
	depth := len(q.items)
	q.mu.Unlock()

	q.logger.Debug("deposit event queued",
		"reference_id", event.ReferenceID, "depth", depth)

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return false
}

// Dequeue pops the oldest event, blocking until one is available or the
// context is canceled. The second return value is false on cancellation.
func (q *DepositQueue) Dequeue(ctx context.Context) (domain.DepositEvent, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			event := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return event, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return domain.DepositEvent{}, false
		case <-q.wake:
		}
	}
}

// Depth returns the number of pending events.
func (q *DepositQueue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
