package eventbus

import (
	"context"
	"log/slog"

	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/dto"
)

// DepositClient is the slice of the gateway client the worker needs.
type DepositClient interface {
	DepositFiat(ctx context.Context, req dto.DepositFiatRequest, auth string) (any, error)
}

// Worker is the single consumer of the deposit queue. Each event is replayed
// against the same gateway deposit endpoint the synchronous path already
// attempted, sharing the event's referenceId as the idempotency key: both
// paths may succeed and deduplication is the gateway's job.
type Worker struct {
	queue  *DepositQueue
	client DepositClient
	logger *slog.Logger
}

// NewWorker wires the worker to its queue and gateway client.
func NewWorker(queue *DepositQueue, client DepositClient, logger *slog.Logger) *Worker {
	return &Worker{
		queue:  queue,
		client: client,
		logger: logger.With("component", "deposit_worker"),
	}
}

// Run drains the queue one event at a time, strict FIFO, until the context
// is canceled. Failed replays are logged and dropped: no retry, no backoff,
// no dead-letter store.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("deposit worker started")
	for {
		event, ok := w.queue.Dequeue(ctx)
		if !ok {
			w.logger.Info("deposit worker stopped", "pending", w.queue.Depth())
			return
		}
		w.process(ctx, event)
	}
}

func (w *Worker) process(ctx context.Context, event domain.DepositEvent) {
	w.logger.Info("processing queued deposit event",
		"reference_id", event.ReferenceID,
		"amount", event.Amount,
		"currency", event.Currency,
	)

	req := dto.DepositFiatRequest{
		Currency:    event.Currency,
		Amount:      event.Amount,
		Method:      event.Method,
		ReferenceID: event.ReferenceID,
		Source:      "chatbot",
	}
	resp, err := w.client.DepositFiat(ctx, req, event.AuthHeader)
	if err != nil {
		w.logger.Error("failed to process queued deposit via gateway",
			"reference_id", event.ReferenceID, "error", err)
		return
	}
	w.logger.Info("queued deposit processed via gateway",
		"reference_id", event.ReferenceID, "response", resp)
}
