package webapi

import "github.com/amirasaad/coinchat/pkg/domain"

// ChatRequest is the inbound chat message payload.
type ChatRequest struct {
	UserID  *int64 `json:"userId"`
	Message string `json:"message" validate:"required"`
}

// ChatResponse carries the bot's reply plus the deposit event echo, when
// the message produced one. Published reports broker delivery; the local
// queue always reports false.
type ChatResponse struct {
	Reply     string               `json:"reply"`
	Published bool                 `json:"published"`
	Event     *domain.DepositEvent `json:"event,omitempty"`
}

// HealthResponse reports liveness plus the state of the deposit queue.
type HealthResponse struct {
	Status      string `json:"status"`
	GatewayBase string `json:"gatewayBase"`
	QueueDepth  int    `json:"queueDepth"`
}
