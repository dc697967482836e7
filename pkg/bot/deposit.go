package bot

import (
	"context"
	"fmt"

	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/dto"
	"github.com/google/uuid"
)

// depositMethod tags gateway transactions originated by the chat surface.
const depositMethod = "CHATBOT"

// deposit runs the dual-path deposit: the event is queued for the
// background worker, and independently a best-effort synchronous gateway
// call enacts the deposit right away. Both paths share one referenceId as
// the idempotency key; deduplication is the gateway's job. The reply
// reports both outcomes.
func (s *Service) deposit(
	ctx context.Context,
	cmd domain.ParsedCommand,
	auth string,
) Reply {
	if auth == "" {
		return Reply{Text: loginPrompt}
	}

	referenceID := uuid.NewString()
	event := domain.DepositEvent{
		Type:        domain.DepositEventType,
		Amount:      cmd.Amount,
		Currency:    cmd.Symbol,
		Method:      depositMethod,
		ReferenceID: referenceID,
		AuthHeader:  auth,
	}
	published := s.publisher.Publish(ctx, event)

	req := dto.DepositFiatRequest{
		Currency:    cmd.Symbol,
		Amount:      cmd.Amount,
		Method:      depositMethod,
		ReferenceID: referenceID,
		Source:      "chatbot",
	}
	resp, err := s.gateway.DepositFiat(ctx, req, auth)

	var text string
	if err != nil {
		s.logger.Warn("synchronous deposit call failed",
			"reference_id", referenceID, "error", err)
		text = fmt.Sprintf(
			"Deposit event published (%s). Executing the deposit against the "+
				"gateway failed: %v. It will still be processed in background.",
			publishNote(published), err)
	} else {
		text = fmt.Sprintf("Deposit event published (%s) and processed. Gateway: %s",
			publishNote(published), renderRaw(resp))
	}

	return Reply{Text: text, Published: published, Event: &event}
}

func publishNote(published bool) string {
	if published {
		return "via broker"
	}
	return "queued locally"
}
