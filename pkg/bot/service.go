// Package bot executes classified chat commands against the trading
// gateway and renders the outcome as a user-facing reply. Executors catch
// every downstream failure at their own boundary: the caller always gets a
// reply string, never an error.
package bot

import (
	"context"
	"log/slog"

	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/dto"
	"github.com/amirasaad/coinchat/pkg/intent"
)

// Gateway is the slice of the gateway client the executors need.
type Gateway interface {
	BalanceSummary(ctx context.Context, auth string) (any, error)
	DepositFiat(ctx context.Context, req dto.DepositFiatRequest, auth string) (any, error)
	Buy(ctx context.Context, req dto.BuyOrderRequest, auth string) (any, error)
	Sell(ctx context.Context, req dto.SellOrderRequest, auth string) (any, error)
	Transactions(ctx context.Context, auth string) (any, error)
}

// Resolver resolves an asset symbol to a catalog record and price quote.
type Resolver interface {
	Resolve(ctx context.Context, symbol, auth string) (
		*domain.CurrencyRecord, *domain.PriceQuote, error)
}

// DepositPublisher hands deposit events to the background queue. The
// return value reports whether the event reached a broker; with the local
// queue it is always false.
type DepositPublisher interface {
	Publish(ctx context.Context, event domain.DepositEvent) bool
}

// Reply is the outcome of handling one inbound message.
type Reply struct {
	Text      string
	Published bool
	Event     *domain.DepositEvent
}

// Service dispatches classified commands to their executors.
type Service struct {
	gateway   Gateway
	resolver  Resolver
	publisher DepositPublisher
	logger    *slog.Logger
}

// New wires the chat service to its collaborators.
func New(
	gateway Gateway,
	resolver Resolver,
	publisher DepositPublisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		gateway:   gateway,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger.With("component", "bot"),
	}
}

// HandleMessage classifies the message and runs exactly one executor.
func (s *Service) HandleMessage(ctx context.Context, message, auth string) Reply {
	cmd := intent.Classify(message)
	s.logger.Info("message classified",
		"intent", cmd.Intent,
		"amount", cmd.Amount,
		"symbol", cmd.Symbol,
		"authenticated", auth != "",
	)

	switch cmd.Intent {
	case domain.IntentBalance:
		return s.balance(ctx, auth)
	case domain.IntentDeposit:
		return s.deposit(ctx, cmd, auth)
	case domain.IntentBuy:
		return s.buy(ctx, cmd, auth)
	case domain.IntentSell:
		return s.sell(ctx, cmd, auth)
	case domain.IntentHistory:
		return s.history(ctx, auth)
	case domain.IntentHelp:
		return Reply{Text: helpReply}
	default:
		return Reply{Text: fallbackReply}
	}
}
