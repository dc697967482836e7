package initializer

import (
	"log/slog"

	"github.com/amirasaad/coinchat/infra/eventbus"
	"github.com/amirasaad/coinchat/infra/gateway"
	"github.com/amirasaad/coinchat/pkg/bot"
	"github.com/amirasaad/coinchat/pkg/config"
	"github.com/amirasaad/coinchat/pkg/pricing"
)

// Deps holds the wired application dependencies.
type Deps struct {
	Logger   *slog.Logger
	Gateway  *gateway.Client
	Queue    *eventbus.DepositQueue
	Worker   *eventbus.Worker
	Resolver *pricing.Resolver
	Bot      *bot.Service
}

// InitializeDependencies builds the full dependency graph: logger, gateway
// client, deposit queue plus its worker, price resolver, and the bot service
// on top. The worker is returned unstarted; the caller owns its goroutine
// and lifetime.
func InitializeDependencies(cfg *config.App) *Deps {
	logger := setupLogger(cfg.Log)

	gatewayClient := gateway.New(cfg.Gateway, logger)
	queue := eventbus.NewDepositQueue(logger)
	worker := eventbus.NewWorker(queue, gatewayClient, logger)
	resolver := pricing.NewResolver(gatewayClient, logger)
	botSvc := bot.New(gatewayClient, resolver, queue, logger)

	logger.Info("dependencies initialized",
		"gateway_base", cfg.Gateway.Base,
		"env", cfg.Env,
	)

	return &Deps{
		Logger:   logger,
		Gateway:  gatewayClient,
		Queue:    queue,
		Worker:   worker,
		Resolver: resolver,
		Bot:      botSvc,
	}
}
