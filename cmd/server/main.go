package main

import (
	"context"
	"fmt"

	"github.com/amirasaad/coinchat/infra/initializer"
	"github.com/amirasaad/coinchat/pkg/config"
	"github.com/amirasaad/coinchat/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps := initializer.InitializeDependencies(cfg)
	logger := deps.Logger

	// The deposit worker lives as long as the server does.
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	go deps.Worker.Run(workerCtx)

	fiberApp := webapi.SetupApp(cfg, deps.Bot, deps.Queue)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"gateway_base", cfg.Gateway.Base,
	)

	return fiberApp.Listen(addr)
}
