package webapi

import (
	"strings"
	"time"

	"github.com/amirasaad/coinchat/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// QueueStats exposes the deposit queue's backlog for health reporting.
type QueueStats interface {
	Depth() int
}

// SetupApp initializes Fiber with the chat routes and the shared
// middleware chain.
func SetupApp(cfg *config.App, svc ChatService, queue QueueStats) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := ErrorToStatusCode(err)
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	// Only the configured frontend and gateway origins may call the API
	// from a browser; credentials ride along for the gateway token.
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins(), ","),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	// Uses X-Forwarded-For header when behind a proxy,
	// falls back to the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(
				c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Coinchat is running! 🚀")
	})

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status:      "ok",
			GatewayBase: cfg.Gateway.Base,
			QueueDepth:  queue.Depth(),
		})
	})

	ChatRoutes(fiberApp, svc)

	return fiberApp
}
