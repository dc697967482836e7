package webapi

import (
	"context"

	"github.com/amirasaad/coinchat/pkg/bot"
	"github.com/gofiber/fiber/v2"
)

// ChatService is the slice of the bot the HTTP layer needs.
type ChatService interface {
	HandleMessage(ctx context.Context, message, auth string) bot.Reply
}

// ChatRoutes registers the chat endpoint.
func ChatRoutes(app *fiber.App, svc ChatService) {
	app.Post("/chatbot/message", HandleChatMessage(svc))
}

// HandleChatMessage binds the chat payload, forwards the caller's
// Authorization header verbatim, and renders the bot's reply. The bot never
// returns an error: downstream failures arrive already folded into the
// reply text.
func HandleChatMessage(svc ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[ChatRequest](c)
		if err != nil {
			return nil // Error already written by BindAndValidate
		}

		auth := c.Get(fiber.HeaderAuthorization)
		reply := svc.HandleMessage(c.Context(), input.Message, auth)

		resp := ChatResponse{
			Reply:     reply.Text,
			Published: reply.Published,
		}
		if reply.Event != nil {
			// Echo the event without the credential it carries internally.
			event := *reply.Event
			event.AuthHeader = ""
			resp.Event = &event
		}
		return c.JSON(resp)
	}
}
