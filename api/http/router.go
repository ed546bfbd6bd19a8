package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/botivate/troubleshoot/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. authMW may be nil, in
// which case conversations are anonymous and share one owner.
func Register(app *fiber.App, health *handlers.HealthHandler, troubleshoot *handlers.TroubleshootHandler, conversations *handlers.ConversationHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/troubleshoot", troubleshoot.Answer)

	var cg fiber.Router
	if authMW != nil {
		cg = v1.Group("/conversations", authMW)
	} else {
		cg = v1.Group("/conversations")
	}
	cg.Post("/", conversations.Start)
	cg.Get("/", conversations.List)
	cg.Get("/:id", conversations.Get)
	cg.Delete("/:id", conversations.Delete)
	cg.Post("/:id/messages", conversations.Ask)
}
