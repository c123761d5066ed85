package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/controllers"
	"github.com/Rohitsah12/healthFirst/middleware"
)

// SetupQueueRoutes configures live queue routes
func SetupQueueRoutes(app *fiber.App) {
	queue := app.Group("/queue", middleware.Protected())
	queue.Get("/", controllers.GetActiveQueue)
	queue.Patch("/:id/status", controllers.AdvanceVisitStatus)
}
