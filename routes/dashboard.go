package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/controllers"
	"github.com/Rohitsah12/healthFirst/middleware"
)

// SetupDashboardRoutes configures the dashboard overview route
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard", middleware.Protected())
	dashboard.Get("/", controllers.GetDashboardOverview)
}
