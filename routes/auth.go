package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/controllers"
	"github.com/Rohitsah12/healthFirst/middleware"
	"github.com/Rohitsah12/healthFirst/models"
)

// SetupAuthRoutes configures staff authentication routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/login", controllers.Login)
	auth.Post("/register", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.Register)
	auth.Get("/me", middleware.Protected(), controllers.Me)
}
