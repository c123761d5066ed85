package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/controllers"
	"github.com/Rohitsah12/healthFirst/middleware"
)

// SetupPatientRoutes configures patient management routes
func SetupPatientRoutes(app *fiber.App) {
	patient := app.Group("/patients", middleware.Protected())
	patient.Get("/", controllers.GetPatients)
	patient.Post("/", controllers.CreatePatient)
	patient.Get("/:id", controllers.GetPatient)
	patient.Patch("/:id", controllers.UpdatePatient)
	patient.Delete("/:id", controllers.DeletePatient)
	patient.Get("/:id/history", controllers.GetPatientHistory)
}
