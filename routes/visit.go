package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/controllers"
	"github.com/Rohitsah12/healthFirst/middleware"
)

// SetupVisitRoutes configures appointment and walk-in routes
func SetupVisitRoutes(app *fiber.App) {
	visit := app.Group("/visits", middleware.Protected())
	visit.Post("/walk-in", controllers.CreateWalkIn)
	visit.Get("/history", controllers.GetVisitHistory)
	visit.Get("/:id", controllers.GetVisit)

	appointment := app.Group("/appointments", middleware.Protected())
	appointment.Get("/", controllers.GetAppointmentsByDate)
	appointment.Post("/", controllers.BookAppointment)
	appointment.Patch("/:id/reschedule", controllers.RescheduleAppointment)
	appointment.Patch("/:id/cancel", controllers.CancelAppointment)
	appointment.Patch("/:id/check-in", controllers.CheckInAppointment)
}
