package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/controllers"
	"github.com/Rohitsah12/healthFirst/middleware"
	"github.com/Rohitsah12/healthFirst/models"
)

// SetupDoctorRoutes configures doctor, schedule and availability routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctors", middleware.Protected())
	doctor.Get("/", controllers.GetDoctors)
	doctor.Get("/on-date", controllers.GetDoctorsOnDate)
	doctor.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateDoctor)
	doctor.Get("/:id", controllers.GetDoctor)
	doctor.Patch("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateDoctor)
	doctor.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDoctor)

	doctor.Get("/:id/availability", controllers.GetDoctorAvailability)

	doctor.Get("/:id/schedule", controllers.GetDoctorSchedule)
	doctor.Put("/:id/schedule", middleware.RequireRole(models.RoleAdmin, models.RoleDoctor), controllers.UpsertDoctorSchedule)
	doctor.Delete("/:id/schedule", middleware.RequireRole(models.RoleAdmin, models.RoleDoctor), controllers.DeleteDoctorSchedule)
}
