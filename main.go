package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Rohitsah12/healthFirst/controllers"
	"github.com/Rohitsah12/healthFirst/cron"
	"github.com/Rohitsah12/healthFirst/db"
	"github.com/Rohitsah12/healthFirst/redis"
	"github.com/Rohitsah12/healthFirst/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()
	controllers.Init()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("HealthFirst API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupVisitRoutes(app)
	routes.SetupQueueRoutes(app)
	routes.SetupDashboardRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Fatal(app.Listen(":" + port))
}
