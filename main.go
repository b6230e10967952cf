package main

import (
	"certhub/config"
	"certhub/database"
	authRoutes "certhub/routers/authRoutes"
	courseRoutes "certhub/routers/courseRoutes"
	fontRoutes "certhub/routers/fontRoutes"
	locationRoutes "certhub/routers/locationRoutes"
	rosterRoutes "certhub/routers/rosterRoutes"
	supportRoutes "certhub/routers/supportRoutes"
	userProfileRoutes "certhub/routers/userRoutes"
	"certhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/unidoc/unipdf/v3/common/license"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitStorage()

	if config.AppConfig.UnidocKey != "" {
		if err := license.SetMeteredKey(config.AppConfig.UnidocKey); err != nil {
			log.Fatalf("Failed to set PDF license key: %v", err)
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	rosterRoutes.SetupRosterRoutes(app)
	fontRoutes.SetupFontRoutes(app)
	locationRoutes.SetupLocationRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	utils.InitializeBackfillScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
