package rosterRoutes

import (
	rosterControllers "certhub/controllers/roster"
	"certhub/middleware"
	rosterValidators "certhub/validators/roster"

	"github.com/gofiber/fiber/v2"
)

func SetupRosterRoutes(app *fiber.App) {
	rosterGroup := app.Group("/roster")

	rosterGroup.Post("/upload", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "PROVIDER", "ADMIN"), rosterValidators.UploadRoster(), rosterControllers.UploadRoster)
	rosterGroup.Get("/list", middleware.JWTMiddleware, rosterControllers.RosterList)
	rosterGroup.Get("/:id", middleware.JWTMiddleware, rosterControllers.RosterDetail)
}
