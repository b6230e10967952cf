package locationRoutes

import (
	locationControllers "certhub/controllers/location"
	"certhub/middleware"
	locationValidators "certhub/validators/location"

	"github.com/gofiber/fiber/v2"
)

func SetupLocationRoutes(app *fiber.App) {
	providerGroup := app.Group("/provider")

	providerGroup.Post("/create", middleware.JWTMiddleware, locationValidators.CreateProvider(), locationControllers.CreateProvider)
	providerGroup.Get("/list", middleware.JWTMiddleware, locationControllers.ProviderList)
	providerGroup.Patch("/:id/suspend", middleware.JWTMiddleware, locationControllers.SuspendProvider)

	locationGroup := app.Group("/location")

	locationGroup.Post("/create", middleware.JWTMiddleware, locationValidators.CreateLocation(), locationControllers.CreateLocation)
	locationGroup.Get("/list", middleware.JWTMiddleware, locationControllers.LocationList)
	locationGroup.Delete("/:id", middleware.JWTMiddleware, locationControllers.DeleteLocation)
}
