package fontRoutes

import (
	fontControllers "certhub/controllers/fonts"
	"certhub/middleware"
	fontValidators "certhub/validators/fonts"

	"github.com/gofiber/fiber/v2"
)

func SetupFontRoutes(app *fiber.App) {
	fontGroup := app.Group("/fonts")

	fontGroup.Post("/upload", middleware.JWTMiddleware, fontValidators.UploadFont(), fontControllers.UploadFont)
	fontGroup.Get("/list", middleware.JWTMiddleware, fontControllers.FontList)
}
