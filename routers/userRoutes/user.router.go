package userProfileRoutes

import (
	userProfileController "certhub/controllers/userControllers"
	"certhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userProfileController.UpdateProfile)
	userGroup.Get("/notifications", middleware.JWTMiddleware, userProfileController.NotificationList)
}
