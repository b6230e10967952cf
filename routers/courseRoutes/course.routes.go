package courseRoutes

import (
	controllers "certhub/controllers/course"
	"certhub/middleware"
	certValidators "certhub/validators/certificate"
	validators "certhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course and certificate routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Certificate requests and issued certificates
	certGroup := app.Group("/certificate")
	certGroup.Post("/request", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "PROVIDER", "ADMIN"), certValidators.CertRequest(), controllers.RequestCertificate)
	certGroup.Get("/requests", middleware.JWTMiddleware, controllers.GetMyRequests)
	certGroup.Get("/mine", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
