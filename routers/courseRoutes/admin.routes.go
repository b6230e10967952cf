package courseRoutes

import (
	certificateControllers "certhub/controllers/certificate"
	controllers "certhub/controllers/course"
	"certhub/middleware"
	certValidators "certhub/validators/certificate"
	validators "certhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course and certificate management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, validators.DeleteCourse(), controllers.AdminDeleteCourse)

	// Certificate request review
	requestGroup := app.Group("/admin/requests")
	requestGroup.Get("/list", middleware.JWTMiddleware, certificateControllers.AdminListRequests)
	requestGroup.Post("/:id/approve", middleware.JWTMiddleware, certValidators.RequestID(), certificateControllers.ApproveRequest)
	requestGroup.Post("/:id/reject", middleware.JWTMiddleware, certValidators.RejectRequest(), certificateControllers.RejectRequest)
	requestGroup.Post("/:id/archive", middleware.JWTMiddleware, certValidators.RequestID(), certificateControllers.ArchiveRequest)

	// Certificate document generation
	certGroup := app.Group("/admin/certificates")
	certGroup.Post("/:id/generate", middleware.JWTMiddleware, certificateControllers.GenerateDocument)
	certGroup.Post("/backfill", middleware.JWTMiddleware, certificateControllers.RunBackfill)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, controllers.AdminDashboardStats)
}
