package supportRoutes

import (
	controller "certhub/controllers/support"
	"certhub/middleware"
	validator "certhub/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support")

	support.Post("/create", validator.CreateSupportTicket(), middleware.JWTMiddleware, controller.CreateSupportTicket)
	support.Get("/list", validator.TicketList(), middleware.JWTMiddleware, controller.TicketList)
	support.Get("/admin-list", validator.AdminTicketList(), middleware.JWTMiddleware, controller.AdminTicketList)
	support.Get("/:id", middleware.JWTMiddleware, controller.TicketDetail)
	support.Post("/:id/reply", validator.ReplyToTicket(), middleware.JWTMiddleware, controller.ReplyToTicket)
	support.Post("/:id/close", middleware.JWTMiddleware, controller.CloseTicket)
}
