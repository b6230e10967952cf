package supportValidators

import (
	"certhub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateSupportTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			Priority    *string `json:"priority"`
			Category    *string `json:"category"`
			LocationID  *uint   `json:"locationId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Title validation
		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else {
			if len(reqData.Title) < 3 {
				errors["title"] = "Title must be at least 3 characters long!"
			}
			if len(reqData.Title) > 100 {
				errors["title"] = "Title must not exceed 100 characters!"
			}
			if matched, _ := regexp.MatchString(`[<>{}]`, reqData.Title); matched {
				errors["title"] = "Title contains invalid characters (e.g., <, >, {, })!"
			}
		}

		reqData.Description = strings.TrimSpace(reqData.Description)
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		validPriority := map[string]bool{"low": true, "medium": true, "high": true}
		validCategory := map[string]bool{"general": true, "certificates": true, "billing": true, "rosters": true}

		if reqData.Priority != nil && !validPriority[strings.ToLower(*reqData.Priority)] {
			errors["priority"] = "Invalid priority! Allowed: low, medium, high"
		}
		if reqData.Category != nil && !validCategory[strings.ToLower(*reqData.Category)] {
			errors["category"] = "Invalid category! Allowed: general, certificates, billing, rosters"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSupportTicket", reqData)
		return c.Next()
	}
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Basic pagination validation
		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func AdminTicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int    `query:"page"`
			Limit    *int    `query:"limit"`
			Status   *string `query:"status"`
			Priority *string `query:"priority"`
			Category *string `query:"category"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid query parameters!",
				"errors":  nil,
			})
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		// Validate optional enums
		validStatus := map[string]bool{"open": true, "in_progress": true, "closed": true}
		validPriority := map[string]bool{"low": true, "medium": true, "high": true}
		validCategory := map[string]bool{"general": true, "certificates": true, "billing": true, "rosters": true}

		if reqData.Status != nil && !validStatus[strings.ToLower(*reqData.Status)] {
			errors["status"] = "Invalid status! Must be one of: open, in_progress, closed."
		}
		if reqData.Priority != nil && !validPriority[strings.ToLower(*reqData.Priority)] {
			errors["priority"] = "Invalid priority! Must be one of: low, medium, high."
		}
		if reqData.Category != nil && !validCategory[strings.ToLower(*reqData.Category)] {
			errors["category"] = "Invalid category! Must be one of: general, certificates, billing, rosters."
		}

		if len(errors) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Validation failed!",
				"errors":  errors,
			})
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

func ReplyToTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "Reply message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicketReply", reqData)
		return c.Next()
	}
}
