package supportControllers

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	"certhub/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateSupportTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Get validated data
	reqData, ok := c.Locals("validatedSupportTicket").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Priority    *string `json:"priority"`
		Category    *string `json:"category"`
		LocationID  *uint   `json:"locationId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.SupportTicket{
		UserID:      userId,
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      "open",
		Priority:    "medium",
		Category:    "general",
	}

	if reqData.Priority != nil {
		ticket.Priority = strings.ToLower(*reqData.Priority)
	}
	if reqData.Category != nil {
		ticket.Category = strings.ToLower(*reqData.Category)
	}
	if reqData.LocationID != nil {
		var location models.Location
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.LocationID, false).First(&location).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
		}
		ticket.LocationID = reqData.LocationID
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Support ticket created successfully!", ticket)
}

func TicketList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Pagination setup
	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("user_id = ? AND is_deleted = false", userId)

	// Count total results
	var total int64
	db.Count(&total)

	var tickets []models.SupportTicket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// TicketDetail returns one ticket with its reply thread
func TicketDetail(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", ticketID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if user.Role != "ADMIN" && ticket.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var replies []models.TicketReply
	database.Database.Db.Where("ticket_id = ? AND is_deleted = false", ticket.ID).Order("created_at asc").Find(&replies)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket fetched successfully!", fiber.Map{
		"ticket":  ticket,
		"replies": replies,
	})
}

// ReplyToTicket appends a message to the ticket thread. Staff replies notify
// the ticket owner by email.
func ReplyToTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
	}

	reqData, ok := c.Locals("validatedTicketReply").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", ticketID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	isStaff := user.Role == "ADMIN"
	if !isStaff && ticket.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if ticket.Status == "closed" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is closed!", nil)
	}

	reply := models.TicketReply{
		TicketID: ticket.ID,
		UserID:   userId,
		Message:  reqData.Message,
		IsStaff:  isStaff,
	}
	if err := database.Database.Db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save reply!", nil)
	}

	if isStaff {
		if ticket.Status == "open" {
			ticket.Status = "in_progress"
			database.Database.Db.Save(&ticket)
		}
		var owner models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticket.UserID, false).First(&owner).Error; err == nil {
			utils.SendTicketReplyEmail(owner.Email, owner.Name, ticket.Title, reqData.Message)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply added successfully!", reply)
}

// CloseTicket marks a ticket as resolved
func CloseTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", ticketID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if user.Role != "ADMIN" && ticket.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	ticket.Status = "closed"
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket closed successfully!", ticket)
}

func AdminTicketList(c *fiber.Ctx) error {
	// Check if user is admin
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND role = ?", userId, "ADMIN").First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access denied!", nil)
	}

	// Get validated query data
	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page     *int    `query:"page"`
		Limit    *int    `query:"limit"`
		Status   *string `query:"status"`
		Priority *string `query:"priority"`
		Category *string `query:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Defaults
	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	// Base query
	db := database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false")

	// Apply filters
	if reqData.Status != nil {
		db = db.Where("LOWER(status) = ?", strings.ToLower(*reqData.Status))
	}
	if reqData.Priority != nil {
		db = db.Where("LOWER(priority) = ?", strings.ToLower(*reqData.Priority))
	}
	if reqData.Category != nil {
		db = db.Where("LOWER(category) = ?", strings.ToLower(*reqData.Category))
	}

	// Count total
	var total int64
	db.Count(&total)

	// Fetch paginated tickets
	var tickets []models.SupportTicket
	if err := db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
