package userController

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var location *models.Location
	if user.LocationID != nil {
		var loc models.Location
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *user.LocationID, false).First(&loc).Error; err == nil {
			location = &loc
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":     user,
		"location": location,
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData := new(struct {
		Name       *string `json:"name"`
		Mobile     *string `json:"mobile"`
		LocationID *uint   `json:"locationId"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	if reqData.Name != nil {
		name := strings.TrimSpace(*reqData.Name)
		if len(name) < 3 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name must be at least 3 characters long!", nil)
		}
		user.Name = name
	}
	if reqData.Mobile != nil {
		user.Mobile = strings.TrimSpace(*reqData.Mobile)
	}
	if reqData.LocationID != nil {
		var location models.Location
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.LocationID, false).First(&location).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
		}
		user.LocationID = reqData.LocationID
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// NotificationList returns the email delivery log for the signed-in user
func NotificationList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	database.Database.Db.Model(&models.Notification{}).Where("recipient = ?", user.Email).Count(&total)

	var notifications []models.Notification
	if err := database.Database.Db.Where("recipient = ?", user.Email).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
