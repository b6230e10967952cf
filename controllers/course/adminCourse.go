package controllers

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	courseModels "certhub/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	// Check admin role
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	// Get validated request data
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		DurationHours   int    `json:"duration_hours"`
		FirstAidLevel   string `json:"first_aid_level"`
		CPRLevel        string `json:"cpr_level"`
		InstructorLevel string `json:"instructor_level"`
		ExpiryMonths    int    `json:"expiry_months"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Name:            reqData.Name,
		Description:     reqData.Description,
		DurationHours:   reqData.DurationHours,
		FirstAidLevel:   reqData.FirstAidLevel,
		CPRLevel:        reqData.CPRLevel,
		InstructorLevel: reqData.InstructorLevel,
		ExpiryMonths:    reqData.ExpiryMonths,
		Status:          "ACTIVE",
	}
	if course.ExpiryMonths <= 0 {
		course.ExpiryMonths = 36
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		DurationHours   int    `json:"duration_hours"`
		FirstAidLevel   string `json:"first_aid_level"`
		CPRLevel        string `json:"cpr_level"`
		InstructorLevel string `json:"instructor_level"`
		ExpiryMonths    int    `json:"expiry_months"`
		Status          string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		course.Name = reqData.Name
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.DurationHours > 0 {
		course.DurationHours = reqData.DurationHours
	}
	if reqData.FirstAidLevel != "" {
		course.FirstAidLevel = reqData.FirstAidLevel
	}
	if reqData.CPRLevel != "" {
		course.CPRLevel = reqData.CPRLevel
	}
	if reqData.InstructorLevel != "" {
		course.InstructorLevel = reqData.InstructorLevel
	}
	if reqData.ExpiryMonths > 0 {
		course.ExpiryMonths = reqData.ExpiryMonths
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Block deletion while requests still reference the course
	var pendingCount int64
	database.Database.Db.Model(&courseModels.CertificateRequest{}).
		Where("course_id = ? AND status = ? AND is_deleted = ?", courseID, courseModels.RequestPending, false).
		Count(&pendingCount)
	if pendingCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course has pending certificate requests!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
