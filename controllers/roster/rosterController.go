package rosterControllers

import (
	"certhub/database"
	"certhub/importer"
	"certhub/middleware"
	"certhub/models"
	courseModels "certhub/models/course"
	"certhub/utils"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadRoster ingests a roster file: parse, normalize, match against the
// course catalog, then create the roster and its certificate requests in one
// transaction. Rows that cannot be submitted come back in the response (and
// on the roster record) for correction; they never block the valid rows.
func UploadRoster(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	locationID := c.Locals("rosterLocationID").(uint)
	batchName := c.Locals("rosterBatchName").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Roster file is required!", nil)
	}

	var location models.Location
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", locationID, false).First(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to open uploaded file!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
	}

	rows, err := importer.ParseFile(fileHeader.Filename, data)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ? AND status = ?", false, "ACTIVE").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course catalog!", nil)
	}

	result := importer.MatchRows(rows, courses)
	if len(result.Valid) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No valid rows in the uploaded file!", fiber.Map{
			"invalid":    result.Invalid,
			"mismatched": result.Mismatched,
		})
	}

	errorRows := append(append([]importer.Row{}, result.Invalid...), result.Mismatched...)

	roster, requests, err := importer.SubmitBatch(database.Database.Db, importer.BatchInput{
		Rows:       result.Valid,
		ErrorRows:  errorRows,
		LocationID: location.ID,
		BatchName:  strings.TrimSpace(batchName),
		UserID:     userID,
	})
	if err != nil {
		log.Printf("Roster submission failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit roster!", nil)
	}

	// notification is best-effort, never part of the submit contract
	utils.SendRosterSubmittedEmail(user.Email, user.Name, roster.Name, len(requests))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Roster submitted successfully!", fiber.Map{
		"roster":        roster,
		"request_count": len(requests),
		"invalid":       result.Invalid,
		"mismatched":    result.Mismatched,
	})
}

// RosterList lists rosters, optionally filtered by location
func RosterList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := database.Database.Db.Model(&courseModels.Roster{}).Where("is_deleted = ?", false)
	if locationID := c.QueryInt("location_id", 0); locationID > 0 {
		db = db.Where("location_id = ?", locationID)
	}
	if user.Role != "ADMIN" {
		db = db.Where("submitted_by = ?", userID)
	}

	var total int64
	db.Count(&total)

	var rosters []courseModels.Roster
	if err := db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&rosters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rosters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rosters fetched successfully!", fiber.Map{
		"rosters": rosters,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// RosterDetail returns one roster with its certificate requests
func RosterDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	rosterID, err := c.ParamsInt("id")
	if err != nil || rosterID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid roster ID!", nil)
	}

	var roster courseModels.Roster
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", rosterID, false).First(&roster).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roster not found!", nil)
	}

	if user.Role != "ADMIN" && roster.SubmittedBy != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("roster_id = ? AND is_deleted = ?", roster.ID, false).
		Order("id asc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roster requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roster fetched successfully!", fiber.Map{
		"roster":   roster,
		"requests": requests,
	})
}
