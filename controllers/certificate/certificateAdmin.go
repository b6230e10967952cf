package certificateControllers

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	courseModels "certhub/models/course"
	"certhub/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// reviewerRoles may approve or reject certificate requests
func isReviewer(role string) bool {
	return role == "ADMIN" || role == "PROVIDER"
}

// AdminListRequests lists certificate requests with status/location filters
func AdminListRequests(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !isReviewer(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := database.Database.Db.Model(&courseModels.CertificateRequest{}).Where("is_deleted = ?", false)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if locationID := c.QueryInt("location_id", 0); locationID > 0 {
		db = db.Where("location_id = ?", locationID)
	}
	// providers only see their own locations' requests
	if user.Role == "PROVIDER" && user.LocationID != nil {
		db = db.Where("location_id = ?", *user.LocationID)
	}

	var total int64
	db.Count(&total)

	var requests []courseModels.CertificateRequest
	if err := db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requests fetched successfully!", fiber.Map{
		"requests": requests,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ApproveRequest approves a pending request and issues the certificate. The
// PDF is rendered right away when the template and fonts are available;
// otherwise the backfill sweep picks the certificate up later.
func ApproveRequest(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !isReviewer(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	requestID := c.Locals("requestID").(int)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != courseModels.RequestPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request is not pending!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", request.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := database.Database.Db.Begin()

	now := time.Now()
	request.Status = courseModels.RequestApproved
	request.ReviewedAt = &now
	request.ReviewedBy = &userId

	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve request!", nil)
	}

	certificate := courseModels.Certificate{
		RequestID:         request.ID,
		CourseID:          request.CourseID,
		StudentName:       request.StudentName,
		StudentEmail:      request.StudentEmail,
		CertificateNumber: utils.GenerateCertificateNumber(),
		IssuedAt:          request.IssueDate,
		ExpiresAt:         request.ExpiryDate,
	}

	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate!", nil)
	}

	tx.Commit()

	// Best-effort immediate render; the sweep is the safety net
	if cache, err := utils.LoadCertificateFonts(c.Context()); err != nil {
		log.Printf("Certificate %s: fonts unavailable, leaving render to backfill: %v", certificate.CertificateNumber, err)
	} else if err := utils.GenerateAndUploadCertificate(c.Context(), &certificate, cache); err != nil {
		log.Printf("Certificate %s: render failed, leaving to backfill: %v", certificate.CertificateNumber, err)
	}

	if request.StudentEmail != "" {
		utils.SendRequestApprovedEmail(request.StudentEmail, request.StudentName, course.Name, certificate.CertificateNumber)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate approved and issued successfully!", certificate)
}

// RejectRequest rejects a pending request with a reason
func RejectRequest(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !isReviewer(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	requestID := c.Locals("requestID").(int)
	reason := c.Locals("rejectionReason").(string)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != courseModels.RequestPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request is not pending!", nil)
	}

	now := time.Now()
	request.Status = courseModels.RequestRejected
	request.RejectionReason = reason
	request.ReviewedAt = &now
	request.ReviewedBy = &userId

	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject request!", nil)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", request.CourseID).First(&course)

	var submitter models.User
	if err := database.Database.Db.Where("id = ?", request.SubmittedBy).First(&submitter).Error; err == nil && submitter.Email != "" {
		utils.SendRequestRejectedEmail(submitter.Email, submitter.Name, course.Name, reason)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected!", request)
}

// ArchiveRequest moves a reviewed request into the terminal ARCHIVED state
func ArchiveRequest(c *fiber.Ctx) error {
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

	requestID := c.Locals("requestID").(int)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status == courseModels.RequestArchived {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request is already archived!", nil)
	}
	if request.Status == courseModels.RequestPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Pending requests must be approved or rejected first!", nil)
	}

	request.Status = courseModels.RequestArchived
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request archived!", request)
}

// GenerateDocument re-runs PDF generation for one certificate on demand
func GenerateDocument(c *fiber.Ctx) error {
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

	certID, err := c.ParamsInt("id")
	if err != nil || certID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate ID!", nil)
	}

	var certificate courseModels.Certificate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certID, false).First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if certificate.DocumentURL != "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate document already exists!", certificate)
	}

	cache, err := utils.LoadCertificateFonts(c.Context())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if err := utils.GenerateAndUploadCertificate(c.Context(), &certificate, cache); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate document generated successfully!", certificate)
}

// RunBackfill triggers the sweep outside its schedule
func RunBackfill(c *fiber.Ctx) error {
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

	go utils.RunBackfillSweep()

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Backfill sweep started.", nil)
}
