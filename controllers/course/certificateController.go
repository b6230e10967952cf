package controllers

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	courseModels "certhub/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestCertificate submits a single certificate request from the form
func RequestCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCertRequest").(*struct {
		StudentName      string `json:"student_name"`
		StudentEmail     string `json:"student_email"`
		CourseID         uint   `json:"course_id"`
		LocationID       uint   `json:"location_id"`
		IssueDate        string `json:"issue_date"`
		AssessmentStatus string `json:"assessment_status"`
		Instructor       string `json:"instructor"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var location models.Location
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.LocationID, false).First(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}

	issueDate := time.Now()
	if reqData.IssueDate != "" {
		parsed, err := time.Parse("2006-01-02", reqData.IssueDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Issue date must be YYYY-MM-DD!", nil)
		}
		issueDate = parsed
	}

	request := courseModels.CertificateRequest{
		StudentName:      reqData.StudentName,
		StudentEmail:     reqData.StudentEmail,
		CourseID:         course.ID,
		LocationID:       location.ID,
		IssueDate:        issueDate,
		ExpiryDate:       issueDate.AddDate(0, 0, course.ExpiryMonths*30),
		AssessmentStatus: reqData.AssessmentStatus,
		Instructor:       reqData.Instructor,
		Status:           courseModels.RequestPending,
		SubmittedBy:      userID,
	}
	if request.AssessmentStatus == "" {
		request.AssessmentStatus = "COMPLETED"
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit certificate request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate request submitted successfully!", request)
}

// GetMyRequests lists certificate requests the current user submitted
func GetMyRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	status := c.Query("status")

	db := database.Database.Db.Model(&courseModels.CertificateRequest{}).
		Where("submitted_by = ? AND is_deleted = ?", userID, false)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var requests []courseModels.CertificateRequest
	if err := db.Order("created_at desc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requests fetched successfully!", fiber.Map{
		"requests": requests,
		"total":    len(requests),
	})
}

// GetUserCertificates gets all certificates issued against the current
// user's email plus a pending-request count
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseName string `json:"course_name"`
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.
		Where("student_email = ? AND is_deleted = ?", user.Email, false).
		Order("issued_at desc").
		Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseName:  course.Name,
		}
	}

	var pendingRequests int64
	database.Database.Db.Model(&courseModels.CertificateRequest{}).
		Where("student_email = ? AND status = ? AND is_deleted = ?", user.Email, courseModels.RequestPending, false).
		Count(&pendingRequests)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates":     result,
		"pending_requests": pendingRequests,
	})
}
