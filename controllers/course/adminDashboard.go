package controllers

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	courseModels "certhub/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats gets dashboard statistics
func AdminDashboardStats(c *fiber.Ctx) error {
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

	var totalCourses, totalUsers, totalRosters int64
	var pendingRequests, approvedRequests, rejectedRequests int64
	var totalCertificates, certificatesWithoutDocument int64

	database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	database.Database.Db.Model(&courseModels.Roster{}).Where("is_deleted = ?", false).Count(&totalRosters)
	database.Database.Db.Model(&courseModels.CertificateRequest{}).Where("is_deleted = ? AND status = ?", false, courseModels.RequestPending).Count(&pendingRequests)
	database.Database.Db.Model(&courseModels.CertificateRequest{}).Where("is_deleted = ? AND status = ?", false, courseModels.RequestApproved).Count(&approvedRequests)
	database.Database.Db.Model(&courseModels.CertificateRequest{}).Where("is_deleted = ? AND status = ?", false, courseModels.RequestRejected).Count(&rejectedRequests)
	database.Database.Db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&totalCertificates)
	database.Database.Db.Model(&courseModels.Certificate{}).Where("is_deleted = ? AND document_url = ?", false, "").Count(&certificatesWithoutDocument)

	// Get recent rosters
	type RecentRoster struct {
		RosterName  string    `json:"roster_name"`
		TotalCount  int       `json:"total_count"`
		SubmittedAt time.Time `json:"submitted_at"`
	}

	var recentRosters []courseModels.Roster
	database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Limit(5).Find(&recentRosters)

	recent := make([]RecentRoster, len(recentRosters))
	for i, r := range recentRosters {
		recent[i] = RecentRoster{
			RosterName:  r.Name,
			TotalCount:  r.TotalCount,
			SubmittedAt: r.CreatedAt,
		}
	}

	// Get recent certificates
	type RecentCertificate struct {
		StudentName       string    `json:"student_name"`
		CourseName        string    `json:"course_name"`
		CertificateNumber string    `json:"certificate_number"`
		IssuedAt          time.Time `json:"issued_at"`
	}

	var recentCerts []courseModels.Certificate
	database.Database.Db.Where("is_deleted = ?", false).Order("issued_at desc").Limit(5).Find(&recentCerts)

	recentCertificates := make([]RecentCertificate, len(recentCerts))
	for i, cert := range recentCerts {
		var course courseModels.Course
		database.Database.Db.Select("name").Where("id = ?", cert.CourseID).First(&course)
		recentCertificates[i] = RecentCertificate{
			StudentName:       cert.StudentName,
			CourseName:        course.Name,
			CertificateNumber: cert.CertificateNumber,
			IssuedAt:          cert.IssuedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_courses":        totalCourses,
			"total_users":          totalUsers,
			"total_rosters":        totalRosters,
			"pending_requests":     pendingRequests,
			"approved_requests":    approvedRequests,
			"rejected_requests":    rejectedRequests,
			"total_certificates":   totalCertificates,
			"documents_backlogged": certificatesWithoutDocument,
		},
		"recent_rosters":      recent,
		"recent_certificates": recentCertificates,
	})
}
