package certificateValidator

import (
	"certhub/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CertRequest validates a single certificate request submission
func CertRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StudentName      string `json:"student_name"`
			StudentEmail     string `json:"student_email"`
			CourseID         uint   `json:"course_id"`
			LocationID       uint   `json:"location_id"`
			IssueDate        string `json:"issue_date"`
			AssessmentStatus string `json:"assessment_status"`
			Instructor       string `json:"instructor"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		rules := struct {
			StudentName  string `validate:"required,min=3"`
			StudentEmail string `validate:"omitempty,email"`
			CourseID     uint   `validate:"required,min=1"`
			LocationID   uint   `validate:"required,min=1"`
		}{
			StudentName:  strings.TrimSpace(reqData.StudentName),
			StudentEmail: strings.TrimSpace(reqData.StudentEmail),
			CourseID:     reqData.CourseID,
			LocationID:   reqData.LocationID,
		}

		errors := make(map[string]string)

		if err := validate.Struct(rules); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "StudentName":
					errors["student_name"] = "Student name is required and must be at least 3 characters long!"
				case "StudentEmail":
					errors["student_email"] = "Invalid student email!"
				case "CourseID":
					errors["course_id"] = "Course ID is required!"
				case "LocationID":
					errors["location_id"] = "Location ID is required!"
				}
			}
		}

		if reqData.IssueDate != "" {
			if _, err := time.Parse("2006-01-02", reqData.IssueDate); err != nil {
				errors["issue_date"] = "Issue date must be in YYYY-MM-DD format!"
			}
		}

		if reqData.AssessmentStatus != "" {
			valid := map[string]bool{"COMPLETED": true, "INCOMPLETE": true}
			if !valid[strings.ToUpper(reqData.AssessmentStatus)] {
				errors["assessment_status"] = "Invalid assessment status! Must be COMPLETED or INCOMPLETE."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertRequest", reqData)
		return c.Next()
	}
}

// RequestID validates the :id route parameter
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, err := strconv.Atoi(c.Params("id"))
		if err != nil || requestID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
		}

		c.Locals("requestID", requestID)
		return c.Next()
	}
}

// RejectRequest validates the rejection payload alongside the :id parameter
func RejectRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, err := strconv.Atoi(c.Params("id"))
		if err != nil || requestID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
		}

		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reason := strings.TrimSpace(reqData.Reason)
		if reason == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"reason": "Rejection reason is required!",
			})
		}

		c.Locals("requestID", requestID)
		c.Locals("rejectionReason", reason)
		return c.Next()
	}
}
