package courseValidator

import (
	"certhub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Level vocabularies per certification track; empty means the course does
// not carry that track
var validFirstAidLevels = map[string]bool{
	"":          true,
	"EMERGENCY": true,
	"STANDARD":  true,
	"ADVANCED":  true,
}

var validCPRLevels = map[string]bool{
	"":    true,
	"A":   true,
	"B":   true,
	"C":   true,
	"BLS": true,
	"HCP": true,
}

var validInstructorLevels = map[string]bool{
	"":           true,
	"INSTRUCTOR": true,
	"TRAINER":    true,
	"MASTER":     true,
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name            string `json:"name"`
			Description     string `json:"description"`
			DurationHours   int    `json:"duration_hours"`
			FirstAidLevel   string `json:"first_aid_level"`
			CPRLevel        string `json:"cpr_level"`
			InstructorLevel string `json:"instructor_level"`
			ExpiryMonths    int    `json:"expiry_months"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.DurationHours < 0 {
			errors["duration_hours"] = "Duration must not be negative!"
		}

		if reqData.ExpiryMonths < 0 {
			errors["expiry_months"] = "Expiry months must not be negative!"
		}

		if !validFirstAidLevels[strings.ToUpper(reqData.FirstAidLevel)] {
			errors["first_aid_level"] = "Invalid first aid level!"
		}
		if !validCPRLevels[strings.ToUpper(reqData.CPRLevel)] {
			errors["cpr_level"] = "Invalid CPR level!"
		}
		if !validInstructorLevels[strings.ToUpper(reqData.InstructorLevel)] {
			errors["instructor_level"] = "Invalid instructor level!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		reqData := new(struct {
			Name            string `json:"name"`
			Description     string `json:"description"`
			DurationHours   int    `json:"duration_hours"`
			FirstAidLevel   string `json:"first_aid_level"`
			CPRLevel        string `json:"cpr_level"`
			InstructorLevel string `json:"instructor_level"`
			ExpiryMonths    int    `json:"expiry_months"`
			Status          string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.DurationHours < 0 {
			errors["duration_hours"] = "Duration must not be negative!"
		}

		if reqData.ExpiryMonths < 0 {
			errors["expiry_months"] = "Expiry months must not be negative!"
		}

		if !validFirstAidLevels[strings.ToUpper(reqData.FirstAidLevel)] {
			errors["first_aid_level"] = "Invalid first aid level!"
		}
		if !validCPRLevels[strings.ToUpper(reqData.CPRLevel)] {
			errors["cpr_level"] = "Invalid CPR level!"
		}
		if !validInstructorLevels[strings.ToUpper(reqData.InstructorLevel)] {
			errors["instructor_level"] = "Invalid instructor level!"
		}

		if reqData.Status != "" {
			valid := map[string]bool{"ACTIVE": true, "RETIRED": true}
			if !valid[strings.ToUpper(reqData.Status)] {
				errors["status"] = "Invalid status! Must be ACTIVE or RETIRED."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func DeleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
