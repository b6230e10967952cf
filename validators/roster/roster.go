package rosterValidator

import (
	"certhub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadRoster validates the multipart form accompanying a roster file
func UploadRoster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		locationValue := strings.TrimSpace(c.FormValue("location_id"))
		locationID, err := strconv.Atoi(locationValue)
		if locationValue == "" || err != nil || locationID < 1 {
			errors["location_id"] = "Location ID is required and must be a positive number!"
		}

		batchName := strings.TrimSpace(c.FormValue("name"))
		if batchName == "" {
			errors["name"] = "Roster name is required!"
		} else if len(batchName) < 3 {
			errors["name"] = "Roster name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("rosterLocationID", uint(locationID))
		c.Locals("rosterBatchName", batchName)
		return c.Next()
	}
}
