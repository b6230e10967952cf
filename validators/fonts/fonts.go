package fontValidator

import (
	"certhub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var fontKeyPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// UploadFont validates a base64 font upload
func UploadFont() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FontKey  string `json:"fontKey"`
			FontData string `json:"fontData"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		fontKey := strings.ToLower(strings.TrimSpace(reqData.FontKey))
		if fontKey == "" {
			errors["fontKey"] = "Font key is required!"
		} else if !fontKeyPattern.MatchString(fontKey) {
			errors["fontKey"] = "Font key may only contain lowercase letters, digits and hyphens!"
		}

		if strings.TrimSpace(reqData.FontData) == "" {
			errors["fontData"] = "Font data is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFont", reqData)
		return c.Next()
	}
}
