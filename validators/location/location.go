package locationValidator

import (
	"certhub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// CreateProvider validates a new training provider payload
func CreateProvider() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			ContactEmail string `json:"contactEmail"`
			ContactPhone string `json:"contactPhone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Provider name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Provider name must be at least 3 characters long!"
		}

		if reqData.ContactEmail != "" && !isValidEmail(reqData.ContactEmail) {
			errors["contactEmail"] = "Invalid contact email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProvider", reqData)
		return c.Next()
	}
}

// CreateLocation validates a new training site payload
func CreateLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProviderID uint   `json:"providerId"`
			Name       string `json:"name"`
			Address    string `json:"address"`
			City       string `json:"city"`
			Region     string `json:"region"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProviderID < 1 {
			errors["providerId"] = "Provider ID is required!"
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Location name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Location name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLocation", reqData)
		return c.Next()
	}
}
