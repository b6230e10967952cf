package courseValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCourse(t *testing.T, body string) int {
	t.Helper()
	app := fiber.New()
	app.Post("/admin/course/create", CreateCourse(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/admin/course/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateCourseAcceptsCatalogLevels(t *testing.T) {
	// levels the catalog actually uses must pass validation
	status := postCourse(t, `{"name":"CPR Level C","cpr_level":"C","first_aid_level":"Standard","expiry_months":24}`)
	assert.Equal(t, fiber.StatusCreated, status)

	status = postCourse(t, `{"name":"Basic Life Support","cpr_level":"BLS","expiry_months":12}`)
	assert.Equal(t, fiber.StatusCreated, status)

	status = postCourse(t, `{"name":"Emergency First Aid","first_aid_level":"Emergency","expiry_months":36}`)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCreateCourseRejectsUnknownLevels(t *testing.T) {
	status := postCourse(t, `{"name":"Mystery Course","cpr_level":"PLATINUM"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status = postCourse(t, `{"name":"Mystery Course","first_aid_level":"LEGENDARY"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCreateCourseRequiresName(t *testing.T) {
	status := postCourse(t, `{"cpr_level":"C"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
