package fontControllers

import (
	"certhub/config"
	"certhub/database"
	"certhub/middleware"
	"certhub/models"
	courseModels "certhub/models/course"
	"certhub/pdfgen"
	"certhub/utils"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadFont stores a certificate font in the font bucket and records its
// metadata. Re-uploading an existing font key replaces the stored bytes.
func UploadFont(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied: Only admin can manage fonts!", nil)
	}

	reqData, ok := c.Locals("validatedFont").(*struct {
		FontKey  string `json:"fontKey"`
		FontData string `json:"fontData"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid font payload!", nil)
	}

	data, err := base64.StdEncoding.DecodeString(reqData.FontData)
	if err != nil || len(data) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Font data must be valid base64!", nil)
	}

	fontKey := strings.ToLower(strings.TrimSpace(reqData.FontKey))
	objectKey := fmt.Sprintf("%s.ttf", fontKey)

	if err := utils.UploadObject(c.Context(), config.AppConfig.FontBucket, objectKey, data, "font/ttf"); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store font file!", nil)
	}

	var asset courseModels.FontAsset
	err = database.Database.Db.Where("font_key = ?", fontKey).First(&asset).Error
	if err == nil {
		asset.ObjectKey = objectKey
		asset.ByteSize = len(data)
		asset.UploadedBy = userID
		asset.IsDeleted = false
		if err := database.Database.Db.Save(&asset).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update font record!", nil)
		}
	} else {
		asset = courseModels.FontAsset{
			FontKey:    fontKey,
			ObjectKey:  objectKey,
			ByteSize:   len(data),
			UploadedBy: userID,
		}
		if err := database.Database.Db.Create(&asset).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save font record!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Font uploaded successfully!", asset)
}

// FontList returns the declared fonts plus which required keys are still
// missing, so an operator can see at a glance whether generation can run.
func FontList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied: Only admin can manage fonts!", nil)
	}

	var assets []courseModels.FontAsset
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("font_key asc").Find(&assets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch fonts!", nil)
	}

	present := make(map[string]bool, len(assets))
	for _, a := range assets {
		present[a.FontKey] = true
	}
	missing := []string{}
	for _, key := range pdfgen.RequiredFonts {
		if !present[key] {
			missing = append(missing, key)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Fonts fetched successfully!", fiber.Map{
		"fonts":    assets,
		"required": pdfgen.RequiredFonts,
		"missing":  missing,
	})
}
