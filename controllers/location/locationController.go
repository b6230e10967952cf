package locationControllers

import (
	"certhub/database"
	"certhub/middleware"
	"certhub/models"

	"github.com/gofiber/fiber/v2"
)

// isAdmin loads the caller and reports whether they hold the ADMIN role.
// When it returns false the response has already been written.
func isAdmin(c *fiber.Ctx) bool {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		return false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		return false
	}

	if user.Role != "ADMIN" {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied: Only admin can manage providers!", nil)
		return false
	}
	return true
}

// CreateProvider registers a new training provider
func CreateProvider(c *fiber.Ctx) error {
	if !isAdmin(c) {
		return nil
	}

	reqData, ok := c.Locals("validatedProvider").(*struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contactEmail"`
		ContactPhone string `json:"contactPhone"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid provider payload!", nil)
	}

	var existing models.Provider
	if err := database.Database.Db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Provider with this name already exists!", nil)
	}

	provider := models.Provider{
		Name:         reqData.Name,
		ContactEmail: reqData.ContactEmail,
		ContactPhone: reqData.ContactPhone,
	}
	if err := database.Database.Db.Create(&provider).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create provider!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Provider created successfully!", provider)
}

// ProviderList lists active providers with their locations
func ProviderList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var providers []models.Provider
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("name asc").Find(&providers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch providers!", nil)
	}

	type providerWithLocations struct {
		models.Provider
		Locations []models.Location `json:"locations"`
	}

	result := make([]providerWithLocations, 0, len(providers))
	for _, p := range providers {
		var locations []models.Location
		database.Database.Db.Where("provider_id = ? AND is_deleted = ?", p.ID, false).Order("name asc").Find(&locations)
		result = append(result, providerWithLocations{Provider: p, Locations: locations})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Providers fetched successfully!", result)
}

// SuspendProvider toggles a provider out of service without deleting it
func SuspendProvider(c *fiber.Ctx) error {
	if !isAdmin(c) {
		return nil
	}

	providerID, err := c.ParamsInt("id")
	if err != nil || providerID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid provider ID!", nil)
	}

	var provider models.Provider
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", providerID, false).First(&provider).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Provider not found!", nil)
	}

	if provider.Status == "SUSPENDED" {
		provider.Status = "ACTIVE"
	} else {
		provider.Status = "SUSPENDED"
	}
	if err := database.Database.Db.Save(&provider).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update provider!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Provider status updated successfully!", provider)
}

// CreateLocation adds a training site under a provider
func CreateLocation(c *fiber.Ctx) error {
	if !isAdmin(c) {
		return nil
	}

	reqData, ok := c.Locals("validatedLocation").(*struct {
		ProviderID uint   `json:"providerId"`
		Name       string `json:"name"`
		Address    string `json:"address"`
		City       string `json:"city"`
		Region     string `json:"region"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid location payload!", nil)
	}

	var provider models.Provider
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.ProviderID, false).First(&provider).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Provider not found!", nil)
	}

	location := models.Location{
		ProviderID: provider.ID,
		Name:       reqData.Name,
		Address:    reqData.Address,
		City:       reqData.City,
		Region:     reqData.Region,
	}
	if err := database.Database.Db.Create(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Location created successfully!", location)
}

// LocationList lists active locations, optionally filtered by provider
func LocationList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db.Where("is_deleted = ?", false)
	if providerID := c.QueryInt("provider_id", 0); providerID > 0 {
		db = db.Where("provider_id = ?", providerID)
	}

	var locations []models.Location
	if err := db.Order("name asc").Find(&locations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch locations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Locations fetched successfully!", locations)
}

// DeleteLocation soft-deletes a location that has no rosters attached
func DeleteLocation(c *fiber.Ctx) error {
	if !isAdmin(c) {
		return nil
	}

	locationID, err := c.ParamsInt("id")
	if err != nil || locationID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid location ID!", nil)
	}

	var location models.Location
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", locationID, false).First(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}

	var rosterCount int64
	database.Database.Db.Table("rosters").Where("location_id = ? AND is_deleted = ?", location.ID, false).Count(&rosterCount)
	if rosterCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Location has submitted rosters and cannot be deleted!", nil)
	}

	location.IsDeleted = true
	if err := database.Database.Db.Save(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Location deleted successfully!", nil)
}
