package adminController

import (
	"github.com/Niaal-B/CareerPath/config"
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"
	"github.com/Niaal-B/CareerPath/utils"

	"github.com/gofiber/fiber/v2"
)

// ListResourceCategories returns resource categories with their resource
// counts.
func ListResourceCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	var categories []models.ResourceCategory
	if err := db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	categoryList := make([]fiber.Map, len(categories))
	for i, category := range categories {
		var resourceCount int64
		db.Model(&models.CareerResource{}).Where("category_id = ?", category.ID).Count(&resourceCount)

		categoryList[i] = fiber.Map{
			"id":              category.ID,
			"name":            category.Name,
			"description":     category.Description,
			"icon":            category.Icon,
			"resources_count": resourceCount,
			"created_at":      category.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", fiber.Map{
		"categories": categoryList,
	})
}

// CreateResourceCategory adds a resource category. Names are unique.
func CreateResourceCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResourceCategory").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.ResourceCategory
	if err := db.Where("name = ?", reqData.Name).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category with this name already exists!", nil)
	}

	category := models.ResourceCategory{
		Name:        reqData.Name,
		Description: reqData.Description,
		Icon:        reqData.Icon,
	}
	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully.", category)
}

// GetResourceCategory returns one resource category.
func GetResourceCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var category models.ResourceCategory
	if err := database.Database.Db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Category not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully.", category)
}

// UpdateResourceCategory edits a resource category.
func UpdateResourceCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	reqData, ok := c.Locals("validatedResourceCategoryUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.ResourceCategory
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Category not found.", nil)
	}

	if reqData.Name != "" {
		category.Name = reqData.Name
	}
	if reqData.Description != "" {
		category.Description = reqData.Description
	}
	if reqData.Icon != "" {
		category.Icon = reqData.Icon
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully.", category)
}

// DeleteResourceCategory removes a resource category. The delete is hard so
// the unique name becomes reusable; resources keep their category_id and
// simply resolve to nothing.
func DeleteResourceCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	db := database.Database.Db

	var category models.ResourceCategory
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Category not found.", nil)
	}

	if err := db.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully.", nil)
}

func adminResourceView(resource models.CareerResource) fiber.Map {
	return fiber.Map{
		"id":                resource.ID,
		"recommendation_id": resource.RecommendationID,
		"category_id":       resource.CategoryID,
		"title":             resource.Title,
		"description":       resource.Description,
		"resource_type":     resource.ResourceType,
		"url":               resource.URL,
		"file_url":          utils.GetFileURL(resource.FilePath),
		"difficulty_level":  resource.DifficultyLevel,
		"is_free":           resource.IsFree,
		"cost":              resource.Cost,
		"order":             resource.OrderIndex,
		"is_active":         resource.IsActive,
		"created_at":        resource.CreatedAt,
	}
}

// ListResources returns every resource, including inactive ones when
// include_inactive=true, with the usual filters.
func ListResources(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.CareerResource{})
	if c.Query("include_inactive") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if recommendationID := c.Query("recommendation_id"); recommendationID != "" {
		query = query.Where("recommendation_id = ?", recommendationID)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}

	var resources []models.CareerResource
	if err := query.Order("order_index asc, created_at asc").Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	resourceList := make([]fiber.Map, len(resources))
	for i, resource := range resources {
		resourceList[i] = adminResourceView(resource)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully.", fiber.Map{
		"resources": resourceList,
	})
}

// GetResource returns one resource, active or not.
func GetResource(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
	}

	var resource models.CareerResource
	if err := database.Database.Db.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Resource not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully.", adminResourceView(resource))
}

// CreateResource adds a learning resource, optionally tied to a
// recommendation and optionally carrying an uploaded file.
func CreateResource(c *fiber.Ctx) error {
	admin, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*struct {
		Title            string
		Description      string
		ResourceType     string
		URL              string
		DifficultyLevel  string
		RecommendationID *uint
		CategoryID       *uint
		IsFree           bool
		Cost             *float64
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.RecommendationID != nil {
		var recommendation models.CareerRecommendation
		if err := db.Where("id = ?", *reqData.RecommendationID).First(&recommendation).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Recommendation not found!", nil)
		}
	}
	if reqData.CategoryID != nil {
		var category models.ResourceCategory
		if err := db.Where("id = ?", *reqData.CategoryID).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
	}

	filePath := ""
	if file, err := c.FormFile("file"); err == nil && file != nil {
		savedName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		filePath = savedName
	}

	var maxOrder int
	orderQuery := db.Model(&models.CareerResource{})
	if reqData.RecommendationID != nil {
		orderQuery = orderQuery.Where("recommendation_id = ?", *reqData.RecommendationID)
	} else {
		orderQuery = orderQuery.Where("recommendation_id IS NULL")
	}
	orderQuery.Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	adminID := admin.ID
	resource := models.CareerResource{
		RecommendationID: reqData.RecommendationID,
		CategoryID:       reqData.CategoryID,
		Title:            reqData.Title,
		Description:      reqData.Description,
		ResourceType:     reqData.ResourceType,
		URL:              reqData.URL,
		FilePath:         filePath,
		DifficultyLevel:  reqData.DifficultyLevel,
		IsFree:           reqData.IsFree,
		Cost:             reqData.Cost,
		AdminID:          &adminID,
		OrderIndex:       maxOrder + 1,
		IsActive:         true,
	}

	if resource.ResourceType == "" {
		resource.ResourceType = "article"
	}
	if resource.DifficultyLevel == "" {
		resource.DifficultyLevel = "beginner"
	}

	if err := db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully.", adminResourceView(resource))
}

// UpdateResource edits a resource. A newly uploaded file replaces the
// stored path; other fields update only when supplied.
func UpdateResource(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
	}

	reqData, ok := c.Locals("validatedResourceUpdate").(*struct {
		Title           string
		Description     string
		ResourceType    string
		URL             string
		DifficultyLevel string
		CategoryID      *uint
		IsFree          *bool
		Cost            *float64
		IsActive        *bool
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var resource models.CareerResource
	if err := db.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Resource not found.", nil)
	}

	if reqData.Title != "" {
		resource.Title = reqData.Title
	}
	if reqData.Description != "" {
		resource.Description = reqData.Description
	}
	if reqData.ResourceType != "" {
		resource.ResourceType = reqData.ResourceType
	}
	if reqData.URL != "" {
		resource.URL = reqData.URL
	}
	if reqData.DifficultyLevel != "" {
		resource.DifficultyLevel = reqData.DifficultyLevel
	}
	if reqData.CategoryID != nil {
		var category models.ResourceCategory
		if err := db.Where("id = ?", *reqData.CategoryID).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		resource.CategoryID = reqData.CategoryID
	}
	if reqData.IsFree != nil {
		resource.IsFree = *reqData.IsFree
	}
	if reqData.Cost != nil {
		resource.Cost = reqData.Cost
	}
	if reqData.IsActive != nil {
		resource.IsActive = *reqData.IsActive
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		savedName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		resource.FilePath = savedName
	}

	if err := db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource updated successfully.", adminResourceView(resource))
}

// DeleteResource deactivates a resource so students stop seeing it while
// progress rows stay intact.
func DeleteResource(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
	}

	db := database.Database.Db

	var resource models.CareerResource
	if err := db.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Resource not found.", nil)
	}

	if err := db.Model(&resource).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deactivated successfully.", nil)
}
