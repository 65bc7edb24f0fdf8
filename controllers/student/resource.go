package studentController

import (
	"time"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"
	"github.com/Niaal-B/CareerPath/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// visibleResources scopes the resource table to what the student may see:
// resources tied to any of their own recommendations, plus general ones.
func visibleResources(db *gorm.DB, studentID uint) *gorm.DB {
	recommendationIDs := studentRecommendationIDs(db, studentID)
	if len(recommendationIDs) == 0 {
		return db.Model(&models.CareerResource{}).
			Where("is_active = ? AND recommendation_id IS NULL", true)
	}
	return db.Model(&models.CareerResource{}).
		Where("is_active = ? AND (recommendation_id IN ? OR recommendation_id IS NULL)", true, recommendationIDs)
}

func resourceView(resource models.CareerResource) fiber.Map {
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
		"created_at":        resource.CreatedAt,
	}
}

// ListResources returns every resource visible to the student, with
// optional category and type filters.
func ListResources(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	query := visibleResources(db, user.ID)

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
		resourceList[i] = resourceView(resource)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully.", fiber.Map{
		"resources": resourceList,
	})
}

// GetResource returns one visible resource.
func GetResource(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
	}

	db := database.Database.Db

	var resource models.CareerResource
	if err := visibleResources(db, user.ID).Where("career_resources.id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Resource not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully.", resourceView(resource))
}

// GetProgress returns the student's progress on a resource, or null when
// they have none yet.
func GetProgress(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
	}

	var progress models.StudentResourceProgress
	if err := database.Database.Db.
		Where("student_id = ? AND resource_id = ?", user.ID, resourceID).
		First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No progress recorded.", fiber.Map{
			"progress": nil,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", fiber.Map{
		"progress": progress,
	})
}

// UpdateProgress upserts the student's progress row for a resource, keyed
// on the unique (student, resource) index. StartedAt and CompletedAt are
// only ever filled in, never cleared, so re-entering a status keeps the
// original timestamps.
func UpdateProgress(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		Status     string `json:"status"`
		Notes      string `json:"notes"`
		IsFavorite bool   `json:"is_favorite"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var resource models.CareerResource
	if err := visibleResources(db, user.ID).Where("career_resources.id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Resource not found.", nil)
	}

	now := time.Now()
	progress := models.StudentResourceProgress{
		StudentID:  user.ID,
		ResourceID: resource.ID,
		Status:     reqData.Status,
		Notes:      reqData.Notes,
		IsFavorite: reqData.IsFavorite,
	}
	if reqData.Status == models.ProgressInProgress {
		progress.StartedAt = &now
	}
	if reqData.Status == models.ProgressCompleted {
		progress.CompletedAt = &now
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "resource_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":       reqData.Status,
			"notes":        reqData.Notes,
			"is_favorite":  reqData.IsFavorite,
			"started_at":   gorm.Expr("COALESCE(student_resource_progresses.started_at, excluded.started_at)"),
			"completed_at": gorm.Expr("COALESCE(student_resource_progresses.completed_at, excluded.completed_at)"),
			"updated_at":   now,
		}),
	}).Create(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	// Re-read so the response reflects the merged row, not the insert
	// candidate.
	db.Where("student_id = ? AND resource_id = ?", user.ID, resource.ID).First(&progress)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Progress updated successfully.", fiber.Map{
		"progress": progress,
	})
}

// MyResources lists every resource the student has progress on, most
// recent activity first.
func MyResources(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var progressList []models.StudentResourceProgress
	if err := db.Where("student_id = ?", user.ID).Order("updated_at desc").Find(&progressList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	resourceList := make([]fiber.Map, 0, len(progressList))
	for _, progress := range progressList {
		var resource models.CareerResource
		if db.Where("id = ?", progress.ResourceID).First(&resource).Error != nil {
			continue
		}
		view := resourceView(resource)
		view["progress"] = fiber.Map{
			"status":       progress.Status,
			"is_favorite":  progress.IsFavorite,
			"notes":        progress.Notes,
			"started_at":   progress.StartedAt,
			"completed_at": progress.CompletedAt,
		}
		resourceList = append(resourceList, view)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully.", fiber.Map{
		"resources": resourceList,
	})
}
