package adminController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCategoryNameReuseAfterDelete(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	_, adminToken := createUser(t, "admin@example.com", models.RoleAdmin)

	code, resp := doJSON(t, app, http.MethodPost, "/admin/resource-categories", adminToken, fiber.Map{
		"name": "Design",
		"icon": "🎨",
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var category models.ResourceCategory
	require.NoError(t, db.Where("name = ?", "Design").First(&category).Error)

	code, resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/admin/resource-categories/%d", category.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, code, resp.Message)

	// The name must be reusable once the category is gone.
	code, resp = doJSON(t, app, http.MethodPost, "/admin/resource-categories", adminToken, fiber.Map{
		"name": "Design",
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var count int64
	db.Unscoped().Model(&models.ResourceCategory{}).Where("name = ?", "Design").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetResourceDetail(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	_, adminToken := createUser(t, "admin@example.com", models.RoleAdmin)
	_, studentToken := createUser(t, "student@example.com", models.RoleStudent)

	resource := models.CareerResource{
		Title:           "Figma Fundamentals",
		ResourceType:    "course",
		DifficultyLevel: "beginner",
		IsFree:          true,
		IsActive:        false,
	}
	require.NoError(t, db.Create(&resource).Error)

	// Admins can fetch a single resource even while it is inactive.
	code, resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/admin/resources/%d", resource.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, code, resp.Message)

	var detail struct {
		ID       uint   `json:"id"`
		Title    string `json:"title"`
		IsActive bool   `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Equal(t, resource.ID, detail.ID)
	assert.Equal(t, "Figma Fundamentals", detail.Title)
	assert.False(t, detail.IsActive)

	code, resp = doJSON(t, app, http.MethodGet, "/admin/resources/9999", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Resource not found.", resp.Message)

	code, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/admin/resources/%d", resource.ID), studentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}
