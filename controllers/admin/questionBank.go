package adminController

import (
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListCategories returns question categories with their template counts.
// Inactive categories are hidden unless include_inactive=true.
func ListCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.QuestionCategory{}).Order("name asc")
	if c.Query("include_inactive") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var categories []models.QuestionCategory
	if err := query.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	categoryList := make([]fiber.Map, len(categories))
	for i, category := range categories {
		var templateCount int64
		db.Model(&models.QuestionTemplate{}).Where("category_id = ?", category.ID).Count(&templateCount)

		categoryList[i] = fiber.Map{
			"id":                category.ID,
			"name":              category.Name,
			"description":       category.Description,
			"qualification_tag": category.QualificationTag,
			"is_active":         category.IsActive,
			"templates_count":   templateCount,
			"created_at":        category.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", fiber.Map{
		"categories": categoryList,
	})
}

// CreateCategory adds a question category. Names are unique.
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name             string `json:"name"`
		Description      string `json:"description"`
		QualificationTag string `json:"qualification_tag"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.QuestionCategory
	if err := db.Where("name = ?", reqData.Name).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category with this name already exists!", nil)
	}

	category := models.QuestionCategory{
		Name:             reqData.Name,
		Description:      reqData.Description,
		QualificationTag: reqData.QualificationTag,
		IsActive:         true,
	}
	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully.", category)
}

// GetCategory returns one question category with its templates.
func GetCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	db := database.Database.Db

	var category models.QuestionCategory
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Category not found.", nil)
	}

	var templates []models.QuestionTemplate
	db.Where("category_id = ?", category.ID).Order("order_index asc, id asc").Find(&templates)

	templateList := make([]fiber.Map, len(templates))
	for i, template := range templates {
		templateList[i] = templateView(db, template)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully.", fiber.Map{
		"id":                category.ID,
		"name":              category.Name,
		"description":       category.Description,
		"qualification_tag": category.QualificationTag,
		"is_active":         category.IsActive,
		"templates":         templateList,
	})
}

// UpdateCategory edits a category's metadata or active flag.
func UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	reqData, ok := c.Locals("validatedCategoryUpdate").(*struct {
		Name             string `json:"name"`
		Description      string `json:"description"`
		QualificationTag string `json:"qualification_tag"`
		IsActive         *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.QuestionCategory
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Category not found.", nil)
	}

	if reqData.Name != "" {
		category.Name = reqData.Name
	}
	if reqData.Description != "" {
		category.Description = reqData.Description
	}
	if reqData.QualificationTag != "" {
		category.QualificationTag = reqData.QualificationTag
	}
	if reqData.IsActive != nil {
		category.IsActive = *reqData.IsActive
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully.", category)
}

// DeleteCategory deactivates a category. Templates copied from it keep
// working; the category just stops appearing in pickers.
func DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	db := database.Database.Db

	var category models.QuestionCategory
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Category not found.", nil)
	}

	if err := db.Model(&category).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deactivated successfully.", nil)
}

func templateView(db *gorm.DB, template models.QuestionTemplate) fiber.Map {
	var options []models.OptionTemplate
	db.Where("template_id = ?", template.ID).Order("order_index asc, id asc").Find(&options)

	return fiber.Map{
		"id":          template.ID,
		"category_id": template.CategoryID,
		"prompt":      template.Prompt,
		"order":       template.OrderIndex,
		"is_active":   template.IsActive,
		"options":     options,
		"created_at":  template.CreatedAt,
	}
}

// ListTemplates returns question templates with their options, filterable
// by category, qualification tag, and active state.
func ListTemplates(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.QuestionTemplate{}).
		Joins("JOIN question_categories ON question_categories.id = question_templates.category_id")
	if c.Query("include_inactive") != "true" {
		query = query.Where("question_templates.is_active = ?", true)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("question_templates.category_id = ?", categoryID)
	}
	if tag := c.Query("qualification_tag"); tag != "" {
		query = query.Where("question_categories.qualification_tag = ?", tag)
	}

	var templates []models.QuestionTemplate
	if err := query.Order("question_templates.order_index asc, question_templates.id asc").
		Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch templates!", nil)
	}

	templateList := make([]fiber.Map, len(templates))
	for i, template := range templates {
		templateList[i] = templateView(db, template)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Templates fetched successfully.", fiber.Map{
		"templates": templateList,
	})
}

// CreateTemplate adds a reusable question with its options to the bank.
func CreateTemplate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTemplate").(*struct {
		CategoryID uint   `json:"category_id"`
		Prompt     string `json:"prompt"`
		Options    []struct {
			Label       string `json:"label"`
			Description string `json:"description"`
		} `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.QuestionCategory
	if err := db.Where("id = ? AND is_active = ?", reqData.CategoryID, true).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
	}

	var maxOrder int
	db.Model(&models.QuestionTemplate{}).Where("category_id = ?", category.ID).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	template := models.QuestionTemplate{
		CategoryID: category.ID,
		Prompt:     reqData.Prompt,
		OrderIndex: maxOrder + 1,
		IsActive:   true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		for i, optionData := range reqData.Options {
			option := models.OptionTemplate{
				TemplateID:  template.ID,
				Label:       optionData.Label,
				Description: optionData.Description,
				OrderIndex:  i + 1,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Template created successfully.", templateView(db, template))
}

// GetTemplate returns one template with its options.
func GetTemplate(c *fiber.Ctx) error {
	templateID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid template id!", nil)
	}

	db := database.Database.Db

	var template models.QuestionTemplate
	if err := db.Where("id = ?", templateID).First(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Template not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template fetched successfully.", templateView(db, template))
}

// UpdateTemplate edits a template. When options are supplied they replace
// the existing set; questions already copied from the template keep their
// own option rows.
func UpdateTemplate(c *fiber.Ctx) error {
	templateID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid template id!", nil)
	}

	reqData, ok := c.Locals("validatedTemplateUpdate").(*struct {
		CategoryID uint   `json:"category_id"`
		Prompt     string `json:"prompt"`
		IsActive   *bool  `json:"is_active"`
		Options    []struct {
			Label       string `json:"label"`
			Description string `json:"description"`
		} `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var template models.QuestionTemplate
	if err := db.Where("id = ?", templateID).First(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Template not found.", nil)
	}

	if reqData.CategoryID != 0 {
		var category models.QuestionCategory
		if err := db.Where("id = ?", reqData.CategoryID).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		template.CategoryID = category.ID
	}
	if reqData.Prompt != "" {
		template.Prompt = reqData.Prompt
	}
	if reqData.IsActive != nil {
		template.IsActive = *reqData.IsActive
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&template).Error; err != nil {
			return err
		}
		if len(reqData.Options) == 0 {
			return nil
		}
		if err := tx.Unscoped().Where("template_id = ?", template.ID).
			Delete(&models.OptionTemplate{}).Error; err != nil {
			return err
		}
		for i, optionData := range reqData.Options {
			option := models.OptionTemplate{
				TemplateID:  template.ID,
				Label:       optionData.Label,
				Description: optionData.Description,
				OrderIndex:  i + 1,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template updated successfully.", templateView(db, template))
}

// DeleteTemplate deactivates a template. Copies already made into tests
// are untouched.
func DeleteTemplate(c *fiber.Ctx) error {
	templateID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid template id!", nil)
	}

	db := database.Database.Db

	var template models.QuestionTemplate
	if err := db.Where("id = ?", templateID).First(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Template not found.", nil)
	}

	if err := db.Model(&template).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template deactivated successfully.", nil)
}
