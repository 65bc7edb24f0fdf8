package adminController

import (
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddQuestion appends a manually written question with its options to a
// draft test. Order continues from the current maximum.
func AddQuestion(c *fiber.Ctx) error {
	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Prompt  string `json:"prompt"`
		Options []struct {
			Label       string `json:"label"`
			Description string `json:"description"`
		} `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var test models.PersonalizedTest
	if err := db.Where("id = ?", testID).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found.", nil)
	}

	var maxOrder int
	db.Model(&models.Question{}).Where("personalized_test_id = ?", test.ID).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	question := models.Question{
		PersonalizedTestID: test.ID,
		Prompt:             reqData.Prompt,
		OrderIndex:         maxOrder + 1,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for i, optionData := range reqData.Options {
			option := models.Option{
				QuestionID:  question.ID,
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
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully.", fiber.Map{
		"test": testDetailView(test),
	})
}

// AddTemplates copies bank templates into a test. Templates may be picked
// individually or by whole category; the union is deduplicated against
// templates already copied into this test, copied in template order, and
// appended after the current maximum question order.
func AddTemplates(c *fiber.Ctx) error {
	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	reqData, ok := c.Locals("validatedTemplatePick").(*struct {
		CategoryIDs []uint `json:"category_ids"`
		TemplateIDs []uint `json:"template_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var test models.PersonalizedTest
	if err := db.Where("id = ?", testID).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found.", nil)
	}

	// Active templates in active categories only.
	query := db.Model(&models.QuestionTemplate{}).
		Joins("JOIN question_categories ON question_categories.id = question_templates.category_id").
		Where("question_templates.is_active = ? AND question_categories.is_active = ?", true, true)

	switch {
	case len(reqData.CategoryIDs) > 0 && len(reqData.TemplateIDs) > 0:
		query = query.Where("question_templates.category_id IN ? OR question_templates.id IN ?",
			reqData.CategoryIDs, reqData.TemplateIDs)
	case len(reqData.CategoryIDs) > 0:
		query = query.Where("question_templates.category_id IN ?", reqData.CategoryIDs)
	default:
		query = query.Where("question_templates.id IN ?", reqData.TemplateIDs)
	}

	var templates []models.QuestionTemplate
	if err := query.Order("question_templates.order_index asc, question_templates.id asc").
		Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch templates!", nil)
	}

	// Templates already copied into this test.
	var copiedIDs []uint
	db.Model(&models.Question{}).
		Where("personalized_test_id = ? AND template_id IS NOT NULL", test.ID).
		Pluck("template_id", &copiedIDs)
	alreadyCopied := make(map[uint]bool, len(copiedIDs))
	for _, id := range copiedIDs {
		alreadyCopied[id] = true
	}

	var nextOrder int
	db.Model(&models.Question{}).Where("personalized_test_id = ?", test.ID).
		Select("COALESCE(MAX(order_index), 0)").Scan(&nextOrder)

	addedQuestions := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, template := range templates {
			if alreadyCopied[template.ID] {
				continue
			}
			nextOrder++
			templateID := template.ID
			question := models.Question{
				PersonalizedTestID: test.ID,
				TemplateID:         &templateID,
				Prompt:             template.Prompt,
				OrderIndex:         nextOrder,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			var optionTemplates []models.OptionTemplate
			tx.Where("template_id = ?", template.ID).Order("order_index asc, id asc").Find(&optionTemplates)
			for _, optionTemplate := range optionTemplates {
				option := models.Option{
					QuestionID:  question.ID,
					Label:       optionTemplate.Label,
					Description: optionTemplate.Description,
					OrderIndex:  optionTemplate.OrderIndex,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
			addedQuestions++
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to copy templates!", nil)
	}

	if addedQuestions == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No new questions were added (possibly already copied).", fiber.Map{
			"added_questions": 0,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Questions copied successfully.", fiber.Map{
		"added_questions": addedQuestions,
		"test":            testDetailView(test),
	})
}
