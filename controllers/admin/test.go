package adminController

import (
	"log"
	"time"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"
	"github.com/Niaal-B/CareerPath/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// testDetailView assembles the full test payload: request, student
// snapshot, and questions with their options in order.
func testDetailView(test models.PersonalizedTest) fiber.Map {
	db := database.Database.Db

	var request models.TestRequest
	db.Where("id = ?", test.RequestID).First(&request)

	var student models.User
	db.Where("id = ?", request.StudentID).First(&student)

	var questions []models.Question
	db.Where("personalized_test_id = ?", test.ID).Order("order_index asc, id asc").Find(&questions)

	questionList := make([]fiber.Map, len(questions))
	for i, question := range questions {
		var options []models.Option
		db.Where("question_id = ?", question.ID).Order("order_index asc, id asc").Find(&options)

		questionList[i] = fiber.Map{
			"id":          question.ID,
			"prompt":      question.Prompt,
			"order":       question.OrderIndex,
			"template_id": question.TemplateID,
			"options":     options,
		}
	}

	return fiber.Map{
		"id":           test.ID,
		"request_id":   test.RequestID,
		"status":       test.Status,
		"assigned_at":  test.AssignedAt,
		"completed_at": test.CompletedAt,
		"student": fiber.Map{
			"id":            student.ID,
			"email":         student.Email,
			"name":          student.FullName(),
			"qualification": request.QualificationSnapshot,
			"interests":     request.InterestsSnapshot,
		},
		"questions": questionList,
	}
}

// CreateTest starts a draft test for a request. The request moves to
// in_progress in the same transaction. Creating a test twice is a no-op
// that returns the existing one.
func CreateTest(c *fiber.Ctx) error {
	admin, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	db := database.Database.Db

	var request models.TestRequest
	if err := db.Where("id = ?", requestID).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test request not found.", nil)
	}

	var existing models.PersonalizedTest
	if err := db.Where("request_id = ?", request.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Test already exists.", fiber.Map{
			"test": testDetailView(existing),
		})
	}

	adminID := admin.ID
	test := models.PersonalizedTest{
		RequestID: request.ID,
		AdminID:   &adminID,
		Status:    models.TestStatusDraft,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&test).Error; err != nil {
			return err
		}
		return tx.Model(&models.TestRequest{}).Where("id = ?", request.ID).
			Update("status", models.RequestStatusInProgress).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test created successfully.", fiber.Map{
		"test": testDetailView(test),
	})
}

// GetTestDetail returns one test with all questions and options.
func GetTestDetail(c *fiber.Ctx) error {
	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	var test models.PersonalizedTest
	if err := database.Database.Db.Where("id = ?", testID).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test fetched successfully.", testDetailView(test))
}

// AssignTest moves the test and its request to assigned together. A test
// with no questions cannot be assigned.
func AssignTest(c *fiber.Ctx) error {
	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	db := database.Database.Db

	var test models.PersonalizedTest
	if err := db.Where("id = ?", testID).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found.", nil)
	}

	var questionCount int64
	db.Model(&models.Question{}).Where("personalized_test_id = ?", test.ID).Count(&questionCount)
	if questionCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot assign test without questions.", nil)
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PersonalizedTest{}).Where("id = ?", test.ID).
			Updates(map[string]interface{}{
				"status":      models.TestStatusAssigned,
				"assigned_at": now,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.TestRequest{}).Where("id = ?", test.RequestID).
			Update("status", models.RequestStatusAssigned).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign test!", nil)
	}

	test.Status = models.TestStatusAssigned
	test.AssignedAt = &now

	// Best-effort notification; the assignment stands either way.
	var request models.TestRequest
	var student models.User
	if db.Where("id = ?", test.RequestID).First(&request).Error == nil &&
		db.Where("id = ?", request.StudentID).First(&student).Error == nil {
		if err := utils.SendTestAssignedEmail(student.Email, student.FullName(), int(questionCount)); err != nil {
			log.Printf("Error sending test assigned email: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test assigned successfully.", fiber.Map{
		"test": testDetailView(test),
	})
}

// ListCompletedTests returns completed tests awaiting or holding a
// recommendation.
func ListCompletedTests(c *fiber.Ctx) error {
	db := database.Database.Db

	var tests []models.PersonalizedTest
	if err := db.Where("status = ?", models.TestStatusCompleted).
		Order("completed_at desc").
		Find(&tests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tests!", nil)
	}

	testList := make([]fiber.Map, len(tests))
	for i, test := range tests {
		var request models.TestRequest
		db.Where("id = ?", test.RequestID).First(&request)

		var student models.User
		db.Where("id = ?", request.StudentID).First(&student)

		var questionCount int64
		db.Model(&models.Question{}).Where("personalized_test_id = ?", test.ID).Count(&questionCount)

		var recommendationCount int64
		db.Model(&models.CareerRecommendation{}).Where("personalized_test_id = ?", test.ID).Count(&recommendationCount)

		testList[i] = fiber.Map{
			"id":         test.ID,
			"request_id": test.RequestID,
			"student": fiber.Map{
				"email":         student.Email,
				"qualification": request.QualificationSnapshot,
				"interests":     request.InterestsSnapshot,
			},
			"completed_at":       test.CompletedAt,
			"questions_count":    questionCount,
			"has_recommendation": recommendationCount > 0,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed tests fetched successfully.", fiber.Map{
		"tests": testList,
	})
}

// GetTestAnswers returns the completed test's questions with the student's
// selected option per question.
func GetTestAnswers(c *fiber.Ctx) error {
	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	db := database.Database.Db

	var test models.PersonalizedTest
	if err := db.Where("id = ? AND status = ?", testID, models.TestStatusCompleted).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found or not completed.", nil)
	}

	var request models.TestRequest
	db.Where("id = ?", test.RequestID).First(&request)

	var student models.User
	db.Where("id = ?", request.StudentID).First(&student)

	var questions []models.Question
	db.Where("personalized_test_id = ?", test.ID).Order("order_index asc, id asc").Find(&questions)

	answerList := make([]fiber.Map, len(questions))
	for i, question := range questions {
		var options []models.Option
		db.Where("question_id = ?", question.ID).Order("order_index asc, id asc").Find(&options)

		var selectedAnswer interface{}
		var answer models.StudentAnswer
		if db.Where("question_id = ? AND student_id = ?", question.ID, student.ID).First(&answer).Error == nil {
			var option models.Option
			if db.Where("id = ?", answer.OptionID).First(&option).Error == nil {
				selectedAnswer = fiber.Map{
					"option_id":    option.ID,
					"option_label": option.Label,
				}
			}
		}

		answerList[i] = fiber.Map{
			"question": fiber.Map{
				"id":     question.ID,
				"prompt": question.Prompt,
				"order":  question.OrderIndex,
			},
			"options":         options,
			"selected_answer": selectedAnswer,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test answers fetched successfully.", fiber.Map{
		"test": fiber.Map{
			"id":         test.ID,
			"request_id": test.RequestID,
			"student": fiber.Map{
				"email":         student.Email,
				"qualification": request.QualificationSnapshot,
				"interests":     request.InterestsSnapshot,
			},
			"completed_at": test.CompletedAt,
			"answers":      answerList,
		},
	})
}
