package studentController

import (
	"fmt"
	"time"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findOwnTest fetches a personalized test scoped to the owning student.
// Lookups by non-owners miss entirely so existence is never leaked.
func findOwnTest(db *gorm.DB, testID int, studentID uint) (models.PersonalizedTest, error) {
	var test models.PersonalizedTest
	err := db.
		Joins("JOIN test_requests ON test_requests.id = personalized_tests.request_id").
		Where("personalized_tests.id = ? AND test_requests.student_id = ?", testID, studentID).
		First(&test).Error
	return test, err
}

func answeredCount(db *gorm.DB, testID, studentID uint) int64 {
	var count int64
	db.Model(&models.StudentAnswer{}).
		Joins("JOIN questions ON questions.id = student_answers.question_id").
		Where("student_answers.student_id = ? AND questions.personalized_test_id = ?", studentID, testID).
		Count(&count)
	return count
}

// ListAssignedTests returns the tests currently waiting on the student.
func ListAssignedTests(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var tests []models.PersonalizedTest
	if err := db.
		Joins("JOIN test_requests ON test_requests.id = personalized_tests.request_id").
		Where("test_requests.student_id = ? AND personalized_tests.status = ?", user.ID, models.TestStatusAssigned).
		Order("test_requests.created_at desc").
		Find(&tests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tests!", nil)
	}

	testList := make([]fiber.Map, len(tests))
	for i, test := range tests {
		var questionCount int64
		db.Model(&models.Question{}).Where("personalized_test_id = ?", test.ID).Count(&questionCount)

		testList[i] = fiber.Map{
			"id":              test.ID,
			"request_id":      test.RequestID,
			"assigned_at":     test.AssignedAt,
			"questions_count": questionCount,
			"answered_count":  answeredCount(db, test.ID, user.ID),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tests fetched successfully.", fiber.Map{
		"tests": testList,
	})
}

// GetTestDetail returns the assigned test with its questions in order, each
// annotated with the student's existing answer if any.
func GetTestDetail(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	db := database.Database.Db

	test, err := findOwnTest(db, testID, user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found.", nil)
	}

	if test.Status != models.TestStatusAssigned {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Test is not available for taking.", nil)
	}

	var questions []models.Question
	db.Where("personalized_test_id = ?", test.ID).Order("order_index asc, id asc").Find(&questions)

	questionList := make([]fiber.Map, len(questions))
	for i, question := range questions {
		var options []models.Option
		db.Where("question_id = ?", question.ID).Order("order_index asc, id asc").Find(&options)

		var selectedOptionID interface{}
		var answer models.StudentAnswer
		if db.Where("question_id = ? AND student_id = ?", question.ID, user.ID).First(&answer).Error == nil {
			selectedOptionID = answer.OptionID
		}

		questionList[i] = fiber.Map{
			"id":                 question.ID,
			"prompt":             question.Prompt,
			"order":              question.OrderIndex,
			"options":            options,
			"selected_option_id": selectedOptionID,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test fetched successfully.", fiber.Map{
		"test": fiber.Map{
			"id":              test.ID,
			"request_id":      test.RequestID,
			"questions":       questionList,
			"total_questions": len(questionList),
			"answered_count":  answeredCount(db, test.ID, user.ID),
		},
	})
}

// SubmitAnswer records the student's choice for one question. Repeat
// submissions overwrite the previous choice, keyed on the unique
// (question, student) index rather than a read-then-write check.
func SubmitAnswer(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	reqData, ok := c.Locals("validatedAnswer").(*struct {
		QuestionID uint `json:"question_id"`
		OptionID   uint `json:"option_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	test, err := findOwnTest(db, testID, user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found.", nil)
	}

	if test.Status != models.TestStatusAssigned {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Test is not available for taking.", nil)
	}

	var question models.Question
	if err := db.Where("id = ? AND personalized_test_id = ?", reqData.QuestionID, test.ID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question or option.", nil)
	}

	var option models.Option
	if err := db.Where("id = ? AND question_id = ?", reqData.OptionID, question.ID).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question or option.", nil)
	}

	answer := models.StudentAnswer{
		QuestionID:  question.ID,
		StudentID:   user.ID,
		OptionID:    option.ID,
		SubmittedAt: time.Now(),
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_id"}, {Name: "student_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"option_id":    option.ID,
			"submitted_at": answer.SubmittedAt,
			"updated_at":   time.Now(),
		}),
	}).Create(&answer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted successfully.", fiber.Map{
		"answer": fiber.Map{
			"question_id": question.ID,
			"option_id":   option.ID,
		},
	})
}

// SubmitTest completes the test once every question has an answer. The test
// and its request move to completed together or not at all.
func SubmitTest(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	db := database.Database.Db

	test, err := findOwnTest(db, testID, user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found.", nil)
	}

	if test.Status != models.TestStatusAssigned {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Test is not available for submission.", nil)
	}

	var totalQuestions int64
	db.Model(&models.Question{}).Where("personalized_test_id = ?", test.ID).Count(&totalQuestions)

	answered := answeredCount(db, test.ID, user.ID)
	if answered < totalQuestions {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			fmt.Sprintf("Please answer all questions. %d/%d answered.", answered, totalQuestions), nil)
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PersonalizedTest{}).Where("id = ?", test.ID).
			Updates(map[string]interface{}{
				"status":       models.TestStatusCompleted,
				"completed_at": now,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.TestRequest{}).Where("id = ?", test.RequestID).
			Update("status", models.RequestStatusCompleted).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit test!", nil)
	}

	test.Status = models.TestStatusCompleted
	test.CompletedAt = &now

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test submitted successfully.", fiber.Map{
		"test": test,
	})
}
