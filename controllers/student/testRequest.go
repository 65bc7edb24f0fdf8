package studentController

import (
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTestRequest opens a new test request for the acting student. The
// profile's interests and qualification are copied onto the request so the
// admin works against what the student looked like at request time.
func CreateTestRequest(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	request := models.TestRequest{
		StudentID:             user.ID,
		InterestsSnapshot:     user.Interests,
		QualificationSnapshot: user.Qualification,
		Status:                models.RequestStatusPending,
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test request created successfully.", request)
}

// ListTestRequests returns the acting student's own requests, newest first.
func ListTestRequests(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var requests []models.TestRequest
	if err := database.Database.Db.
		Where("student_id = ?", user.ID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test requests fetched successfully.", fiber.Map{
		"requests": requests,
		"total":    len(requests),
	})
}

// Dashboard bundles the student's latest request with its test and
// recommendation, if they exist yet.
func Dashboard(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var latestRequest models.TestRequest
	hasRequest := db.Where("student_id = ?", user.ID).Order("created_at desc").First(&latestRequest).Error == nil

	var requestData interface{}
	var testData interface{}
	var recommendationData interface{}

	if hasRequest {
		requestData = latestRequest

		var test models.PersonalizedTest
		if db.Where("request_id = ?", latestRequest.ID).First(&test).Error == nil {
			testData = test

			var recommendation models.CareerRecommendation
			if db.Where("personalized_test_id = ?", test.ID).First(&recommendation).Error == nil {
				recommendationData = recommendation
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"user":              user,
		"latest_request":    requestData,
		"personalized_test": testData,
		"recommendation":    recommendationData,
	})
}
