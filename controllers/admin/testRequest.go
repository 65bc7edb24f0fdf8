package adminController

import (
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
)

// ListTestRequests returns every test request, newest first, optionally
// filtered by status.
func ListTestRequests(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.TestRequest{}).Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.TestRequest
	if err := query.Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test requests!", nil)
	}

	requestList := make([]fiber.Map, len(requests))
	for i, request := range requests {
		var student models.User
		db.Where("id = ?", request.StudentID).First(&student)

		requestList[i] = fiber.Map{
			"id":                     request.ID,
			"status":                 request.Status,
			"interests_snapshot":     request.InterestsSnapshot,
			"qualification_snapshot": request.QualificationSnapshot,
			"created_at":             request.CreatedAt,
			"student": fiber.Map{
				"id":    student.ID,
				"email": student.Email,
				"name":  student.FullName(),
			},
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test requests fetched successfully.", fiber.Map{
		"requests": requestList,
		"total":    len(requestList),
	})
}

// GetTestByRequest returns the test drafted for a request, if one exists.
func GetTestByRequest(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	db := database.Database.Db

	var request models.TestRequest
	if err := db.Where("id = ?", requestID).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test request not found.", nil)
	}

	var test models.PersonalizedTest
	if err := db.Where("request_id = ?", request.ID).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No test created for this request yet.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test fetched successfully.", testDetailView(test))
}
