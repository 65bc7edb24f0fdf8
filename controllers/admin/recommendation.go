package adminController

import (
	"encoding/json"
	"log"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"
	"github.com/Niaal-B/CareerPath/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateRecommendation publishes a career recommendation for a completed
// test. A test can only ever hold one.
func CreateRecommendation(c *fiber.Ctx) error {
	admin, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test id!", nil)
	}

	reqData, ok := c.Locals("validatedRecommendation").(*struct {
		CareerName string   `json:"career_name"`
		Summary    string   `json:"summary"`
		Companies  []string `json:"companies"`
		Steps      []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"steps"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var test models.PersonalizedTest
	if err := db.Where("id = ? AND status = ?", testID, models.TestStatusCompleted).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Test not found or not completed.", nil)
	}

	var existing models.CareerRecommendation
	if err := db.Where("personalized_test_id = ?", test.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Recommendation already exists for this test.", nil)
	}

	companiesJSON, err := json.Marshal(reqData.Companies)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid companies list!", nil)
	}

	adminID := admin.ID
	recommendation := models.CareerRecommendation{
		PersonalizedTestID: test.ID,
		AdminID:            &adminID,
		CareerName:         reqData.CareerName,
		Summary:            reqData.Summary,
		Companies:          companiesJSON,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recommendation).Error; err != nil {
			return err
		}
		for i, stepData := range reqData.Steps {
			step := models.RoadmapStep{
				RecommendationID: recommendation.ID,
				OrderIndex:       i + 1,
				Title:            stepData.Title,
				Description:      stepData.Description,
			}
			if err := tx.Create(&step).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create recommendation!", nil)
	}

	var steps []models.RoadmapStep
	db.Where("recommendation_id = ?", recommendation.ID).Order("order_index asc").Find(&steps)

	// Best-effort notification.
	var request models.TestRequest
	var student models.User
	if db.Where("id = ?", test.RequestID).First(&request).Error == nil &&
		db.Where("id = ?", request.StudentID).First(&student).Error == nil {
		if err := utils.SendRecommendationEmail(student.Email, student.FullName(), recommendation.CareerName); err != nil {
			log.Printf("Error sending recommendation email: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Recommendation created successfully.", fiber.Map{
		"recommendation": fiber.Map{
			"id":          recommendation.ID,
			"career_name": recommendation.CareerName,
			"summary":     recommendation.Summary,
			"companies":   recommendation.Companies,
			"created_at":  recommendation.CreatedAt,
			"steps":       steps,
		},
	})
}

// ListRecommendations returns every recommendation with the owning
// student's email, newest first.
func ListRecommendations(c *fiber.Ctx) error {
	db := database.Database.Db

	var recommendations []models.CareerRecommendation
	if err := db.Order("created_at desc").Find(&recommendations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recommendations!", nil)
	}

	recommendationList := make([]fiber.Map, len(recommendations))
	for i, recommendation := range recommendations {
		var test models.PersonalizedTest
		db.Where("id = ?", recommendation.PersonalizedTestID).First(&test)

		var request models.TestRequest
		db.Where("id = ?", test.RequestID).First(&request)

		var student models.User
		db.Where("id = ?", request.StudentID).First(&student)

		recommendationList[i] = fiber.Map{
			"id":            recommendation.ID,
			"career_name":   recommendation.CareerName,
			"student_email": student.Email,
			"created_at":    recommendation.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully.", fiber.Map{
		"recommendations": recommendationList,
	})
}

// AddJobRecommendation links a company job opening to a recommendation.
func AddJobRecommendation(c *fiber.Ctx) error {
	recommendationID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recommendation id!", nil)
	}

	reqData, ok := c.Locals("validatedJob").(*struct {
		CompanyID      uint   `json:"company_id"`
		JobTitle       string `json:"job_title"`
		JobDescription string `json:"job_description"`
		Requirements   string `json:"requirements"`
		SalaryRange    string `json:"salary_range"`
		JobType        string `json:"job_type"`
		ApplicationURL string `json:"application_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var recommendation models.CareerRecommendation
	if err := db.Where("id = ?", recommendationID).First(&recommendation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Recommendation not found.", nil)
	}

	var company models.Company
	if err := db.Where("id = ? AND is_active = ?", reqData.CompanyID, true).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Company not found!", nil)
	}

	var maxOrder int
	db.Model(&models.JobRecommendation{}).Where("recommendation_id = ?", recommendation.ID).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	job := models.JobRecommendation{
		RecommendationID: recommendation.ID,
		CompanyID:        company.ID,
		JobTitle:         reqData.JobTitle,
		JobDescription:   reqData.JobDescription,
		Requirements:     reqData.Requirements,
		SalaryRange:      reqData.SalaryRange,
		JobType:          reqData.JobType,
		ApplicationURL:   reqData.ApplicationURL,
		OrderIndex:       maxOrder + 1,
	}

	if job.JobType == "" {
		job.JobType = "full_time"
	}

	if err := db.Create(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job recommendation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job recommendation created successfully.", job)
}
