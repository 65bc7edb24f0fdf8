package studentController

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"
	"github.com/Niaal-B/CareerPath/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func studentRecommendationIDs(db *gorm.DB, studentID uint) []uint {
	var ids []uint
	db.Model(&models.CareerRecommendation{}).
		Joins("JOIN personalized_tests ON personalized_tests.id = career_recommendations.personalized_test_id").
		Joins("JOIN test_requests ON test_requests.id = personalized_tests.request_id").
		Where("test_requests.student_id = ?", studentID).
		Pluck("career_recommendations.id", &ids)
	return ids
}

// ListRecommendations returns the student's recommendations with their
// roadmap steps and visible resources (those tied to the recommendation
// plus general ones).
func ListRecommendations(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var recommendations []models.CareerRecommendation
	if err := db.
		Joins("JOIN personalized_tests ON personalized_tests.id = career_recommendations.personalized_test_id").
		Joins("JOIN test_requests ON test_requests.id = personalized_tests.request_id").
		Where("test_requests.student_id = ?", user.ID).
		Order("career_recommendations.created_at desc").
		Find(&recommendations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recommendations!", nil)
	}

	recommendationList := make([]fiber.Map, len(recommendations))
	for i, rec := range recommendations {
		var steps []models.RoadmapStep
		db.Where("recommendation_id = ?", rec.ID).Order("order_index asc").Find(&steps)

		var resources []models.CareerResource
		db.Where("is_active = ? AND (recommendation_id = ? OR recommendation_id IS NULL)", true, rec.ID).
			Order("order_index asc, created_at asc").
			Find(&resources)

		var test models.PersonalizedTest
		db.Where("id = ?", rec.PersonalizedTestID).First(&test)

		var jobs []models.JobRecommendation
		db.Where("recommendation_id = ? AND is_active = ?", rec.ID, true).
			Order("order_index asc, created_at asc").
			Find(&jobs)

		recommendationList[i] = fiber.Map{
			"id":          rec.ID,
			"career_name": rec.CareerName,
			"summary":     rec.Summary,
			"companies":   rec.Companies,
			"created_at":  rec.CreatedAt,
			"steps":       steps,
			"resources":   resources,
			"jobs":        jobs,
			"test_id":     rec.PersonalizedTestID,
			"request_id":  test.RequestID,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully.", fiber.Map{
		"recommendations": recommendationList,
	})
}

// ExportRecommendation hands the recommendation and student data to the
// external PDF renderer and streams the document back.
func ExportRecommendation(c *fiber.Ctx) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	recommendationID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recommendation id!", nil)
	}

	db := database.Database.Db

	var recommendation models.CareerRecommendation
	if err := db.
		Joins("JOIN personalized_tests ON personalized_tests.id = career_recommendations.personalized_test_id").
		Joins("JOIN test_requests ON test_requests.id = personalized_tests.request_id").
		Where("career_recommendations.id = ? AND test_requests.student_id = ?", recommendationID, user.ID).
		First(&recommendation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Recommendation not found.", nil)
	}

	var steps []models.RoadmapStep
	db.Where("recommendation_id = ?", recommendation.ID).Order("order_index asc").Find(&steps)

	exportSteps := make([]utils.ExportRoadmapStep, len(steps))
	for i, step := range steps {
		exportSteps[i] = utils.ExportRoadmapStep{
			Order:       step.OrderIndex,
			Title:       step.Title,
			Description: step.Description,
		}
	}

	var companies []string
	if len(recommendation.Companies) > 0 {
		if err := json.Unmarshal(recommendation.Companies, &companies); err != nil {
			companies = nil
		}
	}

	pdfBytes, err := utils.RenderRecommendationPDF(utils.RecommendationExport{
		CareerName: recommendation.CareerName,
		Summary:    recommendation.Summary,
		Companies:  companies,
		Steps:      exportSteps,
		Student: utils.ExportStudentProfile{
			Name:          user.FullName(),
			Email:         user.Email,
			Qualification: user.Qualification,
			Interests:     user.Interests,
		},
		CreatedAt: recommendation.CreatedAt.Format("2006-01-02"),
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export recommendation!", nil)
	}

	filename := fmt.Sprintf(
		"CareerPath_Recommendation_%s_%s.pdf",
		strings.ReplaceAll(recommendation.CareerName, " ", "_"),
		recommendation.CreatedAt.Format("20060102"),
	)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
