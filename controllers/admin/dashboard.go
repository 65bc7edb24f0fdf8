package adminController

import (
	"fmt"
	"time"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
)

// dueText turns a request's age into the label the admin board shows.
// Requests are expected to be handled within two days of arrival.
func dueText(createdAt time.Time) string {
	age := time.Since(createdAt)
	switch {
	case age < 24*time.Hour:
		return "Due: Tomorrow"
	case age < 48*time.Hour:
		return "Due: Today"
	default:
		return "Overdue"
	}
}

// Dashboard returns the admin overview: headline counts with short-window
// trends and the five most recent requests still needing attention.
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	var pendingCount int64
	db.Model(&models.TestRequest{}).Where("status = ?", models.RequestStatusPending).Count(&pendingCount)

	var pendingThisWeek int64
	db.Model(&models.TestRequest{}).
		Where("status = ? AND created_at >= ?", models.RequestStatusPending, weekAgo).
		Count(&pendingThisWeek)

	var questionCount int64
	db.Model(&models.Question{}).Count(&questionCount)

	var questionsThisMonth int64
	db.Model(&models.Question{}).Where("created_at >= ?", monthAgo).Count(&questionsThisMonth)

	var recommendationCount int64
	db.Model(&models.CareerRecommendation{}).Count(&recommendationCount)

	var recommendationsThisWeek int64
	db.Model(&models.CareerRecommendation{}).Where("created_at >= ?", weekAgo).Count(&recommendationsThisWeek)

	var studentCount int64
	db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ?", models.RoleStudent, false).
		Count(&studentCount)

	var recentRequests []models.TestRequest
	db.Where("status IN ?", []string{models.RequestStatusPending, models.RequestStatusInProgress}).
		Order("created_at desc").Limit(5).Find(&recentRequests)

	recentList := make([]fiber.Map, len(recentRequests))
	for i, request := range recentRequests {
		var student models.User
		db.Where("id = ?", request.StudentID).First(&student)

		recentList[i] = fiber.Map{
			"id":                     request.ID,
			"status":                 request.Status,
			"student_name":           student.FullName(),
			"student_email":          student.Email,
			"qualification_snapshot": request.QualificationSnapshot,
			"interests_snapshot":     request.InterestsSnapshot,
			"created_at":             request.CreatedAt,
			"due":                    dueText(request.CreatedAt),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"stats": fiber.Map{
			"pending_requests": fiber.Map{
				"count": pendingCount,
				"trend": fmt.Sprintf("+%d this week", pendingThisWeek),
			},
			"questions": fiber.Map{
				"count": questionCount,
				"trend": fmt.Sprintf("+%d this month", questionsThisMonth),
			},
			"recommendations": fiber.Map{
				"count": recommendationCount,
				"trend": fmt.Sprintf("+%d this week", recommendationsThisWeek),
			},
			"students": fiber.Map{
				"count": studentCount,
			},
		},
		"recent_requests": recentList,
	})
}
