package adminController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Niaal-B/CareerPath/config"
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"
	adminRoutes "github.com/Niaal-B/CareerPath/routers/adminRoutes"
	studentRoutes "github.com/Niaal-B/CareerPath/routers/studentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	studentRoutes.SetupStudentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	return app
}

func createUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     "Test",
		LastName:      role,
		Role:          role,
		Qualification: "plus_two",
		Interests:     "science, design",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

// Walks the whole request-to-recommendation pipeline through the HTTP
// surface, checking the state machine at each step.
func TestRequestToRecommendationWorkflow(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, studentToken := createUser(t, "student@example.com", models.RoleStudent)
	_, adminToken := createUser(t, "admin@example.com", models.RoleAdmin)

	// Student asks for a test.
	code, resp := doJSON(t, app, http.MethodPost, "/student/test-requests", studentToken, fiber.Map{})
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var request models.TestRequest
	require.NoError(t, db.Where("student_id = ?", student.ID).First(&request).Error)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, "science, design", request.InterestsSnapshot)

	// Admin sees it in the pending queue.
	code, resp = doJSON(t, app, http.MethodGet, "/admin/test-requests?status=pending", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var queue struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &queue))
	assert.Equal(t, 1, queue.Total)

	// Students may not touch the admin queue.
	code, _ = doJSON(t, app, http.MethodGet, "/admin/test-requests", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// Admin drafts the test; the request moves along with it.
	createTestPath := fmt.Sprintf("/admin/test-requests/%d/create-test", request.ID)
	code, resp = doJSON(t, app, http.MethodPost, createTestPath, adminToken, nil)
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var test models.PersonalizedTest
	require.NoError(t, db.Where("request_id = ?", request.ID).First(&test).Error)
	assert.Equal(t, models.TestStatusDraft, test.Status)

	db.First(&request, request.ID)
	assert.Equal(t, models.RequestStatusInProgress, request.Status)

	// Creating again is a no-op on the existing test.
	code, resp = doJSON(t, app, http.MethodPost, createTestPath, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Test already exists.", resp.Message)

	// An empty test cannot go out.
	code, resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/admin/tests/%d/assign", test.ID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cannot assign test without questions.", resp.Message)

	// Manual question.
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/admin/tests/%d/questions", test.ID), adminToken, fiber.Map{
		"prompt": "Which activity do you enjoy most?",
		"options": []fiber.Map{
			{"label": "Building things"},
			{"label": "Explaining ideas"},
			{"label": "Organizing events"},
		},
	})
	require.Equal(t, http.StatusCreated, code)

	// Bank category + template, then copy it in.
	code, resp = doJSON(t, app, http.MethodPost, "/admin/question-categories", adminToken, fiber.Map{
		"name":              "Plus Two",
		"qualification_tag": "plus_two",
	})
	require.Equal(t, http.StatusCreated, code)
	var category models.QuestionCategory
	require.NoError(t, json.Unmarshal(resp.Data, &category))

	code, _ = doJSON(t, app, http.MethodPost, "/admin/question-templates", adminToken, fiber.Map{
		"category_id": category.ID,
		"prompt":      "How do you prefer to solve problems?",
		"options": []fiber.Map{
			{"label": "By experimenting"},
			{"label": "By researching first"},
		},
	})
	require.Equal(t, http.StatusCreated, code)

	addTemplatesPath := fmt.Sprintf("/admin/tests/%d/add-templates", test.ID)
	code, resp = doJSON(t, app, http.MethodPost, addTemplatesPath, adminToken, fiber.Map{
		"category_ids": []uint{category.ID},
	})
	require.Equal(t, http.StatusCreated, code)
	var added struct {
		AddedQuestions int `json:"added_questions"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &added))
	assert.Equal(t, 1, added.AddedQuestions)

	// Copying the same templates again adds nothing.
	code, resp = doJSON(t, app, http.MethodPost, addTemplatesPath, adminToken, fiber.Map{
		"category_ids": []uint{category.ID},
	})
	assert.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &added))
	assert.Equal(t, 0, added.AddedQuestions)

	// Neither ids nor categories is a validation error.
	code, _ = doJSON(t, app, http.MethodPost, addTemplatesPath, adminToken, fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, code)

	// Assign.
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/admin/tests/%d/assign", test.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	db.First(&test, test.ID)
	assert.Equal(t, models.TestStatusAssigned, test.Status)
	require.NotNil(t, test.AssignedAt)

	// Student answers every question and submits.
	var questions []models.Question
	db.Where("personalized_test_id = ?", test.ID).Order("order_index asc").Find(&questions)
	require.Len(t, questions, 2)

	submitPath := fmt.Sprintf("/student/tests/%d/submit", test.ID)
	code, resp = doJSON(t, app, http.MethodPost, submitPath, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please answer all questions. 0/2 answered.", resp.Message)

	for _, question := range questions {
		var option models.Option
		require.NoError(t, db.Where("question_id = ?", question.ID).First(&option).Error)
		code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/student/tests/%d/answer", test.ID), studentToken, fiber.Map{
			"question_id": question.ID,
			"option_id":   option.ID,
		})
		require.Equal(t, http.StatusOK, code)
	}

	code, _ = doJSON(t, app, http.MethodPost, submitPath, studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	db.First(&test, test.ID)
	assert.Equal(t, models.TestStatusCompleted, test.Status)
	require.NotNil(t, test.CompletedAt)
	db.First(&request, request.ID)
	assert.Equal(t, models.RequestStatusCompleted, request.Status)

	// Completed queue and submitted answers.
	code, resp = doJSON(t, app, http.MethodGet, "/admin/tests/completed", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var completed struct {
		Tests []struct {
			ID                uint `json:"id"`
			HasRecommendation bool `json:"has_recommendation"`
		} `json:"tests"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &completed))
	require.Len(t, completed.Tests, 1)
	assert.False(t, completed.Tests[0].HasRecommendation)

	code, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/admin/tests/%d/answers", test.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	// Recommendation, exactly once.
	recommendationPath := fmt.Sprintf("/admin/tests/%d/recommendation", test.ID)
	code, resp = doJSON(t, app, http.MethodPost, recommendationPath, adminToken, fiber.Map{
		"career_name": "Product Designer",
		"summary":     "Strong visual and analytical balance.",
		"companies":   []string{"Zoho", "Freshworks"},
		"steps": []fiber.Map{
			{"title": "Learn design fundamentals", "description": "Figma, typography, color."},
			{"title": "Build a portfolio"},
		},
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)

	code, resp = doJSON(t, app, http.MethodPost, recommendationPath, adminToken, fiber.Map{
		"career_name": "Something Else",
		"summary":     "Duplicate.",
		"steps":       []fiber.Map{{"title": "Step"}},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Recommendation already exists for this test.", resp.Message)

	var stepCount int64
	db.Model(&models.RoadmapStep{}).Count(&stepCount)
	assert.Equal(t, int64(2), stepCount)

	// Admin listing carries the student email.
	code, resp = doJSON(t, app, http.MethodGet, "/admin/recommendations", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var recommendations struct {
		Recommendations []struct {
			CareerName   string `json:"career_name"`
			StudentEmail string `json:"student_email"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &recommendations))
	require.Len(t, recommendations.Recommendations, 1)
	assert.Equal(t, "student@example.com", recommendations.Recommendations[0].StudentEmail)

	// Student now sees the recommendation.
	code, resp = doJSON(t, app, http.MethodGet, "/student/recommendations", studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	var studentRecs struct {
		Recommendations []struct {
			CareerName string `json:"career_name"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &studentRecs))
	require.Len(t, studentRecs.Recommendations, 1)
	assert.Equal(t, "Product Designer", studentRecs.Recommendations[0].CareerName)
}

func TestRecommendationRequiresCompletedTest(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, _ := createUser(t, "student@example.com", models.RoleStudent)
	_, adminToken := createUser(t, "admin@example.com", models.RoleAdmin)

	request := models.TestRequest{StudentID: student.ID, Status: models.RequestStatusInProgress}
	require.NoError(t, db.Create(&request).Error)
	test := models.PersonalizedTest{RequestID: request.ID, Status: models.TestStatusDraft}
	require.NoError(t, db.Create(&test).Error)

	code, resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/admin/tests/%d/recommendation", test.ID), adminToken, fiber.Map{
		"career_name": "Engineer",
		"summary":     "Too early.",
		"steps":       []fiber.Map{{"title": "Step"}},
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Test not found or not completed.", resp.Message)

	// Same response for a test that does not exist at all.
	code, resp = doJSON(t, app, http.MethodPost, "/admin/tests/9999/recommendation", adminToken, fiber.Map{
		"career_name": "Engineer",
		"summary":     "Missing.",
		"steps":       []fiber.Map{{"title": "Step"}},
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Test not found or not completed.", resp.Message)
}

func TestGetTestByRequest(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, _ := createUser(t, "student@example.com", models.RoleStudent)
	_, adminToken := createUser(t, "admin@example.com", models.RoleAdmin)

	request := models.TestRequest{StudentID: student.ID, Status: models.RequestStatusPending}
	require.NoError(t, db.Create(&request).Error)

	code, resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/admin/test-requests/%d/test", request.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No test created for this request yet.", resp.Message)

	code, resp = doJSON(t, app, http.MethodGet, "/admin/test-requests/9999/test", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Test request not found.", resp.Message)

	test := models.PersonalizedTest{RequestID: request.ID, Status: models.TestStatusDraft}
	require.NoError(t, db.Create(&test).Error)

	code, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/admin/test-requests/%d/test", request.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestDashboardStats(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, _ := createUser(t, "student@example.com", models.RoleStudent)
	_, adminToken := createUser(t, "admin@example.com", models.RoleAdmin)

	for i := 0; i < 3; i++ {
		request := models.TestRequest{StudentID: student.ID, Status: models.RequestStatusPending}
		require.NoError(t, db.Create(&request).Error)
	}

	code, resp := doJSON(t, app, http.MethodGet, "/admin/dashboard/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	var dashboard struct {
		Stats struct {
			PendingRequests struct {
				Count int64  `json:"count"`
				Trend string `json:"trend"`
			} `json:"pending_requests"`
			Students struct {
				Count int64 `json:"count"`
			} `json:"students"`
		} `json:"stats"`
		RecentRequests []struct {
			Due string `json:"due"`
		} `json:"recent_requests"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &dashboard))
	assert.Equal(t, int64(3), dashboard.Stats.PendingRequests.Count)
	assert.Equal(t, "+3 this week", dashboard.Stats.PendingRequests.Trend)
	assert.Equal(t, int64(1), dashboard.Stats.Students.Count)
	require.Len(t, dashboard.RecentRequests, 3)
	assert.Equal(t, "Due: Tomorrow", dashboard.RecentRequests[0].Due)
}
