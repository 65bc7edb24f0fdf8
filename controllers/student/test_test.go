package studentController_test

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
	return app
}

func createStudent(t *testing.T, email string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     "Test",
		LastName:      "Student",
		Role:          models.RoleStudent,
		Qualification: "plus_two",
		Interests:     "science",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

// seedAssignedTest creates an assigned test for the student with two
// questions of two options each.
func seedAssignedTest(t *testing.T, studentID uint) (models.PersonalizedTest, []models.Question) {
	t.Helper()
	db := database.Database.Db

	request := models.TestRequest{StudentID: studentID, Status: models.RequestStatusAssigned}
	require.NoError(t, db.Create(&request).Error)

	test := models.PersonalizedTest{RequestID: request.ID, Status: models.TestStatusAssigned}
	require.NoError(t, db.Create(&test).Error)

	var questions []models.Question
	for i := 1; i <= 2; i++ {
		question := models.Question{
			PersonalizedTestID: test.ID,
			Prompt:             fmt.Sprintf("Question %d", i),
			OrderIndex:         i,
		}
		require.NoError(t, db.Create(&question).Error)
		for j := 1; j <= 2; j++ {
			option := models.Option{
				QuestionID: question.ID,
				Label:      fmt.Sprintf("Option %d-%d", i, j),
				OrderIndex: j,
			}
			require.NoError(t, db.Create(&option).Error)
		}
		questions = append(questions, question)
	}
	return test, questions
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

func TestSubmitAnswerUpsert(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, token := createStudent(t, "student@example.com")
	test, questions := seedAssignedTest(t, student.ID)

	var options []models.Option
	require.NoError(t, db.Where("question_id = ?", questions[0].ID).Order("order_index asc").Find(&options).Error)
	require.Len(t, options, 2)

	answerPath := fmt.Sprintf("/student/tests/%d/answer", test.ID)

	code, _ := doJSON(t, app, http.MethodPost, answerPath, token, fiber.Map{
		"question_id": questions[0].ID,
		"option_id":   options[0].ID,
	})
	require.Equal(t, http.StatusOK, code)

	// Changing the answer overwrites, it never duplicates.
	code, _ = doJSON(t, app, http.MethodPost, answerPath, token, fiber.Map{
		"question_id": questions[0].ID,
		"option_id":   options[1].ID,
	})
	require.Equal(t, http.StatusOK, code)

	var answers []models.StudentAnswer
	require.NoError(t, db.Where("question_id = ? AND student_id = ?", questions[0].ID, student.ID).Find(&answers).Error)
	require.Len(t, answers, 1)
	assert.Equal(t, options[1].ID, answers[0].OptionID)
}

func TestSubmitAnswerRejectsForeignOption(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, token := createStudent(t, "student@example.com")
	test, questions := seedAssignedTest(t, student.ID)

	// An option belonging to question 2 is invalid for question 1.
	var foreignOption models.Option
	require.NoError(t, db.Where("question_id = ?", questions[1].ID).First(&foreignOption).Error)

	code, resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/student/tests/%d/answer", test.ID), token, fiber.Map{
		"question_id": questions[0].ID,
		"option_id":   foreignOption.ID,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid question or option.", resp.Message)

	var answerCount int64
	db.Model(&models.StudentAnswer{}).Count(&answerCount)
	assert.Equal(t, int64(0), answerCount)
}

func TestTestOwnershipScoping(t *testing.T) {
	app := setupTestApp(t)

	owner, _ := createStudent(t, "owner@example.com")
	_, intruderToken := createStudent(t, "intruder@example.com")
	test, questions := seedAssignedTest(t, owner.ID)

	var option models.Option
	require.NoError(t, database.Database.Db.Where("question_id = ?", questions[0].ID).First(&option).Error)

	// Another student gets the same response as for a missing test.
	code, resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/student/tests/%d", test.ID), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Test not found.", resp.Message)

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/student/tests/%d/answer", test.ID), intruderToken, fiber.Map{
		"question_id": questions[0].ID,
		"option_id":   option.ID,
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/student/tests/%d/submit", test.ID), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGetTestDetailOnlyWhenAssigned(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, token := createStudent(t, "student@example.com")

	request := models.TestRequest{StudentID: student.ID, Status: models.RequestStatusInProgress}
	require.NoError(t, db.Create(&request).Error)
	test := models.PersonalizedTest{RequestID: request.ID, Status: models.TestStatusDraft}
	require.NoError(t, db.Create(&test).Error)

	code, resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/student/tests/%d", test.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Test is not available for taking.", resp.Message)
}

func TestListAssignedTests(t *testing.T) {
	app := setupTestApp(t)

	student, token := createStudent(t, "student@example.com")
	test, _ := seedAssignedTest(t, student.ID)

	code, resp := doJSON(t, app, http.MethodGet, "/student/tests", token, nil)
	require.Equal(t, http.StatusOK, code)

	var listing struct {
		Tests []struct {
			ID             uint  `json:"id"`
			QuestionsCount int64 `json:"questions_count"`
			AnsweredCount  int64 `json:"answered_count"`
		} `json:"tests"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listing))
	require.Len(t, listing.Tests, 1)
	assert.Equal(t, test.ID, listing.Tests[0].ID)
	assert.Equal(t, int64(2), listing.Tests[0].QuestionsCount)
	assert.Equal(t, int64(0), listing.Tests[0].AnsweredCount)
}
