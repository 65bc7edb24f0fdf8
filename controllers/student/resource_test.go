package studentController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedRecommendation gives the student a completed test with a published
// recommendation and returns the recommendation.
func seedRecommendation(t *testing.T, studentID uint) models.CareerRecommendation {
	t.Helper()
	db := database.Database.Db

	request := models.TestRequest{StudentID: studentID, Status: models.RequestStatusCompleted}
	require.NoError(t, db.Create(&request).Error)
	test := models.PersonalizedTest{RequestID: request.ID, Status: models.TestStatusCompleted}
	require.NoError(t, db.Create(&test).Error)

	recommendation := models.CareerRecommendation{
		PersonalizedTestID: test.ID,
		CareerName:         "Data Analyst",
		Summary:            "Pattern-oriented thinker.",
	}
	require.NoError(t, db.Create(&recommendation).Error)
	return recommendation
}

func TestResourceVisibility(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, token := createStudent(t, "student@example.com")
	other, _ := createStudent(t, "other@example.com")

	ownRec := seedRecommendation(t, student.ID)
	otherRec := seedRecommendation(t, other.ID)

	general := models.CareerResource{Title: "SQL Basics", IsActive: true}
	require.NoError(t, db.Create(&general).Error)
	mine := models.CareerResource{Title: "Analytics Roadmap", RecommendationID: &ownRec.ID, IsActive: true}
	require.NoError(t, db.Create(&mine).Error)
	foreign := models.CareerResource{Title: "Design Portfolio Tips", RecommendationID: &otherRec.ID, IsActive: true}
	require.NoError(t, db.Create(&foreign).Error)
	inactive := models.CareerResource{Title: "Retired Course", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	code, resp := doJSON(t, app, http.MethodGet, "/student/resources", token, nil)
	require.Equal(t, http.StatusOK, code)

	var listing struct {
		Resources []struct {
			Title string `json:"title"`
		} `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listing))

	titles := make([]string, len(listing.Resources))
	for i, resource := range listing.Resources {
		titles[i] = resource.Title
	}
	assert.ElementsMatch(t, []string{"SQL Basics", "Analytics Roadmap"}, titles)

	// Another student's tied resource is invisible by id too.
	code, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/student/resources/%d", foreign.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/student/resources/%d", inactive.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestProgressTimestampsNeverReset(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	student, token := createStudent(t, "student@example.com")

	resource := models.CareerResource{Title: "Go Course", IsActive: true}
	require.NoError(t, db.Create(&resource).Error)

	progressPath := fmt.Sprintf("/student/resources/%d/progress", resource.ID)

	code, _ := doJSON(t, app, http.MethodPost, progressPath, token, fiber.Map{
		"status": models.ProgressInProgress,
	})
	require.Equal(t, http.StatusCreated, code)

	var progress models.StudentResourceProgress
	require.NoError(t, db.Where("student_id = ? AND resource_id = ?", student.ID, resource.ID).First(&progress).Error)
	require.NotNil(t, progress.StartedAt)
	assert.Nil(t, progress.CompletedAt)
	startedAt := *progress.StartedAt

	time.Sleep(10 * time.Millisecond)

	code, _ = doJSON(t, app, http.MethodPost, progressPath, token, fiber.Map{
		"status": models.ProgressCompleted,
		"notes":  "done",
	})
	require.Equal(t, http.StatusCreated, code)

	require.NoError(t, db.Where("student_id = ? AND resource_id = ?", student.ID, resource.ID).First(&progress).Error)
	require.NotNil(t, progress.CompletedAt)
	assert.Equal(t, startedAt.Unix(), progress.StartedAt.Unix())
	assert.Equal(t, "done", progress.Notes)
	completedAt := *progress.CompletedAt

	// Going back to in_progress keeps both original timestamps.
	code, _ = doJSON(t, app, http.MethodPost, progressPath, token, fiber.Map{
		"status": models.ProgressInProgress,
	})
	require.Equal(t, http.StatusCreated, code)

	require.NoError(t, db.Where("student_id = ? AND resource_id = ?", student.ID, resource.ID).First(&progress).Error)
	assert.Equal(t, models.ProgressInProgress, progress.Status)
	assert.Equal(t, startedAt.Unix(), progress.StartedAt.Unix())
	require.NotNil(t, progress.CompletedAt)
	assert.Equal(t, completedAt.Unix(), progress.CompletedAt.Unix())

	// Still a single row after three writes.
	var rows int64
	db.Model(&models.StudentResourceProgress{}).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestProgressValidation(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	_, token := createStudent(t, "student@example.com")

	resource := models.CareerResource{Title: "Go Course", IsActive: true}
	require.NoError(t, db.Create(&resource).Error)

	code, resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/student/resources/%d/progress", resource.ID), token, fiber.Map{
		"status": "almost_done",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation failed!", resp.Message)
}

func TestMyResources(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	_, token := createStudent(t, "student@example.com")

	first := models.CareerResource{Title: "First", IsActive: true}
	require.NoError(t, db.Create(&first).Error)
	second := models.CareerResource{Title: "Second", IsActive: true}
	require.NoError(t, db.Create(&second).Error)

	code, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/student/resources/%d/progress", first.ID), token, fiber.Map{
		"status":      models.ProgressCompleted,
		"is_favorite": true,
	})
	require.Equal(t, http.StatusCreated, code)

	code, resp := doJSON(t, app, http.MethodGet, "/student/my-resources", token, nil)
	require.Equal(t, http.StatusOK, code)

	var listing struct {
		Resources []struct {
			Title    string `json:"title"`
			Progress struct {
				Status     string `json:"status"`
				IsFavorite bool   `json:"is_favorite"`
			} `json:"progress"`
		} `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listing))
	require.Len(t, listing.Resources, 1)
	assert.Equal(t, "First", listing.Resources[0].Title)
	assert.Equal(t, models.ProgressCompleted, listing.Resources[0].Progress.Status)
	assert.True(t, listing.Resources[0].Progress.IsFavorite)
}
