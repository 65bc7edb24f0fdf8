package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Niaal-B/CareerPath/config"
	"github.com/Niaal-B/CareerPath/database"
	authRoutes "github.com/Niaal-B/CareerPath/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	authRoutes.SetupAuthRoutes(app)
	return app
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

func TestRegisterLoginAndMe(t *testing.T) {
	app := setupTestApp(t)

	code, resp := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":         "ananya@example.com",
		"password":      "password123",
		"first_name":    "Ananya",
		"last_name":     "Nair",
		"qualification": "plus_two",
		"interests":     "science, design",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, resp.Status)

	// Registering with the same email again must conflict.
	code, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":      "ananya@example.com",
		"password":   "password123",
		"first_name": "Ananya",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, resp = doJSON(t, app, http.MethodPost, "/auth/token", "", fiber.Map{
		"email":    "ananya@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, code)

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &tokens))
	require.NotEmpty(t, tokens.Access)
	require.NotEmpty(t, tokens.Refresh)

	code, resp = doJSON(t, app, http.MethodGet, "/auth/me", tokens.Access, nil)
	require.Equal(t, http.StatusOK, code)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, "ananya@example.com", me.Email)
	assert.Equal(t, "student", me.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := setupTestApp(t)

	doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":      "ravi@example.com",
		"password":   "password123",
		"first_name": "Ravi",
	})

	code, _ := doJSON(t, app, http.MethodPost, "/auth/token", "", fiber.Map{
		"email":    "ravi@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, app, http.MethodPost, "/auth/token", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegisterValidation(t *testing.T) {
	app := setupTestApp(t)

	code, resp := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":      "not-an-email",
		"password":   "short",
		"first_name": "",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Status)

	var errors map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &errors))
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "password")
	assert.Contains(t, errors, "first_name")
}

func TestRefreshTokenFlow(t *testing.T) {
	app := setupTestApp(t)

	doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":      "maya@example.com",
		"password":   "password123",
		"first_name": "Maya",
	})
	_, resp := doJSON(t, app, http.MethodPost, "/auth/token", "", fiber.Map{
		"email":    "maya@example.com",
		"password": "password123",
	})

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &tokens))

	// A refresh token must not pass as an access token.
	code, _ := doJSON(t, app, http.MethodGet, "/auth/me", tokens.Refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Exchanging the refresh token yields a fresh pair.
	code, resp = doJSON(t, app, http.MethodPost, "/auth/token/refresh", "", fiber.Map{
		"refresh": tokens.Refresh,
	})
	require.Equal(t, http.StatusOK, code)

	var refreshed struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &refreshed))
	require.NotEmpty(t, refreshed.Access)

	code, _ = doJSON(t, app, http.MethodGet, "/auth/me", refreshed.Access, nil)
	assert.Equal(t, http.StatusOK, code)

	// An access token is not a refresh token.
	code, _ = doJSON(t, app, http.MethodPost, "/auth/token/refresh", "", fiber.Map{
		"refresh": refreshed.Access,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}
