package adminValidator

import (
	"strconv"
	"strings"

	"github.com/Niaal-B/CareerPath/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// resourceForm carries the multipart form fields through validation. The
// file itself is handled by the controller.
type resourceForm struct {
	Title           string `validate:"required"`
	URL             string `validate:"omitempty,url"`
	ResourceType    string `validate:"omitempty,oneof=article video course book certification tool community report other"`
	DifficultyLevel string `validate:"omitempty,oneof=beginner intermediate advanced"`
}

func parseOptionalUint(value string) (*uint, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, false
	}
	id := uint(parsed)
	return &id, true
}

func parseOptionalFloat(value string) (*float64, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func parseOptionalBool(value string) (*bool, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func resourceFormErrors(form resourceForm) map[string]string {
	errors := make(map[string]string)
	if err := validate.Struct(form); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Title":
				errors["title"] = "Title is required!"
			case "URL":
				errors["url"] = "Invalid URL!"
			case "ResourceType":
				errors["resource_type"] = "Invalid resource type!"
			case "DifficultyLevel":
				errors["difficulty_level"] = "Invalid difficulty level!"
			}
		}
	}
	return errors
}

// CreateResourceCategory validator middleware
func CreateResourceCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) == 0 {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResourceCategory", reqData)
		return c.Next()
	}
}

// UpdateResourceCategory validator middleware
func UpdateResourceCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedResourceCategoryUpdate", reqData)
		return c.Next()
	}
}

// CreateResource validator middleware. Resources arrive as multipart form
// data so a file can ride along.
func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := resourceForm{
			Title:           strings.TrimSpace(c.FormValue("title")),
			URL:             c.FormValue("url"),
			ResourceType:    c.FormValue("resource_type"),
			DifficultyLevel: c.FormValue("difficulty_level"),
		}
		errors := resourceFormErrors(form)

		recommendationID, ok := parseOptionalUint(c.FormValue("recommendation_id"))
		if !ok {
			errors["recommendation_id"] = "Invalid recommendation id!"
		}
		categoryID, ok := parseOptionalUint(c.FormValue("category_id"))
		if !ok {
			errors["category_id"] = "Invalid category id!"
		}
		cost, ok := parseOptionalFloat(c.FormValue("cost"))
		if !ok {
			errors["cost"] = "Invalid cost!"
		}
		isFree, ok := parseOptionalBool(c.FormValue("is_free"))
		if !ok {
			errors["is_free"] = "Invalid is_free value!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData := &struct {
			Title            string
			Description      string
			ResourceType     string
			URL              string
			DifficultyLevel  string
			RecommendationID *uint
			CategoryID       *uint
			IsFree           bool
			Cost             *float64
		}{
			Title:            form.Title,
			Description:      c.FormValue("description"),
			ResourceType:     form.ResourceType,
			URL:              form.URL,
			DifficultyLevel:  form.DifficultyLevel,
			RecommendationID: recommendationID,
			CategoryID:       categoryID,
			IsFree:           isFree == nil || *isFree,
			Cost:             cost,
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

// UpdateResource validator middleware
func UpdateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := resourceForm{
			// Title is optional on update; satisfy the required rule when absent.
			Title:           "update",
			URL:             c.FormValue("url"),
			ResourceType:    c.FormValue("resource_type"),
			DifficultyLevel: c.FormValue("difficulty_level"),
		}
		errors := resourceFormErrors(form)

		categoryID, ok := parseOptionalUint(c.FormValue("category_id"))
		if !ok {
			errors["category_id"] = "Invalid category id!"
		}
		cost, ok := parseOptionalFloat(c.FormValue("cost"))
		if !ok {
			errors["cost"] = "Invalid cost!"
		}
		isFree, ok := parseOptionalBool(c.FormValue("is_free"))
		if !ok {
			errors["is_free"] = "Invalid is_free value!"
		}
		isActive, ok := parseOptionalBool(c.FormValue("is_active"))
		if !ok {
			errors["is_active"] = "Invalid is_active value!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData := &struct {
			Title           string
			Description     string
			ResourceType    string
			URL             string
			DifficultyLevel string
			CategoryID      *uint
			IsFree          *bool
			Cost            *float64
			IsActive        *bool
		}{
			Title:           strings.TrimSpace(c.FormValue("title")),
			Description:     c.FormValue("description"),
			ResourceType:    form.ResourceType,
			URL:             form.URL,
			DifficultyLevel: form.DifficultyLevel,
			CategoryID:      categoryID,
			IsFree:          isFree,
			Cost:            cost,
			IsActive:        isActive,
		}

		c.Locals("validatedResourceUpdate", reqData)
		return c.Next()
	}
}
