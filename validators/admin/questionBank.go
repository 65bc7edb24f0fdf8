package adminValidator

import (
	"strings"

	"github.com/Niaal-B/CareerPath/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory validator middleware
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name             string `json:"name"`
			Description      string `json:"description"`
			QualificationTag string `json:"qualification_tag"`
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

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// UpdateCategory validator middleware
func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name             string `json:"name"`
			Description      string `json:"description"`
			QualificationTag string `json:"qualification_tag"`
			IsActive         *bool  `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}

// CreateTemplate validator middleware
func CreateTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CategoryID uint   `json:"category_id"`
			Prompt     string `json:"prompt"`
			Options    []struct {
				Label       string `json:"label"`
				Description string `json:"description"`
			} `json:"options"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CategoryID == 0 {
			errors["category_id"] = "Category id is required!"
		}
		if len(strings.TrimSpace(reqData.Prompt)) == 0 {
			errors["prompt"] = "Prompt is required!"
		}
		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		} else {
			for _, option := range reqData.Options {
				if len(strings.TrimSpace(option.Label)) == 0 {
					errors["options"] = "Every option needs a label!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTemplate", reqData)
		return c.Next()
	}
}

// UpdateTemplate validator middleware
func UpdateTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CategoryID uint   `json:"category_id"`
			Prompt     string `json:"prompt"`
			IsActive   *bool  `json:"is_active"`
			Options    []struct {
				Label       string `json:"label"`
				Description string `json:"description"`
			} `json:"options"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Options, when supplied, replace the whole set and must stand alone.
		if len(reqData.Options) > 0 && len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}
		for _, option := range reqData.Options {
			if len(strings.TrimSpace(option.Label)) == 0 {
				errors["options"] = "Every option needs a label!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTemplateUpdate", reqData)
		return c.Next()
	}
}
