package adminValidator

import (
	"strings"

	"github.com/Niaal-B/CareerPath/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion validator middleware
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Prompt  string `json:"prompt"`
			Options []struct {
				Label       string `json:"label"`
				Description string `json:"description"`
			} `json:"options"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

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

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// AddTemplates validator middleware
func AddTemplates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CategoryIDs []uint `json:"category_ids"`
			TemplateIDs []uint `json:"template_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.CategoryIDs) == 0 && len(reqData.TemplateIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Provide category_ids or template_ids.", nil)
		}

		c.Locals("validatedTemplatePick", reqData)
		return c.Next()
	}
}
