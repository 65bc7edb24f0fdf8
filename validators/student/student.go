package studentValidator

import (
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitAnswer validator middleware
func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID uint `json:"question_id"`
			OptionID   uint `json:"option_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuestionID == 0 {
			errors["question_id"] = "Question id is required!"
		}
		if reqData.OptionID == 0 {
			errors["option_id"] = "Option id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}

var progressStatuses = map[string]bool{
	models.ProgressNotStarted: true,
	models.ProgressInProgress: true,
	models.ProgressCompleted:  true,
	models.ProgressSkipped:    true,
}

// UpdateProgress validator middleware
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status     string `json:"status"`
			Notes      string `json:"notes"`
			IsFavorite bool   `json:"is_favorite"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status == "" {
			errors["status"] = "Status is required!"
		} else if !progressStatuses[reqData.Status] {
			errors["status"] = "Status must be one of not_started, in_progress, completed, skipped!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
