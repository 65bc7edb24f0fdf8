package adminValidator

import (
	"strings"

	"github.com/Niaal-B/CareerPath/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateRecommendation validator middleware
func CreateRecommendation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CareerName string   `json:"career_name"`
			Summary    string   `json:"summary"`
			Companies  []string `json:"companies"`
			Steps      []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
			} `json:"steps"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.CareerName)) == 0 {
			errors["career_name"] = "Career name is required!"
		}
		if len(strings.TrimSpace(reqData.Summary)) == 0 {
			errors["summary"] = "Summary is required!"
		}
		if len(reqData.Steps) == 0 {
			errors["steps"] = "At least one roadmap step is required!"
		} else {
			for _, step := range reqData.Steps {
				if len(strings.TrimSpace(step.Title)) == 0 {
					errors["steps"] = "Every step needs a title!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecommendation", reqData)
		return c.Next()
	}
}

var jobTypes = map[string]bool{
	"full_time":  true,
	"part_time":  true,
	"contract":   true,
	"internship": true,
	"remote":     true,
}

// AddJob validator middleware
func AddJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyID      uint   `json:"company_id"`
			JobTitle       string `json:"job_title"`
			JobDescription string `json:"job_description"`
			Requirements   string `json:"requirements"`
			SalaryRange    string `json:"salary_range"`
			JobType        string `json:"job_type"`
			ApplicationURL string `json:"application_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompanyID == 0 {
			errors["company_id"] = "Company id is required!"
		}
		if len(strings.TrimSpace(reqData.JobTitle)) == 0 {
			errors["job_title"] = "Job title is required!"
		}
		if reqData.JobType != "" && !jobTypes[reqData.JobType] {
			errors["job_type"] = "Job type must be one of full_time, part_time, contract, internship, remote!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}
