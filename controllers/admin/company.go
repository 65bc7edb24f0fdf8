package adminController

import (
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/middleware"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
)

// ListCompanyCategories returns company categories with company counts.
func ListCompanyCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	var categories []models.CompanyCategory
	if err := db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	categoryList := make([]fiber.Map, len(categories))
	for i, category := range categories {
		var companyCount int64
		db.Model(&models.Company{}).Where("category_id = ?", category.ID).Count(&companyCount)

		categoryList[i] = fiber.Map{
			"id":              category.ID,
			"name":            category.Name,
			"description":     category.Description,
			"companies_count": companyCount,
			"created_at":      category.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", fiber.Map{
		"categories": categoryList,
	})
}

// CreateCompanyCategory adds a company category. Names are unique.
func CreateCompanyCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompanyCategory").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.CompanyCategory
	if err := db.Where("name = ?", reqData.Name).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category with this name already exists!", nil)
	}

	category := models.CompanyCategory{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully.", category)
}

// ListCompanies returns companies, filterable by category and industry.
func ListCompanies(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Company{})
	if c.Query("include_inactive") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if industry := c.Query("industry"); industry != "" {
		query = query.Where("industry = ?", industry)
	}

	var companies []models.Company
	if err := query.Order("name asc").Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully.", fiber.Map{
		"companies": companies,
	})
}

// CreateCompany registers a company that job recommendations can point to.
func CreateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Website     string `json:"website"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Industry    string `json:"industry"`
		CategoryID  *uint  `json:"category_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.CategoryID != nil {
		var category models.CompanyCategory
		if err := db.Where("id = ?", *reqData.CategoryID).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
	}

	company := models.Company{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Website:     reqData.Website,
		Description: reqData.Description,
		Location:    reqData.Location,
		Industry:    reqData.Industry,
		CategoryID:  reqData.CategoryID,
		IsActive:    true,
	}
	if err := db.Create(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully.", company)
}

// GetCompany returns one company with its posted job recommendations.
func GetCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ?", companyID).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Company not found.", nil)
	}

	var jobs []models.JobRecommendation
	db.Where("company_id = ? AND is_active = ?", company.ID, true).
		Order("created_at desc").Find(&jobs)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company fetched successfully.", fiber.Map{
		"company": company,
		"jobs":    jobs,
	})
}

// UpdateCompany edits a company's profile or active flag.
func UpdateCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
	}

	reqData, ok := c.Locals("validatedCompanyUpdate").(*struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Website     string `json:"website"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Industry    string `json:"industry"`
		CategoryID  *uint  `json:"category_id"`
		IsActive    *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ?", companyID).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Company not found.", nil)
	}

	if reqData.Name != "" {
		company.Name = reqData.Name
	}
	if reqData.Email != "" {
		company.Email = reqData.Email
	}
	if reqData.Website != "" {
		company.Website = reqData.Website
	}
	if reqData.Description != "" {
		company.Description = reqData.Description
	}
	if reqData.Location != "" {
		company.Location = reqData.Location
	}
	if reqData.Industry != "" {
		company.Industry = reqData.Industry
	}
	if reqData.CategoryID != nil {
		var category models.CompanyCategory
		if err := db.Where("id = ?", *reqData.CategoryID).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found!", nil)
		}
		company.CategoryID = reqData.CategoryID
	}
	if reqData.IsActive != nil {
		company.IsActive = *reqData.IsActive
	}

	if err := db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully.", company)
}

// DeleteCompany deactivates a company and its job recommendations.
func DeleteCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ?", companyID).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Company not found.", nil)
	}

	if err := db.Model(&company).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company!", nil)
	}
	db.Model(&models.JobRecommendation{}).Where("company_id = ?", company.ID).Update("is_active", false)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company deactivated successfully.", nil)
}
