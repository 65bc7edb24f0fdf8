package adminRoutes

import (
	adminControllers "github.com/Niaal-B/CareerPath/controllers/admin"
	"github.com/Niaal-B/CareerPath/middleware"
	adminValidators "github.com/Niaal-B/CareerPath/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware)

	adminGroup.Get("/test-requests", middleware.RequirePermission(middleware.PermManageRequests), adminControllers.ListTestRequests)
	adminGroup.Post("/test-requests/:id/create-test", middleware.RequirePermission(middleware.PermManageTests), adminControllers.CreateTest)
	adminGroup.Get("/test-requests/:id/test", middleware.RequirePermission(middleware.PermManageTests), adminControllers.GetTestByRequest)

	adminGroup.Get("/tests/completed", middleware.RequirePermission(middleware.PermManageTests), adminControllers.ListCompletedTests)
	adminGroup.Get("/tests/:id", middleware.RequirePermission(middleware.PermManageTests), adminControllers.GetTestDetail)
	adminGroup.Post("/tests/:id/questions", middleware.RequirePermission(middleware.PermManageTests), adminValidators.CreateQuestion(), adminControllers.AddQuestion)
	adminGroup.Post("/tests/:id/add-templates", middleware.RequirePermission(middleware.PermManageTests), adminValidators.AddTemplates(), adminControllers.AddTemplates)
	adminGroup.Post("/tests/:id/assign", middleware.RequirePermission(middleware.PermManageTests), adminControllers.AssignTest)
	adminGroup.Get("/tests/:id/answers", middleware.RequirePermission(middleware.PermManageTests), adminControllers.GetTestAnswers)
	adminGroup.Post("/tests/:id/recommendation", middleware.RequirePermission(middleware.PermManageRecommendation), adminValidators.CreateRecommendation(), adminControllers.CreateRecommendation)

	adminGroup.Get("/recommendations", middleware.RequirePermission(middleware.PermManageRecommendation), adminControllers.ListRecommendations)
	adminGroup.Post("/recommendations/:id/jobs", middleware.RequirePermission(middleware.PermManageRecommendation), adminValidators.AddJob(), adminControllers.AddJobRecommendation)

	adminGroup.Get("/question-categories", middleware.RequirePermission(middleware.PermManageQuestionBank), adminControllers.ListCategories)
	adminGroup.Post("/question-categories", middleware.RequirePermission(middleware.PermManageQuestionBank), adminValidators.CreateCategory(), adminControllers.CreateCategory)
	adminGroup.Get("/question-categories/:id", middleware.RequirePermission(middleware.PermManageQuestionBank), adminControllers.GetCategory)
	adminGroup.Put("/question-categories/:id", middleware.RequirePermission(middleware.PermManageQuestionBank), adminValidators.UpdateCategory(), adminControllers.UpdateCategory)
	adminGroup.Delete("/question-categories/:id", middleware.RequirePermission(middleware.PermManageQuestionBank), adminControllers.DeleteCategory)

	adminGroup.Get("/question-templates", middleware.RequirePermission(middleware.PermManageQuestionBank), adminControllers.ListTemplates)
	adminGroup.Post("/question-templates", middleware.RequirePermission(middleware.PermManageQuestionBank), adminValidators.CreateTemplate(), adminControllers.CreateTemplate)
	adminGroup.Get("/question-templates/:id", middleware.RequirePermission(middleware.PermManageQuestionBank), adminControllers.GetTemplate)
	adminGroup.Put("/question-templates/:id", middleware.RequirePermission(middleware.PermManageQuestionBank), adminValidators.UpdateTemplate(), adminControllers.UpdateTemplate)
	adminGroup.Delete("/question-templates/:id", middleware.RequirePermission(middleware.PermManageQuestionBank), adminControllers.DeleteTemplate)

	adminGroup.Get("/resource-categories", middleware.RequirePermission(middleware.PermManageResources), adminControllers.ListResourceCategories)
	adminGroup.Post("/resource-categories", middleware.RequirePermission(middleware.PermManageResources), adminValidators.CreateResourceCategory(), adminControllers.CreateResourceCategory)
	adminGroup.Get("/resource-categories/:id", middleware.RequirePermission(middleware.PermManageResources), adminControllers.GetResourceCategory)
	adminGroup.Put("/resource-categories/:id", middleware.RequirePermission(middleware.PermManageResources), adminValidators.UpdateResourceCategory(), adminControllers.UpdateResourceCategory)
	adminGroup.Delete("/resource-categories/:id", middleware.RequirePermission(middleware.PermManageResources), adminControllers.DeleteResourceCategory)

	adminGroup.Get("/resources", middleware.RequirePermission(middleware.PermManageResources), adminControllers.ListResources)
	adminGroup.Post("/resources", middleware.RequirePermission(middleware.PermManageResources), adminValidators.CreateResource(), adminControllers.CreateResource)
	adminGroup.Get("/resources/:id", middleware.RequirePermission(middleware.PermManageResources), adminControllers.GetResource)
	adminGroup.Put("/resources/:id", middleware.RequirePermission(middleware.PermManageResources), adminValidators.UpdateResource(), adminControllers.UpdateResource)
	adminGroup.Delete("/resources/:id", middleware.RequirePermission(middleware.PermManageResources), adminControllers.DeleteResource)

	adminGroup.Get("/companies", middleware.RequirePermission(middleware.PermManageCompanies), adminControllers.ListCompanies)
	adminGroup.Post("/companies", middleware.RequirePermission(middleware.PermManageCompanies), adminValidators.CreateCompany(), adminControllers.CreateCompany)
	adminGroup.Get("/companies/:id", middleware.RequirePermission(middleware.PermManageCompanies), adminControllers.GetCompany)
	adminGroup.Put("/companies/:id", middleware.RequirePermission(middleware.PermManageCompanies), adminValidators.UpdateCompany(), adminControllers.UpdateCompany)
	adminGroup.Delete("/companies/:id", middleware.RequirePermission(middleware.PermManageCompanies), adminControllers.DeleteCompany)

	adminGroup.Get("/company-categories", middleware.RequirePermission(middleware.PermManageCompanies), adminControllers.ListCompanyCategories)
	adminGroup.Post("/company-categories", middleware.RequirePermission(middleware.PermManageCompanies), adminValidators.CreateCompanyCategory(), adminControllers.CreateCompanyCategory)

	adminGroup.Get("/dashboard/stats", middleware.RequirePermission(middleware.PermAdminDashboard), adminControllers.Dashboard)
}
