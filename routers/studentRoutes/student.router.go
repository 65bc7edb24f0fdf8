package studentRoutes

import (
	studentControllers "github.com/Niaal-B/CareerPath/controllers/student"
	"github.com/Niaal-B/CareerPath/middleware"
	studentValidators "github.com/Niaal-B/CareerPath/validators/student"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/student", middleware.JWTMiddleware)

	studentGroup.Post("/test-requests", middleware.RequirePermission(middleware.PermRequestTest), studentControllers.CreateTestRequest)
	studentGroup.Get("/test-requests", middleware.RequirePermission(middleware.PermRequestTest), studentControllers.ListTestRequests)
	studentGroup.Get("/dashboard", middleware.RequirePermission(middleware.PermStudentDashboard), studentControllers.Dashboard)

	studentGroup.Get("/tests", middleware.RequirePermission(middleware.PermTakeTest), studentControllers.ListAssignedTests)
	studentGroup.Get("/tests/:id", middleware.RequirePermission(middleware.PermTakeTest), studentControllers.GetTestDetail)
	studentGroup.Post("/tests/:id/answer", middleware.RequirePermission(middleware.PermTakeTest), studentValidators.SubmitAnswer(), studentControllers.SubmitAnswer)
	studentGroup.Post("/tests/:id/submit", middleware.RequirePermission(middleware.PermTakeTest), studentControllers.SubmitTest)

	studentGroup.Get("/recommendations", middleware.RequirePermission(middleware.PermViewRecommendations), studentControllers.ListRecommendations)
	studentGroup.Get("/recommendations/:id/export", middleware.RequirePermission(middleware.PermViewRecommendations), studentControllers.ExportRecommendation)

	studentGroup.Get("/resources", middleware.RequirePermission(middleware.PermBrowseResources), studentControllers.ListResources)
	studentGroup.Get("/resources/:id", middleware.RequirePermission(middleware.PermBrowseResources), studentControllers.GetResource)
	studentGroup.Get("/resources/:id/progress", middleware.RequirePermission(middleware.PermTrackProgress), studentControllers.GetProgress)
	studentGroup.Post("/resources/:id/progress", middleware.RequirePermission(middleware.PermTrackProgress), studentValidators.UpdateProgress(), studentControllers.UpdateProgress)
	studentGroup.Get("/my-resources", middleware.RequirePermission(middleware.PermTrackProgress), studentControllers.MyResources)
}
