package middleware

import (
	"github.com/Niaal-B/CareerPath/database"
	"github.com/Niaal-B/CareerPath/models"

	"github.com/gofiber/fiber/v2"
)

// Operations gated by role. Ownership of individual records is enforced in
// the controllers with owner-scoped queries; this layer only answers
// whether the role may attempt the operation at all.
const (
	PermRequestTest          = "request-test"
	PermTakeTest             = "take-test"
	PermViewRecommendations  = "view-recommendations"
	PermBrowseResources      = "browse-resources"
	PermTrackProgress        = "track-progress"
	PermStudentDashboard     = "student-dashboard"
	PermManageRequests       = "manage-requests"
	PermManageTests          = "manage-tests"
	PermManageQuestionBank   = "manage-question-bank"
	PermManageRecommendation = "manage-recommendations"
	PermManageResources      = "manage-resources"
	PermManageCompanies      = "manage-companies"
	PermAdminDashboard       = "admin-dashboard"
)

// rolePermissions maps each role to its permitted operation set.
var rolePermissions = map[string]map[string]bool{
	models.RoleStudent: {
		PermRequestTest:         true,
		PermTakeTest:            true,
		PermViewRecommendations: true,
		PermBrowseResources:     true,
		PermTrackProgress:       true,
		PermStudentDashboard:    true,
	},
	models.RoleAdmin: {
		PermManageRequests:       true,
		PermManageTests:          true,
		PermManageQuestionBank:   true,
		PermManageRecommendation: true,
		PermManageResources:      true,
		PermManageCompanies:      true,
		PermAdminDashboard:       true,
	},
}

// RoleAllows reports whether the role's permission set contains the
// operation.
func RoleAllows(role, operation string) bool {
	return rolePermissions[role][operation]
}

// RequirePermission returns a middleware that resolves the acting user and
// rejects the request before the handler runs unless the user's role is
// permitted the operation.
func RequirePermission(operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var user models.User
		err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "User not found!",
				"data":    nil,
			})
		}

		if !RoleAllows(user.Role, operation) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		c.Locals("authUser", user)
		return c.Next()
	}
}

// AuthUser returns the user resolved by RequirePermission.
func AuthUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("authUser").(models.User)
	return user, ok
}
