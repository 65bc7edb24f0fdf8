package authRoutes

import (
	authControllers "github.com/Niaal-B/CareerPath/controllers/auth"
	"github.com/Niaal-B/CareerPath/middleware"
	authValidators "github.com/Niaal-B/CareerPath/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/token", authValidators.Login(), authControllers.Token)
	authGroup.Post("/token/refresh", authValidators.Refresh(), authControllers.RefreshToken)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}
