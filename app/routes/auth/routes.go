package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	authAPI := app.Group("/api/auth")

	// Public routes
	authAPI.Post("/login", LoginAPI)
	authAPI.Post("/logout", LogoutAPI)

	// Protected routes
	authAPI.Use(AuthMiddleware)
	authAPI.Get("/me", MeAPI)
}

// AuthMiddleware validates the JWT and stores the user in the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	tokenString = c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user", user)

	return c.Next()
}
