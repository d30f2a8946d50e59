package compliance

import (
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/config"
	"grafono-backend/app/routes/auth"
)

// SetupComplianceRoutes sets up the delinquency tracking routes
func SetupComplianceRoutes(app *fiber.App) {
	complianceAPI := app.Group("/api/compliance")
	complianceAPI.Use(auth.AuthMiddleware)

	complianceAPI.Get("/", func(c *fiber.Ctx) error {
		return GetComplianceListAPI(c, config.GetDB())
	})

	complianceAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetDelinquencyStatsAPI(c, config.GetDB())
	})

	complianceAPI.Post("/generate-charges", func(c *fiber.Ctx) error {
		return GenerateMonthlyChargesAPI(c, config.GetDB())
	})
}
