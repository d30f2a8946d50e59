package finance

import (
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/config"
	"grafono-backend/app/routes/auth"
)

// SetupFinanceRoutes sets up the financial reporting routes
func SetupFinanceRoutes(app *fiber.App) {
	financeAPI := app.Group("/api/finance")
	financeAPI.Use(auth.AuthMiddleware)

	financeAPI.Get("/metrics", func(c *fiber.Ctx) error {
		return GetFinancialMetricsAPI(c, config.GetDB())
	})
}
