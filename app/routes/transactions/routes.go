package transactions

import (
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/config"
	"grafono-backend/app/routes/auth"
)

// SetupTransactionsRoutes sets up the billing record routes
func SetupTransactionsRoutes(app *fiber.App) {
	transactionsAPI := app.Group("/api/transactions")
	transactionsAPI.Use(auth.AuthMiddleware)

	transactionsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetTransactionsAPI(c, config.GetDB())
	})

	transactionsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetTransactionByIDAPI(c, config.GetDB())
	})

	transactionsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateTransactionAPI(c, config.GetDB())
	})

	transactionsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateTransactionAPI(c, config.GetDB())
	})

	transactionsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteTransactionAPI(c, config.GetDB())
	})

	transactionsAPI.Post("/:id/settle", func(c *fiber.Ctx) error {
		return SettleTransactionAPI(c, config.GetDB())
	})

	transactionsAPI.Post("/:id/unsettle", func(c *fiber.Ctx) error {
		return UndoSettlementAPI(c, config.GetDB())
	})
}
