package appointments

import (
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/config"
	"grafono-backend/app/routes/auth"
)

// SetupAppointmentsRoutes sets up the session scheduling routes
func SetupAppointmentsRoutes(app *fiber.App) {
	appointmentsAPI := app.Group("/api/appointments")
	appointmentsAPI.Use(auth.AuthMiddleware)

	appointmentsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetAppointmentsAPI(c, config.GetDB())
	})

	appointmentsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateAppointmentAPI(c, config.GetDB())
	})

	appointmentsAPI.Put("/:id/status", func(c *fiber.Ctx) error {
		return UpdateAppointmentStatusAPI(c, config.GetDB())
	})
}
