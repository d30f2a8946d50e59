package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"grafono-backend/app/config"
	"grafono-backend/app/database"
	"grafono-backend/app/routes/appointments"
	"grafono-backend/app/routes/auth"
	"grafono-backend/app/routes/availability"
	"grafono-backend/app/routes/compliance"
	"grafono-backend/app/routes/finance"
	"grafono-backend/app/routes/patients"
	"grafono-backend/app/routes/transactions"
	"grafono-backend/app/services"
)

// customErrorHandler renders every error as the {success, error} envelope the
// frontend expects, so a failing repository degrades the view instead of
// crashing it.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to São Paulo; due dates and the "today" boundary
	// follow the clinic's clock, not the server's.
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		log.Printf("Warning: Failed to load America/Sao_Paulo location, falling back to UTC-3: %v", err)
		time.Local = time.FixedZone("BRT", -3*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	finance.SetupFinanceRoutes(app)
	compliance.SetupComplianceRoutes(app)
	transactions.SetupTransactionsRoutes(app)
	appointments.SetupAppointmentsRoutes(app)
	patients.SetupPatientsRoutes(app)
	availability.SetupAvailabilityRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
