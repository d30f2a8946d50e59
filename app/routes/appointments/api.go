package appointments

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/database"
	"grafono-backend/app/models"
)

var validate = validator.New()

func GetAppointmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filter := database.AppointmentFilter{}

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid from date"})
		}
		filter.DateFrom = &parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid to date"})
		}
		filter.DateTo = &parsed
	}
	if status := c.Query("status"); status != "" {
		s := models.AppointmentStatus(status)
		filter.Status = &s
	}

	appointments, err := database.FindAppointments(db, filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load appointments",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": appointments})
}

func CreateAppointmentAPI(c *fiber.Ctx, db *sql.DB) error {
	var a models.Appointment
	if err := c.BodyParser(&a); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&a); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.CreateAppointment(db, &a); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create appointment", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": a})
}

func UpdateAppointmentStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Status models.AppointmentStatus `json:"status" validate:"required,oneof=agendado confirmado realizado cancelado"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.UpdateAppointmentStatus(db, c.Params("id"), req.Status); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Appointment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update appointment"})
	}

	return c.JSON(fiber.Map{"success": true})
}
