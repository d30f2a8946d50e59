package transactions

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/database"
	"grafono-backend/app/models"
)

var validate = validator.New()

// GetTransactionsAPI returns transactions with optional filtering by flow,
// status, patient and due-date range.
func GetTransactionsAPI(c *fiber.Ctx, db *sql.DB) error {
	filter := database.TransactionFilter{}

	if flow := c.Query("flow"); flow != "" {
		f := models.Flow(flow)
		filter.Flow = &f
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if patientID := c.Query("patient_id"); patientID != "" {
		filter.PatientID = &patientID
	}
	if from := c.Query("due_from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid due_from date"})
		}
		filter.DueFrom = &parsed
	}
	if to := c.Query("due_to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid due_to date"})
		}
		filter.DueTo = &parsed
	}

	transactions, err := database.FindTransactions(db, filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load transactions",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": transactions})
}

func GetTransactionByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	t, err := database.GetTransactionByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load transaction"})
	}
	return c.JSON(fiber.Map{"success": true, "data": t})
}

func CreateTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	var t models.Transaction
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if !t.Amount.IsPositive() {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "amount must be greater than zero"})
	}
	if t.Status == "" {
		t.Status = "pendente"
	}
	if t.Source == "" {
		t.Source = models.SourceParticular
	}
	// Direction is carried by flow; paid state must match the payment date.
	if t.IsPaid() && t.PaymentDate == nil {
		now := time.Now()
		t.PaymentDate = &now
	}
	if !t.IsPaid() {
		t.PaymentDate = nil
	}

	if err := database.CreateTransaction(db, &t); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create transaction", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": t})
}

func UpdateTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	var t models.Transaction
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	t.ID = c.Params("id")
	if err := validate.Struct(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if !t.Amount.IsPositive() {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "amount must be greater than zero"})
	}

	if err := database.UpdateTransaction(db, &t); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update transaction"})
	}

	return c.JSON(fiber.Map{"success": true, "data": t})
}

func DeleteTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SoftDeleteTransaction(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete transaction"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SettleTransactionAPI marks a transaction as paid and stamps the payment date.
func SettleTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SettleTransaction(db, c.Params("id"), time.Now()); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to settle transaction"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Transaction settled"})
}

// UndoSettlementAPI reverts a settlement back to pending.
func UndoSettlementAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.UndoSettlement(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to revert settlement"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Settlement reverted"})
}
