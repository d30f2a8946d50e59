package services

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"grafono-backend/app/database"
	"grafono-backend/app/models"
)

// Classify labels a transaction relative to "today". The result is one of
// exactly three states: a paid transaction is PAID no matter its due date, an
// unpaid one is OVERDUE once its due date is behind the start of today and
// WAITING otherwise. Nothing is persisted; the label is derived on every read.
func Classify(t *models.Transaction, today time.Time) models.ComplianceStatus {
	if t.IsPaid() {
		return models.CompliancePaid
	}
	if startOfDay(t.DueDate).Before(startOfDay(today)) {
		return models.ComplianceOverdue
	}
	return models.ComplianceWaiting
}

// BuildComplianceRecords attaches the derived classification to each
// transaction.
func BuildComplianceRecords(transactions []*models.Transaction, today time.Time) []models.ComplianceRecord {
	records := make([]models.ComplianceRecord, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, models.ComplianceRecord{
			Transaction:      *t,
			ComplianceStatus: Classify(t, today),
		})
	}
	return records
}

// ComputeDelinquencyStats aggregates the overdue subset: how many, how much,
// and how old the oldest debt is in days.
func ComputeDelinquencyStats(transactions []*models.Transaction, today time.Time) models.DelinquencyStats {
	stats := models.DelinquencyStats{TotalAmount: decimal.Zero}
	day := startOfDay(today)
	for _, t := range transactions {
		if Classify(t, today) != models.ComplianceOverdue {
			continue
		}
		stats.Count++
		stats.TotalAmount = stats.TotalAmount.Add(t.Amount)
		days := int(day.Sub(startOfDay(t.DueDate)).Hours() / 24)
		if days > stats.OldestDays {
			stats.OldestDays = days
		}
	}
	return stats
}

// OverdueTotal sums the amounts of all currently overdue income transactions.
func OverdueTotal(openIncome []*models.Transaction, today time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range openIncome {
		if t.Flow == models.FlowIncome && Classify(t, today) == models.ComplianceOverdue {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// GetComplianceList returns the month's income transactions with their derived
// classification. Month is the zero-based index used by the web client.
func GetComplianceList(db *sql.DB, month, year int, today time.Time) ([]models.ComplianceRecord, error) {
	from := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, today.Location())
	to := from.AddDate(0, 1, -1)
	incomeFlow := models.FlowIncome

	transactions, err := database.FindTransactions(db, database.TransactionFilter{
		DueFrom: &from,
		DueTo:   &to,
		Flow:    &incomeFlow,
	})
	if err != nil {
		return nil, err
	}
	return BuildComplianceRecords(transactions, today), nil
}

// GetDelinquencyStats aggregates every currently overdue income transaction,
// regardless of month.
func GetDelinquencyStats(db *sql.DB, today time.Time) (models.DelinquencyStats, error) {
	incomeFlow := models.FlowIncome
	transactions, err := database.FindTransactions(db, database.TransactionFilter{
		Flow:       &incomeFlow,
		UnpaidOnly: true,
	})
	if err != nil {
		return models.DelinquencyStats{TotalAmount: decimal.Zero}, err
	}
	return ComputeDelinquencyStats(transactions, today), nil
}
