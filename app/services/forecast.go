package services

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"grafono-backend/app/database"
	"grafono-backend/app/models"
)

// ForecastHorizonDays is the fixed receivables window.
const ForecastHorizonDays = 30

// ForecastReceivables sums the pending income due within the next 30 days plus
// the negotiated value of every future scheduled session in the same window.
//
// An appointment that later produces a matching transaction before its date
// arrives is counted on both sides. The consuming dashboard expects this
// conservative over-estimate, so the two sums are intentionally not
// deduplicated against each other.
func ForecastReceivables(openIncome []*models.Transaction, upcoming []*models.Appointment, patientValues map[string]decimal.Decimal, today time.Time) decimal.Decimal {
	from := startOfDay(today)
	to := from.AddDate(0, 0, ForecastHorizonDays)

	total := decimal.Zero
	for _, t := range openIncome {
		if t.Flow != models.FlowIncome {
			continue
		}
		if models.NormalizeStatus(t.Status) != models.StatusPending {
			continue
		}
		due := startOfDay(t.DueDate)
		if due.Before(from) || due.After(to) {
			continue
		}
		total = total.Add(t.Amount)
	}

	for _, a := range upcoming {
		if a.Status != models.AppointmentScheduled && a.Status != models.AppointmentConfirmed {
			continue
		}
		date := startOfDay(a.Date)
		if !date.After(from) || date.After(to) {
			continue
		}
		if a.PatientID == nil {
			continue
		}
		// Missing negotiated value prices the session at zero, never a default.
		total = total.Add(patientValues[*a.PatientID])
	}

	return total
}

func upcomingAppointments(db *sql.DB, today time.Time) ([]*models.Appointment, error) {
	from := startOfDay(today).AddDate(0, 0, 1)
	to := startOfDay(today).AddDate(0, 0, ForecastHorizonDays)
	return database.FindAppointments(db, database.AppointmentFilter{
		DateFrom: &from,
		DateTo:   &to,
	})
}
