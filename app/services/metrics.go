package services

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"grafono-backend/app/database"
	"grafono-backend/app/models"
)

// PeriodTotals is the paid income/expense aggregation of one window.
type PeriodTotals struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	NetBalance decimal.Decimal
}

// SumPaidTotals partitions the paid transactions of a window by flow. Status
// synonyms ("pago", "PAID", ...) are handled by the normalization layer;
// anything not denoting paid is skipped.
func SumPaidTotals(transactions []*models.Transaction) PeriodTotals {
	totals := PeriodTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range transactions {
		if !t.IsPaid() {
			continue
		}
		switch t.Flow {
		case models.FlowIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case models.FlowExpense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	totals.NetBalance = totals.Income.Sub(totals.Expenses)
	return totals
}

// DeltaPercent is (current - previous) / previous * 100, defined as 0 when the
// previous value is zero.
func DeltaPercent(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	delta, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return delta
}

// DefaultRange is the current calendar month of the given clock.
func DefaultRange(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, -1)
	return start, end
}

// PreviousWindow is the window of identical length immediately preceding
// [start, end].
func PreviousWindow(start, end time.Time) (prevStart, prevEnd time.Time) {
	length := int(startOfDay(end).Sub(startOfDay(start)).Hours()/24) + 1
	prevEnd = startOfDay(start).AddDate(0, 0, -1)
	prevStart = prevEnd.AddDate(0, 0, -(length - 1))
	return prevStart, prevEnd
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func paidTransactionsIn(db *sql.DB, start, end time.Time) ([]*models.Transaction, error) {
	from := startOfDay(start)
	to := endOfDay(end)
	return database.FindTransactions(db, database.TransactionFilter{
		PaymentFrom: &from,
		PaymentTo:   &to,
		PaidOnly:    true,
	})
}

// BuildMetricsSnapshot assembles the full financial picture for [start, end].
// Zero-valued start/end select the current calendar month. The period metrics
// and the capacity figures read disjoint data; both degrade to defined zero
// values instead of failing on missing data.
func BuildMetricsSnapshot(db *sql.DB, start, end, now time.Time) (*models.MetricsSnapshot, error) {
	if start.IsZero() || end.IsZero() {
		start, end = DefaultRange(now)
	}

	current, err := paidTransactionsIn(db, start, end)
	if err != nil {
		return nil, err
	}
	prevStart, prevEnd := PreviousWindow(start, end)
	previous, err := paidTransactionsIn(db, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	totals := SumPaidTotals(current)
	prevTotals := SumPaidTotals(previous)

	rangeFrom := startOfDay(start)
	rangeTo := startOfDay(end)
	appointments, err := database.FindAppointments(db, database.AppointmentFilter{
		DateFrom: &rangeFrom,
		DateTo:   &rangeTo,
	})
	if err != nil {
		return nil, err
	}

	cfg, err := database.GetAvailabilityConfig(db)
	if err != nil {
		return nil, err
	}
	model := ResolveAvailability(cfg)

	capacity := model.CapacityHours(start, end)
	occupiedHours, occupiedCount := OccupiedHours(appointments, model.SessionMinutes)
	completed := CompletedSessions(appointments)

	incomeFlow := models.FlowIncome
	openIncome, err := database.FindTransactions(db, database.TransactionFilter{
		Flow:       &incomeFlow,
		UnpaidOnly: true,
	})
	if err != nil {
		return nil, err
	}

	upcoming, err := upcomingAppointments(db, now)
	if err != nil {
		return nil, err
	}
	values, err := database.PatientValues(db)
	if err != nil {
		return nil, err
	}

	snapshot := &models.MetricsSnapshot{
		NetBalance:    totals.NetBalance,
		Income:        totals.Income,
		Expenses:      totals.Expenses,
		Forecast:      ForecastReceivables(openIncome, upcoming, values, now),
		DefaultTotal:  OverdueTotal(openIncome, now),
		IncomeDelta:   DeltaPercent(totals.Income, prevTotals.Income),
		ExpensesDelta: DeltaPercent(totals.Expenses, prevTotals.Expenses),
		Efficiency: models.Efficiency{
			AvgTicket:             AvgTicket(totals.Income, completed),
			OccupancyRate:         OccupancyRate(occupiedHours, capacity),
			TotalCapacityHours:    capacity,
			OccupiedSessionCount:  occupiedCount,
			CompletedSessionCount: completed,
		},
	}
	return snapshot, nil
}
