package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"grafono-backend/app/models"
)

func paidTx(amount int64, flow models.Flow, status string) *models.Transaction {
	paidAt := date(2025, 3, 15)
	t := &models.Transaction{
		Amount:  decimal.NewFromInt(amount),
		Flow:    flow,
		Status:  status,
		DueDate: date(2025, 3, 10),
	}
	if t.IsPaid() {
		t.PaymentDate = &paidAt
	}
	return t
}

func TestSumPaidTotals(t *testing.T) {
	transactions := []*models.Transaction{
		paidTx(100, models.FlowIncome, "pago"),
		paidTx(200, models.FlowIncome, "PAGO"),
		paidTx(300, models.FlowIncome, "paid"),
		paidTx(150, models.FlowExpense, "pago"),
		paidTx(999, models.FlowIncome, "pendente"), // unpaid, ignored
	}

	totals := SumPaidTotals(transactions)
	if !totals.Income.Equal(decimal.NewFromInt(600)) {
		t.Errorf("income = %s, want 600", totals.Income)
	}
	if !totals.Expenses.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expenses = %s, want 150", totals.Expenses)
	}
	if !totals.NetBalance.Equal(decimal.NewFromInt(450)) {
		t.Errorf("net balance = %s, want 450", totals.NetBalance)
	}
}

func TestSumPaidTotals_Empty(t *testing.T) {
	totals := SumPaidTotals(nil)
	if !totals.Income.IsZero() || !totals.Expenses.IsZero() || !totals.NetBalance.IsZero() {
		t.Errorf("expected all-zero totals, got %+v", totals)
	}
}

func TestDeltaPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{name: "growth", current: 150, previous: 100, want: 50},
		{name: "decline", current: 50, previous: 100, want: -50},
		{name: "flat", current: 100, previous: 100, want: 0},
		{name: "zero previous", current: 500, previous: 0, want: 0},
		{name: "both zero", current: 0, previous: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaPercent(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			if got != tt.want {
				t.Errorf("DeltaPercent(%d, %d) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestDefaultRange(t *testing.T) {
	start, end := DefaultRange(time.Date(2025, 3, 17, 14, 30, 0, 0, time.UTC))

	if !start.Equal(date(2025, 3, 1)) {
		t.Errorf("start = %v, want 2025-03-01", start)
	}
	if !end.Equal(date(2025, 3, 31)) {
		t.Errorf("end = %v, want 2025-03-31", end)
	}
}

func TestPreviousWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "full month",
			start:     date(2025, 3, 1),
			end:       date(2025, 3, 31),
			wantStart: date(2025, 1, 29),
			wantEnd:   date(2025, 2, 28),
		},
		{
			name:      "single day",
			start:     date(2025, 3, 10),
			end:       date(2025, 3, 10),
			wantStart: date(2025, 3, 9),
			wantEnd:   date(2025, 3, 9),
		},
		{
			name:      "one week",
			start:     date(2025, 3, 10),
			end:       date(2025, 3, 16),
			wantStart: date(2025, 3, 3),
			wantEnd:   date(2025, 3, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := PreviousWindow(tt.start, tt.end)
			if !gotStart.Equal(tt.wantStart) {
				t.Errorf("prev start = %v, want %v", gotStart, tt.wantStart)
			}
			if !gotEnd.Equal(tt.wantEnd) {
				t.Errorf("prev end = %v, want %v", gotEnd, tt.wantEnd)
			}
		})
	}
}
