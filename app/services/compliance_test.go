package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"grafono-backend/app/models"
)

func TestClassify(t *testing.T) {
	today := date(2025, 3, 15)

	tests := []struct {
		name    string
		status  string
		dueDate time.Time
		want    models.ComplianceStatus
	}{
		{name: "pending due yesterday", status: "pendente", dueDate: date(2025, 3, 14), want: models.ComplianceOverdue},
		{name: "pending due today", status: "pendente", dueDate: date(2025, 3, 15), want: models.ComplianceWaiting},
		{name: "pending due tomorrow", status: "pendente", dueDate: date(2025, 3, 16), want: models.ComplianceWaiting},
		{name: "paid overrides past due date", status: "PAID", dueDate: date(2025, 1, 1), want: models.CompliancePaid},
		{name: "paid portuguese", status: "pago", dueDate: date(2025, 1, 1), want: models.CompliancePaid},
		{name: "raw overdue label", status: "vencido", dueDate: date(2025, 2, 1), want: models.ComplianceOverdue},
		{name: "unknown status treated as unpaid", status: "???", dueDate: date(2025, 3, 20), want: models.ComplianceWaiting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &models.Transaction{Status: tt.status, DueDate: tt.dueDate, Amount: decimal.NewFromInt(100)}
			if got := Classify(tx, today); got != tt.want {
				t.Errorf("Classify(%q, due %v) = %q, want %q", tt.status, tt.dueDate, got, tt.want)
			}
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	today := date(2025, 3, 15)
	statuses := []string{"pago", "PAID", "pendente", "vencido", "atrasado", "", "whatever"}
	dueDates := []time.Time{date(2024, 1, 1), date(2025, 3, 14), date(2025, 3, 15), date(2026, 1, 1)}

	for _, status := range statuses {
		for _, due := range dueDates {
			tx := &models.Transaction{Status: status, DueDate: due, Amount: decimal.NewFromInt(1)}
			got := Classify(tx, today)
			switch got {
			case models.CompliancePaid, models.ComplianceOverdue, models.ComplianceWaiting:
			default:
				t.Fatalf("Classify(%q, %v) produced invalid state %q", status, due, got)
			}
			if tx.IsPaid() && got != models.CompliancePaid {
				t.Fatalf("paid transaction classified %q", got)
			}
		}
	}
}

func TestBuildComplianceRecords(t *testing.T) {
	today := date(2025, 3, 15)
	transactions := []*models.Transaction{
		{ID: "a", Status: "pago", DueDate: date(2025, 3, 1), Amount: decimal.NewFromInt(100)},
		{ID: "b", Status: "pendente", DueDate: date(2025, 3, 1), Amount: decimal.NewFromInt(200)},
	}

	records := BuildComplianceRecords(transactions, today)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ComplianceStatus != models.CompliancePaid {
		t.Errorf("record a = %q, want PAID", records[0].ComplianceStatus)
	}
	if records[1].ComplianceStatus != models.ComplianceOverdue {
		t.Errorf("record b = %q, want OVERDUE", records[1].ComplianceStatus)
	}
}

func TestComputeDelinquencyStats(t *testing.T) {
	today := date(2025, 3, 15)
	transactions := []*models.Transaction{
		{Status: "pendente", DueDate: date(2025, 3, 5), Amount: decimal.NewFromInt(100)},  // 10 days late
		{Status: "pendente", DueDate: date(2025, 2, 13), Amount: decimal.NewFromInt(250)}, // 30 days late
		{Status: "pendente", DueDate: date(2025, 3, 20), Amount: decimal.NewFromInt(400)}, // waiting
		{Status: "pago", DueDate: date(2025, 1, 1), Amount: decimal.NewFromInt(999)},      // paid
	}

	stats := ComputeDelinquencyStats(transactions, today)
	if stats.Count != 2 {
		t.Errorf("count = %d, want 2", stats.Count)
	}
	if !stats.TotalAmount.Equal(decimal.NewFromInt(350)) {
		t.Errorf("total = %s, want 350", stats.TotalAmount)
	}
	if stats.OldestDays != 30 {
		t.Errorf("oldest = %d days, want 30", stats.OldestDays)
	}
}

func TestComputeDelinquencyStats_NoOverdue(t *testing.T) {
	stats := ComputeDelinquencyStats(nil, date(2025, 3, 15))
	if stats.Count != 0 || !stats.TotalAmount.IsZero() || stats.OldestDays != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestOverdueTotal(t *testing.T) {
	today := date(2025, 3, 15)
	transactions := []*models.Transaction{
		{Flow: models.FlowIncome, Status: "pendente", DueDate: date(2025, 3, 1), Amount: decimal.NewFromInt(120)},
		{Flow: models.FlowExpense, Status: "pendente", DueDate: date(2025, 3, 1), Amount: decimal.NewFromInt(500)},
		{Flow: models.FlowIncome, Status: "pendente", DueDate: date(2025, 4, 1), Amount: decimal.NewFromInt(80)},
	}

	if got := OverdueTotal(transactions, today); !got.Equal(decimal.NewFromInt(120)) {
		t.Errorf("OverdueTotal = %s, want 120", got)
	}
}
