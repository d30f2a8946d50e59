package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"grafono-backend/app/models"
)

func TestForecastReceivables_PendingIncomeWindow(t *testing.T) {
	today := date(2025, 3, 15)
	open := []*models.Transaction{
		{Flow: models.FlowIncome, Status: "pendente", DueDate: date(2025, 3, 20), Amount: decimal.NewFromInt(100)}, // inside
		{Flow: models.FlowIncome, Status: "pendente", DueDate: date(2025, 4, 14), Amount: decimal.NewFromInt(200)}, // last day inside
		{Flow: models.FlowIncome, Status: "pendente", DueDate: date(2025, 4, 20), Amount: decimal.NewFromInt(400)}, // beyond horizon
		{Flow: models.FlowIncome, Status: "pendente", DueDate: date(2025, 3, 10), Amount: decimal.NewFromInt(800)}, // already overdue
		{Flow: models.FlowIncome, Status: "vencido", DueDate: date(2025, 3, 20), Amount: decimal.NewFromInt(50)},   // labeled overdue
		{Flow: models.FlowExpense, Status: "pendente", DueDate: date(2025, 3, 20), Amount: decimal.NewFromInt(70)}, // wrong flow
	}

	got := ForecastReceivables(open, nil, nil, today)
	if !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("forecast = %s, want 300", got)
	}
}

func TestForecastReceivables_UpcomingAppointments(t *testing.T) {
	today := date(2025, 3, 15)
	patientA := "patient-a"
	patientB := "patient-b"
	values := map[string]decimal.Decimal{
		patientA: decimal.NewFromInt(150),
		// patientB has no negotiated value on file
	}

	upcoming := []*models.Appointment{
		{Date: date(2025, 3, 18), Status: models.AppointmentScheduled, PatientID: &patientA},
		{Date: date(2025, 3, 25), Status: models.AppointmentConfirmed, PatientID: &patientA},
		{Date: date(2025, 3, 20), Status: models.AppointmentScheduled, PatientID: &patientB}, // prices at zero
		{Date: date(2025, 3, 22), Status: models.AppointmentCancelled, PatientID: &patientA}, // not scheduled
		{Date: date(2025, 3, 15), Status: models.AppointmentScheduled, PatientID: &patientA}, // today, not future
		{Date: date(2025, 5, 1), Status: models.AppointmentScheduled, PatientID: &patientA},  // beyond horizon
		{Date: date(2025, 3, 19), Status: models.AppointmentScheduled, PatientID: nil},       // no patient link
	}

	got := ForecastReceivables(nil, upcoming, values, today)
	if !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("forecast = %s, want 300", got)
	}
}

// A pending charge and the appointment it will cover are both counted. The
// over-estimate is the documented behavior, so this test pins it down.
func TestForecastReceivables_CountsBothSides(t *testing.T) {
	today := date(2025, 3, 15)
	patientA := "patient-a"
	values := map[string]decimal.Decimal{patientA: decimal.NewFromInt(200)}

	open := []*models.Transaction{
		{Flow: models.FlowIncome, Status: "pendente", DueDate: date(2025, 3, 20), Amount: decimal.NewFromInt(200), PatientID: &patientA},
	}
	upcoming := []*models.Appointment{
		{Date: date(2025, 3, 20), Status: models.AppointmentScheduled, PatientID: &patientA},
	}

	got := ForecastReceivables(open, upcoming, values, today)
	if !got.Equal(decimal.NewFromInt(400)) {
		t.Errorf("forecast = %s, want 400 (both sides counted)", got)
	}
}
