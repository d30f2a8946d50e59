package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"grafono-backend/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestCapacityHours_AbsentConfig(t *testing.T) {
	model := ResolveAvailability(nil)
	if model.Mode != AvailabilityAbsent {
		t.Fatalf("expected absent mode, got %v", model.Mode)
	}

	// Sat 2025-03-01 through Sat 2025-03-08: five non-weekend days.
	got := model.CapacityHours(date(2025, 3, 1), date(2025, 3, 8))
	if got != 40 {
		t.Errorf("CapacityHours = %v, want 40", got)
	}
}

func TestCapacityHours_GranularSingleMonday(t *testing.T) {
	cfg := &models.AvailabilityConfig{
		Weekdays: []models.WeekdaySchedule{
			{Day: models.Monday, Active: true, Slots: []models.TimeSlot{
				{Start: "08:00", End: "12:00"},
				{Start: "13:00", End: "17:00"},
			}},
			{Day: models.Tuesday, Active: false, Slots: []models.TimeSlot{{Start: "08:00", End: "12:00"}}},
		},
	}
	model := ResolveAvailability(cfg)
	if model.Mode != AvailabilityGranular {
		t.Fatalf("expected granular mode, got %v", model.Mode)
	}

	// 2025-03-03 is a Monday.
	if got := model.CapacityHours(date(2025, 3, 3), date(2025, 3, 3)); got != 8 {
		t.Errorf("CapacityHours for one Monday = %v, want 8", got)
	}

	// The inactive Tuesday contributes nothing.
	if got := model.CapacityHours(date(2025, 3, 4), date(2025, 3, 4)); got != 0 {
		t.Errorf("CapacityHours for inactive Tuesday = %v, want 0", got)
	}
}

func TestCapacityHours_GranularClampsMalformedSlot(t *testing.T) {
	cfg := &models.AvailabilityConfig{
		Weekdays: []models.WeekdaySchedule{
			{Day: models.Monday, Active: true, Slots: []models.TimeSlot{
				{Start: "14:00", End: "10:00"}, // end before start
				{Start: "08:00", End: "12:00"},
			}},
		},
	}
	model := ResolveAvailability(cfg)

	if got := model.CapacityHours(date(2025, 3, 3), date(2025, 3, 3)); got != 4 {
		t.Errorf("CapacityHours with malformed slot = %v, want 4", got)
	}
}

func TestCapacityHours_LegacyWithLunchBreak(t *testing.T) {
	cfg := &models.AvailabilityConfig{
		WorkingDays: []models.DayOfWeek{models.Monday, models.Wednesday},
		StartHour:   strPtr("08:00"),
		EndHour:     strPtr("18:00"),
		LunchStart:  strPtr("12:00"),
		LunchEnd:    strPtr("13:00"),
	}
	model := ResolveAvailability(cfg)
	if model.Mode != AvailabilityLegacy {
		t.Fatalf("expected legacy mode, got %v", model.Mode)
	}

	// Mon 2025-03-03 through Fri 2025-03-07: Monday and Wednesday work, 9h each.
	if got := model.CapacityHours(date(2025, 3, 3), date(2025, 3, 7)); got != 18 {
		t.Errorf("CapacityHours = %v, want 18", got)
	}
}

func TestCapacityHours_LegacyWithoutLunch(t *testing.T) {
	cfg := &models.AvailabilityConfig{
		WorkingDays: []models.DayOfWeek{models.Friday},
		StartHour:   strPtr("09:00"),
		EndHour:     strPtr("17:00"),
	}
	model := ResolveAvailability(cfg)

	// Fri 2025-03-07 only.
	if got := model.CapacityHours(date(2025, 3, 3), date(2025, 3, 7)); got != 8 {
		t.Errorf("CapacityHours = %v, want 8", got)
	}
}

func TestResolveAvailability_GranularWinsOverLegacy(t *testing.T) {
	cfg := &models.AvailabilityConfig{
		Weekdays: []models.WeekdaySchedule{
			{Day: models.Monday, Active: true, Slots: []models.TimeSlot{{Start: "08:00", End: "10:00"}}},
		},
		WorkingDays: []models.DayOfWeek{models.Monday, models.Tuesday},
		StartHour:   strPtr("08:00"),
		EndHour:     strPtr("18:00"),
	}
	if model := ResolveAvailability(cfg); model.Mode != AvailabilityGranular {
		t.Errorf("expected granular to take precedence, got mode %v", model.Mode)
	}
}

func TestResolveAvailability_EmptyGranularFallsBack(t *testing.T) {
	cfg := &models.AvailabilityConfig{
		Weekdays: []models.WeekdaySchedule{
			{Day: models.Monday, Active: false, Slots: []models.TimeSlot{{Start: "08:00", End: "10:00"}}},
			{Day: models.Tuesday, Active: true, Slots: nil},
		},
		WorkingDays: []models.DayOfWeek{models.Monday},
		StartHour:   strPtr("08:00"),
		EndHour:     strPtr("12:00"),
	}
	if model := ResolveAvailability(cfg); model.Mode != AvailabilityLegacy {
		t.Errorf("expected legacy fallback when no usable granular data, got mode %v", model.Mode)
	}
}

func TestOccupiedHours(t *testing.T) {
	appointments := []*models.Appointment{
		{Status: models.AppointmentScheduled},
		{Status: models.AppointmentConfirmed},
		{Status: models.AppointmentCompleted},
		{Status: models.AppointmentCancelled},
	}

	hours, count := OccupiedHours(appointments, 45)
	if count != 3 {
		t.Errorf("occupied count = %d, want 3", count)
	}
	if hours != 2.25 {
		t.Errorf("occupied hours = %v, want 2.25", hours)
	}

	// Unset duration defaults to one hour per session.
	hours, _ = OccupiedHours(appointments, 0)
	if hours != 3 {
		t.Errorf("occupied hours with default duration = %v, want 3", hours)
	}
}

func TestOccupancyRate(t *testing.T) {
	if got := OccupancyRate(20, 40); got != 50 {
		t.Errorf("OccupancyRate(20, 40) = %v, want 50", got)
	}
	if got := OccupancyRate(10, 0); got != 0 {
		t.Errorf("OccupancyRate with zero capacity = %v, want 0", got)
	}
}

func TestOccupancyRate_MonotonicInAppointments(t *testing.T) {
	model := ResolveAvailability(nil)
	capacity := model.CapacityHours(date(2025, 3, 3), date(2025, 3, 7))

	previous := -1.0
	for n := 0; n <= 10; n++ {
		appointments := make([]*models.Appointment, n)
		for i := range appointments {
			appointments[i] = &models.Appointment{Status: models.AppointmentScheduled}
		}
		hours, _ := OccupiedHours(appointments, 60)
		rate := OccupancyRate(hours, capacity)
		if rate < previous {
			t.Fatalf("occupancy rate decreased from %v to %v at %d appointments", previous, rate, n)
		}
		previous = rate
	}
}

func TestAvgTicket(t *testing.T) {
	income := decimal.NewFromInt(600)

	if got := AvgTicket(income, 4); !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("AvgTicket = %s, want 150", got)
	}
	if got := AvgTicket(income, 0); !got.IsZero() {
		t.Errorf("AvgTicket with no completed sessions = %s, want 0", got)
	}
}
