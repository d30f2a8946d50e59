package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"grafono-backend/app/models"
)

// AvailabilityMode selects which shape of the working-hours configuration
// drives the capacity computation.
type AvailabilityMode int

const (
	// AvailabilityAbsent means no config is saved; capacity falls back to
	// 8 hours per non-weekend day.
	AvailabilityAbsent AvailabilityMode = iota
	// AvailabilityGranular uses the per-weekday multi-slot table.
	AvailabilityGranular
	// AvailabilityLegacy uses the single weekly window with optional lunch break.
	AvailabilityLegacy
)

const fallbackDayHours = 8.0

// AvailabilityModel is the availability configuration resolved into one of its
// three variants. Resolution happens once per read so the calculators never
// re-check which shape is populated.
type AvailabilityModel struct {
	Mode           AvailabilityMode
	SessionMinutes int

	slotsByDay  map[models.DayOfWeek][]models.TimeSlot
	workingDays map[models.DayOfWeek]bool
	legacyHours float64
}

// parseClock converts "HH:MM" into minutes since midnight. Malformed values
// report ok=false and end up contributing zero capacity.
func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// spanHours returns the hours between two clock strings, clamped at zero so an
// end before its start contributes nothing instead of going negative.
func spanHours(start, end string) float64 {
	s, okS := parseClock(start)
	e, okE := parseClock(end)
	if !okS || !okE || e <= s {
		return 0
	}
	return float64(e-s) / 60.0
}

func spanHoursPtr(start, end *string) float64 {
	if start == nil || end == nil {
		return 0
	}
	return spanHours(*start, *end)
}

// ResolveAvailability picks the variant for the given configuration. Granular
// wins whenever at least one weekday is active with a non-empty slot list;
// otherwise the legacy window applies when present; otherwise Absent.
func ResolveAvailability(cfg *models.AvailabilityConfig) AvailabilityModel {
	model := AvailabilityModel{Mode: AvailabilityAbsent, SessionMinutes: cfg.SessionMinutes()}
	if cfg == nil {
		return model
	}

	slotsByDay := make(map[models.DayOfWeek][]models.TimeSlot)
	for _, entry := range cfg.Weekdays {
		if entry.Active && len(entry.Slots) > 0 {
			slotsByDay[entry.Day] = entry.Slots
		}
	}
	if len(slotsByDay) > 0 {
		model.Mode = AvailabilityGranular
		model.slotsByDay = slotsByDay
		return model
	}

	if cfg.StartHour != nil && cfg.EndHour != nil && len(cfg.WorkingDays) > 0 {
		dayHours := spanHours(*cfg.StartHour, *cfg.EndHour)
		dayHours -= spanHoursPtr(cfg.LunchStart, cfg.LunchEnd)
		if dayHours < 0 {
			dayHours = 0
		}
		working := make(map[models.DayOfWeek]bool, len(cfg.WorkingDays))
		for _, d := range cfg.WorkingDays {
			working[d] = true
		}
		model.Mode = AvailabilityLegacy
		model.workingDays = working
		model.legacyHours = dayHours
		return model
	}

	return model
}

// CapacityHours sums the bookable hours over the closed date range [start, end].
func (m AvailabilityModel) CapacityHours(start, end time.Time) float64 {
	start = startOfDay(start)
	end = startOfDay(end)

	total := 0.0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		code := models.WeekdayCode(day.Weekday())
		switch m.Mode {
		case AvailabilityGranular:
			for _, slot := range m.slotsByDay[code] {
				total += spanHours(slot.Start, slot.End)
			}
		case AvailabilityLegacy:
			if m.workingDays[code] {
				total += m.legacyHours
			}
		default:
			if code != models.Saturday && code != models.Sunday {
				total += fallbackDayHours
			}
		}
	}
	return total
}

// OccupiedHours converts the occupying appointments of a period into hours.
func OccupiedHours(appointments []*models.Appointment, sessionMinutes int) (hours float64, count int) {
	if sessionMinutes <= 0 {
		sessionMinutes = 60
	}
	for _, a := range appointments {
		if a.Occupies() {
			count++
		}
	}
	return float64(count) * float64(sessionMinutes) / 60.0, count
}

// OccupancyRate is occupied hours over capacity as a percentage, 0 when there
// is no capacity.
func OccupancyRate(occupiedHours, capacityHours float64) float64 {
	if capacityHours <= 0 {
		return 0
	}
	return occupiedHours / capacityHours * 100
}

// AvgTicket is the period income divided by the number of completed sessions,
// zero when none were completed.
func AvgTicket(income decimal.Decimal, completedCount int) decimal.Decimal {
	if completedCount <= 0 {
		return decimal.Zero
	}
	return income.Div(decimal.NewFromInt(int64(completedCount))).Round(2)
}

// CompletedSessions counts appointments whose session actually happened.
func CompletedSessions(appointments []*models.Appointment) int {
	count := 0
	for _, a := range appointments {
		if a.Status == models.AppointmentCompleted {
			count++
		}
	}
	return count
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
