package models

import "time"

// TimeSlot is a single bookable window inside a working day, times as "HH:MM".
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekdaySchedule is one entry of the granular per-weekday availability table.
type WeekdaySchedule struct {
	Day    DayOfWeek  `json:"day"`
	Active bool       `json:"active"`
	Slots  []TimeSlot `json:"slots"`
}

// AvailabilityConfig is the singleton working-hours configuration. The clinic
// started with a single weekly window (working days + start/end + lunch break)
// and later moved to per-weekday multi-slot scheduling; both shapes live on the
// same record and the granular one wins whenever it carries usable data.
type AvailabilityConfig struct {
	ID              string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Weekdays        []WeekdaySchedule `json:"weekdays,omitempty" gorm:"type:jsonb"`
	WorkingDays     []DayOfWeek       `json:"working_days,omitempty" gorm:"type:text[]"`
	StartHour       *string           `json:"start_hour,omitempty" gorm:"type:varchar(5)"`
	EndHour         *string           `json:"end_hour,omitempty" gorm:"type:varchar(5)"`
	LunchStart      *string           `json:"lunch_start,omitempty" gorm:"type:varchar(5)"`
	LunchEnd        *string           `json:"lunch_end,omitempty" gorm:"type:varchar(5)"`
	SessionDuration int               `json:"session_duration" gorm:"default:60"`
	UpdatedAt       time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// SessionMinutes returns the configured session length, defaulting to 60.
func (c *AvailabilityConfig) SessionMinutes() int {
	if c == nil || c.SessionDuration <= 0 {
		return 60
	}
	return c.SessionDuration
}
