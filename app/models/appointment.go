package models

import "time"

// Appointment represents a scheduled therapy session.
type Appointment struct {
	ID        string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	Date      time.Time         `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Time      string            `json:"time" gorm:"not null;type:varchar(5)" validate:"required"`
	Status    AppointmentStatus `json:"status" gorm:"not null;default:'agendado';index;type:varchar(20)" validate:"omitempty,oneof=agendado confirmado realizado cancelado"`
	PatientID *string           `json:"patient_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Notes     string            `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	Patient *Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:ID"`
}

// Occupies reports whether the appointment holds a slot in the agenda.
// Scheduled, confirmed and completed sessions all count; cancellations don't.
func (a *Appointment) Occupies() bool {
	switch a.Status {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted:
		return true
	}
	return false
}
