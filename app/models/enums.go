package models

import "time"

// Flow defines the direction of money movement for a transaction.
type Flow string

const (
	FlowIncome  Flow = "income"
	FlowExpense Flow = "expense"
)

// Source defines the billing origin of a transaction or patient.
type Source string

const (
	SourceParticular Source = "particular"
	SourceConvenio   Source = "convenio"
)

// ComplianceStatus is the derived delinquency classification of a transaction.
type ComplianceStatus string

const (
	CompliancePaid    ComplianceStatus = "PAID"
	ComplianceOverdue ComplianceStatus = "OVERDUE"
	ComplianceWaiting ComplianceStatus = "WAITING"
)

// AppointmentStatus defines the possible status values for an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "agendado"
	AppointmentConfirmed AppointmentStatus = "confirmado"
	AppointmentCompleted AppointmentStatus = "realizado"
	AppointmentCancelled AppointmentStatus = "cancelado"
)

// PatientStatus defines the treatment stage of a patient.
type PatientStatus string

const (
	PatientInTreatment PatientStatus = "em tratamento"
	PatientEvaluation  PatientStatus = "em avaliacao"
	PatientDischarged  PatientStatus = "alta"
	PatientInactive    PatientStatus = "inativo"
)

// DayOfWeek defines the weekday codes used by the availability configuration.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// WeekdayCode maps a time.Weekday onto the stored weekday code.
func WeekdayCode(d time.Weekday) DayOfWeek {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
