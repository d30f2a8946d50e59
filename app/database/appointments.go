package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"grafono-backend/app/models"
)

// AppointmentFilter narrows FindAppointments. Nil fields are ignored.
type AppointmentFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Status    *models.AppointmentStatus
	PatientID *string
}

// FindAppointments returns appointments matching the filter, oldest first.
func FindAppointments(db *sql.DB, f AppointmentFilter) ([]*models.Appointment, error) {
	query := `SELECT a.id, a.date, a.time, a.status, a.patient_id, COALESCE(a.notes, ''), a.created_at, a.updated_at
	          FROM appointments a WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	add := func(cond string, val interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argIndex))
		args = append(args, val)
		argIndex++
	}

	if f.DateFrom != nil {
		add("a.date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("a.date <= $%d", *f.DateTo)
	}
	if f.Status != nil {
		add("a.status = $%d", string(*f.Status))
	}
	if f.PatientID != nil {
		add("a.patient_id = $%d", *f.PatientID)
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date, a.time"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []*models.Appointment
	for rows.Next() {
		a := &models.Appointment{}
		err := rows.Scan(&a.ID, &a.Date, &a.Time, &a.Status, &a.PatientID, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// CreateAppointment inserts a new session.
func CreateAppointment(db *sql.DB, a *models.Appointment) error {
	query := `INSERT INTO appointments (date, time, status, patient_id, notes)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	          RETURNING id, created_at, updated_at`
	status := a.Status
	if status == "" {
		status = models.AppointmentScheduled
	}
	return db.QueryRow(query, a.Date, a.Time, string(status), a.PatientID, a.Notes).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// UpdateAppointmentStatus moves a session to a new status.
func UpdateAppointmentStatus(db *sql.DB, id string, status models.AppointmentStatus) error {
	result, err := db.Exec(`UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
