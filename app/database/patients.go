package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"grafono-backend/app/models"
)

// FindActivePatients returns every patient currently in treatment.
func FindActivePatients(db *sql.DB) ([]*models.Patient, error) {
	query := `SELECT id, full_name, status, COALESCE(negotiated_value, 0), COALESCE(financial_source, 'particular'), created_at, updated_at
	          FROM patients
	          WHERE status = $1
	          ORDER BY full_name`

	rows, err := db.Query(query, string(models.PatientInTreatment))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*models.Patient
	for rows.Next() {
		p := &models.Patient{}
		err := rows.Scan(&p.ID, &p.FullName, &p.Status, &p.NegotiatedValue, &p.FinancialSource, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// FindAllPatients returns every patient regardless of treatment stage.
func FindAllPatients(db *sql.DB) ([]*models.Patient, error) {
	query := `SELECT id, full_name, status, COALESCE(negotiated_value, 0), COALESCE(financial_source, 'particular'), created_at, updated_at
	          FROM patients
	          ORDER BY full_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*models.Patient
	for rows.Next() {
		p := &models.Patient{}
		err := rows.Scan(&p.ID, &p.FullName, &p.Status, &p.NegotiatedValue, &p.FinancialSource, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// PatientValues returns negotiated value per patient id, used by the
// receivables forecast to price not-yet-billed appointments.
func PatientValues(db *sql.DB) (map[string]decimal.Decimal, error) {
	rows, err := db.Query(`SELECT id, COALESCE(negotiated_value, 0) FROM patients`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var value decimal.Decimal
		if err := rows.Scan(&id, &value); err != nil {
			return nil, err
		}
		values[id] = value
	}
	return values, rows.Err()
}
