package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lib/pq"

	"grafono-backend/app/database"
	"grafono-backend/app/models"
)

// ErrDuplicateCharge is returned when the storage layer rejects a monthly
// charge because one already exists for the same patient and month. It is kept
// distinct from generic repository errors so double-billing attempts can be
// investigated instead of disappearing into a 500.
var ErrDuplicateCharge = errors.New("monthly charge already exists for patient and month")

// BillingStore is the slice of the repository the charge generator needs.
type BillingStore interface {
	ChargeablePatients() ([]*models.Patient, error)
	MonthlyChargeExists(patientID string, from, to time.Time) (bool, error)
	CreateCharge(t *models.Transaction) error
}

type dbBillingStore struct {
	db *sql.DB
}

// NewBillingStore wraps the Postgres repository as a BillingStore.
func NewBillingStore(db *sql.DB) BillingStore {
	return &dbBillingStore{db: db}
}

func (s *dbBillingStore) ChargeablePatients() ([]*models.Patient, error) {
	return database.FindActivePatients(s.db)
}

func (s *dbBillingStore) MonthlyChargeExists(patientID string, from, to time.Time) (bool, error) {
	return database.MonthlyChargeExists(s.db, patientID, from, to)
}

func (s *dbBillingStore) CreateCharge(t *models.Transaction) error {
	err := database.CreateTransaction(s.db, t)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrDuplicateCharge
	}
	return err
}

// Generation is serialized per process; the unique index on
// (patient_id, month) covers concurrent processes.
var generateChargesMu sync.Mutex

// GenerateMonthlyCharges ensures every actively-treated patient with a
// negotiated value has exactly one Mensalidade charge for the target month,
// due on the 10th. Month is the zero-based index used by the web client.
// Re-running for the same month creates nothing new; the returned count is the
// number of charges created by this call.
func GenerateMonthlyCharges(store BillingStore, month, year int, now time.Time) (int, error) {
	generateChargesMu.Lock()
	defer generateChargesMu.Unlock()

	monthStart := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	dueDate := time.Date(year, time.Month(month+1), 10, 0, 0, 0, 0, now.Location())
	label := fmt.Sprintf("Mensalidade %02d/%d", int(monthStart.Month()), year)

	patients, err := store.ChargeablePatients()
	if err != nil {
		return 0, fmt.Errorf("failed to query chargeable patients: %w", err)
	}

	count := 0
	for _, p := range patients {
		if !p.NegotiatedValue.IsPositive() {
			continue
		}

		exists, err := store.MonthlyChargeExists(p.ID, monthStart, monthEnd)
		if err != nil {
			return count, fmt.Errorf("failed to check existing charge for %s: %w", p.FullName, err)
		}
		if exists {
			continue
		}

		source := p.FinancialSource
		if source == "" {
			source = models.SourceParticular
		}

		charge := &models.Transaction{
			Description: label,
			Amount:      p.NegotiatedValue,
			Flow:        models.FlowIncome,
			Category:    "mensalidade",
			Source:      source,
			Status:      "pendente",
			DueDate:     dueDate,
			PatientID:   &p.ID,
		}
		if err := store.CreateCharge(charge); err != nil {
			if errors.Is(err, ErrDuplicateCharge) {
				// Another writer got there between the existence check and the
				// insert; the storage constraint held, so no duplicate exists.
				return count, ErrDuplicateCharge
			}
			return count, fmt.Errorf("failed to create charge for %s: %w", p.FullName, err)
		}
		count++
		log.Printf("Created monthly charge for %s: %s", p.FullName, p.NegotiatedValue.StringFixed(2))
	}

	log.Printf("Monthly charge generation for %s completed. Created %d records.", label, count)
	return count, nil
}
