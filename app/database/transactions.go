package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"grafono-backend/app/models"
)

// TransactionFilter narrows FindTransactions. Nil fields are ignored.
type TransactionFilter struct {
	DueFrom     *time.Time
	DueTo       *time.Time
	PaymentFrom *time.Time
	PaymentTo   *time.Time
	Flow        *models.Flow
	Status      *string
	PatientID   *string
	PaidOnly    bool
	UnpaidOnly  bool
}

const transactionColumns = `id, description, amount, flow, COALESCE(category, ''), COALESCE(type, ''),
	source, status, due_date, payment_date, patient_id, created_at, updated_at`

func scanTransaction(rows *sql.Rows) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := rows.Scan(
		&t.ID, &t.Description, &t.Amount, &t.Flow, &t.Category, &t.Type,
		&t.Source, &t.Status, &t.DueDate, &t.PaymentDate, &t.PatientID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FindTransactions returns all non-deleted transactions matching the filter.
func FindTransactions(db *sql.DB, f TransactionFilter) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE deleted_at IS NULL`

	var conditions []string
	var args []interface{}
	argIndex := 1

	add := func(cond string, val interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argIndex))
		args = append(args, val)
		argIndex++
	}

	if f.DueFrom != nil {
		add("due_date >= $%d", *f.DueFrom)
	}
	if f.DueTo != nil {
		add("due_date <= $%d", *f.DueTo)
	}
	if f.PaymentFrom != nil {
		add("payment_date >= $%d", *f.PaymentFrom)
	}
	if f.PaymentTo != nil {
		add("payment_date <= $%d", *f.PaymentTo)
	}
	if f.Flow != nil {
		add("flow = $%d", string(*f.Flow))
	}
	if f.Status != nil {
		add("LOWER(status) = LOWER($%d)", *f.Status)
	}
	if f.PatientID != nil {
		add("patient_id = $%d", *f.PatientID)
	}
	if f.PaidOnly {
		conditions = append(conditions, "payment_date IS NOT NULL")
	}
	if f.UnpaidOnly {
		conditions = append(conditions, "payment_date IS NULL")
	}

	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY due_date DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransactionByID returns a single transaction or sql.ErrNoRows.
func GetTransactionByID(db *sql.DB, id string) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := db.QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND deleted_at IS NULL`, id).Scan(
		&t.ID, &t.Description, &t.Amount, &t.Flow, &t.Category, &t.Type,
		&t.Source, &t.Status, &t.DueDate, &t.PaymentDate, &t.PatientID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTransaction inserts a new billing record and fills in generated fields.
func CreateTransaction(db *sql.DB, t *models.Transaction) error {
	query := `INSERT INTO transactions (description, amount, flow, category, type, source, status, due_date, payment_date, patient_id)
	          VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		t.Description, t.Amount, string(t.Flow), t.Category, t.Type,
		string(t.Source), t.Status, t.DueDate, t.PaymentDate, t.PatientID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// UpdateTransaction patches the mutable fields of an existing record.
// payment_date follows the status: stamped when the new status denotes paid,
// cleared otherwise, so the paid/payment_date invariant survives edits. The
// paid decision goes through the shared normalization, never a second synonym
// list in SQL.
func UpdateTransaction(db *sql.DB, t *models.Transaction) error {
	t.Status = strings.TrimSpace(t.Status)
	query := `UPDATE transactions
	          SET description = $1, amount = $2, flow = $3, category = NULLIF($4, ''), type = NULLIF($5, ''),
	              source = $6, status = $7,
	              payment_date = CASE WHEN $8 THEN COALESCE(payment_date, NOW()) ELSE NULL END,
	              due_date = $9, patient_id = $10, updated_at = NOW()
	          WHERE id = $11 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		t.Description, t.Amount, string(t.Flow), t.Category, t.Type,
		string(t.Source), t.Status, t.IsPaid(), t.DueDate, t.PatientID, t.ID,
	)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SoftDeleteTransaction marks a record deleted without removing the row.
func SoftDeleteTransaction(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE transactions SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SettleTransaction marks a transaction paid and stamps the payment date.
func SettleTransaction(db *sql.DB, id string, paidAt time.Time) error {
	query := `UPDATE transactions SET status = 'pago', payment_date = $1, updated_at = NOW()
	          WHERE id = $2 AND deleted_at IS NULL`
	result, err := db.Exec(query, paidAt, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UndoSettlement reverts a settled transaction to pending and clears the
// payment date, preserving the invariant that payment_date is set iff paid.
func UndoSettlement(db *sql.DB, id string) error {
	query := `UPDATE transactions SET status = 'pendente', payment_date = NULL, updated_at = NOW()
	          WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MonthlyChargeExists reports whether the patient already has a recurring
// monthly charge due inside [from, to]. The marker is matched anywhere in the
// description so a manually entered charge still counts.
func MonthlyChargeExists(db *sql.DB, patientID string, from, to time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM transactions
	              WHERE patient_id = $1
	              AND due_date >= $2 AND due_date <= $3
	              AND description ILIKE '%Mensalidade%'
	              AND deleted_at IS NULL
	          )`
	err := db.QueryRow(query, patientID, from, to).Scan(&exists)
	return exists, err
}
