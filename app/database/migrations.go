package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if missing and applies incremental updates.
// Every statement is idempotent so the function is safe to run on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS patients (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name VARCHAR(255) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'em avaliacao',
			negotiated_value DECIMAL(10,2) DEFAULT 0,
			financial_source VARCHAR(20) DEFAULT 'particular',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE NOT NULL,
			time VARCHAR(5) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'agendado',
			patient_id UUID REFERENCES patients(id) ON DELETE SET NULL,
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			description VARCHAR(255) NOT NULL,
			amount DECIMAL(10,2) NOT NULL CHECK (amount > 0),
			flow VARCHAR(10) NOT NULL,
			category VARCHAR(50),
			type VARCHAR(50),
			source VARCHAR(20) NOT NULL DEFAULT 'particular',
			status VARCHAR(20) NOT NULL DEFAULT 'pendente',
			due_date DATE NOT NULL,
			payment_date TIMESTAMP WITH TIME ZONE,
			patient_id UUID REFERENCES patients(id) ON DELETE SET NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS availability_configs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			weekdays JSONB,
			working_days TEXT[],
			start_hour VARCHAR(5),
			end_hour VARCHAR(5),
			lunch_start VARCHAR(5),
			lunch_end VARCHAR(5),
			session_duration INTEGER DEFAULT 60,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating table: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_transactions_due_date ON transactions(due_date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_payment_date ON transactions(payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_flow ON transactions(flow)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_patient_id ON transactions(patient_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_deleted_at ON transactions(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments(patient_id)`,
		`CREATE INDEX IF NOT EXISTS idx_patients_status ON patients(status)`,
		// The storage-level guard against double monthly billing: at most one
		// Mensalidade charge per patient per month, soft-deleted rows excluded.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_monthly_charge
		 ON transactions (patient_id, date_trunc('month', due_date))
		 WHERE description ILIKE '%Mensalidade%' AND deleted_at IS NULL`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			// Some index errors are duplicates depending on PG version, keep going
			log.Printf("Error running migration index: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
