package database

import (
	"database/sql"

	"grafono-backend/app/models"
)

// GetUserByEmail returns an active staff account or sql.ErrNoRows.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT id, first_name, last_name, email, password, is_active, created_at, updated_at
	          FROM users
	          WHERE LOWER(email) = LOWER($1) AND is_active = true AND deleted_at IS NULL`
	err := db.QueryRow(query, email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts a staff account. Password must already be hashed.
func CreateUser(db *sql.DB, u *models.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password, is_active)
	          VALUES ($1, $2, $3, $4, true)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, u.FirstName, u.LastName, u.Email, u.Password).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}
