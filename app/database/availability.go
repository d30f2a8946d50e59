package database

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"grafono-backend/app/models"
)

// GetAvailabilityConfig returns the active working-hours configuration, or
// nil when none has been saved yet. Absence is a valid degraded state, not an
// error.
func GetAvailabilityConfig(db *sql.DB) (*models.AvailabilityConfig, error) {
	cfg := &models.AvailabilityConfig{}
	var weekdaysJSON []byte
	var workingDays pq.StringArray

	query := `SELECT id, weekdays, working_days, start_hour, end_hour, lunch_start, lunch_end, COALESCE(session_duration, 60), updated_at
	          FROM availability_configs
	          ORDER BY updated_at DESC
	          LIMIT 1`
	err := db.QueryRow(query).Scan(
		&cfg.ID, &weekdaysJSON, &workingDays,
		&cfg.StartHour, &cfg.EndHour, &cfg.LunchStart, &cfg.LunchEnd,
		&cfg.SessionDuration, &cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(weekdaysJSON) > 0 {
		if err := json.Unmarshal(weekdaysJSON, &cfg.Weekdays); err != nil {
			return nil, err
		}
	}
	for _, d := range workingDays {
		cfg.WorkingDays = append(cfg.WorkingDays, models.DayOfWeek(d))
	}
	return cfg, nil
}

// SaveAvailabilityConfig upserts the singleton configuration record.
func SaveAvailabilityConfig(db *sql.DB, cfg *models.AvailabilityConfig) error {
	weekdaysJSON, err := json.Marshal(cfg.Weekdays)
	if err != nil {
		return err
	}
	workingDays := make(pq.StringArray, 0, len(cfg.WorkingDays))
	for _, d := range cfg.WorkingDays {
		workingDays = append(workingDays, string(d))
	}

	if cfg.ID == "" {
		query := `INSERT INTO availability_configs (weekdays, working_days, start_hour, end_hour, lunch_start, lunch_end, session_duration)
		          VALUES ($1, $2, $3, $4, $5, $6, $7)
		          RETURNING id, updated_at`
		return db.QueryRow(query,
			weekdaysJSON, workingDays,
			cfg.StartHour, cfg.EndHour, cfg.LunchStart, cfg.LunchEnd,
			cfg.SessionMinutes(),
		).Scan(&cfg.ID, &cfg.UpdatedAt)
	}

	query := `UPDATE availability_configs
	          SET weekdays = $1, working_days = $2, start_hour = $3, end_hour = $4,
	              lunch_start = $5, lunch_end = $6, session_duration = $7, updated_at = NOW()
	          WHERE id = $8`
	_, err = db.Exec(query,
		weekdaysJSON, workingDays,
		cfg.StartHour, cfg.EndHour, cfg.LunchStart, cfg.LunchEnd,
		cfg.SessionMinutes(), cfg.ID,
	)
	return err
}
