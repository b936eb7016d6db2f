package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// lastScheduleKey is the app_settings slot holding the most recently
// imported raw schedule JSON.
const lastScheduleKey = "last_schedule_json"

type ScheduleRepository interface {
	SaveRaw(ctx context.Context, raw []byte) error
	// LoadRaw returns nil with no error when no schedule has been
	// imported yet.
	LoadRaw(ctx context.Context) ([]byte, error)
}

type ScheduleRepositoryImpl struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *ScheduleRepositoryImpl {
	return &ScheduleRepositoryImpl{db: db}
}

func (r *ScheduleRepositoryImpl) SaveRaw(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO app_settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		lastScheduleKey, raw)
	if err != nil {
		log.Errorf("Error saving schedule: %v", err)
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepositoryImpl) LoadRaw(ctx context.Context) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, "SELECT value FROM app_settings WHERE key = ?", lastScheduleKey)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Errorf("Error loading schedule: %v", err)
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return raw, nil
}
