package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type SessionRepository interface {
	StoreSession(ctx context.Context, session StudySession) (StudySession, error)
	ListSessions(ctx context.Context) ([]StudySession, error)
	DeleteAllSessions(ctx context.Context) error
}

type SessionRepositoryImpl struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{db: db}
}

// StoreSession inserts a finished study session. Timestamps are stored as
// ISO-8601 date-time strings normalized to UTC, so the string ordering in
// ListSessions is chronological regardless of the caller's zone.
func (r *SessionRepositoryImpl) StoreSession(ctx context.Context, session StudySession) (StudySession, error) {
	query := "INSERT INTO study_sessions (start_time, end_time, duration_seconds) VALUES (?, ?, ?)"

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return StudySession{}, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		session.StartTime.UTC().Format(time.RFC3339),
		session.EndTime.UTC().Format(time.RFC3339),
		session.DurationSeconds,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return StudySession{}, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return StudySession{}, err
	}

	session.Id = int(lastInsertID)
	return session, nil
}

// ListSessions returns all study sessions ordered by start time ascending.
func (r *SessionRepositoryImpl) ListSessions(ctx context.Context) ([]StudySession, error) {
	query := "SELECT id, start_time, end_time, duration_seconds FROM study_sessions ORDER BY start_time ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query study sessions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var sessions []StudySession
	for rows.Next() {
		var s StudySession
		var startTime, endTime string
		if err := rows.Scan(&s.Id, &startTime, &endTime, &s.DurationSeconds); err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		s.StartTime, err = time.Parse(time.RFC3339, startTime)
		if err != nil {
			err := fmt.Errorf("could not parse session start time %q: %w", startTime, err)
			log.Error(err)
			return nil, err
		}
		s.EndTime, err = time.Parse(time.RFC3339, endTime)
		if err != nil {
			err := fmt.Errorf("could not parse session end time %q: %w", endTime, err)
			log.Error(err)
			return nil, err
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return sessions, nil
}

// DeleteAllSessions removes every study session and reclaims the freed
// storage. Irreversible.
func (r *SessionRepositoryImpl) DeleteAllSessions(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM study_sessions"); err != nil {
		err := fmt.Errorf("could not delete study sessions: %w", err)
		log.Error(err)
		return err
	}

	// Shrinking the file is best effort; the deletion already succeeded.
	if _, err := r.db.ExecContext(ctx, "VACUUM"); err != nil {
		log.Warnf("VACUUM after session deletion failed: %v", err)
	}
	return nil
}
