package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	StoreTask(ctx context.Context, task Task) (Task, error)
	GetTasksForDate(ctx context.Context, date string) ([]Task, error)
	UpdateTaskById(ctx context.Context, id int, task Task) error
	DeleteTaskById(ctx context.Context, id int) error
	GetAllDatesWithTasks(ctx context.Context) ([]string, error)
}

type TaskRepositoryImpl struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepositoryImpl {
	return &TaskRepositoryImpl{db: db}
}

// StoreTask inserts a new task row and returns the task with its
// store-assigned identifier.
func (r *TaskRepositoryImpl) StoreTask(ctx context.Context, task Task) (Task, error) {
	query := "INSERT INTO tasks (date, title, start_time, end_time, note) VALUES (?, ?, ?, ?, ?)"

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return Task{}, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, task.Date, task.Title, task.StartTime, task.EndTime, task.Note)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Task{}, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return Task{}, err
	}

	task.Id = int(lastInsertID)
	return task, nil
}

// GetTasksForDate returns all tasks stored for the given ISO date string.
// Row order is whatever the query engine returns; callers must not assume
// chronological order.
func (r *TaskRepositoryImpl) GetTasksForDate(ctx context.Context, date string) ([]Task, error) {
	query := "SELECT id, date, title, start_time, end_time, note FROM tasks WHERE date = ?"

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		err := fmt.Errorf("could not query tasks: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		var startTime, endTime, note sql.NullString
		if err := rows.Scan(&t.Id, &t.Date, &t.Title, &startTime, &endTime, &note); err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		t.StartTime = startTime.String
		t.EndTime = endTime.String
		t.Note = note.String
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return tasks, nil
}

// UpdateTaskById replaces title, start, end, and note of the task with the
// given identifier. The identifier and date are never changed.
func (r *TaskRepositoryImpl) UpdateTaskById(ctx context.Context, id int, task Task) error {
	query := "UPDATE tasks SET title = ?, start_time = ?, end_time = ?, note = ? WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, task.Title, task.StartTime, task.EndTime, task.Note, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not retrieve affected rows: %w", err)
		log.Error(err)
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) DeleteTaskById(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not retrieve affected rows: %w", err)
		log.Error(err)
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// GetAllDatesWithTasks returns the distinct set of dates that have at least
// one task, unordered.
func (r *TaskRepositoryImpl) GetAllDatesWithTasks(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT date FROM tasks")
	if err != nil {
		err := fmt.Errorf("could not query task dates: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return dates, nil
}
