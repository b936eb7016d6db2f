package task

import (
	"context"
)

type StubTaskRepository struct {
	Tasks  []Task
	nextId int
	Err    error
}

func (s *StubTaskRepository) StoreTask(ctx context.Context, task Task) (Task, error) {
	if s.Err != nil {
		return Task{}, s.Err
	}
	s.nextId++
	task.Id = s.nextId
	s.Tasks = append(s.Tasks, task)
	return task, nil
}

func (s *StubTaskRepository) GetTasksForDate(ctx context.Context, date string) ([]Task, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var tasks []Task
	for _, t := range s.Tasks {
		if t.Date == date {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *StubTaskRepository) UpdateTaskById(ctx context.Context, id int, task Task) error {
	if s.Err != nil {
		return s.Err
	}
	for i, t := range s.Tasks {
		if t.Id == id {
			s.Tasks[i].Title = task.Title
			s.Tasks[i].StartTime = task.StartTime
			s.Tasks[i].EndTime = task.EndTime
			s.Tasks[i].Note = task.Note
			return nil
		}
	}
	return ErrTaskNotFound
}

func (s *StubTaskRepository) DeleteTaskById(ctx context.Context, id int) error {
	if s.Err != nil {
		return s.Err
	}
	for i, t := range s.Tasks {
		if t.Id == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

func (s *StubTaskRepository) GetAllDatesWithTasks(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	seen := make(map[string]bool)
	var dates []string
	for _, t := range s.Tasks {
		if !seen[t.Date] {
			seen[t.Date] = true
			dates = append(dates, t.Date)
		}
	}
	return dates, nil
}
