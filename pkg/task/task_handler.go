package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/rest"
)

type Handler struct {
	service TaskService
}

type TaskDTO struct {
	Id        int    `json:"id"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	StartTime string `json:"start"`
	EndTime   string `json:"end"`
	Note      string `json:"note"`
}

type DateHighlightDTO struct {
	Date      string `json:"date"`
	DaysUntil int    `json:"daysUntil"`
	Urgency   string `json:"urgency"`
}

func NewHandler(service TaskService) *Handler {
	return &Handler{service}
}

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	tasks, err := h.service.GetTasksForDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, taskToDTO(t))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var dto TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateTask(r.Context(), dtoToTask(dto))
	if err != nil {
		if errors.Is(err, ErrEmptyTitle) || errors.Is(err, ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "Invalid task", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(taskToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskId(w, r)
	if !ok {
		return
	}

	var dto TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateTask(r.Context(), id, dtoToTask(dto)); err != nil {
		switch {
		case errors.Is(err, ErrEmptyTitle):
			writeError(w, http.StatusBadRequest, "Invalid task", err.Error())
		case errors.Is(err, ErrTaskNotFound):
			writeError(w, http.StatusNotFound, "Task not found", "")
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskId(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, "Task not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetDates(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting dates with tasks")

	highlights, err := h.service.DatesWithTasks(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DateHighlightDTO, 0, len(highlights))
	for _, hl := range highlights {
		dtos = append(dtos, DateHighlightDTO{Date: hl.Date, DaysUntil: hl.DaysUntil, Urgency: string(hl.Urgency)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func taskId(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["taskId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id", "'taskId' must be an integer")
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, status int, msg string, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: msg, Details: details}); err != nil {
		log.Errorf("Failed to encode error response: %v", err)
	}
}

func taskToDTO(t Task) TaskDTO {
	return TaskDTO{
		Id:        t.Id,
		Date:      t.Date,
		Title:     t.Title,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Note:      t.Note,
	}
}

func dtoToTask(dto TaskDTO) Task {
	return Task{
		Id:        dto.Id,
		Date:      dto.Date,
		Title:     dto.Title,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Note:      dto.Note,
	}
}
