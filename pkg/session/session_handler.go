package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/rest"
)

type Handler struct {
	service SessionService
}

type SessionDTO struct {
	Id              int       `json:"id,omitempty"`
	StartTime       time.Time `json:"start"`
	EndTime         time.Time `json:"end,omitzero"`
	DurationSeconds int       `json:"durationSeconds"`
}

type RecordSessionDTO struct {
	StartTime time.Time `json:"start"`
	EndTime   time.Time `json:"end"`
}

func NewHandler(service SessionService) *Handler {
	return &Handler{service}
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	started, err := h.service.StartSession(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sessionToDTO(started)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.CurrentSession(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if current == nil {
		writeError(w, http.StatusNotFound, "No study session is running", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sessionToDTO(*current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) FinishCurrentSession(w http.ResponseWriter, r *http.Request) {
	finished, err := h.service.FinishCurrentSession(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoRunningSession) {
			writeError(w, http.StatusNotFound, "No study session is running", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sessionToDTO(finished)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) RecordSession(w http.ResponseWriter, r *http.Request) {
	var dto RecordSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recorded, err := h.service.RecordSession(r.Context(), dto.StartTime, dto.EndTime)
	if err != nil {
		if errors.Is(err, ErrInvalidInterval) {
			writeError(w, http.StatusBadRequest, "Invalid session interval", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sessionToDTO(recorded)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DeleteAllSessions wipes every study session. The caller must supply
// confirm=yes; anything else cancels without touching the store.
func (h *Handler) DeleteAllSessions(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "yes" {
		writeError(w, http.StatusBadRequest, "Deletion not confirmed",
			"pass confirm=yes to permanently delete all study sessions")
		return
	}

	if err := h.service.DeleteAllSessions(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Info("All study sessions deleted")
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, msg string, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: msg, Details: details}); err != nil {
		log.Errorf("Failed to encode error response: %v", err)
	}
}

func sessionToDTO(s StudySession) SessionDTO {
	return SessionDTO{
		Id:              s.Id,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationSeconds: s.DurationSeconds,
	}
}
