package schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/rest"
	"github.com/studyhub/studyhub/internal/script"
)

type Handler struct {
	service ImportService
}

type ImportRequestDTO struct {
	FilePath string `json:"filePath"`
}

func NewHandler(service ImportService) *Handler {
	return &Handler{service}
}

func (h *Handler) ImportSchedule(w http.ResponseWriter, r *http.Request) {
	var dto ImportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.FilePath == "" {
		writeError(w, http.StatusBadRequest, "Missing file path", "'filePath' is required")
		return
	}

	grid, err := h.service.Import(r.Context(), dto.FilePath)
	if err != nil {
		switch {
		case errors.Is(err, ErrImportInProgress):
			writeError(w, http.StatusConflict, "Import already in progress", "")
		case errors.Is(err, ErrNoCourses):
			writeError(w, http.StatusUnprocessableEntity, "No courses found", "the parser returned an empty schedule")
		case errors.Is(err, ErrMalformedSchedule):
			writeError(w, http.StatusBadGateway, "Malformed schedule data", err.Error())
		case errors.Is(err, script.ErrTimeout):
			writeError(w, http.StatusGatewayTimeout, "Schedule parser timed out", "")
		case errors.Is(err, script.ErrScriptFailed):
			writeError(w, http.StatusBadGateway, "Schedule parser failed", err.Error())
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeGrid(w, grid)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	grid, err := h.service.LoadLast(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoSchedule) {
			writeError(w, http.StatusNotFound, "No schedule imported yet", "")
			return
		}
		if errors.Is(err, ErrMalformedSchedule) {
			writeError(w, http.StatusInternalServerError, "Stored schedule is corrupted", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeGrid(w, grid)
}

func writeGrid(w http.ResponseWriter, grid Grid) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(grid); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: msg, Details: details}); err != nil {
		log.Errorf("Failed to encode error response: %v", err)
	}
}
