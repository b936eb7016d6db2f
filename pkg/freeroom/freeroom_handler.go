package freeroom

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/rest"
	"github.com/studyhub/studyhub/internal/script"
)

type Handler struct {
	service FreeRoomService
}

func NewHandler(service FreeRoomService) *Handler {
	return &Handler{service}
}

// GetBuildings lists the queryable buildings.
func (h *Handler) GetBuildings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Buildings)
}

func (h *Handler) QueryPeriod(w http.ResponseWriter, r *http.Request) {
	building := r.URL.Query().Get("building")
	date := dateKeyword(r)

	period, err := strconv.Atoi(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid period", "'period' must be an integer")
		return
	}

	result, err := h.service.QueryPeriod(r.Context(), building, date, period)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) QueryTable(w http.ResponseWriter, r *http.Request) {
	building := r.URL.Query().Get("building")
	date := dateKeyword(r)

	periods, ok := parsePeriods(w, r.URL.Query().Get("periods"))
	if !ok {
		return
	}

	result, err := h.service.QueryTable(r.Context(), building, date, periods)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, result)
}

func dateKeyword(r *http.Request) DateKeyword {
	if d := r.URL.Query().Get("date"); d != "" {
		return DateKeyword(d)
	}
	return DateToday
}

// parsePeriods parses the optional comma-separated "periods" filter. An
// absent or empty value means "no filter".
func parsePeriods(w http.ResponseWriter, raw string) ([]int, bool) {
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	periods := make([]int, 0, len(parts))
	for _, part := range parts {
		p, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid periods", "'periods' must be a comma-separated list of integers")
			return nil, false
		}
		periods = append(periods, p)
	}
	return periods, true
}

func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownBuilding), errors.Is(err, ErrInvalidDateKeyword), errors.Is(err, ErrInvalidPeriod):
		writeError(w, http.StatusBadRequest, "Invalid query", err.Error())
	case errors.Is(err, ErrQueryInProgress):
		writeError(w, http.StatusConflict, "Query already in progress", "")
	case errors.Is(err, script.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "Free-room query timed out", "")
	case errors.Is(err, script.ErrScriptFailed):
		writeError(w, http.StatusBadGateway, "Free-room query failed", err.Error())
	case errors.Is(err, ErrMalformedResponse):
		writeError(w, http.StatusBadGateway, "Malformed free-room data", err.Error())
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
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
