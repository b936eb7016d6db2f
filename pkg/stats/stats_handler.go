package stats

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type StatsHandler struct {
	service  StatsService
	renderer *CsvStatsRendererImpl
}

type DailyDurationDTO struct {
	Date    string  `json:"date"`
	Seconds int     `json:"seconds"`
	Value   float64 `json:"value"`
}

type DailySeriesDTO struct {
	Unit Unit               `json:"unit"`
	Days []DailyDurationDTO `json:"days"`
}

func NewStatsHandler(service StatsService, renderer *CsvStatsRendererImpl) *StatsHandler {
	return &StatsHandler{service: service, renderer: renderer}
}

func (h *StatsHandler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	unit := ParseUnit(r.URL.Query().Get("unit"))

	series, err := h.service.GetDailyStudyStats(r.Context(), unit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := DailySeriesDTO{Unit: series.Unit, Days: make([]DailyDurationDTO, 0, len(series.Days))}
	for _, day := range series.Days {
		dto.Days = append(dto.Days, DailyDurationDTO{Date: day.Date, Seconds: day.Seconds, Value: day.Value})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *StatsHandler) ExportDailyStats(w http.ResponseWriter, r *http.Request) {
	unit := ParseUnit(r.URL.Query().Get("unit"))

	series, err := h.service.GetDailyStudyStats(r.Context(), unit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	csvData, err := h.renderer.RenderDailyStats(series)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="study_stats.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvData)); err != nil {
		log.Errorf("Failed to write csv response: %v", err)
	}
}
