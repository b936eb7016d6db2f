package schedule

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhub/studyhub/internal/event_bus"
	"github.com/studyhub/studyhub/internal/rest"
	"github.com/studyhub/studyhub/internal/script"
)

func setupHandlerTest(source *StubSource) (*Handler, *StubScheduleRepository) {
	repo := &StubScheduleRepository{}
	service := NewImportService(source, repo, event_bus.NewEventBus())
	return NewHandler(service), repo
}

func importRequest(t *testing.T, filePath string) *http.Request {
	t.Helper()
	body, err := json.Marshal(ImportRequestDTO{FilePath: filePath})
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/schedule/import", bytes.NewBuffer(body))
}

func TestImportSchedule(t *testing.T) {
	raw := []byte(`[{"day":1,"start_period":1,"periods":2,"name":"CS101","classroom":"A1","teacher":"Dr.X","color":"#ffcc00"}]`)
	handler, repo := setupHandlerTest(&StubSource{Output: raw})

	w := httptest.NewRecorder()
	handler.ImportSchedule(w, importRequest(t, "timetable.html"))
	require.Equal(t, http.StatusOK, w.Code)

	var grid Grid
	require.NoError(t, json.NewDecoder(w.Body).Decode(&grid))
	require.Len(t, grid.Cells, 1)
	assert.Equal(t, "CS101", grid.Cells[0].Name)
	assert.Equal(t, raw, repo.Raw)
}

func TestImportSchedule_MissingFilePath(t *testing.T) {
	handler, _ := setupHandlerTest(&StubSource{})

	w := httptest.NewRecorder()
	handler.ImportSchedule(w, importRequest(t, ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportSchedule_EmptyResult(t *testing.T) {
	handler, _ := setupHandlerTest(&StubSource{Output: []byte(`[]`)})

	w := httptest.NewRecorder()
	handler.ImportSchedule(w, importRequest(t, "timetable.html"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp rest.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "No courses found", resp.Error)
}

func TestImportSchedule_ScriptFailed(t *testing.T) {
	handler, _ := setupHandlerTest(&StubSource{Err: script.ErrScriptFailed})

	w := httptest.NewRecorder()
	handler.ImportSchedule(w, importRequest(t, "timetable.html"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestImportSchedule_Timeout(t *testing.T) {
	handler, _ := setupHandlerTest(&StubSource{Err: script.ErrTimeout})

	w := httptest.NewRecorder()
	handler.ImportSchedule(w, importRequest(t, "timetable.html"))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestGetSchedule_NoneImported(t *testing.T) {
	handler, _ := setupHandlerTest(&StubSource{})

	w := httptest.NewRecorder()
	handler.GetSchedule(w, httptest.NewRequest(http.MethodGet, "/api/schedule", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSchedule_ReturnsLastImport(t *testing.T) {
	handler, repo := setupHandlerTest(&StubSource{})
	repo.Raw = []byte(`[{"day":2,"start_period":3,"periods":1,"name":"Algebra"}]`)

	w := httptest.NewRecorder()
	handler.GetSchedule(w, httptest.NewRequest(http.MethodGet, "/api/schedule", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var grid Grid
	require.NoError(t, json.NewDecoder(w.Body).Decode(&grid))
	require.Len(t, grid.Cells, 1)
	assert.Equal(t, "Algebra", grid.Cells[0].Name)
}
