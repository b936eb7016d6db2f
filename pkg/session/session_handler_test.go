package session

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhub/studyhub/internal/event_bus"
	"github.com/studyhub/studyhub/internal/utils"
)

func setupHandlerTest(t *testing.T) (*Handler, *StubSessionRepository, *utils.MockClock) {
	t.Helper()
	repo := &StubSessionRepository{}
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)}
	service := NewSessionService(repo, event_bus.NewEventBus(), clock)
	return NewHandler(service), repo, clock
}

func TestStartThenFinish(t *testing.T) {
	handler, _, clock := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/session/start", nil)
	w := httptest.NewRecorder()
	handler.StartSession(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	clock.Advance(25 * time.Minute)

	req = httptest.NewRequest(http.MethodPatch, "/api/session/current/finish", nil)
	w = httptest.NewRecorder()
	handler.FinishCurrentSession(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var dto SessionDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, 25*60, dto.DurationSeconds)
}

func TestFinish_NothingRunning(t *testing.T) {
	handler, _, _ := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/session/current/finish", nil)
	w := httptest.NewRecorder()
	handler.FinishCurrentSession(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordSession_BadInterval(t *testing.T) {
	handler, _, _ := setupHandlerTest(t)

	start := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(RecordSessionDTO{StartTime: start, EndTime: start.Add(-time.Hour)})
	req := httptest.NewRequest(http.MethodPost, "/api/session", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.RecordSession(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAllSessions_RequiresConfirmation(t *testing.T) {
	handler, repo, _ := setupHandlerTest(t)
	repo.Sessions = []StudySession{{Id: 1, DurationSeconds: 60}}

	req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
	w := httptest.NewRecorder()
	handler.DeleteAllSessions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, repo.Sessions, 1, "unconfirmed delete must not touch the store")

	req = httptest.NewRequest(http.MethodDelete, "/api/session?confirm=yes", nil)
	w = httptest.NewRecorder()
	handler.DeleteAllSessions(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.Sessions)
}
