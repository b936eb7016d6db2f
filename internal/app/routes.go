package app

import (
	"github.com/gorilla/mux"
	"github.com/studyhub/studyhub/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Tasks
	r.HandleFunc("/api/task", deps.TaskHandler.GetTasks).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/task", deps.TaskHandler.CreateTask).Methods("POST")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.UpdateTask).Methods("PUT")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.DeleteTask).Methods("DELETE")
	r.HandleFunc("/api/task/dates", deps.TaskHandler.GetDates).Methods("GET")

	// Study sessions
	r.HandleFunc("/api/session/start", deps.SessionHandler.StartSession).Methods("POST")
	r.HandleFunc("/api/session/current", deps.SessionHandler.GetCurrentSession).Methods("GET")
	r.HandleFunc("/api/session/current/finish", deps.SessionHandler.FinishCurrentSession).Methods("PATCH")
	r.HandleFunc("/api/session", deps.SessionHandler.RecordSession).Methods("POST")
	r.HandleFunc("/api/session", deps.SessionHandler.DeleteAllSessions).Methods("DELETE")

	// Stats
	r.HandleFunc("/api/stats/daily", deps.StatsHandler.GetDailyStats).Methods("GET")
	r.HandleFunc("/api/stats/daily/export", deps.StatsHandler.ExportDailyStats).Methods("GET")

	// Schedule
	r.HandleFunc("/api/schedule/import", deps.ScheduleHandler.ImportSchedule).Methods("POST")
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.GetSchedule).Methods("GET")

	// Free classrooms
	r.HandleFunc("/api/freerooms/buildings", deps.FreeRoomHandler.GetBuildings).Methods("GET")
	r.HandleFunc("/api/freerooms/table", deps.FreeRoomHandler.QueryTable).Methods("GET")
	r.HandleFunc("/api/freerooms", deps.FreeRoomHandler.QueryPeriod).Methods("GET")
}
