package app

import (
	"database/sql"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/config"
	"github.com/studyhub/studyhub/internal/event_bus"
	"github.com/studyhub/studyhub/internal/script"
	"github.com/studyhub/studyhub/internal/utils"
	"github.com/studyhub/studyhub/pkg/freeroom"
	"github.com/studyhub/studyhub/pkg/schedule"
	"github.com/studyhub/studyhub/pkg/session"
	"github.com/studyhub/studyhub/pkg/stats"
	"github.com/studyhub/studyhub/pkg/task"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock
	Runner   script.Runner

	TaskRepo    task.TaskRepository
	TaskService *task.TaskServiceImpl
	TaskHandler *task.Handler

	SessionRepo    session.SessionRepository
	SessionService *session.SessionServiceImpl
	SessionHandler *session.Handler

	StatsService     *stats.StatsServiceImpl
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	StatsHandler     *stats.StatsHandler

	ScheduleRepo    schedule.ScheduleRepository
	ScheduleSource  schedule.Source
	ImportService   *schedule.ImportServiceImpl
	ScheduleHandler *schedule.Handler

	FreeRoomSource  freeroom.Source
	FreeRoomService *freeroom.FreeRoomServiceImpl
	FreeRoomHandler *freeroom.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}
	deps.Runner = script.NewInterpreterRunner(cfg.Scripts.Interpreter)

	deps.TaskRepo = task.NewTaskRepo(db)
	deps.TaskService = task.NewTaskService(deps.TaskRepo, deps.EventBus, deps.Clock)
	deps.TaskHandler = task.NewHandler(deps.TaskService)

	deps.SessionRepo = session.NewSessionRepo(db)
	deps.SessionService = session.NewSessionService(deps.SessionRepo, deps.EventBus, deps.Clock)
	deps.SessionHandler = session.NewHandler(deps.SessionService)

	deps.StatsService = stats.NewStatsService(deps.SessionRepo)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvStatsRenderer)

	deps.ScheduleRepo = schedule.NewScheduleRepository(db)
	deps.ScheduleSource = schedule.NewScriptSource(deps.Runner, cfg.Scripts.ScheduleParser)
	deps.ImportService = schedule.NewImportService(deps.ScheduleSource, deps.ScheduleRepo, deps.EventBus)
	deps.ScheduleHandler = schedule.NewHandler(deps.ImportService)

	queryTimeout := time.Duration(cfg.Scripts.QueryTimeoutSeconds) * time.Second
	deps.FreeRoomSource = freeroom.NewScriptSource(deps.Runner, cfg.Scripts.FreeRoomQuery, queryTimeout)
	deps.FreeRoomService = freeroom.NewFreeRoomService(deps.FreeRoomSource)
	deps.FreeRoomHandler = freeroom.NewHandler(deps.FreeRoomService)

	subscribe(deps)
	return deps
}

// subscribe wires cross-package reactions to domain events.
func subscribe(deps *Dependencies) {
	invalidate := func(e event_bus.EventT[event_bus.TaskChanged]) error {
		deps.TaskService.InvalidateHighlightCache()
		return nil
	}
	event_bus.SubscribeTyped(deps.EventBus, event_bus.TypeTaskCreated, invalidate)
	event_bus.SubscribeTyped(deps.EventBus, event_bus.TypeTaskUpdated, invalidate)
	event_bus.SubscribeTyped(deps.EventBus, event_bus.TypeTaskDeleted, invalidate)

	event_bus.SubscribeTyped(deps.EventBus, event_bus.TypeStudySessionFinished,
		func(e event_bus.EventT[event_bus.StudySessionFinished]) error {
			log.Infof("Study session finished: %ds from %s", e.Data.DurationSeconds, e.Data.StartTime.Format(time.RFC3339))
			return nil
		})

	event_bus.SubscribeTyped(deps.EventBus, event_bus.TypeScheduleImported,
		func(e event_bus.EventT[event_bus.ScheduleImported]) error {
			log.Infof("Schedule imported: %d course(s) (run %s)", e.Data.Courses, e.Data.RunId)
			return nil
		})
}
