package stats

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/pkg/session"
)

type StatsService interface {
	GetDailyStudyStats(ctx context.Context, unit Unit) (DailySeries, error)
}

// SessionSource is the slice of the session repository the stats service
// needs. Satisfied by session.SessionRepository.
type SessionSource interface {
	ListSessions(ctx context.Context) ([]session.StudySession, error)
}

type StatsServiceImpl struct {
	sessions SessionSource
}

func NewStatsService(sessions SessionSource) *StatsServiceImpl {
	return &StatsServiceImpl{sessions: sessions}
}

// GetDailyStudyStats buckets every study session into the calendar date of
// its start timestamp and sums the durations per date. A session that
// crosses midnight counts entirely toward its start date; whether that is
// the right attribution for overnight sessions is an open question inherited
// from the recording model, so it is preserved as-is.
func (s *StatsServiceImpl) GetDailyStudyStats(ctx context.Context, unit Unit) (DailySeries, error) {
	sessions, err := s.sessions.ListSessions(ctx)
	if err != nil {
		return DailySeries{}, fmt.Errorf("failed to list study sessions: %w", err)
	}

	totals := make(map[string]int)
	for _, sess := range sessions {
		date := sess.StartTime.Format("2006-01-02")
		totals[date] += sess.DurationSeconds
	}

	days := make([]DailyDuration, 0, len(totals))
	for date, seconds := range totals {
		days = append(days, DailyDuration{
			Date:    date,
			Seconds: seconds,
			Value:   float64(seconds) / unit.divisor(),
		})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	log.Debugf("Computed daily study stats for %d day(s)", len(days))
	return DailySeries{Unit: unit, Days: days}, nil
}
