package freeroom

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// response mirrors the script output: building → date token → period key
// ("c<N>") → room names. The literal date token "default" means the entry
// is date-independent.
type response map[string]map[string]map[string][]string

type FreeRoomService interface {
	// QueryPeriod returns the free rooms in one building during one
	// period, concatenated across every date token in the response.
	QueryPeriod(ctx context.Context, building string, date DateKeyword, period int) (PeriodResult, error)
	// QueryTable returns per-period rows for one building, optionally
	// restricted to the given period numbers.
	QueryTable(ctx context.Context, building string, date DateKeyword, periods []int) (TableResult, error)
}

type FreeRoomServiceImpl struct {
	source Source

	// running enforces the at-most-one-in-flight rule.
	running sync.Mutex
}

func NewFreeRoomService(source Source) *FreeRoomServiceImpl {
	return &FreeRoomServiceImpl{source: source}
}

func (s *FreeRoomServiceImpl) QueryPeriod(ctx context.Context, building string, date DateKeyword, period int) (PeriodResult, error) {
	if period < 1 || period > 12 {
		return PeriodResult{}, ErrInvalidPeriod
	}

	resp, err := s.fetch(ctx, building, date)
	if err != nil {
		return PeriodResult{}, err
	}

	resolved, approximate := resolveBuilding(resp, building)
	result := PeriodResult{
		Building:    resolved,
		Requested:   building,
		Approximate: approximate,
		Period:      period,
		Rooms:       []string{},
	}

	// Rooms for the same period may appear under several date tokens;
	// they are concatenated as-is, duplicates included.
	key := "c" + strconv.Itoa(period)
	for _, token := range sortedKeys(resp[resolved]) {
		result.Rooms = append(result.Rooms, resp[resolved][token][key]...)
	}
	return result, nil
}

func (s *FreeRoomServiceImpl) QueryTable(ctx context.Context, building string, date DateKeyword, periods []int) (TableResult, error) {
	wanted := make(map[int]bool, len(periods))
	for _, p := range periods {
		if p < 1 || p > 12 {
			return TableResult{}, ErrInvalidPeriod
		}
		wanted[p] = true
	}

	resp, err := s.fetch(ctx, building, date)
	if err != nil {
		return TableResult{}, err
	}

	resolved, approximate := resolveBuilding(resp, building)
	result := TableResult{
		Building:    resolved,
		Requested:   building,
		Approximate: approximate,
		Rows:        []TableRow{},
	}

	for _, token := range sortedKeys(resp[resolved]) {
		rowDate := token
		if rowDate == "default" {
			rowDate = ""
		}
		for key, rooms := range resp[resolved][token] {
			if !strings.HasPrefix(key, "c") {
				continue
			}
			period, err := strconv.Atoi(strings.TrimPrefix(key, "c"))
			if err != nil {
				continue
			}
			if len(wanted) > 0 && !wanted[period] {
				continue
			}
			if len(rooms) == 0 {
				continue
			}
			result.Rows = append(result.Rows, TableRow{Date: rowDate, Period: period, Rooms: rooms})
		}
	}

	sort.Slice(result.Rows, func(i, j int) bool {
		if result.Rows[i].Date != result.Rows[j].Date {
			return result.Rows[i].Date < result.Rows[j].Date
		}
		return result.Rows[i].Period < result.Rows[j].Period
	})
	return result, nil
}

func (s *FreeRoomServiceImpl) fetch(ctx context.Context, building string, date DateKeyword) (response, error) {
	if !validBuilding(building) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBuilding, building)
	}
	token, ok := dateTokens[date]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDateKeyword, date)
	}

	if !s.running.TryLock() {
		return nil, ErrQueryInProgress
	}
	defer s.running.Unlock()

	raw, err := s.source.Query(ctx, building, token)
	if err != nil {
		return nil, fmt.Errorf("free-room query failed: %w", err)
	}

	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp, nil
}

// resolveBuilding picks the response key to read. When the requested
// building is absent the first key (in sorted order) is substituted and the
// match is flagged as approximate instead of failing the query.
func resolveBuilding(resp response, requested string) (string, bool) {
	if _, ok := resp[requested]; ok {
		return requested, false
	}
	keys := sortedKeys(resp)
	if len(keys) == 0 {
		return requested, false
	}
	log.Warnf("Building %s absent from response, substituting %s", requested, keys[0])
	return keys[0], true
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
