package freeroom

import "context"

// StubSource is a test double returning canned query output.
type StubSource struct {
	Output []byte
	Err    error
	// Calls records the (building, dateToken) pairs of every query.
	Calls [][2]string
}

func (s *StubSource) Query(ctx context.Context, building string, dateToken string) ([]byte, error) {
	s.Calls = append(s.Calls, [2]string{building, dateToken})
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Output, nil
}
