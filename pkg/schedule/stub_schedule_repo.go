package schedule

import "context"

// StubScheduleRepository is an in-memory test double for ScheduleRepository.
type StubScheduleRepository struct {
	Raw     []byte
	SaveErr error
	LoadErr error
}

func (s *StubScheduleRepository) SaveRaw(ctx context.Context, raw []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Raw = raw
	return nil
}

func (s *StubScheduleRepository) LoadRaw(ctx context.Context) ([]byte, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Raw, nil
}
