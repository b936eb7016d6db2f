package schedule

import "context"

// StubSource is a test double returning canned parser output.
type StubSource struct {
	Output []byte
	Err    error
	// Calls records the file path of every Parse invocation.
	Calls []string
}

func (s *StubSource) Parse(ctx context.Context, filePath string) ([]byte, error) {
	s.Calls = append(s.Calls, filePath)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Output, nil
}
