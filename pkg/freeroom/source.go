package freeroom

import (
	"context"
	"time"

	"github.com/studyhub/studyhub/internal/script"
)

// Source answers room-availability lookups with the script's raw JSON
// output.
type Source interface {
	Query(ctx context.Context, building string, dateToken string) ([]byte, error)
}

// ScriptSource shells out to the room-query script with a bounded wait.
type ScriptSource struct {
	runner     script.Runner
	scriptPath string
	timeout    time.Duration
}

func NewScriptSource(runner script.Runner, scriptPath string, timeout time.Duration) *ScriptSource {
	return &ScriptSource{runner: runner, scriptPath: scriptPath, timeout: timeout}
}

func (s *ScriptSource) Query(ctx context.Context, building string, dateToken string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.runner.Run(ctx, s.scriptPath, building, dateToken)
}
