package schedule

import (
	"context"

	"github.com/studyhub/studyhub/internal/script"
)

// Source produces the raw JSON bytes of a parsed schedule for a captured
// timetable file.
type Source interface {
	Parse(ctx context.Context, filePath string) ([]byte, error)
}

// ScriptSource shells out to the schedule-parser script. The -B flag keeps
// the interpreter from littering bytecode caches next to the script.
type ScriptSource struct {
	runner     script.Runner
	scriptPath string
}

func NewScriptSource(runner script.Runner, scriptPath string) *ScriptSource {
	return &ScriptSource{runner: runner, scriptPath: scriptPath}
}

func (s *ScriptSource) Parse(ctx context.Context, filePath string) ([]byte, error) {
	return s.runner.Run(ctx, "-B", s.scriptPath, filePath)
}
