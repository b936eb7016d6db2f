package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrScriptFailed is returned when the process exits with a non-zero
	// code or terminates abnormally.
	ErrScriptFailed = errors.New("script execution failed")
	// ErrTimeout is returned when the process is killed because the
	// context deadline expired.
	ErrTimeout = errors.New("script execution timed out")
)

// Runner launches an external process and captures its standard output.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// InterpreterRunner runs scripts through a configured interpreter binary
// (typically "python"). Stderr is captured for logging only; stdout is the
// payload.
type InterpreterRunner struct {
	interpreter string
}

func NewInterpreterRunner(interpreter string) *InterpreterRunner {
	return &InterpreterRunner{interpreter: interpreter}
}

func (r *InterpreterRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.interpreter, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("Running %s %s", r.interpreter, strings.Join(args, " "))
	err := cmd.Run()
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		log.Warnf("Script %s timed out, stderr: %s", strings.Join(args, " "), stderr.String())
		return nil, fmt.Errorf("%w: %s", ErrTimeout, strings.Join(args, " "))
	}
	if err != nil {
		log.Errorf("Script %s failed: %v, stderr: %s", strings.Join(args, " "), err, stderr.String())
		return nil, fmt.Errorf("%w: %v", ErrScriptFailed, err)
	}

	return stdout.Bytes(), nil
}
