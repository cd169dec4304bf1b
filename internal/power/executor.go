package power

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/smitstech/Shutdowner/internal/countdown"
	"github.com/smitstech/Shutdowner/internal/logger"
)

// Logger interface for executor logging
type Logger interface {
	Infof(eventID uint32, format string, args ...interface{})
}

// runner starts a prepared command; replaced in tests
type runner func(cmd *exec.Cmd) ([]byte, error)

func combinedOutput(cmd *exec.Cmd) ([]byte, error) {
	return cmd.CombinedOutput()
}

// ShellExecutor performs actions through the OS shutdown command
type ShellExecutor struct {
	logger Logger
	run    runner
}

// NewShellExecutor creates an executor that invokes the platform command
func NewShellExecutor(log Logger) *ShellExecutor {
	return &ShellExecutor{logger: log, run: combinedOutput}
}

// Execute runs the command for action and waits for it to return.
// The OS acts on the request asynchronously after that.
func (e *ShellExecutor) Execute(ctx context.Context, action countdown.Action) error {
	name, args, err := CommandFor(action)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)

	e.logger.Infof(logger.EventActionDispatched, "Running: %s %s", name, strings.Join(args, " "))
	output, err := e.run(cmd)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w (output: %s)", name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// DryRunExecutor logs the command it would run
type DryRunExecutor struct {
	logger Logger
}

// NewDryRunExecutor creates an executor that never touches the OS
func NewDryRunExecutor(log Logger) *DryRunExecutor {
	return &DryRunExecutor{logger: log}
}

func (e *DryRunExecutor) Execute(ctx context.Context, action countdown.Action) error {
	name, args, err := CommandFor(action)
	if err != nil {
		return err
	}
	e.logger.Infof(logger.EventActionDispatched, "Dry run, would execute: %s %s", name, strings.Join(args, " "))
	return nil
}

// CommandFor returns the platform command performing action
func CommandFor(action countdown.Action) (string, []string, error) {
	args, ok := actionArgs[action]
	if !ok {
		return "", nil, fmt.Errorf("unsupported action: %s", action)
	}
	return shutdownCommand, append([]string(nil), args...), nil
}
