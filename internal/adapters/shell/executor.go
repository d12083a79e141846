// Package shell provides a shell-based executor for running tasks.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// DefaultShell is used when no shell is configured.
const DefaultShell = "/bin/sh"

// outputDrainDelay bounds how long output is still copied after the shell
// exits. Background children that keep stdout or stderr open are not waited for.
const outputDrainDelay = 200 * time.Millisecond

// Executor implements ports.Executor by handing each command line to a shell.
type Executor struct {
	shell  string
	prefix string
	logger ports.Logger
}

// NewExecutor creates a new Executor. Every command is run as
// `<shell> -c "<prefix> <command>"`; an empty prefix runs the command as-is.
func NewExecutor(shell, prefix string, logger ports.Logger) *Executor {
	if shell == "" {
		shell = DefaultShell
	}
	return &Executor{
		shell:  shell,
		prefix: strings.TrimSpace(prefix),
		logger: logger,
	}
}

// CommandLine returns the line handed to the shell for task.
func (e *Executor) CommandLine(task *domain.Task) string {
	if e.prefix == "" {
		return task.Command
	}
	return e.prefix + " " + task.Command
}

// Execute runs the task's command in dir and waits for it to complete.
// A command that has started is never interrupted; ctx is only checked
// before launch.
func (e *Executor) Execute(ctx context.Context, task *domain.Task, dir string, stdout, stderr io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := e.CommandLine(task)
	e.logger.Debug(fmt.Sprintf("running %s -c %q in %s", e.shell, line, dir))

	cmd := exec.Command(e.shell, "-c", line) //nolint:gosec,noctx // user provided command, never cancelled
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = outputDrainDelay

	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		e.logger.Debug(fmt.Sprintf("%q exited with its output still held open by a background process", line))
		err = nil
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		failure := zerr.With(zerr.Wrap(domain.ErrCommandFailed, "task execution failed"), "command", line)
		failure = zerr.With(failure, "exit_code", exitCode)
		if exitCode == -1 {
			failure = zerr.With(failure, "reason", err.Error())
		}
		return failure
	}

	return nil
}
