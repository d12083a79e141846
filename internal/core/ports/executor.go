// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/fresh/internal/core/domain"
)

// Executor defines the interface for executing tasks.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the task's command with dir as the working directory and
	// blocks until it exits. Output is streamed to stdout and stderr as it is
	// produced.
	//
	// It returns an error wrapping domain.ErrCommandFailed if the command
	// cannot be started or exits unsuccessfully.
	Execute(ctx context.Context, task *domain.Task, dir string, stdout, stderr io.Writer) error
}
