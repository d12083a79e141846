// Package domain contains the core build model: tasks, timestamps and the output index.
package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigRead is returned when the build file cannot be read.
	ErrConfigRead = zerr.New("failed to read build file")

	// ErrConfigParse is returned when the build file is not valid YAML or JSON.
	ErrConfigParse = zerr.New("failed to parse build file")

	// ErrNoFinalTargets is returned when a configuration declares no final targets.
	ErrNoFinalTargets = zerr.New("configuration has no final targets")

	// ErrFinalWithoutTask is returned when a final target has no task producing it.
	ErrFinalWithoutTask = zerr.New("no task builds final target")

	// ErrDuplicateOutput is returned when more than one task claims the same output path.
	ErrDuplicateOutput = zerr.New("multiple tasks generate the same output")

	// ErrNoOutputs is returned when a task declares no outputs.
	ErrNoOutputs = zerr.New("task declares no outputs")

	// ErrEmptyCommand is returned when a task has a blank command.
	ErrEmptyCommand = zerr.New("task has an empty command")

	// ErrNoProducer is returned when a required path is missing and no task builds it.
	ErrNoProducer = zerr.New("no task to build")

	// ErrMissingPath is returned when a path that must exist is absent.
	ErrMissingPath = zerr.New("path does not exist")

	// ErrNotAFile is returned when a declared path exists but is not a regular file.
	ErrNotAFile = zerr.New("path is not a file")

	// ErrCommandFailed is returned when a task command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrNotRefreshed is returned when a task ran but its outputs are still older than its inputs.
	ErrNotRefreshed = zerr.New("file time seems not to be refreshed")

	// ErrCycleDetected is returned when building a target requires building itself.
	ErrCycleDetected = zerr.New("cycle detected")
)
