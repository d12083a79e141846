// Package config provides the build file loader for fresh.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML build files. JSON build files
// are accepted as well since JSON is a subset of YAML.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads filename inside root. An absolute filename is used as-is.
func (l *Loader) Load(root, filename string) (*domain.Configuration, error) {
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, filename)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigRead, "failed to load configuration"), "path", path), "reason", err.Error())
	}

	bf, err := decode(data)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParse, "failed to load configuration"), "path", path), "reason", err.Error())
	}

	cfg, err := toDomain(bf)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug(fmt.Sprintf("loaded %d task(s) and %d final target(s) from %s", len(cfg.Tasks), len(cfg.Final), path))
	return cfg, nil
}

func decode(data []byte) (*Buildfile, error) {
	var bf Buildfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &bf, nil
}

func toDomain(bf *Buildfile) (*domain.Configuration, error) {
	final, err := cleanPaths(bf.Final)
	if err != nil {
		return nil, zerr.With(err, "field", "final")
	}

	tasks := make([]*domain.Task, 0, len(bf.Tasks))
	for i, dto := range bf.Tasks {
		inputs, err := cleanPaths(dto.Input)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "task_index", i), "field", "input")
		}
		outputs, err := cleanPaths(dto.Output)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "task_index", i), "field", "output")
		}
		tasks = append(tasks, &domain.Task{
			Command: dto.Command,
			Inputs:  inputs,
			Outputs: outputs,
		})
	}

	return &domain.Configuration{Final: final, Tasks: tasks}, nil
}

// cleanPaths interns cleaned paths, keeping order and duplicates.
func cleanPaths(paths []string) ([]domain.InternedString, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	res := make([]domain.InternedString, len(paths))
	for i, p := range paths {
		if p == "" {
			return nil, zerr.Wrap(domain.ErrConfigParse, "empty path")
		}
		res[i] = domain.NewInternedString(filepath.Clean(p))
	}
	return res, nil
}
