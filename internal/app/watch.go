package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/fresh/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/zerr"
)

// watchedProject tracks what a rebuild of one project directory must ignore.
type watchedProject struct {
	dir     string
	root    string
	outputs map[string]struct{}
}

// remember records the outputs of cfg so that writes made by the build
// itself do not trigger another build.
func (p *watchedProject) remember(cfg *domain.Configuration) {
	if cfg == nil {
		return
	}
	p.outputs = make(map[string]struct{})
	for _, t := range cfg.Tasks {
		for _, out := range t.Outputs {
			p.outputs[fs.Resolve(p.root, out.String())] = struct{}{}
		}
	}
}

// touchedBy reports whether any of paths is a file the project reads.
func (p *watchedProject) touchedBy(paths []string) bool {
	for _, path := range paths {
		rel, err := filepath.Rel(p.root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if _, ok := p.outputs[path]; ok {
			continue
		}
		return true
	}
	return false
}

// Watch builds every project directory, then rebuilds a project whenever a
// file below it changes that is not one of its outputs. Build failures are
// reported and watching continues. Watch returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	projects := make([]*watchedProject, 0, len(opts.Directories))
	roots := make([]string, 0, len(opts.Directories))
	for _, dir := range opts.Directories {
		root, err := filepath.Abs(dir)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "directory", dir)
		}
		projects = append(projects, &watchedProject{dir: dir, root: root})
		roots = append(roots, root)
	}

	for _, p := range projects {
		a.rebuild(ctx, p, opts)
	}

	if err := a.watcher.Start(ctx, roots); err != nil {
		return zerr.Wrap(err, "failed to start watching")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			for _, p := range projects {
				if p.touchedBy(paths) {
					a.rebuild(ctx, p, opts)
				}
			}
		}
	}
}

func (a *App) rebuild(ctx context.Context, p *watchedProject, opts RunOptions) {
	cfg, err := a.buildProject(ctx, p.dir, opts)
	p.remember(cfg)
	if err != nil {
		a.logger.Error(err)
	}
}
