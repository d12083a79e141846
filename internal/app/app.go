// Package app implements the application layer for fresh.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	oracle       ports.TimestampOracle
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	oracle ports.TimestampOracle,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		oracle:       oracle,
		logger:       log,
		tracer:       tracer,
		watcher:      watcher,
		debounce:     DefaultDebounce,
	}
}

// DefaultDebounce is how long watch mode waits for changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// WithDebounce sets the quiet period watch mode waits for before rebuilding.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// SetLogLevel sets the logging level of the application logger.
func (a *App) SetLogLevel(level domain.LogLevel) {
	a.logger.SetLevel(level)
}

// RunOptions configuration for the Run and Watch methods.
type RunOptions struct {
	// ConfigFile is the build file name, looked up in every directory.
	ConfigFile string
	// Directories are the project roots, built in order.
	Directories []string
	// TraceTimestamps logs the modification time of every declared path
	// before and after each project is built.
	TraceTimestamps bool
}

// Run builds every project directory in order. The first failure aborts the
// whole run.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	for _, dir := range opts.Directories {
		if _, err := a.buildProject(ctx, dir, opts); err != nil {
			return err
		}
	}
	return nil
}

// buildProject loads and builds the project in dir. It returns the loaded
// configuration, when there is one, even if the build fails.
func (a *App) buildProject(ctx context.Context, dir string, opts RunOptions) (*domain.Configuration, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "directory", dir)
	}

	ctx, span := a.tracer.Start(ctx, "project "+dir, ports.WithAttribute("fresh.root", root))
	defer span.End()

	cfg, index, err := a.loadProject(root, opts.ConfigFile)
	if err != nil {
		span.RecordError(err)
		return cfg, zerr.With(zerr.Wrap(err, "invalid project"), "directory", dir)
	}

	finals := make([]string, len(cfg.Final))
	for i, final := range cfg.Final {
		finals[i] = final.String()
	}
	a.tracer.EmitPlan(ctx, finals)

	if opts.TraceTimestamps {
		if err := a.traceTimestamps(ctx, root, cfg, "before build"); err != nil {
			return cfg, err
		}
	}

	sess := scheduler.NewSession(root, index)
	outcome := domain.Unchanged
	for _, final := range cfg.Final {
		result, err := a.scheduler.Ensure(ctx, sess, final)
		if err != nil {
			span.RecordError(err)
			return cfg, zerr.With(zerr.Wrap(err, "build failed"), "directory", dir)
		}
		outcome = outcome.Merge(result)
	}
	span.SetAttribute("fresh.tasks_run", sess.Ledger().Len())

	if opts.TraceTimestamps {
		if err := a.traceTimestamps(ctx, root, cfg, "after build"); err != nil {
			return cfg, err
		}
	}

	if outcome == domain.Unchanged {
		a.logger.Info(fmt.Sprintf("Project %s already up to date.", dir))
	}
	return cfg, nil
}

// loadProject reads the configuration of the project at root and checks it
// before anything runs.
func (a *App) loadProject(root, configFile string) (*domain.Configuration, *domain.OutputIndex, error) {
	cfg, err := a.configLoader.Load(root, configFile)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	index, err := domain.BuildIndex(cfg.Tasks)
	if err != nil {
		return cfg, nil, err
	}

	for _, final := range cfg.Final {
		if _, ok := index.Lookup(final); !ok {
			return cfg, nil, zerr.With(zerr.Wrap(domain.ErrFinalWithoutTask, "invalid final target"), "path", final.String())
		}
	}

	return cfg, index, nil
}

func (a *App) traceTimestamps(ctx context.Context, root string, cfg *domain.Configuration, phase string) error {
	paths := cfg.Paths()
	stamps, err := a.oracle.StampAll(ctx, root, paths)
	if err != nil {
		return err
	}

	a.logger.Info("timestamps " + phase + ":")
	for i, stamp := range stamps {
		if stamp.Present() {
			a.logger.Info(fmt.Sprintf("  %s  %s", stamp, paths[i]))
		}
	}
	return nil
}
