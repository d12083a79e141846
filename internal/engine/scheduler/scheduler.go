// Package scheduler brings targets up to date by walking their dependencies
// on demand and running the tasks whose outputs are older than their inputs.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler decides which tasks must run and runs them one at a time.
// The recursion in Ensure is the schedule: a task runs only after every
// input it declares has been ensured.
type Scheduler struct {
	executor ports.Executor
	oracle   ports.TimestampOracle
	logger   ports.Logger
	tracer   ports.Tracer

	stdout io.Writer
	stderr io.Writer
}

// NewScheduler creates a Scheduler that streams command output to the
// process's standard streams.
func NewScheduler(
	executor ports.Executor,
	oracle ports.TimestampOracle,
	logger ports.Logger,
	tracer ports.Tracer,
) *Scheduler {
	return &Scheduler{
		executor: executor,
		oracle:   oracle,
		logger:   logger,
		tracer:   tracer,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// SetOutput redirects command output.
func (s *Scheduler) SetOutput(stdout, stderr io.Writer) {
	s.stdout = stdout
	s.stderr = stderr
}

// Ensure brings target up to date within sess and reports whether any task
// ran for it. Errors are wrapped with every target on the way down so the
// report reads as a build trace.
func (s *Scheduler) Ensure(ctx context.Context, sess *Session, target domain.InternedString) (domain.Outcome, error) {
	task, ok := sess.index.Lookup(target)
	if !ok {
		return domain.Unchanged, s.ensureSource(sess, target)
	}

	if err := sess.trail.Enter(target, task); err != nil {
		return domain.Unchanged, err
	}
	defer sess.trail.Leave(task)

	outcome, err := s.ensureTask(ctx, sess, task)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to build target"), "target", target.String())
		return domain.Unchanged, zerr.With(err, "command", task.Command)
	}

	if outcome == domain.Changed {
		s.logger.Debug(fmt.Sprintf("built %s with %q", target, task.Command))
	}
	return outcome, nil
}

// ensureSource handles a target no task produces: it must already exist.
func (s *Scheduler) ensureSource(sess *Session, target domain.InternedString) error {
	stamp, err := s.oracle.Stamp(sess.root, target)
	if err != nil {
		return err
	}
	if !stamp.Present() {
		return zerr.With(zerr.Wrap(domain.ErrNoProducer, "target is neither built nor present"), "path", target.String())
	}
	s.logger.Debug(fmt.Sprintf("%s exists and has no rule to build, skipped", target))
	return nil
}

func (s *Scheduler) ensureTask(ctx context.Context, sess *Session, task *domain.Task) (domain.Outcome, error) {
	for _, input := range task.Inputs {
		if _, err := s.Ensure(ctx, sess, input); err != nil {
			return domain.Unchanged, err
		}
	}

	window, err := s.window(ctx, sess, task, false)
	if err != nil {
		return domain.Unchanged, err
	}

	if !window.Stale() {
		s.logger.Debug(fmt.Sprintf(
			"%s is up to date: newest input %s, oldest output %s",
			task, window.LatestInput, window.EarliestOutput,
		))
		return domain.Unchanged, nil
	}

	if sess.ledger.Has(task) {
		s.logger.Warn(fmt.Sprintf("task %s is re-run", task))
	}

	if err := s.run(ctx, sess, task); err != nil {
		return domain.Unchanged, err
	}

	after, err := s.window(ctx, sess, task, true)
	if err != nil {
		return domain.Unchanged, err
	}
	if after.Stale() {
		err := zerr.With(zerr.Wrap(domain.ErrNotRefreshed, "outputs are not newer than inputs"), "task", task.String())
		err = zerr.With(err, "latest_input", after.LatestInput.String())
		return domain.Unchanged, zerr.With(err, "earliest_output", after.EarliestOutput.String())
	}

	sess.ledger.Record(task)
	return domain.Changed, nil
}

// window stamps every input and output of task. Inputs must exist. Outputs
// must exist only when required is set; otherwise an absent output is older
// than any input.
func (s *Scheduler) window(ctx context.Context, sess *Session, task *domain.Task, required bool) (domain.Window, error) {
	inputs, err := s.oracle.StampAll(ctx, sess.root, task.Inputs)
	if err != nil {
		return domain.Window{}, err
	}
	for i, stamp := range inputs {
		if err := stamp.Require(task.Inputs[i], "input of task does not exist"); err != nil {
			err = zerr.With(err, "task", task.String())
			if producer, ok := sess.index.Lookup(task.Inputs[i]); ok {
				err = zerr.With(err, "producer", producer.String())
			}
			return domain.Window{}, err
		}
	}

	outputs, err := s.oracle.StampAll(ctx, sess.root, task.Outputs)
	if err != nil {
		return domain.Window{}, err
	}
	if required {
		for i, stamp := range outputs {
			if err := stamp.Require(task.Outputs[i], "output of task does not exist"); err != nil {
				return domain.Window{}, zerr.With(err, "task", task.String())
			}
		}
	}

	return domain.NewWindow(inputs, outputs), nil
}

func (s *Scheduler) run(ctx context.Context, sess *Session, task *domain.Task) error {
	ctx, span := s.tracer.Start(ctx, task.Command,
		ports.WithAttribute("fresh.task", task.Fingerprint()),
		ports.WithAttribute("fresh.outputs", pathStrings(task.Outputs)),
	)
	defer span.End()

	s.logger.Info(task.Command)

	err := s.executor.Execute(ctx, task, sess.root, io.MultiWriter(s.stdout, span), io.MultiWriter(s.stderr, span))
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func pathStrings(paths []domain.InternedString) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}
