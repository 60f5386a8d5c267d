package domain

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mouse-blink/flagstrip/internal/adapter"
	"github.com/mouse-blink/flagstrip/internal/domain/resolver"
	m "github.com/mouse-blink/flagstrip/internal/model"
)

const defaultFilePerm os.FileMode = 0o644

// UnitResolver rewrites the text of a single unit.
type UnitResolver interface {
	Resolve(ctx context.Context, text string) (resolver.Result, error)
}

// Job is one unit to resolve together with the batch settings that apply to it.
type Job struct {
	Unit          m.Unit
	Resolver      UnitResolver
	DryRun        bool
	AcceptPartial bool
}

// Orchestrator reads one unit, resolves it and writes the surviving text back
// when the result is accepted.
type Orchestrator interface {
	ResolveUnit(ctx context.Context, job Job) m.Outcome
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter) Orchestrator {
	return &orchestrator{fsAdapter: fsAdapter}
}

func (o *orchestrator) ResolveUnit(ctx context.Context, job Job) m.Outcome {
	outcome := m.Outcome{Path: job.Unit.Path}

	if err := ctx.Err(); err != nil {
		return withError(outcome, m.StatusCanceled, err)
	}

	content, err := o.fsAdapter.ReadFile(ctx, job.Unit.Path)
	if err != nil {
		return withError(outcome, m.StatusIOError, fmt.Errorf("failed to read unit: %w", err))
	}

	hash, err := adapter.HashBytes(content)
	if err != nil {
		return withError(outcome, m.StatusIOError, fmt.Errorf("failed to hash unit: %w", err))
	}

	outcome.Hash = hash

	res, err := job.Resolver.Resolve(ctx, string(content))
	outcome.Passes = res.Passes

	status, accepted := o.statusFor(job, err)
	if !accepted {
		outcome.LinesRemoved = res.LinesRemoved
		outcome.ScopesResolved = res.ScopesResolved

		return withError(outcome, status, err)
	}

	if res.Text == string(content) {
		outcome.Status = m.StatusUnchanged
		return outcome
	}

	outcome.Status = status
	outcome.LinesRemoved = res.LinesRemoved
	outcome.ScopesResolved = res.ScopesResolved

	if err != nil {
		outcome.Message = err.Error()
	}

	if job.DryRun {
		return outcome
	}

	if err := o.writeUnit(ctx, job.Unit, hash, []byte(res.Text)); err != nil {
		outcome.Status = m.StatusIOError
		outcome.Message = err.Error()

		return outcome
	}

	outcome.Written = true

	return outcome
}

// statusFor maps a resolver error to the unit status and whether the
// resolved text may be used.
func (o *orchestrator) statusFor(job Job, err error) (m.OutcomeStatus, bool) {
	switch {
	case err == nil:
		return m.StatusResolved, true
	case errors.Is(err, resolver.ErrPassCapExceeded):
		if job.AcceptPartial {
			return m.StatusPartialAccepted, true
		}

		return m.StatusPartial, false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return m.StatusCanceled, false
	default:
		return m.StatusFailed, false
	}
}

// writeUnit replaces the unit on disk, refusing to overwrite content that
// changed after it was read.
func (o *orchestrator) writeUnit(ctx context.Context, unit m.Unit, readHash string, content []byte) error {
	current, err := o.fsAdapter.HashFile(ctx, unit.Path)
	if err != nil {
		return fmt.Errorf("failed to re-read unit: %w", err)
	}

	if current != readHash {
		return fmt.Errorf("unit changed on disk since it was read")
	}

	perm := unit.Mode.Perm()
	if perm == 0 {
		perm = defaultFilePerm
	}

	if err := o.fsAdapter.WriteFile(ctx, unit.Path, content, perm); err != nil {
		return fmt.Errorf("failed to write unit: %w", err)
	}

	return nil
}

func withError(outcome m.Outcome, status m.OutcomeStatus, err error) m.Outcome {
	outcome.Status = status
	if err != nil {
		outcome.Message = err.Error()
	}

	return outcome
}
