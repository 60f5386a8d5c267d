package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/flagstrip/internal/adapter"
	"github.com/mouse-blink/flagstrip/internal/controller"
	"github.com/mouse-blink/flagstrip/internal/domain/resolver"
	m "github.com/mouse-blink/flagstrip/internal/model"
)

// ErrUnitsFailed is returned by a strict Resolve when at least one unit failed.
var ErrUnitsFailed = errors.New("one or more units failed")

// ResolveArgs contains the arguments for a batch resolution.
type ResolveArgs struct {
	// Features is the feature file; empty selects the built-in tables.
	Features m.Path
	Root     m.Path
	// Extensions overrides the extensions from the feature file.
	Extensions []string
	DryRun     bool
	Threads    int
	// MaxPasses overrides the pass cap from the feature file when positive.
	MaxPasses     int
	AcceptPartial bool
	// Report is where the batch report is saved; empty skips saving.
	Report m.Path
	Strict bool
}

// FeaturesArgs contains the arguments for listing the classification.
type FeaturesArgs struct {
	Features m.Path
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Resolve(ctx context.Context, args ResolveArgs) error
	Features(args FeaturesArgs) error
	View(args ViewArgs) error
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithLogger sets the logger used for per-unit diagnostics.
func WithLogger(logger *slog.Logger) WorkflowOption {
	return func(w *workflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

type workflow struct {
	fsAdapter     adapter.SourceFSAdapter
	configAdapter adapter.FeatureConfigAdapter
	reportStore   adapter.ReportStore
	ui            controller.UI
	orchestrator  Orchestrator
	logger        *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	configAdapter adapter.FeatureConfigAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	options ...WorkflowOption,
) Workflow {
	w := &workflow{
		fsAdapter:     fsAdapter,
		configAdapter: configAdapter,
		reportStore:   reportStore,
		ui:            ui,
		orchestrator:  orchestrator,
		logger:        slog.New(slog.DiscardHandler),
	}

	for _, opt := range options {
		opt(w)
	}

	return w
}

// Resolve rewrites every unit under args.Root. Unit failures are recorded in
// the report and never stop the batch.
func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	cfg, err := w.configAdapter.Load(args.Features)
	if err != nil {
		return fmt.Errorf("load features: %w", err)
	}

	classifier, conflicts := resolver.NewClassifier(cfg.Enabled, cfg.Disabled)

	unitResolver, err := resolver.New(
		classifier,
		resolver.Syntax{FeaturePrefix: cfg.FeaturePrefix, GuardSuffix: cfg.GuardSuffix},
		resolver.WithMaxPasses(pickPositive(args.MaxPasses, cfg.MaxPasses)),
	)
	if err != nil {
		return fmt.Errorf("build resolver: %w", err)
	}

	units, err := w.fsAdapter.Get(ctx, args.Root, pickExtensions(args.Extensions, cfg.Extensions))
	if err != nil {
		return fmt.Errorf("get units: %w", err)
	}

	if err := w.ui.Start(controller.WithResolveMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if len(conflicts) > 0 {
		w.ui.DisplayConfigWarnings(conflictMessages(conflicts))
	}

	threads := max(args.Threads, 1)

	w.ui.DisplayRunInfo(controller.RunInfo{
		Root:      args.Root,
		Units:     len(units),
		Threads:   threads,
		MaxPasses: unitResolver.MaxPasses(),
		DryRun:    args.DryRun,
	})

	job := Job{
		Resolver:      unitResolver,
		DryRun:        args.DryRun,
		AcceptPartial: args.AcceptPartial,
	}

	outcomes := w.resolveUnits(ctx, units, job, threads)

	report := m.Report{
		Root:     args.Root,
		DryRun:   args.DryRun,
		Outcomes: outcomes,
		Summary:  m.Summarize(outcomes),
	}

	w.ui.DisplaySummary(report)

	if args.Report != "" {
		if err := w.reportStore.SaveReport(args.Report, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	w.ui.Wait()

	if args.Strict && report.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnitsFailed, report.Summary.Failed, report.Summary.Processed)
	}

	return nil
}

// resolveUnits runs the orchestrator over units on a bounded pool. Outcomes
// keep the order of units.
func (w *workflow) resolveUnits(ctx context.Context, units []m.Unit, job Job, threads int) []m.Outcome {
	outcomes := make([]m.Outcome, len(units))

	var uiMu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(threads)

	for i, unit := range units {
		unitJob := job
		unitJob.Unit = unit

		g.Go(func() error {
			outcome := w.orchestrator.ResolveUnit(ctx, unitJob)
			outcomes[i] = outcome

			w.logger.Debug("unit resolved",
				slog.String("path", string(outcome.Path)),
				slog.String("status", string(outcome.Status)),
				slog.Int("passes", outcome.Passes),
				slog.Int("lines_removed", outcome.LinesRemoved),
			)

			uiMu.Lock()
			w.ui.DisplayUnitOutcome(outcome)
			uiMu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

// Features shows the effective classification and its conflicts.
func (w *workflow) Features(args FeaturesArgs) error {
	cfg, err := w.configAdapter.Load(args.Features)
	if err != nil {
		return fmt.Errorf("load features: %w", err)
	}

	classifier, conflicts := resolver.NewClassifier(cfg.Enabled, cfg.Disabled)

	if err := w.ui.Start(controller.WithFeaturesMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayFeatures(controller.FeatureListing{
		Prefix:      cfg.FeaturePrefix,
		GuardSuffix: cfg.GuardSuffix,
		Extensions:  cfg.Extensions,
		MaxPasses:   cfg.MaxPasses,
		Enabled:     classifier.Enabled(),
		Disabled:    classifier.Disabled(),
		Conflicts:   conflictMessages(conflicts),
	})

	w.ui.Wait()

	return nil
}

// View loads a saved report and shows it as if the batch had just run.
func (w *workflow) View(args ViewArgs) error {
	if args.Report == "" {
		return fmt.Errorf("report path is required")
	}

	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(controller.RunInfo{
		Root:   report.Root,
		Units:  len(report.Outcomes),
		DryRun: report.DryRun,
	})

	for _, outcome := range report.Outcomes {
		w.ui.DisplayUnitOutcome(outcome)
	}

	w.ui.DisplaySummary(report)
	w.ui.Wait()

	return nil
}

func conflictMessages(conflicts []resolver.Conflict) []string {
	messages := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		messages = append(messages, c.String())
	}

	return messages
}

func pickPositive(override, fallback int) int {
	if override > 0 {
		return override
	}

	return fallback
}

func pickExtensions(override, fallback []string) []string {
	if len(override) > 0 {
		return override
	}

	if len(fallback) > 0 {
		return fallback
	}

	return m.DefaultExtensions
}
