// Package cmd provides the root command and CLI setup for flagstrip.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mouse-blink/flagstrip/internal/adapter"
	"github.com/mouse-blink/flagstrip/internal/controller"
	"github.com/mouse-blink/flagstrip/internal/domain"
	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/spf13/cobra"
)

var sourceFSAdapter adapter.SourceFSAdapter
var featureConfigAdapter adapter.FeatureConfigAdapter
var reportStore adapter.ReportStore
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	featureConfigAdapter = adapter.NewLocalFeatureConfigAdapter()
	reportStore = adapter.NewReportStore()
	orchestrator = domain.NewOrchestrator(sourceFSAdapter)
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		featureConfigAdapter,
		reportStore,
		ui,
		orchestrator,
		domain.WithLogger(logger),
	)
}

var featuresFlag string
var verboseFlag bool
var appDirFlag string
var dryRunFlag bool
var parallelFlag int
var maxPassesFlag int
var acceptPartialFlag bool
var strictFlag bool
var extFlags []string
var reportFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flagstrip",
		Short: "Statically resolve feature-flag conditionals in C sources",
		Long: `Flagstrip rewrites a C source tree as if it were compiled with a fixed
feature configuration. Every #ifdef, #ifndef and #if defined(...) block whose
condition depends only on known ENABLE_* flags is replaced by the branch that
would be compiled. Blocks that depend on unknown flags, header guards and all
other preprocessor logic are left untouched.

Examples:
  flagstrip --dry-run              preview changes under ./App
  flagstrip -d firmware/App -p 8   resolve another tree with 8 workers
  flagstrip -f features.yaml       use a custom classification`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Resolve(cmd.Context(), domain.ResolveArgs{
				Features:      m.Path(featuresFlag),
				Root:          m.Path(appDirFlag),
				Extensions:    extFlags,
				DryRun:        dryRunFlag,
				Threads:       parallelFlag,
				MaxPasses:     maxPassesFlag,
				AcceptPartial: acceptPartialFlag,
				Report:        m.Path(reportFlag),
				Strict:        strictFlag,
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&featuresFlag, "features", "f", "", "YAML feature classification file (default: built-in tables)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log per-unit diagnostics to stderr")
	cmd.Flags().StringVarP(&appDirFlag, "app-dir", "d", "App", "directory (or single file) to process")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "show changes without modifying files")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", runtime.NumCPU(), "number of parallel workers")
	cmd.Flags().IntVar(&maxPassesFlag, "max-passes", 0, "pass cap per file (0 uses the feature file value)")
	cmd.Flags().BoolVar(&acceptPartialFlag, "accept-partial", false, "write files that hit the pass cap while still changing")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "exit non-zero when any file fails")
	cmd.Flags().StringArrayVarP(&extFlags, "ext", "e", nil, "file extension to process (can be repeated, default .c and .h)")
	cmd.Flags().StringVarP(&reportFlag, "report", "r", "", "write a YAML report of the run to this path")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running batch.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
