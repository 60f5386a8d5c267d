package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const summaryRule = 60

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	mode   StartMode
	dryRun bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options...).mode
	s.dryRun = false

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {
}

// DisplayConfigWarnings prints one line per classification conflict.
func (s *SimpleUI) DisplayConfigWarnings(warnings []string) {
	for _, w := range warnings {
		s.printf("warning: %s\n", w)
	}
}

// DisplayRunInfo prints the batch header.
func (s *SimpleUI) DisplayRunInfo(info RunInfo) {
	s.dryRun = info.DryRun

	if s.mode == ModeView {
		s.printf("Report for %s (%d files)\n", info.Root, info.Units)
	} else {
		s.printf("Processing %d files...\n", info.Units)
	}

	if info.DryRun {
		s.printf("DRY RUN MODE - no files will be modified\n\n")
	}
}

// DisplayUnitOutcome prints a line for every unit that changed or failed.
func (s *SimpleUI) DisplayUnitOutcome(outcome m.Outcome) {
	switch {
	case outcome.Modified():
		s.printf("%s %s: %d lines removed (%d passes)\n",
			s.modifiedTag(outcome), outcome.Path, outcome.LinesRemoved, outcome.Passes)
	case outcome.Status.IsFailure():
		s.printf("[%s] %s: %s\n", strings.ToUpper(string(outcome.Status)), outcome.Path, outcome.Message)
	default:
	}
}

func (s *SimpleUI) modifiedTag(outcome m.Outcome) string {
	switch {
	case s.dryRun:
		return "[DRY RUN]"
	case outcome.Status == m.StatusPartialAccepted:
		return "[PARTIAL]"
	default:
		return "[MODIFIED]"
	}
}

// DisplaySummary prints a table of the units that changed or failed,
// followed by the batch totals.
func (s *SimpleUI) DisplaySummary(report m.Report) {
	rows := make([][]string, 0, len(report.Outcomes))

	for _, o := range report.Outcomes {
		if !o.Modified() && !o.Status.IsFailure() {
			continue
		}

		rows = append(rows, []string{
			string(o.Path),
			string(o.Status),
			fmt.Sprintf("%d", o.LinesRemoved),
			fmt.Sprintf("%d", o.Passes),
		})
	}

	if len(rows) > 0 {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Path", "Status", "Lines Removed", "Passes"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
		})
		table.AppendBulk(rows)
		table.Render()

		s.printf("\n%s", tableBuffer.String())
	}

	sum := report.Summary

	s.printf("\n%s\n", strings.Repeat("=", summaryRule))
	s.printf("Files processed: %d\n", sum.Processed)
	s.printf("Files modified: %d\n", sum.Modified)

	if sum.Failed > 0 {
		s.printf("Files failed: %d\n", sum.Failed)
	}

	s.printf("Total lines removed: %d\n", sum.LinesRemoved)
	s.printf("Average passes per file: %.1f\n", sum.AveragePasses())
}

// DisplayFeatures prints the effective classification.
func (s *SimpleUI) DisplayFeatures(listing FeatureListing) {
	s.printf("Prefix: %s  Guard suffix: %s  Extensions: %s  Max passes: %d\n",
		listing.Prefix, listing.GuardSuffix, strings.Join(listing.Extensions, ","), listing.MaxPasses)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Feature", "Class"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, f := range listing.Enabled {
		table.Append([]string{f, "always-on"})
	}

	for _, f := range listing.Disabled {
		table.Append([]string{f, "always-off"})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(listing.Enabled)+len(listing.Disabled)),
		fmt.Sprintf("%d on / %d off", len(listing.Enabled), len(listing.Disabled)),
	})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	s.DisplayConfigWarnings(listing.Conflicts)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
