package cmd

import (
	"github.com/mouse-blink/flagstrip/internal/domain"
	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/spf13/cobra"
)

var viewReportFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved run report",
		Long:  "View a run report written with --report.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Report: m.Path(viewReportFlag)})
		},
	}
	cmd.Flags().StringVarP(&viewReportFlag, "report", "r", "", "report file to show")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
