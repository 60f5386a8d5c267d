package cmd

import (
	"github.com/mouse-blink/flagstrip/internal/domain"
	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/spf13/cobra"
)

// featuresCmd represents the features command.
var featuresCmd = newFeaturesCmd()

func newFeaturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Show the effective feature classification",
		Long: `Show which ENABLE_* identifiers are treated as always-on and always-off,
together with any conflicts found in the classification tables.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Features(domain.FeaturesArgs{Features: m.Path(featuresFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}
