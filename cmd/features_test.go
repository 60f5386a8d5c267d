package cmd

import (
	"errors"
	"testing"

	"github.com/mouse-blink/flagstrip/internal/domain"
	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeaturesCmd_DefaultTables(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newFeaturesCmd())

	mockWorkflow.EXPECT().Features(domain.FeaturesArgs{}).Return(nil)

	cmd.SetArgs([]string{"features"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestFeaturesCmd_UsesRootFeaturesFlag(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newFeaturesCmd())

	mockWorkflow.EXPECT().Features(mock.MatchedBy(func(args domain.FeaturesArgs) bool {
		return args.Features == m.Path("cfg/features.yaml")
	})).Return(nil)

	cmd.SetArgs([]string{"features", "-f", "cfg/features.yaml"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestFeaturesCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newFeaturesCmd())

	loadErr := errors.New("load features: bad yaml")
	mockWorkflow.EXPECT().Features(mock.Anything).Return(loadErr)

	cmd.SetArgs([]string{"features"})
	err := cmd.Execute()
	require.ErrorIs(t, err, loadErr)
}

func TestFeaturesCmd_RejectsArgs(t *testing.T) {
	useMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newFeaturesCmd())

	cmd.SetArgs([]string{"features", "extra"})
	require.Error(t, cmd.Execute())
}
