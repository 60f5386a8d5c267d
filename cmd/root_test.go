package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/mouse-blink/flagstrip/internal/domain"
	domainmocks "github.com/mouse-blink/flagstrip/internal/domain/mocks"
	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
)

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRootCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd()

	mockWorkflow.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(args domain.ResolveArgs) bool {
		return args.Root == m.Path("App") &&
			args.Features == "" &&
			!args.DryRun &&
			!args.Strict &&
			!args.AcceptPartial &&
			args.MaxPasses == 0 &&
			args.Threads > 0 &&
			len(args.Extensions) == 0 &&
			args.Report == ""
	})).Return(nil)

	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestRootCmd_AllFlags(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd()

	want := domain.ResolveArgs{
		Features:      "features.yaml",
		Root:          "firmware/App",
		Extensions:    []string{".c", ".inc"},
		DryRun:        true,
		Threads:       3,
		MaxPasses:     4,
		AcceptPartial: true,
		Report:        "out/run.yaml",
		Strict:        true,
	}

	mockWorkflow.EXPECT().Resolve(mock.Anything, want).Return(nil)

	cmd.SetArgs([]string{
		"-f", "features.yaml",
		"-d", "firmware/App",
		"-e", ".c", "--ext", ".inc",
		"-n",
		"-p", "3",
		"--max-passes", "4",
		"--accept-partial",
		"-r", "out/run.yaml",
		"--strict",
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestRootCmd_PassesContext(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd()

	type ctxKey struct{}

	ctx := context.WithValue(context.Background(), ctxKey{}, "batch")

	mockWorkflow.EXPECT().Resolve(mock.MatchedBy(func(c context.Context) bool {
		return c.Value(ctxKey{}) == "batch"
	}), mock.Anything).Return(nil)

	cmd.SetArgs([]string{})
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("ExecuteContext() error = %v", err)
	}
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd()

	mockWorkflow.EXPECT().Resolve(mock.Anything, mock.Anything).Return(domain.ErrUnitsFailed)

	cmd.SetArgs([]string{"--strict"})

	err := cmd.Execute()
	if !errors.Is(err, domain.ErrUnitsFailed) {
		t.Fatalf("Execute() error = %v, want %v", err, domain.ErrUnitsFailed)
	}
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	useMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"App"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() with positional args should fail")
	}
}

func TestRootCmd_VerboseRaisesLogLevel(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	original := logLevel.Level()
	t.Cleanup(func() {
		logLevel.Set(original)
		verboseFlag = false
	})

	cmd := newTestRootCmd()

	mockWorkflow.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil)

	cmd.SetArgs([]string{"--verbose"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if logLevel.Level().String() != "DEBUG" {
		t.Fatalf("log level = %v, want DEBUG", logLevel.Level())
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "flagstrip" {
		t.Errorf("newRootCmd() Use = %v, want %v", cmd.Use, "flagstrip")
	}

	if cmd.Short == "" || cmd.Long == "" {
		t.Error("newRootCmd() descriptions should not be empty")
	}

	for _, name := range []string{"app-dir", "dry-run", "parallel", "max-passes", "accept-partial", "strict", "ext", "report"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("newRootCmd() missing --%s flag", name)
		}
	}

	for _, name := range []string{"features", "verbose"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("newRootCmd() missing persistent --%s flag", name)
		}
	}

	if got := cmd.Flags().Lookup("app-dir").DefValue; got != "App" {
		t.Errorf("--app-dir default = %q, want App", got)
	}
}

func TestInit(t *testing.T) {
	if ui == nil {
		t.Error("init() ui is nil")
	}

	if sourceFSAdapter == nil {
		t.Error("init() sourceFSAdapter is nil")
	}

	if featureConfigAdapter == nil {
		t.Error("init() featureConfigAdapter is nil")
	}

	if reportStore == nil {
		t.Error("init() reportStore is nil")
	}

	if orchestrator == nil {
		t.Error("init() orchestrator is nil")
	}

	if workflow == nil {
		t.Error("init() workflow is nil")
	}

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	if !names["features"] || !names["view"] {
		t.Errorf("rootCmd subcommands = %v, want features and view", names)
	}
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Context() == nil {
				return fmt.Errorf("missing context")
			}

			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute must return normally on success.
	Execute()
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("Process exited with error: %v, output: %s", err, output)
	}

	if !strings.Contains(string(output), "success") {
		t.Errorf("Expected 'success' in output, got: %s", output)
	}
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				return fmt.Errorf("%w: 1 of 3", domain.ErrUnitsFailed)
			},
		}
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute() // exits with status 1

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exec.ExitError, got %T (%v)", err, err)
	}

	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}

	if !strings.Contains(string(output), "one or more units failed") {
		t.Errorf("Expected failure message in output, got: %s", output)
	}
}
