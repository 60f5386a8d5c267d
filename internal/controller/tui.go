package controller

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/flagstrip/internal/model"
)

// inlineLimit is the largest result set printed without the interactive list.
const inlineLimit = 20

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	mu      sync.Mutex
	model   resultsModel
	program *tea.Program
	done    chan struct{}
	started bool
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		input:  os.Stdin,
		model:  newResultsModel(ModeResolve),
	}
}

// Start initializes the UI. Results are collected until Wait, which decides
// between printing them inline and opening the interactive list.
func (t *TUI) Start(options ...StartOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.model = newResultsModel(newStartConfig(options...).mode)

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done

	t.mu.Lock()
	t.program = nil
	t.started = false
	t.mu.Unlock()
}

// Wait shows the collected results and blocks until the user leaves the list.
func (t *TUI) Wait() {
	t.mu.Lock()
	small := len(t.model.items) <= inlineLimit && !t.started
	model := t.model
	t.mu.Unlock()

	if small {
		_, _ = fmt.Fprint(t.output, model.inlineView())
		return
	}

	t.ensureStarted()

	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done

	t.mu.Lock()
	err := t.runErr
	t.mu.Unlock()

	if err != nil {
		_, _ = fmt.Fprintf(t.output, "ui error: %v\n", err)
	}
}

// DisplayConfigWarnings records classification conflicts.
func (t *TUI) DisplayConfigWarnings(warnings []string) {
	t.send(warningsMsg{warnings: warnings})
}

// DisplayRunInfo records the batch header.
func (t *TUI) DisplayRunInfo(info RunInfo) {
	t.send(runInfoMsg{info: info})
}

// DisplayUnitOutcome adds one unit to the results list.
func (t *TUI) DisplayUnitOutcome(outcome m.Outcome) {
	t.send(outcomeMsg{outcome: outcome})
}

// DisplaySummary records the batch totals.
func (t *TUI) DisplaySummary(report m.Report) {
	t.send(summaryMsg{report: report})
}

// DisplayFeatures fills the list with the classification.
func (t *TUI) DisplayFeatures(listing FeatureListing) {
	t.send(featuresMsg{listing: listing})
}

// send delivers msg to the running program, or folds it into the pending
// model when no program is running yet.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		t.program.Send(msg)
		return
	}

	next, _ := t.model.Update(msg)
	if rm, ok := next.(resultsModel); ok {
		t.model = rm
	}
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started, model := t.started, t.model
	t.mu.Unlock()

	if started {
		return
	}

	if err := t.startWithModel(model); err != nil {
		_, _ = fmt.Fprintf(t.output, "ui error: %v\n", err)
	}
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("ui already started")
	}

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	done := make(chan struct{})

	t.program = program
	t.done = done
	t.started = true

	go func() {
		_, err := program.Run()

		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()

		close(done)
	}()

	return nil
}
