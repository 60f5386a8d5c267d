package model

// OutcomeStatus classifies how a single unit ended up.
type OutcomeStatus string

const (
	// StatusResolved means at least one conditional was resolved.
	StatusResolved OutcomeStatus = "resolved"
	// StatusUnchanged means the unit had nothing to resolve.
	StatusUnchanged OutcomeStatus = "unchanged"
	// StatusPartial means the pass cap was hit while the text was still
	// changing and the partial text was rejected.
	StatusPartial OutcomeStatus = "partial"
	// StatusPartialAccepted is StatusPartial when the caller opted in to
	// partially-resolved output.
	StatusPartialAccepted OutcomeStatus = "partial-accepted"
	// StatusFailed means the unit has a structural error (unterminated scope,
	// malformed separator, stray closer).
	StatusFailed OutcomeStatus = "failed"
	// StatusIOError means the unit could not be read or written.
	StatusIOError OutcomeStatus = "io-error"
	// StatusCanceled means the batch was canceled before the unit finished.
	StatusCanceled OutcomeStatus = "canceled"
)

// IsFailure reports whether the status counts as a failed unit.
func (s OutcomeStatus) IsFailure() bool {
	switch s {
	case StatusFailed, StatusIOError, StatusCanceled, StatusPartial:
		return true
	case StatusPartialAccepted, StatusResolved, StatusUnchanged:
		return false
	default:
		return false
	}
}

// Outcome holds the result of resolving a single unit.
type Outcome struct {
	Path           Path          `yaml:"path"`
	Status         OutcomeStatus `yaml:"status"`
	LinesRemoved   int           `yaml:"lines_removed"`
	Passes         int           `yaml:"passes"`
	ScopesResolved int           `yaml:"scopes_resolved"`
	Written        bool          `yaml:"written"`
	Hash           string        `yaml:"hash,omitempty"`
	Message        string        `yaml:"message,omitempty"`
}

// Modified reports whether the unit's text differs from what was read,
// regardless of whether it was written back.
func (o Outcome) Modified() bool {
	return o.Status == StatusResolved || o.Status == StatusPartialAccepted
}

// Summary aggregates outcomes across a batch.
type Summary struct {
	Processed    int `yaml:"processed"`
	Modified     int `yaml:"modified"`
	Failed       int `yaml:"failed"`
	LinesRemoved int `yaml:"lines_removed"`
	TotalPasses  int `yaml:"total_passes"`
}

// AveragePasses returns the mean pass count over modified units.
func (s Summary) AveragePasses() float64 {
	if s.Modified == 0 {
		return 0
	}

	return float64(s.TotalPasses) / float64(s.Modified)
}

// Summarize computes a Summary from a set of outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Processed: len(outcomes)}

	for _, o := range outcomes {
		if o.Status.IsFailure() {
			s.Failed++
			continue
		}

		if o.Modified() {
			s.Modified++
			s.LinesRemoved += o.LinesRemoved
			s.TotalPasses += o.Passes
		}
	}

	return s
}

// Report is the persisted record of one batch run.
type Report struct {
	Root     Path      `yaml:"root"`
	DryRun   bool      `yaml:"dry_run"`
	Outcomes []Outcome `yaml:"outcomes"`
	Summary  Summary   `yaml:"summary"`
}
