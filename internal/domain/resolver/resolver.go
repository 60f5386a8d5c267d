package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxPasses bounds the fixpoint loop when no other cap is configured.
const DefaultMaxPasses = 10

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxPasses overrides the pass cap. Values below one are ignored.
func WithMaxPasses(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxPasses = n
		}
	}
}

// Result is the outcome of resolving one source unit.
type Result struct {
	Text           string
	LinesRemoved   int
	Passes         int
	ScopesResolved int
}

// Resolver rewrites source text by resolving every decidable feature
// conditional, repeating passes until the text stops changing.
type Resolver struct {
	matcher   *matcher
	evaluator *Evaluator
	maxPasses int
}

// New creates a Resolver for the given classification and syntax.
func New(classifier *Classifier, syntax Syntax, options ...Option) (*Resolver, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier is required")
	}

	mt, err := newMatcher(syntax)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		matcher:   mt,
		evaluator: NewEvaluator(classifier),
		maxPasses: DefaultMaxPasses,
	}

	for _, opt := range options {
		opt(r)
	}

	return r, nil
}

// MaxPasses returns the effective pass cap.
func (r *Resolver) MaxPasses() int {
	return r.maxPasses
}

// Resolve applies passes to text until one makes no change. When the pass cap
// is reached while the text is still changing, the partial Result is returned
// together with ErrPassCapExceeded. Cancellation is checked between passes and
// also returns the partial Result.
func (r *Resolver) Resolve(ctx context.Context, text string) (Result, error) {
	lines := strings.Split(text, "\n")
	res := Result{}

	for res.Passes < r.maxPasses {
		if err := ctx.Err(); err != nil {
			return r.finish(text, lines, res), fmt.Errorf("stopped after %d passes: %w", res.Passes, err)
		}

		res.Passes++

		out, resolved, err := r.Pass(lines)
		if err != nil {
			var le *LineError
			if errors.As(err, &le) {
				le.Pass = res.Passes
			}

			return Result{}, err
		}

		lines = out
		res.ScopesResolved += resolved

		if resolved == 0 {
			return r.finish(text, lines, res), nil
		}
	}

	return r.finish(text, lines, res), fmt.Errorf("%w (%d passes)", ErrPassCapExceeded, r.maxPasses)
}

func (r *Resolver) finish(original string, lines []string, res Result) Result {
	res.Text = strings.Join(lines, "\n")
	res.LinesRemoved = strings.Count(original, "\n") - strings.Count(res.Text, "\n")

	return res
}

// frame tracks an ordinary (non-feature) scope open during a pass.
type frame struct {
	line     int
	seenElse bool
}

// Pass runs one top-to-bottom rewrite over lines and returns the new lines
// with the number of scopes it resolved. Selected branches are copied
// verbatim and are not re-examined until the next pass.
func (r *Resolver) Pass(lines []string) ([]string, int, error) {
	out := make([]string, 0, len(lines))
	resolved := 0

	var open []frame

	for i := 0; i < len(lines); {
		line := lines[i]

		if !r.matcher.isGuard(line) {
			if d, ok := r.matcher.directive(line); ok {
				scope, consumed, err := scan(lines, i)
				if err != nil {
					return nil, 0, err
				}

				verdict := r.evaluator.Evaluate(d)
				if scope.Chained {
					verdict = Undecidable
				}

				if verdict == Undecidable {
					out = append(out, lines[i:i+consumed]...)
				} else {
					out = append(out, scope.branch(verdict)...)
					resolved++
				}

				i += consumed

				continue
			}
		}

		switch shapeOf(line) {
		case shapeOpen:
			open = append(open, frame{line: i + 1})
		case shapeElse:
			if len(open) == 0 || open[len(open)-1].seenElse {
				return nil, 0, &LineError{Line: i + 1, Err: ErrMalformedSeparator}
			}

			open[len(open)-1].seenElse = true
		case shapeElif:
			if len(open) == 0 || open[len(open)-1].seenElse {
				return nil, 0, &LineError{Line: i + 1, Err: ErrMalformedSeparator}
			}
		case shapeEndif:
			if len(open) == 0 {
				return nil, 0, &LineError{Line: i + 1, Err: ErrUnmatchedCloser}
			}

			open = open[:len(open)-1]
		case shapeText:
		}

		out = append(out, line)
		i++
	}

	if len(open) > 0 {
		return nil, 0, &LineError{Line: open[len(open)-1].line, Err: ErrUnterminatedScope}
	}

	return out, resolved, nil
}
