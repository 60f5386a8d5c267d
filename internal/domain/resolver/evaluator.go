package resolver

// Verdict is the outcome of evaluating a Directive.
type Verdict int

// Available Verdict values.
const (
	Undecidable Verdict = iota
	True
	False
)

func (v Verdict) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	case Undecidable:
		return "undecidable"
	default:
		return "undecidable"
	}
}

// Evaluator decides Directives against a Classifier.
type Evaluator struct {
	classifier *Classifier
}

// NewEvaluator creates an Evaluator backed by classifier.
func NewEvaluator(classifier *Classifier) *Evaluator {
	return &Evaluator{classifier: classifier}
}

// Evaluate decides d. Any Unknown feature makes the whole directive
// Undecidable; there is no partial resolution.
func (e *Evaluator) Evaluate(d Directive) Verdict {
	if d.Opaque || len(d.Terms) == 0 {
		return Undecidable
	}

	switch d.Kind {
	case KindIfdef:
		return e.term(Term{Feature: d.Terms[0].Feature})
	case KindIfndef:
		return e.term(Term{Feature: d.Terms[0].Feature, Negated: true})
	case KindIfDefined:
		return e.compound(d)
	default:
		return Undecidable
	}
}

// term evaluates a single defined() operand. Negation swaps the Always-On and
// Always-Off roles so that Unknown stays Unknown.
func (e *Evaluator) term(t Term) Verdict {
	want := AlwaysOn
	if t.Negated {
		want = AlwaysOff
	}

	switch e.classifier.Classify(t.Feature) {
	case Unknown:
		return Undecidable
	case want:
		return True
	case AlwaysOn, AlwaysOff:
		return False
	default:
		return Undecidable
	}
}

func (e *Evaluator) compound(d Directive) Verdict {
	if len(d.Terms) > 1 && d.Combinator == CombNone {
		return Undecidable
	}

	verdicts := make([]Verdict, 0, len(d.Terms))

	for _, t := range d.Terms {
		v := e.term(t)
		if v == Undecidable {
			return Undecidable
		}

		verdicts = append(verdicts, v)
	}

	if len(verdicts) == 1 {
		return verdicts[0]
	}

	if d.Combinator == CombAnd {
		for _, v := range verdicts {
			if v == False {
				return False
			}
		}

		return True
	}

	for _, v := range verdicts {
		if v == True {
			return True
		}
	}

	return False
}
