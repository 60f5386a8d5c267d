package resolver

import (
	"fmt"
	"regexp"
	"strings"
)

// Syntax fixes the vocabulary the resolver recognises.
type Syntax struct {
	// FeaturePrefix starts every feature identifier, e.g. "ENABLE".
	FeaturePrefix string
	// GuardSuffix ends every header-guard identifier, e.g. "_H".
	GuardSuffix string
}

// lineShape is the generic preprocessor shape of a line, independent of the
// feature vocabulary.
type lineShape int

const (
	shapeText lineShape = iota
	shapeOpen
	shapeElse
	shapeElif
	shapeEndif
)

var (
	openRe  = regexp.MustCompile(`^\s*#\s*(?:ifdef|ifndef|if)\b`)
	elseRe  = regexp.MustCompile(`^\s*#\s*else\b`)
	elifRe  = regexp.MustCompile(`^\s*#\s*elif(?:def|ndef)?\b`)
	endifRe = regexp.MustCompile(`^\s*#\s*endif\b`)
)

func shapeOf(line string) lineShape {
	switch {
	case openRe.MatchString(line):
		return shapeOpen
	case endifRe.MatchString(line):
		return shapeEndif
	case elseRe.MatchString(line):
		return shapeElse
	case elifRe.MatchString(line):
		return shapeElif
	default:
		return shapeText
	}
}

// DirectiveKind tags how a Directive's condition is evaluated.
type DirectiveKind int

// Available DirectiveKind values.
const (
	KindIfdef DirectiveKind = iota
	KindIfndef
	KindIfDefined
)

func (k DirectiveKind) String() string {
	switch k {
	case KindIfdef:
		return "ifdef"
	case KindIfndef:
		return "ifndef"
	case KindIfDefined:
		return "if-defined"
	default:
		return "unknown"
	}
}

// Combinator joins the terms of an if-defined condition.
type Combinator int

// Available Combinator values.
const (
	CombNone Combinator = iota
	CombAnd
	CombOr
)

// Term is one `defined(F)` operand, optionally negated.
type Term struct {
	Feature string
	Negated bool
}

// Directive is a recognised scope-opening line whose condition references at
// least one feature identifier.
type Directive struct {
	Kind       DirectiveKind
	Terms      []Term
	Combinator Combinator
	// Opaque marks an if-defined condition that does not fit the supported
	// grammar. Opaque directives are never decided.
	Opaque bool
}

// matcher recognises header guards and feature directives for one Syntax.
type matcher struct {
	guard   *regexp.Regexp
	ifdef   *regexp.Regexp
	ifndef  *regexp.Regexp
	ifCond  *regexp.Regexp
	feature *regexp.Regexp
}

func newMatcher(s Syntax) (*matcher, error) {
	if s.FeaturePrefix == "" {
		return nil, fmt.Errorf("feature prefix must not be empty")
	}

	if s.GuardSuffix == "" {
		return nil, fmt.Errorf("guard suffix must not be empty")
	}

	prefix := regexp.QuoteMeta(s.FeaturePrefix)
	feature := prefix + `[A-Za-z0-9_]*\b`

	guard, err := regexp.Compile(`^\s*#\s*ifndef\s+[A-Z_][A-Z0-9_]*` + regexp.QuoteMeta(s.GuardSuffix) + `\s*$`)
	if err != nil {
		return nil, fmt.Errorf("invalid guard suffix %q: %w", s.GuardSuffix, err)
	}

	return &matcher{
		guard:   guard,
		ifdef:   regexp.MustCompile(`^\s*#\s*ifdef\s+(` + feature + `)`),
		ifndef:  regexp.MustCompile(`^\s*#\s*ifndef\s+(` + feature + `)`),
		ifCond:  regexp.MustCompile(`^\s*#\s*if\b(.*)$`),
		feature: regexp.MustCompile(`\b` + feature),
	}, nil
}

func (mt *matcher) isGuard(line string) bool {
	return mt.guard.MatchString(line)
}

// directive recognises a feature directive. Header guards must be excluded by
// the caller before calling it.
func (mt *matcher) directive(line string) (Directive, bool) {
	if sm := mt.ifdef.FindStringSubmatch(line); sm != nil {
		return Directive{Kind: KindIfdef, Terms: []Term{{Feature: sm[1]}}}, true
	}

	if sm := mt.ifndef.FindStringSubmatch(line); sm != nil {
		return Directive{Kind: KindIfndef, Terms: []Term{{Feature: sm[1]}}}, true
	}

	sm := mt.ifCond.FindStringSubmatch(line)
	if sm == nil {
		return Directive{}, false
	}

	expr := stripComments(sm[1])
	if !mt.feature.MatchString(expr) {
		return Directive{}, false
	}

	terms, comb, ok := parseCondition(expr)
	if !ok {
		return Directive{Kind: KindIfDefined, Opaque: true}, true
	}

	return Directive{Kind: KindIfDefined, Terms: terms, Combinator: comb}, true
}

// stripComments drops a trailing line comment and any block comments that
// open and close on the same line.
func stripComments(s string) string {
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			break
		}

		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			s = s[:start]
			break
		}

		s = s[:start] + " " + s[start+2+end+2:]
	}

	if i := strings.Index(s, "//"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}
