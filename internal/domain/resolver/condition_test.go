package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		terms []Term
		comb  Combinator
		ok    bool
	}{
		{
			name:  "single defined with parens",
			expr:  "defined(ENABLE_A)",
			terms: []Term{{Feature: "ENABLE_A"}},
			comb:  CombNone,
			ok:    true,
		},
		{
			name:  "single defined without parens",
			expr:  "defined ENABLE_A",
			terms: []Term{{Feature: "ENABLE_A"}},
			comb:  CombNone,
			ok:    true,
		},
		{
			name:  "and chain",
			expr:  "defined(ENABLE_A) && defined(ENABLE_B) && defined ENABLE_C",
			terms: []Term{{Feature: "ENABLE_A"}, {Feature: "ENABLE_B"}, {Feature: "ENABLE_C"}},
			comb:  CombAnd,
			ok:    true,
		},
		{
			name:  "or chain with grouping",
			expr:  "(defined(ENABLE_A) || defined(ENABLE_B)) || defined(ENABLE_C)",
			terms: []Term{{Feature: "ENABLE_A"}, {Feature: "ENABLE_B"}, {Feature: "ENABLE_C"}},
			comb:  CombOr,
			ok:    true,
		},
		{
			name:  "negated term",
			expr:  "defined(ENABLE_A) && !defined(ENABLE_B)",
			terms: []Term{{Feature: "ENABLE_A"}, {Feature: "ENABLE_B", Negated: true}},
			comb:  CombAnd,
			ok:    true,
		},
		{name: "mixed combinators", expr: "defined(ENABLE_A) && defined(ENABLE_B) || defined(ENABLE_C)"},
		{name: "no combinator", expr: "defined(ENABLE_A) defined(ENABLE_B)"},
		{name: "bare identifier", expr: "ENABLE_A"},
		{name: "comparison", expr: "defined(ENABLE_A) && VERSION > 2"},
		{name: "negated group", expr: "!(defined(ENABLE_A) && defined(ENABLE_B))"},
		{name: "unbalanced paren", expr: "(defined(ENABLE_A)"},
		{name: "dangling operator", expr: "defined(ENABLE_A) &&"},
		{name: "empty", expr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, comb, ok := parseCondition(tt.expr)
			require.Equal(t, tt.ok, ok)

			if !tt.ok {
				return
			}

			assert.Equal(t, tt.terms, terms)
			assert.Equal(t, tt.comb, comb)
		})
	}
}

func TestStripComments(t *testing.T) {
	assert.Equal(t, "defined(ENABLE_A)", stripComments(" defined(ENABLE_A) // trailing"))
	assert.Equal(t, "defined(ENABLE_A)   && defined(ENABLE_B)", stripComments("defined(ENABLE_A) /* x */ && defined(ENABLE_B)"))
	assert.Equal(t, "defined(ENABLE_A)", stripComments("defined(ENABLE_A) /* unterminated"))
}
