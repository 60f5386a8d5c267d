package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, options ...Option) *Resolver {
	t.Helper()

	c, _ := NewClassifier([]string{"ENABLE_UART", "ENABLE_USB"}, []string{"ENABLE_NOAA", "ENABLE_VOICE"})

	r, err := New(c, Syntax{FeaturePrefix: "ENABLE", GuardSuffix: "_H"}, options...)
	require.NoError(t, err)

	return r
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}

func TestResolve_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		passes int
	}{
		{
			name:   "ifdef always-on keeps primary",
			input:  lines("#ifdef ENABLE_UART", "x();", "#endif"),
			want:   "x();",
			passes: 2,
		},
		{
			name:   "ifndef always-off keeps primary and drops alternate",
			input:  lines("#ifndef ENABLE_NOAA", "y();", "#else", "z();", "#endif"),
			want:   "y();",
			passes: 2,
		},
		{
			name:   "and with an always-off token and no alternate",
			input:  lines("#if defined(ENABLE_UART) && defined(ENABLE_NOAA)", "w();", "#endif"),
			want:   "",
			passes: 2,
		},
		{
			name:   "unknown feature is untouched",
			input:  lines("#ifdef ENABLE_UNKNOWN_FLAG", "v();", "#endif"),
			want:   lines("#ifdef ENABLE_UNKNOWN_FLAG", "v();", "#endif"),
			passes: 1,
		},
		{
			name:   "header guard is untouched",
			input:  lines("#ifndef MY_MODULE_H", "#define MY_MODULE_H", "#endif"),
			want:   lines("#ifndef MY_MODULE_H", "#define MY_MODULE_H", "#endif"),
			passes: 1,
		},
		{
			name:   "outer resolves, inner unknown survives",
			input:  lines("#ifdef ENABLE_UART", "#ifdef ENABLE_UNKNOWN_FLAG", "q();", "#endif", "#endif"),
			want:   lines("#ifdef ENABLE_UNKNOWN_FLAG", "q();", "#endif"),
			passes: 2,
		},
	}

	r := newTestResolver(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.passes, res.Passes)
		})
	}
}

func TestResolve_NestedFixpoint(t *testing.T) {
	r := newTestResolver(t)

	input := lines(
		"int a;",
		"#ifdef ENABLE_UART",
		"  uart_init();",
		"#ifndef ENABLE_VOICE",
		"  beep();",
		"#else",
		"  speak();",
		"#endif",
		"#if defined(ENABLE_NOAA) || defined(ENABLE_USB)",
		"  usb();",
		"#endif",
		"#else",
		"  no_uart();",
		"#endif",
		"int b;",
		"",
	)

	res, err := r.Resolve(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, lines("int a;", "  uart_init();", "  beep();", "  usb();", "int b;", ""), res.Text)
	assert.Equal(t, 3, res.Passes)
	assert.Equal(t, 3, res.ScopesResolved)
	assert.Equal(t, 10, res.LinesRemoved)
}

func TestResolve_Properties(t *testing.T) {
	r := newTestResolver(t)

	input := lines(
		"#ifndef APP_H",
		"#define APP_H",
		"#ifdef ENABLE_UART",
		"#if VERSION > 2",
		"a();",
		"#endif",
		"#else",
		"b();",
		"#endif",
		"#ifdef ENABLE_MYSTERY",
		"#ifdef ENABLE_USB",
		"c();",
		"#endif",
		"#endif",
		"#endif",
	)

	res, err := r.Resolve(context.Background(), input)
	require.NoError(t, err)

	t.Run("branch exclusivity", func(t *testing.T) {
		assert.NotContains(t, res.Text, "b();")
		assert.Contains(t, res.Text, "a();")
	})

	t.Run("undecidable scope is byte-identical", func(t *testing.T) {
		assert.Contains(t, res.Text, lines("#ifdef ENABLE_MYSTERY", "#ifdef ENABLE_USB", "c();", "#endif", "#endif"))
	})

	t.Run("header guard survives", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(res.Text, lines("#ifndef APP_H", "#define APP_H")))
	})

	t.Run("depth balance", func(t *testing.T) {
		openers, closers := 0, 0

		for _, line := range strings.Split(res.Text, "\n") {
			switch shapeOf(line) {
			case shapeOpen:
				openers++
			case shapeEndif:
				closers++
			case shapeText, shapeElse, shapeElif:
			}
		}

		assert.Equal(t, openers, closers)
	})

	t.Run("fixpoint idempotence", func(t *testing.T) {
		again, err := r.Resolve(context.Background(), res.Text)
		require.NoError(t, err)
		assert.Equal(t, res.Text, again.Text)
		assert.Equal(t, 1, again.Passes)
		assert.Zero(t, again.ScopesResolved)
		assert.Zero(t, again.LinesRemoved)
	})
}

func TestResolve_PreservesBytes(t *testing.T) {
	r := newTestResolver(t)

	t.Run("crlf and trailing newline", func(t *testing.T) {
		input := "a\r\n#ifdef ENABLE_UART\r\n\tb();  \r\n#else  \r\nc();\r\n#endif\r\n"

		res, err := r.Resolve(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "a\r\n\tb();  \r\n", res.Text)
	})

	t.Run("else with trailing comment", func(t *testing.T) {
		input := lines("#ifdef ENABLE_NOAA", "a();", "#else /* !ENABLE_NOAA */", "b();", "#endif // ENABLE_NOAA")

		res, err := r.Resolve(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "b();", res.Text)
	})
}

func TestResolve_LeavesUndecidableShapes(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "mixed combinators",
			input: lines("#if defined(ENABLE_UART) && defined(ENABLE_USB) || defined(ENABLE_NOAA)", "x();", "#endif"),
		},
		{
			name:  "chained elif",
			input: lines("#ifdef ENABLE_UART", "a();", "#elif defined(ENABLE_USB)", "b();", "#endif"),
		},
		{
			name:  "unknown mixed into or",
			input: lines("#if defined(ENABLE_UART) || defined(CONFIG_OTHER)", "x();", "#endif"),
		},
		{
			name:  "non-feature conditional",
			input: lines("#if defined(CONFIG_OTHER)", "x();", "#else", "y();", "#endif"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, res.Text)
			assert.Equal(t, 1, res.Passes)
		})
	}
}

func TestResolve_NegatedTerm(t *testing.T) {
	r := newTestResolver(t)

	input := lines("#if defined(ENABLE_UART) && !defined(ENABLE_NOAA)", "x();", "#else", "y();", "#endif")

	res, err := r.Resolve(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "x();", res.Text)
}

func TestResolve_ResolvesInsideOrdinaryScopes(t *testing.T) {
	r := newTestResolver(t)

	input := lines("#if VERSION > 2", "#ifdef ENABLE_NOAA", "noaa();", "#endif", "#else", "old();", "#endif")

	res, err := r.Resolve(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, lines("#if VERSION > 2", "#else", "old();", "#endif"), res.Text)
}

func TestResolve_StructuralErrors(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{
			name:  "unterminated feature scope",
			input: lines("a", "#ifdef ENABLE_UART", "b"),
			want:  ErrUnterminatedScope,
			line:  2,
		},
		{
			name:  "unterminated ordinary scope",
			input: lines("#ifndef APP_H", "#define APP_H"),
			want:  ErrUnterminatedScope,
			line:  1,
		},
		{
			name:  "second else in feature scope",
			input: lines("#ifdef ENABLE_UART", "a", "#else", "b", "#else", "c", "#endif"),
			want:  ErrMalformedSeparator,
			line:  5,
		},
		{
			name:  "stray else",
			input: lines("a", "#else", "b"),
			want:  ErrMalformedSeparator,
			line:  2,
		},
		{
			name:  "stray endif",
			input: lines("a", "#endif"),
			want:  ErrUnmatchedCloser,
			line:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, res.Text)

			var le *LineError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.line, le.Line)
			assert.Equal(t, 1, le.Pass)
		})
	}
}

func TestResolve_PassCap(t *testing.T) {
	r := newTestResolver(t, WithMaxPasses(2))
	assert.Equal(t, 2, r.MaxPasses())

	input := lines(
		"#ifdef ENABLE_UART",
		"#ifdef ENABLE_USB",
		"#ifndef ENABLE_NOAA",
		"deep();",
		"#endif",
		"#endif",
		"#endif",
	)

	res, err := r.Resolve(context.Background(), input)
	require.ErrorIs(t, err, ErrPassCapExceeded)
	assert.Equal(t, 2, res.Passes)
	assert.Equal(t, lines("#ifndef ENABLE_NOAA", "deep();", "#endif"), res.Text)
	assert.Equal(t, 4, res.LinesRemoved)
}

func TestResolve_Canceled(t *testing.T) {
	r := newTestResolver(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := lines("#ifdef ENABLE_UART", "x();", "#endif")

	res, err := r.Resolve(ctx, input)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, input, res.Text)
	assert.Zero(t, res.Passes)
}

func TestNew_Validation(t *testing.T) {
	c, _ := NewClassifier(nil, nil)

	_, err := New(nil, Syntax{FeaturePrefix: "ENABLE", GuardSuffix: "_H"})
	assert.Error(t, err)

	_, err = New(c, Syntax{})
	assert.Error(t, err)

	r, err := New(c, Syntax{FeaturePrefix: "ENABLE", GuardSuffix: "_H"}, WithMaxPasses(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxPasses, r.MaxPasses())
}
