package readex

import (
	stdregexp "regexp"
	"sync"
	"testing"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"

	"go.dw1.io/readex/regexp"
)

func hexColor(t *testing.T) *regexp.Regexp {
	t.Helper()

	hex := Must(AnythingFrom(Range("a", "f"), Range("0", "9")))
	re, err := ReadEx([]any{
		StartOfLine,
		"#",
		Must(Or(
			Must(Repeat(Options{"times": 6}, hex)),
			Must(Repeat(Options{"times": 3}, hex)),
		)),
		EndOfLine,
	}, FlagsConfig{"ignoreCase": true})
	require.NoError(t, err)

	return re
}

func TestHexColor(t *testing.T) {
	re := hexColor(t)

	require.Equal(t, "^#(?:(?:[a-f|0-9]){6}|(?:[a-f|0-9]){3})$", re.Source())
	require.Equal(t, "gim", re.Flags())

	for _, s := range []string{"#fbecda", "#FFF", "#a1B2c3"} {
		require.True(t, re.Test(s), s)
	}
	for _, s := range []string{"#12345", "#", "fff", "#ggg", "#ffff"} {
		require.False(t, re.Test(s), s)
	}
}

func TestSource(t *testing.T) {
	seg, err := Source(StartOfLine, "1+1=2", Must(ZeroOrMore(WhitespaceCharacter)))
	require.NoError(t, err)
	require.Equal(t, `^1\+1=2(?:\s)*`, seg.Source())

	seg, err = Source()
	require.NoError(t, err)
	require.Empty(t, seg.Source())

	_, err = Source("a", struct{}{})
	require.ErrorIs(t, err, ErrInvalidInputType)
}

func TestReadExErrors(t *testing.T) {
	t.Run("expression", func(t *testing.T) {
		_, err := ReadEx([]any{"a", true}, nil)
		require.ErrorIs(t, err, ErrInvalidInputType)
	})

	t.Run("flagsType", func(t *testing.T) {
		_, err := ReadEx([]any{"a"}, "gi")
		require.ErrorIs(t, err, ErrInvalidFlagsType)
	})

	t.Run("flagKey", func(t *testing.T) {
		_, err := ReadEx([]any{"a"}, FlagsConfig{"x": true})
		require.ErrorIs(t, err, ErrInvalidFlagKey)
	})

	t.Run("engine", func(t *testing.T) {
		_, err := ReadEx([]any{Raw("(")}, nil)
		require.ErrorIs(t, err, ErrEngineCompile)
		require.Contains(t, err.Error(), "/(/gm")
	})

	t.Run("mustPanics", func(t *testing.T) {
		require.Panics(t, func() {
			MustReadEx([]any{Raw("[")}, nil)
		})
	})
}

func TestReadExRewrapsCompiledPatterns(t *testing.T) {
	inner := MustReadEx([]any{Must(OneOrMore(Digit))}, FlagsConfig{"ignoreCase": true})

	tests := map[string]any{
		"readex":  inner,
		"stdlib":  stdregexp.MustCompile(`(?:\d)+`),
		"regexp2": regexp2.MustCompile(`(?:\d)+`, regexp2.None),
		"coregex": coregex.MustCompile(`(?:\d)+`),
	}

	for name, sub := range tests {
		t.Run(name, func(t *testing.T) {
			re, err := ReadEx([]any{StartOfLine, sub, "%", EndOfLine}, Flags{})
			require.NoError(t, err)
			require.Equal(t, `^(?:\d)+%$`, re.Source())
			require.Empty(t, re.Flags())
			require.True(t, re.Test("75%"))
			require.False(t, re.Test("75"))
		})
	}
}

func TestReadExFlags(t *testing.T) {
	t.Run("ignoreCase", func(t *testing.T) {
		re := MustReadEx([]any{"abc"}, Options{"ignoreCase": true})
		require.True(t, re.Test("xABCx"))

		strict := MustReadEx([]any{"abc"}, nil)
		require.False(t, strict.Test("xABCx"))
	})

	t.Run("global", func(t *testing.T) {
		re := MustReadEx([]any{Digit}, nil)
		require.True(t, re.Global())
		require.Equal(t, "a#b#c", re.ReplaceAllString("a1b2c", "#"))

		once := MustReadEx([]any{Digit}, FlagsConfig{"global": false})
		require.Equal(t, "a#b2c", once.ReplaceAllString("a1b2c", "#"))
	})

	t.Run("sticky", func(t *testing.T) {
		re := MustReadEx([]any{Digit}, FlagsConfig{"sticky": true})
		require.True(t, re.Sticky())
		require.False(t, re.Test("a1"))
		require.Len(t, re.ExecAll("12a3"), 2)
	})

	t.Run("jsonFlags", func(t *testing.T) {
		flags, err := ParseFlags([]byte(`{"global":false,"dotAll":true}`))
		require.NoError(t, err)

		re := MustReadEx([]any{"a", AnyCharacter, "b"}, flags)
		require.Equal(t, "sm", re.Flags())
		require.True(t, re.Test("a\nb"))
	})
}

func TestReadExConcurrent(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			re, err := ReadEx([]any{
				Must(NamedGroup("n", Must(OneOrMore(Digit)))),
				"-",
				Must(BackReference("n")),
			}, nil)
			if err != nil {
				errs <- err
				return
			}
			if !re.Test("x 12-12 y") {
				errs <- ErrEngineCompile
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
