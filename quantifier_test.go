package readex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantifierSource(t *testing.T) {
	type combinator func(...any) (Segment, error)

	tests := map[string]struct {
		fn   combinator
		args []any
		want string
	}{
		"zeroOrOne":          {ZeroOrOne, []any{"a"}, "(?:a)?"},
		"maybe":              {Maybe, []any{"ab"}, "(?:ab)?"},
		"zeroOrOneLazy":      {ZeroOrOneLazy, []any{"a"}, "(?:a)??"},
		"oneOrMore":          {OneOrMore, []any{"a", "b"}, "(?:ab)+"},
		"oneOrMoreLazy":      {OneOrMoreLazy, []any{"a"}, "(?:a)+?"},
		"zeroOrMore":         {ZeroOrMore, []any{"."}, `(?:\.)*`},
		"zeroOrMoreLazy":     {ZeroOrMoreLazy, []any{"a"}, "(?:a)*?"},
		"lazyOption":         {OneOrMore, []any{"a", Options{"lazy": true}}, "(?:a)+?"},
		"greedyFalse":        {ZeroOrMore, []any{"a", Options{"greedy": false}}, "(?:a)*?"},
		"greedyTrue":         {ZeroOrMore, []any{"a", Options{"greedy": true}}, "(?:a)*"},
		"lazyFalse":          {ZeroOrOne, []any{"a", Options{"lazy": false}}, "(?:a)?"},
		"typedOptions":       {OneOrMore, []any{"a", QuantifierOptions{Lazy: true}}, "(?:a)+?"},
		"emptyOptions":       {OneOrMore, []any{"a", Options{}}, "(?:a)+"},
		"lazyVariantOverlay": {OneOrMoreLazy, []any{"a", Options{"lazy": false}}, "(?:a)+?"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			seg, err := tt.fn(tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, seg.Source())
		})
	}
}

func TestQuantifierOptionsAreNotGuessed(t *testing.T) {
	t.Run("bothKeys", func(t *testing.T) {
		_, err := OneOrMore("a", Options{"lazy": true, "greedy": true})
		require.ErrorIs(t, err, ErrInvalidInputType)
	})

	t.Run("nonBool", func(t *testing.T) {
		_, err := OneOrMore("a", Options{"lazy": 1})
		require.ErrorIs(t, err, ErrInvalidInputType)
	})

	t.Run("noExpressions", func(t *testing.T) {
		_, err := ZeroOrMore()
		require.ErrorIs(t, err, ErrMissingExpressions)
	})
}

func TestLazyVersusGreedy(t *testing.T) {
	greedy := MustReadEx([]any{"b", Must(OneOrMore(AnyCharacter)), "b"}, nil)
	require.Equal(t, "bab bcb", greedy.FindString("bab bcb"))

	lazy := MustReadEx([]any{"b", Must(OneOrMoreLazy(AnyCharacter)), "b"}, nil)
	require.Equal(t, "bab", lazy.FindString("bab bcb"))

	maybe := MustReadEx([]any{"a", Must(Maybe(AnyCharacter)), "a"}, nil)
	require.Equal(t, "aaa", maybe.FindString("aaa"))

	maybeLazy := MustReadEx([]any{"a", Must(ZeroOrOneLazy(AnyCharacter)), "a"}, nil)
	require.Equal(t, "aa", maybeLazy.FindString("aaa"))

	star := MustReadEx([]any{"<", Must(ZeroOrMore(AnyCharacter, Options{"lazy": true})), ">"}, nil)
	require.Equal(t, "<a>", star.FindString("<a><b>"))
}

func TestRepeatSource(t *testing.T) {
	tests := map[string]struct {
		q    Quantity
		want string
	}{
		"times":          {Times(3), "(?:a){3}"},
		"timesZero":      {Times(0), "(?:a){0}"},
		"between":        {Between(2, 3), "(?:a){2,3}"},
		"betweenEqual":   {Between(2, 2), "(?:a){2}"},
		"atLeast":        {AtLeast(2), "(?:a){2,}"},
		"atMost":         {AtMost(2), "(?:a){0,2}"},
		"typedLazy":      {RepeatOptions{Min: Between(1, 1).Min, Lazy: true}, "(?:a){1,}?"},
		"optionsTimes":   {Options{"times": 3}, "(?:a){3}"},
		"optionsFloat":   {Options{"times": float64(4)}, "(?:a){4}"},
		"optionsRange":   {Options{"min": 1, "max": 5}, "(?:a){1,5}"},
		"optionsMax":     {Options{"max": 2, "min": nil}, "(?:a){0,2}"},
		"optionsLazy":    {Options{"min": 2, "lazy": true}, "(?:a){2,}?"},
		"optionsGreedy":  {Options{"max": 2, "greedy": false}, "(?:a){0,2}?"},
		"optionsNullMin": {Options{"min": nil, "max": 1}, "(?:a){0,1}"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			seg, err := Repeat(tt.q, "a")
			require.NoError(t, err)
			require.Equal(t, tt.want, seg.Source())
		})
	}

	seg, err := RepeatLazy(Times(2), "a", "b")
	require.NoError(t, err)
	require.Equal(t, "(?:ab){2}?", seg.Source())
}

func TestRepeatErrors(t *testing.T) {
	tests := map[string]struct {
		q    Quantity
		want error
	}{
		"minAboveMax":    {Between(3, 2), ErrInvalidRange},
		"negativeTimes":  {Times(-1), ErrInvalidRange},
		"negativeMin":    {AtLeast(-1), ErrInvalidRange},
		"negativeMax":    {AtMost(-2), ErrInvalidRange},
		"timesWithMin":   {RepeatOptions{Times: Times(2).Times, Min: AtLeast(1).Min}, ErrInvalidRange},
		"empty":          {RepeatOptions{}, ErrMissingQuantity},
		"emptyOptions":   {Options{}, ErrMissingQuantity},
		"allNull":        {Options{"times": nil}, ErrMissingQuantity},
		"optionsMixed":   {Options{"times": 2, "max": 3}, ErrInvalidRange},
		"fractional":     {Options{"times": 1.5}, ErrInvalidRange},
		"negativeOption": {Options{"min": -1}, ErrInvalidRange},
		"stringCount":    {Options{"times": "3"}, ErrInvalidRange},
		"optionsInverse": {Options{"min": 4, "max": 1}, ErrInvalidRange},
		"unknownKey":     {Options{"count": 3}, ErrInvalidInputType},
		"badLazy":        {Options{"times": 3, "lazy": "yes"}, ErrInvalidInputType},
		"nilQuantity":    {nil, ErrMissingQuantity},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Repeat(tt.q, "a")
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("noExpressions", func(t *testing.T) {
		_, err := Repeat(Times(1))
		require.ErrorIs(t, err, ErrMissingExpressions)
	})
}

func TestRepeatBounds(t *testing.T) {
	anchored := func(q Quantity) func(string) bool {
		re := MustReadEx([]any{StartOfLine, Must(Repeat(q, "a")), EndOfLine}, Flags{})
		return re.Test
	}

	exactly := anchored(Times(3))
	require.True(t, exactly("aaa"))
	require.False(t, exactly("aa"))
	require.False(t, exactly("aaaa"))

	between := anchored(Between(2, 3))
	require.False(t, between("a"))
	require.True(t, between("aa"))
	require.True(t, between("aaa"))
	require.False(t, between("aaaa"))
}
