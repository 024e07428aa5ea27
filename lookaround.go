package readex

// LookaroundOptions configures [Lookahead] and [Lookbehind]. The zero value
// is a positive assertion.
//
// As an [Options] map it is written {"negative": true} or
// {"positive": false}; only one of the two keys may be present.
type LookaroundOptions struct {
	Negative bool
}

func parseLookaroundOptions(v any) (LookaroundOptions, bool, error) {
	if o, ok := v.(LookaroundOptions); ok {
		return o, true, nil
	}

	m, ok := asOptions(v)
	if !ok {
		return LookaroundOptions{}, false, nil
	}

	key, value, ok := m.toggle("positive", "negative")
	if !ok {
		return LookaroundOptions{}, false, nil
	}

	return LookaroundOptions{Negative: (key == "negative" && value) || (key == "positive" && !value)}, true, nil
}

// lookaround prefixes, indexed by [behind][negative].
var lookaroundPrefix = [2][2]string{
	{"(?=", "(?!"},
	{"(?<=", "(?<!"},
}

func lookaround(exprs []any, behind, negative bool) (Segment, error) {
	body, err := group(exprs, GroupOptions{NonCapturing: true})
	if err != nil {
		return Segment{}, err
	}

	b, n := 0, 0
	if behind {
		b = 1
	}
	if negative {
		n = 1
	}

	return Segment{source: lookaroundPrefix[b][n] + body.source + ")"}, nil
}

// Lookahead asserts that the expressions match at the current position
// without consuming them. A trailing [LookaroundOptions] or [Options] value
// may make the assertion negative.
func Lookahead(exprsAndOptions ...any) (Segment, error) {
	exprs, opts, err := extractOptions(exprsAndOptions, parseLookaroundOptions)
	if err != nil {
		return Segment{}, err
	}

	return lookaround(exprs, false, opts.Negative)
}

// NegativeLookahead asserts that the expressions do not match at the current
// position.
func NegativeLookahead(exprs ...any) (Segment, error) {
	return lookaround(exprs, false, true)
}

// Lookbehind asserts that the expressions match just before the current
// position. A trailing [LookaroundOptions] or [Options] value may make the
// assertion negative.
func Lookbehind(exprsAndOptions ...any) (Segment, error) {
	exprs, opts, err := extractOptions(exprsAndOptions, parseLookaroundOptions)
	if err != nil {
		return Segment{}, err
	}

	return lookaround(exprs, true, opts.Negative)
}

// NegativeLookbehind asserts that the expressions do not match just before
// the current position.
func NegativeLookbehind(exprs ...any) (Segment, error) {
	return lookaround(exprs, true, true)
}
