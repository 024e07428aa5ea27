package readex

import (
	"fmt"
	"strings"
)

// Range returns a character range for [AnythingFrom] and [AnythingBut].
func Range(from, to any) [2]any {
	return [2]any{from, to}
}

// toCharacterSet renders one member of a bracket expression. Strings and
// numbers are escaped literal characters; a two-element range becomes a-b
// with each end converted by ToSegment.
func toCharacterSet(v any) (Segment, error) {
	switch e := v.(type) {
	case string:
		return ToSegment(e)
	case [2]any:
		return characterRange(e[0], e[1])
	case [2]string:
		return characterRange(e[0], e[1])
	case []any:
		if len(e) == 2 {
			return characterRange(e[0], e[1])
		}
	case []string:
		if len(e) == 2 {
			return characterRange(e[0], e[1])
		}
	default:
		if _, err := Sanitize(v); err == nil {
			return ToSegment(v)
		}
	}

	return Segment{}, fmt.Errorf("%w: %T must be a string, a number or a two-element range", ErrInvalidCharacterSetExpression, v)
}

func characterRange(from, to any) (Segment, error) {
	segs, err := ToSegments(from, to)
	if err != nil {
		return Segment{}, err
	}

	return JoinSegments(segs, "-"), nil
}

func characterSet(exprs []any, negate bool) (Segment, error) {
	if len(exprs) == 0 {
		return Segment{}, ErrMissingExpressions
	}

	members := make([]Segment, len(exprs))
	for i, e := range exprs {
		seg, err := toCharacterSet(e)
		if err != nil {
			return Segment{}, err
		}
		members[i] = seg
	}

	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('^')
	}
	b.WriteString(JoinSegments(members, "|").source)
	b.WriteByte(']')

	return Segment{source: b.String()}, nil
}

// AnythingFrom matches one character from the given literals and ranges.
//
// Members are joined with "|", which inside a bracket expression is just
// another literal member of the set.
func AnythingFrom(exprs ...any) (Segment, error) {
	return characterSet(exprs, false)
}

// AnythingBut matches one character outside the given literals and ranges.
func AnythingBut(exprs ...any) (Segment, error) {
	return characterSet(exprs, true)
}
