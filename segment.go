package readex

import (
	"fmt"
	stdregexp "regexp"
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"

	"go.dw1.io/readex/regexp"
)

// Segment is an immutable fragment of pattern source. Splicing a Segment into
// a larger pattern never changes its own grouping: combinators wrap their
// operands before they attach anything that binds tighter than
// concatenation.
//
// The zero Segment is the empty pattern.
type Segment struct {
	source string
}

// Raw returns a Segment holding source verbatim. It is the counterpart of a
// regex literal: source is trusted pattern syntax and is not escaped.
func Raw(source string) Segment {
	return Segment{source: source}
}

// Source returns the pattern source of s.
func (s Segment) Source() string {
	return s.source
}

// String implements [fmt.Stringer].
func (s Segment) String() string {
	return s.source
}

// ToSegment converts an expression into a Segment:
//
//   - a Segment is copied;
//   - a compiled pattern ([*regexp.Regexp] from this module, the standard
//     library's *regexp.Regexp, [*regexp2.Regexp] or [*coregex.Regex])
//     contributes its source; its flags are dropped;
//   - a string or a number is escaped with [Sanitize].
//
// Anything else fails with [ErrInvalidInputType].
func ToSegment(v any) (Segment, error) {
	switch e := v.(type) {
	case Segment:
		return Segment{source: e.source}, nil
	case *Segment:
		if e == nil {
			break
		}
		return Segment{source: e.source}, nil
	case *regexp.Regexp:
		if e == nil {
			break
		}
		return Segment{source: e.Source()}, nil
	case *stdregexp.Regexp:
		if e == nil {
			break
		}
		return Segment{source: e.String()}, nil
	case *regexp2.Regexp:
		if e == nil {
			break
		}
		return Segment{source: e.String()}, nil
	case *coregex.Regex:
		if e == nil {
			break
		}
		return Segment{source: e.String()}, nil
	default:
		source, err := Sanitize(v)
		if err != nil {
			return Segment{}, err
		}
		return Segment{source: source}, nil
	}

	return Segment{}, fmt.Errorf("%w: nil %T", ErrInvalidInputType, v)
}

// ToSegments converts every expression with [ToSegment], stopping at the
// first failure.
func ToSegments(vs ...any) ([]Segment, error) {
	segs := make([]Segment, len(vs))
	for i, v := range vs {
		seg, err := ToSegment(v)
		if err != nil {
			return nil, err
		}
		segs[i] = seg
	}

	return segs, nil
}

// JoinSegments concatenates the sources of segs with sep between them.
func JoinSegments(segs []Segment, sep string) Segment {
	parts := make([]string, len(segs))
	for i, seg := range segs {
		parts[i] = seg.source
	}

	return Segment{source: strings.Join(parts, sep)}
}

// Must returns seg, or panics if err is non-nil. It is intended for
// composing constant patterns:
//
//	var word = readex.Must(readex.OneOrMore(readex.WordCharacter))
func Must(seg Segment, err error) Segment {
	if err != nil {
		panic("readex: " + err.Error())
	}

	return seg
}

// join converts and joins vs without a separator.
func join(vs []any) (Segment, error) {
	segs, err := ToSegments(vs...)
	if err != nil {
		return Segment{}, err
	}

	return JoinSegments(segs, ""), nil
}
