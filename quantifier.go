package readex

import (
	"fmt"
	"strconv"

	"go.dw1.io/readex/cast"
)

// QuantifierOptions configures the ZeroOrOne, OneOrMore and ZeroOrMore
// families. The zero value is greedy.
//
// As an [Options] map it is written {"lazy": true} or {"greedy": false};
// only one of the two keys may be present.
type QuantifierOptions struct {
	Lazy bool
}

func parseQuantifierOptions(v any) (QuantifierOptions, bool, error) {
	if o, ok := v.(QuantifierOptions); ok {
		return o, true, nil
	}

	m, ok := asOptions(v)
	if !ok {
		return QuantifierOptions{}, false, nil
	}

	key, value, ok := m.toggle("lazy", "greedy")
	if !ok {
		return QuantifierOptions{}, false, nil
	}

	return QuantifierOptions{Lazy: (key == "lazy" && value) || (key == "greedy" && !value)}, true, nil
}

// quantify groups the expressions without capturing and appends suffix.
func quantify(exprsAndOptions []any, suffix string, lazy bool) (Segment, error) {
	exprs, opts, err := extractOptions(exprsAndOptions, parseQuantifierOptions)
	if err != nil {
		return Segment{}, err
	}

	return applySuffix(exprs, suffix, lazy || opts.Lazy)
}

func applySuffix(exprs []any, suffix string, lazy bool) (Segment, error) {
	body, err := group(exprs, GroupOptions{NonCapturing: true})
	if err != nil {
		return Segment{}, err
	}

	if lazy {
		suffix += "?"
	}

	return Segment{source: body.source + suffix}, nil
}

// ZeroOrOne matches the expressions once or not at all. A trailing
// [QuantifierOptions] or [Options] value may make it lazy.
func ZeroOrOne(exprsAndOptions ...any) (Segment, error) {
	return quantify(exprsAndOptions, "?", false)
}

// Maybe is ZeroOrOne.
func Maybe(exprsAndOptions ...any) (Segment, error) {
	return ZeroOrOne(exprsAndOptions...)
}

// ZeroOrOneLazy is ZeroOrOne, always lazy.
func ZeroOrOneLazy(exprsAndOptions ...any) (Segment, error) {
	return quantify(exprsAndOptions, "?", true)
}

// OneOrMore matches the expressions one or more times.
func OneOrMore(exprsAndOptions ...any) (Segment, error) {
	return quantify(exprsAndOptions, "+", false)
}

// OneOrMoreLazy is OneOrMore, always lazy.
func OneOrMoreLazy(exprsAndOptions ...any) (Segment, error) {
	return quantify(exprsAndOptions, "+", true)
}

// ZeroOrMore matches the expressions any number of times.
func ZeroOrMore(exprsAndOptions ...any) (Segment, error) {
	return quantify(exprsAndOptions, "*", false)
}

// ZeroOrMoreLazy is ZeroOrMore, always lazy.
func ZeroOrMoreLazy(exprsAndOptions ...any) (Segment, error) {
	return quantify(exprsAndOptions, "*", true)
}

// Quantity is the count taken by [Repeat]. It is implemented
// by [RepeatOptions] and [Options].
type Quantity interface {
	quantity() (RepeatOptions, error)
}

// RepeatOptions is an exact count (Times) or a range (Min, Max). A nil bound
// is absent: an absent Min means 0 and an absent Max means unbounded.
type RepeatOptions struct {
	Times *int
	Min   *int
	Max   *int
	Lazy  bool
}

// Times repeats exactly n times.
func Times(n int) RepeatOptions {
	return RepeatOptions{Times: &n}
}

// Between repeats at least min and at most max times.
func Between(min, max int) RepeatOptions {
	return RepeatOptions{Min: &min, Max: &max}
}

// AtLeast repeats min or more times.
func AtLeast(min int) RepeatOptions {
	return RepeatOptions{Min: &min}
}

// AtMost repeats up to max times.
func AtMost(max int) RepeatOptions {
	return RepeatOptions{Max: &max}
}

func (o RepeatOptions) quantity() (RepeatOptions, error) {
	return o, o.validate()
}

func (o RepeatOptions) validate() error {
	if o.Times != nil {
		if o.Min != nil || o.Max != nil {
			return fmt.Errorf("%w: times cannot be combined with min or max", ErrInvalidRange)
		}
		if *o.Times < 0 {
			return fmt.Errorf("%w: times must be non-negative, got %d", ErrInvalidRange, *o.Times)
		}
		return nil
	}

	if o.Min == nil && o.Max == nil {
		return fmt.Errorf("%w: need times, min or max", ErrMissingQuantity)
	}
	if o.Min != nil && *o.Min < 0 {
		return fmt.Errorf("%w: min must be non-negative, got %d", ErrInvalidRange, *o.Min)
	}
	if o.Max != nil && *o.Max < 0 {
		return fmt.Errorf("%w: max must be non-negative, got %d", ErrInvalidRange, *o.Max)
	}
	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRange, *o.Min, *o.Max)
	}

	return nil
}

// suffix renders the bounded quantifier; o must be valid.
func (o RepeatOptions) suffix() string {
	switch {
	case o.Times != nil:
		return "{" + strconv.Itoa(*o.Times) + "}"
	case o.Min == nil:
		return "{0," + strconv.Itoa(*o.Max) + "}"
	case o.Max == nil:
		return "{" + strconv.Itoa(*o.Min) + ",}"
	case *o.Min == *o.Max:
		return "{" + strconv.Itoa(*o.Min) + "}"
	default:
		return "{" + strconv.Itoa(*o.Min) + "," + strconv.Itoa(*o.Max) + "}"
	}
}

// quantity reads the keys times, min and max (integers, or null for absent)
// and at most one of lazy and greedy.
func (o Options) quantity() (RepeatOptions, error) {
	var (
		opts   RepeatOptions
		toggle = Options{}
	)

	for k, v := range o {
		var dst **int
		switch k {
		case "times":
			dst = &opts.Times
		case "min":
			dst = &opts.Min
		case "max":
			dst = &opts.Max
		case "lazy", "greedy":
			toggle[k] = v
			continue
		default:
			return RepeatOptions{}, fmt.Errorf("%w: unknown repeat option %q", ErrInvalidInputType, k)
		}

		if v == nil {
			continue
		}

		n, err := cast.Count(v)
		if err != nil {
			return RepeatOptions{}, fmt.Errorf("%w: %s: %v", ErrInvalidRange, k, err)
		}
		*dst = &n
	}

	key, value, ok := toggle.toggle("lazy", "greedy")
	if !ok {
		return RepeatOptions{}, fmt.Errorf("%w: use one boolean lazy or greedy option", ErrInvalidInputType)
	}
	opts.Lazy = (key == "lazy" && value) || (key == "greedy" && !value)

	return opts, opts.validate()
}

// Repeat matches the expressions a bounded number of times, as given by q:
// {n} for an exact count, {min,}, {0,max} or {min,max} for a range.
func Repeat(q Quantity, exprs ...any) (Segment, error) {
	return repeat(q, exprs, false)
}

// RepeatLazy is Repeat, always lazy.
func RepeatLazy(q Quantity, exprs ...any) (Segment, error) {
	return repeat(q, exprs, true)
}

func repeat(q Quantity, exprs []any, lazy bool) (Segment, error) {
	if len(exprs) == 0 {
		return Segment{}, ErrMissingExpressions
	}
	if q == nil {
		return Segment{}, fmt.Errorf("%w: nil quantity", ErrMissingQuantity)
	}

	opts, err := q.quantity()
	if err != nil {
		return Segment{}, err
	}

	return applySuffix(exprs, opts.suffix(), lazy || opts.Lazy)
}
