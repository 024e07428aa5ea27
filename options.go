package readex

import (
	"fmt"

	"go.dw1.io/readex/json"
)

// Options is an untyped options object, the form options take when they come
// from configuration rather than Go code. Each combinator recognises a fixed
// set of keys; a map with any other key is not treated as options.
type Options map[string]any

// ParseOptions decodes a JSON object into Options. JSON numbers decode as
// float64 and are accepted wherever an integer count is expected, as long as
// they are integral.
func ParseOptions(data []byte) (Options, error) {
	obj, ok, err := json.UnmarshalObject(data)
	if err != nil {
		return nil, fmt.Errorf("readex: parse options: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: options must be a JSON object", ErrInvalidInputType)
	}

	return Options(obj), nil
}

// optionParser decides whether v is an options value for one combinator.
// ok is false when v should be treated as an expression instead; err reports
// an options value that was recognised but is invalid.
type optionParser[O any] func(v any) (opts O, ok bool, err error)

// extractOptions splits a variadic argument list into expressions and
// options. The last argument is options only when it is not the sole
// argument and parse recognises it; otherwise every argument is an
// expression and the zero O applies.
func extractOptions[O any](args []any, parse optionParser[O]) ([]any, O, error) {
	var opts O

	if len(args) == 0 {
		return nil, opts, ErrMissingExpressions
	}

	if len(args) > 1 {
		parsed, ok, err := parse(args[len(args)-1])
		if err != nil {
			return nil, opts, err
		}
		if ok {
			return args[:len(args)-1], parsed, nil
		}
	}

	return args, opts, nil
}

// toggle reads an Options map that holds at most one of two boolean keys.
// ok is false for any other shape. An empty map is valid and reports an
// empty key.
func (o Options) toggle(a, b string) (key string, value bool, ok bool) {
	if len(o) == 0 {
		return "", false, true
	}
	if len(o) > 1 {
		return "", false, false
	}

	for k, v := range o {
		if k != a && k != b {
			return "", false, false
		}
		value, ok = v.(bool)
		key = k
	}

	return key, value, ok
}
