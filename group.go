package readex

import (
	"fmt"
	"unicode"
)

// GroupOptions configures [Group]. The zero value is a capturing group.
type GroupOptions struct {
	// Name turns the group into a named capture group.
	Name string

	// NonCapturing turns the group into a non-capturing group. It cannot be
	// combined with Name.
	NonCapturing bool
}

func (o GroupOptions) validate() error {
	if o.Name == "" {
		return nil
	}
	if o.NonCapturing {
		return fmt.Errorf("%w: named group %q must capture", ErrInvalidGroupConfig, o.Name)
	}

	return validateGroupName(o.Name)
}

// parseGroupOptions recognises GroupOptions and maps with the keys capture
// (bool) and name (string or nil).
func parseGroupOptions(v any) (GroupOptions, bool, error) {
	if o, ok := v.(GroupOptions); ok {
		return o, true, o.validate()
	}

	m, ok := asOptions(v)
	if !ok {
		return GroupOptions{}, false, nil
	}

	var (
		opts    GroupOptions
		capture = true
	)
	for k, val := range m {
		switch k {
		case "capture":
			b, isBool := val.(bool)
			if !isBool {
				return GroupOptions{}, false, nil
			}
			capture = b
		case "name":
		default:
			return GroupOptions{}, false, nil
		}
	}

	switch name := m["name"].(type) {
	case nil:
	case string:
		opts.Name = name
	default:
		return GroupOptions{}, true, fmt.Errorf("%w: name must be a string, got %T", ErrInvalidGroupName, name)
	}
	opts.NonCapturing = !capture

	return opts, true, opts.validate()
}

// validateGroupName accepts names the engine can compile: a letter or
// underscore followed by letters, digits or underscores.
func validateGroupName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidGroupName)
	}

	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return fmt.Errorf("%w: %q", ErrInvalidGroupName, name)
	}

	return nil
}

// Group wraps the expressions in a group. A trailing [GroupOptions] or
// [Options] value selects the kind: named when a name is set, non-capturing
// when capture is off, capturing otherwise.
func Group(exprsAndOptions ...any) (Segment, error) {
	exprs, opts, err := extractOptions(exprsAndOptions, parseGroupOptions)
	if err != nil {
		return Segment{}, err
	}

	return group(exprs, opts)
}

func group(exprs []any, opts GroupOptions) (Segment, error) {
	if len(exprs) == 0 {
		return Segment{}, ErrMissingExpressions
	}
	if err := opts.validate(); err != nil {
		return Segment{}, err
	}

	body, err := join(exprs)
	if err != nil {
		return Segment{}, err
	}

	switch {
	case opts.Name != "":
		return Segment{source: "(?<" + opts.Name + ">" + body.source + ")"}, nil
	case opts.NonCapturing:
		return nonCapture(body), nil
	default:
		return Segment{source: "(" + body.source + ")"}, nil
	}
}

// CaptureGroup wraps the expressions in a numbered capturing group.
func CaptureGroup(exprs ...any) (Segment, error) {
	return group(exprs, GroupOptions{})
}

// NonCaptureGroup wraps the expressions in a non-capturing group.
func NonCaptureGroup(exprs ...any) (Segment, error) {
	return group(exprs, GroupOptions{NonCapturing: true})
}

// Concat is NonCaptureGroup: the expressions in sequence, as one unit.
func Concat(exprs ...any) (Segment, error) {
	return NonCaptureGroup(exprs...)
}

// NamedGroup wraps the expressions in a capturing group called name.
func NamedGroup(name string, exprs ...any) (Segment, error) {
	if err := validateGroupName(name); err != nil {
		return Segment{}, err
	}

	return group(exprs, GroupOptions{Name: name})
}

// Or matches any one of the expressions, trying them left to right. The
// alternation is wrapped in a non-capturing group.
func Or(exprs ...any) (Segment, error) {
	if len(exprs) == 0 {
		return Segment{}, ErrMissingExpressions
	}

	segs, err := ToSegments(exprs...)
	if err != nil {
		return Segment{}, err
	}

	return nonCapture(JoinSegments(segs, "|")), nil
}

func nonCapture(body Segment) Segment {
	return Segment{source: "(?:" + body.source + ")"}
}

// asOptions reports whether v is an untyped options map.
func asOptions(v any) (Options, bool) {
	switch m := v.(type) {
	case Options:
		return m, m != nil
	case map[string]any:
		return Options(m), m != nil
	default:
		return nil, false
	}
}
