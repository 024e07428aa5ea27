package readex

import (
	"fmt"

	"go.dw1.io/readex/regexp"
)

// Source joins the expressions into one Segment without compiling it.
func Source(expressions ...any) (Segment, error) {
	return join(expressions)
}

// ReadEx joins the expressions, resolves flags (see [ResolveFlags]; nil
// means [DefaultFlags]) and compiles the result.
//
// Errors from converting expressions or resolving flags are returned as is.
// If the engine rejects the assembled source the error wraps
// [ErrEngineCompile].
func ReadEx(expressions []any, flags any) (*regexp.Regexp, error) {
	source, flagString, err := assemble(expressions, flags)
	if err != nil {
		return nil, err
	}

	return compile(source, flagString)
}

// MustReadEx is like ReadEx but panics on error.
func MustReadEx(expressions []any, flags any) *regexp.Regexp {
	re, err := ReadEx(expressions, flags)
	if err != nil {
		panic("readex: " + err.Error())
	}

	return re
}

func assemble(expressions []any, flags any) (string, string, error) {
	source, err := join(expressions)
	if err != nil {
		return "", "", err
	}

	flagString, err := AsFlags(flags)
	if err != nil {
		return "", "", err
	}

	return source.source, flagString, nil
}

func compile(source, flags string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(source, flags)
	if err != nil {
		return nil, fmt.Errorf("%w: /%s/%s: %w", ErrEngineCompile, source, flags, err)
	}

	return re, nil
}
