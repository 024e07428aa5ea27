package readex

import "errors"

// ErrInvalidInputType indicates a value that cannot become a Segment.
var ErrInvalidInputType = errors.New("invalid expression type")

// ErrInvalidFlagsType indicates a flags configuration that is not a mapping,
// or a toggle whose value is not a boolean.
var ErrInvalidFlagsType = errors.New("invalid flags type")

// ErrInvalidFlagKey indicates an unknown toggle name in a flags configuration.
var ErrInvalidFlagKey = errors.New("invalid flag key")

// ErrMissingExpressions indicates a combinator called without expressions.
var ErrMissingExpressions = errors.New("no expressions provided")

// ErrInvalidGroupName indicates a missing or malformed group name.
var ErrInvalidGroupName = errors.New("invalid group name")

// ErrInvalidGroupConfig indicates a named group that was also requested to
// be non-capturing.
var ErrInvalidGroupConfig = errors.New("invalid group configuration")

// ErrInvalidRange indicates an inconsistent repeat count.
var ErrInvalidRange = errors.New("invalid quantifier range")

// ErrMissingQuantity indicates a repeat without times, min or max.
var ErrMissingQuantity = errors.New("missing quantifier quantity")

// ErrInvalidReferenceType indicates a back-reference that is neither a group
// ordinal nor a group name.
var ErrInvalidReferenceType = errors.New("invalid back reference")

// ErrInvalidCharacterSetExpression indicates a character set member that is
// neither a literal nor a two-element range.
var ErrInvalidCharacterSetExpression = errors.New("invalid character set expression")

// ErrEngineCompile indicates that the regex engine rejected the assembled
// source.
//
// It wraps the engine's own error.
var ErrEngineCompile = errors.New("regexp compile failed")
