package readex

import (
	"fmt"
	"strconv"

	"go.dw1.io/readex/cast"
)

// BackReference matches the text captured earlier by a group. An integer
// refers to a group by its 1-based ordinal (\N), a string to a named group
// (\k<name>). Anything else fails with [ErrInvalidReferenceType].
func BackReference(ref any) (Segment, error) {
	if name, ok := ref.(string); ok {
		if err := validateGroupName(name); err != nil {
			return Segment{}, fmt.Errorf("%w: %v", ErrInvalidReferenceType, err)
		}
		return Segment{source: `\k<` + name + `>`}, nil
	}

	if !cast.IsNumber(ref) {
		return Segment{}, fmt.Errorf("%w: %T", ErrInvalidReferenceType, ref)
	}

	n, err := cast.Int(ref)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %v", ErrInvalidReferenceType, err)
	}
	if n < 1 {
		return Segment{}, fmt.Errorf("%w: group ordinal must be at least 1, got %d", ErrInvalidReferenceType, n)
	}

	return Segment{source: `\` + strconv.Itoa(n)}, nil
}
