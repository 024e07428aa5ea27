package readex

import (
	"fmt"
	"strings"

	"go.dw1.io/readex/cast"
)

// special lists every character that is escaped by Sanitize.
const special = `|\{}()[]^$+*?.-`

// Sanitize escapes a string or number so it matches itself when spliced into
// pattern source. Each of | \ { } ( ) [ ] ^ $ + * ? . - gets one leading
// backslash; every other character is kept.
//
// Numbers are first rendered with [cast.Literal]. Any other type fails with
// [ErrInvalidInputType].
func Sanitize(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		if s, ok = cast.Literal(v); !ok {
			return "", fmt.Errorf("%w: cannot sanitize %T", ErrInvalidInputType, v)
		}
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}

	return b.String(), nil
}
