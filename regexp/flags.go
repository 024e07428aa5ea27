package regexp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrInvalidFlags is returned by [Compile] for an unknown or repeated flag.
var ErrInvalidFlags = errors.New("invalid regexp flags")

type flagSet struct {
	dotAll     bool
	global     bool
	ignoreCase bool
	multiline  bool
	sticky     bool
	unicode    bool
}

func parseFlags(flags string) (flagSet, error) {
	var fs flagSet

	seen := make(map[rune]bool, len(flags))
	for _, c := range flags {
		if seen[c] {
			return flagSet{}, fmt.Errorf("%w: duplicate flag %q in %q", ErrInvalidFlags, c, flags)
		}
		seen[c] = true

		switch c {
		case 's':
			fs.dotAll = true
		case 'g':
			fs.global = true
		case 'i':
			fs.ignoreCase = true
		case 'm':
			fs.multiline = true
		case 'y':
			fs.sticky = true
		case 'u':
			fs.unicode = true
		default:
			return flagSet{}, fmt.Errorf("%w: unknown flag %q in %q", ErrInvalidFlags, c, flags)
		}
	}

	return fs, nil
}

// pcreOptions maps the flags regexp2 understands. RE2 is always set so that
// $ without "m" anchors only at the end of input and \d, \s and \w match the
// same ASCII sets as on coregex. "u" needs no option: regexp2 already
// matches on code points.
func (fs flagSet) pcreOptions() regexp2.RegexOptions {
	opt := regexp2.RegexOptions(regexp2.RE2)
	if fs.ignoreCase {
		opt |= regexp2.IgnoreCase
	}
	if fs.multiline {
		opt |= regexp2.Multiline
	}
	if fs.dotAll {
		opt |= regexp2.Singleline
	}

	return opt
}

// inlinePrefix renders the flags coregex understands as an RE2 inline group.
func (fs flagSet) inlinePrefix() string {
	var b strings.Builder
	if fs.ignoreCase {
		b.WriteByte('i')
	}
	if fs.multiline {
		b.WriteByte('m')
	}
	if fs.dotAll {
		b.WriteByte('s')
	}

	if b.Len() == 0 {
		return ""
	}

	return "(?" + b.String() + ")"
}
