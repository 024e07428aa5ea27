package regexp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrGroupName is returned by [Compile] for a duplicate group name or a
// back-reference to a name no group declares.
var ErrGroupName = errors.New("invalid capture group name")

// numberGroups rewrites pattern so every capturing group is a plain "(...)"
// and every named back-reference is numeric. regexp2 numbers unnamed groups
// before named ones; after the rewrite the numbering is strictly left to
// right, which is what numbered back-references and Match.Group expect.
//
// names[i] is the name of group i ("" when unnamed); names[0] is the whole
// match.
func numberGroups(pattern string) (string, []string, error) {
	names := []string{""}
	ordinals := make(map[string]int)

	// First pass: ordinals, so back-references may precede their group.
	err := scanGroups(pattern, func(name string) error {
		if name != "" {
			if _, dup := ordinals[name]; dup {
				return fmt.Errorf("%w: duplicate name %q", ErrGroupName, name)
			}
			ordinals[name] = len(names)
		}
		names = append(names, name)
		return nil
	}, nil)
	if err != nil {
		return "", nil, err
	}

	if len(ordinals) == 0 && !strings.Contains(pattern, `\k`) {
		return pattern, names, nil
	}

	var b strings.Builder
	b.Grow(len(pattern))
	err = scanGroups(pattern, nil, func(tok token) error {
		switch tok.kind {
		case tokNamedGroup:
			b.WriteByte('(')
		case tokNamedRef:
			n, ok := ordinals[tok.name]
			if !ok {
				return fmt.Errorf("%w: reference to undefined group %q", ErrGroupName, tok.name)
			}
			// Wrapped so a following digit is not read as part of the number.
			b.WriteString(`(?:\` + strconv.Itoa(n) + `)`)
		default:
			b.WriteString(tok.text)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	return b.String(), names, nil
}

type tokenKind int

const (
	tokText tokenKind = iota
	tokNamedGroup
	tokNamedRef
)

type token struct {
	kind tokenKind
	text string
	name string
}

// scanGroups walks pattern. group is called for every capturing group in
// order of its opening parenthesis; emit receives the pattern split into
// tokens whose texts concatenate back to pattern. Either may be nil.
func scanGroups(pattern string, group func(name string) error, emit func(token) error) error {
	if group == nil {
		group = func(string) error { return nil }
	}
	if emit == nil {
		emit = func(token) error { return nil }
	}

	text := func(s string) error { return emit(token{kind: tokText, text: s}) }

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\\':
			if name, n, ok := namedRef(pattern[i:]); ok {
				if err := emit(token{kind: tokNamedRef, text: pattern[i : i+n], name: name}); err != nil {
					return err
				}
				i += n
				continue
			}

			end := min(i+2, len(pattern))
			if err := text(pattern[i:end]); err != nil {
				return err
			}
			i = end

		case c == '[':
			end := classEnd(pattern, i)
			if err := text(pattern[i:end]); err != nil {
				return err
			}
			i = end

		case c == '(':
			name, n, capturing := groupOpening(pattern[i:])
			if capturing {
				if err := group(name); err != nil {
					return err
				}
			}

			kind := tokText
			if name != "" {
				kind = tokNamedGroup
			}
			if err := emit(token{kind: kind, text: pattern[i : i+n], name: name}); err != nil {
				return err
			}
			i += n

		default:
			j := i + 1
			for j < len(pattern) && !strings.ContainsRune(`\[(`, rune(pattern[j])) {
				j++
			}
			if err := text(pattern[i:j]); err != nil {
				return err
			}
			i = j
		}
	}

	return nil
}

// groupOpening classifies the group opening at the start of s. It returns
// the group name, the length of the opening token and whether the group
// captures. A comment group is consumed whole.
func groupOpening(s string) (name string, n int, capturing bool) {
	if !strings.HasPrefix(s, "(?") {
		return "", 1, true
	}

	rest := s[2:]
	switch {
	case strings.HasPrefix(rest, "#"):
		if end := strings.IndexByte(s, ')'); end >= 0 {
			return "", end + 1, false
		}
		return "", len(s), false
	case strings.HasPrefix(rest, "<="), strings.HasPrefix(rest, "<!"):
		return "", 4, false
	case strings.HasPrefix(rest, "P<"):
		if name, ok := delimited(rest[2:], '>'); ok {
			return name, 4 + len(name) + 1, true
		}
	case strings.HasPrefix(rest, "<"):
		if name, ok := delimited(rest[1:], '>'); ok {
			return name, 3 + len(name) + 1, true
		}
	case strings.HasPrefix(rest, "'"):
		if name, ok := delimited(rest[1:], '\''); ok {
			return name, 3 + len(name) + 1, true
		}
	}

	return "", 2, false
}

// namedRef recognises \k<name> and \k'name' at the start of s.
func namedRef(s string) (name string, n int, ok bool) {
	if len(s) < 3 || s[1] != 'k' {
		return "", 0, false
	}

	closing := byte('>')
	switch s[2] {
	case '<':
	case '\'':
		closing = '\''
	default:
		return "", 0, false
	}

	name, ok = delimited(s[3:], closing)
	if !ok {
		return "", 0, false
	}

	return name, 3 + len(name) + 1, true
}

// delimited returns the name in s up to closing. A name is a letter or
// underscore followed by letters, digits or underscores.
func delimited(s string, closing byte) (string, bool) {
	end := strings.IndexByte(s, closing)
	if end <= 0 {
		return "", false
	}

	name := s[:end]
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != '_' && !isASCIILetter(c) && (i == 0 || c < '0' || c > '9') {
			return "", false
		}
	}

	return name, true
}

// classEnd returns the offset just past the bracket expression opening at
// start. A "]" right after "[" or "[^" is a literal member, and POSIX
// classes such as [:alpha:] are skipped whole.
func classEnd(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && pattern[i] == '^' {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	for i < len(pattern) {
		switch pattern[i] {
		case '\\':
			i += 2
			continue
		case '[':
			if strings.HasPrefix(pattern[i:], "[:") {
				if end := strings.Index(pattern[i+2:], ":]"); end >= 0 {
					i += 2 + end + 2
					continue
				}
			}
		case ']':
			return i + 1
		}
		i++
	}

	return len(pattern)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
