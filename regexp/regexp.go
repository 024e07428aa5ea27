package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled pattern together with the flag string it was compiled
// with. It delegates to either coregex (fast, RE2-compatible) or regexp2
// (PCRE-compatible) depending on the pattern features detected at compile
// time.
//
// A Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	source string
	flags  string
	mode   flagSet
	core   *coregex.Regex
	pcre   *regexp2.Regexp
	names  []string // regexp2 only; see numberGroups
}

// Compile compiles source with the given flag string. Patterns that require
// PCRE/Perl-only features (detected by needsPCRE) are compiled with regexp2;
// everything else uses coregex for speed.
//
// The flag string may contain each of "s", "g", "i", "m", "y" and "u" at most
// once. Any other flag is rejected with [ErrInvalidFlags]. Capture groups are
// numbered left to right on both engines; a duplicate group name or a
// reference to an unknown one is rejected with [ErrGroupName].
func Compile(source, flags string) (*Regexp, error) {
	mode, err := parseFlags(flags)
	if err != nil {
		return nil, err
	}

	r := &Regexp{source: source, flags: flags, mode: mode}

	if needsPCRE(source) {
		numbered, names, err := numberGroups(source)
		if err != nil {
			return nil, err
		}

		re, err := regexp2.Compile(numbered, mode.pcreOptions())
		if err != nil {
			return nil, err
		}
		r.pcre = re
		r.names = names

		return r, nil
	}

	re, err := coregex.Compile(mode.inlinePrefix() + source)
	if err != nil {
		return nil, err
	}
	r.core = re

	return r, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(source, flags string) *Regexp {
	re, err := Compile(source, flags)
	if err != nil {
		panic(err)
	}
	return re
}

// Source returns the pattern source without flags.
func (r *Regexp) Source() string {
	return r.source
}

// Flags returns the flag string the Regexp was compiled with.
func (r *Regexp) Flags() string {
	return r.flags
}

// String returns the pattern in literal notation, /source/flags.
func (r *Regexp) String() string {
	return "/" + r.source + "/" + r.flags
}

// Global reports whether the "g" flag is set.
func (r *Regexp) Global() bool { return r.mode.global }

// Sticky reports whether the "y" flag is set.
func (r *Regexp) Sticky() bool { return r.mode.sticky }

// Test reports whether s contains a match. With the sticky flag the match
// must start at the beginning of s.
func (r *Regexp) Test(s string) bool {
	if r.mode.sticky {
		return r.Exec(s) != nil
	}

	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// MatchString is an alias for Test.
func (r *Regexp) MatchString(s string) bool {
	return r.Test(s)
}

// Exec returns the leftmost match in s, or nil if there is none.
func (r *Regexp) Exec(s string) *Match {
	all := r.findAll(s, 1)
	if len(all) == 0 {
		return nil
	}

	return r.newMatch(s, all[0])
}

// ExecAll returns every successive match in s when the global flag is set,
// and at most one match otherwise.
func (r *Regexp) ExecAll(s string) []*Match {
	n := -1
	if !r.mode.global {
		n = 1
	}

	all := r.findAll(s, n)
	out := make([]*Match, len(all))
	for i, loc := range all {
		out[i] = r.newMatch(s, loc)
	}

	return out
}

// FindString returns the text of the leftmost match in s.
func (r *Regexp) FindString(s string) string {
	m := r.Exec(s)
	if m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns a two-element slice with the start and end byte
// offsets of the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	all := r.findAll(s, 1)
	if len(all) == 0 {
		return nil
	}

	return all[0][:2]
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	m := r.Exec(s)
	if m == nil {
		return nil
	}

	return m.Groups()
}

// FindAllString returns a slice of up to n successive matches in s; n < 0
// means all of them. Unlike ExecAll it ignores the global flag.
func (r *Regexp) FindAllString(s string, n int) []string {
	all := r.findAll(s, n)
	if len(all) == 0 {
		return nil
	}

	out := make([]string, len(all))
	for i, loc := range all {
		out[i] = s[loc[0]:loc[1]]
	}

	return out
}

// ReplaceAllString returns a copy of src with matches replaced by repl.
// Without the global flag only the first match is replaced. repl is
// inserted literally.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	n := -1
	if !r.mode.global {
		n = 1
	}

	all := r.findAll(src, n)
	if len(all) == 0 {
		return src
	}

	buf := make([]byte, 0, len(src))
	last := 0
	for _, loc := range all {
		buf = append(buf, src[last:loc[0]]...)
		buf = append(buf, repl...)
		last = loc[1]
	}
	buf = append(buf, src[last:]...)

	return string(buf)
}

// Split slices s into substrings separated by the Regexp. n has the same
// meaning as for [regexp.Regexp.Split].
func (r *Regexp) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}

	if r.core != nil && !r.mode.sticky {
		return r.core.Split(s, n)
	}

	if len(s) == 0 {
		return []string{""}
	}

	matches := r.findAll(s, -1)
	parts := make([]string, 0, len(matches))

	beg, end := 0, 0
	for _, loc := range matches {
		if n > 0 && len(parts) == n-1 {
			break
		}

		end = loc[0]
		if loc[1] != 0 {
			parts = append(parts, s[beg:end])
		}
		beg = loc[1]
	}

	if end != len(s) {
		parts = append(parts, s[beg:])
	}

	return parts
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return len(r.names) - 1
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]; unnamed groups
// have an empty name.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	return append([]string(nil), r.names...)
}

// findAll returns up to n submatch index slices (byte offsets), n < 0 meaning
// all. With the sticky flag each match has to start where the previous one
// ended, the first one at offset 0, and scanning stops at the first gap.
func (r *Regexp) findAll(s string, n int) [][]int {
	if n == 0 {
		return nil
	}

	if !r.mode.sticky {
		return r.engineFindAll(s, n, nil)
	}

	pos := 0
	return r.engineFindAll(s, n, func(loc []int) bool {
		if loc[0] != pos {
			return false
		}
		pos = loc[1]
		return true
	})
}

// engineFindAll collects up to n matches. A non-nil accept ends the scan at
// the first match it rejects.
func (r *Regexp) engineFindAll(s string, n int, accept func(loc []int) bool) [][]int {
	if r.core != nil {
		// Leftmost matches are non-overlapping and in order, so the first n
		// are all a sticky scan can keep.
		all := r.core.FindAllStringSubmatchIndex(s, n)
		if accept == nil {
			return all
		}
		for i, loc := range all {
			if !accept(loc) {
				return all[:i]
			}
		}
		return all
	}

	matches := make([][]int, 0)
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}

		loc := groupsToIndexes(s, m.Groups())
		if accept != nil && !accept(loc) {
			break
		}
		matches = append(matches, loc)
		m, err = r.pcre.FindNextMatch(m)
	}

	return matches
}

func (r *Regexp) newMatch(s string, loc []int) *Match {
	return &Match{input: s, loc: loc, names: r.SubexpNames()}
}

func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}

		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}

	return out
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
