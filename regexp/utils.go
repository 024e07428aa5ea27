package regexp

import "strings"

// pcreOnly lists constructs RE2/coregex cannot execute, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// Lookaround assertions
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	// Atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&", `\g`,
	// Named back-references
	`\k<`, `\k'`, `\k{`, "(?P=",
	// Escapes Go does not know
	`\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\K`, `\e`, `\G`, `\Z`,
}

// needsPCRE reports whether pattern must be compiled with regexp2.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered back-references: an unescaped backslash followed by 1-9.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// NOTE(dwisiswant0): Go accepts (?P<name>...) and (?<name>...) but not
	// (?'name'...). (?<name> is routed to regexp2 anyway so that a pattern
	// mixing named groups with \k<name> never lands on coregex.
	return strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")
}
