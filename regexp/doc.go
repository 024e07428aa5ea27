// Package regexp compiles pattern source and a flag string into a [Regexp],
// selecting the fastest engine available for the pattern.
//
// By default it compiles patterns with coregex (an accelerated RE2-compatible
// engine). When the pattern requires PCRE/Perl features that RE2/coregex
// cannot execute (lookaround, back-references, named groups), the package
// falls back to [regexp2].
//
// Flags use the single-letter alphabet "s", "g", "i", "m", "y" and "u"
// (dotAll, global, ignoreCase, multiline, sticky, unicode). The matching-mode
// flags are handed to the engine; "g" and "y" shape how [Regexp.ExecAll],
// [Regexp.ReplaceAllString] and [Regexp.Exec] walk the input.
package regexp
