// Package readex builds regular expressions out of named, composable pieces
// instead of raw pattern syntax.
//
// Every combinator returns a [Segment], an immutable fragment of pattern
// source. Plain strings and numbers are escaped before they are spliced in;
// compiled patterns and [Raw] fragments contribute their source verbatim.
// [ReadEx] joins a sequence of expressions, attaches a flag configuration and
// compiles the result with [go.dw1.io/readex/regexp].
//
//	hex := readex.Must(readex.AnythingFrom(readex.Range("a", "f"), readex.Range("0", "9")))
//	color := readex.MustReadEx([]any{
//		readex.StartOfLine,
//		"#",
//		readex.Must(readex.Or(
//			readex.Must(readex.Repeat(readex.Times(6), hex)),
//			readex.Must(readex.Repeat(readex.Times(3), hex)),
//		)),
//		readex.EndOfLine,
//	}, readex.FlagsConfig{"ignoreCase": true})
//
//	color.Test("#FFF") // true
//
// Variadic combinators accept a trailing options value, either the
// combinator's typed options struct or an untyped [Options] map. The last
// argument is only treated as options when at least one expression precedes
// it.
//
// All combinators are pure and safe for concurrent use.
package readex
