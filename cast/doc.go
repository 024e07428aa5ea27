// Package cast converts loosely typed option and literal values.
//
// It uses [safemath] for integer conversions to ensure safety against
// overflows/underflows and silent truncation, and [cast] for everything that
// is not an integer. [Literal] renders numbers the way JavaScript's
// Number.prototype.toString does, so numeric literals spliced into a pattern
// read the same regardless of their Go type.
package cast
