package readex

// Anchors. Under the multiline flag StartOfLine and EndOfLine match at every
// line start and end; otherwise only at the start and end of the input.
var (
	StartOfLine     = Raw(`^`)
	EndOfLine       = Raw(`$`)
	WordBoundary    = Raw(`\b`)
	NonWordBoundary = Raw(`\B`)
)

// Character classes.
var (
	Digit                  = Raw(`\d`)
	NonDigit               = Raw(`\D`)
	WordCharacter          = Raw(`\w`)
	NonWordCharacter       = Raw(`\W`)
	WhitespaceCharacter    = Raw(`\s`)
	NonWhitespaceCharacter = Raw(`\S`)
)

// Wildcards.
var (
	// AnyCharacter matches one character other than a line terminator.
	AnyCharacter = Raw(`.`)

	// Anything matches any run of characters, line terminators included,
	// whether or not the dotAll flag is set.
	Anything = Raw(`[\s\S]*`)

	// Something matches one or more characters other than line terminators.
	Something = Raw(`.+`)
)
