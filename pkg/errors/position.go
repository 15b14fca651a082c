package errors

// Position is a source location attached to errors when known.
type Position struct {
	Line   int
	Column int
}
