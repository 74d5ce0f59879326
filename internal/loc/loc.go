package loc

type Loc struct {
	// This is the 0-based index of this location from the start of the file, in bytes
	Start int
}

type Range struct {
	Loc Loc
	Len int
}

// Span is a range of bytes in the parser's source. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// RangeOf converts a span to a range.
func RangeOf(s Span) Range {
	return Range{Loc: Loc{Start: s.Start}, Len: s.Len()}
}
