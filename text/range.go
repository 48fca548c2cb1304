package text

// Range is a half-open character range [Start, End).
type Range struct {
	Start, End CharacterIndex
}

// NewRange creates a range covering count characters from start.
func NewRange(start CharacterIndex, count Length) Range {
	return Range{Start: start, End: start + count}
}

// Len returns the number of characters in the range.
func (r Range) Len() Length {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range covers no characters.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether index lies inside the range.
func (r Range) Contains(index CharacterIndex) bool {
	return index >= r.Start && index < r.End
}

// Clamp restricts the range to [0, length).
func (r Range) Clamp(length Length) Range {
	if r.Start > length {
		r.Start = length
	}
	if r.End > length {
		r.End = length
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Run converts the range to a CharacterRun.
func (r Range) Run() CharacterRun {
	return CharacterRun{Index: r.Start, Count: r.Len()}
}
