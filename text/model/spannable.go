package model

import (
	"reflect"

	"github.com/gogpu/textkit/text"
)

type attachedSpan struct {
	span  Span
	chars text.Range
}

// SpannableString is a string with spans attached to character ranges.
// Spans are lowered to runs only when ApplyTo is called.
type SpannableString struct {
	runes []rune
	spans []attachedSpan
}

// NewSpannableString creates a spannable string without spans.
func NewSpannableString(s string) *SpannableString {
	return &SpannableString{runes: []rune(s)}
}

// String returns the plain text.
func (s *SpannableString) String() string {
	return string(s.runes)
}

// Runes returns the characters. The slice must not be modified.
func (s *SpannableString) Runes() []rune {
	return s.runes
}

// Len returns the number of characters.
func (s *SpannableString) Len() text.Length {
	return text.Length(len(s.runes))
}

// AttachSpan attaches span to r clamped to the string.
// It returns false for a nil span, a span already attached or a range
// that is empty after clamping.
func (s *SpannableString) AttachSpan(span Span, r text.Range) bool {
	if isNilSpan(span) || s.indexOf(span) >= 0 {
		return false
	}
	r = r.Clamp(s.Len())
	if r.Empty() {
		return false
	}
	s.spans = append(s.spans, attachedSpan{span: span, chars: r})
	return true
}

// DetachSpan removes span. It returns false if span is not attached.
func (s *SpannableString) DetachSpan(span Span) bool {
	if isNilSpan(span) {
		return false
	}
	i := s.indexOf(span)
	if i < 0 {
		return false
	}
	s.spans = append(s.spans[:i], s.spans[i+1:]...)
	return true
}

// Spans returns the attached spans in attach order.
func (s *SpannableString) Spans() []Span {
	out := make([]Span, len(s.spans))
	for i, a := range s.spans {
		out[i] = a.span
	}
	return out
}

// SpanRanges returns the range of each span returned by Spans.
func (s *SpannableString) SpanRanges() []text.Range {
	out := make([]text.Range, len(s.spans))
	for i, a := range s.spans {
		out[i] = a.chars
	}
	return out
}

// ApplyTo sets the text of m and replaces its style runs with the runs
// produced by the spans, in attach order.
func (s *SpannableString) ApplyTo(m *LogicalModel) {
	m.SetText(s.runes)
	for _, a := range s.spans {
		lower(a.span, a.chars.Run(), m)
	}
}

func (s *SpannableString) indexOf(span Span) int {
	for i, a := range s.spans {
		if a.span == span {
			return i
		}
	}
	return -1
}

func isNilSpan(span Span) bool {
	if span == nil {
		return true
	}
	v := reflect.ValueOf(span)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
