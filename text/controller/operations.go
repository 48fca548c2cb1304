package controller

import "strings"

// OperationsMask selects the relayout stages still to run.
type OperationsMask uint32

// Relayout stages, in the order they run.
const (
	// ConvertToUTF32 rebuilds every derived vector from scratch after the
	// whole text was replaced.
	ConvertToUTF32 OperationsMask = 1 << iota
	// GetScripts segments the dirty paragraphs into script runs.
	GetScripts
	// ValidateFonts resolves a font for every character of the dirty
	// paragraphs.
	ValidateFonts
	// GetLineBreaks computes line break opportunities.
	GetLineBreaks
	// GetWordBreaks computes word boundaries.
	GetWordBreaks
	// BidiInfo analyzes the bidirectional paragraphs.
	BidiInfo
	// ShapeText converts characters into glyphs.
	ShapeText
	// GetGlyphMetrics applies the font run styling to the glyphs.
	GetGlyphMetrics
	// Layout breaks the glyphs into lines and positions them.
	Layout
	// UpdateLayoutSize stores the laid out size.
	UpdateLayoutSize
	// Reorder positions right to left runs visually.
	Reorder
	// Align computes the alignment offset of every line.
	Align
	// Color maps character colors and decorations to glyphs.
	Color
	// UpdateDirection re-resolves paragraph directions after the layout
	// direction changed.
	UpdateDirection

	// NoOperation runs nothing.
	NoOperation OperationsMask = 0
	// AllOperations runs every stage.
	AllOperations = ConvertToUTF32 | GetScripts | ValidateFonts | GetLineBreaks |
		GetWordBreaks | BidiInfo | ShapeText | GetGlyphMetrics | Layout |
		UpdateLayoutSize | Reorder | Align | Color | UpdateDirection
)

// Groups of operations set by edits and setters.
const (
	layoutOperations = Layout | UpdateLayoutSize | Reorder | Align
	shapeOperations  = ShapeText | GetGlyphMetrics | layoutOperations | Color
	fontOperations   = ValidateFonts | shapeOperations
	editOperations   = GetScripts | GetLineBreaks | GetWordBreaks | BidiInfo | fontOperations

	// modelOperations are the stages a measuring pass needs before layout.
	modelOperations = logicalOperations | glyphOperations

	logicalOperations = ConvertToUTF32 | GetScripts | ValidateFonts | GetLineBreaks |
		GetWordBreaks | BidiInfo | UpdateDirection
	glyphOperations = ShapeText | GetGlyphMetrics
)

var operationNames = []string{
	"ConvertToUTF32", "GetScripts", "ValidateFonts", "GetLineBreaks",
	"GetWordBreaks", "BidiInfo", "ShapeText", "GetGlyphMetrics", "Layout",
	"UpdateLayoutSize", "Reorder", "Align", "Color", "UpdateDirection",
}

// String returns the names of the set stages joined by "|".
func (m OperationsMask) String() string {
	if m == NoOperation {
		return "NoOperation"
	}
	var b strings.Builder
	for i, name := range operationNames {
		if m&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	if b.Len() == 0 {
		return unknownStr
	}
	return b.String()
}

// Has reports whether every stage of ops is set.
func (m OperationsMask) Has(ops OperationsMask) bool {
	return m&ops == ops
}

const unknownStr = "Unknown"

// UpdateTextType is the outcome of Relayout.
type UpdateTextType int

const (
	// NothingUpdated means no stage ran.
	NothingUpdated UpdateTextType = iota
	// ModelUpdated means the visual model changed.
	ModelUpdated
	// QueuedBySize means the control has no area yet; the pending stages
	// run on the first Relayout with a non-empty size.
	QueuedBySize
)

// String returns the string representation of the update type.
func (t UpdateTextType) String() string {
	switch t {
	case NothingUpdated:
		return "NothingUpdated"
	case ModelUpdated:
		return "ModelUpdated"
	case QueuedBySize:
		return "QueuedBySize"
	default:
		return unknownStr
	}
}

// InsertType distinguishes committed text from IME pre-edit text.
type InsertType int

const (
	// Commit inserts final text.
	Commit InsertType = iota
	// PreEdit inserts composing text that the next insert replaces.
	PreEdit
)

// String returns the string representation of the insert type.
func (t InsertType) String() string {
	switch t {
	case Commit:
		return "Commit"
	case PreEdit:
		return "PreEdit"
	default:
		return unknownStr
	}
}

// UpdateInputStyleType tells RemoveText whether the next insert takes its
// style from the character before the cursor.
type UpdateInputStyleType int

const (
	// UpdateInputStyle makes the next insert inherit the style before the
	// cursor.
	UpdateInputStyle UpdateInputStyleType = iota
	// DontUpdateInputStyle makes the next insert use the default style.
	DontUpdateInputStyle
)
