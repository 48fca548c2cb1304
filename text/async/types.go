package async

import (
	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/internal/image"
	"github.com/gogpu/textkit/text"
)

// TaskID identifies a requested task. Ids start at 1.
type TaskID uint32

// EmptyTaskID is never assigned to a task.
const EmptyTaskID TaskID = 0

// RequestType selects the work a loader performs.
type RequestType int

const (
	// RenderFixedSize renders into a buffer of exactly Width x Height.
	RenderFixedSize RequestType = iota
	// RenderFixedWidth renders at Width with the height of the laid out
	// text, capped by Height when it is positive.
	RenderFixedWidth
	// RenderConstraint renders at the natural size of the text, with
	// Width and Height as upper bounds.
	RenderConstraint
	// ComputeNaturalSize only computes the natural size.
	ComputeNaturalSize
	// ComputeHeightForWidth only computes the height for Width.
	ComputeHeightForWidth
)

// String returns the string representation of the request type.
func (t RequestType) String() string {
	switch t {
	case RenderFixedSize:
		return "RenderFixedSize"
	case RenderFixedWidth:
		return "RenderFixedWidth"
	case RenderConstraint:
		return "RenderConstraint"
	case ComputeNaturalSize:
		return "ComputeNaturalSize"
	case ComputeHeightForWidth:
		return "ComputeHeightForWidth"
	default:
		return "Unknown"
	}
}

// renders reports whether the request produces a pixel buffer.
func (t RequestType) renders() bool {
	return t == RenderFixedSize || t == RenderFixedWidth || t == RenderConstraint
}

// Parameters holds everything a loader needs to redo a task.
type Parameters struct {
	RequestType RequestType

	Text         string
	EnableMarkup bool

	FontFamily string
	// PointSize is the font size in points. Zero uses 12.
	PointSize float32
	TextColor textkit.Color

	// Width and Height are the control size or the constraints of the
	// request type.
	Width, Height float32

	MultiLine           bool
	LineWrapMode        text.LineWrapMode
	HorizontalAlignment text.HorizontalAlignment
	VerticalAlignment   text.VerticalAlignment
	LayoutDirection     text.LayoutDirection
	LineSpacing         float32
	CharacterSpacing    float32

	UnderlineEnabled     bool
	UnderlineType        text.UnderlineType
	UnderlineColor       textkit.Color
	UnderlineHeight      float32
	DashedUnderlineWidth float32
	DashedUnderlineGap   float32

	StrikethroughEnabled bool
	StrikethroughColor   textkit.Color
	StrikethroughHeight  float32

	ShadowColor  textkit.Color
	ShadowOffset text.Vector2
	OutlineColor textkit.Color
	OutlineWidth float32

	// Format is the pixel format of the rendered buffer. The caller picks
	// L8 for single color text.
	Format image.Format
}

// DefaultParameters returns parameters with the control defaults: black
// text, black decorations and a white outline.
func DefaultParameters() Parameters {
	return Parameters{
		TextColor:            textkit.Black,
		UnderlineColor:       textkit.Black,
		DashedUnderlineWidth: 2,
		DashedUnderlineGap:   1,
		StrikethroughColor:   textkit.Black,
		ShadowColor:          textkit.Black,
		OutlineColor:         textkit.White,
		Format:               image.FormatRGBA8,
	}
}

// RenderInfo is the result of a task.
type RenderInfo struct {
	RequestType RequestType

	// Buffer is nil for compute requests and for empty text.
	Buffer        *image.Buffer
	Width, Height int

	// ControlSize is the size the text was laid out in.
	ControlSize text.Size
	// NaturalSize is set by ComputeNaturalSize and RenderConstraint.
	NaturalSize text.Size
	LineCount   int
	// IsTextDirectionRTL reports the direction of the first paragraph.
	IsTextDirectionRTL bool

	// Err is set when the loader failed.
	Err error
}

// Observer receives the results of its tasks.
//
// Observers are compared with ==, so their dynamic type must be
// comparable. Pointers are.
type Observer interface {
	LoadComplete(id TaskID, success bool, info RenderInfo)
}

// ObserverFunc adapts a function to Observer. A *ObserverFunc is
// comparable, an ObserverFunc is not.
type ObserverFunc func(id TaskID, success bool, info RenderInfo)

// LoadComplete calls f.
func (f *ObserverFunc) LoadComplete(id TaskID, success bool, info RenderInfo) {
	(*f)(id, success, info)
}

// Loader performs tasks. A loader is used by one goroutine at a time.
type Loader interface {
	// Load performs the work described by p.
	Load(p Parameters) RenderInfo
	// SetLocale changes the locale used for shaping and font fallback.
	SetLocale(locale string) error
	// ClearCache drops cached font state.
	ClearCache()
}

// LoaderFactory creates the loaders of a Manager.
type LoaderFactory func() Loader
