package controller

import (
	"slices"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/layout"
	"github.com/gogpu/textkit/text/markup"
	"github.com/gogpu/textkit/text/model"
	"github.com/gogpu/textkit/text/multilang"
)

// Controller owns the model of one text control and keeps it up to date
// with edits and style changes.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	support *multilang.Support
	engine  *layout.Engine
	model   *model.Model
	cfg     config

	ready     bool
	cursor    text.CharacterIndex
	preEdit   text.Range
	inPreEdit bool
	inherit   bool

	ops   OperationsMask
	dirty text.Range // characters to re-script and re-validate
	clean bool       // dirty is empty

	controlSize text.Size
	direction   text.LayoutDirection

	wrapMode         text.LineWrapMode
	multiLine        bool
	lineSpacing      float32
	characterSpacing float32

	natural      text.Size
	naturalValid bool

	textChanged func()
}

// New creates a controller using support for script and font handling.
func New(support *multilang.Support, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.locale != "" {
		if err := support.SetLocale(cfg.locale); err != nil {
			textkit.Logger().Warn("controller: ignoring locale", "error", err)
		}
	}
	return &Controller{
		support: support,
		engine:  layout.NewEngine(support.Service()),
		model:   model.New(),
		cfg:     cfg,
		inherit: true,
		clean:   true,
	}
}

// SetText replaces the whole text. With markup enabled the text is parsed
// by markup.Process. The cursor moves to the end.
func (c *Controller) SetText(s string) {
	l := c.model.Logical
	if c.cfg.markup {
		res := markup.Process(s, c.cfg.markupDefaults)
		l.SetText(res.Text)
		l.Colors = append(l.Colors, res.ColorRuns...)
		l.BackgroundColors = append(l.BackgroundColors, res.BackgroundColorRuns...)
		l.FontDescriptions = append(l.FontDescriptions, res.FontRuns...)
		l.Underlines = append(l.Underlines, res.UnderlinedRuns...)
		l.Strikethroughs = append(l.Strikethroughs, res.StrikethroughRuns...)
		l.CharacterSpacings = append(l.CharacterSpacings, res.CharacterSpacingRuns...)
		l.BoundedParagraphs = append(l.BoundedParagraphs, res.BoundedParagraphRuns...)
		l.EmbeddedItems = append(l.EmbeddedItems, res.EmbeddedItems...)
		l.Anchors = append(l.Anchors, res.Anchors...)
	} else {
		l.SetText([]rune(s))
	}
	c.replaced()
}

// SetSpannedText replaces the whole text with s and the runs of its spans.
func (c *Controller) SetSpannedText(s *model.SpannableString) {
	if s == nil {
		c.SetText("")
		return
	}
	s.ApplyTo(c.model.Logical)
	c.replaced()
}

func (c *Controller) replaced() {
	c.ready = true
	c.cursor = c.model.Logical.Len()
	c.inPreEdit = false
	c.inherit = true
	c.markDirty(text.Range{End: c.model.Logical.Len()})
	c.invalidate(AllOperations)
	c.checkRuns()
	c.notify()
}

// Text returns the plain text.
func (c *Controller) Text() string {
	return string(c.model.Logical.Text)
}

// NumberOfCharacters returns the length of the text.
func (c *Controller) NumberOfCharacters() text.Length {
	return c.model.Logical.Len()
}

// Model returns the model. It must be treated as read-only.
func (c *Controller) Model() *model.Model {
	return c.model
}

// IsReady reports whether text was set.
func (c *Controller) IsReady() bool {
	return c.ready
}

// Anchors returns a copy of the anchors.
func (c *Controller) Anchors() []text.Anchor {
	return slices.Clone(c.model.Logical.Anchors)
}

// AnchorAt returns the anchor covering the character at index.
func (c *Controller) AnchorAt(index text.CharacterIndex) (text.Anchor, bool) {
	return c.model.Logical.AnchorAt(index)
}

// EmbeddedItems returns a copy of the embedded items.
func (c *Controller) EmbeddedItems() []text.EmbeddedItem {
	return slices.Clone(c.model.Logical.EmbeddedItems)
}

// Operations returns the stages pending for the next Relayout.
func (c *Controller) Operations() OperationsMask {
	return c.ops
}

// SetTextChangedCallback registers fn to run after every text change.
// A nil fn removes the callback.
func (c *Controller) SetTextChangedCallback(fn func()) {
	c.textChanged = fn
}

func (c *Controller) notify() {
	if c.textChanged != nil {
		c.textChanged()
	}
}

// invalidate marks ops pending and drops the cached natural size.
func (c *Controller) invalidate(ops OperationsMask) {
	c.ops |= ops
	c.naturalValid = false
}

// markDirty adds r to the characters to re-script and re-validate.
func (c *Controller) markDirty(r text.Range) {
	if c.clean {
		c.dirty, c.clean = r, false
		return
	}
	c.dirty.Start = min(c.dirty.Start, r.Start)
	c.dirty.End = max(c.dirty.End, r.End)
}

// shiftDirty moves the dirty range across an edit at index.
func (c *Controller) shiftDirty(index text.CharacterIndex, removed, added text.Length) {
	if c.clean {
		return
	}
	end := index + removed
	switch start := c.dirty.Start; {
	case start <= index:
	case start < end:
		c.dirty.Start = index
	default:
		c.dirty.Start = start - removed + added
	}
	switch e := c.dirty.End; {
	case e <= index:
	case e <= end:
		c.dirty.End = index + added
	default:
		c.dirty.End = e - removed + added
	}
}

// checkRuns verifies the model invariants after an edit.
func (c *Controller) checkRuns() {
	err := c.model.Logical.CheckRuns()
	if err == nil {
		return
	}
	if c.cfg.debugChecks {
		panic(err)
	}
	textkit.Logger().Error("controller: text model invariant violated", "error", err)
	c.model.Logical.Clamp()
}
