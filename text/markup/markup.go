package markup

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

// Defaults holds the styles applied by tags without explicit attributes.
type Defaults struct {
	// AnchorColor is the color of anchors without a color attribute.
	AnchorColor textkit.Color
	// AnchorClickedColor is the color of clicked anchors without a
	// clicked-color attribute.
	AnchorClickedColor textkit.Color
}

// DefaultDefaults returns blue anchors turning magenta once clicked.
func DefaultDefaults() Defaults {
	return Defaults{
		AnchorColor:        textkit.Blue,
		AnchorClickedColor: textkit.Magenta,
	}
}

// Result is the output of Process.
//
// Runs of one kind are stored in opening order, so an inner run always
// follows the outer run it is nested in. Runs of one kind may overlap;
// when merged per character, later runs override earlier ones.
type Result struct {
	Text []rune

	ColorRuns            []text.ColorRun
	FontRuns             []text.FontDescriptionRun
	UnderlinedRuns       []text.UnderlinedCharacterRun
	BackgroundColorRuns  []text.ColorRun
	StrikethroughRuns    []text.StrikethroughCharacterRun
	CharacterSpacingRuns []text.CharacterSpacingCharacterRun
	BoundedParagraphRuns []text.BoundedParagraphRun

	EmbeddedItems []text.EmbeddedItem
	Anchors       []text.Anchor
}

// HasRuns reports whether processing produced any run, item or anchor.
func (r *Result) HasRuns() bool {
	return len(r.ColorRuns) > 0 ||
		len(r.FontRuns) > 0 ||
		len(r.UnderlinedRuns) > 0 ||
		len(r.BackgroundColorRuns) > 0 ||
		len(r.StrikethroughRuns) > 0 ||
		len(r.CharacterSpacingRuns) > 0 ||
		len(r.BoundedParagraphRuns) > 0 ||
		len(r.EmbeddedItems) > 0 ||
		len(r.Anchors) > 0
}

// Process parses markup into plain text and runs.
// A zero Defaults value is replaced by DefaultDefaults.
func Process(markup string, defaults Defaults) *Result {
	if defaults == (Defaults{}) {
		defaults = DefaultDefaults()
	}
	p := &processor{defaults: defaults, res: &Result{}}
	p.run(markup)
	p.finish()
	return p.res
}

// openTag is an element waiting for its close tag.
// Each closer sets the length of one run the element created.
type openTag struct {
	name    string
	closers []func(end text.CharacterIndex)
}

type processor struct {
	defaults Defaults
	res      *Result
	stack    []openTag
	pending  strings.Builder

	// breakBeforeText is set when a paragraph closed and the next
	// character must start a new one.
	breakBeforeText bool
}

func (p *processor) run(s string) {
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && (s[i+1] == '<' || s[i+1] == '>'):
			p.pending.WriteByte(s[i+1])
			i += 2
		case c == '<':
			end := tagEnd(s, i+1)
			if end < 0 {
				textkit.Logger().Warn("markup: unterminated tag", "offset", i)
				p.pending.WriteByte(c)
				i++
				continue
			}
			p.flush()
			if !p.tag(s[i+1 : end]) {
				textkit.Logger().Warn("markup: malformed tag", "tag", s[i:end+1])
				p.pending.WriteString(s[i : end+1])
			}
			i = end + 1
		default:
			p.pending.WriteByte(c)
			i++
		}
	}
	p.flush()
}

// flush decodes the pending raw text and appends it to the result.
func (p *processor) flush() {
	if p.pending.Len() == 0 {
		return
	}
	decoded := html.UnescapeString(p.pending.String())
	p.pending.Reset()
	for _, r := range decoded {
		p.appendRune(r)
	}
}

func (p *processor) appendRune(r rune) {
	if p.breakBeforeText {
		p.breakBeforeText = false
		if !text.IsNewParagraph(r) {
			p.res.Text = append(p.res.Text, '\n')
		}
	}
	p.res.Text = append(p.res.Text, r)
}

func (p *processor) position() text.CharacterIndex {
	return text.CharacterIndex(len(p.res.Text))
}

// tag handles the content between '<' and '>'.
// It returns false if the content is not a well-formed tag.
func (p *processor) tag(content string) bool {
	if strings.HasPrefix(content, "/") {
		name, attrs, ok := parseTag(content[1:])
		if !ok || len(attrs) > 0 {
			return false
		}
		p.close(name)
		return true
	}
	selfClosing := strings.HasSuffix(content, "/")
	if selfClosing {
		content = content[:len(content)-1]
	}
	name, attrs, ok := parseTag(content)
	if !ok {
		return false
	}
	p.open(name, attrs, selfClosing)
	return true
}

func (p *processor) open(name string, attrs []attribute, selfClosing bool) {
	if name == itemTag {
		p.item(attrs)
		return
	}
	h, ok := handlers[name]
	if !ok {
		textkit.Logger().Debug("markup: unknown tag ignored", "tag", name)
		return
	}
	if p.breakBeforeText {
		p.appendRune('\n')
	}
	t := openTag{name: name, closers: h(p, attrs)}
	if selfClosing {
		p.closeTag(t)
		return
	}
	p.stack = append(p.stack, t)
}

// close pops the innermost open tag with the given name.
func (p *processor) close(name string) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].name != name {
			continue
		}
		t := p.stack[i]
		p.stack = append(p.stack[:i], p.stack[i+1:]...)
		p.closeTag(t)
		if name == paragraphTag {
			p.breakBeforeText = true
		}
		return
	}
	if name != itemTag {
		textkit.Logger().Debug("markup: close tag without open tag", "tag", name)
	}
}

func (p *processor) closeTag(t openTag) {
	end := p.position()
	for _, c := range t.closers {
		c(end)
	}
}

// finish closes the tags left open and drops empty runs.
func (p *processor) finish() {
	for len(p.stack) > 0 {
		t := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		p.closeTag(t)
	}
	r := p.res
	r.ColorRuns = text.DropEmptyRuns(r.ColorRuns)
	r.FontRuns = text.DropEmptyRuns(r.FontRuns)
	r.UnderlinedRuns = text.DropEmptyRuns(r.UnderlinedRuns)
	r.BackgroundColorRuns = text.DropEmptyRuns(r.BackgroundColorRuns)
	r.StrikethroughRuns = text.DropEmptyRuns(r.StrikethroughRuns)
	r.CharacterSpacingRuns = text.DropEmptyRuns(r.CharacterSpacingRuns)
	r.BoundedParagraphRuns = text.DropEmptyRuns(r.BoundedParagraphRuns)

	anchors := r.Anchors[:0]
	for _, a := range r.Anchors {
		if a.EndIndex > a.StartIndex {
			anchors = append(anchors, a)
		}
	}
	r.Anchors = anchors
}

// tagEnd returns the index of the '>' closing a tag whose content starts at
// from, skipping quoted attribute values. It returns -1 if there is none.
func tagEnd(s string, from int) int {
	var quote byte
	for i := from; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '>':
			return i
		case c == '<':
			return -1
		}
	}
	return -1
}
