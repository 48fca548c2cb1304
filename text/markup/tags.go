package markup

import (
	"strings"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

// Tag names.
const (
	colorTag            = "color"
	fontTag             = "font"
	boldTag             = "b"
	italicTag           = "i"
	underlineTag        = "u"
	strikethroughTag    = "s"
	backgroundTag       = "background"
	spanTag             = "span"
	paragraphTag        = "p"
	characterSpacingTag = "char-spacing"
	itemTag             = "item"
	anchorTag           = "a"
)

type closer = func(end text.CharacterIndex)

// handler opens the runs of a tag and returns the functions closing them.
type handler func(p *processor, attrs []attribute) []closer

var handlers = map[string]handler{
	colorTag:            handleColor,
	fontTag:             handleFont,
	boldTag:             handleBold,
	italicTag:           handleItalic,
	underlineTag:        handleUnderline,
	strikethroughTag:    handleStrikethrough,
	backgroundTag:       handleBackground,
	spanTag:             handleSpan,
	paragraphTag:        handleParagraph,
	characterSpacingTag: handleCharacterSpacing,
	anchorTag:           handleAnchor,
}

// openRun appends run to runs starting at the current position.
// The returned closer sets its length once the end is known.
func openRun[T any, P interface {
	*T
	Resize(text.Length)
}](runs *[]T, run T, start text.CharacterIndex) closer {
	i := len(*runs)
	*runs = append(*runs, run)
	return func(end text.CharacterIndex) {
		P(&(*runs)[i]).Resize(end - start)
	}
}

func (p *processor) here() text.CharacterRun {
	return text.CharacterRun{Index: p.position()}
}

func (p *processor) openColor(c textkit.Color) closer {
	return openRun(&p.res.ColorRuns, text.ColorRun{CharacterRun: p.here(), Color: c}, p.position())
}

func (p *processor) openBackground(c textkit.Color) closer {
	return openRun(&p.res.BackgroundColorRuns, text.ColorRun{CharacterRun: p.here(), Color: c}, p.position())
}

func (p *processor) openFont(run text.FontDescriptionRun) closer {
	run.CharacterRun = p.here()
	return openRun(&p.res.FontRuns, run, p.position())
}

func (p *processor) openUnderline(props text.UnderlineProperties) closer {
	run := text.UnderlinedCharacterRun{CharacterRun: p.here(), Properties: props}
	return openRun(&p.res.UnderlinedRuns, run, p.position())
}

func (p *processor) openStrikethrough(props text.StrikethroughProperties) closer {
	run := text.StrikethroughCharacterRun{CharacterRun: p.here(), Properties: props}
	return openRun(&p.res.StrikethroughRuns, run, p.position())
}

func (p *processor) openCharacterSpacing(v float32) closer {
	run := text.CharacterSpacingCharacterRun{CharacterRun: p.here(), Value: v}
	return openRun(&p.res.CharacterSpacingRuns, run, p.position())
}

func logIgnored(tag string, a attribute) {
	textkit.Logger().Debug("markup: attribute ignored", "tag", tag, "attribute", a.name)
}

func handleColor(p *processor, attrs []attribute) []closer {
	for _, a := range attrs {
		if a.name != "value" {
			logIgnored(colorTag, a)
			continue
		}
		if c, ok := parseColor(a.name, a.value); ok {
			return []closer{p.openColor(c)}
		}
	}
	return nil
}

func handleBackground(p *processor, attrs []attribute) []closer {
	for _, a := range attrs {
		if a.name != "value" {
			logIgnored(backgroundTag, a)
			continue
		}
		if c, ok := parseColor(a.name, a.value); ok {
			return []closer{p.openBackground(c)}
		}
	}
	return nil
}

func handleFont(p *processor, attrs []attribute) []closer {
	var run text.FontDescriptionRun
	defined := false
	for _, a := range attrs {
		if setFontAttribute(&run, a.name, a.value) {
			defined = true
		} else {
			logIgnored(fontTag, a)
		}
	}
	if !defined {
		return nil
	}
	return []closer{p.openFont(run)}
}

func handleBold(p *processor, _ []attribute) []closer {
	return []closer{p.openFont(text.FontDescriptionRun{
		Weight:        text.FontWeightBold,
		WeightDefined: true,
	})}
}

func handleItalic(p *processor, _ []attribute) []closer {
	return []closer{p.openFont(text.FontDescriptionRun{
		Slant:        text.FontSlantItalic,
		SlantDefined: true,
	})}
}

func handleUnderline(p *processor, attrs []attribute) []closer {
	var props text.UnderlineProperties
	for _, a := range attrs {
		if !setUnderlineAttribute(&props, a.name, a.value) {
			logIgnored(underlineTag, a)
		}
	}
	return []closer{p.openUnderline(props)}
}

func handleStrikethrough(p *processor, attrs []attribute) []closer {
	var props text.StrikethroughProperties
	for _, a := range attrs {
		if !setStrikethroughAttribute(&props, a.name, a.value) {
			logIgnored(strikethroughTag, a)
		}
	}
	return []closer{p.openStrikethrough(props)}
}

// handleSpan maps prefixed attributes onto the runs of the other tags.
// Only the runs with at least one valid attribute are produced.
func handleSpan(p *processor, attrs []attribute) []closer {
	var (
		font             text.FontDescriptionRun
		underline        text.UnderlineProperties
		strike           text.StrikethroughProperties
		color, bg        textkit.Color
		spacing          float32
		hasFont, hasLine bool
		hasStrike        bool
		hasColor, hasBg  bool
		hasSpacing       bool
	)
	for _, a := range attrs {
		ok := false
		switch {
		case strings.HasPrefix(a.name, "font-"):
			ok = setFontAttribute(&font, strings.TrimPrefix(a.name, "font-"), a.value)
			hasFont = hasFont || ok
		case strings.HasPrefix(a.name, "u-"):
			ok = setUnderlineAttribute(&underline, strings.TrimPrefix(a.name, "u-"), a.value)
			hasLine = hasLine || ok
		case strings.HasPrefix(a.name, "s-"):
			ok = setStrikethroughAttribute(&strike, strings.TrimPrefix(a.name, "s-"), a.value)
			hasStrike = hasStrike || ok
		case a.name == "text-color":
			var c textkit.Color
			if c, ok = parseColor(a.name, a.value); ok {
				color, hasColor = c, true
			}
		case a.name == "background-color":
			var c textkit.Color
			if c, ok = parseColor(a.name, a.value); ok {
				bg, hasBg = c, true
			}
		case a.name == "char-space-value":
			var v float32
			if v, ok = parseFloat(a.name, a.value); ok {
				spacing, hasSpacing = v, true
			}
		}
		if !ok {
			logIgnored(spanTag, a)
		}
	}

	var closers []closer
	if hasFont {
		closers = append(closers, p.openFont(font))
	}
	if hasColor {
		closers = append(closers, p.openColor(color))
	}
	if hasBg {
		closers = append(closers, p.openBackground(bg))
	}
	if hasLine {
		closers = append(closers, p.openUnderline(underline))
	}
	if hasStrike {
		closers = append(closers, p.openStrikethrough(strike))
	}
	if hasSpacing {
		closers = append(closers, p.openCharacterSpacing(spacing))
	}
	return closers
}

// handleParagraph starts a bounded paragraph on a new line.
func handleParagraph(p *processor, attrs []attribute) []closer {
	if n := len(p.res.Text); n > 0 && !text.IsNewParagraph(p.res.Text[n-1]) {
		p.appendRune('\n')
	}
	run := text.BoundedParagraphRun{CharacterRun: p.here()}
	for _, a := range attrs {
		switch a.name {
		case "align":
			if h, ok := text.ParseHorizontalAlignment(strings.ToLower(strings.TrimSpace(a.value))); ok {
				run.HorizontalAlignment, run.HorizontalAlignmentDefined = h, true
				continue
			}
		case "rel-line-height":
			if v, ok := parseFloat(a.name, a.value); ok && v > 0 {
				run.RelativeLineSize, run.RelativeLineSizeDefined = v, true
				continue
			}
		}
		logIgnored(paragraphTag, a)
	}
	return []closer{openRun(&p.res.BoundedParagraphRuns, run, p.position())}
}

func handleCharacterSpacing(p *processor, attrs []attribute) []closer {
	for _, a := range attrs {
		if a.name != "value" {
			logIgnored(characterSpacingTag, a)
			continue
		}
		if v, ok := parseFloat(a.name, a.value); ok {
			return []closer{p.openCharacterSpacing(v)}
		}
	}
	return nil
}

// handleAnchor opens an anchor drawn in the anchor color and underlined.
func handleAnchor(p *processor, attrs []attribute) []closer {
	anchor := text.Anchor{
		StartIndex:   p.position(),
		Color:        p.defaults.AnchorColor,
		ClickedColor: p.defaults.AnchorClickedColor,
	}
	for _, a := range attrs {
		switch a.name {
		case "href":
			anchor.Href = a.value
			continue
		case "color":
			if c, ok := parseColor(a.name, a.value); ok {
				anchor.Color = c
				continue
			}
		case "clicked-color":
			if c, ok := parseColor(a.name, a.value); ok {
				anchor.ClickedColor = c
				continue
			}
		}
		logIgnored(anchorTag, a)
	}

	i := len(p.res.Anchors)
	p.res.Anchors = append(p.res.Anchors, anchor)
	return []closer{
		func(end text.CharacterIndex) { p.res.Anchors[i].EndIndex = end },
		p.openColor(anchor.Color),
		p.openUnderline(text.UnderlineProperties{
			Color:        anchor.Color,
			ColorDefined: true,
		}),
	}
}

// item inserts an embedded item placeholder. Items never enclose text.
func (p *processor) item(attrs []attribute) {
	it := text.EmbeddedItem{}
	for _, a := range attrs {
		switch a.name {
		case "url":
			it.URL = a.value
			continue
		case "width":
			if v, ok := parseFloat(a.name, a.value); ok && v >= 0 {
				it.Width = v
				continue
			}
		case "height":
			if v, ok := parseFloat(a.name, a.value); ok && v >= 0 {
				it.Height = v
				continue
			}
		case "color-blending":
			switch strings.ToLower(a.value) {
			case "multiply":
				it.ColorBlending = text.ColorBlendingMultiply
				continue
			case "none":
				it.ColorBlending = text.ColorBlendingNone
				continue
			}
		}
		logIgnored(itemTag, a)
	}
	p.appendRune(text.ObjectReplacementCharacter)
	it.CharacterIndex = p.position() - 1
	p.res.EmbeddedItems = append(p.res.EmbeddedItems, it)
}
