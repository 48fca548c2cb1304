package controller

import (
	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

// CursorPosition returns the cursor index.
func (c *Controller) CursorPosition() text.CharacterIndex {
	return c.cursor
}

// SetCursorPosition moves the cursor to index, clamped to the text.
// Moving the cursor commits any pre-edit text.
func (c *Controller) SetCursorPosition(index text.CharacterIndex) {
	c.cursor = min(index, c.model.Logical.Len())
	c.inPreEdit = false
}

// InsertText inserts s at the cursor.
//
// A PreEdit insert replaces the previous pre-edit text and stays pending
// until the next Commit insert, which replaces it as well. Inserted text
// takes the style of the character before the cursor.
func (c *Controller) InsertText(s string, insertType InsertType) {
	l := c.model.Logical
	changed := false
	if c.inPreEdit {
		r := c.preEdit.Clamp(l.Len())
		if !r.Empty() {
			c.replace(r.Start, r.Len(), nil)
			changed = true
		}
		c.cursor = r.Start
		c.inPreEdit = false
	}

	runes := []rune(s)
	if len(runes) > 0 {
		index := min(c.cursor, l.Len())
		n := text.Length(len(runes))
		c.replace(index, 0, runes)
		if c.inherit {
			l.ExtendInputStyle(index, n)
		}
		c.cursor = index + n
		if insertType == PreEdit {
			c.preEdit = text.NewRange(index, n)
			c.inPreEdit = true
		}
		changed = true
	}
	c.inherit = true
	if !changed {
		return
	}
	c.ready = true
	c.checkRuns()
	c.notify()
}

// RemoveText removes count characters starting cursorOffset characters
// from the cursor. The range is clamped to the text. It returns whether
// anything was removed.
//
// With isDeletingPreEdit unset, pending pre-edit text is committed first.
func (c *Controller) RemoveText(cursorOffset, count int, updateInputStyle UpdateInputStyleType, isDeletingPreEdit bool) bool {
	l := c.model.Logical
	if !isDeletingPreEdit {
		c.inPreEdit = false
	}
	n := int(l.Len())
	start := min(max(int(c.cursor)+cursorOffset, 0), n)
	end := min(max(start+count, start), n)
	if start == end {
		return false
	}

	removed := text.Length(end - start)
	c.replace(text.CharacterIndex(start), removed, nil)
	switch cur := int(c.cursor); {
	case cur >= end:
		c.cursor -= removed
	case cur > start:
		c.cursor = text.CharacterIndex(start)
	}
	if c.inPreEdit {
		c.preEdit = shrinkRange(c.preEdit, text.CharacterIndex(start), removed)
		c.inPreEdit = !c.preEdit.Empty()
	}
	c.inherit = updateInputStyle == UpdateInputStyle

	c.checkRuns()
	c.notify()
	return true
}

// replace edits the logical model and marks the touched paragraphs.
func (c *Controller) replace(index text.CharacterIndex, removed text.Length, inserted []rune) {
	l := c.model.Logical
	added := text.Length(len(inserted))
	l.ReplaceText(index, removed, inserted)
	c.shiftDirty(index, removed, added)
	c.markDirty(text.Range{Start: index, End: index + added})
	c.invalidate(editOperations)
	textkit.Logger().Debug("controller: text replaced",
		"index", index, "removed", removed, "added", added, "length", l.Len())
}

// shrinkRange maps r across the removal of count characters at index.
func shrinkRange(r text.Range, index text.CharacterIndex, count text.Length) text.Range {
	end := index + count
	shift := func(pos text.CharacterIndex) text.CharacterIndex {
		switch {
		case pos <= index:
			return pos
		case pos < end:
			return index
		default:
			return pos - count
		}
	}
	return text.Range{Start: shift(r.Start), End: shift(r.End)}
}
