// Package text defines the data model shared by the text pipeline.
//
// Text is held in logical order as a sequence of code points. Styling and
// derived information are attached as runs: half-open character ranges
// carrying a typed payload (color, font description, underline, script,
// resolved font, ...). The helpers in this package keep runs valid while
// the text is edited:
//
//	runs = text.InsertIntoRuns(runs, index, inserted)
//	runs = text.RemoveFromRuns(runs, index, removed)
//
// Sub-packages build the pipeline on top of these types: markup parses
// annotated strings into runs, multilang segments scripts and validates
// fonts, model owns the logical and visual state, controller drives
// relayout, async runs layout off the caller's goroutine and typeset
// rasterizes the result.
package text
