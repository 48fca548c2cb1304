// Package model holds the state of a text control.
//
// The LogicalModel stores the characters in logical order together with
// their typed runs: scripts, resolved fonts, colors, font descriptions,
// decorations and paragraph properties. The VisualModel stores the glyphs
// produced by shaping, their positions and the laid out lines.
//
// A SpannableString is a string with spans attached to character ranges.
// Spans are lowered to logical model runs when a controller consumes it.
package model
