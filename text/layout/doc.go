// Package layout breaks shaped glyphs into lines and positions them.
//
// The engine reads a model.Model without modifying it and returns fresh
// lines, glyph positions and advances, so the same model can be measured
// at several widths. Lines are broken greedily at the line break
// opportunities of the logical model (word mode) or at any cluster boundary
// (character mode). Each line is then reordered visually with the embedding
// levels of its bidirectional paragraph.
package layout
