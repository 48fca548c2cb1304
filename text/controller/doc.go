// Package controller keeps the logical and visual models of a text control
// up to date.
//
// Edits and setters only record which stages are out of date in an
// OperationsMask. Relayout runs the pending stages in order: scripts and
// fonts for the edited paragraphs, line and word breaks, bidirectional
// analysis, shaping, layout and the mapping of colors and decorations to
// glyphs.
//
//	ctrl := controller.New(multilang.New(reg), controller.WithMarkup(true))
//	ctrl.SetText("Hello <color value='green'>world</color>")
//	ctrl.Relayout(text.Size{Width: 200, Height: 40}, text.LayoutDirectionLTR)
//	v := ctrl.Model().Visual
package controller
