// Package textkit is a multi-language text shaping, styling and rendering
// pipeline for text controls such as labels, editors and fields.
//
// # Overview
//
// textkit turns a logical character sequence plus markup or spans into
// positioned, styled glyphs and finally a rasterized pixel buffer. It supports
// live editing, asynchronous layout and runtime script/font fallback for mixed
// language text (Latin, Arabic, CJK, emoji).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textkit/text/controller"
//	    "github.com/gogpu/textkit/text/fonts"
//	    "github.com/gogpu/textkit/text/multilang"
//	)
//
//	reg := fonts.NewRegistry()
//	_ = fonts.RegisterGoFonts(reg)
//
//	ctrl := controller.New(multilang.New(reg), controller.WithMarkup(true))
//	ctrl.SetText("Hello <color value='red'>world</color>")
//	ctrl.Relayout(text.Size{Width: 400, Height: 100}, text.LayoutDirectionLTR)
//
// # Architecture
//
// The library is organized into:
//   - text: core data types (runs, scripts, font descriptions)
//   - text/markup: markup processor producing plain text plus style runs
//   - text/multilang: script segmentation and font validation with fallback
//   - text/model: logical model, visual model and spannable strings
//   - text/controller: edit state machine driving incremental relayout
//   - text/async: cancellable off-thread layout on a bounded loader pool
//   - text/typeset: compositing glyphs and decorations into pixel buffers
//
// # Logging
//
// textkit produces no log output by default. Use [SetLogger] to enable it.
package textkit
