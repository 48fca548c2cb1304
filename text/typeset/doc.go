// Package typeset renders a laid out text model into pixel buffers.
//
// A Typesetter reads the glyphs, positions and style runs the controller
// stored in a model.Model and draws them with bitmaps from a
// fonts.Service. Each Style is one layer: glyphs, shadow, outline,
// background, underline or strikethrough. Render composites the enabled
// layers, CreateImageBuffer draws one layer.
//
// Buffers are L8 (coverage only), RGBA8 or BGRA8 with premultiplied alpha.
//
//	c := controller.New(multilang.New(service))
//	c.SetText("Hello")
//	c.Relayout(size, text.LayoutDirectionLTR)
//	buf, err := typeset.New(c.Model(), service).
//		Render(size, text.LayoutDirectionLTR, typeset.RenderText, false, image.FormatRGBA8)
package typeset
