package image

import (
	"image"
	"image/color"
)

// Composite draws src over dst with its top-left corner at (x, y).
// Pixels falling outside dst are clipped.
func Composite(dst, src *Buffer, x, y int) {
	for sy := range src.height {
		dy := y + sy
		if dy < 0 || dy >= dst.height {
			continue
		}
		for sx := range src.width {
			dx := x + sx
			if dx < 0 || dx >= dst.width {
				continue
			}
			dst.Blend(dx, dy, src.At(sx, sy))
		}
	}
}

// DrawImage draws the color image src over dst with its top-left corner at
// (x, y). Every source pixel is scaled by opacity/255.
func DrawImage(dst *Buffer, src image.Image, x, y int, opacity uint8) {
	b := src.Bounds()
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		dy := y + sy - b.Min.Y
		if dy < 0 || dy >= dst.height {
			continue
		}
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx := x + sx - b.Min.X
			if dx < 0 || dx >= dst.width {
				continue
			}
			c := color.RGBAModel.Convert(src.At(sx, sy)).(color.RGBA)
			dst.BlendCoverage(dx, dy, c, opacity)
		}
	}
}

// DrawMask fills the coverage of mask with the premultiplied color c,
// placing the top-left corner of the mask at (x, y). The alpha channel of
// mask is the coverage.
func DrawMask(dst *Buffer, mask image.Image, x, y int, c color.RGBA) {
	b := mask.Bounds()
	alpha, isAlpha := mask.(*image.Alpha)
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		dy := y + sy - b.Min.Y
		if dy < 0 || dy >= dst.height {
			continue
		}
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx := x + sx - b.Min.X
			if dx < 0 || dx >= dst.width {
				continue
			}
			var cov uint8
			if isAlpha {
				cov = alpha.AlphaAt(sx, sy).A
			} else {
				_, _, _, a := mask.At(sx, sy).RGBA()
				cov = uint8(a >> 8)
			}
			dst.BlendCoverage(dx, dy, c, cov)
		}
	}
}
