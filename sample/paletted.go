package sample

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
)

func uniqueColors(m image.Image, max int) (color.Palette, bool) {
	b := m.Bounds()
	seen := make(map[color.RGBA]struct{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)] = struct{}{}
			if len(seen) > max {
				return nil, false
			}
		}
	}
	p := make(color.Palette, 0, len(seen))
	for c := range seen {
		p = append(p, c)
	}
	sort.Slice(p, func(i, j int) bool {
		ci, cj := p[i].(color.RGBA), p[j].(color.RGBA)
		if ci.R != cj.R {
			return ci.R < cj.R
		}
		if ci.G != cj.G {
			return ci.G < cj.G
		}
		return ci.B < cj.B
	})
	return p, true
}

// Paletted returns m reduced to a palette of at most colors entries. Images
// that already use few enough colors keep them exactly, otherwise a median
// cut quantizer picks the palette.
func Paletted(m image.Image, colors int) *image.Paletted {
	b := m.Bounds()

	p, ok := uniqueColors(m, colors)
	if !ok {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, colors), m)
	}

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	return pm
}
