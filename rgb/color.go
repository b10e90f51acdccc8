package rgb

import (
	"image"
	"image/color"
)

// RGB represents a fully opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// Model converts any color to RGB, discarding alpha after it has been
// premultiplied.
var Model color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// FromImage returns m as an Image if it already holds three 8-bit channels
// and no meaningful alpha. Only the storage is normalized, colors are never
// converted between models, so gray, paletted, CMYK, 16-bit and
// translucent images are refused and ok is false.
func FromImage(m image.Image) (p *Image, ok bool) {
	switch src := m.(type) {
	case *Image:
		return src.Clone(), true
	case *image.RGBA:
		if !src.Opaque() {
			return nil, false
		}
		b := src.Bounds()
		p = New(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			row := p.Row(y)
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < b.Dx(); x++ {
				copy(row[x*channels:x*channels+channels], s[x*4:x*4+channels])
			}
		}
		return p, true
	case *image.YCbCr:
		b := src.Bounds()
		p = New(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := src.YCbCrAt(b.Min.X+x, b.Min.Y+y)
				r, g, bl := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
				p.SetRGB(x, y, RGB{r, g, bl})
			}
		}
		return p, true
	}
	return nil, false
}

// Name returns a short human readable name for the color model of m, used
// in error messages.
func Name(m image.Image) string {
	switch m.(type) {
	case *Image:
		return "RGB"
	case *image.RGBA:
		return "RGBA"
	case *image.RGBA64:
		return "RGBA64"
	case *image.NRGBA:
		return "NRGBA"
	case *image.NRGBA64:
		return "NRGBA64"
	case *image.Gray:
		return "Gray"
	case *image.Gray16:
		return "Gray16"
	case *image.Alpha:
		return "Alpha"
	case *image.Alpha16:
		return "Alpha16"
	case *image.CMYK:
		return "CMYK"
	case *image.Paletted:
		return "Paletted"
	case *image.YCbCr:
		return "YCbCr"
	case *image.NYCbCrA:
		return "NYCbCrA"
	default:
		return "<unknown>"
	}
}
