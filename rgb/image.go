/*
Package rgb implements an in-memory image with three 8-bit channels per
pixel and no alpha.

Pixels are stored row-major as consecutive R, G, B bytes. Unlike
image.RGBA there is no room for transparency, so every image is opaque and
a pixel is exactly the three values the merge codec operates on.
*/
package rgb

import (
	"image"
	"image/color"
)

const channels = 3

// Image is an in-memory image whose At method returns RGB values.
type Image struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// New returns a new Image with the given bounds.
func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]uint8, channels*r.Dx()*r.Dy()),
		Stride: channels * r.Dx(),
		Rect:   r,
	}
}

func (p *Image) ColorModel() color.Model { return Model }

func (p *Image) Bounds() image.Rectangle { return p.Rect }

func (p *Image) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt returns the pixel at (x, y), or black if it is out of bounds.
func (p *Image) RGBAt(x, y int) RGB {
	if !(image.Point{x, y}.In(p.Rect)) {
		return RGB{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+channels : i+channels]
	return RGB{s[0], s[1], s[2]}
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*channels
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.SetRGB(x, y, Model.Convert(c).(RGB))
}

func (p *Image) SetRGB(x, y int, c RGB) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+channels : i+channels]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Image{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &Image{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque always returns true, there is no alpha channel.
func (p *Image) Opaque() bool {
	return true
}

// Row returns the pixel bytes of row y, which must be within bounds.
func (p *Image) Row(y int) []uint8 {
	i := p.PixOffset(p.Rect.Min.X, y)
	return p.Pix[i : i+channels*p.Rect.Dx() : i+channels*p.Rect.Dx()]
}

// Clone returns a copy of p with its top-left corner moved to (0, 0).
func (p *Image) Clone() *Image {
	dup := New(image.Rect(0, 0, p.Rect.Dx(), p.Rect.Dy()))
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		copy(dup.Row(y-p.Rect.Min.Y), p.Row(y))
	}
	return dup
}
