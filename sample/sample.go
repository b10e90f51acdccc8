/*
Package sample generates the deterministic images used to try out merging
by hand: a 200 by 200 solid blue carrier and a 50 by 50 solid red image
with a 3 pixel wide black square outline to hide inside it.
*/
package sample

import (
	"image"
	"path/filepath"

	"github.com/bodgit/stegmerge"
	"github.com/bodgit/stegmerge/rgb"
)

const (
	// CarrierFilename is the name Generate gives the carrier image
	CarrierFilename = "base_image.png"
	// HiddenFilename is the name Generate gives the image to hide
	HiddenFilename = "hidden_image.png"
	// PalettedFilename is the name Generate gives the paletted image
	PalettedFilename = "hidden_image_paletted.png"

	carrierSize  = 200
	hiddenSize   = 50
	outlineMin   = 10
	outlineMax   = 40
	outlineWidth = 3
	paletteSize  = 16
)

var (
	// Black is rgb.RGB{0, 0, 0}
	Black = rgb.RGB{R: 0x00, G: 0x00, B: 0x00}
	// Red is rgb.RGB{255, 0, 0}
	Red = rgb.RGB{R: 0xff, G: 0x00, B: 0x00}
	// Blue is rgb.RGB{0, 0, 255}
	Blue = rgb.RGB{R: 0x00, G: 0x00, B: 0xff}
)

// Solid returns a w by h image filled with c.
func Solid(w, h int, c rgb.RGB) *rgb.Image {
	m := rgb.New(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGB(x, y, c)
		}
	}
	return m
}

// Outline draws the border of r, including both corners, in c. The border
// is width pixels thick and grows inwards from the edge of r.
func Outline(m *rgb.Image, r image.Rectangle, c rgb.RGB, width int) {
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if x < r.Min.X+width || x > r.Max.X-width || y < r.Min.Y+width || y > r.Max.Y-width {
				m.SetRGB(x, y, c)
			}
		}
	}
}

// Gradient returns a w by h image fading from red to blue left to right
// with green increasing top to bottom.
func Gradient(w, h int) *rgb.Image {
	m := rgb.New(image.Rect(0, 0, w, h))
	dx, dy := w-1, h-1
	if dx < 1 {
		dx = 1
	}
	if dy < 1 {
		dy = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGB(x, y, rgb.RGB{
				R: uint8(0xff * (w - 1 - x) / dx),
				G: uint8(0xff * y / dy),
				B: uint8(0xff * x / dx),
			})
		}
	}
	return m
}

// Carrier returns the sample carrier image.
func Carrier() *rgb.Image {
	return Solid(carrierSize, carrierSize, Blue)
}

// Hidden returns the sample image to hide.
func Hidden() *rgb.Image {
	m := Solid(hiddenSize, hiddenSize, Red)
	Outline(m, image.Rect(outlineMin, outlineMin, outlineMax, outlineMax), Black, outlineWidth)
	return m
}

// Generate writes the sample images to dir, which must exist, and returns
// the paths written. If paletted is true a quantized gradient the size of
// the hidden image is also written, which merging should refuse.
func Generate(dir string, paletted bool) ([]string, error) {
	images := []struct {
		name string
		m    image.Image
	}{
		{CarrierFilename, Carrier()},
		{HiddenFilename, Hidden()},
	}
	if paletted {
		images = append(images, struct {
			name string
			m    image.Image
		}{PalettedFilename, Paletted(Gradient(hiddenSize, hiddenSize), paletteSize)})
	}

	var files []string
	for _, i := range images {
		file := filepath.Join(dir, i.name)
		if err := stegmerge.Save(file, i.m); err != nil {
			return files, err
		}
		files = append(files, file)
	}

	return files, nil
}
