package stegmerge

import (
	"fmt"
	"image"

	"github.com/bodgit/stegmerge/rgb"
)

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

// MergeChannel keeps the upper nibble of carrier and stores the upper nibble
// of hidden in the lower nibble. Only the top four bits of hidden survive.
func MergeChannel(carrier, hidden uint8) uint8 {
	return upperNibble(carrier) | upperNibble(hidden)>>4
}

// UnmergeChannel swaps the nibbles of merged. The embedded bits move back to
// the upper nibble and the carrier's upper nibble ends up in the lower one,
// so it is not an exact inverse of MergeChannel.
func UnmergeChannel(merged uint8) uint8 {
	return lowerNibble(merged)<<4 | upperNibble(merged)>>4
}

func checkRGB(m image.Image) (*rgb.Image, error) {
	p, ok := m.(*rgb.Image)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedColorMode, rgb.Name(m))
	}
	return p, nil
}

func checkFits(carrier, hidden image.Rectangle) error {
	if hidden.Dx() > carrier.Dx() || hidden.Dy() > carrier.Dy() {
		return fmt.Errorf("%w: %dx%d does not fit in %dx%d", ErrDimensionMismatch, hidden.Dx(), hidden.Dy(), carrier.Dx(), carrier.Dy())
	}
	return nil
}

// Merge returns a new image the size of carrier with hidden embedded in its
// top-left corner. Pixels outside of the hidden image's area are copied from
// carrier unchanged. Both images must be *rgb.Image.
func Merge(carrier, hidden image.Image) (*rgb.Image, error) {
	if err := checkFits(carrier.Bounds(), hidden.Bounds()); err != nil {
		return nil, err
	}

	c, err := checkRGB(carrier)
	if err != nil {
		return nil, err
	}
	h, err := checkRGB(hidden)
	if err != nil {
		return nil, err
	}

	out := c.Clone()
	hb := h.Bounds()

	if err := transform(image.Rect(0, 0, hb.Dx(), hb.Dy()), func(y int) {
		dst, src := out.Row(y), h.Row(hb.Min.Y+y)
		for i := range src {
			dst[i] = MergeChannel(dst[i], src[i])
		}
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// Unmerge recovers the hidden image from every pixel of merged. The result
// is the same size as merged; only the area originally embedded holds
// meaningful data.
func Unmerge(merged image.Image) (*rgb.Image, error) {
	m, err := checkRGB(merged)
	if err != nil {
		return nil, err
	}

	mb := m.Bounds()
	out := rgb.New(image.Rect(0, 0, mb.Dx(), mb.Dy()))

	if err := transform(out.Bounds(), func(y int) {
		dst, src := out.Row(y), m.Row(mb.Min.Y+y)
		for i := range src {
			dst[i] = UnmergeChannel(src[i])
		}
	}); err != nil {
		return nil, err
	}

	return out, nil
}
