package stegmerge_test

import (
	"errors"
	"image"
	"testing"

	"github.com/bodgit/stegmerge"
	"github.com/bodgit/stegmerge/rgb"
	"github.com/bodgit/stegmerge/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patterned(r image.Rectangle) *rgb.Image {
	m := rgb.New(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetRGB(x, y, rgb.RGB{
				R: uint8((x * 17) ^ (y * 31)),
				G: uint8((x * 43) + (y * 13)),
				B: uint8((x * 7) ^ (y * 11)),
			})
		}
	}
	return m
}

func TestMergeChannel(t *testing.T) {
	for c := 0; c < 256; c++ {
		for h := 0; h < 256; h++ {
			m := stegmerge.MergeChannel(uint8(c), uint8(h))
			if m&0x0f != uint8(h)>>4 || m&0xf0 != uint8(c)&0xf0 {
				t.Fatalf("MergeChannel(%#02x, %#02x) = %#02x", c, h, m)
			}
		}
	}
}

func TestUnmergeChannel(t *testing.T) {
	for i := 0; i < 256; i++ {
		m := uint8(i)
		u := stegmerge.UnmergeChannel(m)
		assert.Equal(t, (m&0x0f)<<4|(m&0xf0)>>4, u)

		// Only bytes with matching nibbles are unchanged
		assert.Equal(t, m>>4 == m&0x0f, u == m, "%#02x", m)
	}

	// The carrier's upper nibble leaks into the recovered lower nibble
	assert.Equal(t, uint8(0xa1), stegmerge.UnmergeChannel(stegmerge.MergeChannel(0x12, 0xab)))
}

func TestMerge(t *testing.T) {
	carrier, hidden := sample.Carrier(), sample.Hidden()

	merged, err := stegmerge.Merge(carrier, hidden)
	require.NoError(t, err)
	require.Equal(t, carrier.Bounds(), merged.Bounds())

	// (0x00&0xf0|0xff>>4, 0x00&0xf0|0x00>>4, 0xff&0xf0|0x00>>4)
	assert.Equal(t, rgb.RGB{R: 0x0f, G: 0x00, B: 0xf0}, merged.RGBAt(0, 0))
	// Black outline
	assert.Equal(t, rgb.RGB{R: 0x00, G: 0x00, B: 0xf0}, merged.RGBAt(10, 10))
	assert.Equal(t, sample.Blue, merged.RGBAt(100, 100))

	hb := hidden.Bounds()
	for y := 0; y < carrier.Bounds().Dy(); y++ {
		for x := 0; x < carrier.Bounds().Dx(); x++ {
			if (image.Point{x, y}).In(hb) {
				continue
			}
			if merged.RGBAt(x, y) != carrier.RGBAt(x, y) {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, merged.RGBAt(x, y), carrier.RGBAt(x, y))
			}
		}
	}

	// Inputs are left alone
	assert.Equal(t, sample.Carrier().Pix, carrier.Pix)
	assert.Equal(t, sample.Hidden().Pix, hidden.Pix)
}

func TestMergeUnmerge(t *testing.T) {
	for _, tc := range []struct {
		name            string
		carrier, hidden *rgb.Image
	}{
		{"sample", sample.Carrier(), sample.Hidden()},
		{"same size", patterned(image.Rect(0, 0, 64, 48)), patterned(image.Rect(0, 0, 64, 48))},
		{"parallel", patterned(image.Rect(0, 0, 400, 300)), patterned(image.Rect(0, 0, 310, 290))},
		{"offset", patterned(image.Rect(5, 7, 105, 87)), patterned(image.Rect(-3, 2, 47, 32))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			merged, err := stegmerge.Merge(tc.carrier, tc.hidden)
			require.NoError(t, err)
			assert.Equal(t, image.Pt(0, 0), merged.Bounds().Min)

			recovered, err := stegmerge.Unmerge(merged)
			require.NoError(t, err)
			assert.Equal(t, merged.Bounds(), recovered.Bounds())

			cb, hb := tc.carrier.Bounds(), tc.hidden.Bounds()
			for y := 0; y < cb.Dy(); y++ {
				for x := 0; x < cb.Dx(); x++ {
					c := tc.carrier.RGBAt(cb.Min.X+x, cb.Min.Y+y)
					m := merged.RGBAt(x, y)
					r := recovered.RGBAt(x, y)

					want := c
					if x < hb.Dx() && y < hb.Dy() {
						h := tc.hidden.RGBAt(hb.Min.X+x, hb.Min.Y+y)
						want = rgb.RGB{
							R: stegmerge.MergeChannel(c.R, h.R),
							G: stegmerge.MergeChannel(c.G, h.G),
							B: stegmerge.MergeChannel(c.B, h.B),
						}
						if r.R&0xf0 != h.R&0xf0 || r.G&0xf0 != h.G&0xf0 || r.B&0xf0 != h.B&0xf0 {
							t.Fatalf("recovered (%d, %d) = %v, hidden %v", x, y, r, h)
						}
					}
					if m != want {
						t.Fatalf("merged (%d, %d) = %v, want %v", x, y, m, want)
					}
					if r.R != stegmerge.UnmergeChannel(m.R) || r.G != stegmerge.UnmergeChannel(m.G) || r.B != stegmerge.UnmergeChannel(m.B) {
						t.Fatalf("recovered (%d, %d) = %v from %v", x, y, r, m)
					}
				}
			}
		})
	}
}

func TestMergeDimensionMismatch(t *testing.T) {
	carrier := sample.Carrier()
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 201, 10),
		image.Rect(0, 0, 10, 201),
		image.Rect(0, 0, 201, 201),
	} {
		merged, err := stegmerge.Merge(carrier, rgb.New(r))
		assert.Nil(t, merged)
		assert.True(t, errors.Is(err, stegmerge.ErrDimensionMismatch), "%v", err)
		assert.Equal(t, stegmerge.KindValue, stegmerge.KindOf(err))
	}
}

func TestUnsupportedColorMode(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	for _, tc := range []struct {
		name            string
		carrier, hidden image.Image
	}{
		{"rgba carrier", image.NewRGBA(r), rgb.New(r)},
		{"gray carrier", image.NewGray(r), rgb.New(r)},
		{"nrgba hidden", rgb.New(r), image.NewNRGBA(r)},
		{"gray hidden", rgb.New(r), image.NewGray(r)},
		{"paletted hidden", rgb.New(r), sample.Paletted(rgb.New(r), 16)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			merged, err := stegmerge.Merge(tc.carrier, tc.hidden)
			assert.Nil(t, merged)
			assert.True(t, errors.Is(err, stegmerge.ErrUnsupportedColorMode), "%v", err)
		})
	}

	for _, m := range []image.Image{image.NewRGBA(r), image.NewGray(r), image.NewCMYK(r)} {
		recovered, err := stegmerge.Unmerge(m)
		assert.Nil(t, recovered)
		assert.True(t, errors.Is(err, stegmerge.ErrUnsupportedColorMode), "%v", err)
	}
}
