package stegmerge

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/stegmerge/rgb"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type encodeFunc func(*bytes.Buffer, image.Image) error

// toRGBA widens p into an opaque image.RGBA. The PNG encoder only writes
// 8-bit truecolor for the standard RGBA models, anything else is 16-bit.
func toRGBA(p *rgb.Image) *image.RGBA {
	b := p.Bounds()
	m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := p.Row(b.Min.Y + y)
		dst := m.Pix[m.PixOffset(0, y):]
		for x := 0; x < b.Dx(); x++ {
			copy(dst[x*4:x*4+3], src[x*3:x*3+3])
			dst[x*4+3] = 0xff
		}
	}
	return m
}

func encodePNG(b *bytes.Buffer, m image.Image) error {
	if p, ok := m.(*rgb.Image); ok {
		m = toRGBA(p)
	}
	return png.Encode(b, m)
}

func encodeBMP(b *bytes.Buffer, m image.Image) error {
	return bmp.Encode(b, m)
}

func encodeTIFF(b *bytes.Buffer, m image.Image) error {
	return tiff.Encode(b, m, &tiff.Options{Compression: tiff.Deflate})
}

// Only lossless formats can carry the lower nibble
var encoders = map[string]encodeFunc{
	".png":  encodePNG,
	".bmp":  encodeBMP,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encoderFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// Load decodes the image at path. PNG, JPEG, GIF, BMP and TIFF are
// recognised but the decoded image must be 8-bit RGB, anything else returns
// ErrUnsupportedColorMode rather than being converted.
func Load(path string) (*rgb.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p, ok := rgb.FromImage(m)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s", ErrUnsupportedColorMode, path, rgb.Name(m))
	}

	return p, nil
}

// Save encodes m to path, choosing the format from the file extension. The
// whole image is encoded before the file is created so a failed encode
// leaves nothing behind.
func Save(path string, m image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if err := enc(&b, m); err != nil {
		return err
	}

	return ioutil.WriteFile(path, b.Bytes(), 0666)
}
