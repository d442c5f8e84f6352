// Package pngio reads image containers into the flat RGB pixel buffers
// the steg core operates on, and writes buffers back out as lossless PNG.
//
// Decoding accepts any format registered with the image package (PNG,
// JPEG, and GIF are registered here); output is always PNG, because an
// LSB-embedded payload only survives byte-exact re-emission. The package
// also carries the extension whitelists the shells use to reject
// unsupported or lossy targets before touching pixel data.
package pngio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
)

// ErrBufferSize indicates a pixel buffer that is not width*height*3 bytes.
var ErrBufferSize = errors.New("pixel buffer does not match dimensions")

// SupportedExt lists the file extensions the shells accept as carriers.
var SupportedExt = map[string]bool{
	".png":  true,
	".bmp":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// LossyExt lists extensions whose encoders recompress and destroy an
// embedded payload. Acceptable as decode input, rejected as encode output.
var LossyExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// IsSupported reports whether name has a whitelisted carrier extension.
func IsSupported(name string) bool {
	return SupportedExt[strings.ToLower(filepath.Ext(name))]
}

// IsLossy reports whether name has a lossy-format extension.
func IsLossy(name string) bool {
	return LossyExt[strings.ToLower(filepath.Ext(name))]
}

// DecodeRGB decodes an image and flattens it to a row-major RGB byte
// buffer, stripping alpha and palette information.
func DecodeRGB(r io.Reader) (pixels []byte, width, height int, err error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pixels = make([]byte, 0, width*height*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			pixels = append(pixels, byte(r16>>8), byte(g16>>8), byte(b16>>8))
		}
	}
	return pixels, width, height, nil
}

// EncodePNG writes a flat RGB buffer as a lossless PNG. The emitted bytes
// decode back to the identical buffer, which is what keeps an embedded
// payload intact.
func EncodePNG(w io.Writer, pixels []byte, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height*3 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(pixels), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: pixels[i],
				G: pixels[i+1],
				B: pixels[i+2],
				A: 0xFF,
			})
			i += 3
		}
	}
	return png.Encode(w, img)
}
