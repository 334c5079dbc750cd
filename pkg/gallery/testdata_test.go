package gallery

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(x * 40), G: 105, B: uint8(y * 40), A: 255})
		}
	}
	return img
}

func encoded(t *testing.T, format string, w, h int) []byte {
	t.Helper()
	img := testImage(w, h)
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "webp":
		err = nativewebp.Encode(&buf, img, nil)
	case "tga":
		writeTGA(&buf, img)
	default:
		t.Fatalf("unknown test format %q", format)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", format, err)
	}
	return buf.Bytes()
}

// writeTGA writes an uncompressed 24-bit true-color TGA.
func writeTGA(buf *bytes.Buffer, img *image.NRGBA) {
	b := img.Bounds()
	header := make([]byte, 18)
	header[2] = 2
	binary.LittleEndian.PutUint16(header[12:], uint16(b.Dx()))
	binary.LittleEndian.PutUint16(header[14:], uint16(b.Dy()))
	header[16] = 24
	buf.Write(header)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			buf.Write([]byte{c.B, c.G, c.R})
		}
	}
}
