package gallery

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/google/uuid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/matzehuels/lovewall/pkg/errors"
)

// Handle is an immutable reference to one decoded-on-demand image.
type Handle struct {
	ID     uuid.UUID
	Name   string
	Format string
	Width  int
	Height int
	data   []byte
}

// Data returns the encoded image bytes.
func (h Handle) Data() []byte { return h.data }

// Size returns the encoded size in bytes.
func (h Handle) Size() int { return len(h.data) }

// Image decodes the full image.
func (h Handle) Image() (image.Image, error) {
	f, ok := formatByName(h.Format)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedImage, "%s: unknown format %q", h.Name, h.Format)
	}
	img, err := f.decode(bytes.NewReader(h.data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupportedImage, err, "%s: decode", h.Name)
	}
	return img, nil
}

type format struct {
	name         string
	magic        []string
	ext          []string
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}

// formats is checked in order. TGA has no magic and is matched by
// extension only, so it must stay last.
var formats = []format{
	{"jpeg", []string{"\xff\xd8"}, []string{".jpg", ".jpeg"}, jpeg.Decode, jpeg.DecodeConfig},
	{"png", []string{"\x89PNG\r\n\x1a\n"}, []string{".png"}, png.Decode, png.DecodeConfig},
	{"gif", []string{"GIF87a", "GIF89a"}, []string{".gif"}, gif.Decode, gif.DecodeConfig},
	{"webp", []string{"RIFF????WEBP"}, []string{".webp"}, webp.Decode, webp.DecodeConfig},
	{"bmp", []string{"BM"}, []string{".bmp"}, bmp.Decode, bmp.DecodeConfig},
	{"tga", nil, []string{".tga"}, tga.Decode, tga.DecodeConfig},
}

// Extensions lists the file extensions Decode understands.
func Extensions() []string {
	var out []string
	for _, f := range formats {
		out = append(out, f.ext...)
	}
	return out
}

// IsImageName reports whether name carries a supported image extension.
func IsImageName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, f := range formats {
		for _, e := range f.ext {
			if e == ext {
				return true
			}
		}
	}
	return false
}

// Decode reads the header of data and returns a handle with a fresh ID.
// Non-image input is rejected with an UNSUPPORTED_IMAGE advisory.
func Decode(name string, data []byte) (Handle, error) {
	if err := errors.ValidateImageName(name); err != nil {
		return Handle{}, err
	}
	f, ok := sniff(name, data)
	if !ok {
		return Handle{}, errors.New(errors.ErrCodeUnsupportedImage, "%s is not a supported image", name)
	}
	cfg, err := f.decodeConfig(bytes.NewReader(data))
	if err != nil {
		return Handle{}, errors.Wrap(errors.ErrCodeUnsupportedImage, err, "%s: read header", name)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Handle{}, errors.New(errors.ErrCodeUnsupportedImage, "%s has no pixels", name)
	}
	return Handle{
		ID:     uuid.New(),
		Name:   name,
		Format: f.name,
		Width:  cfg.Width,
		Height: cfg.Height,
		data:   data,
	}, nil
}

// DecodeImage fully decodes data in one step.
func DecodeImage(name string, data []byte) (image.Image, error) {
	h, err := Decode(name, data)
	if err != nil {
		return nil, err
	}
	return h.Image()
}

func sniff(name string, data []byte) (format, bool) {
	for _, f := range formats {
		for _, m := range f.magic {
			if match(m, data) {
				return f, true
			}
		}
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, f := range formats {
		if f.magic != nil {
			continue
		}
		for _, e := range f.ext {
			if e == ext {
				return f, true
			}
		}
	}
	return format{}, false
}

// match reports whether data starts with magic; '?' matches any byte.
func match(magic string, data []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != '?' && magic[i] != data[i] {
			return false
		}
	}
	return true
}

func formatByName(name string) (format, bool) {
	for _, f := range formats {
		if f.name == name {
			return f, true
		}
	}
	return format{}, false
}
