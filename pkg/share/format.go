package share

import (
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/matzehuels/lovewall/pkg/errors"
)

// Format is an output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatWebP:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported share format %q (use png or webp)", s)
}

// FormatFromPath infers the format from a file extension, falling back
// to def when the path has none.
func FormatFromPath(path string, def Format) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return def, nil
	}
	return ParseFormat(ext)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported share format %q", f)
}
