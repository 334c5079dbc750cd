// Package fonts provides the embedded Go fonts used for raster output.
//
// The fonts ship with golang.org/x/image, so rendering never depends on
// fonts installed on the host.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects one of the embedded fonts.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Parsed fonts, computed once on first access.
var (
	parsed     [2]*opentype.Font
	parseErr   error
	parsedOnce sync.Once
)

func load() error {
	parsedOnce.Do(func() {
		for w, ttf := range [2][]byte{goregular.TTF, gobold.TTF} {
			f, err := opentype.Parse(ttf)
			if err != nil {
				parseErr = fmt.Errorf("parse embedded font: %w", err)
				return
			}
			parsed[w] = f
		}
	})
	return parseErr
}

// Face returns a new face of the given weight and size in points at 72 DPI.
// Faces are not safe for concurrent use; callers get their own.
func Face(w Weight, size float64) (font.Face, error) {
	if err := load(); err != nil {
		return nil, err
	}
	if w != Bold {
		w = Regular
	}
	return opentype.NewFace(parsed[w], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// FontFamily is the CSS font-family for SVG text.
const FontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`
