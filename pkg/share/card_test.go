package share

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"golang.org/x/image/webp"

	"github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/lovedays"
	"github.com/matzehuels/lovewall/pkg/observability"
)

func result(t *testing.T) lovedays.Result {
	t.Helper()
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	r, err := lovedays.Count(lovedays.Couple{Name1: "Ann", Name2: "Bo", Since: since}, today)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	return r
}

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRender(t *testing.T) {
	img, err := Render(result(t), WithSize(270, 340), WithHearts(0))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 270 || b.Dy() != 340 {
		t.Fatalf("bounds = %v, want 270x340", b)
	}

	// Corners carry the gradient: lighter at the top than at the bottom.
	top := brightness(img.At(1, 1))
	bottom := brightness(img.At(1, 338))
	if top <= bottom {
		t.Errorf("top brightness %d should exceed bottom %d", top, bottom)
	}
}

func TestRenderWithPhoto(t *testing.T) {
	blue := color.RGBA{B: 0xff, A: 0xff}
	img, err := Render(result(t), WithSize(300, 400), WithPhoto(solid(80, 50, blue)), WithHearts(0))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	// Circle center sits at (w/2, 0.33h).
	r, g, b, _ := img.At(150, 132).RGBA()
	if b>>8 < 0xc0 || r>>8 > 0x40 || g>>8 > 0x40 {
		t.Errorf("photo center = (%d,%d,%d), want blue", r>>8, g>>8, b>>8)
	}
}

func TestRenderDeterministic(t *testing.T) {
	res := result(t)
	a, _ := Render(res, WithSize(200, 250))
	b, _ := Render(res, WithSize(200, 250))
	var ba, bb bytes.Buffer
	png.Encode(&ba, a)
	png.Encode(&bb, b)
	if !bytes.Equal(ba.Bytes(), bb.Bytes()) {
		t.Error("the same count should render the same card")
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{100, 400}, {400, 100}, {5000, 400}} {
		_, err := Render(result(t), WithSize(size[0], size[1]))
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Render(%dx%d) error = %v, want INVALID_INPUT", size[0], size[1], err)
		}
	}
}

type renderRecorder struct {
	observability.NoopRenderHooks
	format string
	size   int
}

func (r *renderRecorder) OnRenderComplete(_ context.Context, format string, size int, _ time.Duration, _ error) {
	r.format, r.size = format, size
}

func TestGenerate(t *testing.T) {
	rec := &renderRecorder{}
	observability.SetRenderHooks(rec)
	defer observability.Reset()

	res := result(t)
	for _, f := range []Format{FormatPNG, FormatWebP} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Generate(context.Background(), res, f, WithSize(240, 300))
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}

			var cfg image.Config
			switch f {
			case FormatPNG:
				cfg, err = png.DecodeConfig(bytes.NewReader(data))
			case FormatWebP:
				cfg, err = webp.DecodeConfig(bytes.NewReader(data))
			}
			if err != nil {
				t.Fatalf("decode %s: %v", f, err)
			}
			if cfg.Width != 240 || cfg.Height != 300 {
				t.Errorf("size = %dx%d, want 240x300", cfg.Width, cfg.Height)
			}
			if rec.format != string(f) || rec.size != len(data) {
				t.Errorf("hook saw %q/%d, want %q/%d", rec.format, rec.size, f, len(data))
			}
		})
	}
}

func TestSquareCrop(t *testing.T) {
	tests := []struct {
		in, want image.Rectangle
	}{
		{image.Rect(0, 0, 100, 50), image.Rect(25, 0, 75, 50)},
		{image.Rect(0, 0, 50, 100), image.Rect(0, 25, 50, 75)},
		{image.Rect(10, 10, 30, 30), image.Rect(10, 10, 30, 30)},
	}
	for _, tt := range tests {
		if got := squareCrop(tt.in); got != tt.want {
			t.Errorf("squareCrop(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func brightness(c color.Color) int {
	r, g, b, _ := c.RGBA()
	return int(r>>8 + g>>8 + b>>8)
}
