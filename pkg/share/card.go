package share

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"strconv"
	"time"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/draw"

	"github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/fonts"
	"github.com/matzehuels/lovewall/pkg/lovedays"
	"github.com/matzehuels/lovewall/pkg/observability"
)

// Default canvas size, a 4:5 portrait.
const (
	DefaultWidth  = 1080
	DefaultHeight = 1350
)

// Accepted canvas sizes.
const (
	MinSide = 200
	MaxSide = 4096
)

var (
	gradientTop    = color.NRGBA{R: 0xff, G: 0xdd, B: 0xe1, A: 0xff}
	gradientBottom = color.NRGBA{R: 0xee, G: 0x9c, B: 0xa7, A: 0xff}
	accent         = color.NRGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}
	ink            = color.NRGBA{R: 0x5a, G: 0x1e, B: 0x3c, A: 0xff}
	softWhite      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x55}
)

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	width, height int
	photo         image.Image
	hearts        int
}

// WithSize sets the canvas size in pixels.
func WithSize(w, h int) Option { return func(r *renderer) { r.width, r.height = w, h } }

// WithPhoto places img, center-cropped to a circle, above the names.
func WithPhoto(img image.Image) Option { return func(r *renderer) { r.photo = img } }

// WithHearts sets how many background hearts are scattered (default 24).
func WithHearts(n int) Option { return func(r *renderer) { r.hearts = n } }

// Render draws the share card for a validated count.
func Render(res lovedays.Result, opts ...Option) (image.Image, error) {
	r := renderer{width: DefaultWidth, height: DefaultHeight, hearts: 24}
	for _, opt := range opts {
		opt(&r)
	}
	if err := validSize(r.width, r.height); err != nil {
		return nil, err
	}

	dc := gg.NewContext(r.width, r.height)
	w, h := float64(r.width), float64(r.height)

	bg := gg.NewLinearGradient(0, 0, 0, h)
	bg.AddColorStop(0, gradientTop)
	bg.AddColorStop(1, gradientBottom)
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Scatter is seeded by the count so the same card renders identically.
	rng := rand.New(rand.NewPCG(uint64(res.Days), 0x10fe))
	dc.SetColor(softWhite)
	for range r.hearts {
		heart(dc, rng.Float64()*w, rng.Float64()*h, w*(0.03+rng.Float64()*0.05))
	}

	cx, cy, radius := w/2, h*0.33, w*0.2
	if r.photo != nil {
		drawPhoto(dc, r.photo, cx, cy, radius)
	} else {
		dc.SetColor(accent)
		heart(dc, cx, cy+radius*0.1, radius*1.6)
	}

	lines := []struct {
		text   string
		weight fonts.Weight
		size   float64
		y      float64
		color  color.Color
	}{
		{lovedays.ShareTitle, fonts.Bold, w / 16, h * 0.08, ink},
		{res.Name1 + " & " + res.Name2, fonts.Bold, w / 14, h * 0.6, ink},
		{"have been in love for", fonts.Regular, w / 28, h * 0.67, ink},
		{strconv.Itoa(res.Days), fonts.Bold, w / 5, h * 0.78, accent},
		{"days", fonts.Regular, w / 20, h * 0.87, ink},
		{"since " + lovedays.FormatDate(res.Since), fonts.Regular, w / 34, h * 0.93, ink},
	}
	for _, l := range lines {
		face, err := fonts.Face(l.weight, l.size)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
		}
		dc.SetFontFace(face)
		dc.SetColor(l.color)
		dc.DrawStringAnchored(l.text, cx, l.y, 0.5, 0.5)
	}

	return dc.Image(), nil
}

// Generate renders and encodes the card, reporting to the render hooks.
func Generate(ctx context.Context, res lovedays.Result, f Format, opts ...Option) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(f))

	data, err := generate(res, f, opts)
	observability.Render().OnRenderComplete(ctx, string(f), len(data), time.Since(start), err)
	return data, err
}

func generate(res lovedays.Result, f Format, opts []Option) ([]byte, error) {
	img, err := Render(res, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	return buf.Bytes(), nil
}

func validSize(w, h int) error {
	if w < MinSide || h < MinSide || w > MaxSide || h > MaxSide {
		return errors.New(errors.ErrCodeInvalidInput,
			"share image size %dx%d outside [%d, %d]", w, h, MinSide, MaxSide)
	}
	return nil
}

// heart fills a heart of the given width centered on (x, y).
func heart(dc *gg.Context, x, y, size float64) {
	s := size / 2
	dc.MoveTo(x, y+s*0.7)
	dc.CubicTo(x-s*1.8, y-s*0.5, x-s*0.7, y-s*1.9, x, y-s*0.8)
	dc.CubicTo(x+s*0.7, y-s*1.9, x+s*1.8, y-s*0.5, x, y+s*0.7)
	dc.ClosePath()
	dc.Fill()
}

// drawPhoto center-crops img to a square, scales it to the circle and
// draws it with a white ring.
func drawPhoto(dc *gg.Context, img image.Image, cx, cy, radius float64) {
	side := int(2 * radius)
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, squareCrop(img.Bounds()), draw.Over, nil)

	dc.Push()
	dc.DrawCircle(cx, cy, radius)
	dc.Clip()
	dc.DrawImageAnchored(dst, int(cx), int(cy), 0.5, 0.5)
	dc.ResetClip()
	dc.Pop()

	dc.SetColor(color.White)
	dc.SetLineWidth(radius * 0.05)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()
}

func squareCrop(b image.Rectangle) image.Rectangle {
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
