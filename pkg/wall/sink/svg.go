package sink

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"slices"

	svg "github.com/ajstarks/svgo"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/lovewall/pkg/wall/layout"
	"github.com/matzehuels/lovewall/pkg/wall/orbit"
)

// Card dimensions in CSS pixels, matching the browser renderer.
const (
	CardWidth  = 100
	CardHeight = 100
)

// DefaultPerspective is the CSS perspective distance of the stage.
const DefaultPerspective = 1000.0

const (
	cardFront = "fill:url(#card);stroke:#ffffff;stroke-width:2"
	cardBack  = "fill:url(#card);fill-opacity:0.35;stroke:#ffffff;stroke-opacity:0.5;stroke-width:1"
	labelCSS  = "text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:11px;fill:#ffffff"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height int
	zoom          float64
	perspective   float64
	view          orbit.Angles
	names         []string
	title         string
}

// WithSize sets the canvas size in pixels (default 800x800).
func WithSize(w, h int) SVGOption { return func(r *svgRenderer) { r.width, r.height = w, h } }

// WithZoom scales the projected wall (default 0.6).
func WithZoom(z float64) SVGOption { return func(r *svgRenderer) { r.zoom = z } }

// WithPerspective sets the camera distance from the stage origin.
func WithPerspective(d float64) SVGOption { return func(r *svgRenderer) { r.perspective = d } }

// WithView rotates the whole collection, as the orbit controller would.
func WithView(a orbit.Angles) SVGOption { return func(r *svgRenderer) { r.view = a } }

// WithNames labels front-facing cards. names[i] labels placement i.
func WithNames(names []string) SVGOption { return func(r *svgRenderer) { r.names = names } }

// WithTitle sets the document title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// projected is one card after view rotation and perspective division.
type projected struct {
	index  int
	xs, ys []int
	cx, cy int
	depth  float64
	back   bool
}

// RenderSVG draws a static perspective preview of the plan.
//
// Cards are painted far to near. Cards facing away from the camera are
// drawn translucent, and cards behind the camera plane are skipped.
func RenderSVG(p layout.Plan, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	cards := r.project(p)
	slices.SortFunc(cards, func(a, b projected) int {
		return cmp.Or(cmp.Compare(a.depth, b.depth), cmp.Compare(a.index, b.index))
	})

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(r.width, r.height, fmt.Sprintf(`viewBox="0 0 %d %d"`, r.width, r.height))
	if r.title != "" {
		canvas.Title(r.title)
	}
	canvas.Def()
	canvas.LinearGradient("bg", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: "#fff0f6", Opacity: 1},
		{Offset: 100, Color: "#ffc9de", Opacity: 1},
	})
	canvas.LinearGradient("card", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: "#ffa6c9", Opacity: 1},
		{Offset: 100, Color: "#ff69b4", Opacity: 1},
	})
	canvas.DefEnd()
	canvas.Rect(0, 0, r.width, r.height, "fill:url(#bg)")

	canvas.Gid("wall")
	for _, c := range cards {
		style := cardFront
		if c.back {
			style = cardBack
		}
		canvas.Polygon(c.xs, c.ys, fmt.Sprintf(`id="card-%d"`, c.index), style)
		if !c.back && c.index < len(r.names) && r.names[c.index] != "" {
			canvas.Text(c.cx, c.cy, r.names[c.index], labelCSS)
		}
	}
	canvas.Gend()
	canvas.End()
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{width: 800, height: 800, zoom: 0.6, perspective: DefaultPerspective}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r svgRenderer) project(p layout.Plan) []projected {
	view := ViewMatrix(r.view)
	viewRot := view.Mat3()

	corners := [4]mgl64.Vec4{
		{-CardWidth / 2, -CardHeight / 2, 0, 1},
		{CardWidth / 2, -CardHeight / 2, 0, 1},
		{CardWidth / 2, CardHeight / 2, 0, 1},
		{-CardWidth / 2, CardHeight / 2, 0, 1},
	}

	out := make([]projected, 0, p.Len())
	for _, pl := range p.Placements {
		m := view.Mul4(pl.Matrix())
		center := m.Mul4x1(mgl64.Vec4{0, 0, 0, 1})

		c := projected{
			index: pl.Index,
			xs:    make([]int, 0, len(corners)),
			ys:    make([]int, 0, len(corners)),
			depth: center.Z(),
			back:  viewRot.Mul3x1(pl.Normal()).Z() < 0,
		}
		visible := true
		for _, corner := range corners {
			x, y, ok := r.screen(m.Mul4x1(corner))
			if !ok {
				visible = false
				break
			}
			c.xs = append(c.xs, x)
			c.ys = append(c.ys, y)
		}
		if !visible {
			continue
		}
		c.cx, c.cy, _ = r.screen(center)
		out = append(out, c)
	}
	return out
}

// screen applies the perspective divide. ok is false for points on or
// behind the camera plane.
func (r svgRenderer) screen(v mgl64.Vec4) (x, y int, ok bool) {
	dist := r.perspective - v.Z()
	if dist <= 1 {
		return 0, 0, false
	}
	s := r.perspective / dist * r.zoom
	x = int(math.Round(float64(r.width)/2 + v.X()*s))
	y = int(math.Round(float64(r.height)/2 + v.Y()*s))
	return x, y, true
}
