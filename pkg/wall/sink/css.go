package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/matzehuels/lovewall/pkg/wall/layout"
)

// DefaultSelector is the class of one photo card in the browser renderer.
const DefaultSelector = ".photo-item"

// CSSOption configures CSS rendering via [RenderCSS].
type CSSOption func(*cssRenderer)

type cssRenderer struct {
	selector string
	matrix   bool
}

// WithSelector sets the per-card selector. Rules are emitted as
// "<selector>:nth-child(i)".
func WithSelector(s string) CSSOption { return func(r *cssRenderer) { r.selector = s } }

// WithCSSMatrix emits matrix3d() transforms instead of the readable form.
func WithCSSMatrix() CSSOption { return func(r *cssRenderer) { r.matrix = true } }

// RenderCSS returns one rule per placement with its transform and
// animation-delay. An empty plan yields a comment-only stylesheet.
func RenderCSS(p layout.Plan, opts ...CSSOption) []byte {
	r := cssRenderer{selector: DefaultSelector}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "/* %d cards, preset %s", p.Len(), p.Preset)
	if p.Strategy != "" {
		fmt.Fprintf(&buf, ", strategy %s", p.Strategy)
	}
	buf.WriteString(" */\n")

	for _, pl := range p.Placements {
		transform := pl.CSS()
		if r.matrix {
			transform = pl.CSSMatrix()
		}
		fmt.Fprintf(&buf, "%s:nth-child(%d) {\n", r.selector, pl.Index+1)
		fmt.Fprintf(&buf, "  transform: %s;\n", transform)
		fmt.Fprintf(&buf, "  animation-delay: %s;\n", seconds(pl.Delay))
		buf.WriteString("}\n")
	}
	return buf.Bytes()
}

// seconds formats d the way CSS time values are written, e.g. "0.05s".
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

func round3(v float64) float64 {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return 0
	}
	return v
}
