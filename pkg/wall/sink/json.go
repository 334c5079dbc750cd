package sink

import (
	"encoding/json"

	"github.com/matzehuels/lovewall/pkg/wall/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	names  []string
	matrix bool
}

// WithJSONNames labels cards by image name. names[i] labels placement i;
// missing entries are left blank.
func WithJSONNames(names []string) JSONOption { return func(r *jsonRenderer) { r.names = names } }

// WithJSONMatrix adds a matrix3d() transform to every card.
func WithJSONMatrix() JSONOption { return func(r *jsonRenderer) { r.matrix = true } }

type jsonOutput struct {
	Preset   string     `json:"preset"`
	Strategy string     `json:"strategy,omitempty"`
	Seed     uint64     `json:"seed,omitempty"`
	Count    int        `json:"count"`
	MaxDelay int64      `json:"max_delay_ms"`
	Cards    []jsonCard `json:"cards"`
}

type jsonCard struct {
	Index     int     `json:"index"`
	Name      string  `json:"name,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	RotateX   float64 `json:"rotate_x"`
	RotateY   float64 `json:"rotate_y"`
	RotateZ   float64 `json:"rotate_z"`
	DelayMS   int64   `json:"delay_ms"`
	Transform string  `json:"transform"`
	Matrix    string  `json:"matrix,omitempty"`
}

// RenderJSON exports the plan as a pretty-printed JSON document.
//
// The seed is only recorded for randomized strategies, where it is needed to
// reproduce the plan. Cards are emitted in placement order.
func RenderJSON(p layout.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Preset:   p.Preset,
		Strategy: string(p.Strategy),
		Count:    p.Len(),
		Cards:    buildJSONCards(p, r),
	}
	if p.Strategy.Randomized() {
		out.Seed = p.Seed
	}
	for _, c := range out.Cards {
		out.MaxDelay = max(out.MaxDelay, c.DelayMS)
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONCards(p layout.Plan, r jsonRenderer) []jsonCard {
	cards := make([]jsonCard, 0, p.Len())
	for _, pl := range p.Placements {
		c := jsonCard{
			Index:     pl.Index,
			X:         round3(pl.Position[0]),
			Y:         round3(pl.Position[1]),
			Z:         round3(pl.Position[2]),
			RotateX:   round3(pl.Rotation.X),
			RotateY:   round3(pl.Rotation.Y),
			RotateZ:   round3(pl.Rotation.Z),
			DelayMS:   pl.Delay.Milliseconds(),
			Transform: pl.CSS(),
		}
		if pl.Index < len(r.names) {
			c.Name = r.names[pl.Index]
		}
		if r.matrix {
			c.Matrix = pl.CSSMatrix()
		}
		cards = append(cards, c)
	}
	return cards
}
