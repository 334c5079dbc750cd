// Package sink turns a computed [layout.Plan] into renderer-facing output.
//
// # Formats
//
//   - JSON: placements with transform strings, for a browser renderer or tooling
//   - CSS: one nth-child rule per card carrying transform and animation-delay
//   - SVG: a static perspective preview of the wall at a given orbit angle
//
// Each renderer takes functional options:
//
//	data, err := sink.RenderJSON(plan, sink.WithJSONNames(names))
//	css := sink.RenderCSS(plan, sink.WithSelector(".photo-item"))
//	svg := sink.RenderSVG(plan, sink.WithView(orbit.Angles{Y: 25}))
//
// Renderers never modify the plan and are safe to call concurrently.
//
// [layout.Plan]: github.com/matzehuels/lovewall/pkg/wall/layout.Plan
package sink
