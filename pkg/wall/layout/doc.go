// Package layout computes 3D placements for the photo wall.
//
// # Overview
//
// A plan maps an image count to one [Placement] per image: a position in a
// virtual 3D space, an orientation in degrees, and a stagger delay for the
// entrance animation. Plans are purely count-driven, so the same count (and
// seed) always yields the same placements.
//
// # Presets
//
// A [Preset] is a threshold table that selects a geometric strategy by count.
// Two presets ship:
//
//   - [Tiered] (default): cube ≤12, multi-layer rings 13–30, spiral 31–60,
//     galaxy arms above 60.
//   - [Classic]: single ring ≤20, two-layer ring ≤50, golden-angle sphere
//     above.
//
// # Orientation
//
// Every card faces away from the center of the arrangement. The transform is
// composed as translate3d · rotateY · rotateX · rotateZ, matching the CSS
// string returned by [Placement.CSS] and the matrix returned by
// [Placement.Matrix].
//
// # Randomness
//
// The galaxy strategy jitters height and tilt. The jitter is drawn from a PCG
// generator seeded by [WithSeed], so plans stay reproducible.
//
// # Usage
//
//	p := layout.NewPlanner(layout.WithPreset(layout.Tiered), layout.WithSeed(42))
//	plan, err := p.Plan(len(images))
//	for _, pl := range plan.Placements {
//	    card.Style.Transform = pl.CSS()
//	}
package layout
