// Package pkg provides the core libraries behind lovewall.
//
// # Overview
//
// Lovewall arranges a couple's photos on a rotating 3D wall and counts the
// days they have been together. The pkg directory is organized into three
// areas:
//
//  1. [wall] - Photo-wall geometry (layout planning, orbit control, exports)
//  2. [gallery], [lovedays], [share] - The photos, the day counter and the share image
//  3. [config], [cache], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Photo folder
//	     ↓
//	[gallery] package (decode queue, bounded collection)
//	     ↓
//	[wall/layout] package (one placement per photo)
//	     ↓
//	[wall/sink] package (JSON, CSS or SVG preview)
//
// The day counter runs on its own:
//
//	Names + start date → [lovedays] → [share] → PNG/WebP
//
// # Quick Start
//
// Plan a wall for fifteen photos and export it as CSS:
//
//	import (
//	    "github.com/matzehuels/lovewall/pkg/wall/layout"
//	    "github.com/matzehuels/lovewall/pkg/wall/sink"
//	)
//
//	plan, err := layout.NewPlanner().Plan(15)
//	if err != nil {
//	    return err
//	}
//	css := sink.RenderCSS(plan)
//
// Drag the wall with an [orbit.Controller] wired to your renderer:
//
//	ctrl := orbit.New(renderer)
//	ctrl.BeginDrag(orbit.Point{X: 100, Y: 100})
//	ctrl.DragTo(orbit.Point{X: 150, Y: 100}) // +25° yaw
//	ctrl.EndDrag()
//
// # Observability
//
// The libraries never log. Register [observability] hooks at startup to
// receive plan, render and cache events.
//
// [wall]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/wall
// [gallery]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/gallery
// [lovedays]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/lovedays
// [share]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/share
// [config]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/observability
// [orbit.Controller]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/wall/orbit#Controller
package pkg
