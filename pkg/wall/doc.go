// Package wall groups the photo-wall geometry.
//
//   - [layout] turns an image count into one placement per card
//   - [orbit] turns pointer drags into rotation of the whole wall
//   - [sink] exports a plan for the browser renderer or as an SVG preview
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/wall/layout
// [orbit]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/wall/orbit
// [sink]: https://pkg.go.dev/github.com/matzehuels/lovewall/pkg/wall/sink
package wall
