// Package render draws grids and tasks for people.
//
// # Overview
//
// The root package holds the shared [Palette]: the ten display colours of the
// ARC task viewer, indexed by grid colour. Output formats live in
// subpackages:
//
//   - [term]: coloured blocks for the terminal, via lipgloss
//   - [png]: paletted raster images, one square per cell
//   - [svg]: task pairs laid out with Graphviz HTML tables
//
// All renderers read grids and never modify them.
//
//	fmt.Println(term.Pair(in, out))
//	err := png.Encode(w, g, 24)
//	data, err := svg.RenderSVG(svg.ToDOT(t, svg.Options{}))
package render
