// Package svg renders tasks as Graphviz diagrams.
//
// # Overview
//
// Every grid becomes a node whose label is a Graphviz HTML table with one
// filled cell per grid cell. Input and output grids of a pair are joined by
// an edge, and pairs stack top to bottom in file order: demonstrations first,
// then test pairs.
//
// # Usage
//
//	dot := svg.ToDOT(t, svg.Options{})
//	data, err := svg.RenderSVG(dot)
//
// Pass [Options.Predictions] to draw solver output next to each test pair.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
// No Graphviz installation is required.
package svg
