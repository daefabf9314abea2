// Package nodelink renders the scope tree as a traditional node-link
// diagram through Graphviz, as an alternative to the grid layout: each
// scope becomes a box colored by its kind, with edges for nesting.
//
//	dot := nodelink.ToDOT(scope, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
package nodelink
