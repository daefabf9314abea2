// Package render turns a laid-out canvas into concrete image formats.
//
// # Overview
//
// The canvas engine emits abstract primitives onto a [canvas.Surface]; this
// package provides the concrete surfaces:
//
//   - [RenderSVG]: vector output with optional hover tooltips
//   - [RenderPNG]: raster output drawn with fogleman/gg
//   - [ToPDF] and [ToPNG]: SVG conversion via the external rsvg-convert tool
//
// # Usage
//
//	c, err := canvas.Build(settings, scope)
//	svg, err := render.RenderSVG(c, render.WithTooltips())
//	png, err := render.RenderPNG(c, 2.0) // 2x scale
//
// The node-link view of the scope tree lives in the [nodelink] subpackage
// and renders through Graphviz instead of the grid layout.
//
// [nodelink]: github.com/flowcanvas/flowcanvas/pkg/render/nodelink
package render
