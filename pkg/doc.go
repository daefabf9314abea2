// Package pkg provides the core libraries for flowcanvas control-flow
// diagrams.
//
// # Overview
//
// Flowcanvas turns a parsed control-flow tree into a scope diagram: nested
// rounded boxes for functions, classes, loops and exception handlers, strung
// together by the main execution line. The pkg directory is organized into
// five main areas:
//
//  1. [flow] - The parsed-source model (scopes, fragments, ranges)
//  2. [canvas] - The layout engine (cell grid, geometry negotiation, drawing)
//  3. [render] - Output backends (SVG, PNG, PDF, Graphviz node-link)
//  4. [cache] - Byte caches for trees, layouts and artifacts
//  5. [pipeline] - Orchestration (parse → layout → render)
//
// # Architecture
//
// The typical data flow through flowcanvas:
//
//	Parsed tree (JSON)
//	         ↓
//	    [flow] package (scope tree + source ranges)
//	         ↓
//	    [canvas] package (cell grid + geometry negotiation)
//	         ↓
//	    [render] package (surface backends)
//	         ↓
//	    SVG/PNG/PDF/DOT/JSON output
//
// # Quick Start
//
// Render a parsed tree as SVG:
//
//	import (
//	    "github.com/flowcanvas/flowcanvas/pkg/canvas"
//	    "github.com/flowcanvas/flowcanvas/pkg/flow"
//	    "github.com/flowcanvas/flowcanvas/pkg/render"
//	)
//
//	tree, err := flow.LoadJSON("module.flow.json")
//	if err != nil {
//	    return err
//	}
//	cvs, err := canvas.Build(canvas.DefaultSettings(), tree)
//	if err != nil {
//	    return err
//	}
//	svg, err := render.RenderSVG(cvs, render.WithTooltips())
//
// For caching and multi-format output, use the [pipeline] package instead of
// calling the layers directly.
package pkg
