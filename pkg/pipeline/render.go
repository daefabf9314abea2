package pipeline

import (
	"fmt"

	"github.com/flowcanvas/flowcanvas/pkg/canvas"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
	"github.com/flowcanvas/flowcanvas/pkg/render"
	"github.com/flowcanvas/flowcanvas/pkg/render/nodelink"
)

// Render generates artifacts for every requested format from a laid-out
// canvas. The tree is needed for the DOT outline and the layout info for the
// JSON geometry dump.
func Render(cvs *canvas.Canvas, tree *flow.Scope, info LayoutInfo, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		data, err := renderFormat(cvs, tree, info, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(cvs *canvas.Canvas, tree *flow.Scope, info LayoutInfo, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(cvs, svgOptions(opts)...)
	case FormatPNG:
		return render.RenderPNGWith(cvs, opts.Scale, pngOptions(opts)...)
	case FormatPDF:
		svg, err := render.RenderSVG(cvs, svgOptions(opts)...)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	case FormatDOT:
		return []byte(scopeDOT(tree, opts)), nil
	case FormatGraph:
		return nodelink.RenderSVG(scopeDOT(tree, opts))
	case FormatJSON:
		return MarshalLayoutInfo(info)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// scopeDOT emits the node-link outline of the tree, shared by the dot
// format and the Graphviz-rendered graph format.
func scopeDOT(tree *flow.Scope, opts Options) string {
	return nodelink.ToDOT(tree, nodelink.Options{
		Detailed: opts.Detailed,
		Settings: opts.Settings,
	})
}

// svgOptions builds SVG rendering options from pipeline options.
func svgOptions(opts Options) []render.SVGOption {
	var svgOpts []render.SVGOption
	if opts.Tooltips {
		svgOpts = append(svgOpts, render.WithTooltips())
	}
	if opts.FontFamily != "" {
		svgOpts = append(svgOpts, render.WithFontFamily(opts.FontFamily))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, render.WithBackground(canvas.Color(opts.Background)))
	}
	return svgOpts
}

func pngOptions(opts Options) []render.PNGOption {
	var pngOpts []render.PNGOption
	if opts.Background != "" {
		pngOpts = append(pngOpts, render.WithPNGBackground(canvas.Color(opts.Background)))
	}
	return pngOpts
}
