package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/flowcanvas/flowcanvas/pkg/canvas"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

// Options configures node-link diagram generation.
type Options struct {
	// Detailed includes line ranges in node labels. When false, only the
	// declaration text is shown.
	Detailed bool

	// Settings provides the per-kind fill colors. Nil selects the stock
	// palette.
	Settings *canvas.Settings
}

// ToDOT converts a scope tree to Graphviz DOT format. The resulting string
// can be rendered with [RenderSVG] or any external Graphviz tool.
func ToDOT(root *flow.Scope, opts Options) string {
	if opts.Settings == nil {
		opts.Settings = canvas.DefaultSettings()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph flow {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n\n")

	var id int
	writeScope(&buf, root, opts, &id)

	buf.WriteString("}\n")
	return buf.String()
}

// writeScope emits one node and recurses into the scope's parts, returning
// the node's DOT identifier.
func writeScope(buf *bytes.Buffer, sc *flow.Scope, opts Options, id *int) string {
	name := fmt.Sprintf("n%d", *id)
	*id++

	theme := opts.Settings.ScopeTheme(layoutKind(sc.Kind))
	fmt.Fprintf(buf, "  %s [label=%q, fillcolor=%q, color=%q, fontcolor=%q];\n",
		name, nodeLabel(sc, opts.Detailed), theme.BG, theme.Border, theme.FG)

	children := make([]*flow.Scope, 0, len(sc.Suite)+len(sc.Handlers)+len(sc.Decorators)+2)
	children = append(children, sc.Decorators...)
	children = append(children, sc.Suite...)
	children = append(children, sc.Handlers...)
	if sc.Else != nil {
		children = append(children, sc.Else)
	}
	if sc.Final != nil {
		children = append(children, sc.Final)
	}

	for _, child := range children {
		childName := writeScope(buf, child, opts, id)
		fmt.Fprintf(buf, "  %s -> %s;\n", name, childName)
	}
	return name
}

func nodeLabel(sc *flow.Scope, detailed bool) string {
	label := sc.Text
	if label == "" {
		label = string(sc.Kind)
	}
	if detailed {
		lr := sc.LineRange()
		label += fmt.Sprintf("\nlines %d-%d", lr.Begin, lr.End)
	}
	return label
}

func layoutKind(k flow.ScopeKind) canvas.ScopeKind {
	switch k {
	case flow.KindFunction:
		return canvas.ScopeFunction
	case flow.KindClass:
		return canvas.ScopeClass
	case flow.KindFor:
		return canvas.ScopeFor
	case flow.KindWhile:
		return canvas.ScopeWhile
	case flow.KindTry:
		return canvas.ScopeTry
	case flow.KindWith:
		return canvas.ScopeWith
	case flow.KindDecorator:
		return canvas.ScopeDecorator
	case flow.KindElse:
		return canvas.ScopeTryElse
	case flow.KindExcept:
		return canvas.ScopeExcept
	case flow.KindFinally:
		return canvas.ScopeFinally
	}
	return canvas.ScopeModule
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz viewBox so the document is anchored
// at the origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
