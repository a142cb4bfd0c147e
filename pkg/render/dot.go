package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Options configures network rendering.
type Options struct {
	// Scale maps network meters to layout inches. The default keeps a
	// 100 m arm readable.
	Scale float64

	// Labels includes lane counts on edges and control types on junctions.
	Labels bool
}

const defaultScale = 0.02

// ToDOT converts a parsed network to DOT with every junction pinned at its
// compiled coordinates, so the drawing preserves the real geometry instead
// of letting the layout engine invent one.
func ToDOT(net *Network, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = defaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("digraph network {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, width=0.4, fontsize=10];\n")
	buf.WriteString("  edge [arrowsize=0.5, fontsize=8];\n")
	buf.WriteString("\n")

	for _, j := range net.Junctions {
		attrs := fmt.Sprintf("pos=\"%.3f,%.3f!\"", j.X*scale, j.Y*scale)
		if opts.Labels && j.Type != "" {
			attrs += fmt.Sprintf(", xlabel=%q", j.Type)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", j.ID, attrs)
	}

	buf.WriteString("\n")
	for _, e := range net.Edges {
		if opts.Labels && e.Lanes > 1 {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", e.From, e.To, e.Lanes)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
