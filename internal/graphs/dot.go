package graphs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/psidex/graphpair/internal/correspond"
)

// pointsPerInch is the graphviz coordinate unit.
const pointsPerInch = 72

// DOT defines a Renderer that writes Graphviz. Format "dot" writes the DOT source,
// "svg" and "png" pipe it through neato, which must be on PATH.
type DOT struct {
	Format string
}

var _ Renderer = DOT{}

func NewDOT(format string) (DOT, error) {
	switch format {
	case "dot", "svg", "png":
		return DOT{Format: format}, nil
	default:
		return DOT{}, fmt.Errorf("unsupported format %q: supported formats are dot, svg, png", format)
	}
}

func (d DOT) Render(ctx context.Context, c *correspond.Correspondence, s Scene, filename string) error {
	if err := s.Check(c); err != nil {
		return err
	}

	src, err := MarshalDOT(c, s)
	if err != nil {
		return err
	}

	out := src
	if d.Format != "dot" {
		s.Logger.Debug("running graphviz", "format", d.Format, "bytes", len(src))
		if out, err = renderWithGraphviz(ctx, src, d.Format); err != nil {
			return err
		}
	}
	return os.WriteFile(filename+"."+d.Format, out, 0o644)
}

type dotNode struct {
	correspond.Vertex
	attrs encoding.Attributes
}

func (n dotNode) DOTID() string { return Label(n.Vertex) }

func (n dotNode) Attributes() []encoding.Attribute { return n.attrs }

type dotEdge struct {
	from, to graph.Node
	attrs    encoding.Attributes
}

func (e dotEdge) From() graph.Node { return e.from }
func (e dotEdge) To() graph.Node   { return e.to }

func (e dotEdge) ReversedEdge() graph.Edge {
	return dotEdge{from: e.to, to: e.from, attrs: e.attrs}
}

func (e dotEdge) Attributes() []encoding.Attribute { return e.attrs }

// dotAttrs holds the graph-wide DOT attributes.
type dotAttrs struct {
	graph, node, edge encoding.Attributes
}

func (a dotAttrs) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return &a.graph, &a.node, &a.edge
}

type directedDOT struct {
	*simple.DirectedGraph
	dotAttrs
}

type undirectedDOT struct {
	*simple.UndirectedGraph
	dotAttrs
}

// MarshalDOT encodes c with pinned node positions, in points, for neato -n.
func MarshalDOT(c *correspond.Correspondence, s Scene) ([]byte, error) {
	attrs := dotAttrs{
		graph: encoding.Attributes{
			{Key: "label", Value: s.Title},
			{Key: "outputorder", Value: "edgesfirst"},
		},
		node: encoding.Attributes{
			{Key: "shape", Value: "circle"},
			{Key: "style", Value: "filled"},
			{Key: "fixedsize", Value: "true"},
			{Key: "width", Value: formatFloat(s.Style.NodeSize / pointsPerInch)},
			{Key: "penwidth", Value: "2"},
		},
		edge: encoding.Attributes{
			{Key: "color", Value: s.Style.EdgeColor},
			{Key: "penwidth", Value: formatFloat(s.Style.EdgeWidth)},
		},
	}
	if !s.Style.ShowLabels {
		attrs.node = append(attrs.node, encoding.Attribute{Key: "label", Value: ""})
	}

	var g interface {
		graph.Graph
		graph.Builder
	}
	if c.Directed() {
		g = directedDOT{simple.NewDirectedGraph(), attrs}
	} else {
		g = undirectedDOT{simple.NewUndirectedGraph(), attrs}
	}

	// Graphviz puts y up, the layout puts it down.
	positions := Fit(c.Layout(), s.BBox, s.Style.NodeSize)
	nodes := make([]dotNode, c.Len())
	for i, v := range c.Vertices() {
		pos := positions[i]
		nodes[i] = dotNode{Vertex: v, attrs: encoding.Attributes{
			{Key: "pos", Value: fmt.Sprintf("%s,%s!", formatFloat(pos.X), formatFloat(s.BBox+2*s.Style.NodeSize-pos.Y))},
			{Key: "fillcolor", Value: s.Colors[i]},
			{Key: "color", Value: s.SideColor(v)},
		}}
		g.AddNode(nodes[i])
	}

	for _, l := range Links(c) {
		e := dotEdge{from: nodes[l.From.ID()], to: nodes[l.To.ID()]}
		if l.Structure {
			e.attrs = append(e.attrs, encoding.Attribute{Key: "color", Value: s.Style.StructureColor})
			if l.Weighted {
				e.attrs = append(e.attrs, encoding.Attribute{Key: "weight", Value: formatFloat(l.Weight)})
			}
		}
		g.SetEdge(e)
	}

	return dot.Marshal(g, "graphpair", "", "  ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func graphvizAvailable() bool {
	_, err := exec.LookPath("neato")
	return err == nil
}

// renderWithGraphviz pipes DOT source through neato without re-running layout.
func renderWithGraphviz(ctx context.Context, src []byte, format string) ([]byte, error) {
	if !graphvizAvailable() {
		return nil, fmt.Errorf("graphviz neato command not found: install graphviz to render %s output", format)
	}

	cmd := exec.CommandContext(ctx, "neato", "-n", "-T"+format)
	cmd.Stdin = bytes.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("graphviz neato command failed: %w: %s", err, stderr.String())
	}

	return stdout.Bytes(), nil
}
