package vis

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"os"

	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphs"
)

// Vis defines a Renderer that writes a vis.js HTML page with every vertex pinned
// at its layout position and physics disabled.
type Vis struct{}

var _ graphs.Renderer = Vis{}

func NewVis() Vis {
	return Vis{}
}

func (Vis) network(c *correspond.Correspondence, s graphs.Scene) network {
	positions := graphs.Fit(c.Layout(), s.BBox, 0)

	n := network{Nodes: []node{}, Edges: []edge{}}
	for i, v := range c.Vertices() {
		nd := node{
			ID:    v.ID(),
			Title: fmt.Sprintf("%s node %d", v.Side, v.Index),
			X:     positions[i].X,
			Y:     positions[i].Y,
			Size:  s.Style.NodeSize / 2,
			Color: nodeColor{Background: s.Colors[i], Border: s.SideColor(v)},
		}
		if s.Style.ShowLabels {
			nd.Label = graphs.Label(v)
		}
		n.Nodes = append(n.Nodes, nd)
	}

	arrows := ""
	if c.Directed() {
		arrows = "to"
	}
	for _, l := range graphs.Links(c) {
		color := s.Style.EdgeColor
		if l.Structure {
			color = s.Style.StructureColor
		}
		n.Edges = append(n.Edges, edge{
			From:   l.From.ID(),
			To:     l.To.ID(),
			Width:  s.Style.EdgeWidth,
			Color:  edgeColor{Color: color},
			Arrows: arrows,
			Dashes: !l.Structure,
		})
	}
	return n
}

func (v Vis) Render(_ context.Context, c *correspond.Correspondence, s graphs.Scene, filename string) error {
	if err := s.Check(c); err != nil {
		return err
	}
	filename = filename + ".html"

	data, err := json.Marshal(v.network(c, s))
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, page, html.EscapeString(s.Title), data)
	return err
}
