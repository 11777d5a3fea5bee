package graphology

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphs"
)

// Graphology defines a Renderer that writes a serialized graphology graph to a
// JSON file, ready for graph.import() and a sigma.js view. Coordinates follow
// sigma's convention of y pointing up.
type Graphology struct{}

var _ graphs.Renderer = Graphology{}

func NewGraphology() Graphology {
	return Graphology{}
}

func (Graphology) serialize(c *correspond.Correspondence, s graphs.Scene) *SerializedGraph {
	graphType := "undirected"
	if c.Directed() {
		graphType = "directed"
	}

	g := &SerializedGraph{
		Attributes: map[string]string{"name": s.Title},
		Options:    GraphOptions{Type: graphType},
		Nodes:      []Node{},
		Edges:      []Edge{},
	}

	positions := graphs.Fit(c.Layout(), s.BBox, 0)
	for i, v := range c.Vertices() {
		g.Nodes = append(g.Nodes, Node{
			Key: strconv.FormatInt(v.ID(), 10),
			Attributes: NodeAttributes{
				X:     positions[i].X,
				Y:     s.BBox - positions[i].Y,
				Size:  s.Style.NodeSize / 2,
				Label: graphs.Label(v),
				Color: s.Colors[i],
				Side:  v.Side.String(),
				Index: v.Index,
			},
		})
	}

	for i, l := range graphs.Links(c) {
		attrs := EdgeAttributes{Size: s.Style.EdgeWidth, Color: s.Style.EdgeColor}
		if l.Structure {
			attrs.Structure = true
			attrs.Color = s.Style.StructureColor
		}
		if l.Weighted {
			weight := l.Weight
			attrs.Weight = &weight
		}
		g.Edges = append(g.Edges, Edge{
			Key:        strconv.Itoa(i + 1),
			Source:     strconv.FormatInt(l.From.ID(), 10),
			Target:     strconv.FormatInt(l.To.ID(), 10),
			Attributes: attrs,
		})
	}
	return g
}

func (g Graphology) Render(_ context.Context, c *correspond.Correspondence, s graphs.Scene, filename string) error {
	if err := s.Check(c); err != nil {
		return err
	}
	filename = filename + ".json"

	marshalled, err := json.Marshal(g.serialize(c, s))
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(marshalled)
	return err
}
