package graphs

import (
	"context"
	"encoding/json"
	"os"

	"github.com/psidex/graphpair/internal/correspond"
)

// Pairs defines a Renderer that writes the correspondence table to a JSON file,
// one entry per drawn pair, in node order.
type Pairs struct{}

var _ Renderer = Pairs{}

func NewPairs() Pairs {
	return Pairs{}
}

type pairEnd struct {
	ID    int64   `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

type pairEntry struct {
	Index int     `json:"index"`
	Left  pairEnd `json:"left"`
	Right pairEnd `json:"right"`
}

type pairTable struct {
	Title     string      `json:"title"`
	NodeCount int         `json:"nodeCount"`
	Directed  bool        `json:"directed"`
	Gap       float64     `json:"gap"`
	Pairs     []pairEntry `json:"pairs"`
}

func (Pairs) toJson(c *correspond.Correspondence, s Scene) ([]byte, error) {
	end := func(v correspond.Vertex) pairEnd {
		return pairEnd{ID: v.ID(), X: v.X, Y: v.Y, Color: s.Colors[v.ID()]}
	}

	table := pairTable{
		Title:     s.Title,
		NodeCount: c.NodeCount(),
		Directed:  c.Directed(),
		Gap:       c.Gap(),
		Pairs:     []pairEntry{},
	}
	for _, p := range c.Pairs() {
		table.Pairs = append(table.Pairs, pairEntry{Index: p.Left.Index, Left: end(p.Left), Right: end(p.Right)})
	}

	return json.MarshalIndent(table, "", "  ")
}

func (p Pairs) Render(_ context.Context, c *correspond.Correspondence, s Scene, filename string) error {
	if err := s.Check(c); err != nil {
		return err
	}
	filename = filename + ".json"

	jsonData, err := p.toJson(c, s)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, jsonData, 0o644)
}
