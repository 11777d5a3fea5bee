package graphology

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/psidex/graphpair/internal/config"
	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphfile"
	"github.com/psidex/graphpair/internal/graphs"
)

func TestRender(t *testing.T) {
	rec := &graphfile.Record{
		NodeCount: 3,
		Directed:  true,
		Nodes:     []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
		Edges:     []graphfile.Edge{{Source: 1, Target: 2, Weight: 0.5, Weighted: true}},
	}
	c, err := correspond.Build(rec, rec, correspond.Options{FirstIndex: 1, EdgeFraction: 1, WithStructure: true})
	require.NoError(t, err)
	s := graphs.NewScene(c, []string{"#aa0000", "#bb0000", "#cc0000", "#dd0000"}, config.DefaultStyle(), nil)

	out := filepath.Join(t.TempDir(), "graph")
	require.NoError(t, NewGraphology().Render(context.Background(), c, s, out))

	data, err := os.ReadFile(out + ".json")
	require.NoError(t, err)

	var g SerializedGraph
	require.NoError(t, json.Unmarshal(data, &g))

	assert.Equal(t, "directed", g.Options.Type)
	assert.Equal(t, "graphpair", g.Attributes["name"])
	require.Len(t, g.Nodes, 4)

	l1 := g.Nodes[0]
	assert.Equal(t, "0", l1.Key)
	assert.Equal(t, "l1", l1.Attributes.Label)
	assert.Equal(t, "left", l1.Attributes.Side)
	assert.Equal(t, 1, l1.Attributes.Index)
	assert.Equal(t, "#aa0000", l1.Attributes.Color)
	assert.Equal(t, 5.0, l1.Attributes.Size)

	right := g.Nodes[3]
	assert.Equal(t, "right", right.Attributes.Side)
	assert.Equal(t, 2, right.Attributes.Index)

	// Sigma puts y up, so the flipped layout is flipped back.
	l2 := g.Nodes[1]
	assert.Greater(t, l1.Attributes.Y, l2.Attributes.Y)

	require.Len(t, g.Edges, 4)
	assert.Equal(t, Edge{
		Key:        "1",
		Source:     "0",
		Target:     "2",
		Attributes: EdgeAttributes{Size: 1, Color: s.Style.EdgeColor},
	}, g.Edges[0])
	assert.True(t, g.Edges[2].Attributes.Structure)
	require.NotNil(t, g.Edges[2].Attributes.Weight)
	assert.Equal(t, 0.5, *g.Edges[2].Attributes.Weight)
}
