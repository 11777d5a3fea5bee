package measure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphfile"
)

func TestDegree(t *testing.T) {
	rec := &graphfile.Record{
		NodeCount: 4,
		Nodes:     make([]r2.Vec, 4),
		Edges: []graphfile.Edge{
			{Source: 0, Target: 1},
			{Source: 0, Target: 2},
			{Source: 0, Target: 3},
			{Source: 1, Target: 2},
		},
	}
	assert.Equal(t, Values{0: 3, 1: 2, 2: 2, 3: 1}, Degree(rec))
}

func TestParse(t *testing.T) {
	values, err := Parse(strings.NewReader("0,1.5\n2, -3\n1,0\n"))
	require.NoError(t, err)
	assert.Equal(t, Values{0: 1.5, 1: 0, 2: -3}, values)

	_, err = Parse(strings.NewReader("0,1\nx,2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Parse(strings.NewReader("0,1\n1,2,3\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("0,low\n"))
	assert.Error(t, err)

	for _, input := range []string{"0,1\n1,NaN\n", "0,+Inf\n", "0,-inf\n"} {
		_, err = Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, graphfile.ErrNotFinite, input)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,10\n2,20\n"), 0o644))

	values, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Values{1: 10, 2: 20}, values)

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPerVertex(t *testing.T) {
	rec := &graphfile.Record{NodeCount: 3, Nodes: make([]r2.Vec, 3)}
	c, err := correspond.Build(rec, rec, correspond.DefaultOptions())
	require.NoError(t, err)

	perVertex, err := Values{1: 7, 2: 9}.PerVertex(c)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 9, 7, 9}, perVertex)

	_, err = Values{1: 7}.PerVertex(c)
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestPaletteColors(t *testing.T) {
	p, err := NewPalette("#000000", "#ffffff")
	require.NoError(t, err)

	colors := p.Colors([]float64{0, 10, 5})
	require.Len(t, colors, 3)
	assert.Equal(t, "#000000", colors[0])
	assert.Equal(t, "#ffffff", colors[1])
	assert.NotEqual(t, colors[0], colors[2])
	assert.NotEqual(t, colors[1], colors[2])

	same := p.Colors([]float64{4, 4})
	assert.Equal(t, same[0], same[1])

	assert.Empty(t, p.Colors(nil))
}

func TestNewPaletteErrors(t *testing.T) {
	_, err := NewPalette("red", "#ffffff")
	assert.Error(t, err)
	_, err = NewPalette("#ffffff", "#12")
	assert.Error(t, err)
}
