// Package correspond places two layouts of the same node set side by side and
// links every node in the first layout to the same node in the second.
package correspond

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/psidex/graphpair/internal/graphfile"
)

var (
	ErrNodeCountMismatch = errors.New("graphs have different node counts")
	ErrFirstIndex        = errors.New("first index must be 0 or 1")
	ErrEdgeFraction      = errors.New("edge fraction must be within [0, 1]")
)

// fractionSlack absorbs binary rounding in k·fraction, so 100 × 0.29 draws 29.
const fractionSlack = 1e-9

// Side says which layout a point belongs to.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Point is a render coordinate for node Index on one Side.
type Point struct {
	r2.Vec
	Side  Side
	Index int
}

// Vertex is a graph node placed at a Point. Its ID is its position in Layout.
type Vertex struct {
	id int64
	Point
}

func (v Vertex) ID() int64 {
	return v.id
}

// Pair is a correspondence edge.
type Pair struct {
	Left  Vertex
	Right Vertex
}

// StructureEdge is an edge of one of the input graphs, moved onto its side of the
// layout.
type StructureEdge struct {
	From     Vertex
	To       Vertex
	Weight   float64
	Weighted bool
}

// Options tunes Build. The zero value places node 0 and draws no
// correspondence edges; start from DefaultOptions for the usual plot.
type Options struct {
	// FirstIndex is the first node index placed in the layout. 1 skips node 0,
	// which is the legacy plot layout.
	FirstIndex int
	// EdgeFraction is the share of correspondence edges drawn, taken in node order.
	EdgeFraction float64
	// WithStructure carries the input graphs' own edges into Structure.
	WithStructure bool
}

func DefaultOptions() Options {
	return Options{FirstIndex: 1, EdgeFraction: 1}
}

// Graph is the read side of the correspondence graph. Both the simple
// directed and undirected graphs satisfy it.
type Graph interface {
	graph.Graph
	Edges() graph.Edges
}

type graphBuilder interface {
	Graph
	graph.Builder
}

// Correspondence is the bipartite graph linking the two layouts.
type Correspondence struct {
	graph     graphBuilder
	directed  bool
	nodeCount int
	gap       float64
	points    []Point
	left      map[int]Vertex
	right     map[int]Vertex
	pairs     []Pair
	structure []StructureEdge
}

// Build lays g1 out on the left and g2 on the right, shifted right by the
// largest x coordinate of g1, with y flipped. Both graphs must have the same
// node count.
func Build(g1, g2 *graphfile.Record, opts Options) (*Correspondence, error) {
	if g1.NodeCount != g2.NodeCount {
		return nil, fmt.Errorf("%w: %d and %d", ErrNodeCountMismatch, g1.NodeCount, g2.NodeCount)
	}
	if opts.FirstIndex != 0 && opts.FirstIndex != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrFirstIndex, opts.FirstIndex)
	}
	if opts.EdgeFraction < 0 || opts.EdgeFraction > 1 || math.IsNaN(opts.EdgeFraction) {
		return nil, fmt.Errorf("%w: got %v", ErrEdgeFraction, opts.EdgeFraction)
	}

	c := &Correspondence{
		directed:  g1.Directed,
		nodeCount: g1.NodeCount,
		gap:       Gap(g1),
		left:      make(map[int]Vertex),
		right:     make(map[int]Vertex),
	}
	if g1.Directed {
		c.graph = simple.NewDirectedGraph()
	} else {
		c.graph = simple.NewUndirectedGraph()
	}

	var lefts, rights []Point
	for i := opts.FirstIndex; i < c.nodeCount; i++ {
		lefts = append(lefts, Point{
			Vec:   r2.Vec{X: g1.Nodes[i].X, Y: -g1.Nodes[i].Y},
			Side:  Left,
			Index: i,
		})
		rights = append(rights, Point{
			Vec:   r2.Vec{X: c.gap + g2.Nodes[i].X, Y: -g2.Nodes[i].Y},
			Side:  Right,
			Index: i,
		})
	}
	c.points = append(lefts, rights...)

	for id, p := range c.points {
		v := Vertex{id: int64(id), Point: p}
		c.graph.AddNode(v)
		if p.Side == Left {
			c.left[p.Index] = v
		} else {
			c.right[p.Index] = v
		}
	}

	drawn := int(math.Floor(float64(len(lefts))*opts.EdgeFraction + fractionSlack))
	for _, p := range lefts[:drawn] {
		pair := Pair{Left: c.left[p.Index], Right: c.right[p.Index]}
		c.graph.SetEdge(c.graph.NewEdge(pair.Left, pair.Right))
		c.pairs = append(c.pairs, pair)
	}

	if opts.WithStructure {
		c.structure = append(c.structure, placeEdges(g1.Edges, c.left)...)
		c.structure = append(c.structure, placeEdges(g2.Edges, c.right)...)
	}

	return c, nil
}

// Gap is the horizontal offset applied to the right layout: the largest x
// coordinate in rec, or 0 for an empty graph.
func Gap(rec *graphfile.Record) float64 {
	if len(rec.Nodes) == 0 {
		return 0
	}
	xs := make([]float64, len(rec.Nodes))
	for i, node := range rec.Nodes {
		xs[i] = node.X
	}
	return floats.Max(xs)
}

// placeEdges keeps the edges whose endpoints are both in the layout.
func placeEdges(edges []graphfile.Edge, side map[int]Vertex) []StructureEdge {
	var placed []StructureEdge
	for _, e := range edges {
		from, ok := side[e.Source]
		if !ok {
			continue
		}
		to, ok := side[e.Target]
		if !ok {
			continue
		}
		placed = append(placed, StructureEdge{From: from, To: to, Weight: e.Weight, Weighted: e.Weighted})
	}
	return placed
}

// Graph returns the correspondence graph. It is directed when the first input is.
func (c *Correspondence) Graph() Graph {
	return c.graph
}

func (c *Correspondence) Directed() bool {
	return c.directed
}

// NodeCount is the node count shared by both inputs.
func (c *Correspondence) NodeCount() int {
	return c.nodeCount
}

func (c *Correspondence) Gap() float64 {
	return c.gap
}

// Len is the number of vertices, left and right.
func (c *Correspondence) Len() int {
	return len(c.points)
}

// Points returns every vertex position, left side first, in vertex ID order.
func (c *Correspondence) Points() []Point {
	return append([]Point(nil), c.points...)
}

// Layout returns the bare coordinates of Points.
func (c *Correspondence) Layout() []r2.Vec {
	layout := make([]r2.Vec, len(c.points))
	for i, p := range c.points {
		layout[i] = p.Vec
	}
	return layout
}

// Vertices returns every vertex in ID order.
func (c *Correspondence) Vertices() []Vertex {
	vertices := make([]Vertex, len(c.points))
	for i, p := range c.points {
		vertices[i] = Vertex{id: int64(i), Point: p}
	}
	return vertices
}

func (c *Correspondence) Left(index int) (Vertex, bool) {
	v, ok := c.left[index]
	return v, ok
}

func (c *Correspondence) Right(index int) (Vertex, bool) {
	v, ok := c.right[index]
	return v, ok
}

func (c *Correspondence) Pairs() []Pair {
	return append([]Pair(nil), c.pairs...)
}

func (c *Correspondence) Structure() []StructureEdge {
	return append([]StructureEdge(nil), c.structure...)
}

// BBox is the side length of the square render area, 200·ln(n) with a floor of
// 200 so tiny graphs stay visible.
func (c *Correspondence) BBox() float64 {
	return math.Max(200, 200*math.Log(float64(c.nodeCount)))
}
