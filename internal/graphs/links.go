package graphs

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/psidex/graphpair/internal/correspond"
	. "github.com/psidex/graphpair/internal/lib"
)

// Link is a drawn edge: a correspondence pair, or a structure edge of one input.
type Link struct {
	From      correspond.Vertex
	To        correspond.Vertex
	Structure bool
	Weight    float64
	Weighted  bool
}

// Links returns every correspondence pair followed by each distinct structure
// edge. Self loops are dropped, and for undirected graphs so are reversed
// duplicates.
func Links(c *correspond.Correspondence) []Link {
	pairs := c.Pairs()
	links := make([]Link, 0, len(pairs))
	for _, p := range pairs {
		links = append(links, Link{From: p.Left, To: p.Right})
	}

	seen := NewSet[[2]int64]()
	for _, e := range c.Structure() {
		from, to := e.From.ID(), e.To.ID()
		if from == to {
			continue
		}
		key := [2]int64{from, to}
		if !c.Directed() && from > to {
			key = [2]int64{to, from}
		}
		if !seen.Add(key) {
			continue
		}
		links = append(links, Link{From: e.From, To: e.To, Structure: true, Weight: e.Weight, Weighted: e.Weighted})
	}
	return links
}

// Fit scales points uniformly so they span [pad, pad+size] along their longer
// axis, with the smallest coordinates at pad. A single distinct point lands in the
// centre.
func Fit(points []r2.Vec, size, pad float64) []r2.Vec {
	out := make([]r2.Vec, len(points))
	if len(points) == 0 {
		return out
	}

	lo := r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range points {
		lo = r2.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = r2.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}

	span := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	if span == 0 {
		centre := r2.Vec{X: pad + size/2, Y: pad + size/2}
		for i := range out {
			out[i] = centre
		}
		return out
	}

	offset := r2.Vec{X: pad, Y: pad}
	for i, p := range points {
		out[i] = r2.Add(offset, r2.Scale(size/span, r2.Sub(p, lo)))
	}
	return out
}
