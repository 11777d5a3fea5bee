// Package measure supplies the per-node values that vertex colours encode.
package measure

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphfile"
)

var ErrMissingValue = errors.New("no colour value for node")

// Values maps a node index to a value.
type Values map[int]float64

// Degree counts, for every node of rec, the edges touching it.
func Degree(rec *graphfile.Record) Values {
	values := make(Values, rec.NodeCount)
	for i := 0; i < rec.NodeCount; i++ {
		values[i] = 0
	}
	for _, e := range rec.Edges {
		values[e.Source]++
		values[e.Target]++
	}
	return values
}

// ReadFile reads index,value lines from path.
func ReadFile(path string) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return values, nil
}

func Parse(r io.Reader) (Values, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	values := make(Values)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		index, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil || index < 0 {
			return nil, fmt.Errorf("line %d: invalid node index %q", line, record[0])
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("line %d: %q: %w", line, record[1], graphfile.ErrNotFinite)
		}
		values[index] = value
	}
	return values, nil
}

// PerVertex returns one value per vertex of c, in vertex ID order. Both sides of a
// node share its value.
func (v Values) PerVertex(c *correspond.Correspondence) ([]float64, error) {
	points := c.Points()
	out := make([]float64, len(points))
	for i, p := range points {
		value, ok := v[p.Index]
		if !ok {
			return nil, fmt.Errorf("%w %d", ErrMissingValue, p.Index)
		}
		out[i] = value
	}
	return out, nil
}

// Palette blends between two colours in Lab space.
type Palette struct {
	low  colorful.Color
	high colorful.Color
}

func NewPalette(low, high string) (Palette, error) {
	l, err := colorful.Hex(low)
	if err != nil {
		return Palette{}, fmt.Errorf("low colour: %w", err)
	}
	h, err := colorful.Hex(high)
	if err != nil {
		return Palette{}, fmt.Errorf("high colour: %w", err)
	}
	return Palette{low: l, high: h}, nil
}

// Colors maps values onto hex colours, the smallest value to the low colour and
// the largest to the high one. Identical values all get the midpoint.
func (p Palette) Colors(values []float64) []string {
	colors := make([]string, len(values))
	if len(values) == 0 {
		return colors
	}

	lo, hi := floats.Min(values), floats.Max(values)
	for i, v := range values {
		t := 0.5
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		colors[i] = p.low.BlendLab(p.high, t).Clamped().Hex()
	}
	return colors
}
