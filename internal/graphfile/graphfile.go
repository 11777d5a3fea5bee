// Package graphfile reads and writes the positional graph format:
//
//	n,directed        node count and 0|1 directed flag
//	x,y               one coordinate line per node, n lines
//	source,target[,w] one line per edge, node indices and an optional weight
package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	ErrEmpty     = errors.New("graph file is empty")
	ErrTruncated = errors.New("fewer coordinate lines than the declared node count")
	ErrEdgeIndex = errors.New("edge endpoint is not a node index")
	ErrNotFinite = errors.New("value must be finite")
)

// Record is a single parsed graph file. Nodes always holds NodeCount entries.
type Record struct {
	NodeCount int
	Directed  bool
	Nodes     []r2.Vec
	Edges     []Edge
}

// Edge connects two node indices. Weight is only meaningful when Weighted is set.
type Edge struct {
	Source   int
	Target   int
	Weight   float64
	Weighted bool
}

// ParseError reports a malformed line. Field is 1-based, 0 means the whole line.
type ParseError struct {
	Line  int
	Field int
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("line %d field %d: %v: %q", e.Line, e.Field, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadFile opens and parses the graph file at path.
func ReadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return rec, nil
}

// ReadPair reads the two graphs being compared.
func ReadPair(path1, path2 string) (*Record, *Record, error) {
	g1, err := ReadFile(path1)
	if err != nil {
		return nil, nil, err
	}
	g2, err := ReadFile(path2)
	if err != nil {
		return nil, nil, err
	}
	return g1, g2, nil
}

// Parse reads a graph from r. Trailing blank lines are ignored.
func Parse(r io.Reader) (*Record, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	rec := &Record{}
	if err := parseHeader(lines[0], rec); err != nil {
		return nil, err
	}

	if len(lines)-1 < rec.NodeCount {
		return nil, errors.Wrapf(ErrTruncated, "declared %d nodes, found %d coordinate lines",
			rec.NodeCount, len(lines)-1)
	}

	rec.Nodes = make([]r2.Vec, 0, rec.NodeCount)
	for i := 1; i <= rec.NodeCount; i++ {
		values, err := parseFloats(i+1, lines[i], 2, 2)
		if err != nil {
			return nil, err
		}
		rec.Nodes = append(rec.Nodes, r2.Vec{X: values[0], Y: values[1]})
	}

	for i := rec.NodeCount + 1; i < len(lines); i++ {
		edge, err := parseEdge(i+1, lines[i], rec.NodeCount)
		if err != nil {
			return nil, err
		}
		rec.Edges = append(rec.Edges, edge)
	}

	return rec, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read graph")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func parseHeader(line string, rec *Record) error {
	fields := splitFields(line)
	if len(fields) != 2 {
		return &ParseError{Line: 1, Text: line, Err: errors.New("header must be n,directed")}
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return &ParseError{Line: 1, Field: 1, Text: fields[0], Err: err}
	}
	if n < 0 {
		return &ParseError{Line: 1, Field: 1, Text: fields[0], Err: errors.New("negative node count")}
	}

	directed, err := strconv.Atoi(fields[1])
	if err != nil {
		return &ParseError{Line: 1, Field: 2, Text: fields[1], Err: err}
	}
	if directed != 0 && directed != 1 {
		return &ParseError{Line: 1, Field: 2, Text: fields[1], Err: errors.New("directed flag must be 0 or 1")}
	}

	rec.NodeCount = n
	rec.Directed = directed == 1
	return nil
}

func parseEdge(lineNo int, line string, nodeCount int) (Edge, error) {
	values, err := parseFloats(lineNo, line, 2, 3)
	if err != nil {
		return Edge{}, err
	}

	var endpoints [2]int
	for i := range endpoints {
		v := values[i]
		if v != math.Trunc(v) || v < 0 || v >= float64(nodeCount) {
			return Edge{}, &ParseError{Line: lineNo, Field: i + 1, Text: line, Err: ErrEdgeIndex}
		}
		endpoints[i] = int(v)
	}

	edge := Edge{Source: endpoints[0], Target: endpoints[1]}
	if len(values) == 3 {
		edge.Weight = values[2]
		edge.Weighted = true
	}
	return edge, nil
}

// parseFloats parses a line holding between lo and hi comma separated floats.
func parseFloats(lineNo int, line string, lo, hi int) ([]float64, error) {
	fields := splitFields(line)
	if len(fields) < lo || len(fields) > hi {
		return nil, &ParseError{
			Line: lineNo,
			Text: line,
			Err:  errors.Errorf("expected %d to %d fields, got %d", lo, hi, len(fields)),
		}
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Field: i + 1, Text: field, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Line: lineNo, Field: i + 1, Text: field, Err: ErrNotFinite}
		}
		values[i] = v
	}
	return values, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
