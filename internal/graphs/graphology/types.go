package graphology

type NodeAttributes struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Label string  `json:"label"`
	Color string  `json:"color"`
	// Side and Index tie the vertex back to its input graph.
	Side  string `json:"side"`
	Index int    `json:"index"`
}

type Node struct {
	Key        string         `json:"key"`
	Attributes NodeAttributes `json:"attributes"`
}

type EdgeAttributes struct {
	Size      float64  `json:"size"`
	Color     string   `json:"color"`
	Structure bool     `json:"structure"`
	Weight    *float64 `json:"weight,omitempty"`
}

type Edge struct {
	Key        string         `json:"key"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Attributes EdgeAttributes `json:"attributes"`
}

type GraphOptions struct {
	Type           string `json:"type"`
	Multi          bool   `json:"multi"`
	AllowSelfLoops bool   `json:"allowSelfLoops"`
}

// SerializedGraph is the graphology import/export format.
type SerializedGraph struct {
	Attributes map[string]string `json:"attributes"`
	Options    GraphOptions      `json:"options"`
	Nodes      []Node            `json:"nodes"`
	Edges      []Edge            `json:"edges"`
}
