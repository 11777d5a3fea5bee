package vis

type nodeColor struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

type node struct {
	ID    int64     `json:"id"`
	Label string    `json:"label,omitempty"`
	Title string    `json:"title"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Size  float64   `json:"size"`
	Color nodeColor `json:"color"`
}

type edgeColor struct {
	Color string `json:"color"`
}

type edge struct {
	From   int64     `json:"from"`
	To     int64     `json:"to"`
	Width  float64   `json:"width"`
	Color  edgeColor `json:"color"`
	Arrows string    `json:"arrows,omitempty"`
	Dashes bool      `json:"dashes,omitempty"`
}

// network is the data set handed to vis.Network.
type network struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}
