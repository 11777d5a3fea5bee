package graphs

import (
	"context"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/psidex/graphpair/internal/correspond"
)

// ECharts defines a Renderer that writes a go-echarts HTML page. Vertices keep
// their layout positions.
type ECharts struct{}

var _ Renderer = ECharts{}

func NewECharts() ECharts {
	return ECharts{}
}

func (e ECharts) Render(_ context.Context, c *correspond.Correspondence, s Scene, filename string) error {
	if err := s.Check(c); err != nil {
		return err
	}
	filename = filename + ".html"

	nodes, links := e.series(c, s)
	s.Logger.Debug("echarts series", "nodes", len(nodes), "links", len(links))

	page := components.NewPage()
	page.PageTitle = s.Title
	page.AddCharts(graphBase(s, nodes, links, c.Directed()))

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}

func (ECharts) series(c *correspond.Correspondence, s Scene) ([]opts.GraphNode, []opts.GraphLink) {
	vertices := c.Vertices()
	// Padding by the node size keeps every coordinate non-zero, which the chart
	// options would otherwise drop.
	positions := Fit(c.Layout(), s.BBox, s.Style.NodeSize)

	nodes := make([]opts.GraphNode, len(vertices))
	for i, v := range vertices {
		nodes[i] = opts.GraphNode{
			Name:       Label(v),
			X:          float32(positions[i].X),
			Y:          float32(positions[i].Y),
			Fixed:      opts.Bool(true),
			SymbolSize: s.Style.NodeSize,
			ItemStyle: &opts.ItemStyle{
				Color:       s.Colors[i],
				BorderColor: s.SideColor(v),
				BorderWidth: 2,
			},
		}
	}

	var links []opts.GraphLink
	for _, l := range Links(c) {
		color := s.Style.EdgeColor
		if l.Structure {
			color = s.Style.StructureColor
		}
		link := opts.GraphLink{
			Source:    Label(l.From),
			Target:    Label(l.To),
			LineStyle: &opts.LineStyle{Color: color, Width: float32(s.Style.EdgeWidth)},
		}
		if l.Weighted {
			link.Value = float32(l.Weight)
		}
		links = append(links, link)
	}
	return nodes, links
}

func graphBase(s Scene, nodes []opts.GraphNode, links []opts.GraphLink, directed bool) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: s.Title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	chart := opts.GraphChart{
		Layout:    "none",
		Draggable: opts.Bool(false),
		Roam:      opts.Bool(true),
	}
	if directed {
		chart.EdgeSymbol = []string{"none", "arrow"}
	}

	graph.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(chart),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(s.Style.ShowLabels),
			Color:    "black",
			Position: "top",
		}),
	)
	return graph
}
