package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/psidex/graphpair/internal/config"
	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphfile"
	"github.com/psidex/graphpair/internal/graphs"
	"github.com/psidex/graphpair/internal/graphs/graphology"
	"github.com/psidex/graphpair/internal/graphs/snapshot"
	"github.com/psidex/graphpair/internal/graphs/vis"
	"github.com/psidex/graphpair/internal/lib"
	"github.com/psidex/graphpair/internal/measure"
)

var errUsage = errors.New("usage: graphpair <graph1-file> <graph2-file>")

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Underline(true)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "graphpair",
		Usage:     "draw two layouts of the same graph side by side, linking each node to itself",
		ArgsUsage: "<graph1-file> <graph2-file>",
		Writer:    stdout,
		ErrWriter: stderr,
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file name, without extension",
			EnvVars: []string{"GRAPHPAIR_OUTPUT"},
			Value:   "graphpair",
		},
		&cli.StringFlag{
			Name:    "provider",
			Aliases: []string{"p"},
			Usage:   "renderer: echarts, vis, graphology, pairs, dot, svg, png, tikz or screenshot",
			EnvVars: []string{"GRAPHPAIR_PROVIDER"},
			Value:   "echarts",
		},
		&cli.StringFlag{
			Name:    "colors",
			Usage:   "CSV of node index,value pairs to colour by (default: degree in the first graph)",
			EnvVars: []string{"GRAPHPAIR_COLORS"},
		},
		&cli.StringFlag{
			Name:    "style",
			Usage:   "YAML style file",
			EnvVars: []string{"GRAPHPAIR_STYLE"},
		},
		&cli.BoolFlag{
			Name:  "include-first",
			Usage: "also draw node 0",
		},
		&cli.Float64Flag{
			Name:  "edge-fraction",
			Usage: "share of correspondence edges to draw, in node order",
			Value: 1,
		},
		&cli.BoolFlag{
			Name:  "with-structure",
			Usage: "also draw the edges of both input graphs",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"GRAPHPAIR_LOG_LEVEL"},
			Value:   "info",
		},
	}

	app.Action = func(cctx *cli.Context) error {
		if cctx.NArg() < 2 {
			_ = cli.ShowAppHelp(cctx)
			return errUsage
		}

		logger, err := lib.NewLogger(stderr, cctx.String("log-level"))
		if err != nil {
			return err
		}

		opts := correspond.DefaultOptions()
		if cctx.Bool("include-first") {
			opts.FirstIndex = 0
		}
		opts.EdgeFraction = cctx.Float64("edge-fraction")
		opts.WithStructure = cctx.Bool("with-structure")

		res, err := run(cctx.Context, job{
			g1:       cctx.Args().Get(0),
			g2:       cctx.Args().Get(1),
			output:   cctx.String("output"),
			provider: cctx.String("provider"),
			colors:   cctx.String("colors"),
			style:    cctx.String("style"),
			opts:     opts,
		}, logger)
		if err != nil {
			logger.Error("render failed", "error", err)
			return err
		}

		fmt.Fprintln(stdout, res.summary())
		return nil
	}

	return app
}

type job struct {
	g1, g2   string
	output   string
	provider string
	colors   string
	style    string
	opts     correspond.Options
}

type result struct {
	file      string
	vertices  int
	pairs     int
	structure int
}

func (r result) summary() string {
	return fmt.Sprintf("%s %s vertices, %s pairs, %s structure edges → %s",
		labelStyle.Render("graphpair"),
		countStyle.Render(fmt.Sprint(r.vertices)),
		countStyle.Render(fmt.Sprint(r.pairs)),
		countStyle.Render(fmt.Sprint(r.structure)),
		fileStyle.Render(r.file),
	)
}

// newRenderer returns the named renderer and the extension it writes.
func newRenderer(name string) (graphs.Renderer, string, error) {
	switch name {
	case "echarts":
		return graphs.NewECharts(), "html", nil
	case "vis":
		return vis.NewVis(), "html", nil
	case "graphology":
		return graphology.NewGraphology(), "json", nil
	case "pairs":
		return graphs.NewPairs(), "json", nil
	case "dot", "svg", "png":
		d, err := graphs.NewDOT(name)
		return d, name, err
	case "tikz":
		return graphs.NewTikZ(), "tex", nil
	case "screenshot":
		return snapshot.NewSnapshot(graphs.NewECharts()), "png", nil
	default:
		return nil, "", fmt.Errorf("unknown graph provider: %s", name)
	}
}

func run(ctx context.Context, j job, logger *slog.Logger) (result, error) {
	renderer, ext, err := newRenderer(j.provider)
	if err != nil {
		return result{}, err
	}

	style, err := config.LoadStyle(j.style)
	if err != nil {
		return result{}, err
	}

	g1, g2, err := graphfile.ReadPair(j.g1, j.g2)
	if err != nil {
		return result{}, err
	}
	logger.Debug("read graphs", "nodes", g1.NodeCount, "directed", g1.Directed, "g1_edges", len(g1.Edges), "g2_edges", len(g2.Edges))
	if g1.Directed != g2.Directed {
		logger.Warn("graphs disagree on directedness, using the first", "g1", g1.Directed, "g2", g2.Directed)
	}

	c, err := correspond.Build(g1, g2, j.opts)
	if err != nil {
		return result{}, err
	}
	logger.Debug("built correspondence", "vertices", c.Len(), "pairs", len(c.Pairs()), "gap", c.Gap(), "bbox", c.BBox())

	values := measure.Degree(g1)
	if j.colors != "" {
		if values, err = measure.ReadFile(j.colors); err != nil {
			return result{}, err
		}
	}
	perVertex, err := values.PerVertex(c)
	if err != nil {
		return result{}, err
	}

	palette, err := measure.NewPalette(style.LowColor, style.HighColor)
	if err != nil {
		return result{}, err
	}

	scene := graphs.NewScene(c, palette.Colors(perVertex), style, logger)
	if err := renderer.Render(ctx, c, scene, j.output); err != nil {
		return result{}, fmt.Errorf("render %s: %w", j.provider, err)
	}

	res := result{
		file:      j.output + "." + ext,
		vertices:  c.Len(),
		pairs:     len(c.Pairs()),
		structure: len(c.Structure()),
	}
	logger.Info("wrote graph", "file", res.file, "provider", j.provider)
	return res, nil
}
