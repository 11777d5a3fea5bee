package graphs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/psidex/graphpair/internal/correspond"
)

// tikzExtent is the side length, in cm before scaling, of the drawn area.
const tikzExtent = 10

// TikZ defines a Renderer that writes a tikzpicture for inclusion in a LaTeX
// document. The document must load tikz and xcolor.
type TikZ struct{}

var _ Renderer = TikZ{}

func NewTikZ() TikZ {
	return TikZ{}
}

func (t TikZ) Render(_ context.Context, c *correspond.Correspondence, s Scene, filename string) error {
	if err := s.Check(c); err != nil {
		return err
	}
	tex, err := ToTikZ(c, s)
	if err != nil {
		return err
	}
	return os.WriteFile(filename+".tex", []byte(tex), 0o644)
}

// ToTikZ draws left vertices with the "left" style and right vertices with the
// "right" style, each filled with its value colour.
func ToTikZ(c *correspond.Correspondence, s Scene) (string, error) {
	var buf strings.Builder

	left, err := tikzColor(s.Style.LeftColor)
	if err != nil {
		return "", err
	}
	right, err := tikzColor(s.Style.RightColor)
	if err != nil {
		return "", err
	}
	edge, err := tikzColor(s.Style.EdgeColor)
	if err != nil {
		return "", err
	}
	structure, err := tikzColor(s.Style.StructureColor)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&buf, "\\begin{tikzpicture}[scale=%s]\n", formatFloat(s.Style.TikzScale))
	fmt.Fprintf(&buf, "  \\tikzset{left/.style={circle, draw=%s, thick, inner sep=1.5pt}}\n", left)
	fmt.Fprintf(&buf, "  \\tikzset{right/.style={circle, draw=%s, thick, inner sep=1.5pt}}\n", right)
	fmt.Fprintf(&buf, "  \\tikzset{pair/.style={draw=%s}}\n", edge)
	fmt.Fprintf(&buf, "  \\tikzset{structure/.style={draw=%s}}\n", structure)
	if c.Directed() {
		buf.WriteString("  \\tikzset{pair/.append style={->}, structure/.append style={->}}\n")
	}

	positions := Fit(c.Layout(), tikzExtent, 0)
	for i, v := range c.Vertices() {
		fill, err := tikzColor(s.Colors[i])
		if err != nil {
			return "", fmt.Errorf("vertex %s: %w", Label(v), err)
		}
		label := ""
		if s.Style.ShowLabels {
			label = fmt.Sprintf("%d", v.Index)
		}
		pos := positions[i]
		fmt.Fprintf(&buf, "  \\node[%s, fill=%s] (%s) at (%s,%s) {%s};\n",
			v.Side, fill, Label(v), formatFloat(pos.X), formatFloat(tikzExtent-pos.Y), label)
	}

	for _, l := range Links(c) {
		class := "pair"
		if l.Structure {
			class = "structure"
		}
		fmt.Fprintf(&buf, "  \\path[%s] (%s) -- (%s);\n", class, Label(l.From), Label(l.To))
	}

	buf.WriteString("\\end{tikzpicture}\n")
	return buf.String(), nil
}

// tikzColor turns a hex colour into an xcolor expression.
func tikzColor(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", err
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("{rgb,255:red,%d;green,%d;blue,%d}", r, g, b), nil
}
