package graphs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/psidex/graphpair/internal/config"
	"github.com/psidex/graphpair/internal/correspond"
	. "github.com/psidex/graphpair/internal/lib"
)

var ErrColorCount = errors.New("colour count does not match vertex count")

// Renderer draws a correspondence to a file.
type Renderer interface {
	// Render writes filename plus the provider's extension. filename should be the
	// desired file name without an extension.
	Render(ctx context.Context, c *correspond.Correspondence, s Scene, filename string) error
}

// Scene is everything a Renderer needs besides the graph itself.
type Scene struct {
	Title string
	// Colors holds one hex colour per vertex, in vertex ID order.
	Colors []string
	BBox   float64
	Style  config.Style
	Logger *slog.Logger
}

func NewScene(c *correspond.Correspondence, colors []string, style config.Style, logger *slog.Logger) Scene {
	if logger == nil {
		logger = NiceLogger(io.Discard, slog.LevelError)
	}
	return Scene{
		Title:  style.Title,
		Colors: colors,
		BBox:   c.BBox(),
		Style:  style,
		Logger: logger,
	}
}

// Check reports whether s can draw c.
func (s Scene) Check(c *correspond.Correspondence) error {
	if len(s.Colors) != c.Len() {
		return fmt.Errorf("%w: %d colours for %d vertices", ErrColorCount, len(s.Colors), c.Len())
	}
	return nil
}

// SideColor is the outline colour of a vertex.
func (s Scene) SideColor(v correspond.Vertex) string {
	if v.Side == correspond.Left {
		return s.Style.LeftColor
	}
	return s.Style.RightColor
}

// Label names a vertex by side and node index, e.g. l3 or r3.
func Label(v correspond.Vertex) string {
	return fmt.Sprintf("%c%d", v.Side.String()[0], v.Index)
}
