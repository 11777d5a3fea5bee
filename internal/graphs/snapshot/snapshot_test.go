package snapshot

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/psidex/graphpair/internal/config"
	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphfile"
	"github.com/psidex/graphpair/internal/graphs"
)

type failingPage struct{}

func (failingPage) Render(context.Context, *correspond.Correspondence, graphs.Scene, string) error {
	return errors.New("no page")
}

func build(t *testing.T) (*correspond.Correspondence, graphs.Scene) {
	t.Helper()
	rec := &graphfile.Record{NodeCount: 3, Nodes: []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}}
	c, err := correspond.Build(rec, rec, correspond.DefaultOptions())
	require.NoError(t, err)
	return c, graphs.NewScene(c, []string{"#000000", "#000000", "#ffffff", "#ffffff"}, config.DefaultStyle(), nil)
}

func chromeAvailable() bool {
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func TestFileURL(t *testing.T) {
	u, err := fileURL("/tmp/a b/page.html")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/a%20b/page.html", u)
}

func TestRenderPageError(t *testing.T) {
	c, s := build(t)
	out := filepath.Join(t.TempDir(), "shot")
	err := NewSnapshot(failingPage{}).Render(context.Background(), c, s, out)
	assert.ErrorContains(t, err, "no page")
	assert.NoFileExists(t, out+".png")
}

func TestRender(t *testing.T) {
	if testing.Short() || !chromeAvailable() {
		t.Skip("needs Chrome")
	}
	c, s := build(t)
	out := filepath.Join(t.TempDir(), "shot")

	require.NoError(t, NewSnapshot(graphs.NewECharts()).Render(context.Background(), c, s, out))
	data, err := os.ReadFile(out + ".png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
