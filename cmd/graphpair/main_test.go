package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/graphpair/internal/correspond"
	"github.com/psidex/graphpair/internal/graphfile"
	"github.com/psidex/graphpair/internal/lib"
	"github.com/psidex/graphpair/internal/measure"
)

const (
	square  = "4,0\n0,0\n1,0\n1,1\n0,1\n0,1\n1,2\n2,3\n3,0\n"
	diamond = "4,0\n1,0\n2,1\n1,2\n0,1\n0,1\n1,2\n2,3\n3,0\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testJob(t *testing.T, provider string) job {
	t.Helper()
	dir := t.TempDir()
	return job{
		g1:       writeFile(t, dir, "square.txt", square),
		g2:       writeFile(t, dir, "diamond.txt", diamond),
		output:   filepath.Join(dir, "out"),
		provider: provider,
		opts:     correspond.DefaultOptions(),
	}
}

func TestRun(t *testing.T) {
	logger := lib.NiceLogger(io.Discard, 0)

	for _, provider := range []string{"echarts", "vis", "graphology", "pairs", "dot", "tikz"} {
		t.Run(provider, func(t *testing.T) {
			j := testJob(t, provider)
			j.opts.WithStructure = true

			res, err := run(context.Background(), j, logger)
			require.NoError(t, err)
			assert.Equal(t, 6, res.vertices)
			assert.Equal(t, 3, res.pairs)
			assert.Equal(t, 4, res.structure)
			assert.FileExists(t, res.file)
		})
	}
}

func TestRunOptions(t *testing.T) {
	logger := lib.NiceLogger(io.Discard, 0)

	j := testJob(t, "pairs")
	j.opts.FirstIndex = 0
	j.opts.EdgeFraction = 0.5
	res, err := run(context.Background(), j, logger)
	require.NoError(t, err)
	assert.Equal(t, 8, res.vertices)
	assert.Equal(t, 2, res.pairs)
	assert.Zero(t, res.structure)
	assert.Equal(t, j.output+".json", res.file)
}

func TestRunColors(t *testing.T) {
	logger := lib.NiceLogger(io.Discard, 0)

	j := testJob(t, "tikz")
	j.colors = writeFile(t, t.TempDir(), "colors.csv", "1,0.5\n2,1\n3,7\n")
	_, err := run(context.Background(), j, logger)
	require.NoError(t, err)

	j.colors = writeFile(t, t.TempDir(), "colors.csv", "1,0.5\n")
	_, err = run(context.Background(), j, logger)
	assert.ErrorIs(t, err, measure.ErrMissingValue)
}

func TestRunErrors(t *testing.T) {
	logger := lib.NiceLogger(io.Discard, 0)

	j := testJob(t, "bitmap")
	_, err := run(context.Background(), j, logger)
	assert.ErrorContains(t, err, "unknown graph provider")

	j = testJob(t, "pairs")
	j.g2 = writeFile(t, t.TempDir(), "small.txt", "2,0\n0,0\n1,1\n")
	_, err = run(context.Background(), j, logger)
	assert.ErrorIs(t, err, correspond.ErrNodeCountMismatch)

	j = testJob(t, "pairs")
	j.g1 = writeFile(t, t.TempDir(), "bad.txt", "2,0\n0,0\n1,one\n")
	_, err = run(context.Background(), j, logger)
	var parseErr *graphfile.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)

	j = testJob(t, "pairs")
	j.style = writeFile(t, t.TempDir(), "style.yaml", "lowColor: nope\n")
	_, err = run(context.Background(), j, logger)
	assert.ErrorContains(t, err, "LowColor")
}

func TestApp(t *testing.T) {
	t.Run("Usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := newApp(&stdout, &stderr).Run([]string{"graphpair", "only-one.txt"})
		assert.ErrorIs(t, err, errUsage)
		assert.Contains(t, stdout.String(), "<graph1-file> <graph2-file>")
	})

	t.Run("Render", func(t *testing.T) {
		j := testJob(t, "pairs")
		var stdout, stderr bytes.Buffer
		err := newApp(&stdout, &stderr).Run([]string{
			"graphpair", "-p", "pairs", "-o", j.output, "--with-structure", "--log-level", "debug", j.g1, j.g2,
		})
		require.NoError(t, err)
		assert.FileExists(t, j.output+".json")
		assert.Contains(t, stdout.String(), "vertices")
		assert.Contains(t, stdout.String(), j.output+".json")
		assert.Contains(t, stderr.String(), "msg=\"wrote graph\"")
	})

	t.Run("Env", func(t *testing.T) {
		j := testJob(t, "tikz")
		t.Setenv("GRAPHPAIR_PROVIDER", "tikz")
		t.Setenv("GRAPHPAIR_OUTPUT", j.output)
		var stdout, stderr bytes.Buffer
		require.NoError(t, newApp(&stdout, &stderr).Run([]string{"graphpair", j.g1, j.g2}))
		assert.FileExists(t, j.output+".tex")
	})

	t.Run("Bad log level", func(t *testing.T) {
		j := testJob(t, "pairs")
		var stdout, stderr bytes.Buffer
		err := newApp(&stdout, &stderr).Run([]string{"graphpair", "--log-level", "chatty", j.g1, j.g2})
		assert.ErrorContains(t, err, "chatty")
	})
}
