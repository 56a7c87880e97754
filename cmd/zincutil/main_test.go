package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestRangesNormalize(t *testing.T) {
	out := run(t, "ranges", "normalize", "30-1, 55,66-70s")
	assert.Equal(t, "1-30,55,66-70\n", out)
}

func TestRangesExpand(t *testing.T) {
	out := run(t, "ranges", "expand", "1-3,7")
	assert.Equal(t, "1 2 3 7\n", out)
}

func TestRangesCount(t *testing.T) {
	out := run(t, "ranges", "count", "1-30,55,66-70")
	assert.Equal(t, "36\n", out)
}

func TestGaps(t *testing.T) {
	out := run(t, "gaps", "4-5,9")
	assert.Equal(t, "1-3,6-8\n", out)
}

func writeDoc(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "region.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestDescribe(t *testing.T) {
	path := writeDoc(t, `
region:
  name: r
  nodes: 3-1,5
`)

	out := run(t, "describe", path)
	assert.Contains(t, out, "name: r")
	assert.Contains(t, out, "nodes:")
	assert.Contains(t, out, "1-3,5")
}

func TestConvert(t *testing.T) {
	path := writeDoc(t, `
region:
  name: r
  nodes: 1-3
  datapoints: 2-3,5
`)

	out := run(t, "convert", path)

	// Nodes are gone; datapoints now cover the nodes (1-3), the
	// renumbered collisions (4, 6) and the untouched 5.
	assert.NotContains(t, out, "nodes:")
	assert.Contains(t, out, "datapoints: 1-6")
}

func TestConvertBadPath(t *testing.T) {
	path := writeDoc(t, `
region:
  name: r
  nodes: 1-3
`)

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"convert", path, "--source", "nope"})

	assert.Error(t, cmd.Execute())
}
