package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koki-develop/imgascii/internal/config"
	"github.com/koki-develop/imgascii/internal/output"
	"github.com/koki-develop/imgascii/internal/pixel"
	"github.com/koki-develop/imgascii/internal/resize"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestRootWritesArt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")
	img := writePNG(t, dir, 400, 200)

	stdout, err := execute(t, img, "-o", out)
	require.NoError(t, err)
	assert.Equal(t, "ASCII art in "+out+"\n", stdout)

	art, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(art), "\n"), "\n")
	require.Len(t, lines, 100)
	assert.Equal(t, strings.Repeat(" ", 200), lines[0])
}

func TestRootHalfMode(t *testing.T) {
	t.Parallel()

	tcs := map[string][]string{
		"positional mode": {"-h"},
		"half flag":       {"--half"},
		"after separator": {"--", "-h"},
	}

	for name, extra := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			out := filepath.Join(dir, "output.txt")
			img := writePNG(t, dir, 10, 10)

			args := append([]string{img, "--output", out}, extra...)
			_, err := execute(t, args...)
			require.NoError(t, err)

			art, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, 5, strings.Count(string(art), "\n"))
		})
	}
}

func TestRootUnknownModeRendersFully(t *testing.T) {
	t.Parallel()

	tcs := map[string][]string{
		"word mode":        {"hack"},
		"long dash mode":   {"--mode=hack"},
		"short dash mode":  {"-x"},
		"extra arguments":  {"hack", "extra"},
		"extra after dash": {"--mode=hack", "extra", "more"},
	}

	for name, mode := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			out := filepath.Join(dir, "output.txt")
			img := writePNG(t, dir, 10, 10)

			args := append([]string{img, "-o", out}, mode...)
			stdout, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, "ASCII art in "+out+"\n", stdout)

			art, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, 10, strings.Count(string(art), "\n"))
		})
	}
}

func TestRootHalfFlagWinsOverMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")
	img := writePNG(t, dir, 10, 10)

	_, err := execute(t, img, "x", "-h", "-o", out)
	require.NoError(t, err)

	art, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(art), "\n"))
}

func TestRootUsage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")

	_, err := execute(t, "-o", out)
	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "usage: imgascii <image-path> [mode]")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output must not be created")
}

func TestRootErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	img := writePNG(t, dir, 4, 4)

	_, err := execute(t, filepath.Join(dir, "missing.png"), "-o", filepath.Join(dir, "a.txt"))
	require.ErrorIs(t, err, pixel.ErrDecode)

	_, err = execute(t, img, "--max-width", "0", "-o", filepath.Join(dir, "b.txt"))
	require.ErrorIs(t, err, resize.ErrResample)
	_, statErr := os.Stat(filepath.Join(dir, "b.txt"))
	assert.True(t, os.IsNotExist(statErr))

	_, err = execute(t, img, "-o", filepath.Join(dir, "missing", "c.txt"))
	require.ErrorIs(t, err, output.ErrIO)

	_, err = execute(t, img, "a", "b", "-o", filepath.Join(dir, "d.txt"))
	require.NoError(t, err)
	art, err := os.ReadFile(filepath.Join(dir, "d.txt"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(art), "\n"))

	_, err = execute(t, img, "--resampler", "box", "-o", filepath.Join(dir, "e.txt"))
	require.ErrorIs(t, err, config.ErrInvalidArgument)
}
