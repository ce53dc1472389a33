package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bodgit/picbin/chart"
	"github.com/bodgit/picbin/image"
	"github.com/bodgit/picbin/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// run runs the app with args and returns the exit code it asked for, or 0
func run(t *testing.T, stdout *bytes.Buffer, args ...string) (int, error) {
	t.Helper()

	code := 0
	exiter, errWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(c int) {
		code = c
	}
	cli.ErrWriter = ioutil.Discard
	defer func() {
		cli.OsExiter, cli.ErrWriter = exiter, errWriter
	}()

	app := newApp()
	if stdout != nil {
		app.Writer = stdout
	}
	app.ErrWriter = ioutil.Discard

	err := app.Run(append([]string{"picbin"}, args...))
	return code, err
}

func TestColorChartText(t *testing.T) {
	b := new(bytes.Buffer)
	code, err := run(t, b, "color-chart")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, palette.Chart(), b.String())
}

func TestColorChartImage(t *testing.T) {
	file := filepath.Join(t.TempDir(), "chart.png")

	code, err := run(t, nil, "color-chart", "--image", file, "--cell", "4")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	f, err := os.Open(file)
	require.NoError(t, err)
	m, _, err := image.Decode(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, 16*4, m.Bounds().Dx())
	assert.Equal(t, 16*4, m.Bounds().Dy())

	code, err = run(t, nil, "color-chart", "--image", file)
	assert.Error(t, err)
	assert.Equal(t, 1, code)

	code, err = run(t, nil, "-o", "color-chart", "--image", file, "--cell", "2")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = run(t, nil, "-o", "color-chart", "--image", file, "--cell", strconv.Itoa(chart.MaxCell+1))
	assert.Error(t, err)
	assert.Equal(t, 1, code)
}

func TestEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	img := filepath.Join(dir, "img.png")
	dst := filepath.Join(dir, "dst.bin")

	in := []byte("hello, world")
	require.NoError(t, ioutil.WriteFile(src, in, 0644))

	code, err := run(t, nil, "encode", src, img)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = run(t, nil, "decode", img, dst)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	out, err := ioutil.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDestinationExists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	img := filepath.Join(dir, "img.png")

	require.NoError(t, ioutil.WriteFile(src, []byte{1, 2, 3}, 0644))
	require.NoError(t, ioutil.WriteFile(img, []byte("existing"), 0644))

	code, err := run(t, nil, "encode", src, img)
	assert.Error(t, err)
	assert.Equal(t, 1, code)

	b, err := ioutil.ReadFile(img)
	require.NoError(t, err)
	assert.Equal(t, []byte("existing"), b)

	code, err = run(t, nil, "--overwrite", "encode", src, img)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}
