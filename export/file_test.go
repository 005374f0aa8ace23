package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-interp/export"
	"github.com/katalvlaran/lvlath-interp/points"
	"github.com/katalvlaran/lvlath-interp/poly"
)

var _ export.Exporter = (*export.FileExporter)(nil)

// TestFileExporter_WritesDocument writes Render output to dir/file.
func TestFileExporter_WritesDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	fe := export.NewFileExporter(dir, "", l.NewNopLoggerWrapper())
	require.Equal(t, filepath.Join(dir, export.DefaultFileName), fe.Path())

	ps := points.NewPointSet(points.Point{X: 0, Y: 0}, points.Point{X: 1, Y: 1})
	c := poly.Coefficients{0, 1}

	path, err := fe.Export(ps, c)
	require.NoError(t, err)
	assert.Equal(t, fe.Path(), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := export.Render(ps, c)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))

	// a second export replaces the first
	_, err = fe.Export(ps, poly.Coefficients{1, 0})
	require.NoError(t, err)
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "]{0*x^1+1*x^0};")
}

// TestFileExporter_RenderErrorWritesNothing leaves no file behind on bad input.
func TestFileExporter_RenderErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	fe := export.NewFileExporter(dir, "plot.tex", nil)

	_, err := fe.Export(&points.PointSet{}, poly.Coefficients{1})
	require.ErrorIs(t, err, export.ErrNoPoints)

	_, statErr := os.Stat(filepath.Join(dir, "plot.tex"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestFileExporter_Defaults falls back to DefaultDir and DefaultFileName.
func TestFileExporter_Defaults(t *testing.T) {
	fe := export.NewFileExporter("", "", nil)
	assert.Equal(t, filepath.Join(export.DefaultDir(), export.DefaultFileName), fe.Path())
	assert.NotEmpty(t, export.DefaultDir())
}
