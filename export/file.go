// SPDX-License-Identifier: MIT

package export

import (
	"os"
	"path/filepath"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/lvlath-interp/points"
	"github.com/katalvlaran/lvlath-interp/poly"
)

// DefaultFileName is the well-known name of the exported document.
const DefaultFileName = "interpolation.tex"

const (
	dirPerm  = 0700
	filePerm = 0600
)

// Exporter consumes a point set and its coefficients and publishes a plot
// description somewhere, returning where it went.
type Exporter interface {
	Export(ps *points.PointSet, c poly.Coefficients) (location string, err error)
}

// DefaultDir returns the user's Desktop when it exists, the home directory
// otherwise, and the OS temp dir as a last resort.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return os.TempDir()
	}
	desktop := filepath.Join(home, "Desktop")
	if st, err := os.Stat(desktop); err == nil && st.IsDir() {
		return desktop
	}

	return home
}

// FileExporter writes Render output to <Dir>/<FileName>, replacing any
// previous export.
type FileExporter struct {
	dir      string
	fileName string
	logger   l.Wrapper
}

// NewFileExporter creates a FileExporter. An empty dir means DefaultDir(),
// an empty fileName means DefaultFileName, a nil logger means no logging.
func NewFileExporter(dir, fileName string, logger l.Wrapper) *FileExporter {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	if dir == "" {
		dir = DefaultDir()
	}
	if fileName == "" {
		fileName = DefaultFileName
	}

	return &FileExporter{
		dir:      dir,
		fileName: fileName,
		logger:   logger.WithFields(l.StringField(l.ClsKey, "FileExporter")),
	}
}

// Path returns the full path of the exported document.
func (fe *FileExporter) Path() string {
	return filepath.Join(fe.dir, fe.fileName)
}

// Export renders the document and writes it to Path().
func (fe *FileExporter) Export(ps *points.PointSet, c poly.Coefficients) (string, error) {
	doc, err := Render(ps, c)
	if err != nil {
		return "", err
	}

	path := fe.Path()
	if err = os.MkdirAll(fe.dir, dirPerm); err != nil {
		fe.logger.WithFields(l.ErrorField(err), l.StringField("dir", fe.dir)).Error("create export dir failed")

		return "", err
	}
	if err = os.WriteFile(path, []byte(doc), filePerm); err != nil {
		fe.logger.WithFields(l.ErrorField(err), l.StringField("path", path)).Error("write export failed")

		return "", err
	}
	fe.logger.WithFields(l.StringField("path", path), l.IntField("points", ps.Len())).Debug("plot exported")

	return path, nil
}
