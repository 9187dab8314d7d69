// Package export is the text sink: it writes pre-formatted lines to a
// file, one record per line, newline-terminated.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apoteklabs/apotek-cli/internal/platform/logger"
)

type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// WriteLines writes the lines to <dir>/<filename> and returns the full
// path. The file is closed on every exit path, including write failures.
func (e *Exporter) WriteLines(filename string, lines []string) (string, error) {
	path := filepath.Join(e.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return "", fmt.Errorf("export: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("export: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}

	logger.Info("export: wrote %d lines to %s", len(lines), path)
	return path, nil
}
