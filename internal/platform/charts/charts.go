// Package charts is the visualization sink: it takes label -> value
// mappings and renders them as chart files. The caller never gets data
// back, only the path of the rendered file.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/apoteklabs/apotek-cli/internal/platform/logger"
)

type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Histogram renders a bar chart of the data to <dir>/<filename>.
func (r *Renderer) Histogram(title, filename string, data map[string]float64) (string, error) {
	labels := sortedLabels(data)
	items := make([]opts.BarData, 0, len(labels))
	for _, label := range labels {
		items = append(items, opts.BarData{Value: data[label]})
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(echarts.WithTitleOpts(opts.Title{Title: title}))
	bar.SetXAxis(labels).AddSeries("count", items)

	return r.render(filename, bar.Render)
}

// Pie renders a pie chart of the data to <dir>/<filename>.
func (r *Renderer) Pie(title, filename string, data map[string]float64) (string, error) {
	labels := sortedLabels(data)
	items := make([]opts.PieData, 0, len(labels))
	for _, label := range labels {
		items = append(items, opts.PieData{Name: label, Value: data[label]})
	}

	pie := echarts.NewPie()
	pie.SetGlobalOptions(echarts.WithTitleOpts(opts.Title{Title: title}))
	pie.AddSeries("count", items)

	return r.render(filename, pie.Render)
}

func (r *Renderer) render(filename string, renderFn func(w io.Writer) error) (string, error) {
	path := filepath.Join(r.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("charts: create %s: %w", path, err)
	}
	if err := renderFn(f); err != nil {
		f.Close()
		return "", fmt.Errorf("charts: render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("charts: close %s: %w", path, err)
	}
	logger.Info("charts: rendered %s", path)
	return path, nil
}

// sortedLabels keeps chart output deterministic regardless of map order.
func sortedLabels(data map[string]float64) []string {
	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
