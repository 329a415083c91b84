package silhouette

import (
	"fmt"
	"strings"

	"github.com/drakos74/silhouette/internal/chart"
	clustermath "github.com/drakos74/silhouette/internal/math"
	"github.com/drakos74/silhouette/internal/metrics"
	"github.com/drakos74/silhouette/internal/validate"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/vg"
)

var (
	TypeMismatchErr = validate.TypeMismatchErr
	ComputationErr  = clustermath.ComputationErr
)

const unnamed = "unnamed"

// Config holds the presentation options of an inspection.
type Config struct {
	// Name is shown in the plot title.
	Name string
	// Show keeps the canvas open and hands it to the caller.
	// Otherwise it is closed before returning.
	Show bool
	// SavePath is the image file the plot is written to, if set.
	SavePath string
	// Report asks for the summary to be returned.
	Report bool
	// Figures is the registry the canvas is opened on, chart.Figures if nil.
	Figures *chart.Registry
	// Width of the canvas, chart.DefaultWidth if zero.
	Width vg.Length
	// Height of the canvas, chart.DefaultHeight if zero.
	Height vg.Length
}

// DefaultConfig shows the plot and returns the report.
func DefaultConfig() Config {
	return Config{
		Show:   true,
		Report: true,
	}
}

func (c Config) model() string {
	if c.Name == "" {
		return unnamed
	}
	return c.Name
}

func (c Config) figures() *chart.Registry {
	if c.Figures == nil {
		return chart.Figures
	}
	return c.Figures
}

// Inspect computes the silhouette of the clustering and draws the silhouette plot.
// data must be a mat.Matrix or a rectangular [][]float64, with one label per row.
// The canvas is returned only when cfg.Show is set, the caller must close it.
// The report is returned only when cfg.Report is set.
func Inspect[L constraints.Ordered](data interface{}, labels []L, cfg Config) (*Report[L], *chart.Canvas, error) {
	model := cfg.model()

	table, err := validate.Table("dataset", data)
	if err != nil {
		metrics.Observer.Fail(model)
		return nil, nil, err
	}
	rows, _ := table.Dims()
	if err := validate.Aligned("labels", rows, len(labels)); err != nil {
		metrics.Observer.Fail(model)
		return nil, nil, err
	}
	if err := validate.Path("save_path", cfg.SavePath); err != nil {
		metrics.Observer.Fail(model)
		return nil, nil, err
	}

	samples, err := clustermath.Samples(table, labels)
	if err != nil {
		log.Error().Err(err).Str("model", model).Int("samples", rows).Msg("could not compute silhouette")
		metrics.Observer.Fail(model)
		return nil, nil, err
	}
	mean := stat.Mean(samples, nil)

	report, groups := summarise(labels, samples, mean)

	canvas := cfg.figures().Open()
	if cfg.Width > 0 {
		canvas.Width = cfg.Width
	}
	if cfg.Height > 0 {
		canvas.Height = cfg.Height
	}

	bands, yMax := chart.Layout(groups, chart.NewRainbow())
	plot := chart.Silhouette{
		Title: title(cfg.Name, mean, len(groups)),
		Mean:  mean,
		Bands: bands,
		YMax:  yMax,
	}
	if err := plot.Draw(canvas); err != nil {
		canvas.Close()
		metrics.Observer.Fail(model)
		return nil, nil, err
	}

	if cfg.SavePath != "" {
		if err := canvas.Save(cfg.SavePath); err != nil {
			canvas.Close()
			metrics.Observer.Fail(model)
			return nil, nil, err
		}
	}

	log.Info().
		Str("model", model).
		Float64("mean", mean).
		Int("clusters", len(groups)).
		Int("samples", rows).
		Str("canvas", canvas.ID).
		Msg("inspected silhouette")
	metrics.Observer.Observe(model, mean, samples)

	if !cfg.Show {
		canvas.Close()
		canvas = nil
	}
	if !cfg.Report {
		report = nil
	}
	return report, canvas, nil
}

// Plot draws the silhouette plot with the default title and leaves the canvas open on chart.Figures.
// Every call adds a canvas to chart.Figures until it is closed.
func Plot[L constraints.Ordered](data interface{}, labels []L) (*chart.Canvas, error) {
	_, canvas, err := Inspect(data, labels, Config{Show: true})
	return canvas, err
}

func summarise[L constraints.Ordered](labels []L, samples []float64, mean float64) (*Report[L], []chart.Group) {
	distinct, index := clustermath.Encode(labels)

	stats := make([]*clustermath.Stats, len(distinct))
	values := make([][]float64, len(distinct))
	for c := range distinct {
		stats[c] = clustermath.NewStats()
	}
	for i, c := range index {
		stats[c].Push(samples[i])
		values[c] = append(values[c], samples[i])
	}

	report := &Report[L]{
		Mean:     mean,
		Clusters: make([]Cluster[L], len(distinct)),
	}
	groups := make([]chart.Group, len(distinct))
	for c, label := range distinct {
		report.Clusters[c] = Cluster[L]{
			Label: label,
			Size:  stats[c].Count(),
			Mean:  stats[c].Avg(),
			Min:   stats[c].Min(),
			Max:   stats[c].Max(),
		}
		groups[c] = chart.Group{
			Name:   fmt.Sprint(label),
			Values: values[c],
		}
	}
	return report, groups
}

func title(name string, mean float64, clusters int) string {
	if name == "" {
		return fmt.Sprintf("Mean silhouette: %.3f\nNumber of clusters: %d", mean, clusters)
	}
	n := strings.ToUpper(name)
	return fmt.Sprintf("%s mean silhouette: %.3f\n%s number of clusters: %d", n, mean, n, clusters)
}
