package cmd

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/bank-sim/bank-sim/sim/experiment"
)

// histogramBins is the number of bars in the time-in-system histogram.
const histogramBins = 20

// Report wraps an experiment summary with the output formats the CLI supports.
type Report struct {
	*experiment.Summary
}

// runSimulation runs the experiment described by opts.
func runSimulation(opts experiment.Options) (*Report, error) {
	summary, err := experiment.Run(opts)
	if err != nil {
		return nil, err
	}
	return &Report{Summary: summary}, nil
}

// Print writes the statistics block to stdout. A single replication prints its
// snapshot; several also print the across-replication estimate.
func (r *Report) Print() {
	if len(r.Replications) == 1 {
		r.Replications[0].Print()
		return
	}
	fmt.Println("=== Replication Estimate ===")
	fmt.Printf("Replications           : %d (%d without served clients)\n", len(r.Replications), r.Skipped)
	fmt.Printf("Mean Clients Served    : %.2f\n", r.MeanClientsServed)
	mean, half, err := r.Estimate()
	if err != nil {
		fmt.Printf("Average Time In System : n/a (%v)\n", err)
		return
	}
	fmt.Printf("Average Time In System : %.2f ± %.2f ticks (95%%)\n", mean, half)
	fmt.Printf("Std Dev Across Runs    : %.2f ticks\n", r.StdDevTimeInSystem)
}

// WriteYAML writes the full summary to path.
func (r *Report) WriteYAML(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r.Summary); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// SaveHistogram renders the pooled time-in-system distribution as a PNG.
func (r *Report) SaveHistogram(path string) error {
	if len(r.SystemTimes) == 0 {
		return fmt.Errorf("no served clients to plot")
	}
	values := make(plotter.Values, len(r.SystemTimes))
	for i, v := range r.SystemTimes {
		values[i] = float64(v)
	}

	p := plot.New()
	p.Title.Text = "Time in system"
	p.X.Label.Text = "ticks"
	p.Y.Label.Text = "clients"

	hist, err := plotter.NewHist(values, histogramBins)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}
	p.Add(hist)

	if mean, _, err := r.Estimate(); err == nil && !math.IsNaN(mean) {
		line, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: maxBin(hist)}})
		if err != nil {
			return fmt.Errorf("building mean marker: %w", err)
		}
		p.Add(line)
		p.Legend.Add("mean", line)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func maxBin(h *plotter.Histogram) float64 {
	peak := 0.0
	for _, b := range h.Bins {
		if b.Weight > peak {
			peak = b.Weight
		}
	}
	return peak
}
