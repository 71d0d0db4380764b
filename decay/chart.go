package decay

import (
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Output files of the two charts.
const (
	DecayChartFile = "decay.png"
	ErrorChartFile = "error.png"
)

// countScale divides atom counts so the y axis reads in units of 10¹⁴.
const countScale = 1e14

// palette is one stroke color per run, coarsest step first.
var palette = []drawing.Color{
	chart.ColorRed,
	chart.ColorBlue,
	chart.ColorCyan,
	chart.ColorGreen,
	{R: 255, G: 0, B: 255, A: 255}, // magenta
}

// DecayChart builds the atom count vs. time chart: every run's counts
// dashed over the analytic curve.
func (runs Runs) DecayChart(days, analytic []float64) chart.Chart {
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Analytic",
			XValues: days,
			YValues: scaleCounts(analytic),
			Style: chart.Style{
				StrokeColor: chart.ColorBlack,
				StrokeWidth: 2.0,
			},
		},
	}
	for i, run := range runs {
		series = append(series, chart.ContinuousSeries{
			Name:    run.Label(),
			XValues: days,
			YValues: scaleCounts(run.Counts),
			Style: chart.Style{
				StrokeColor:     palette[i%len(palette)],
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}

	graph := chart.Chart{
		Title:  "Radon-222 Decay: Numerical vs Analytic",
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name:           "Time (days)",
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Atoms (x10^14)",
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// ErrorChart builds the relative error (%) vs. time chart, one dotted
// series per run.
func (runs Runs) ErrorChart(days []float64) chart.Chart {
	var series []chart.Series
	for i, run := range runs {
		color := palette[i%len(palette)]
		series = append(series, chart.ContinuousSeries{
			Name:    run.Label(),
			XValues: days,
			YValues: run.Errors,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 1.0,
				DotColor:    color,
				DotWidth:    3.0,
			},
		})
	}

	graph := chart.Chart{
		Title:  "Relative Error vs Time",
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name:           "Time (days)",
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Relative Error (%)",
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// SaveDecayChart renders the decay chart to a png file.
func (runs Runs) SaveDecayChart(days, analytic []float64) error {
	return saveChart(runs.DecayChart(days, analytic), DecayChartFile)
}

// SaveErrorChart renders the error chart to a png file.
func (runs Runs) SaveErrorChart(days []float64) error {
	return saveChart(runs.ErrorChart(days), ErrorChartFile)
}

func saveChart(graph chart.Chart, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: chart.ColorLightGray,
		StrokeWidth: 1.0,
	}
}

func scaleCounts(counts []float64) []float64 {
	scaled := make([]float64, len(counts))
	for i, c := range counts {
		scaled[i] = c / countScale
	}
	return scaled
}
