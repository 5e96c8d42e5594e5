package export

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"forestfire/internal/sims/forestfire"
)

// BurnSeries holds per-step fractions of the tree population.
type BurnSeries struct {
	Steps   []float64
	Intact  []float64
	Burning []float64
	Burned  []float64
}

// NewBurnSeries converts a run's census history into fractions of the trees.
func NewBurnSeries(history []forestfire.Census) BurnSeries {
	s := BurnSeries{
		Steps:   make([]float64, len(history)),
		Intact:  make([]float64, len(history)),
		Burning: make([]float64, len(history)),
		Burned:  make([]float64, len(history)),
	}
	for i, c := range history {
		s.Steps[i] = float64(i)
		trees := float64(c.Trees())
		if trees == 0 {
			continue
		}
		s.Intact[i] = float64(c.Unignited) / trees
		s.Burning[i] = float64(c.Burning) / trees
		s.Burned[i] = float64(c.Burned) / trees
	}
	return s
}

// WriteBurnChart renders the intact, burning and burned fractions per step as
// a PNG line chart.
func WriteBurnChart(w io.Writer, frames []*forestfire.Lattice) error {
	if len(frames) < 2 {
		return fmt.Errorf("%w: chart needs at least two frames, got %d", ErrTooFewFrames, len(frames))
	}
	series := NewBurnSeries(forestfire.History(frames))

	graph := chart.Chart{
		Title:  "Fire spread",
		Width:  640,
		Height: 360,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "step",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%d", int(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:  "fraction of trees",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "intact",
				XValues: series.Steps,
				YValues: series.Intact,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 0, G: 160, B: 0, A: 255}, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "burning",
				XValues: series.Steps,
				YValues: series.Burning,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "burned",
				XValues: series.Steps,
				YValues: series.Burned,
				Style:   chart.Style{StrokeColor: chart.ColorBlack, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render burn chart: %w", err)
	}
	return nil
}
