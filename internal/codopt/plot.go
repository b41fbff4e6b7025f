package codopt

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotTrajectory renders the best cumulative score at each search step
// to an image file (format from the extension: .png, .svg, .pdf).
func plotTrajectory(filename string, steps []StepStats) error {
	p := plot.New()
	p.Title.Text = "Best Score by Step"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Cumulative Score"

	best := make(plotter.XYs, len(steps))
	mean := make(plotter.XYs, len(steps))
	for i, s := range steps {
		best[i].X = float64(s.Position)
		best[i].Y = s.Best
		mean[i].X = float64(s.Position)
		mean[i].Y = s.Mean
	}

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return err
	}
	bestLine.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	bestLine.LineStyle.Width = vg.Points(2)
	p.Add(bestLine)
	p.Legend.Add("best", bestLine)

	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return err
	}
	meanLine.LineStyle.Color = color.RGBA{R: 200, G: 100, B: 50, A: 255}
	meanLine.LineStyle.Width = vg.Points(1)
	p.Add(meanLine)
	p.Legend.Add("beam mean", meanLine)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
