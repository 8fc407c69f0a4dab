package sink

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot draws a bar chart of repeats per length over the whole run. The image format
// follows the file extension.
type Plot struct {
	filename string
	title    string
	counts   []int
}

func NewPlot(filename string) *Plot {
	return &Plot{filename: filename}
}

func (p *Plot) Start(h Header) error {
	p.title = h.Mode.Name() + " repeats in " + h.Input
	return nil
}

func (p *Plot) BeginRecord(info RecordInfo) (bool, error) {
	return false, nil
}

func (p *Plot) OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error {
	return nil
}

func (p *Plot) AfterEverySequence(counts []int) error {
	for len(p.counts) < len(counts) {
		p.counts = append(p.counts, 0)
	}
	for i := range counts {
		p.counts[i] += counts[i]
	}
	return nil
}

// Close saves the chart. Nothing is written when no repeat was found.
func (p *Plot) Close() error {
	var values plotter.Values
	var labels []string
	for length, count := range p.counts {
		if count == 0 && len(values) == 0 {
			continue
		}
		values = append(values, float64(count))
		labels = append(labels, strconv.Itoa(length))
	}
	if len(values) == 0 {
		return nil
	}

	pl := plot.New()
	pl.Title.Text = p.title
	pl.X.Label.Text = "Repeat Length"
	pl.Y.Label.Text = "Repeats"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	pl.Add(bars)
	pl.NominalX(labels...)

	return pl.Save(20*vg.Centimeter, 12*vg.Centimeter, p.filename)
}
