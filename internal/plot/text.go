package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/dicestats/internal/models"
)

const (
	// DefaultTextWidth is the length of the tallest bar in characters
	DefaultTextWidth = 24

	fullBlock   = "█"
	theoryGlyph = "│"
)

// Text renders the histogram as one row per value: the bar, the observed
// density and the theoretical probability at that value. The marker on each
// row shows where theory says the bar should end.
func Text(p *models.Plot, width int) string {
	if width <= 0 {
		width = DefaultTextWidth
	}

	top := p.MaxY()
	if top <= 0 {
		top = 1
	}

	valueWidth := len(fmt.Sprint(p.XMax))

	var b strings.Builder
	for _, bin := range p.Bins {
		expected := TheoryAt(p, float64(bin.Value))
		bar := int(math.Round(bin.Density / top * float64(width)))
		mark := int(math.Round(expected / top * float64(width)))

		row := make([]string, width+1)
		for i := range row {
			row[i] = " "
			if i < bar {
				row[i] = fullBlock
			}
		}
		// the marker overwrites the bar when the sample overshoots theory
		row[min(max(mark, 0), width)] = theoryGlyph

		fmt.Fprintf(&b, "%*d %s %.3f (%.3f)\n", valueWidth, bin.Value, strings.TrimRight(strings.Join(row, ""), " "), bin.Density, expected)
	}
	return b.String()
}

// TheoryAt returns the reference value at x: the exact probability for a
// single die, the normal density otherwise (interpolated between samples).
func TheoryAt(p *models.Plot, x float64) float64 {
	switch p.Theory {
	case models.TheoryKindPMF:
		for _, pt := range p.Curve {
			if pt.X == x {
				return pt.Y
			}
		}
		return 0
	case models.TheoryKindNormal:
		return interpolate(p.Curve, x)
	}
	return 0
}

func interpolate(points []models.Point, x float64) float64 {
	if len(points) == 0 {
		return 0
	}
	if x <= points[0].X {
		return points[0].Y
	}
	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if x <= b.X {
			if b.X == a.X {
				return b.Y
			}
			t := (x - a.X) / (b.X - a.X)
			return a.Y + t*(b.Y-a.Y)
		}
	}
	return last.Y
}
