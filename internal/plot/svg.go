// Package plot draws a simulation's histogram and reference curve.
package plot

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/KirkDiggler/dicestats/internal/models"
)

const (
	defaultWidth  = 800
	defaultHeight = 480

	marginLeft   = 64
	marginRight  = 24
	marginTop    = 24
	marginBottom = 56

	barColor    = "#1f77b4"
	theoryColor = "#d62728"
)

// Labels holds the text drawn on the chart
type Labels struct {
	AxisX        string
	AxisY        string
	LegendSample string
	LegendTheory string
}

// SVGOptions controls the size of the rendered chart
type SVGOptions struct {
	Width  int
	Height int
}

// frame maps data coordinates into the drawing area
type frame struct {
	width, height int
	xMin, xMax    float64
	yMax          float64
}

func (f frame) x(v float64) float64 {
	inner := float64(f.width - marginLeft - marginRight)
	return marginLeft + (v-f.xMin)/(f.xMax-f.xMin)*inner
}

func (f frame) y(v float64) float64 {
	inner := float64(f.height - marginTop - marginBottom)
	return float64(f.height-marginBottom) - v/f.yMax*inner
}

// SVG renders the plot as a standalone <svg> element. Bars are unit wide and
// centred on their value with height equal to the bin density; the reference
// is drawn as stems for a single die and as a polyline otherwise.
func SVG(p *models.Plot, labels Labels, opts SVGOptions) string {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	f := frame{
		width:  opts.Width,
		height: opts.Height,
		xMin:   float64(p.XMin) - 0.5,
		xMax:   float64(p.XMax) + 0.5,
		yMax:   niceCeil(p.MaxY() * 1.1),
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" role="img">`,
		f.width, f.height, f.width, f.height)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)

	writeAxes(&b, f, p, labels)
	writeBars(&b, f, p.Bins)

	switch p.Theory {
	case models.TheoryKindPMF:
		writeStems(&b, f, p.Curve)
	case models.TheoryKindNormal:
		writeCurve(&b, f, p.Curve)
	}

	writeLegend(&b, f, labels)
	b.WriteString(`</svg>`)
	return b.String()
}

func writeBars(b *strings.Builder, f frame, bins []models.HistogramBin) {
	b.WriteString(`<g class="bars" fill="` + barColor + `" fill-opacity="0.7">`)
	for _, bin := range bins {
		if bin.Count == 0 {
			continue
		}
		left := f.x(float64(bin.Value) - 0.5)
		right := f.x(float64(bin.Value) + 0.5)
		top := f.y(bin.Density)
		fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"><title>%d: %.4f</title></rect>`,
			left, top, right-left, f.y(0)-top, bin.Value, bin.Density)
	}
	b.WriteString(`</g>`)
}

func writeStems(b *strings.Builder, f frame, points []models.Point) {
	b.WriteString(`<g class="theory" stroke="` + theoryColor + `" fill="` + theoryColor + `">`)
	for _, pt := range points {
		x := f.x(pt.X)
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="2"/>`,
			x, f.y(0), x, f.y(pt.Y))
		fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="5"/>`, x, f.y(pt.Y))
	}
	b.WriteString(`</g>`)
}

func writeCurve(b *strings.Builder, f frame, points []models.Point) {
	if len(points) == 0 {
		return
	}
	coords := make([]string, len(points))
	for i, pt := range points {
		coords[i] = fmt.Sprintf("%.2f,%.2f", f.x(pt.X), f.y(pt.Y))
	}
	fmt.Fprintf(b, `<polyline class="theory" fill="none" stroke="%s" stroke-width="2" points="%s"/>`,
		theoryColor, strings.Join(coords, " "))
}

func writeAxes(b *strings.Builder, f frame, p *models.Plot, labels Labels) {
	bottom := f.y(0)
	left := float64(marginLeft)
	right := float64(f.width - marginRight)

	b.WriteString(`<g class="axes" stroke="#333333" font-family="sans-serif" font-size="12">`)
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, left, bottom, right, bottom)
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, left, float64(marginTop), left, bottom)

	for _, v := range xTicks(p.XMin, p.XMax) {
		x := f.x(float64(v))
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, x, bottom, x, bottom+5)
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" text-anchor="middle" stroke="none" fill="#333333">%d</text>`,
			x, bottom+18, v)
	}

	const yTickCount = 5
	for i := 0; i <= yTickCount; i++ {
		v := f.yMax * float64(i) / yTickCount
		y := f.y(v)
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`, left-5, y, left, y)
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" text-anchor="end" stroke="none" fill="#333333">%s</text>`,
			left-8, y+4, formatTick(v))
	}

	fmt.Fprintf(b, `<text x="%.2f" y="%d" text-anchor="middle" stroke="none" fill="#333333">%s</text>`,
		(left+right)/2, f.height-12, html.EscapeString(labels.AxisX))
	fmt.Fprintf(b, `<text transform="translate(16 %.2f) rotate(-90)" text-anchor="middle" stroke="none" fill="#333333">%s</text>`,
		(float64(marginTop)+bottom)/2, html.EscapeString(labels.AxisY))
	b.WriteString(`</g>`)
}

func writeLegend(b *strings.Builder, f frame, labels Labels) {
	x := float64(f.width-marginRight) - 190
	y := float64(marginTop) + 8

	b.WriteString(`<g class="legend" font-family="sans-serif" font-size="12">`)
	fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="14" height="10" fill="%s" fill-opacity="0.7"/>`, x, y, barColor)
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="#333333">%s</text>`, x+20, y+9, html.EscapeString(labels.LegendSample))
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"/>`, x, y+25, x+14, y+25, theoryColor)
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="#333333">%s</text>`, x+20, y+29, html.EscapeString(labels.LegendTheory))
	b.WriteString(`</g>`)
}

// xTicks labels every value for narrow ranges and thins them out for wide ones
func xTicks(lo, hi int) []int {
	step := 1
	if span := hi - lo; span > 15 {
		step = int(math.Ceil(float64(span) / 15))
	}
	var ticks []int
	for v := lo; v <= hi; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten
func niceCeil(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	exp := math.Floor(math.Log10(v))
	base := math.Pow(10, exp)
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*base {
			return m * base
		}
	}
	return 10 * base
}

func formatTick(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
