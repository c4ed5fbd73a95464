package graphical

import (
	"fmt"
	"strings"

	"cogentcore.org/core/core"
	cicons "cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	scalar "github.com/chewxy/math32"

	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`

func num(f float32) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}

func svgDoc(w, h float32, body string) string {
	ws, hs := num(max(w, 1)), num(max(h, 1))
	return fmt.Sprintf(svgOpen, ws, hs, ws, hs) + body + "</svg>"
}

func circleSVG(r float32, c theme.Color) string {
	return svgDoc(2*r, 2*r, fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, num(r), num(r), num(r), c.Hex()))
}

// arcSVG strokes the circle segment from start to end, in radians measured
// clockwise from the positive x axis.
func arcSVG(r, start, end float32, c theme.Color) string {
	stroke := max(r/5, 1)
	rr := r - stroke/2
	x0, y0 := r+rr*scalar.Cos(start), r+rr*scalar.Sin(start)
	x1, y1 := r+rr*scalar.Cos(end), r+rr*scalar.Sin(end)
	large := 0
	if scalar.Abs(end-start) > scalar.Pi {
		large = 1
	}
	sweep := 1
	if end < start {
		sweep = 0
	}
	d := fmt.Sprintf("M %s %s A %s %s 0 %d %d %s %s", num(x0), num(y0), num(rr), num(rr), large, sweep, num(x1), num(y1))
	return svgDoc(2*r, 2*r, fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`, d, c.Hex(), num(stroke)))
}

// pathSVG draws the points as a polyline translated so its extent starts at
// the origin.
func pathSVG(points []view.Point, width float32, c theme.Color) (string, float32, float32) {
	if len(points) == 0 {
		return svgDoc(1, 1, ""), 0, 0
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, lo.Y = scalar.Min(lo.X, p.X), scalar.Min(lo.Y, p.Y)
		hi.X, hi.Y = scalar.Max(hi.X, p.X), scalar.Max(hi.Y, p.Y)
	}
	pts := make([]string, len(points))
	for i, p := range points {
		pts[i] = num(p.X-lo.X) + "," + num(p.Y-lo.Y)
	}
	if width <= 0 {
		width = 1
	}
	w, h := hi.X-lo.X, hi.Y-lo.Y
	body := fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="%s"/>`, strings.Join(pts, " "), c.Hex(), num(width))
	return svgDoc(w, h, body), w, h
}

func capsuleSVG(w, h float32, c theme.Color) string {
	r := min(w, h) / 2
	return svgDoc(w, h, fmt.Sprintf(`<rect width="%s" height="%s" rx="%s" ry="%s" fill="%s"/>`, num(w), num(h), num(r), num(r), c.Hex()))
}

func shapeWidget(svg string, w, h float32) core.Widget {
	ic := core.NewIcon().SetIcon(cicons.Icon(svg))
	ic.Styler(func(s *styles.Style) {
		s.Min.X.Dp(w)
		s.Min.Y.Dp(h)
	})
	return ic
}
