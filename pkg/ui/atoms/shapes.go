package atoms

import (
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

type Rectangle struct {
	width, height view.Length
	color         *theme.Color
	radius        float32
	borderWidth   float32
	borderColor   *theme.Color
}

func NewRectangle(width, height view.Length) *Rectangle {
	return &Rectangle{width: width, height: height}
}

func (r *Rectangle) Color(c theme.Color) *Rectangle { r.color = &c; return r }
func (r *Rectangle) Radius(v float32) *Rectangle    { r.radius = v; return r }

func (r *Rectangle) Border(width float32, c theme.Color) *Rectangle {
	r.borderWidth, r.borderColor = width, &c
	return r
}

func (r *Rectangle) Render(ctx *view.Context) view.Element {
	return view.Rectangle{
		Width:       ctx.ScaleLength(r.width),
		Height:      ctx.ScaleLength(r.height),
		Color:       r.color,
		Radius:      view.UniformRadius(ctx.Scale(r.radius)),
		BorderWidth: r.borderWidth,
		BorderColor: r.borderColor,
	}
}

func (r *Rectangle) Describe(*view.Context) semantic.Node { return semantic.New("rectangle") }

type Circle struct {
	radius float32
	color  *theme.Color
}

func NewCircle(radius float32) *Circle { return &Circle{radius: radius} }

func (c *Circle) Color(col theme.Color) *Circle { c.color = &col; return c }

func (c *Circle) Render(ctx *view.Context) view.Element {
	return view.Circle{Radius: ctx.Scale(c.radius), Color: c.color}
}

func (c *Circle) Describe(*view.Context) semantic.Node { return semantic.New("circle") }

// Arc strokes part of a circle between two angles in radians.
type Arc struct {
	radius     float32
	start, end float32
	color      *theme.Color
}

func NewArc(radius, start, end float32) *Arc {
	return &Arc{radius: radius, start: start, end: end}
}

func (a *Arc) Color(c theme.Color) *Arc { a.color = &c; return a }

func (a *Arc) Render(ctx *view.Context) view.Element {
	return view.Arc{Radius: ctx.Scale(a.radius), StartAngle: a.start, EndAngle: a.end, Color: a.color}
}

func (a *Arc) Describe(*view.Context) semantic.Node { return semantic.New("arc") }

// Path is an open polyline through its points.
type Path struct {
	points []view.Point
	color  *theme.Color
	width  float32
}

func NewPath(points ...view.Point) *Path { return &Path{points: points, width: 1} }

func (p *Path) Color(c theme.Color) *Path { p.color = &c; return p }
func (p *Path) Width(w float32) *Path     { p.width = w; return p }

func (p *Path) Render(ctx *view.Context) view.Element {
	pts := make([]view.Point, len(p.points))
	for i, pt := range p.points {
		pts[i] = view.Point{X: ctx.Scale(pt.X), Y: ctx.Scale(pt.Y)}
	}
	return view.Path{Points: pts, Color: p.color, Width: ctx.Scale(p.width)}
}

func (p *Path) Describe(*view.Context) semantic.Node { return semantic.New("path") }

type Capsule struct {
	width, height view.Length
	color         *theme.Color
}

func NewCapsule(width, height view.Length) *Capsule {
	return &Capsule{width: width, height: height}
}

func (c *Capsule) Color(col theme.Color) *Capsule { c.color = &col; return c }

func (c *Capsule) Render(ctx *view.Context) view.Element {
	return view.Capsule{Width: ctx.ScaleLength(c.width), Height: ctx.ScaleLength(c.height), Color: c.color}
}

func (c *Capsule) Describe(*view.Context) semantic.Node { return semantic.New("capsule") }

type Divider struct{}

func NewDivider() Divider { return Divider{} }

func (Divider) Render(*view.Context) view.Element    { return view.Divider{} }
func (Divider) Describe(*view.Context) semantic.Node { return semantic.New("divider") }

type Space struct {
	width, height view.Length
}

func NewSpace(width, height view.Length) Space { return Space{width: width, height: height} }

// Spacer fills the remaining room along both axes.
func Spacer() Space { return NewSpace(view.Fill, view.Fill) }

func (s Space) Render(ctx *view.Context) view.Element {
	return view.Space{Width: ctx.ScaleLength(s.width), Height: ctx.ScaleLength(s.height)}
}

func (Space) Describe(*view.Context) semantic.Node { return semantic.New("space") }
