package view

import (
	"fmt"

	"github.com/odvcencio/facet/pkg/ui/theme"
)

type lengthKind uint8

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthPortion
	lengthFixed
)

// Length is how a primitive sizes itself along one axis. The zero value
// shrinks to content.
type Length struct {
	kind  lengthKind
	value float32
}

var (
	Shrink = Length{kind: lengthShrink}
	Fill   = Length{kind: lengthFill}
)

// FillPortion fills the remaining space in proportion n to its siblings.
func FillPortion(n uint16) Length { return Length{kind: lengthPortion, value: float32(n)} }

// Fixed is an exact size in logical pixels.
func Fixed(v float32) Length { return Length{kind: lengthFixed, value: v} }

func (l Length) IsFixed() bool  { return l.kind == lengthFixed }
func (l Length) IsFill() bool   { return l.kind == lengthFill || l.kind == lengthPortion }
func (l Length) IsShrink() bool { return l.kind == lengthShrink }

// Value is the fixed size, or the fill portion; zero otherwise.
func (l Length) Value() float32 { return l.value }

// Portion returns the fill weight: 1 for Fill, n for FillPortion(n).
func (l Length) Portion() float32 {
	switch l.kind {
	case lengthFill:
		return 1
	case lengthPortion:
		return l.value
	}
	return 0
}

// Or returns l when fixed, otherwise fallback.
func (l Length) Or(fallback float32) float32 {
	if l.IsFixed() {
		return l.value
	}
	return fallback
}

func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		return "fill"
	case lengthPortion:
		return fmt.Sprintf("fill(%g)", l.value)
	case lengthFixed:
		return fmt.Sprintf("%gpx", l.value)
	default:
		return "shrink"
	}
}

// Padding is an inset on each side.
type Padding struct {
	Top, Right, Bottom, Left float32
}

func Uniform(v float32) Padding { return Padding{v, v, v, v} }

// Symmetric pads vertical on top and bottom, horizontal on the sides.
func Symmetric(vertical, horizontal float32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

func (p Padding) Scale(f float32) Padding {
	return Padding{p.Top * f, p.Right * f, p.Bottom * f, p.Left * f}
}

func (p Padding) Add(o Padding) Padding {
	return Padding{p.Top + o.Top, p.Right + o.Right, p.Bottom + o.Bottom, p.Left + o.Left}
}

func (p Padding) Horizontal() float32 { return p.Left + p.Right }
func (p Padding) Vertical() float32   { return p.Top + p.Bottom }
func (p Padding) IsZero() bool        { return p == Padding{} }

// Alignment positions content within extra space.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return "start"
	}
}

type Point struct {
	X, Y float32
}

// Radius holds per-corner radii.
type Radius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

func UniformRadius(v float32) Radius { return Radius{v, v, v, v} }

// Max returns the largest corner.
func (r Radius) Max() float32 {
	m := r.TopLeft
	for _, v := range [...]float32{r.TopRight, r.BottomRight, r.BottomLeft} {
		if v > m {
			m = v
		}
	}
	return m
}

type Shadow struct {
	Color  theme.Color
	Offset Point
	Blur   float32
}

type ScrollDirection int

const (
	ScrollVertical ScrollDirection = iota
	ScrollHorizontal
	ScrollBoth
)

// Font selects a face family.
type Font int

const (
	FontDefault Font = iota
	FontMonospace
)

// Span is one styled run of rich text.
type Span struct {
	Content string
	Color   *theme.Color
	Size    float32
	Bold    bool
	Dim     bool
	Font    Font
}

// Vec3 is a float32 three-vector used by spatial transforms.
type Vec3 struct {
	X, Y, Z float32
}

var (
	Zero3 = Vec3{}
	One3  = Vec3{1, 1, 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// ColorOr dereferences c, or returns fallback when c is nil.
func ColorOr(c *theme.Color, fallback theme.Color) theme.Color {
	if c == nil {
		return fallback
	}
	return *c
}

// ColorPtr returns a pointer to a copy of c.
func ColorPtr(c theme.Color) *theme.Color { return &c }
