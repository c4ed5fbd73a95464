// Package spatial renders views into a tree of positioned 3D nodes that can
// be hit tested with rays.
//
// Every node's transform is relative to its parent. Leaves compute their own
// footprint from simple heuristics and containers place their children.
package spatial

import (
	"cogentcore.org/core/math32"
	scalar "github.com/chewxy/math32"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/facet/pkg/ui/view"
)

// Fixed footprints of the controls, in points.
const (
	textAdvance  = 10
	lineHeight   = 20
	mediaDefault = 100
)

// Backend is stateless and safe for concurrent use.
type Backend struct{}

var _ view.Backend[*Node] = Backend{}

func leaf(ctx *view.Context, role string, w, h float32) *Node {
	d := float32(1)
	if w == 0 && h == 0 {
		d = 0
	}
	return box(ctx, role, w, h, d)
}

func box(ctx *view.Context, role string, w, h, d float32) *Node {
	return &Node{
		Role:         role,
		Width:        w,
		Height:       h,
		Depth:        d,
		Transform:    Identity(),
		Bounds:       FromSize(w, h, d),
		Billboarding: ctx.Billboarding,
	}
}

func fixedOr(l view.Length, fallback float32) float32 {
	if l.IsFixed() {
		return l.Value()
	}
	return fallback
}

// enclose widens n.Bounds to cover every child at its position.
func enclose(n *Node) {
	for _, c := range n.Children {
		n.Bounds = n.Bounds.Union(c.Bounds.Translate(c.Transform.Position))
	}
}

func container(ctx *view.Context, role string, layout Layout, w, h, d float32, children []*Node) *Node {
	n := box(ctx, role, w, h, d)
	n.Layout = layout
	n.Children = children
	enclose(n)
	return n
}

// Placement adds to the child's position so a modifier on a child survives
// the stack.
func stackAlong(children []*Node, spacing float32, vertical bool) (w, h float32) {
	var offset, cross float32
	for i, c := range children {
		if i > 0 {
			offset += spacing
		}
		if vertical {
			c.Transform.Position.Y += offset
			offset += c.Height
			cross = scalar.Max(cross, c.Width)
		} else {
			c.Transform.Position.X += offset
			offset += c.Width
			cross = scalar.Max(cross, c.Height)
		}
		c.Transform.Position.Z++
	}
	if vertical {
		return cross, offset
	}
	return offset, cross
}

func (Backend) VStack(ctx *view.Context, e view.VStack, children []*Node) *Node {
	w, h := stackAlong(children, e.Spacing, true)
	return container(ctx, "vstack", Vertical, w, h, 1, children)
}

func (Backend) HStack(ctx *view.Context, e view.HStack, children []*Node) *Node {
	w, h := stackAlong(children, e.Spacing, false)
	return container(ctx, "hstack", Horizontal, w, h, 1, children)
}

func (Backend) Wrap(ctx *view.Context, e view.Wrap, children []*Node) *Node {
	w, h := stackAlong(children, e.Spacing, false)
	return container(ctx, "wrap", Wrap, w, h, 1, children)
}

func (Backend) ZStack(ctx *view.Context, _ view.ZStack, children []*Node) *Node {
	var w, h float32
	for i, c := range children {
		c.Transform.Position.Z += float32(i) * ZStackDepthStep
		w = scalar.Max(w, c.Width)
		h = scalar.Max(h, c.Height)
	}
	return container(ctx, "zstack", Layered, w, h, float32(len(children))*ZStackDepthStep, children)
}

func (Backend) Grid(ctx *view.Context, e view.Grid, children []*Node) *Node {
	var cell float32
	for _, c := range children {
		cell = scalar.Max(cell, c.Width)
	}
	rows := view.Chunk(children, e.Columns)
	var y, w float32
	for r, row := range rows {
		if r > 0 {
			y += e.Spacing
		}
		var rowHeight float32
		for col, c := range row {
			c.Transform.Position = c.Transform.Position.Add(math32.Vec3(float32(col)*(cell+e.Spacing), y, 1))
			rowHeight = scalar.Max(rowHeight, c.Height)
		}
		w = scalar.Max(w, float32(len(row))*cell+float32(len(row)-1)*e.Spacing)
		y += rowHeight
	}
	return container(ctx, "grid", Grid, w, y, 1, children)
}

func (Backend) Text(ctx *view.Context, e view.Text) *Node {
	return leaf(ctx, "text", float32(runewidth.StringWidth(e.Content))*textAdvance, lineHeight)
}

func (Backend) RichText(ctx *view.Context, e view.RichText) *Node {
	var w float32
	for _, s := range e.Spans {
		w += float32(runewidth.StringWidth(s.Content)) * textAdvance
	}
	return leaf(ctx, "rich_text", w, lineHeight)
}

func (Backend) Icon(ctx *view.Context, e view.Icon) *Node {
	return leaf(ctx, "icon", e.Size, e.Size)
}

func (Backend) Divider(ctx *view.Context, _ view.Divider) *Node {
	return leaf(ctx, "divider", 100, 1)
}

func (Backend) Space(ctx *view.Context, e view.Space) *Node {
	return box(ctx, "space", fixedOr(e.Width, 0), fixedOr(e.Height, 0), 0)
}

func (Backend) Circle(ctx *view.Context, e view.Circle) *Node {
	return leaf(ctx, "circle", 2*e.Radius, 2*e.Radius)
}

func (Backend) Arc(ctx *view.Context, e view.Arc) *Node {
	return leaf(ctx, "arc", 2*e.Radius, 2*e.Radius)
}

func (Backend) Path(ctx *view.Context, e view.Path) *Node {
	if len(e.Points) == 0 {
		return leaf(ctx, "path", 0, 0)
	}
	lo, hi := e.Points[0], e.Points[0]
	for _, p := range e.Points[1:] {
		lo.X, lo.Y = scalar.Min(lo.X, p.X), scalar.Min(lo.Y, p.Y)
		hi.X, hi.Y = scalar.Max(hi.X, p.X), scalar.Max(hi.Y, p.Y)
	}
	return leaf(ctx, "path", hi.X-lo.X, hi.Y-lo.Y)
}

func (Backend) Capsule(ctx *view.Context, e view.Capsule) *Node {
	return leaf(ctx, "capsule", fixedOr(e.Width, 0), fixedOr(e.Height, 0))
}

func (Backend) Rectangle(ctx *view.Context, e view.Rectangle) *Node {
	return leaf(ctx, "rectangle", fixedOr(e.Width, 0), fixedOr(e.Height, 0))
}

// Button takes over its content node so the press target is the content's
// own box.
func (Backend) Button(ctx *view.Context, e view.Button, content *Node) *Node {
	content.Role = "button"
	content.OnPress = e.OnPress
	content.IsFocused = ctx.IsFocused(e.ID)
	content.Billboarding = ctx.Billboarding
	return content
}

func (Backend) SidebarItem(ctx *view.Context, e view.SidebarItem) *Node {
	n := leaf(ctx, "sidebar_item", 200, 40)
	n.OnPress = e.OnPress
	return n
}

func (Backend) TextInput(ctx *view.Context, e view.TextInput) *Node {
	n := leaf(ctx, "text_input", 200, 40)
	n.IsFocused = ctx.IsFocused(e.ID)
	return n
}

func (Backend) TextEditor(ctx *view.Context, e view.TextEditor) *Node {
	n := leaf(ctx, "text_editor", 300, 200)
	n.IsFocused = ctx.IsFocused(e.ID)
	return n
}

func (Backend) Slider(ctx *view.Context, _ view.Slider) *Node {
	return leaf(ctx, "slider", 200, 20)
}

func (Backend) Toggle(ctx *view.Context, _ view.Toggle) *Node {
	return leaf(ctx, "toggle", 100, 40)
}

func (Backend) Image(ctx *view.Context, e view.Image) *Node {
	return leaf(ctx, "image", fixedOr(e.Width, mediaDefault), fixedOr(e.Height, mediaDefault))
}

func (Backend) Video(ctx *view.Context, e view.Video) *Node {
	return leaf(ctx, "video", fixedOr(e.Width, mediaDefault), fixedOr(e.Height, mediaDefault))
}

func (Backend) WebView(ctx *view.Context, e view.WebView) *Node {
	return leaf(ctx, "web_view", fixedOr(e.Width, mediaDefault), fixedOr(e.Height, mediaDefault))
}

func (Backend) Container(_ *view.Context, _ view.Container, content *Node) *Node   { return content }
func (Backend) ScrollView(_ *view.Context, _ view.ScrollView, content *Node) *Node { return content }
func (Backend) Tooltip(_ *view.Context, _ view.Tooltip, content *Node) *Node       { return content }
func (Backend) GlassCard(_ *view.Context, _ view.GlassCard, content *Node) *Node   { return content }
func (Backend) Section(_ *view.Context, _ view.Section, content *Node) *Node       { return content }

// MouseArea makes its content pressable unless it already carries a payload.
func (Backend) MouseArea(_ *view.Context, e view.MouseArea, content *Node) *Node {
	if content.OnPress == nil {
		content.OnPress = e.OnPress
	}
	return content
}

// SpatialModifier offsets the wrapped node once. A zero Scale leaves the
// scale unchanged.
func (Backend) SpatialModifier(_ *view.Context, e view.SpatialModifier, content *Node) *Node {
	t := &content.Transform
	t.Position = t.Position.Add(math32.Vec3(e.Position.X, e.Position.Y, e.Position.Z))
	t.Rotation = t.Rotation.Add(math32.Vec3(e.Rotation.X, e.Rotation.Y, e.Rotation.Z))
	if e.Scale != (view.Vec3{}) {
		t.Scale = t.Scale.Mul(math32.Vec3(e.Scale.X, e.Scale.Y, e.Scale.Z))
	}
	return content
}

func (Backend) Semantic(ctx *view.Context, e view.Semantic) *Node {
	return box(ctx, e.Node.Role, 0, 0, 0)
}
