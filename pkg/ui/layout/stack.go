// Package layout holds the backend-agnostic containers. A container renders
// its children first and hands the resolved elements, with spacing and
// padding already scaled, to the backend's stack primitive. It never
// positions children itself.
package layout

import (
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// flow is the configuration shared by the linear containers.
type flow struct {
	children       []view.View
	spacing        float32
	padding        view.Padding
	width, height  view.Length
	alignX, alignY view.Alignment
}

func newFlow(children []view.View) flow {
	return flow{children: children, width: view.Fill}
}

func (f flow) describe(ctx *view.Context, role string) semantic.Node {
	return semantic.New(role).Extend(view.DescribeAll(ctx, f.children)...)
}

// VStack lays children out top to bottom.
type VStack struct{ flow }

func NewVStack(children ...view.View) *VStack { return &VStack{newFlow(children)} }

func (s *VStack) Push(v view.View) *VStack        { s.children = append(s.children, v); return s }
func (s *VStack) Spacing(v float32) *VStack       { s.spacing = v; return s }
func (s *VStack) Padding(p view.Padding) *VStack  { s.padding = p; return s }
func (s *VStack) Width(w view.Length) *VStack     { s.width = w; return s }
func (s *VStack) Height(h view.Length) *VStack    { s.height = h; return s }
func (s *VStack) AlignX(a view.Alignment) *VStack { s.alignX = a; return s }
func (s *VStack) AlignY(a view.Alignment) *VStack { s.alignY = a; return s }

func (s *VStack) Render(ctx *view.Context) view.Element {
	return view.VStack{
		Children: view.RenderViews(ctx, s.children),
		Spacing:  ctx.Scale(s.spacing),
		Padding:  ctx.ScalePadding(s.padding),
		Width:    ctx.ScaleLength(s.width),
		Height:   ctx.ScaleLength(s.height),
		AlignX:   s.alignX,
		AlignY:   s.alignY,
	}
}

func (s *VStack) Describe(ctx *view.Context) semantic.Node { return s.describe(ctx, "vstack") }

// HStack lays children out left to right.
type HStack struct{ flow }

func NewHStack(children ...view.View) *HStack { return &HStack{newFlow(children)} }

func (s *HStack) Push(v view.View) *HStack        { s.children = append(s.children, v); return s }
func (s *HStack) Spacing(v float32) *HStack       { s.spacing = v; return s }
func (s *HStack) Padding(p view.Padding) *HStack  { s.padding = p; return s }
func (s *HStack) Width(w view.Length) *HStack     { s.width = w; return s }
func (s *HStack) Height(h view.Length) *HStack    { s.height = h; return s }
func (s *HStack) AlignX(a view.Alignment) *HStack { s.alignX = a; return s }
func (s *HStack) AlignY(a view.Alignment) *HStack { s.alignY = a; return s }

func (s *HStack) Render(ctx *view.Context) view.Element {
	return view.HStack{
		Children: view.RenderViews(ctx, s.children),
		Spacing:  ctx.Scale(s.spacing),
		Padding:  ctx.ScalePadding(s.padding),
		Width:    ctx.ScaleLength(s.width),
		Height:   ctx.ScaleLength(s.height),
		AlignX:   s.alignX,
		AlignY:   s.alignY,
	}
}

func (s *HStack) Describe(ctx *view.Context) semantic.Node { return s.describe(ctx, "hstack") }

// Wrap flows children horizontally. Where a row breaks is up to the
// backend.
type Wrap struct {
	flow
	runSpacing float32
}

func NewWrap(children ...view.View) *Wrap { return &Wrap{flow: newFlow(children)} }

func (w *Wrap) Push(v view.View) *Wrap        { w.children = append(w.children, v); return w }
func (w *Wrap) Spacing(v float32) *Wrap       { w.spacing = v; return w }
func (w *Wrap) RunSpacing(v float32) *Wrap    { w.runSpacing = v; return w }
func (w *Wrap) Padding(p view.Padding) *Wrap  { w.padding = p; return w }
func (w *Wrap) Width(l view.Length) *Wrap     { w.width = l; return w }
func (w *Wrap) Height(l view.Length) *Wrap    { w.height = l; return w }
func (w *Wrap) AlignX(a view.Alignment) *Wrap { w.alignX = a; return w }
func (w *Wrap) AlignY(a view.Alignment) *Wrap { w.alignY = a; return w }

func (w *Wrap) Render(ctx *view.Context) view.Element {
	return view.Wrap{
		Children:   view.RenderViews(ctx, w.children),
		Spacing:    ctx.Scale(w.spacing),
		RunSpacing: ctx.Scale(w.runSpacing),
		Padding:    ctx.ScalePadding(w.padding),
		Width:      ctx.ScaleLength(w.width),
		Height:     ctx.ScaleLength(w.height),
		AlignX:     w.alignX,
		AlignY:     w.alignY,
	}
}

func (w *Wrap) Describe(ctx *view.Context) semantic.Node { return w.describe(ctx, "wrap") }

// ZStack layers children in order, later children on top. In the spatial
// backend each layer also sits slightly closer to the viewer.
type ZStack struct {
	children      []view.View
	width, height view.Length
	alignment     view.Alignment
}

func NewZStack(children ...view.View) *ZStack { return &ZStack{children: children} }

func (z *ZStack) Push(v view.View) *ZStack       { z.children = append(z.children, v); return z }
func (z *ZStack) Width(w view.Length) *ZStack    { z.width = w; return z }
func (z *ZStack) Height(h view.Length) *ZStack   { z.height = h; return z }
func (z *ZStack) Align(a view.Alignment) *ZStack { z.alignment = a; return z }

func (z *ZStack) Render(ctx *view.Context) view.Element {
	return view.ZStack{
		Children:  view.RenderViews(ctx, z.children),
		Width:     ctx.ScaleLength(z.width),
		Height:    ctx.ScaleLength(z.height),
		Alignment: z.alignment,
	}
}

func (z *ZStack) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("zstack").Extend(view.DescribeAll(ctx, z.children)...)
}
