package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/facet/pkg/ui/semantic"
)

// View is a component description. Render resolves the view's
// configuration against ctx and returns the primitive elements to draw.
type View interface {
	Render(ctx *Context) Element
}

// Describer is implemented by views that provide a backend-independent
// semantic description of themselves.
type Describer interface {
	Describe(ctx *Context) semantic.Node
}

// Func adapts a function to the View interface.
type Func func(ctx *Context) Element

func (f Func) Render(ctx *Context) Element { return f(ctx) }

// Static is a View that always renders the same element.
func Static(e Element) View {
	return Func(func(*Context) Element { return e })
}

// SemanticView renders and describes as a fixed semantic node.
type SemanticView struct {
	Node semantic.Node
}

func (s SemanticView) Render(*Context) Element         { return Semantic{Node: s.Node} }
func (s SemanticView) Describe(*Context) semantic.Node { return s.Node }

// Describe returns v's semantic description, or a generic "view" node when
// v does not describe itself.
func Describe(ctx *Context, v View) semantic.Node {
	if d, ok := v.(Describer); ok {
		return d.Describe(ctx)
	}
	return semantic.New("view")
}

// DescribeAll describes each view in order.
func DescribeAll(ctx *Context, views []View) []semantic.Node {
	out := make([]semantic.Node, 0, len(views))
	for _, v := range views {
		out = append(out, Describe(ctx, v))
	}
	return out
}

// RenderViews resolves each view in order.
func RenderViews(ctx *Context, views []View) []Element {
	out := make([]Element, 0, len(views))
	for _, v := range views {
		out = append(out, v.Render(ctx))
	}
	return out
}

// Render resolves v and draws it into b.
func Render[N any](b Backend[N], ctx *Context, v View) N {
	if v == nil {
		return RenderElement(b, ctx, nil)
	}
	return RenderElement(b, ctx, v.Render(ctx))
}

// RenderElement walks e depth first, rendering every child before the
// element that contains it, and calls exactly one backend method per
// element.
func RenderElement[N any](b Backend[N], ctx *Context, e Element) N {
	switch e := e.(type) {
	case VStack:
		return b.VStack(ctx, e, renderChildren(b, ctx, e.Children))
	case HStack:
		return b.HStack(ctx, e, renderChildren(b, ctx, e.Children))
	case Wrap:
		return b.Wrap(ctx, e, renderChildren(b, ctx, e.Children))
	case ZStack:
		return b.ZStack(ctx, e, renderChildren(b, ctx, e.Children))
	case Grid:
		return b.Grid(ctx, e, renderChildren(b, ctx, e.Children))
	case Text:
		return b.Text(ctx, e)
	case RichText:
		return b.RichText(ctx, e)
	case Icon:
		return b.Icon(ctx, e)
	case Divider:
		return b.Divider(ctx, e)
	case Space:
		return b.Space(ctx, e)
	case Circle:
		return b.Circle(ctx, e)
	case Arc:
		return b.Arc(ctx, e)
	case Path:
		return b.Path(ctx, e)
	case Capsule:
		return b.Capsule(ctx, e)
	case Rectangle:
		return b.Rectangle(ctx, e)
	case Button:
		return b.Button(ctx, e, RenderElement(b, ctx, e.Content))
	case SidebarItem:
		return b.SidebarItem(ctx, e)
	case TextInput:
		return b.TextInput(ctx, e)
	case TextEditor:
		return b.TextEditor(ctx, e)
	case Slider:
		return b.Slider(ctx, e)
	case Toggle:
		return b.Toggle(ctx, e)
	case Image:
		return b.Image(ctx, e)
	case Video:
		return b.Video(ctx, e)
	case WebView:
		return b.WebView(ctx, e)
	case Container:
		return b.Container(ctx, e, RenderElement(b, ctx, e.Content))
	case ScrollView:
		inner := ctx.WithNestedScroll()
		return b.ScrollView(ctx, e, RenderElement(b, inner, e.Content))
	case MouseArea:
		return b.MouseArea(ctx, e, RenderElement(b, ctx, e.Content))
	case Tooltip:
		return b.Tooltip(ctx, e, RenderElement(b, ctx, e.Content))
	case GlassCard:
		return b.GlassCard(ctx, e, RenderElement(b, ctx, e.Content))
	case Section:
		return b.Section(ctx, e, RenderElement(b, ctx, e.Content))
	case SpatialModifier:
		return b.SpatialModifier(ctx, e, RenderElement(b, ctx, e.Content))
	case Semantic:
		return b.Semantic(ctx, e)
	case Scope:
		scoped := e.Context
		if scoped == nil {
			scoped = ctx
		}
		return RenderElement(b, scoped, e.Content)
	default:
		return b.Space(ctx, Space{})
	}
}

func renderChildren[N any](b Backend[N], ctx *Context, children []Element) []N {
	out := make([]N, len(children))
	for i, c := range children {
		out[i] = RenderElement(b, ctx, c)
	}
	return out
}

// RenderAll renders v once per context, concurrently. b must be safe for
// concurrent use; the terminal, agent and spatial backends are. The error is
// non-nil only when ctx is cancelled before every render has started.
func RenderAll[N any](ctx context.Context, b Backend[N], ctxs []*Context, v View) ([]N, error) {
	out := make([]N, len(ctxs))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range ctxs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Render(b, c, v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Chunk splits items into consecutive rows of at most cols entries.
func Chunk[T any](items []T, cols int) [][]T {
	if cols < 1 {
		cols = 1
	}
	rows := make([][]T, 0, (len(items)+cols-1)/cols)
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		rows = append(rows, items[start:end])
	}
	return rows
}
