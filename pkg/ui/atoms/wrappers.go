package atoms

import (
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

func renderContent(ctx *view.Context, v view.View) view.Element {
	if v == nil {
		return nil
	}
	return v.Render(ctx)
}

func describeContent(ctx *view.Context, v view.View) semantic.Node {
	if v == nil {
		return semantic.New("view")
	}
	return view.Describe(ctx, v)
}

// Container decorates a single child with padding, a background, a border
// and a shadow.
type Container struct {
	content       view.View
	padding       view.Padding
	width, height view.Length
	background    *theme.Color
	radius        float32
	borderWidth   float32
	borderColor   *theme.Color
	shadow        *view.Shadow
	alignX        view.Alignment
	alignY        view.Alignment
}

func NewContainer(content view.View) *Container { return &Container{content: content} }

func (c *Container) Padding(p view.Padding) *Container     { c.padding = p; return c }
func (c *Container) Width(w view.Length) *Container        { c.width = w; return c }
func (c *Container) Height(h view.Length) *Container       { c.height = h; return c }
func (c *Container) Background(col theme.Color) *Container { c.background = &col; return c }
func (c *Container) Radius(r float32) *Container           { c.radius = r; return c }
func (c *Container) Shadow(s view.Shadow) *Container       { c.shadow = &s; return c }
func (c *Container) AlignX(a view.Alignment) *Container    { c.alignX = a; return c }
func (c *Container) AlignY(a view.Alignment) *Container    { c.alignY = a; return c }

func (c *Container) Border(width float32, col theme.Color) *Container {
	c.borderWidth, c.borderColor = width, &col
	return c
}

// CenterX fills width w and centers the content horizontally.
func (c *Container) CenterX(w view.Length) *Container { return c.Width(w).AlignX(view.Center) }

// CenterY fills height h and centers the content vertically.
func (c *Container) CenterY(h view.Length) *Container { return c.Height(h).AlignY(view.Center) }

func (c *Container) Render(ctx *view.Context) view.Element {
	return view.Container{
		Content:     renderContent(ctx, c.content),
		Padding:     ctx.ScalePadding(c.padding),
		Width:       ctx.ScaleLength(c.width),
		Height:      ctx.ScaleLength(c.height),
		Background:  c.background,
		Radius:      view.UniformRadius(ctx.Scale(c.radius)),
		BorderWidth: c.borderWidth,
		BorderColor: c.borderColor,
		Shadow:      c.shadow,
		AlignX:      c.alignX,
		AlignY:      c.alignY,
	}
}

func (c *Container) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("container").Push(describeContent(ctx, c.content))
}

// ScrollView clips its content and scrolls it along Direction.
type ScrollView struct {
	content       view.View
	id            string
	width, height view.Length
	indicators    bool
	direction     view.ScrollDirection
}

func NewScrollView(content view.View) *ScrollView {
	return &ScrollView{content: content, width: view.Fill, height: view.Fill, indicators: true}
}

func (s *ScrollView) ID(id string) *ScrollView                     { s.id = id; return s }
func (s *ScrollView) Width(w view.Length) *ScrollView              { s.width = w; return s }
func (s *ScrollView) Height(h view.Length) *ScrollView             { s.height = h; return s }
func (s *ScrollView) HideIndicators() *ScrollView                  { s.indicators = false; return s }
func (s *ScrollView) Direction(d view.ScrollDirection) *ScrollView { s.direction = d; return s }

// Render hides the indicators of a scroll view nested in another one.
func (s *ScrollView) Render(ctx *view.Context) view.Element {
	return view.ScrollView{
		Content:        renderContent(ctx.WithNestedScroll(), s.content),
		ID:             s.id,
		Width:          ctx.ScaleLength(s.width),
		Height:         ctx.ScaleLength(s.height),
		ShowIndicators: s.indicators && !ctx.InsideScroll,
		Direction:      s.direction,
	}
}

func (s *ScrollView) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("scroll_view").WithID(s.id).Push(describeContent(ctx, s.content))
}

// MouseArea reports pointer activity over its content.
type MouseArea struct {
	content   view.View
	onMove    func(view.Point) view.Message
	onPress   view.Message
	onRelease view.Message
}

func NewMouseArea(content view.View) *MouseArea { return &MouseArea{content: content} }

func (m *MouseArea) OnPress(msg view.Message) *MouseArea                { m.onPress = msg; return m }
func (m *MouseArea) OnRelease(msg view.Message) *MouseArea              { m.onRelease = msg; return m }
func (m *MouseArea) OnMove(fn func(view.Point) view.Message) *MouseArea { m.onMove = fn; return m }

func (m *MouseArea) Render(ctx *view.Context) view.Element {
	return view.MouseArea{Content: renderContent(ctx, m.content), OnMove: m.onMove, OnPress: m.onPress, OnRelease: m.onRelease}
}

func (m *MouseArea) Describe(ctx *view.Context) semantic.Node {
	return describeContent(ctx, m.content)
}

// Tooltip shows text when the content is hovered.
type Tooltip struct {
	content view.View
	text    string
}

func NewTooltip(content view.View, text string) *Tooltip {
	return &Tooltip{content: content, text: text}
}

func (t *Tooltip) Render(ctx *view.Context) view.Element {
	return view.Tooltip{Content: renderContent(ctx, t.content), Text: t.text}
}

// Describe keeps existing documentation on the content and otherwise
// documents it with the tooltip text.
func (t *Tooltip) Describe(ctx *view.Context) semantic.Node {
	n := describeContent(ctx, t.content)
	if n.Documentation == "" {
		n = n.WithDocumentation(t.text)
	}
	return n
}
