package layout

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

// Card frames its content on the theme surface with a hairline border.
// A zero radius means the theme radius.
type Card struct {
	content     view.View
	padding     view.Padding
	width       view.Length
	radius      float32
	background  *theme.Color
	borderWidth float32
	borderColor *theme.Color
}

func NewCard(content view.View) *Card {
	return &Card{content: content, padding: view.Uniform(16), width: view.Fill, borderWidth: 1}
}

func (c *Card) Padding(p view.Padding) *Card     { c.padding = p; return c }
func (c *Card) Width(w view.Length) *Card        { c.width = w; return c }
func (c *Card) Radius(r float32) *Card           { c.radius = r; return c }
func (c *Card) Background(col theme.Color) *Card { c.background = &col; return c }

func (c *Card) Border(width float32, col theme.Color) *Card {
	c.borderWidth, c.borderColor = width, &col
	return c
}

func (c *Card) Render(ctx *view.Context) view.Element {
	colors := ctx.Theme.Colors
	radius := c.radius
	if radius == 0 {
		radius = ctx.Theme.Radius
	}
	return view.Container{
		Content:     renderContent(ctx, c.content),
		Padding:     ctx.ScalePadding(c.padding),
		Width:       ctx.ScaleLength(c.width),
		Height:      view.Shrink,
		Background:  view.ColorPtr(view.ColorOr(c.background, colors.Surface)),
		Radius:      view.UniformRadius(ctx.Scale(radius)),
		BorderWidth: c.borderWidth,
		BorderColor: view.ColorPtr(view.ColorOr(c.borderColor, colors.Border)),
	}
}

func (c *Card) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("card").Push(describeContent(ctx, c.content))
}

// Section is titled content.
type Section struct {
	title         string
	content       view.View
	width, height view.Length
}

func NewSection(title string, content view.View) *Section {
	return &Section{title: title, content: content, width: view.Fill}
}

func (s *Section) Width(w view.Length) *Section  { s.width = w; return s }
func (s *Section) Height(h view.Length) *Section { s.height = h; return s }

func (s *Section) Render(ctx *view.Context) view.Element {
	return view.Section{
		Title:   s.title,
		Content: renderContent(ctx, s.content),
		Width:   ctx.ScaleLength(s.width),
		Height:  ctx.ScaleLength(s.height),
	}
}

func (s *Section) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("section").WithLabel(s.title).Push(describeContent(ctx, s.content))
}

// GlassCard is a translucent blurred panel. Backends without blur draw it
// as a tinted surface.
type GlassCard struct {
	content       view.View
	padding       view.Padding
	width, height view.Length
}

func NewGlassCard(content view.View) *GlassCard {
	return &GlassCard{content: content, padding: view.Uniform(20), width: view.Fill}
}

func (g *GlassCard) Padding(p view.Padding) *GlassCard { g.padding = p; return g }
func (g *GlassCard) Width(w view.Length) *GlassCard    { g.width = w; return g }
func (g *GlassCard) Height(h view.Length) *GlassCard   { g.height = h; return g }

func (g *GlassCard) Render(ctx *view.Context) view.Element {
	return view.GlassCard{
		Content: renderContent(ctx, g.content),
		Padding: ctx.ScalePadding(g.padding),
		Width:   ctx.ScaleLength(g.width),
		Height:  ctx.ScaleLength(g.height),
	}
}

func (g *GlassCard) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("glass_card").Push(describeContent(ctx, g.content))
}
