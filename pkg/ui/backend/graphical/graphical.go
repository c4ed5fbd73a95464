// Package graphical renders views into Cogent Core widget trees.
//
// Widgets are built bottom-up: children exist before their container, so
// containers adopt them with AddChild. User interaction is reported through
// a Dispatcher as application messages; the backend keeps no state of its
// own between render passes.
package graphical

import (
	"fmt"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	cicons "cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"go.uber.org/zap"

	"github.com/odvcencio/facet/pkg/logging"
	"github.com/odvcencio/facet/pkg/ui/icons"
	"github.com/odvcencio/facet/pkg/ui/imagecache"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// Dispatcher receives the messages produced by user interaction.
type Dispatcher func(view.Message)

// Backend builds widgets. It must only be used from the goroutine that owns
// the widget tree.
type Backend struct {
	dispatch Dispatcher
	icons    *icons.Resolver
	images   imagecache.Cache
	log      *logging.Logger
}

var _ view.Backend[core.Widget] = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithDispatcher sets the message sink.
func WithDispatcher(d Dispatcher) Option {
	return func(b *Backend) { b.dispatch = d }
}

// WithIcons sets the icon resolver.
func WithIcons(r *icons.Resolver) Option {
	return func(b *Backend) { b.icons = r }
}

// WithImages sets the image cache consulted by Image. Without one, images
// render as labelled placeholders.
func WithImages(c imagecache.Cache) Option {
	return func(b *Backend) { b.images = c }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// New creates a graphical backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	if b.icons == nil {
		b.icons = icons.Default()
	}
	b.log = logging.OrNop(b.log).With(logging.ComponentGraphical)
	return b
}

func (b *Backend) send(msg view.Message) {
	if msg == nil || b.dispatch == nil {
		return
	}
	b.dispatch(msg)
}

func adopt(parent core.Widget, children []core.Widget) {
	for _, c := range children {
		parent.AsTree().AddChild(c)
	}
}

func dp(v float32) units.Value { return units.Dp(v) }

func setPadding(s *styles.Style, p view.Padding) {
	s.Padding.Set(dp(p.Top), dp(p.Right), dp(p.Bottom), dp(p.Left))
}

func setLength(s *styles.Style, w, h view.Length) {
	switch {
	case w.IsFixed():
		s.Min.X.Dp(w.Value())
		s.Max.X.Dp(w.Value())
	case w.IsFill():
		s.Grow.X = w.Portion()
	}
	switch {
	case h.IsFixed():
		s.Min.Y.Dp(h.Value())
		s.Max.Y.Dp(h.Value())
	case h.IsFill():
		s.Grow.Y = h.Portion()
	}
}

func setRadius(s *styles.Style, r view.Radius) {
	s.Border.Radius.Set(dp(r.TopLeft), dp(r.TopRight), dp(r.BottomRight), dp(r.BottomLeft))
}

func align(a view.Alignment) styles.Aligns {
	switch a {
	case view.Center:
		return styles.Center
	case view.End:
		return styles.End
	default:
		return styles.Start
	}
}

type stackParams struct {
	direction      styles.Directions
	wrap           bool
	spacing        float32
	padding        view.Padding
	width, height  view.Length
	alignX, alignY view.Alignment
}

func stack(p stackParams, children []core.Widget) *core.Frame {
	f := core.NewFrame()
	f.Styler(func(s *styles.Style) {
		s.Direction = p.direction
		s.Wrap = p.wrap
		s.Gap.Set(dp(p.spacing))
		setPadding(s, p.padding)
		setLength(s, p.width, p.height)
		if p.direction == styles.Column {
			s.Align.Items = align(p.alignX)
			s.Justify.Content = align(p.alignY)
		} else {
			s.Align.Items = align(p.alignY)
			s.Justify.Content = align(p.alignX)
		}
	})
	adopt(f, children)
	return f
}

func (b *Backend) VStack(_ *view.Context, e view.VStack, children []core.Widget) core.Widget {
	return stack(stackParams{styles.Column, false, e.Spacing, e.Padding, e.Width, e.Height, e.AlignX, e.AlignY}, children)
}

func (b *Backend) HStack(_ *view.Context, e view.HStack, children []core.Widget) core.Widget {
	return stack(stackParams{styles.Row, false, e.Spacing, e.Padding, e.Width, e.Height, e.AlignX, e.AlignY}, children)
}

func (b *Backend) Wrap(_ *view.Context, e view.Wrap, children []core.Widget) core.Widget {
	f := stack(stackParams{styles.Row, true, e.Spacing, e.Padding, e.Width, e.Height, e.AlignX, e.AlignY}, children)
	f.Styler(func(s *styles.Style) {
		s.Gap.Y = dp(e.RunSpacing)
	})
	return f
}

func (b *Backend) ZStack(_ *view.Context, e view.ZStack, children []core.Widget) core.Widget {
	f := core.NewFrame()
	f.Styler(func(s *styles.Style) {
		s.Display = styles.Stacked
		s.Align.Items = align(e.Alignment)
		s.Justify.Content = align(e.Alignment)
		setLength(s, e.Width, e.Height)
	})
	adopt(f, children)
	return f
}

// Grid pads short rows with empty growing cells so columns line up.
func (b *Backend) Grid(_ *view.Context, e view.Grid, children []core.Widget) core.Widget {
	columns := max(e.Columns, 1)
	outer := core.NewFrame()
	outer.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Gap.Set(dp(e.Spacing))
		s.Grow.Set(1, 0)
	})
	for _, row := range view.Chunk(children, columns) {
		r := core.NewFrame()
		r.Styler(func(s *styles.Style) {
			s.Direction = styles.Row
			s.Gap.Set(dp(e.Spacing))
			s.Grow.Set(1, 0)
		})
		for _, cell := range row {
			cell.AsWidget().Styler(func(s *styles.Style) { s.Grow.X = 1 })
			r.AddChild(cell)
		}
		for range columns - len(row) {
			filler := core.NewFrame()
			filler.Styler(func(s *styles.Style) { s.Grow.Set(1, 0) })
			r.AddChild(filler)
		}
		outer.AddChild(r)
	}
	return outer
}

func textColor(ctx *view.Context, e view.Text) theme.Color {
	switch {
	case e.Color != nil:
		return *e.Color
	case e.Intent != nil:
		return ctx.Theme.Colors.IntentColor(*e.Intent)
	case ctx.Foreground != nil:
		return *ctx.Foreground
	case e.Dim:
		return ctx.Theme.Colors.TextSecondary
	default:
		return ctx.Theme.Colors.TextPrimary
	}
}

func (b *Backend) Text(ctx *view.Context, e view.Text) core.Widget {
	t := core.NewText().SetText(textHTML(ctx, e)).SetType(textType(e.Size))
	fg := textColor(ctx, e)
	t.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(fg)
		setLength(s, e.Width, view.Shrink)
	})
	return t
}

func (b *Backend) RichText(ctx *view.Context, e view.RichText) core.Widget {
	t := core.NewText().SetText(spansHTML(ctx.Theme.Colors, e.Spans)).SetType(textType(e.Size))
	t.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(ctx.Theme.Colors.TextPrimary)
		setLength(s, e.Width, view.Shrink)
	})
	return t
}

func (b *Backend) iconWidget(ctx *view.Context, name string, size float32, color theme.Color) core.Widget {
	res := b.icons.Resolve(name, color)
	if !res.Found() {
		b.log.Debug("icon rendered from path guess", zap.String("icon", name), zap.String("path", res.Path))
		return b.imageFromCache(ctx, res.Path, view.Fixed(size), view.Fixed(size))
	}
	ic := core.NewIcon().SetIcon(cicons.Icon(res.SVG))
	ic.Styler(func(s *styles.Style) {
		s.Min.Set(dp(size))
	})
	return ic
}

func (b *Backend) Icon(ctx *view.Context, e view.Icon) core.Widget {
	size := e.Size
	if size <= 0 {
		size = 16
	}
	return b.iconWidget(ctx, e.Name, size, view.ColorOr(e.Color, ctx.Theme.Colors.TextPrimary))
}

func (b *Backend) Divider(ctx *view.Context, _ view.Divider) core.Widget {
	sep := core.NewSeparator()
	sep.Styler(func(s *styles.Style) {
		s.Background = colors.Uniform(ctx.Theme.Colors.Divider)
	})
	return sep
}

func (b *Backend) Space(_ *view.Context, e view.Space) core.Widget {
	sp := core.NewSpace()
	sp.Styler(func(s *styles.Style) {
		s.Min.Set(dp(0))
		setLength(s, e.Width, e.Height)
	})
	return sp
}

func (b *Backend) Circle(ctx *view.Context, e view.Circle) core.Widget {
	return shapeWidget(circleSVG(e.Radius, view.ColorOr(e.Color, ctx.Theme.Colors.Primary)), 2*e.Radius, 2*e.Radius)
}

func (b *Backend) Arc(ctx *view.Context, e view.Arc) core.Widget {
	return shapeWidget(arcSVG(e.Radius, e.StartAngle, e.EndAngle, view.ColorOr(e.Color, ctx.Theme.Colors.Primary)), 2*e.Radius, 2*e.Radius)
}

func (b *Backend) Path(ctx *view.Context, e view.Path) core.Widget {
	svg, w, h := pathSVG(e.Points, e.Width, view.ColorOr(e.Color, ctx.Theme.Colors.Primary))
	return shapeWidget(svg, w, h)
}

func (b *Backend) Capsule(ctx *view.Context, e view.Capsule) core.Widget {
	w, h := e.Width.Or(40), e.Height.Or(20)
	return shapeWidget(capsuleSVG(w, h, view.ColorOr(e.Color, ctx.Theme.Colors.Primary)), w, h)
}

func (b *Backend) Rectangle(ctx *view.Context, e view.Rectangle) core.Widget {
	f := core.NewFrame()
	f.Styler(func(s *styles.Style) {
		s.Background = colors.Uniform(view.ColorOr(e.Color, ctx.Theme.Colors.Surface))
		setRadius(s, e.Radius)
		setLength(s, e.Width, e.Height)
		if e.BorderWidth > 0 {
			s.Border.Width.Set(dp(e.BorderWidth))
			s.Border.Color.Set(colors.Uniform(view.ColorOr(e.BorderColor, ctx.Theme.Colors.Border)))
		}
	})
	return f
}

func buttonType(v theme.Variant) core.ButtonTypes {
	switch v {
	case theme.VariantSolid:
		return core.ButtonFilled
	case theme.VariantSoft:
		return core.ButtonTonal
	case theme.VariantOutline:
		return core.ButtonOutlined
	default:
		return core.ButtonText
	}
}

// Button uses the content's text as the label when the content is plain
// text and adopts the content widget otherwise.
func (b *Backend) Button(ctx *view.Context, e view.Button, content core.Widget) core.Widget {
	bt := core.NewButton().SetType(buttonType(e.Variant))
	if t, ok := content.(*core.Text); ok {
		bt.SetText(t.Text)
	} else {
		bt.AddChild(content)
	}
	setID(bt, e.ID)
	height := ctx.Scale(44)
	if e.Compact || e.Variant == theme.VariantCompact {
		height = ctx.Scale(32)
	}
	fill := ctx.Theme.Colors.IntentColor(e.Intent)
	focused := ctx.IsFocused(e.ID)
	bt.Styler(func(s *styles.Style) {
		s.Min.Y.Dp(height)
		setLength(s, e.Width, e.Height)
		switch e.Variant {
		case theme.VariantSolid:
			s.Background = colors.Uniform(fill)
			s.Color = colors.Uniform(ctx.Theme.Colors.OnIntentColor(e.Intent))
		case theme.VariantSoft:
			s.Background = colors.Uniform(fill.WithAlpha(0.15))
			s.Color = colors.Uniform(fill)
		case theme.VariantOutline:
			s.Border.Width.Set(dp(1))
			s.Border.Color.Set(colors.Uniform(fill))
			s.Color = colors.Uniform(fill)
		default:
			s.Color = colors.Uniform(fill)
		}
		if focused {
			s.Border.Width.Set(dp(2))
			s.Border.Color.Set(colors.Uniform(ctx.Theme.Colors.Primary))
		}
	})
	bt.OnClick(func(events.Event) { b.send(e.OnPress) })
	return bt
}

func (b *Backend) SidebarItem(ctx *view.Context, e view.SidebarItem) core.Widget {
	p := ctx.Theme.Colors
	fg := p.TextSecondary
	if e.Selected {
		fg = p.Primary
	}
	bt := core.NewButton().SetType(core.ButtonText).SetText(e.Title)
	if res := b.icons.Resolve(e.Icon, fg); res.Found() {
		bt.SetIcon(cicons.Icon(res.SVG))
	}
	bt.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 0)
		s.Justify.Content = styles.Start
		s.Color = colors.Uniform(fg)
		if e.Selected {
			s.Background = colors.Uniform(p.Primary.WithAlpha(0.12))
		}
	})
	bt.OnClick(func(events.Event) { b.send(e.OnPress) })
	return bt
}

func (b *Backend) TextInput(ctx *view.Context, e view.TextInput) core.Widget {
	tf := core.NewTextField().SetText(e.Value).SetPlaceholder(e.Placeholder)
	if e.Secure {
		tf.SetTypePassword()
	}
	setID(tf, e.ID)
	if e.Variant == theme.VariantOutline {
		tf.SetType(core.TextFieldOutlined)
	}
	tf.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 0)
	})
	tf.OnInput(func(events.Event) {
		if e.OnChange != nil {
			b.send(e.OnChange(tf.Text()))
		}
	})
	tf.OnChange(func(events.Event) { b.send(e.OnSubmit) })
	return tf
}

func (b *Backend) TextEditor(ctx *view.Context, e view.TextEditor) core.Widget {
	tf := core.NewTextField().SetText(e.Content)
	setID(tf, e.ID)
	tf.Styler(func(s *styles.Style) {
		s.SetTextWrap(true)
		s.Grow.Set(1, 0)
		s.Min.Y.Dp(ctx.Scale(120))
		setLength(s, view.Shrink, e.Height)
	})
	tf.OnInput(func(events.Event) {
		if e.OnChange != nil {
			b.send(e.OnChange(tf.Text()))
		}
	})
	return tf
}

func (b *Backend) Slider(_ *view.Context, e view.Slider) core.Widget {
	sl := core.NewSlider().SetMin(e.Min).SetMax(e.Max).SetValue(e.Value)
	sl.OnChange(func(events.Event) {
		if e.OnChange != nil {
			b.send(e.OnChange(sl.Value))
		}
	})
	return sl
}

func (b *Backend) Toggle(_ *view.Context, e view.Toggle) core.Widget {
	sw := core.NewSwitch().SetText(e.Label).SetChecked(e.Active)
	sw.OnChange(func(events.Event) {
		if e.OnToggle != nil {
			b.send(e.OnToggle(sw.IsChecked()))
		}
	})
	return sw
}

func placeholder(ctx *view.Context, label string, w, h view.Length) *core.Frame {
	f := core.NewFrame()
	f.Styler(func(s *styles.Style) {
		s.Background = colors.Uniform(ctx.Theme.Colors.SurfaceVariant)
		s.Border.Radius.Set(dp(ctx.Theme.Radius))
		s.Align.Items = styles.Center
		s.Justify.Content = styles.Center
		setLength(s, w, h)
	})
	core.NewText(f).SetText(label).SetType(core.TextSupporting)
	return f
}

// imageFromCache never blocks: a miss starts a fetch and shows a loading
// placeholder until a later render finds the bytes.
func (b *Backend) imageFromCache(ctx *view.Context, path string, w, h view.Length) core.Widget {
	if b.images == nil {
		return placeholder(ctx, "Image: "+path, w, h)
	}
	st := b.images.GetOrFetch(path)
	switch st.Kind {
	case imagecache.Loading:
		return placeholder(ctx, "Loading…", w, h)
	case imagecache.Error:
		return errorIcon(st.Err)
	}
	img, err := imagecache.Decode(st)
	if err != nil {
		b.log.Warn("image decode failed", zap.String("path", path), zap.Error(err))
		return errorIcon(err)
	}
	im := core.NewImage().SetImage(img)
	im.Styler(func(s *styles.Style) { setLength(s, w, h) })
	return im
}

func errorIcon(err error) core.Widget {
	ic := core.NewIcon().SetIcon(cicons.Error)
	if err != nil {
		ic.SetTooltip(err.Error())
	}
	return ic
}

func (b *Backend) Image(ctx *view.Context, e view.Image) core.Widget {
	w := b.imageFromCache(ctx, e.Path, e.Width, e.Height)
	w.AsWidget().Styler(func(s *styles.Style) { setRadius(s, e.Radius) })
	return w
}

func (b *Backend) Video(ctx *view.Context, e view.Video) core.Widget {
	return placeholder(ctx, "Video: "+e.Path, e.Width, e.Height)
}

func (b *Backend) WebView(ctx *view.Context, e view.WebView) core.Widget {
	return placeholder(ctx, "Web: "+e.URL, e.Width, e.Height)
}

func (b *Backend) Container(ctx *view.Context, e view.Container, content core.Widget) core.Widget {
	f := core.NewFrame()
	f.Styler(func(s *styles.Style) {
		setPadding(s, e.Padding)
		setLength(s, e.Width, e.Height)
		setRadius(s, e.Radius)
		s.Align.Items = align(e.AlignY)
		s.Justify.Content = align(e.AlignX)
		if e.Background != nil {
			s.Background = colors.Uniform(*e.Background)
		}
		if e.BorderWidth > 0 {
			s.Border.Width.Set(dp(e.BorderWidth))
			s.Border.Color.Set(colors.Uniform(view.ColorOr(e.BorderColor, ctx.Theme.Colors.Border)))
		}
		if e.Shadow != nil {
			s.BoxShadow = []styles.Shadow{{
				OffsetX: dp(e.Shadow.Offset.X),
				OffsetY: dp(e.Shadow.Offset.Y),
				Blur:    dp(e.Shadow.Blur),
				Color:   colors.Uniform(e.Shadow.Color),
			}}
		}
	})
	f.AddChild(content)
	return f
}

func (b *Backend) ScrollView(_ *view.Context, e view.ScrollView, content core.Widget) core.Widget {
	f := core.NewFrame()
	setID(f, e.ID)
	f.Styler(func(s *styles.Style) {
		setLength(s, e.Width, e.Height)
		if e.Direction != view.ScrollHorizontal {
			s.Overflow.Y = styles.OverflowAuto
		}
		if e.Direction != view.ScrollVertical {
			s.Overflow.X = styles.OverflowAuto
		}
	})
	f.AddChild(content)
	return f
}

func (b *Backend) MouseArea(_ *view.Context, e view.MouseArea, content core.Widget) core.Widget {
	w := content.AsWidget()
	if e.OnPress != nil {
		w.OnClick(func(events.Event) { b.send(e.OnPress) })
	}
	if e.OnRelease != nil {
		w.On(events.MouseUp, func(events.Event) { b.send(e.OnRelease) })
	}
	if e.OnMove != nil {
		w.On(events.MouseMove, func(ev events.Event) {
			pos := ev.Pos()
			b.send(e.OnMove(view.Point{X: float32(pos.X), Y: float32(pos.Y)}))
		})
	}
	return content
}

func (b *Backend) Tooltip(_ *view.Context, e view.Tooltip, content core.Widget) core.Widget {
	content.AsWidget().SetTooltip(e.Text)
	return content
}

func (b *Backend) GlassCard(ctx *view.Context, e view.GlassCard, content core.Widget) core.Widget {
	tk := ctx.Theme
	f := core.NewFrame()
	f.Styler(func(s *styles.Style) {
		setPadding(s, e.Padding)
		setLength(s, e.Width, e.Height)
		s.Background = colors.Uniform(tk.Colors.Surface.WithAlpha(tk.GlassOpacity))
		s.Border.Radius.Set(dp(tk.Radius))
		s.Border.Width.Set(dp(1))
		s.Border.Color.Set(colors.Uniform(tk.Colors.Border.WithAlpha(0.5)))
		s.BoxShadow = []styles.Shadow{{
			OffsetX: dp(tk.ShadowOffset[0]),
			OffsetY: dp(tk.ShadowOffset[1]),
			Blur:    dp(tk.ShadowBlur),
			Color:   colors.Uniform(tk.ShadowColor),
		}}
	})
	f.AddChild(content)
	return f
}

func (b *Backend) Section(ctx *view.Context, e view.Section, content core.Widget) core.Widget {
	f := core.NewFrame()
	f.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Gap.Set(dp(ctx.Scale(8)))
		setLength(s, e.Width, e.Height)
	})
	title := core.NewText(f).SetText(e.Title).SetType(core.TextTitleMedium)
	title.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(ctx.Theme.Colors.TextSecondary)
	})
	f.AddChild(content)
	return f
}

// SpatialModifier has no planar meaning.
func (b *Backend) SpatialModifier(_ *view.Context, _ view.SpatialModifier, content core.Widget) core.Widget {
	return content
}

func (b *Backend) Semantic(ctx *view.Context, e view.Semantic) core.Widget {
	label := e.Node.Label
	if label == "" {
		label = e.Node.Content
	}
	if label == "" {
		label = fmt.Sprintf("(%s)", e.Node.Role)
	}
	t := core.NewText().SetText(label).SetType(core.TextSupporting)
	if e.Node.Documentation != "" {
		t.SetTooltip(e.Node.Documentation)
	}
	return t
}

// idProperty holds the element id a widget was named after, so that
// previews can tell it apart from names the widget tree makes up.
const idProperty = "facet-id"

func setID(w core.Widget, id string) {
	if id == "" {
		return
	}
	w.AsTree().SetName(id)
	w.AsTree().SetProperty(idProperty, id)
}
