package atoms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

func scaled(f float32) *view.Context {
	return view.NewContext(theme.Default().WithScaling(f), view.Desktop, view.Size{Width: 1024, Height: 768})
}

func TestTypographyPresets(t *testing.T) {
	cases := []struct {
		name string
		text *Text
		size float32
		bold bool
		dim  bool
	}{
		{"default", NewText("x"), 14, false, false},
		{"large_title", NewText("x").LargeTitle(), 32, true, false},
		{"title1", NewText("x").Title1(), 28, true, false},
		{"title2", NewText("x").Title2(), 22, true, false},
		{"title3", NewText("x").Title3(), 20, true, false},
		{"headline", NewText("x").Headline(), 17, true, false},
		{"body", NewText("x").Body(), 17, false, false},
		{"callout", NewText("x").Callout(), 16, false, false},
		{"subheadline", NewText("x").Subheadline(), 15, false, true},
		{"footnote", NewText("x").Footnote(), 13, false, true},
		{"caption1", NewText("x").Caption1(), 12, false, true},
		{"caption2", NewText("x").Caption2(), 11, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := tc.text.Render(scaled(1)).(view.Text)
			require.True(t, ok)
			assert.Equal(t, tc.size, e.Size)
			assert.Equal(t, tc.bold, e.Bold)
			assert.Equal(t, tc.dim, e.Dim)
		})
	}
}

func TestTextModifiers(t *testing.T) {
	e := NewText("hi").Secondary().Monospace().Center().Render(scaled(1)).(view.Text)
	assert.True(t, e.Dim)
	assert.Equal(t, view.FontMonospace, e.Font)
	assert.Equal(t, view.Center, e.Alignment)

	e = NewText("hi").Intent(theme.IntentDanger).Wrap().Render(scaled(1)).(view.Text)
	require.NotNil(t, e.Intent)
	assert.Equal(t, theme.IntentDanger, *e.Intent)
	assert.True(t, e.Width.IsFill())

	assert.Equal(t, "hi", NewText("hi").Describe(scaled(1)).Content)
}

func TestTextScales(t *testing.T) {
	e := NewText("x").Width(view.Fixed(50)).Render(scaled(2)).(view.Text)
	assert.Equal(t, float32(28), e.Size)
	assert.Equal(t, float32(100), e.Width.Value())
}

func TestRichTextDescribeJoinsSpans(t *testing.T) {
	r := NewRichText(view.Span{Content: "a "}, view.Span{Content: "b", Size: 10})
	assert.Equal(t, "a b", r.Describe(scaled(1)).Content)

	e := r.Render(scaled(2)).(view.RichText)
	assert.Equal(t, float32(20), e.Spans[1].Size)
	assert.Zero(t, e.Spans[0].Size, "unsized spans keep inheriting")
}

func TestIconTone(t *testing.T) {
	ctx := scaled(1)
	e := NewIcon("home").Primary().Render(ctx).(view.Icon)
	require.NotNil(t, e.Color)
	assert.Equal(t, ctx.Theme.Colors.Primary, *e.Color)
	assert.Equal(t, DefaultIconSize, e.Size)

	e = NewIcon("home").Secondary().Render(ctx).(view.Icon)
	assert.Equal(t, ctx.Theme.Colors.TextSecondary, *e.Color)

	e = NewIcon("home").Render(ctx).(view.Icon)
	assert.Nil(t, e.Color)
	assert.Equal(t, "home", NewIcon("home").Describe(ctx).Label)
}

func TestButtonRender(t *testing.T) {
	ctx := scaled(2)
	e := NewButtonLabel("Save").ID("save").Icon("check").OnPress("saved").Render(ctx).(view.Button)

	assert.Equal(t, "save", e.ID)
	assert.Equal(t, "saved", e.OnPress)
	assert.Equal(t, theme.VariantSolid, e.Variant)
	assert.Equal(t, theme.IntentPrimary, e.Intent)

	row, ok := e.Content.(view.HStack)
	require.True(t, ok)
	assert.Equal(t, float32(16), row.Spacing)
	assert.Equal(t, view.Symmetric(16, 32), row.Padding)
	require.Len(t, row.Children, 2)
	icon := row.Children[0].(view.Icon)
	require.NotNil(t, icon.Color)
	assert.Equal(t, ctx.Theme.Colors.OnIntentColor(theme.IntentPrimary), *icon.Color)
}

func TestButtonSizes(t *testing.T) {
	ctx := scaled(1)
	small := NewButtonLabel("x").Size(SizeSmall).Render(ctx).(view.Button)
	assert.True(t, small.Compact)
	assert.Equal(t, view.Symmetric(4, 8), small.Content.(view.HStack).Padding)

	xl := NewButtonLabel("x").Size(SizeXLarge).Variant(theme.VariantOutline).Icon("add").Render(ctx).(view.Button)
	assert.Equal(t, view.Symmetric(16, 32), xl.Content.(view.HStack).Padding)
	assert.Nil(t, xl.Content.(view.HStack).Children[0].(view.Icon).Color, "only solid buttons recolor the icon")
}

func TestButtonDescribe(t *testing.T) {
	ctx := scaled(1)
	n := NewButtonLabel("Save").ID("save").Describe(ctx)
	assert.Equal(t, "button", n.Role)
	assert.Equal(t, "save", n.ID)
	assert.Equal(t, "Save", n.Label)
	assert.Empty(t, n.Children)

	n = NewButton(NewContainer(NewText("Go"))).Describe(ctx)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "container", n.Children[0].Role)
}

func TestControls(t *testing.T) {
	ctx := scaled(1)

	tg := NewToggle("Wifi", true, func(on bool) view.Message { return on })
	e := tg.Render(ctx).(view.Toggle)
	assert.Equal(t, false, e.OnToggle(false))
	assert.Equal(t, "on", tg.Describe(ctx).Content)

	sl := NewSlider(10, 0, 12, nil)
	se := sl.Render(ctx).(view.Slider)
	assert.Equal(t, float32(0), se.Min)
	assert.Equal(t, float32(10), se.Max)
	assert.Equal(t, float32(10), se.Value)
	assert.Equal(t, "12", sl.Describe(ctx).Content)

	sidebar := NewSidebarItem("Inbox", "mail", true).OnPress("inbox")
	assert.Equal(t, "inbox", sidebar.Render(ctx).(view.SidebarItem).OnPress)
	assert.True(t, sidebar.Describe(ctx).HasTag("selected"))
}

func TestTextFieldDescribeHidesSecrets(t *testing.T) {
	ctx := scaled(1)
	plain := NewTextField("bob", "Name", nil).ID("name")
	assert.Equal(t, "bob", plain.Describe(ctx).Content)
	assert.Equal(t, theme.VariantOutline, plain.Render(ctx).(view.TextInput).Variant)

	secret := NewTextField("hunter2", "Password", nil).Secure()
	n := secret.Describe(ctx)
	assert.Empty(t, n.Content)
	assert.True(t, n.HasTag("secure"))
	assert.True(t, secret.Render(ctx).(view.TextInput).Secure)
}

func TestContainerScales(t *testing.T) {
	e := NewContainer(NewText("x")).Padding(view.Uniform(8)).Radius(4).Width(view.Fixed(100)).Render(scaled(2)).(view.Container)
	assert.Equal(t, view.Uniform(16), e.Padding)
	assert.Equal(t, view.UniformRadius(8), e.Radius)
	assert.Equal(t, float32(200), e.Width.Value())
	assert.IsType(t, view.Text{}, e.Content)
}

func TestContainerCenter(t *testing.T) {
	e := NewContainer(nil).CenterX(view.Fill).CenterY(view.Fill).Render(scaled(1)).(view.Container)
	assert.Equal(t, view.Center, e.AlignX)
	assert.Equal(t, view.Center, e.AlignY)
	assert.Nil(t, e.Content)
	assert.Equal(t, "view", NewContainer(nil).Describe(scaled(1)).Children[0].Role)
}

type ctxSpy struct{ inside *bool }

func (p ctxSpy) Render(ctx *view.Context) view.Element {
	*p.inside = ctx.InsideScroll
	return view.Space{}
}

func TestNestedScrollHidesIndicators(t *testing.T) {
	var inside bool
	outer := NewScrollView(NewScrollView(ctxSpy{&inside}))

	e := outer.Render(scaled(1)).(view.ScrollView)
	assert.True(t, e.ShowIndicators)
	nested := e.Content.(view.ScrollView)
	assert.False(t, nested.ShowIndicators)
	assert.True(t, inside)
}

func TestTooltipDocuments(t *testing.T) {
	ctx := scaled(1)
	n := NewTooltip(NewText("x"), "help").Describe(ctx)
	assert.Equal(t, "help", n.Documentation)
	assert.Equal(t, "text", n.Role)

	e := NewTooltip(NewText("x"), "help").Render(ctx).(view.Tooltip)
	assert.Equal(t, "help", e.Text)
}

func TestMouseAreaPassesThrough(t *testing.T) {
	ctx := scaled(1)
	m := NewMouseArea(NewText("x")).OnPress("down").OnRelease("up")
	e := m.Render(ctx).(view.MouseArea)
	assert.Equal(t, "down", e.OnPress)
	assert.Equal(t, "up", e.OnRelease)
	assert.Equal(t, "text", m.Describe(ctx).Role)
}

func TestShapesAndMedia(t *testing.T) {
	ctx := scaled(2)

	assert.Equal(t, float32(10), NewCircle(5).Render(ctx).(view.Circle).Radius)
	assert.Equal(t, float32(8), NewArc(4, 0, 1).Render(ctx).(view.Arc).Radius)

	p := NewPath(view.Point{X: 1, Y: 2}).Width(3).Render(ctx).(view.Path)
	assert.Equal(t, []view.Point{{X: 2, Y: 4}}, p.Points)
	assert.Equal(t, float32(6), p.Width)

	r := NewRectangle(view.Fixed(10), view.Fill).Border(1, theme.RGB(0, 0, 0)).Render(ctx).(view.Rectangle)
	assert.Equal(t, float32(20), r.Width.Value())
	assert.True(t, r.Height.IsFill())
	assert.Equal(t, float32(1), r.BorderWidth)

	sp := Spacer().Render(ctx).(view.Space)
	assert.True(t, sp.Width.IsFill())

	img := NewImage("cat.png").Width(view.Fixed(32)).Radius(2).Render(ctx).(view.Image)
	assert.Equal(t, float32(64), img.Width.Value())
	assert.Equal(t, view.UniformRadius(4), img.Radius)
	assert.Equal(t, "cat.png", NewImage("cat.png").Describe(ctx).Label)

	web := NewWebView("https://example.com").Render(ctx).(view.WebView)
	assert.True(t, web.Width.IsFill())
	assert.Equal(t, "web_view", NewWebView("u").Describe(ctx).Role)
	assert.Equal(t, "clip.mp4", NewVideo("clip.mp4").Render(ctx).(view.Video).Path)

	roles := map[string]view.Describer{
		"rectangle": NewRectangle(view.Fill, view.Fill),
		"circle":    NewCircle(1),
		"arc":       NewArc(1, 0, 1),
		"path":      NewPath(),
		"capsule":   NewCapsule(view.Fill, view.Fixed(4)),
		"divider":   NewDivider(),
		"space":     Spacer(),
		"video":     NewVideo("v"),
	}
	for role, d := range roles {
		assert.Equal(t, role, d.Describe(ctx).Role)
	}
}
