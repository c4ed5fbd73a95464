// Package viewtest holds the primitive test matrix shared by every backend
// and a recording backend for asserting what layout code passes down.
package viewtest

import (
	"sort"
	"testing"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// FocusedID is the button id the focused cases put in focus.
const FocusedID = "save"

// Case is one primitive rendered by every backend.
type Case struct {
	Name    string
	Focus   string
	Element view.Element
}

// BaseContext is the context every case renders under before Focus applies.
func BaseContext() *view.Context {
	ctx := view.NewContext(theme.Default(), view.Desktop, view.Size{Width: 1280, Height: 800})
	ctx.SessionID = "viewtest"
	return ctx
}

func text(s string) view.Text {
	return view.Text{Content: s, Size: 14}
}

func saveButton() view.Button {
	return view.Button{
		ID:      FocusedID,
		Content: text("Save"),
		OnPress: "save-pressed",
		Variant: theme.VariantSolid,
		Intent:  theme.IntentPrimary,
	}
}

// Cases returns the matrix. Every backend must supply an expectation for
// each entry.
func Cases() []Case {
	red := theme.RGB(0xff, 0, 0)
	return []Case{
		{Name: "vstack", Element: view.VStack{Children: []view.Element{text("a"), text("b")}, Spacing: 4}},
		{Name: "hstack", Element: view.HStack{Children: []view.Element{text("a"), text("b")}, Spacing: 4}},
		{Name: "wrap", Element: view.Wrap{Children: []view.Element{text("a"), text("b")}, Spacing: 4, RunSpacing: 2}},
		{Name: "zstack", Element: view.ZStack{Children: []view.Element{text("a"), text("b")}}},
		{Name: "grid", Element: view.Grid{Children: []view.Element{text("a"), text("b"), text("c")}, Columns: 2, Spacing: 8}},
		{Name: "text", Element: text("hello")},
		{Name: "rich_text", Element: view.RichText{Spans: []view.Span{{Content: "bold ", Bold: true}, {Content: "plain"}}, Size: 14}},
		{Name: "icon", Element: view.Icon{Name: "settings", Size: 16}},
		{Name: "divider", Element: view.Divider{}},
		{Name: "space", Element: view.Space{Width: view.Fixed(10), Height: view.Fixed(5)}},
		{Name: "circle", Element: view.Circle{Radius: 5, Color: &red}},
		{Name: "arc", Element: view.Arc{Radius: 5, StartAngle: 0, EndAngle: 1.5}},
		{Name: "path", Element: view.Path{Points: []view.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, Width: 2}},
		{Name: "capsule", Element: view.Capsule{Width: view.Fixed(40), Height: view.Fixed(10)}},
		{Name: "rectangle", Element: view.Rectangle{Width: view.Fixed(30), Height: view.Fixed(20)}},
		{Name: "button", Element: saveButton()},
		{Name: "button_focused", Focus: FocusedID, Element: saveButton()},
		{Name: "sidebar_item", Element: view.SidebarItem{Title: "Inbox", Icon: "mail", Selected: true}},
		{Name: "text_input", Element: view.TextInput{Value: "bob", Placeholder: "Name"}},
		{Name: "text_input_secure", Element: view.TextInput{Value: "hunter2", Placeholder: "Password", Secure: true}},
		{Name: "text_editor", Element: view.TextEditor{Content: "a\nb\nc"}},
		{Name: "slider", Element: view.Slider{Min: 0, Max: 10, Value: 2.5}},
		{Name: "toggle", Element: view.Toggle{Label: "Wifi", Active: true}},
		{Name: "image", Element: view.Image{Path: "assets/cat.png", Width: view.Fixed(64), Height: view.Fixed(32)}},
		{Name: "video", Element: view.Video{Path: "clip.mp4"}},
		{Name: "web_view", Element: view.WebView{URL: "https://example.com"}},
		{Name: "container", Element: view.Container{Content: text("inner"), Padding: view.Uniform(8)}},
		{Name: "scroll_view", Element: view.ScrollView{Content: text("inner")}},
		{Name: "mouse_area", Element: view.MouseArea{Content: text("inner"), OnPress: "tap"}},
		{Name: "tooltip", Element: view.Tooltip{Content: text("inner"), Text: "help"}},
		{Name: "glass_card", Element: view.GlassCard{Content: text("inner"), Padding: view.Uniform(20)}},
		{Name: "section", Element: view.Section{Title: "General", Content: text("inner")}},
		{Name: "spatial_modifier", Element: view.SpatialModifier{
			Content:  text("inner"),
			Position: view.Vec3{X: 1, Y: 2, Z: 3},
			Scale:    view.Vec3{X: 2, Y: 2, Z: 2},
			Rotation: view.Vec3{Y: 0.5},
		}},
		{Name: "semantic", Element: view.Semantic{Node: semantic.New("custom").WithLabel("x")}},
		{Name: "scope_focus", Element: view.Scope{Context: BaseContext().WithFocus(FocusedID), Content: saveButton()}},
	}
}

// Names lists every case name in sorted order.
func Names() []string {
	cases := Cases()
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names
}

// Run renders every case through b and hands the output to the matching
// expectation. A case without an expectation, or an expectation without a
// case, fails the test so every backend covers the same primitives.
func Run[N any](t *testing.T, b view.Backend[N], expect map[string]func(t *testing.T, got N)) {
	t.Helper()
	known := make(map[string]bool)
	for _, c := range Cases() {
		known[c.Name] = true
		t.Run(c.Name, func(t *testing.T) {
			check, ok := expect[c.Name]
			if !ok {
				t.Fatalf("no expectation for case %q", c.Name)
			}
			ctx := BaseContext()
			if c.Focus != "" {
				ctx = ctx.WithFocus(c.Focus)
			}
			check(t, view.RenderElement(b, ctx, c.Element))
		})
	}
	for name := range expect {
		if !known[name] {
			t.Errorf("expectation %q has no matching case", name)
		}
	}
}
