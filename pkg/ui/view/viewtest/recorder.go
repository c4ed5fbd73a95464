package viewtest

import (
	"sync"

	"github.com/odvcencio/facet/pkg/ui/view"
)

// Call is the recorded invocation of one backend primitive.
type Call struct {
	Kind       string
	Spacing    float32
	RunSpacing float32
	Padding    view.Padding
	Width      view.Length
	Height     view.Length
	Focused    bool
	Label      string
	Children   []Call
}

// Walk visits c and its descendants in pre-order.
func (c Call) Walk(fn func(Call)) {
	fn(c)
	for _, ch := range c.Children {
		ch.Walk(fn)
	}
}

// Find returns the first call of the given kind.
func (c Call) Find(kind string) (Call, bool) {
	var found Call
	ok := false
	c.Walk(func(x Call) {
		if !ok && x.Kind == kind {
			found, ok = x, true
		}
	})
	return found, ok
}

// Recorder is a backend that records the resolved parameters it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	order []string
}

var _ view.Backend[Call] = (*Recorder)(nil)

// Order returns the kinds in the order the backend was invoked.
func (r *Recorder) Order() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func (r *Recorder) record(c Call) Call {
	r.mu.Lock()
	r.order = append(r.order, c.Kind)
	r.mu.Unlock()
	return c
}

func (r *Recorder) VStack(_ *view.Context, e view.VStack, children []Call) Call {
	return r.record(Call{Kind: "vstack", Spacing: e.Spacing, Padding: e.Padding, Width: e.Width, Height: e.Height, Children: children})
}

func (r *Recorder) HStack(_ *view.Context, e view.HStack, children []Call) Call {
	return r.record(Call{Kind: "hstack", Spacing: e.Spacing, Padding: e.Padding, Width: e.Width, Height: e.Height, Children: children})
}

func (r *Recorder) Wrap(_ *view.Context, e view.Wrap, children []Call) Call {
	return r.record(Call{Kind: "wrap", Spacing: e.Spacing, RunSpacing: e.RunSpacing, Padding: e.Padding, Children: children})
}

func (r *Recorder) ZStack(_ *view.Context, e view.ZStack, children []Call) Call {
	return r.record(Call{Kind: "zstack", Width: e.Width, Height: e.Height, Children: children})
}

func (r *Recorder) Grid(_ *view.Context, e view.Grid, children []Call) Call {
	return r.record(Call{Kind: "grid", Spacing: e.Spacing, Children: children})
}

func (r *Recorder) Text(_ *view.Context, e view.Text) Call {
	return r.record(Call{Kind: "text", Label: e.Content, Width: e.Width})
}

func (r *Recorder) RichText(_ *view.Context, e view.RichText) Call {
	label := ""
	for _, s := range e.Spans {
		label += s.Content
	}
	return r.record(Call{Kind: "rich_text", Label: label})
}

func (r *Recorder) Icon(_ *view.Context, e view.Icon) Call {
	return r.record(Call{Kind: "icon", Label: e.Name})
}

func (r *Recorder) Divider(*view.Context, view.Divider) Call {
	return r.record(Call{Kind: "divider"})
}

func (r *Recorder) Space(_ *view.Context, e view.Space) Call {
	return r.record(Call{Kind: "space", Width: e.Width, Height: e.Height})
}

func (r *Recorder) Circle(*view.Context, view.Circle) Call {
	return r.record(Call{Kind: "circle"})
}

func (r *Recorder) Arc(*view.Context, view.Arc) Call {
	return r.record(Call{Kind: "arc"})
}

func (r *Recorder) Path(*view.Context, view.Path) Call {
	return r.record(Call{Kind: "path"})
}

func (r *Recorder) Capsule(_ *view.Context, e view.Capsule) Call {
	return r.record(Call{Kind: "capsule", Width: e.Width, Height: e.Height})
}

func (r *Recorder) Rectangle(_ *view.Context, e view.Rectangle) Call {
	return r.record(Call{Kind: "rectangle", Width: e.Width, Height: e.Height})
}

func (r *Recorder) Button(ctx *view.Context, e view.Button, content Call) Call {
	return r.record(Call{Kind: "button", Label: e.ID, Width: e.Width, Height: e.Height, Focused: ctx.IsFocused(e.ID), Children: []Call{content}})
}

func (r *Recorder) SidebarItem(_ *view.Context, e view.SidebarItem) Call {
	return r.record(Call{Kind: "sidebar_item", Label: e.Title})
}

func (r *Recorder) TextInput(ctx *view.Context, e view.TextInput) Call {
	return r.record(Call{Kind: "text_input", Label: e.Placeholder, Focused: ctx.IsFocused(e.ID)})
}

func (r *Recorder) TextEditor(_ *view.Context, e view.TextEditor) Call {
	return r.record(Call{Kind: "text_editor", Height: e.Height})
}

func (r *Recorder) Slider(*view.Context, view.Slider) Call {
	return r.record(Call{Kind: "slider"})
}

func (r *Recorder) Toggle(_ *view.Context, e view.Toggle) Call {
	return r.record(Call{Kind: "toggle", Label: e.Label})
}

func (r *Recorder) Image(_ *view.Context, e view.Image) Call {
	return r.record(Call{Kind: "image", Label: e.Path, Width: e.Width, Height: e.Height})
}

func (r *Recorder) Video(_ *view.Context, e view.Video) Call {
	return r.record(Call{Kind: "video", Label: e.Path, Width: e.Width, Height: e.Height})
}

func (r *Recorder) WebView(_ *view.Context, e view.WebView) Call {
	return r.record(Call{Kind: "web_view", Label: e.URL, Width: e.Width, Height: e.Height})
}

func (r *Recorder) Container(_ *view.Context, e view.Container, content Call) Call {
	return r.record(Call{Kind: "container", Padding: e.Padding, Width: e.Width, Height: e.Height, Children: []Call{content}})
}

func (r *Recorder) ScrollView(_ *view.Context, e view.ScrollView, content Call) Call {
	return r.record(Call{Kind: "scroll_view", Width: e.Width, Height: e.Height, Children: []Call{content}})
}

func (r *Recorder) MouseArea(_ *view.Context, _ view.MouseArea, content Call) Call {
	return r.record(Call{Kind: "mouse_area", Children: []Call{content}})
}

func (r *Recorder) Tooltip(_ *view.Context, e view.Tooltip, content Call) Call {
	return r.record(Call{Kind: "tooltip", Label: e.Text, Children: []Call{content}})
}

func (r *Recorder) GlassCard(_ *view.Context, e view.GlassCard, content Call) Call {
	return r.record(Call{Kind: "glass_card", Padding: e.Padding, Width: e.Width, Height: e.Height, Children: []Call{content}})
}

func (r *Recorder) Section(_ *view.Context, e view.Section, content Call) Call {
	return r.record(Call{Kind: "section", Label: e.Title, Children: []Call{content}})
}

func (r *Recorder) SpatialModifier(_ *view.Context, _ view.SpatialModifier, content Call) Call {
	return r.record(Call{Kind: "spatial_modifier", Children: []Call{content}})
}

func (r *Recorder) Semantic(_ *view.Context, e view.Semantic) Call {
	return r.record(Call{Kind: "semantic", Label: e.Node.Role})
}
