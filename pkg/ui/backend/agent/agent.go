// Package agent renders element trees to semantic nodes: the role, label
// and content tree AI agents read instead of pixels.
package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// Backend is stateless; the zero value is ready to use.
type Backend struct{}

var _ view.Backend[semantic.Node] = Backend{}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func withColor(n semantic.Node, c *theme.Color) semantic.Node {
	if c == nil {
		return n
	}
	return n.WithColor(c.Hex())
}

// stacked nests children one level deeper than the stack itself. Only the
// direct children move, so Depth is the layer relative to the enclosing
// stack, not the absolute nesting level; use Walk for the latter.
func stacked(role string, children []semantic.Node) semantic.Node {
	out := make([]semantic.Node, len(children))
	for i, ch := range children {
		ch.Depth++
		out[i] = ch
	}
	return semantic.New(role).Extend(out...)
}

func (Backend) VStack(_ *view.Context, _ view.VStack, children []semantic.Node) semantic.Node {
	return stacked("vstack", children)
}

func (Backend) HStack(_ *view.Context, _ view.HStack, children []semantic.Node) semantic.Node {
	return stacked("hstack", children)
}

func (Backend) Wrap(_ *view.Context, _ view.Wrap, children []semantic.Node) semantic.Node {
	return stacked("wrap", children)
}

func (Backend) ZStack(_ *view.Context, _ view.ZStack, children []semantic.Node) semantic.Node {
	return semantic.New("zstack").Extend(children...)
}

func (Backend) Grid(_ *view.Context, e view.Grid, children []semantic.Node) semantic.Node {
	return semantic.New("grid").
		WithLabel(fmt.Sprintf("columns: %d", e.Columns)).
		Extend(children...)
}

func (Backend) Text(_ *view.Context, e view.Text) semantic.Node {
	return semantic.New("text").WithContent(e.Content)
}

func (Backend) RichText(_ *view.Context, e view.RichText) semantic.Node {
	var sb strings.Builder
	for _, s := range e.Spans {
		sb.WriteString(s.Content)
	}
	return semantic.New("text").WithContent(sb.String())
}

func (Backend) Icon(_ *view.Context, e view.Icon) semantic.Node {
	return semantic.New("icon").WithLabel(e.Name)
}

func (Backend) Divider(*view.Context, view.Divider) semantic.Node {
	return semantic.New("divider")
}

func (Backend) Space(*view.Context, view.Space) semantic.Node {
	return semantic.New("space")
}

func (Backend) Circle(_ *view.Context, e view.Circle) semantic.Node {
	return withColor(semantic.New("circle").WithLabel("r="+num(e.Radius)), e.Color)
}

func (Backend) Arc(_ *view.Context, e view.Arc) semantic.Node {
	label := fmt.Sprintf("r=%s, %s->%s", num(e.Radius), num(e.StartAngle), num(e.EndAngle))
	return withColor(semantic.New("arc").WithLabel(label), e.Color)
}

func (Backend) Path(_ *view.Context, e view.Path) semantic.Node {
	label := fmt.Sprintf("%d pts, w=%s", len(e.Points), num(e.Width))
	return withColor(semantic.New("path").WithLabel(label), e.Color)
}

func (Backend) Capsule(_ *view.Context, e view.Capsule) semantic.Node {
	return withColor(semantic.New("capsule"), e.Color)
}

func (Backend) Rectangle(_ *view.Context, e view.Rectangle) semantic.Node {
	return withColor(semantic.New("rectangle"), e.Color)
}

func (Backend) Button(_ *view.Context, e view.Button, content semantic.Node) semantic.Node {
	return semantic.New("button").
		WithID(e.ID).
		WithLabel(e.Variant.String() + "_" + e.Intent.String()).
		Push(content)
}

func (Backend) SidebarItem(_ *view.Context, e view.SidebarItem) semantic.Node {
	return semantic.New("sidebar_item").
		WithLabel(e.Title).
		WithContent(e.Icon).
		Push(semantic.New("state").WithLabel("selected").WithContent(strconv.FormatBool(e.Selected)))
}

func (Backend) TextInput(_ *view.Context, e view.TextInput) semantic.Node {
	value := e.Value
	if e.Secure {
		value = "***"
	}
	return semantic.New("text_input").WithID(e.ID).WithLabel(e.Placeholder).WithContent(value)
}

func (Backend) TextEditor(_ *view.Context, e view.TextEditor) semantic.Node {
	return semantic.New("text_editor").WithID(e.ID).WithContent(e.Content)
}

func (Backend) Slider(_ *view.Context, e view.Slider) semantic.Node {
	return semantic.New("slider").
		WithLabel(num(e.Min) + ".." + num(e.Max)).
		WithContent(num(e.Value))
}

func (Backend) Toggle(_ *view.Context, e view.Toggle) semantic.Node {
	return semantic.New("toggle").WithLabel(e.Label).WithContent(strconv.FormatBool(e.Active))
}

func (Backend) Image(_ *view.Context, e view.Image) semantic.Node {
	return semantic.New("image").WithContent(e.Path)
}

func (Backend) Video(_ *view.Context, e view.Video) semantic.Node {
	return semantic.New("video").WithContent(e.Path)
}

func (Backend) WebView(_ *view.Context, e view.WebView) semantic.Node {
	return semantic.New("web_view").WithContent(e.URL)
}

func (Backend) Container(_ *view.Context, _ view.Container, content semantic.Node) semantic.Node {
	return content
}

func (Backend) ScrollView(_ *view.Context, _ view.ScrollView, content semantic.Node) semantic.Node {
	return content
}

func (Backend) MouseArea(_ *view.Context, _ view.MouseArea, content semantic.Node) semantic.Node {
	return content
}

// Tooltip keeps any documentation the content already carries.
func (Backend) Tooltip(_ *view.Context, e view.Tooltip, content semantic.Node) semantic.Node {
	if content.Documentation == "" {
		content.Documentation = e.Text
	}
	return content
}

func (Backend) GlassCard(_ *view.Context, _ view.GlassCard, content semantic.Node) semantic.Node {
	return content
}

func (Backend) Section(_ *view.Context, e view.Section, content semantic.Node) semantic.Node {
	return semantic.New("section").WithLabel(e.Title).Push(content)
}

func (Backend) SpatialModifier(_ *view.Context, _ view.SpatialModifier, content semantic.Node) semantic.Node {
	return content
}

func (Backend) Semantic(_ *view.Context, e view.Semantic) semantic.Node {
	return e.Node
}
