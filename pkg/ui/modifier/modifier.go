// Package modifier wraps a view to change how it renders or how it is
// described to agents, without the view knowing.
package modifier

import (
	"strconv"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

func describe(ctx *view.Context, v view.View) semantic.Node {
	if v == nil {
		return semantic.New("view")
	}
	return view.Describe(ctx, v)
}

func render(ctx *view.Context, v view.View) view.Element {
	if v == nil {
		return nil
	}
	return v.Render(ctx)
}

// Tagged adds a tag to the content's semantic node. It renders unchanged.
type Tagged struct {
	content view.View
	tag     string
}

// Neural marks content with an agent-facing tag such as "primary_action".
func Neural(content view.View, tag string) Tagged {
	return Tagged{content: content, tag: tag}
}

func (t Tagged) Render(ctx *view.Context) view.Element { return render(ctx, t.content) }

func (t Tagged) Describe(ctx *view.Context) semantic.Node {
	return describe(ctx, t.content).WithTag(t.tag)
}

// Doc shows a tooltip on screen and documents the content for agents.
type Doc struct {
	content view.View
	text    string
}

func Documented(content view.View, text string) Doc {
	return Doc{content: content, text: text}
}

func (d Doc) Render(ctx *view.Context) view.Element {
	return view.Tooltip{Content: render(ctx, d.content), Text: d.text}
}

func (d Doc) Describe(ctx *view.Context) semantic.Node {
	return describe(ctx, d.content).WithDocumentation(d.text)
}

// Billboarded turns the spatial nodes of its subtree toward the viewer.
type Billboarded struct {
	content view.View
	active  bool
}

func Billboard(content view.View, active bool) Billboarded {
	return Billboarded{content: content, active: active}
}

func (b Billboarded) Render(ctx *view.Context) view.Element {
	scoped := ctx.WithBillboarding(b.active)
	return view.Scope{Context: scoped, Content: render(scoped, b.content)}
}

func (b Billboarded) Describe(ctx *view.Context) semantic.Node {
	return describe(ctx.WithBillboarding(b.active), b.content).
		WithTag("spatial:billboard:" + strconv.FormatBool(b.active))
}

// Protected marks content as requiring elevated confirmation before an
// agent may act on it.
type Protected struct {
	content view.View
	reason  string
}

func Sudo(content view.View, reason string) Protected {
	return Protected{content: content, reason: reason}
}

func (p Protected) Render(ctx *view.Context) view.Element { return render(ctx, p.content) }

func (p Protected) Describe(ctx *view.Context) semantic.Node {
	n := describe(ctx, p.content)
	n.Protected = true
	n.ProtectReason = p.reason
	return n
}

// Focused renders its content with id focused, so that matching controls
// draw a focus ring and spatial nodes report focus.
type Focused struct {
	content view.View
	id      string
}

func Focus(content view.View, id string) Focused {
	return Focused{content: content, id: id}
}

func (f Focused) Render(ctx *view.Context) view.Element {
	scoped := ctx.WithFocus(f.id)
	return view.Scope{Context: scoped, Content: render(scoped, f.content)}
}

func (f Focused) Describe(ctx *view.Context) semantic.Node {
	return describe(ctx.WithFocus(f.id), f.content)
}
