package layout

import (
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// SafeArea is a root container that insets its content by the context's
// safe area. The insets are already in viewport units and are not scaled.
// Content below it renders with a zero safe area so nested roots do not
// inset twice.
type SafeArea struct {
	content view.View
}

func NewSafeArea(content view.View) *SafeArea { return &SafeArea{content: content} }

func (s *SafeArea) Render(ctx *view.Context) view.Element {
	var children []view.Element
	if el := renderContent(ctx.WithSafeArea(view.Padding{}), s.content); el != nil {
		children = append(children, el)
	}
	return view.VStack{
		Children: children,
		Padding:  ctx.SafeArea,
		Width:    view.Fill,
		Height:   view.Fill,
	}
}

// Describe passes through: insets carry no meaning for an agent.
func (s *SafeArea) Describe(ctx *view.Context) semantic.Node {
	return describeContent(ctx, s.content)
}
