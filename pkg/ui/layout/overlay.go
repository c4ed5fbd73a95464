package layout

import "github.com/odvcencio/facet/pkg/ui/view"

// Overlay layers overlay on top of base, both filling the available space.
func Overlay(base, overlay view.View, alignment view.Alignment) *ZStack {
	return NewZStack(base, overlay).Width(view.Fill).Height(view.Fill).Align(alignment)
}

// IdealWidth centers content in a column of the given width. The scaled
// width is clamped to [100, 1200].
func IdealWidth(width float32, content view.View) view.View {
	return view.Func(func(ctx *view.Context) view.Element {
		w := min(max(ctx.Scale(width), 100), 1200)
		slot := view.Container{Content: renderContent(ctx, content), Width: view.Fixed(w)}
		return view.HStack{
			Children: []view.Element{slot},
			Width:    view.Fill,
			AlignX:   view.Center,
		}
	})
}
