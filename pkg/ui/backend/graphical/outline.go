package graphical

import (
	"fmt"
	"strings"

	"cogentcore.org/core/core"
	"cogentcore.org/core/tree"
)

// Outline prints a widget tree one node per line, indented by depth, with
// the text a user would read on each widget. It is meant for previews and
// tests where no window is available.
func Outline(w core.Widget) string {
	var b strings.Builder
	outline(&b, w, 0)
	return strings.TrimRight(b.String(), "\n")
}

func outline(b *strings.Builder, n tree.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(describe(n))
	b.WriteByte('\n')
	nb := n.AsTree()
	for i := range nb.NumChildren() {
		outline(b, nb.Child(i), depth+1)
	}
}

func describe(n tree.Node) string {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", n), "*core.")
	var detail string
	switch w := n.(type) {
	case *core.Text:
		detail = fmt.Sprintf("%q", w.Text)
	case *core.Button:
		detail = fmt.Sprintf("%q", w.Text)
	case *core.TextField:
		detail = fmt.Sprintf("%q", w.Text())
	case *core.Switch:
		detail = fmt.Sprintf("%q on=%t", w.Text, w.IsChecked())
	case *core.Slider:
		detail = fmt.Sprintf("%g in [%g, %g]", w.Value, w.Min, w.Max)
	}
	if id, ok := n.AsTree().Property(idProperty).(string); ok && id != "" {
		detail = strings.TrimSpace("#" + id + " " + detail)
	}
	if wb, ok := n.(core.Widget); ok && wb.AsWidget().Tooltip != "" {
		detail = strings.TrimSpace(detail + " tooltip=" + fmt.Sprintf("%q", wb.AsWidget().Tooltip))
	}
	if detail == "" {
		return kind
	}
	return kind + " " + detail
}
