package graphical

import (
	"html"
	"strings"

	"cogentcore.org/core/core"

	"github.com/odvcencio/facet/pkg/ui/markup"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// textType maps a point size onto the nearest Cogent Core text bucket.
func textType(size float32) core.TextTypes {
	switch {
	case size >= 32:
		return core.TextHeadlineLarge
	case size >= 28:
		return core.TextHeadlineMedium
	case size >= 24:
		return core.TextHeadlineSmall
	case size >= 20:
		return core.TextTitleLarge
	case size >= 16:
		return core.TextBodyLarge
	case size >= 14 || size <= 0:
		return core.TextBodyMedium
	case size >= 12:
		return core.TextBodySmall
	default:
		return core.TextLabelSmall
	}
}

func spanHTML(b *strings.Builder, s view.Span, palette theme.Palette) {
	content := html.EscapeString(s.Content)
	if s.Font == view.FontMonospace {
		content = "<code>" + content + "</code>"
	}
	if s.Bold {
		content = "<b>" + content + "</b>"
	}
	color := s.Color
	if color == nil && s.Dim {
		color = &palette.TextSecondary
	}
	if color != nil {
		content = `<span style="color:` + color.Hex() + `">` + content + "</span>"
	}
	b.WriteString(content)
}

func spansHTML(palette theme.Palette, spans []view.Span) string {
	var b strings.Builder
	for _, s := range spans {
		spanHTML(&b, s, palette)
	}
	return b.String()
}

// textHTML runs the inline markup scanner. Text without markers is only
// escaped so the widget's own color applies.
func textHTML(ctx *view.Context, e view.Text) string {
	var out string
	if markup.HasMarkup(e.Content) {
		out = spansHTML(ctx.Theme.Colors, markup.Spans(markup.Scan(e.Content), ctx.Theme.Colors))
	} else {
		out = html.EscapeString(e.Content)
	}
	if e.Bold {
		out = "<b>" + out + "</b>"
	}
	return out
}
