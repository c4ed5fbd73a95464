// Package atoms holds the primitive component views. Each atom resolves its
// configuration against the Context (scaling, theme colors) and produces a
// single primitive element, and describes itself for agents.
//
// Atoms are built with a constructor and chained setters. A built atom is
// only read by Render and Describe, so it may be rendered concurrently.
package atoms

import (
	"strings"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// DefaultTextSize is the point size of text without a preset.
const DefaultTextSize float32 = 14

// Text is a run of text. Inline **bold** and `code` markers are styled by
// the backends that support them.
type Text struct {
	content string
	size    float32
	color   *theme.Color
	intent  *theme.Intent
	bold    bool
	dim     bool
	font    view.Font
	width   view.Length
	align   view.Alignment
}

// NewText creates body text.
func NewText(content string) *Text {
	return &Text{content: content, size: DefaultTextSize}
}

func (t *Text) Size(size float32) *Text      { t.size = size; return t }
func (t *Text) Color(c theme.Color) *Text    { t.color = &c; return t }
func (t *Text) Intent(i theme.Intent) *Text  { t.intent = &i; return t }
func (t *Text) Bold() *Text                  { t.bold = true; return t }
func (t *Text) Dim() *Text                   { t.dim = true; return t }
func (t *Text) Monospace() *Text             { t.font = view.FontMonospace; return t }
func (t *Text) Width(w view.Length) *Text    { t.width = w; return t }
func (t *Text) Align(a view.Alignment) *Text { t.align = a; return t }
func (t *Text) Center() *Text                { return t.Align(view.Center) }
func (t *Text) Wrap() *Text                  { return t.Width(view.Fill) }
func (t *Text) Primary() *Text               { return t.Intent(theme.IntentPrimary) }

// Secondary draws the text in the theme's secondary text color.
func (t *Text) Secondary() *Text { return t.Dim() }

func (t *Text) preset(size float32, bold, dim bool) *Text {
	t.size, t.bold, t.dim = size, bold, dim
	return t
}

func (t *Text) LargeTitle() *Text  { return t.preset(32, true, false) }
func (t *Text) Title1() *Text      { return t.preset(28, true, false) }
func (t *Text) Title2() *Text      { return t.preset(22, true, false) }
func (t *Text) Title3() *Text      { return t.preset(20, true, false) }
func (t *Text) Headline() *Text    { return t.preset(17, true, false) }
func (t *Text) Body() *Text        { return t.preset(17, false, false) }
func (t *Text) Callout() *Text     { return t.preset(16, false, false) }
func (t *Text) Subheadline() *Text { return t.preset(15, false, true) }
func (t *Text) Footnote() *Text    { return t.preset(13, false, true) }
func (t *Text) Caption1() *Text    { return t.preset(12, false, true) }
func (t *Text) Caption2() *Text    { return t.preset(11, false, true) }

func (t *Text) Render(ctx *view.Context) view.Element {
	return view.Text{
		Content:   t.content,
		Size:      ctx.Scale(t.size),
		Color:     t.color,
		Bold:      t.bold,
		Dim:       t.dim,
		Intent:    t.intent,
		Font:      t.font,
		Width:     ctx.ScaleLength(t.width),
		Alignment: t.align,
	}
}

func (t *Text) Describe(*view.Context) semantic.Node {
	return semantic.New("text").WithContent(t.content)
}

// RichText is a line of individually styled spans.
type RichText struct {
	spans []view.Span
	size  float32
	width view.Length
	align view.Alignment
}

// NewRichText creates rich text from spans. A span with no size inherits the
// text size.
func NewRichText(spans ...view.Span) *RichText {
	return &RichText{spans: spans, size: DefaultTextSize}
}

func (r *RichText) Size(size float32) *RichText      { r.size = size; return r }
func (r *RichText) Width(w view.Length) *RichText    { r.width = w; return r }
func (r *RichText) Align(a view.Alignment) *RichText { r.align = a; return r }

func (r *RichText) Render(ctx *view.Context) view.Element {
	spans := make([]view.Span, len(r.spans))
	for i, s := range r.spans {
		s.Size = ctx.Scale(s.Size)
		spans[i] = s
	}
	return view.RichText{
		Spans:     spans,
		Size:      ctx.Scale(r.size),
		Width:     ctx.ScaleLength(r.width),
		Alignment: r.align,
	}
}

func (r *RichText) Describe(*view.Context) semantic.Node {
	var b strings.Builder
	for _, s := range r.spans {
		b.WriteString(s.Content)
	}
	return semantic.New("text").WithContent(b.String())
}
