package markdown

import (
	"strconv"

	"github.com/odvcencio/facet/pkg/ui/atoms"
	"github.com/odvcencio/facet/pkg/ui/layout"
	"github.com/odvcencio/facet/pkg/ui/markup"
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// DefaultSize is the body text size of an article.
const DefaultSize float32 = 16

// Article renders markdown as a column of headings, lists, paragraphs,
// tables and code blocks.
type Article struct {
	source  string
	blocks  []block
	size    float32
	padding view.Padding
	onCopy  func(string) view.Message
}

// NewArticle parses source once. The article can then be rendered under any
// number of contexts.
func NewArticle(source string) *Article {
	return &Article{
		source:  source,
		blocks:  extract([]byte(source)),
		size:    DefaultSize,
		padding: view.Padding{Bottom: 48},
	}
}

func (a *Article) Size(size float32) *Article                   { a.size = size; return a }
func (a *Article) Padding(p view.Padding) *Article              { a.padding = p; return a }
func (a *Article) OnCopy(fn func(string) view.Message) *Article { a.onCopy = fn; return a }

func (a *Article) Render(ctx *view.Context) view.Element {
	col := layout.NewVStack().Spacing(16).Padding(a.padding)
	for _, b := range a.blocks {
		col.Push(a.blockView(b))
	}
	return col.Render(ctx)
}

// Describe summarizes the article with the first hundred runes of its
// source.
func (a *Article) Describe(*view.Context) semantic.Node {
	preview := []rune(a.source)
	if len(preview) > 100 {
		preview = preview[:100]
	}
	return semantic.New("article").WithLabel("Markdown Content").WithContent(string(preview))
}

func (a *Article) blockView(b block) view.View {
	switch b.kind {
	case blockHeading:
		return view.Func(func(ctx *view.Context) view.Element {
			return atoms.NewText(markup.Plaintext(b.runs)).
				Size(a.size * headingScale(b.level)).
				Bold().
				Color(ctx.Theme.Colors.TextPrimary).
				Wrap().
				Render(ctx)
		})
	case blockTask:
		return view.Func(func(ctx *view.Context) view.Element {
			box := atoms.NewText("[ ]").Size(16).Color(ctx.Theme.Colors.TextSecondary)
			if b.done {
				box = atoms.NewText("[x]").Size(16).Color(ctx.Theme.Colors.Success)
			}
			return a.listRow(b, box, 12).Render(ctx)
		})
	case blockBullet:
		return view.Func(func(ctx *view.Context) view.Element {
			marker := atoms.NewText("•").Size(a.size * 0.875).Color(ctx.Theme.Colors.TextSecondary)
			return a.listRow(b, marker, 8).Render(ctx)
		})
	case blockNumbered:
		return view.Func(func(ctx *view.Context) view.Element {
			marker := atoms.NewText(strconv.Itoa(b.index) + ".").
				Size(a.size * 0.875).
				Monospace().
				Color(ctx.Theme.Colors.TextSecondary)
			return a.listRow(b, marker, 8).Render(ctx)
		})
	case blockCode:
		code := NewCodeBlock(b.code).Language(b.language)
		if a.onCopy != nil {
			code.OnCopy(a.onCopy)
		}
		return code
	case blockTable:
		return a.table(b)
	case blockQuote:
		return view.Func(func(ctx *view.Context) view.Element {
			inner := layout.NewVStack().Spacing(8)
			for _, c := range b.children {
				inner.Push(a.blockView(c))
			}
			bar := atoms.NewRectangle(view.Fixed(3), view.Fill).Color(ctx.Theme.Colors.Border)
			return layout.NewHStack(bar, inner).Spacing(12).Render(ctx)
		})
	case blockRule:
		return atoms.NewDivider()
	default:
		return a.paragraph(b.runs)
	}
}

func headingScale(level int) float32 {
	switch level {
	case 1:
		return 2
	case 2:
		return 1.5
	case 3:
		return 1.25
	default:
		return 1
	}
}

func (a *Article) listRow(b block, marker view.View, spacing float32) *layout.HStack {
	return layout.NewHStack(marker, a.paragraph(b.runs)).
		Spacing(spacing).
		Padding(view.Padding{Left: 16 * float32(b.level)})
}

func (a *Article) paragraph(runs []markup.Run) view.View {
	return view.Func(func(ctx *view.Context) view.Element {
		return atoms.NewRichText(markup.Spans(runs, ctx.Theme.Colors)...).Size(a.size).Width(view.Fill).Render(ctx)
	})
}

// table lays the header and rows out on a grid with one column per header
// cell. Header cells are bold.
func (a *Article) table(b block) view.View {
	cols := len(b.header)
	if cols == 0 && len(b.rows) > 0 {
		cols = len(b.rows[0])
	}
	return view.Func(func(ctx *view.Context) view.Element {
		colors := ctx.Theme.Colors
		var cells []view.Element
		cell := func(i int, spans []view.Span) {
			align := view.Start
			if i < len(b.align) {
				align = b.align[i]
			}
			cells = append(cells, atoms.NewRichText(spans...).Size(a.size*0.875).Width(view.Fill).Align(align).Render(ctx))
		}
		for i, runs := range b.header {
			cell(i, []view.Span{{Content: markup.Plaintext(runs), Color: view.ColorPtr(colors.TextPrimary), Bold: true}})
		}
		for _, row := range b.rows {
			for i := 0; i < cols; i++ {
				var runs []markup.Run
				if i < len(row) {
					runs = row[i]
				}
				cell(i, markup.Spans(runs, colors))
			}
		}
		grid := view.Grid{Children: cells, Columns: max(cols, 1), Spacing: ctx.Scale(8)}
		return view.Container{
			Content:     grid,
			Padding:     ctx.ScalePadding(view.Uniform(12)),
			Width:       view.Fill,
			Radius:      view.UniformRadius(ctx.Scale(ctx.Theme.Radius)),
			BorderWidth: 1,
			BorderColor: view.ColorPtr(colors.Border),
		}
	})
}
