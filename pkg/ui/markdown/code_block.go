package markdown

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/odvcencio/facet/pkg/ui/atoms"
	"github.com/odvcencio/facet/pkg/ui/layout"
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

const codeSize = 13

// CodeBlock shows highlighted source under a header naming its language,
// with an optional copy button.
type CodeBlock struct {
	code     string
	language string
	onCopy   func(string) view.Message
}

func NewCodeBlock(code string) *CodeBlock {
	return &CodeBlock{code: code}
}

func (c *CodeBlock) Language(lang string) *CodeBlock { c.language = lang; return c }

// OnCopy adds a copy button that emits fn(code) when pressed.
func (c *CodeBlock) OnCopy(fn func(string) view.Message) *CodeBlock { c.onCopy = fn; return c }

func (c *CodeBlock) label() string {
	if c.language == "" {
		return "TEXT"
	}
	return cases.Upper(language.Und).String(c.language)
}

func (c *CodeBlock) Render(ctx *view.Context) view.Element {
	colors := ctx.Theme.Colors

	header := layout.NewHStack(
		atoms.NewText(c.label()).Size(10).Monospace().Color(colors.TextSecondary),
		atoms.Spacer(),
	).Spacing(12).Padding(view.Symmetric(8, 12)).AlignY(view.Center)
	if c.onCopy != nil {
		copyLabel := layout.NewHStack(
			atoms.NewIcon("copy").Size(10).Color(colors.TextSecondary),
			atoms.NewText("Copy").Size(10).Monospace().Color(colors.TextSecondary),
		).Spacing(6).Width(view.Shrink)
		header.Push(atoms.NewButton(copyLabel).
			Variant(theme.VariantGhost).
			Intent(theme.IntentNeutral).
			Size(atoms.SizeSmall).
			OnPress(c.onCopy(c.code)))
	}

	lines := layout.NewVStack()
	for _, line := range Highlight(c.code, c.language) {
		lines.Push(atoms.NewRichText(lineSpans(line, colors)...).Size(codeSize))
	}
	body := atoms.NewContainer(
		atoms.NewScrollView(lines).Direction(view.ScrollHorizontal).Height(view.Shrink),
	).Padding(view.Uniform(16)).Width(view.Fill).Background(colors.SurfaceVariant)

	return atoms.NewContainer(
		layout.NewVStack(
			atoms.NewContainer(header).Width(view.Fill).Background(colors.Surface),
			body,
		),
	).Width(view.Fill).Radius(8).Border(1, colors.Border.WithAlpha(0.5)).Render(ctx)
}

func (c *CodeBlock) Describe(*view.Context) semantic.Node {
	return semantic.New("code").
		WithLabel(c.language).
		WithContent(strings.TrimRight(c.code, "\n"))
}
