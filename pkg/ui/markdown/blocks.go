package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/odvcencio/facet/pkg/ui/markup"
	"github.com/odvcencio/facet/pkg/ui/view"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockTask
	blockBullet
	blockNumbered
	blockCode
	blockTable
	blockQuote
	blockRule
)

// block is one top-level piece of an article, extracted from the AST once so
// that rendering under different contexts never reparses.
type block struct {
	kind  blockKind
	runs  []markup.Run
	level int // heading level, or list nesting depth
	index int
	done  bool

	language string
	code     string

	header [][]markup.Run
	rows   [][][]markup.Run
	align  []view.Alignment

	children []block
}

func extract(source []byte) []block {
	root := defaultParser.Parse(source)
	var out []block
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		out = appendBlock(out, n, source, 0)
	}
	return out
}

func appendBlock(out []block, node ast.Node, src []byte, depth int) []block {
	switch n := node.(type) {
	case *ast.Heading:
		return append(out, block{kind: blockHeading, level: n.Level, runs: inlineRuns(n, src)})
	case *ast.Paragraph, *ast.TextBlock:
		if runs := inlineRuns(n, src); len(runs) > 0 {
			return append(out, block{kind: blockParagraph, runs: runs})
		}
		return out
	case *ast.List:
		return appendList(out, n, src, depth)
	case *ast.FencedCodeBlock:
		return append(out, block{kind: blockCode, language: string(n.Language(src)), code: linesOf(n, src)})
	case *ast.CodeBlock:
		return append(out, block{kind: blockCode, code: linesOf(n, src)})
	case *extast.Table:
		return append(out, tableBlock(n, src))
	case *ast.Blockquote:
		q := block{kind: blockQuote}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			q.children = appendBlock(q.children, c, src, depth)
		}
		return append(out, q)
	case *ast.ThematicBreak:
		return append(out, block{kind: blockRule})
	default:
		return out
	}
}

// appendList flattens a list into one block per item. Nested lists follow
// their parent item with a greater depth.
func appendList(out []block, list *ast.List, src []byte, depth int) []block {
	index := list.Start
	if index == 0 {
		index = 1
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		b := block{kind: blockBullet, level: depth}
		if list.IsOrdered() {
			b.kind, b.index = blockNumbered, index
		}
		var rest []ast.Node
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if b.runs == nil {
					if box, ok := c.FirstChild().(*extast.TaskCheckBox); ok {
						b.kind, b.done = blockTask, box.IsChecked
					}
					b.runs = inlineRuns(c, src)
					continue
				}
			}
			rest = append(rest, c)
		}
		out = append(out, b)
		for _, c := range rest {
			out = appendBlock(out, c, src, depth+1)
		}
		index++
	}
	return out
}

func tableBlock(t *extast.Table, src []byte) block {
	b := block{kind: blockTable}
	for _, a := range t.Alignments {
		switch a {
		case extast.AlignCenter:
			b.align = append(b.align, view.Center)
		case extast.AlignRight:
			b.align = append(b.align, view.End)
		default:
			b.align = append(b.align, view.Start)
		}
	}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells [][]markup.Run
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, inlineRuns(cell, src))
		}
		if _, ok := row.(*extast.TableHeader); ok {
			b.header = cells
			continue
		}
		b.rows = append(b.rows, cells)
	}
	return b
}

func linesOf(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

// inlineRuns flattens the inline children of n into bold, code and plain
// runs. Adjacent runs of the same kind merge and the outer whitespace is
// trimmed.
func inlineRuns(n ast.Node, src []byte) []markup.Run {
	var runs []markup.Run
	add := func(kind markup.Kind, s string) {
		if s == "" {
			return
		}
		if last := len(runs) - 1; last >= 0 && runs[last].Kind == kind {
			runs[last].Text += s
			return
		}
		runs = append(runs, markup.Run{Kind: kind, Text: s})
	}

	var walk func(node ast.Node, kind markup.Kind)
	walk = func(node ast.Node, kind markup.Kind) {
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				add(kind, string(t.Segment.Value(src)))
				if t.SoftLineBreak() || t.HardLineBreak() {
					add(kind, " ")
				}
			case *ast.String:
				add(kind, string(t.Value))
			case *ast.CodeSpan:
				add(markup.Code, plainText(t, src))
			case *ast.Emphasis:
				if t.Level >= 2 {
					walk(t, markup.Bold)
				} else {
					walk(t, kind)
				}
			case *ast.AutoLink:
				add(kind, string(t.URL(src)))
			case *extast.TaskCheckBox, *ast.RawHTML:
			default:
				walk(c, kind)
			}
		}
	}
	walk(n, markup.Plain)

	if len(runs) > 0 {
		runs[0].Text = strings.TrimLeft(runs[0].Text, " \t")
		last := len(runs) - 1
		runs[last].Text = strings.TrimRight(runs[last].Text, " \t")
	}
	return runs
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(plainText(c, src))
		}
	}
	return b.String()
}
