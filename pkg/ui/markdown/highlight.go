package markdown

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// TokenClass is the coarse category a highlighted token is colored by.
type TokenClass int

const (
	ClassPlain TokenClass = iota
	ClassKeyword
	ClassType
	ClassFunction
	ClassString
	ClassNumber
	ClassComment
	ClassPunctuation
)

// Token is a run of source text in one class.
type Token struct {
	Class TokenClass
	Text  string
}

// Highlight tokenizes code with the lexer for language, falling back to
// content analysis and then plain text. The result has one entry per source
// line; a trailing newline does not produce an empty last line.
func Highlight(code, language string) [][]Token {
	code = strings.TrimRight(code, "\n")
	if code == "" {
		return [][]Token{nil}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iter, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return plainLines(code)
	}

	lines := [][]Token{nil}
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		class := classify(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			appendToken(&lines[len(lines)-1], Token{Class: class, Text: part})
		}
	}
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

func plainLines(code string) [][]Token {
	parts := strings.Split(code, "\n")
	lines := make([][]Token, len(parts))
	for i, p := range parts {
		appendToken(&lines[i], Token{Text: p})
	}
	return lines
}

func appendToken(line *[]Token, t Token) {
	if t.Text == "" {
		return
	}
	if n := len(*line); n > 0 && (*line)[n-1].Class == t.Class {
		(*line)[n-1].Text += t.Text
		return
	}
	*line = append(*line, t)
}

func classify(tt chroma.TokenType) TokenClass {
	switch {
	case tt.InCategory(chroma.Comment):
		return ClassComment
	case tt.InCategory(chroma.Keyword):
		if tt == chroma.KeywordType {
			return ClassType
		}
		return ClassKeyword
	case tt.InSubCategory(chroma.LiteralString):
		return ClassString
	case tt.InSubCategory(chroma.LiteralNumber):
		return ClassNumber
	case tt.InCategory(chroma.Punctuation), tt.InCategory(chroma.Operator):
		return ClassPunctuation
	}
	switch tt {
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return ClassFunction
	case chroma.NameClass, chroma.NameNamespace, chroma.NameBuiltin:
		return ClassType
	}
	return ClassPlain
}

// color maps a class onto the theme palette.
func (c TokenClass) color(p theme.Palette) theme.Color {
	switch c {
	case ClassKeyword:
		return p.Accent
	case ClassType:
		return p.Info
	case ClassFunction:
		return p.Primary
	case ClassString:
		return p.Success
	case ClassNumber:
		return p.Warning
	case ClassComment:
		return p.TextTertiary
	case ClassPunctuation:
		return p.TextSecondary
	default:
		return p.TextPrimary
	}
}

func lineSpans(line []Token, p theme.Palette) []view.Span {
	spans := make([]view.Span, 0, len(line))
	for _, t := range line {
		spans = append(spans, view.Span{Content: t.Text, Color: view.ColorPtr(t.Class.color(p)), Font: view.FontMonospace})
	}
	return spans
}
