// Package markdown turns markdown source into views built from atoms and
// layouts, so an article renders through every backend unchanged.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Parser wraps goldmark for markdown parsing.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a parser with GitHub Flavored Markdown enabled (tables,
// strikethrough, autolinks, task lists).
func NewParser() *Parser {
	return &Parser{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Parse parses markdown source and returns the AST root.
func (p *Parser) Parse(source []byte) ast.Node {
	return p.md.Parser().Parse(text.NewReader(source))
}

// ParseString is a convenience method for parsing string input.
func (p *Parser) ParseString(source string) ast.Node {
	return p.Parse([]byte(source))
}

var defaultParser = NewParser()
