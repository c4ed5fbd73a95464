// Package markup scans the small inline syntax accepted by text primitives:
// **bold** and `code`. Anything else, including unterminated markers, is
// literal text.
package markup

import (
	"strings"

	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// Kind classifies a run.
type Kind int

const (
	Plain Kind = iota
	Bold
	Code
)

func (k Kind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Code:
		return "code"
	default:
		return "plain"
	}
}

// Run is a contiguous piece of text with one style.
type Run struct {
	Kind Kind
	Text string
}

const (
	boldMarker = "**"
	codeMarker = "`"
)

// HasMarkup reports whether s contains any marker character sequence.
func HasMarkup(s string) bool {
	return strings.Contains(s, boldMarker) || strings.Contains(s, codeMarker)
}

// Scan splits s into runs. The earliest marker wins; when its closing
// marker is missing, the rest of the input becomes one plain run so no text
// is ever dropped.
func Scan(s string) []Run {
	var runs []Run
	remaining := s
	for remaining != "" {
		marker, start := nextMarker(remaining)
		if start < 0 {
			runs = append(runs, Run{Kind: Plain, Text: remaining})
			break
		}
		body := remaining[start+len(marker):]
		end := strings.Index(body, marker)
		if end < 0 {
			runs = append(runs, Run{Kind: Plain, Text: remaining})
			break
		}
		if start > 0 {
			runs = append(runs, Run{Kind: Plain, Text: remaining[:start]})
		}
		kind := Bold
		if marker == codeMarker {
			kind = Code
		}
		runs = append(runs, Run{Kind: kind, Text: body[:end]})
		remaining = body[end+len(marker):]
	}
	return runs
}

func nextMarker(s string) (string, int) {
	bold := strings.Index(s, boldMarker)
	code := strings.Index(s, codeMarker)
	switch {
	case bold < 0 && code < 0:
		return "", -1
	case code < 0 || (bold >= 0 && bold <= code):
		return boldMarker, bold
	default:
		return codeMarker, code
	}
}

// Spans styles runs with theme colors: bold runs in the primary text color,
// code runs padded and monospaced in the primary color, and plain runs in
// the secondary text color.
func Spans(runs []Run, palette theme.Palette) []view.Span {
	spans := make([]view.Span, 0, len(runs))
	for _, r := range runs {
		switch r.Kind {
		case Bold:
			spans = append(spans, view.Span{Content: r.Text, Color: view.ColorPtr(palette.TextPrimary), Bold: true})
		case Code:
			spans = append(spans, view.Span{Content: " " + r.Text + " ", Color: view.ColorPtr(palette.Primary), Font: view.FontMonospace})
		default:
			spans = append(spans, view.Span{Content: r.Text, Color: view.ColorPtr(palette.TextSecondary)})
		}
	}
	return spans
}

// Plaintext strips markers, returning the text a reader would see.
func Plaintext(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
