package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Run
	}{
		{"empty", "", nil},
		{"plain", "hello", []Run{{Plain, "hello"}}},
		{"bold", "a **b** c", []Run{{Plain, "a "}, {Bold, "b"}, {Plain, " c"}}},
		{"code", "run `go test` now", []Run{{Plain, "run "}, {Code, "go test"}, {Plain, " now"}}},
		{"leading marker", "**x**", []Run{{Bold, "x"}}},
		{"code before bold", "`x` and **y**", []Run{{Code, "x"}, {Plain, " and "}, {Bold, "y"}}},
		{"backtick inside bold", "**a `b` c**", []Run{{Bold, "a `b` c"}}},
		{"unterminated bold", "**bold", []Run{{Plain, "**bold"}}},
		{"unterminated bold with prefix", "see **bold", []Run{{Plain, "see **bold"}}},
		{"unterminated code", "a `b", []Run{{Plain, "a `b"}}},
		{"unterminated after run", "**a** then **b", []Run{{Bold, "a"}, {Plain, " then **b"}}},
		{"empty bold", "****", []Run{{Bold, ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.input))
		})
	}
}

func TestUnterminatedKeepsOriginal(t *testing.T) {
	input := "a text with an **unterminated marker"
	runs := Scan(input)
	require.Len(t, runs, 1)
	assert.Equal(t, Plain, runs[0].Kind)
	assert.Equal(t, input, runs[0].Text)
}

func TestSpans(t *testing.T) {
	palette := theme.Default().Colors
	spans := Spans(Scan("x **b** `c`"), palette)
	require.Len(t, spans, 4)

	assert.Equal(t, "x ", spans[0].Content)
	assert.Equal(t, palette.TextSecondary, *spans[0].Color)

	assert.True(t, spans[1].Bold)
	assert.Equal(t, palette.TextPrimary, *spans[1].Color)

	assert.Equal(t, " c ", spans[3].Content)
	assert.Equal(t, view.FontMonospace, spans[3].Font)
	assert.Equal(t, palette.Primary, *spans[3].Color)
}

func TestPlaintextAndHasMarkup(t *testing.T) {
	assert.Equal(t, "a b c", Plaintext(Scan("a **b** c")))
	assert.True(t, HasMarkup("x `y`"))
	assert.False(t, HasMarkup("plain"))
	assert.Equal(t, "code", Code.String())
}
