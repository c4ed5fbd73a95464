package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
	"github.com/odvcencio/facet/pkg/ui/view/viewtest"
)

func is(want string) func(t *testing.T, got string) {
	return func(t *testing.T, got string) {
		assert.Equal(t, want, got)
	}
}

func TestPrimitiveMatrix(t *testing.T) {
	viewtest.Run(t, Plain(), map[string]func(t *testing.T, got string){
		"vstack":            is("a\nb"),
		"hstack":            is("a b"),
		"wrap":              is("a b"),
		"zstack":            is("a\nb"),
		"grid":              is("a | b\nc"),
		"text":              is("hello"),
		"rich_text":         is("bold plain"),
		"icon":              is("⚙"),
		"divider":           is(strings.Repeat("─", 20)),
		"space":             is(" "),
		"circle":            is("O"),
		"arc":               is("C"),
		"path":              is("~ (3 pts)"),
		"capsule":           is("="),
		"rectangle":         is("█"),
		"button":            is("  [ Save ]  "),
		"button_focused":    is("> [ Save ] <"),
		"sidebar_item":      is(" Inbox"),
		"text_input":        is("[Input:bob:Name:]"),
		"text_input_secure": is("[Input:hunter2:Password:***]"),
		"text_editor":       is("[Editor: 3 lines]"),
		"slider":            is("[---X---] 2.50"),
		"toggle":            is("Wifi [ON]"),
		"image":             is("[IMG: assets/cat.png]"),
		"video":             is("[VIDEO: clip.mp4]"),
		"web_view":          is("[WEB: https://example.com]"),
		"container":         is("inner"),
		"scroll_view":       is("inner"),
		"mouse_area":        is("inner"),
		"tooltip":           is("inner (Tooltip: help)"),
		"glass_card":        is("(GLASS)\ninner"),
		"section":           is("# GENERAL\ninner"),
		"spatial_modifier":  is("inner"),
		"semantic":          is("(SEMANTIC: custom)"),
		"scope_focus":       is("> [ Save ] <"),
	})
}

func TestIconSymbols(t *testing.T) {
	b := Plain()
	ctx := viewtest.BaseContext()
	assert.Equal(t, ">_", b.Icon(ctx, view.Icon{Name: "terminal"}))
	assert.Equal(t, "›", b.Icon(ctx, view.Icon{Name: "chevron_right"}))
	assert.Equal(t, "○", b.Icon(ctx, view.Icon{Name: "unknown"}))
}

func TestUnselectedSidebarItem(t *testing.T) {
	got := Plain().SidebarItem(viewtest.BaseContext(), view.SidebarItem{Title: "Inbox"})
	assert.Equal(t, "  Inbox", got)
}

func TestSectionTitleUsesUnicodeUppercase(t *testing.T) {
	got := Plain().Section(viewtest.BaseContext(), view.Section{Title: "straße"}, "x")
	assert.Equal(t, "# STRASSE\nx", got)
}

func TestButtonWithoutIDIsNeverFocused(t *testing.T) {
	ctx := viewtest.BaseContext().WithFocus("")
	got := Plain().Button(ctx, view.Button{}, "ok")
	assert.Equal(t, "  [ ok ]  ", got)
}

func TestANSIStyling(t *testing.T) {
	b := New(termenv.ANSI)
	ctx := viewtest.BaseContext()

	bold := b.Text(ctx, view.Text{Content: "hi", Bold: true})
	assert.Contains(t, bold, "\x1b[")
	assert.Contains(t, bold, "hi")
	assert.NotEqual(t, "hi", bold)

	danger := theme.IntentDanger
	colored := b.Text(ctx, view.Text{Content: "err", Intent: &danger})
	assert.Contains(t, colored, "31")

	neutral := theme.IntentNeutral
	assert.Equal(t, "plain", b.Text(ctx, view.Text{Content: "plain", Intent: &neutral}))

	assert.Contains(t, b.Section(ctx, view.Section{Title: "io"}, "x"), "# IO")
	assert.Contains(t, b.Icon(ctx, view.Icon{Name: "settings"}), "\x1b[")
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in   string
		want termenv.Profile
	}{
		{"", termenv.ANSI},
		{"ansi", termenv.ANSI},
		{"ASCII", termenv.Ascii},
		{"ansi256", termenv.ANSI256},
		{" truecolor ", termenv.TrueColor},
	}
	for _, tt := range tests {
		got, err := ParseProfile(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseProfile("cga")
	assert.Error(t, err)
}

func TestRenderUnderSeveralContexts(t *testing.T) {
	base := viewtest.BaseContext()
	ctxs := []*view.Context{base, base.WithFocus("go")}
	v := view.Static(view.HStack{Children: []view.Element{
		view.Text{Content: "run"},
		view.Button{ID: "go", Content: view.Text{Content: "Go"}},
	}})

	out, err := view.RenderAll[string](context.Background(), Plain(), ctxs, v)
	require.NoError(t, err)
	assert.Equal(t, []string{"run   [ Go ]  ", "run > [ Go ] <"}, out)
}
