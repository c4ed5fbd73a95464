// Package terminal renders element trees to strings for character
// terminals. Containers concatenate their children as-is; nothing is
// measured or wrapped.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// ParseProfile maps a configured color profile name to a termenv profile.
// An empty name selects ANSI.
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ansi":
		return termenv.ANSI, nil
	case "ascii", "plain":
		return termenv.Ascii, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color profile %q", name)
	}
}

// Backend renders to strings styled by a lipgloss renderer.
type Backend struct {
	renderer *lipgloss.Renderer

	bold     lipgloss.Style
	dim      lipgloss.Style
	icon     lipgloss.Style
	selected lipgloss.Style
	heading  lipgloss.Style
}

var _ view.Backend[string] = (*Backend)(nil)

// New creates a backend with the given color profile. Use termenv.Ascii
// for escape-free output.
func New(profile termenv.Profile) *Backend {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return NewWithRenderer(r)
}

// NewWithRenderer binds the backend to an existing renderer.
func NewWithRenderer(r *lipgloss.Renderer) *Backend {
	return &Backend{
		renderer: r,
		bold:     r.NewStyle().Bold(true),
		dim:      r.NewStyle().Faint(true),
		icon:     r.NewStyle().Foreground(lipgloss.ANSIColor(termenv.ANSICyan)),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(termenv.ANSIBlue)),
		heading:  r.NewStyle().Bold(true).Faint(true),
	}
}

// Plain is an escape-free backend.
func Plain() *Backend {
	return New(termenv.Ascii)
}

// intentColor returns the ANSI palette index for an intent. Neutral has
// none.
func intentColor(i theme.Intent) (lipgloss.ANSIColor, bool) {
	switch i {
	case theme.IntentPrimary:
		return lipgloss.ANSIColor(termenv.ANSIBlue), true
	case theme.IntentSecondary:
		return lipgloss.ANSIColor(termenv.ANSIBlack), true
	case theme.IntentAccent:
		return lipgloss.ANSIColor(termenv.ANSIMagenta), true
	case theme.IntentSuccess:
		return lipgloss.ANSIColor(termenv.ANSIGreen), true
	case theme.IntentWarning:
		return lipgloss.ANSIColor(termenv.ANSIYellow), true
	case theme.IntentDanger:
		return lipgloss.ANSIColor(termenv.ANSIRed), true
	case theme.IntentInfo:
		return lipgloss.ANSIColor(termenv.ANSICyan), true
	default:
		return 0, false
	}
}

func (b *Backend) emphasis(s string, bold, dim bool) string {
	switch {
	case bold:
		return b.bold.Render(s)
	case dim:
		return b.dim.Render(s)
	default:
		return s
	}
}

func (b *Backend) VStack(_ *view.Context, _ view.VStack, children []string) string {
	return strings.Join(children, "\n")
}

func (b *Backend) HStack(_ *view.Context, _ view.HStack, children []string) string {
	return strings.Join(children, " ")
}

func (b *Backend) Wrap(_ *view.Context, _ view.Wrap, children []string) string {
	return strings.Join(children, " ")
}

func (b *Backend) ZStack(_ *view.Context, _ view.ZStack, children []string) string {
	return strings.Join(children, "\n")
}

func (b *Backend) Grid(_ *view.Context, e view.Grid, children []string) string {
	rows := view.Chunk(children, e.Columns)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " | ")
	}
	return strings.Join(lines, "\n")
}

func (b *Backend) Text(_ *view.Context, e view.Text) string {
	out := b.emphasis(e.Content, e.Bold, e.Dim)
	if e.Intent != nil {
		if c, ok := intentColor(*e.Intent); ok {
			out = b.renderer.NewStyle().Foreground(c).Render(out)
		}
	}
	return out
}

func (b *Backend) RichText(_ *view.Context, e view.RichText) string {
	var sb strings.Builder
	for _, s := range e.Spans {
		sb.WriteString(b.emphasis(s.Content, s.Bold, s.Dim))
	}
	return sb.String()
}

func (b *Backend) Icon(_ *view.Context, e view.Icon) string {
	symbol := "○"
	switch e.Name {
	case "settings":
		symbol = "⚙"
	case "terminal":
		symbol = ">_"
	case "chevron_right":
		symbol = "›"
	}
	return b.icon.Render(symbol)
}

func (b *Backend) Divider(*view.Context, view.Divider) string {
	return strings.Repeat("─", 20)
}

func (b *Backend) Space(*view.Context, view.Space) string   { return " " }
func (b *Backend) Circle(*view.Context, view.Circle) string { return "O" }
func (b *Backend) Arc(*view.Context, view.Arc) string       { return "C" }

func (b *Backend) Path(_ *view.Context, e view.Path) string {
	return fmt.Sprintf("~ (%d pts)", len(e.Points))
}

func (b *Backend) Capsule(*view.Context, view.Capsule) string     { return "=" }
func (b *Backend) Rectangle(*view.Context, view.Rectangle) string { return "█" }

func (b *Backend) Button(ctx *view.Context, e view.Button, content string) string {
	if ctx.IsFocused(e.ID) {
		return "> [ " + content + " ] <"
	}
	return "  [ " + content + " ]  "
}

func (b *Backend) SidebarItem(_ *view.Context, e view.SidebarItem) string {
	if e.Selected {
		return b.selected.Render(" " + e.Title)
	}
	return "  " + e.Title
}

func (b *Backend) TextInput(_ *view.Context, e view.TextInput) string {
	mask := ""
	if e.Secure {
		mask = "***"
	}
	return fmt.Sprintf("[Input:%s:%s:%s]", e.Value, e.Placeholder, mask)
}

func (b *Backend) TextEditor(_ *view.Context, e view.TextEditor) string {
	return fmt.Sprintf("[Editor: %d lines]", strings.Count(e.Content, "\n")+1)
}

func (b *Backend) Slider(_ *view.Context, e view.Slider) string {
	return fmt.Sprintf("[---X---] %.2f", e.Value)
}

func (b *Backend) Toggle(_ *view.Context, e view.Toggle) string {
	state := "OFF"
	if e.Active {
		state = "ON"
	}
	return fmt.Sprintf("%s [%s]", e.Label, state)
}

func (b *Backend) Image(_ *view.Context, e view.Image) string {
	return "[IMG: " + e.Path + "]"
}

func (b *Backend) Video(_ *view.Context, e view.Video) string {
	return "[VIDEO: " + e.Path + "]"
}

func (b *Backend) WebView(_ *view.Context, e view.WebView) string {
	return "[WEB: " + e.URL + "]"
}

func (b *Backend) Container(_ *view.Context, _ view.Container, content string) string {
	return content
}

func (b *Backend) ScrollView(_ *view.Context, _ view.ScrollView, content string) string {
	return content
}

func (b *Backend) MouseArea(_ *view.Context, _ view.MouseArea, content string) string {
	return content
}

func (b *Backend) Tooltip(_ *view.Context, e view.Tooltip, content string) string {
	return content + " (Tooltip: " + e.Text + ")"
}

func (b *Backend) GlassCard(_ *view.Context, _ view.GlassCard, content string) string {
	return "(GLASS)\n" + content
}

func (b *Backend) Section(_ *view.Context, e view.Section, content string) string {
	return b.heading.Render("# "+cases.Upper(language.Und).String(e.Title)) + "\n" + content
}

func (b *Backend) SpatialModifier(_ *view.Context, _ view.SpatialModifier, content string) string {
	return content
}

func (b *Backend) Semantic(_ *view.Context, e view.Semantic) string {
	return "(SEMANTIC: " + e.Node.Role + ")"
}
