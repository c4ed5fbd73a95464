package atoms

import (
	"strconv"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// ControlSize scales the padding around a control's content.
type ControlSize int

const (
	SizeMedium ControlSize = iota
	SizeSmall
	SizeLarge
	SizeXLarge
)

func (s ControlSize) padding() view.Padding {
	switch s {
	case SizeSmall:
		return view.Symmetric(4, 8)
	case SizeLarge:
		return view.Symmetric(12, 24)
	case SizeXLarge:
		return view.Symmetric(16, 32)
	default:
		return view.Symmetric(8, 16)
	}
}

// Button is a pressable control around arbitrary content, with an
// optional leading icon.
type Button struct {
	id      string
	content view.View
	icon    string
	onPress view.Message
	intent  theme.Intent
	variant theme.Variant
	size    ControlSize
	width   view.Length
}

// NewButton creates a solid primary button around content.
func NewButton(content view.View) *Button {
	return &Button{content: content}
}

// NewButtonLabel creates a button whose content is text.
func NewButtonLabel(label string) *Button {
	return NewButton(NewText(label))
}

func (b *Button) ID(id string) *Button             { b.id = id; return b }
func (b *Button) Icon(name string) *Button         { b.icon = name; return b }
func (b *Button) OnPress(msg view.Message) *Button { b.onPress = msg; return b }
func (b *Button) Intent(i theme.Intent) *Button    { b.intent = i; return b }
func (b *Button) Variant(v theme.Variant) *Button  { b.variant = v; return b }
func (b *Button) Size(s ControlSize) *Button       { b.size = s; return b }
func (b *Button) Width(w view.Length) *Button      { b.width = w; return b }

// Render lays the icon and content out in a padded row. The icon takes the
// on-intent color on solid buttons so it stays legible on the fill.
func (b *Button) Render(ctx *view.Context) view.Element {
	var children []view.Element
	if b.icon != "" {
		icon := view.Icon{Name: b.icon, Size: ctx.Scale(16)}
		if b.variant == theme.VariantSolid {
			icon.Color = view.ColorPtr(ctx.Theme.Colors.OnIntentColor(b.intent))
		}
		children = append(children, icon)
	}
	if b.content != nil {
		children = append(children, b.content.Render(ctx))
	}
	width := ctx.ScaleLength(b.width)
	inner := view.HStack{
		Children: children,
		Spacing:  ctx.Scale(8),
		Padding:  ctx.ScalePadding(b.size.padding()),
		Width:    width,
		AlignX:   view.Center,
		AlignY:   view.Center,
	}
	return view.Button{
		ID:      b.id,
		Content: inner,
		OnPress: b.onPress,
		Variant: b.variant,
		Intent:  b.intent,
		Width:   width,
		Compact: b.size == SizeSmall,
	}
}

// Describe uses the content's text as the button label when there is one.
func (b *Button) Describe(ctx *view.Context) semantic.Node {
	n := semantic.New("button").WithID(b.id)
	if b.content == nil {
		return n
	}
	inner := view.Describe(ctx, b.content)
	if inner.Content != "" && len(inner.Children) == 0 {
		return n.WithLabel(inner.Content)
	}
	return n.Push(inner)
}

type Toggle struct {
	label    string
	active   bool
	onToggle func(bool) view.Message
}

func NewToggle(label string, active bool, onToggle func(bool) view.Message) *Toggle {
	return &Toggle{label: label, active: active, onToggle: onToggle}
}

func (t *Toggle) Render(*view.Context) view.Element {
	return view.Toggle{Label: t.label, Active: t.active, OnToggle: t.onToggle}
}

func (t *Toggle) Describe(*view.Context) semantic.Node {
	state := "off"
	if t.active {
		state = "on"
	}
	return semantic.New("toggle").WithLabel(t.label).WithContent(state)
}

type Slider struct {
	min, max, value float32
	onChange        func(float32) view.Message
}

// NewSlider creates a slider over [min, max]. The value is clamped into the
// range when rendered.
func NewSlider(min, max, value float32, onChange func(float32) view.Message) *Slider {
	return &Slider{min: min, max: max, value: value, onChange: onChange}
}

func (s *Slider) Render(*view.Context) view.Element {
	lo, hi := s.min, s.max
	if hi < lo {
		lo, hi = hi, lo
	}
	return view.Slider{Min: lo, Max: hi, Value: min(max(s.value, lo), hi), OnChange: s.onChange}
}

func (s *Slider) Describe(*view.Context) semantic.Node {
	return semantic.New("slider").
		WithLabel(fmtFloat(s.min) + "-" + fmtFloat(s.max)).
		WithContent(fmtFloat(s.value))
}

func fmtFloat(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

// TextField is a single-line text input.
type TextField struct {
	id          string
	value       string
	placeholder string
	onChange    func(string) view.Message
	onSubmit    view.Message
	font        view.Font
	secure      bool
	variant     theme.Variant
}

func NewTextField(value, placeholder string, onChange func(string) view.Message) *TextField {
	return &TextField{value: value, placeholder: placeholder, onChange: onChange, variant: theme.VariantOutline}
}

func (f *TextField) ID(id string) *TextField              { f.id = id; return f }
func (f *TextField) OnSubmit(msg view.Message) *TextField { f.onSubmit = msg; return f }
func (f *TextField) Secure() *TextField                   { f.secure = true; return f }
func (f *TextField) Monospace() *TextField                { f.font = view.FontMonospace; return f }
func (f *TextField) Variant(v theme.Variant) *TextField   { f.variant = v; return f }

func (f *TextField) Render(*view.Context) view.Element {
	return view.TextInput{
		ID:          f.id,
		Value:       f.value,
		Placeholder: f.placeholder,
		OnChange:    f.onChange,
		OnSubmit:    f.onSubmit,
		Font:        f.font,
		Secure:      f.secure,
		Variant:     f.variant,
	}
}

// Describe never exposes the value of a secure field.
func (f *TextField) Describe(*view.Context) semantic.Node {
	n := semantic.New("text_field").WithID(f.id).WithLabel(f.placeholder)
	if f.secure {
		return n.WithTag("secure")
	}
	return n.WithContent(f.value)
}

// TextEditor is a multi-line text input.
type TextEditor struct {
	id       string
	content  string
	onChange func(string) view.Message
	font     view.Font
	height   view.Length
}

func NewTextEditor(content string, onChange func(string) view.Message) *TextEditor {
	return &TextEditor{content: content, onChange: onChange}
}

func (e *TextEditor) ID(id string) *TextEditor         { e.id = id; return e }
func (e *TextEditor) Height(h view.Length) *TextEditor { e.height = h; return e }
func (e *TextEditor) Monospace() *TextEditor           { e.font = view.FontMonospace; return e }

func (e *TextEditor) Render(ctx *view.Context) view.Element {
	return view.TextEditor{ID: e.id, Content: e.content, OnChange: e.onChange, Font: e.font, Height: ctx.ScaleLength(e.height)}
}

func (e *TextEditor) Describe(*view.Context) semantic.Node {
	return semantic.New("text_editor").WithID(e.id).WithContent(e.content)
}

// SidebarItem is a navigation row with an icon and a title.
type SidebarItem struct {
	title    string
	icon     string
	selected bool
	onPress  view.Message
}

func NewSidebarItem(title, icon string, selected bool) *SidebarItem {
	return &SidebarItem{title: title, icon: icon, selected: selected}
}

func (s *SidebarItem) OnPress(msg view.Message) *SidebarItem { s.onPress = msg; return s }

func (s *SidebarItem) Render(*view.Context) view.Element {
	return view.SidebarItem{Title: s.title, Icon: s.icon, Selected: s.selected, OnPress: s.onPress}
}

func (s *SidebarItem) Describe(*view.Context) semantic.Node {
	n := semantic.New("sidebar_item").WithLabel(s.title)
	if s.selected {
		n = n.WithTag("selected")
	}
	return n
}
