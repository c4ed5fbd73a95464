// Package theme provides the design tokens every backend styles from:
// palette colors, corner radius, spacing unit, global scaling and blur.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Tone selects the light or dark palette of a theme.
type Tone string

const (
	ToneLight Tone = "light"
	ToneDark  Tone = "dark"
)

// Palette holds the semantic colors of a theme.
type Palette struct {
	Primary            Color
	OnPrimary          Color
	PrimaryContainer   Color
	OnPrimaryContainer Color

	Secondary            Color
	OnSecondary          Color
	SecondaryContainer   Color
	OnSecondaryContainer Color

	Accent   Color
	OnAccent Color

	Success Color
	Warning Color
	Danger  Color
	Info    Color

	Surface          Color
	OnSurface        Color
	SurfaceVariant   Color
	OnSurfaceVariant Color

	Background   Color
	OnBackground Color

	Border  Color
	Divider Color
	Overlay Color

	TextPrimary   Color
	TextSecondary Color
	TextTertiary  Color
	TextDisabled  Color
}

// IsDark reports whether the background reads as dark.
func (p Palette) IsDark() bool {
	return p.Background.Luminance() < 0.5
}

// Tokens is the complete set of values a render pass styles from.
type Tokens struct {
	Name   string
	Tone   Tone
	Colors Palette

	GlassOpacity float32
	BlurRadius   float32
	Radius       float32
	ShadowColor  Color
	ShadowOffset [2]float32
	ShadowBlur   float32
	// SpacingUnit is the base step for consistent spacing.
	SpacingUnit float32
	// Scaling multiplies every spacing and padding value.
	Scaling float32
}

// WithScaling returns a copy of t with the given scaling factor.
func (t Tokens) WithScaling(scaling float32) Tokens {
	t.Scaling = scaling
	return t
}

type metrics struct {
	glassOpacity, blur, radius, shadowBlur, spacing float32
}

type preset struct {
	metrics metrics
	light   Palette
	dark    Palette
}

var presets = map[string]preset{
	"mono": {
		metrics: metrics{0.9, 0, 8, 8, 8},
		light:   monoLight(),
		dark:    monoDark(),
	},
	"peak": {
		metrics: metrics{0.6, 20, 16, 20, 12},
		light:   peakLight(),
		dark:    peakDark(),
	},
}

// DefaultName is the theme used when none is configured.
const DefaultName = "mono"

// Names lists the available theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds tokens for a named theme and tone.
func New(name string, tone Tone) (Tokens, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}
	p, ok := presets[key]
	if !ok {
		return Tokens{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	palette := p.light
	if tone == ToneDark {
		palette = p.dark
	} else {
		tone = ToneLight
	}

	shadow := RGBAlpha(0, 0, 0, 0.15)
	if palette.IsDark() {
		shadow = RGBAlpha(0, 0, 0, 0.5)
	}

	return Tokens{
		Name:         key,
		Tone:         tone,
		Colors:       palette,
		GlassOpacity: p.metrics.glassOpacity,
		BlurRadius:   p.metrics.blur,
		Radius:       p.metrics.radius,
		ShadowColor:  shadow,
		ShadowOffset: [2]float32{0, 4},
		ShadowBlur:   p.metrics.shadowBlur,
		SpacingUnit:  p.metrics.spacing,
		Scaling:      1,
	}, nil
}

// Default returns the light mono tokens.
func Default() Tokens {
	t, _ := New(DefaultName, ToneLight)
	return t
}

// DefaultDark returns the dark mono tokens.
func DefaultDark() Tokens {
	t, _ := New(DefaultName, ToneDark)
	return t
}

func monoLight() Palette {
	return Palette{
		Primary:            Black,
		OnPrimary:          White,
		PrimaryContainer:   RGB(240, 240, 240),
		OnPrimaryContainer: Black,

		Secondary:            RGB(60, 60, 60),
		OnSecondary:          White,
		SecondaryContainer:   RGB(245, 245, 245),
		OnSecondaryContainer: Black,

		Accent:   Black,
		OnAccent: White,

		Success: RGB(34, 197, 94),
		Warning: RGB(100, 100, 100),
		Danger:  RGB(150, 0, 0),
		Info:    Black,

		Surface:          White,
		OnSurface:        Black,
		SurfaceVariant:   RGB(248, 248, 248),
		OnSurfaceVariant: RGB(60, 60, 60),

		Background:   White,
		OnBackground: Black,

		Border:  RGBAlpha(0, 0, 0, 0.15),
		Divider: RGBAlpha(0, 0, 0, 0.1),
		Overlay: RGBAlpha(0, 0, 0, 0.5),

		TextPrimary:   Black,
		TextSecondary: RGB(80, 80, 80),
		TextTertiary:  RGB(140, 140, 140),
		TextDisabled:  RGB(180, 180, 180),
	}
}

func monoDark() Palette {
	return Palette{
		Primary:            White,
		OnPrimary:          Black,
		PrimaryContainer:   RGB(40, 40, 40),
		OnPrimaryContainer: White,

		Secondary:            RGB(180, 180, 180),
		OnSecondary:          Black,
		SecondaryContainer:   RGB(30, 30, 30),
		OnSecondaryContainer: White,

		Accent:   White,
		OnAccent: Black,

		Success: RGB(34, 197, 94),
		Warning: RGB(150, 150, 150),
		Danger:  RGB(255, 100, 100),
		Info:    White,

		Surface:          RGB(15, 15, 15),
		OnSurface:        White,
		SurfaceVariant:   RGB(25, 25, 25),
		OnSurfaceVariant: RGB(180, 180, 180),

		Background:   Black,
		OnBackground: White,

		Border:  RGBAlpha(255, 255, 255, 0.15),
		Divider: RGBAlpha(255, 255, 255, 0.1),
		Overlay: RGBAlpha(0, 0, 0, 0.7),

		TextPrimary:   White,
		TextSecondary: RGB(180, 180, 180),
		TextTertiary:  RGB(120, 120, 120),
		TextDisabled:  RGB(80, 80, 80),
	}
}

// Warm beige and stone.
func peakLight() Palette {
	return Palette{
		Primary:            RGB(180, 140, 100),
		OnPrimary:          White,
		PrimaryContainer:   RGB(245, 240, 230),
		OnPrimaryContainer: RGB(90, 70, 50),

		Secondary:            RGB(140, 130, 120),
		OnSecondary:          White,
		SecondaryContainer:   RGB(235, 230, 225),
		OnSecondaryContainer: RGB(60, 55, 50),

		Accent:   RGB(45, 60, 110),
		OnAccent: White,

		Success: RGB(100, 160, 100),
		Warning: RGB(220, 180, 80),
		Danger:  RGB(200, 100, 100),
		Info:    RGB(100, 150, 200),

		Surface:          RGB(252, 250, 245),
		OnSurface:        RGB(60, 55, 50),
		SurfaceVariant:   RGB(245, 240, 230),
		OnSurfaceVariant: RGB(100, 95, 90),

		Background:   RGB(250, 248, 242),
		OnBackground: RGB(60, 55, 50),

		Border:  RGBAlpha(160, 140, 120, 0.16),
		Divider: RGBAlpha(160, 140, 120, 0.2),
		Overlay: RGBAlpha(60, 55, 50, 0.1),

		TextPrimary:   RGB(40, 35, 30),
		TextSecondary: RGB(70, 65, 60),
		TextTertiary:  RGBAlpha(60, 55, 50, 0.5),
		TextDisabled:  RGBAlpha(60, 55, 50, 0.3),
	}
}

func peakDark() Palette {
	return Palette{
		Primary:            RGB(180, 160, 140),
		OnPrimary:          Black,
		PrimaryContainer:   RGB(60, 55, 50),
		OnPrimaryContainer: RGB(230, 220, 210),

		Secondary:            RGB(120, 115, 110),
		OnSecondary:          White,
		SecondaryContainer:   RGB(50, 48, 45),
		OnSecondaryContainer: RGB(200, 195, 190),

		Accent:   RGB(210, 150, 100),
		OnAccent: Black,

		Success: RGB(120, 180, 120),
		Warning: RGB(220, 200, 120),
		Danger:  RGB(220, 120, 120),
		Info:    RGB(120, 160, 200),

		Surface:          RGB(35, 33, 30),
		OnSurface:        RGB(235, 230, 225),
		SurfaceVariant:   RGB(45, 43, 40),
		OnSurfaceVariant: RGB(200, 195, 190),

		Background:   RGB(25, 23, 20),
		OnBackground: RGB(235, 230, 225),

		Border:  RGBAlpha(200, 190, 180, 0.12),
		Divider: RGBAlpha(200, 190, 180, 0.06),
		Overlay: RGBAlpha(0, 0, 0, 0.6),

		TextPrimary:   RGB(235, 230, 225),
		TextSecondary: RGBAlpha(235, 230, 225, 0.7),
		TextTertiary:  RGBAlpha(235, 230, 225, 0.5),
		TextDisabled:  RGBAlpha(235, 230, 225, 0.3),
	}
}
