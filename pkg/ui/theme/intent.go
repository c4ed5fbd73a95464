package theme

// Intent is the semantic purpose of a control, mapped to a palette color.
type Intent int

const (
	IntentPrimary Intent = iota
	IntentSecondary
	IntentAccent
	IntentSuccess
	IntentWarning
	IntentDanger
	IntentInfo
	IntentNeutral
)

var intentNames = [...]string{"Primary", "Secondary", "Accent", "Success", "Warning", "Danger", "Info", "Neutral"}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "Primary"
	}
	return intentNames[i]
}

// Variant is the visual treatment of a control.
type Variant int

const (
	// VariantSolid fills the background with the intent color.
	VariantSolid Variant = iota
	// VariantSoft uses a faint intent background and intent text.
	VariantSoft
	// VariantOutline draws only an intent border.
	VariantOutline
	// VariantGhost has no background until hovered.
	VariantGhost
	// VariantCompact has no background and minimal spacing.
	VariantCompact
	// VariantPlain is unstyled and click-only.
	VariantPlain
)

var variantNames = [...]string{"Solid", "Soft", "Outline", "Ghost", "Compact", "Plain"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "Solid"
	}
	return variantNames[v]
}

// IntentColor returns the palette color for an intent.
func (p Palette) IntentColor(i Intent) Color {
	switch i {
	case IntentSecondary:
		return p.Secondary
	case IntentAccent:
		return p.Accent
	case IntentSuccess:
		return p.Success
	case IntentWarning:
		return p.Warning
	case IntentDanger:
		return p.Danger
	case IntentInfo:
		return p.Info
	case IntentNeutral:
		return p.Surface
	default:
		return p.Primary
	}
}

// OnIntentColor returns the text color drawn on top of an intent fill.
func (p Palette) OnIntentColor(i Intent) Color {
	switch i {
	case IntentAccent:
		return p.OnAccent
	case IntentSecondary:
		return p.OnSecondary
	default:
		return p.OnPrimary
	}
}
