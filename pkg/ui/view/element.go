package view

import (
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
)

// Message is a value delivered back to the application when the user
// interacts with a primitive. Its concrete type belongs to the application.
type Message = any

// Element is a fully resolved primitive. The set is closed: every element
// type below maps to exactly one Backend method. A nil Element renders as
// an empty Space.
type Element interface {
	isElement()
}

// VStack lays children out top to bottom.
type VStack struct {
	Children []Element
	Spacing  float32
	Padding  Padding
	Width    Length
	Height   Length
	AlignX   Alignment
	AlignY   Alignment
}

// HStack lays children out left to right.
type HStack struct {
	Children []Element
	Spacing  float32
	Padding  Padding
	Width    Length
	Height   Length
	AlignX   Alignment
	AlignY   Alignment
}

// Wrap flows children horizontally, starting a new run when a row is full.
type Wrap struct {
	Children   []Element
	Spacing    float32
	RunSpacing float32
	Padding    Padding
	Width      Length
	Height     Length
	AlignX     Alignment
	AlignY     Alignment
}

// ZStack layers children over each other, later children on top.
type ZStack struct {
	Children  []Element
	Width     Length
	Height    Length
	Alignment Alignment
}

// Grid places children into rows of Columns cells in source order.
type Grid struct {
	Children []Element
	Columns  int
	Spacing  float32
}

type Text struct {
	Content   string
	Size      float32
	Color     *theme.Color
	Bold      bool
	Dim       bool
	Intent    *theme.Intent
	Font      Font
	Width     Length
	Alignment Alignment
}

type RichText struct {
	Spans     []Span
	Size      float32
	Width     Length
	Alignment Alignment
}

type Icon struct {
	Name  string
	Size  float32
	Color *theme.Color
}

type Divider struct{}

type Space struct {
	Width  Length
	Height Length
}

type Circle struct {
	Radius float32
	Color  *theme.Color
}

// Arc is a circle segment between two angles in radians.
type Arc struct {
	Radius     float32
	StartAngle float32
	EndAngle   float32
	Color      *theme.Color
}

type Path struct {
	Points []Point
	Color  *theme.Color
	Width  float32
}

type Capsule struct {
	Width  Length
	Height Length
	Color  *theme.Color
}

type Rectangle struct {
	Width       Length
	Height      Length
	Color       *theme.Color
	Radius      Radius
	BorderWidth float32
	BorderColor *theme.Color
}

// Button wraps Content and emits OnPress when activated. ID is matched
// against Context.FocusedID.
type Button struct {
	ID      string
	Content Element
	OnPress Message
	Variant theme.Variant
	Intent  theme.Intent
	Width   Length
	Height  Length
	Compact bool
}

type SidebarItem struct {
	Title    string
	Icon     string
	Selected bool
	OnPress  Message
}

type TextInput struct {
	ID          string
	Value       string
	Placeholder string
	OnChange    func(string) Message
	OnSubmit    Message
	Font        Font
	Secure      bool
	Variant     theme.Variant
}

type TextEditor struct {
	ID       string
	Content  string
	OnChange func(string) Message
	Font     Font
	Height   Length
}

type Slider struct {
	Min      float32
	Max      float32
	Value    float32
	OnChange func(float32) Message
}

type Toggle struct {
	Label    string
	Active   bool
	OnToggle func(bool) Message
}

type Image struct {
	Path   string
	Width  Length
	Height Length
	Radius Radius
}

type Video struct {
	Path   string
	Width  Length
	Height Length
	Radius Radius
}

type WebView struct {
	URL    string
	Width  Length
	Height Length
	Radius Radius
}

type Container struct {
	Content     Element
	Padding     Padding
	Width       Length
	Height      Length
	Background  *theme.Color
	Radius      Radius
	BorderWidth float32
	BorderColor *theme.Color
	Shadow      *Shadow
	AlignX      Alignment
	AlignY      Alignment
}

type ScrollView struct {
	Content        Element
	ID             string
	Width          Length
	Height         Length
	ShowIndicators bool
	Direction      ScrollDirection
}

type MouseArea struct {
	Content   Element
	OnMove    func(Point) Message
	OnPress   Message
	OnRelease Message
}

type Tooltip struct {
	Content Element
	Text    string
}

// GlassCard is a translucent blurred panel.
type GlassCard struct {
	Content Element
	Padding Padding
	Width   Length
	Height  Length
}

type Section struct {
	Title   string
	Content Element
	Width   Length
	Height  Length
}

// SpatialModifier offsets the transform of its content. Position and
// rotation add, scale multiplies.
type SpatialModifier struct {
	Content  Element
	Position Vec3
	Scale    Vec3
	Rotation Vec3
}

// Semantic embeds a prebuilt semantic node.
type Semantic struct {
	Node semantic.Node
}

// Scope renders Content under a derived Context instead of the current one.
type Scope struct {
	Context *Context
	Content Element
}

func (VStack) isElement()          {}
func (HStack) isElement()          {}
func (Wrap) isElement()            {}
func (ZStack) isElement()          {}
func (Grid) isElement()            {}
func (Text) isElement()            {}
func (RichText) isElement()        {}
func (Icon) isElement()            {}
func (Divider) isElement()         {}
func (Space) isElement()           {}
func (Circle) isElement()          {}
func (Arc) isElement()             {}
func (Path) isElement()            {}
func (Capsule) isElement()         {}
func (Rectangle) isElement()       {}
func (Button) isElement()          {}
func (SidebarItem) isElement()     {}
func (TextInput) isElement()       {}
func (TextEditor) isElement()      {}
func (Slider) isElement()          {}
func (Toggle) isElement()          {}
func (Image) isElement()           {}
func (Video) isElement()           {}
func (WebView) isElement()         {}
func (Container) isElement()       {}
func (ScrollView) isElement()      {}
func (MouseArea) isElement()       {}
func (Tooltip) isElement()         {}
func (GlassCard) isElement()       {}
func (Section) isElement()         {}
func (SpatialModifier) isElement() {}
func (Semantic) isElement()        {}
func (Scope) isElement()           {}
