package view

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/odvcencio/facet/pkg/ui/theme"
)

// DeviceClass is the broad hardware category a render targets.
type DeviceClass int

const (
	Desktop DeviceClass = iota
	Mobile
	TV
)

func (d DeviceClass) String() string {
	switch d {
	case Mobile:
		return "mobile"
	case TV:
		return "tv"
	default:
		return "desktop"
	}
}

// ParseDevice maps a name to a DeviceClass.
func ParseDevice(name string) (DeviceClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "desktop":
		return Desktop, nil
	case "mobile":
		return Mobile, nil
	case "tv":
		return TV, nil
	default:
		return Desktop, fmt.Errorf("unknown device class %q", name)
	}
}

// Size is a viewport extent in logical pixels.
type Size struct {
	Width  float32
	Height float32
}

// Context is the ambient state of one render pass. A Context is never
// mutated once rendering starts; the With* methods return adjusted copies
// for sub-trees.
type Context struct {
	Theme     theme.Tokens
	Device    DeviceClass
	Size      Size
	SafeArea  Padding
	FocusedID string
	// Foreground overrides the text color of every descendant when set.
	Foreground   *theme.Color
	Billboarding bool
	InsideScroll bool
	Tick         uint64
	SessionID    string
}

// NewContext creates a Context with the safe area derived from the device.
func NewContext(tokens theme.Tokens, device DeviceClass, size Size) *Context {
	return &Context{
		Theme:     tokens,
		Device:    device,
		Size:      size,
		SafeArea:  AutoSafeArea(device, size),
		SessionID: uuid.NewString(),
	}
}

// DefaultContext is a desktop context at 1280x800 with the default theme.
func DefaultContext() *Context {
	return NewContext(theme.Default(), Desktop, Size{Width: 1280, Height: 800})
}

// AutoSafeArea returns the standard insets for a device class.
func AutoSafeArea(device DeviceClass, size Size) Padding {
	switch device {
	case Desktop:
		return Padding{Top: 12, Bottom: 12}
	case Mobile:
		top := float32(24)
		if size.Width < 900 {
			top = 36
		}
		return Padding{Top: top, Bottom: 24}
	default:
		return Padding{}
	}
}

// IsFocused reports whether id is the focused element. An empty id is never
// focused.
func (c *Context) IsFocused(id string) bool {
	return id != "" && c.FocusedID == id
}

func (c *Context) IsMobile() bool { return c.Device == Mobile }
func (c *Context) IsWide() bool   { return c.Size.Width > 1200 }
func (c *Context) IsSlim() bool   { return c.Size.Width < 900 }

// Scaling returns the theme scaling factor, treating zero as 1.
func (c *Context) Scaling() float32 {
	if c.Theme.Scaling == 0 {
		return 1
	}
	return c.Theme.Scaling
}

// Scale multiplies v by the theme scaling factor.
func (c *Context) Scale(v float32) float32 {
	return v * c.Scaling()
}

// ScalePadding scales every side of p.
func (c *Context) ScalePadding(p Padding) Padding {
	return p.Scale(c.Scaling())
}

// ScaleLength scales fixed lengths; fill and shrink pass through.
func (c *Context) ScaleLength(l Length) Length {
	if !l.IsFixed() {
		return l
	}
	return Fixed(l.Value() * c.Scaling())
}

func (c *Context) clone() *Context {
	cp := *c
	return &cp
}

func (c *Context) WithFocus(id string) *Context {
	cp := c.clone()
	cp.FocusedID = id
	return cp
}

func (c *Context) WithSafeArea(p Padding) *Context {
	cp := c.clone()
	cp.SafeArea = p
	return cp
}

func (c *Context) WithForeground(col theme.Color) *Context {
	cp := c.clone()
	cp.Foreground = &col
	return cp
}

// WithBillboarding returns a copy whose spatial nodes face the viewer.
func (c *Context) WithBillboarding(active bool) *Context {
	cp := c.clone()
	cp.Billboarding = active
	return cp
}

// WithNestedScroll marks the copy as being inside a scroll region, which
// stops fill heights from growing without bound.
func (c *Context) WithNestedScroll() *Context {
	cp := c.clone()
	cp.InsideScroll = true
	return cp
}

func (c *Context) WithTick(n uint64) *Context {
	cp := c.clone()
	cp.Tick = n
	return cp
}

func (c *Context) WithSize(s Size) *Context {
	cp := c.clone()
	cp.Size = s
	return cp
}

func (c *Context) WithTheme(t theme.Tokens) *Context {
	cp := c.clone()
	cp.Theme = t
	return cp
}
