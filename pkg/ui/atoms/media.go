package atoms

import (
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// DefaultIconSize is the edge length of an icon without an explicit size.
const DefaultIconSize float32 = 24

type iconTone int

const (
	toneDefault iconTone = iota
	tonePrimary
	toneSecondary
)

// Icon draws a named icon, resolved by the backend through its fallback
// chain.
type Icon struct {
	name  string
	size  float32
	color *theme.Color
	tone  iconTone
}

func NewIcon(name string) *Icon { return &Icon{name: name, size: DefaultIconSize} }

func (i *Icon) Size(size float32) *Icon   { i.size = size; return i }
func (i *Icon) Color(c theme.Color) *Icon { i.color = &c; return i }

// Primary tints the icon with the theme's primary color at render time.
func (i *Icon) Primary() *Icon { i.tone = tonePrimary; return i }

// Secondary tints the icon with the theme's secondary text color.
func (i *Icon) Secondary() *Icon { i.tone = toneSecondary; return i }

func (i *Icon) Render(ctx *view.Context) view.Element {
	color := i.color
	switch i.tone {
	case tonePrimary:
		color = view.ColorPtr(ctx.Theme.Colors.Primary)
	case toneSecondary:
		color = view.ColorPtr(ctx.Theme.Colors.TextSecondary)
	}
	return view.Icon{Name: i.name, Size: ctx.Scale(i.size), Color: color}
}

func (i *Icon) Describe(*view.Context) semantic.Node {
	return semantic.New("icon").WithLabel(i.name)
}

// media carries the frame shared by images, videos and web views.
type media struct {
	width, height view.Length
	radius        float32
}

func (m media) resolve(ctx *view.Context) (w, h view.Length, r view.Radius) {
	return ctx.ScaleLength(m.width), ctx.ScaleLength(m.height), view.UniformRadius(ctx.Scale(m.radius))
}

// Image shows the picture at path. Remote paths are loaded by the
// backend's image cache without blocking the render.
type Image struct {
	path string
	media
}

func NewImage(path string) *Image { return &Image{path: path} }

func (i *Image) Width(w view.Length) *Image  { i.width = w; return i }
func (i *Image) Height(h view.Length) *Image { i.height = h; return i }
func (i *Image) Radius(r float32) *Image     { i.radius = r; return i }

func (i *Image) Render(ctx *view.Context) view.Element {
	w, h, r := i.resolve(ctx)
	return view.Image{Path: i.path, Width: w, Height: h, Radius: r}
}

func (i *Image) Describe(*view.Context) semantic.Node {
	return semantic.New("image").WithLabel(i.path).WithContent("Image: " + i.path)
}

type Video struct {
	path string
	media
}

func NewVideo(path string) *Video { return &Video{path: path} }

func (v *Video) Width(w view.Length) *Video  { v.width = w; return v }
func (v *Video) Height(h view.Length) *Video { v.height = h; return v }
func (v *Video) Radius(r float32) *Video     { v.radius = r; return v }

func (v *Video) Render(ctx *view.Context) view.Element {
	w, h, r := v.resolve(ctx)
	return view.Video{Path: v.path, Width: w, Height: h, Radius: r}
}

func (v *Video) Describe(*view.Context) semantic.Node {
	return semantic.New("video").WithLabel(v.path)
}

// WebView embeds a page. It fills its container unless sized.
type WebView struct {
	url string
	media
}

func NewWebView(url string) *WebView {
	return &WebView{url: url, media: media{width: view.Fill, height: view.Fill}}
}

func (wv *WebView) Width(w view.Length) *WebView  { wv.width = w; return wv }
func (wv *WebView) Height(h view.Length) *WebView { wv.height = h; return wv }
func (wv *WebView) Radius(r float32) *WebView     { wv.radius = r; return wv }

func (wv *WebView) Render(ctx *view.Context) view.Element {
	w, h, r := wv.resolve(ctx)
	return view.WebView{URL: wv.url, Width: w, Height: h, Radius: r}
}

func (wv *WebView) Describe(*view.Context) semantic.Node {
	return semantic.New("web_view").WithLabel(wv.url)
}
