// Package icons resolves icon names to SVG data through an ordered chain of
// sources. Resolution never fails: when every source misses, the caller
// still receives a path it can hand to an asset loader.
package icons

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	cicons "cogentcore.org/core/icons"
	"go.uber.org/zap"

	"github.com/odvcencio/facet/pkg/logging"
	"github.com/odvcencio/facet/pkg/ui/theme"
)

//go:embed assets/system
var systemAssets embed.FS

// Source identifies which link of the chain produced an icon.
type Source int

const (
	SourceVector Source = iota
	SourceSystem
	SourceFallback
	SourcePath
)

func (s Source) String() string {
	switch s {
	case SourceVector:
		return "vector"
	case SourceSystem:
		return "system"
	case SourceFallback:
		return "fallback"
	default:
		return "path"
	}
}

// Icon is a resolved icon. SVG is empty only when Source is SourcePath.
type Icon struct {
	Name   string
	SVG    string
	Path   string
	Source Source
}

// Found reports whether inline SVG data was produced.
func (i Icon) Found() bool { return i.SVG != "" }

// vectors maps names to the embedded Material Symbols set.
var vectors = map[string]cicons.Icon{
	"settings": cicons.Settings,
	"search":   cicons.Search,
	"home":     cicons.Home,
	"close":    cicons.Close,
	"add":      cicons.Add,
	"delete":   cicons.Delete,
	"edit":     cicons.Edit,
	"info":     cicons.Info,
	"warning":  cicons.Warning,
	"error":    cicons.Error,
	"check":    cicons.Check,
	"menu":     cicons.Menu,
	"mail":     cicons.Mail,
	"image":    cicons.Image,
	"download": cicons.Download,
	"refresh":  cicons.Refresh,
	"person":   cicons.Person,
}

var aliases = map[string]string{
	"sidebar": "apps",
	"grid":    "apps",
	"layers":  "folder",
	"box":     "folder",
	"cloud":   "wifi_full",
	"wifi":    "wifi_full",
	"type":    "document",
}

// PathPrefix is where the path guess expects system icons on disk.
const PathPrefix = "assets/icons/system/ui"

type cacheKey struct {
	name string
	hex  string
}

// Resolver walks the icon chain. It is safe for concurrent use.
// By default a miss ends in the generated placeholder, so the raw path guess
// under PathPrefix is only returned by resolvers built WithoutFallback.
type Resolver struct {
	vectors  map[string]cicons.Icon
	assets   fs.FS
	fallback bool
	log      *logging.Logger

	mu    sync.RWMutex
	cache map[cacheKey]Icon
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger logs each chain miss at debug level.
func WithLogger(l *logging.Logger) Option {
	return func(r *Resolver) { r.log = logging.OrNop(l).With(logging.ComponentIcons) }
}

// WithAssets replaces the bundled system icon directory. Files are looked
// up as ui/<name>.svg.
func WithAssets(fsys fs.FS) Option {
	return func(r *Resolver) { r.assets = fsys }
}

// WithVectors replaces the embedded vector set.
func WithVectors(set map[string]cicons.Icon) Option {
	return func(r *Resolver) { r.vectors = set }
}

// WithoutFallback disables the generated placeholder, as hosts that load
// assets by path prefer the path guess.
func WithoutFallback() Option {
	return func(r *Resolver) { r.fallback = false }
}

// NewResolver builds a resolver over the embedded sources.
func NewResolver(opts ...Option) *Resolver {
	sub, err := fs.Sub(systemAssets, "assets/system")
	if err != nil {
		panic(fmt.Sprintf("icons: embedded assets: %v", err))
	}
	r := &Resolver{
		vectors:  vectors,
		assets:   sub,
		fallback: true,
		log:      logging.Nop(),
		cache:    make(map[cacheKey]Icon),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = sync.OnceValue(func() *Resolver { return NewResolver() })

// Default returns the shared resolver.
func Default() *Resolver { return defaultResolver() }

// Resolve returns the first source that yields data for name, recolored to
// color.
func (r *Resolver) Resolve(name string, color theme.Color) Icon {
	key := cacheKey{name: name, hex: color.Hex()}
	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	icon := r.resolve(name, key.hex)
	r.mu.Lock()
	r.cache[key] = icon
	r.mu.Unlock()
	return icon
}

func (r *Resolver) resolve(name, hex string) Icon {
	if v, ok := r.vectors[name]; ok && v.IsSet() {
		return Icon{Name: name, SVG: tintVector(string(v), hex), Source: SourceVector}
	}
	r.log.Debug("icon source miss", zap.String("icon", name), zap.String("source", SourceVector.String()))

	asset := name
	if alias, ok := aliases[name]; ok {
		asset = alias
	}
	if data, err := fs.ReadFile(r.assets, path.Join("ui", asset+".svg")); err == nil {
		return Icon{Name: name, SVG: tint(string(data), hex), Source: SourceSystem}
	}
	r.log.Debug("icon source miss", zap.String("icon", name), zap.String("source", SourceSystem.String()))

	if r.fallback {
		return Icon{Name: name, SVG: Placeholder(hex), Source: SourceFallback}
	}
	return Icon{Name: name, Path: path.Join(PathPrefix, name+".svg"), Source: SourcePath}
}

// Placeholder is the generated stand-in drawn when no icon data exists.
func Placeholder(hex string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><circle cx="12" cy="12" r="4" fill="%s" /></svg>`, hex)
}

func tintReplacer(hex string) *strings.Replacer {
	return strings.NewReplacer(
		"currentColor", hex,
		`stroke="white"`, `stroke="`+hex+`"`,
		`stroke="black"`, `stroke="`+hex+`"`,
		`fill="white"`, `fill="`+hex+`"`,
		`fill="black"`, `fill="`+hex+`"`,
		`fill="#000000"`, `fill="`+hex+`"`,
	)
}

func tint(svg, hex string) string {
	return tintReplacer(hex).Replace(svg)
}

// tintVector colors the vector set, whose glyphs inherit fill from the root.
func tintVector(svg, hex string) string {
	if strings.Contains(svg, "currentColor") {
		return tint(svg, hex)
	}
	return strings.Replace(svg, "<svg ", `<svg fill="`+hex+`" `, 1)
}

// SystemNames lists the bundled system icons.
func (r *Resolver) SystemNames() []string {
	matches, err := fs.Glob(r.assets, "ui/*.svg")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".svg"))
	}
	sort.Strings(names)
	return names
}
