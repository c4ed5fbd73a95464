// Package config loads facet settings from YAML files and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	facetErrors "github.com/odvcencio/facet/pkg/errors"
	"github.com/odvcencio/facet/pkg/encoding/toon"
	"github.com/odvcencio/facet/pkg/logging"
	"github.com/odvcencio/facet/pkg/ui/imagecache"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// FileName is the project-local config file.
const FileName = "facet.yaml"

// Config represents the complete facet configuration
type Config struct {
	Theme     ThemeConfig     `yaml:"theme"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Images    ImagesConfig    `yaml:"images"`
	Logging   logging.Config  `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Export    ExportConfig    `yaml:"export"`
}

// ThemeConfig selects design tokens.
type ThemeConfig struct {
	Name    string  `yaml:"name"`
	Tone    string  `yaml:"tone"`
	Scaling float32 `yaml:"scaling"`
}

// ViewportConfig describes the surface a render pass targets.
type ViewportConfig struct {
	Device       string  `yaml:"device"`
	Width        float32 `yaml:"width"`
	Height       float32 `yaml:"height"`
	AutoSafeArea bool    `yaml:"auto_safe_area"`
}

// TerminalConfig controls the ANSI backend.
type TerminalConfig struct {
	ColorProfile string `yaml:"color_profile"`
}

// ImagesConfig controls the image loader.
type ImagesConfig struct {
	CacheDir    string        `yaml:"cache_dir"`
	AssetRoot   string        `yaml:"asset_root"`
	FetchRate   float64       `yaml:"fetch_rate"`
	FetchBurst  int           `yaml:"fetch_burst"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// TelemetryConfig toggles metrics and tracing.
type TelemetryConfig struct {
	Metrics bool `yaml:"metrics"`
	Tracing bool `yaml:"tracing"`
}

// ExportConfig selects the semantic export encoding.
type ExportConfig struct {
	Format string `yaml:"format"`
}

// Terminal color profiles.
const (
	ProfileASCII     = "ascii"
	ProfileANSI      = "ansi"
	ProfileANSI256   = "ansi256"
	ProfileTrueColor = "truecolor"
)

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name:    theme.DefaultName,
			Tone:    string(theme.ToneLight),
			Scaling: 1,
		},
		Viewport: ViewportConfig{
			Device:       view.Desktop.String(),
			Width:        1280,
			Height:       800,
			AutoSafeArea: true,
		},
		Terminal: TerminalConfig{ColorProfile: ProfileANSI},
		Images: ImagesConfig{
			FetchRate:   4,
			FetchBurst:  2,
			HTTPTimeout: 15 * time.Second,
		},
		Logging: logging.Config{
			Level:    logging.LevelOff,
			Encoding: "console",
		},
		Export: ExportConfig{Format: string(toon.FormatJSON)},
	}
}

// Load loads configuration from default locations with proper precedence:
// defaults, then the user config, then ./facet.yaml, then the environment.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := userConfigDir(); dir != "" {
		userConfigPath := filepath.Join(dir, "facet", "config.yaml")
		if err := loadAndMerge(cfg, userConfigPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := loadAndMerge(cfg, FileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadAndMerge(cfg, path); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func userConfigDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config")
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("FACET_THEME")); v != "" {
		cfg.Theme.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("FACET_SCALING")); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Theme.Scaling = float32(f)
		}
	}
	if v := strings.TrimSpace(os.Getenv(logging.LevelEnvVar)); v != "" {
		cfg.Logging.Level = logging.Level(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("FACET_CACHE_DIR")); v != "" {
		cfg.Images.CacheDir = v
	}
	if val, ok := envBool("FACET_METRICS"); ok {
		cfg.Telemetry.Metrics = val
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func invalid(field string, value any, msg string) *facetErrors.Error {
	return facetErrors.New(facetErrors.ErrCodeConfigInvalid, msg).
		WithContext("field", field).
		WithContext("value", value)
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if _, err := theme.New(c.Theme.Name, theme.ToneLight); err != nil {
		return invalid("theme.name", c.Theme.Name, err.Error()).
			WithRemediation("available themes: " + strings.Join(theme.Names(), ", "))
	}
	switch theme.Tone(strings.ToLower(c.Theme.Tone)) {
	case "", theme.ToneLight, theme.ToneDark:
	default:
		return invalid("theme.tone", c.Theme.Tone, "tone must be light or dark")
	}
	if c.Theme.Scaling <= 0 || c.Theme.Scaling > 8 {
		return invalid("theme.scaling", c.Theme.Scaling, "scaling must be in (0, 8]")
	}

	if _, err := view.ParseDevice(c.Viewport.Device); err != nil {
		return invalid("viewport.device", c.Viewport.Device, err.Error())
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return invalid("viewport", [2]float32{c.Viewport.Width, c.Viewport.Height}, "viewport size must be positive")
	}

	switch strings.ToLower(c.Terminal.ColorProfile) {
	case "", ProfileASCII, ProfileANSI, ProfileANSI256, ProfileTrueColor:
	default:
		return invalid("terminal.color_profile", c.Terminal.ColorProfile, "color profile must be ascii, ansi, ansi256 or truecolor")
	}

	if c.Images.FetchRate < 0 {
		return invalid("images.fetch_rate", c.Images.FetchRate, "fetch rate cannot be negative")
	}
	if c.Images.FetchBurst < 0 {
		return invalid("images.fetch_burst", c.Images.FetchBurst, "fetch burst cannot be negative")
	}
	if c.Images.HTTPTimeout < 0 {
		return invalid("images.http_timeout", c.Images.HTTPTimeout, "http timeout cannot be negative")
	}

	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return invalid("logging.level", c.Logging.Level, "log level must be debug, info, warn, error or off")
	}
	switch c.Logging.Encoding {
	case "", "console", "json":
	default:
		return invalid("logging.encoding", c.Logging.Encoding, "log encoding must be console or json")
	}

	if _, err := toon.ParseFormat(c.Export.Format); err != nil {
		return invalid("export.format", c.Export.Format, err.Error())
	}
	return nil
}

// Tokens resolves the configured theme.
func (c *Config) Tokens() (theme.Tokens, error) {
	tokens, err := theme.New(c.Theme.Name, theme.Tone(strings.ToLower(c.Theme.Tone)))
	if err != nil {
		return theme.Tokens{}, err
	}
	return tokens.WithScaling(c.Theme.Scaling), nil
}

// Context builds the render context the configuration describes.
func (c *Config) Context() (*view.Context, error) {
	tokens, err := c.Tokens()
	if err != nil {
		return nil, invalid("theme", c.Theme.Name, err.Error())
	}
	device, err := view.ParseDevice(c.Viewport.Device)
	if err != nil {
		return nil, invalid("viewport.device", c.Viewport.Device, err.Error())
	}
	ctx := view.NewContext(tokens, device, view.Size{Width: c.Viewport.Width, Height: c.Viewport.Height})
	if !c.Viewport.AutoSafeArea {
		ctx.SafeArea = view.Padding{}
	}
	return ctx, nil
}

// ExportFormat returns the parsed export encoding.
func (c *Config) ExportFormat() toon.Format {
	f, err := toon.ParseFormat(c.Export.Format)
	if err != nil {
		return toon.FormatJSON
	}
	return f
}

// ResolvedCacheDir returns the image disk cache directory, defaulting to the user
// cache directory.
func (c ImagesConfig) ResolvedCacheDir() string {
	if dir := expandHomeDir(c.CacheDir); dir != "" {
		return dir
	}
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		return ""
	}
	return filepath.Join(base, "facet", "images")
}

// FetcherConfig maps the images section onto the loader chain settings.
func (c *Config) FetcherConfig(log *logging.Logger) imagecache.FetcherConfig {
	return imagecache.FetcherConfig{
		CacheDir:    c.Images.ResolvedCacheDir(),
		AssetRoot:   expandHomeDir(c.Images.AssetRoot),
		HTTPTimeout: c.Images.HTTPTimeout,
		RatePerSec:  c.Images.FetchRate,
		Burst:       c.Images.FetchBurst,
		Log:         log,
	}
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
