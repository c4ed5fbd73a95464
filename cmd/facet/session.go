package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/odvcencio/facet/pkg/config"
	"github.com/odvcencio/facet/pkg/logging"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// Points per terminal cell, used when the viewport comes from the terminal.
const (
	cellWidth  = 8
	cellHeight = 16
)

// viewportFlags are the flags shared by every subcommand. Zero values defer
// to the configuration.
type viewportFlags struct {
	configPath string
	width      float64
	height     float64
	device     string
	theme      string
	tone       string
	scaling    float64
	focus      string
}

func (f *viewportFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Path to a facet.yaml (default: user and project config)")
	fs.Float64Var(&f.width, "width", 0, "Viewport width in points (default: config, or the terminal size)")
	fs.Float64Var(&f.height, "height", 0, "Viewport height in points")
	fs.StringVar(&f.device, "device", "", "Device class: desktop, mobile or tv")
	fs.StringVar(&f.theme, "theme", "", "Theme name ("+strings.Join(theme.Names(), ", ")+")")
	fs.StringVar(&f.tone, "tone", "", "Theme tone: light or dark")
	fs.Float64Var(&f.scaling, "scaling", 0, "Scaling factor applied to every dimension")
	fs.StringVar(&f.focus, "focus", "", "ID of the focused element")
}

func (f *viewportFlags) loadConfig() (*config.Config, error) {
	if f.configPath != "" {
		return config.LoadFromPath(f.configPath)
	}
	return config.Load()
}

// apply overlays the flags on cfg and validates the result.
func (f *viewportFlags) apply(cfg *config.Config, fromTerminal bool) error {
	if f.width > 0 {
		cfg.Viewport.Width = float32(f.width)
	} else if fromTerminal {
		if w, h, ok := terminalSize(); ok {
			cfg.Viewport.Width, cfg.Viewport.Height = w, h
		}
	}
	if f.height > 0 {
		cfg.Viewport.Height = float32(f.height)
	}
	if f.device != "" {
		cfg.Viewport.Device = f.device
	}
	if f.theme != "" {
		cfg.Theme.Name = f.theme
	}
	if f.tone != "" {
		cfg.Theme.Tone = f.tone
	}
	if f.scaling > 0 {
		cfg.Theme.Scaling = float32(f.scaling)
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}
	return nil
}

// terminalSize converts the size of the controlling terminal to points.
func terminalSize() (width, height float32, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return float32(cols * cellWidth), float32(rows * cellHeight), true
}

// session is the resolved state one command runs with.
type session struct {
	cfg *config.Config
	ctx *view.Context
	log *logging.Logger
}

func newSession(cfg *config.Config, focus string) (*session, error) {
	ctx, err := cfg.Context()
	if err != nil {
		return nil, usageError(err)
	}
	if focus != "" {
		ctx = ctx.WithFocus(focus)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	log = log.With(logging.ComponentCLI).WithSession(ctx.SessionID)
	log.Debug("session ready",
		zap.String("device", ctx.Device.String()),
		zap.Float32("width", ctx.Size.Width),
		zap.Float32("height", ctx.Size.Height),
		zap.String("theme", ctx.Theme.Name),
	)
	return &session{cfg: cfg, ctx: ctx, log: log}, nil
}

// parseArgs parses args into fs and rejects positional arguments.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}
	if fs.NArg() > 0 {
		return usageError(fmt.Errorf("unexpected arguments: %v", fs.Args()))
	}
	return nil
}

// session loads the configuration, overlays the flags and builds a session.
// fromTerminal sizes the viewport from the controlling terminal when no
// width was given.
func (f *viewportFlags) session(fromTerminal bool) (*session, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	return f.sessionFor(cfg, fromTerminal)
}

func (f *viewportFlags) sessionFor(cfg *config.Config, fromTerminal bool) (*session, error) {
	if err := f.apply(cfg, fromTerminal); err != nil {
		return nil, err
	}
	return newSession(cfg, f.focus)
}

func (s *session) close() {
	_ = s.log.Sync()
}
