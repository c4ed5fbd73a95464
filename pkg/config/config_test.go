package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/odvcencio/facet/pkg/config"
	facetErrors "github.com/odvcencio/facet/pkg/errors"
	"github.com/odvcencio/facet/pkg/encoding/toon"
	"github.com/odvcencio/facet/pkg/ui/view"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FACET_THEME", "FACET_SCALING", "FACET_LOG_LEVEL", "FACET_CACHE_DIR", "FACET_METRICS"} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Theme.Scaling != 1 {
		t.Fatalf("expected scaling 1, got %v", cfg.Theme.Scaling)
	}
	if cfg.ExportFormat() != toon.FormatJSON {
		t.Fatalf("expected json export, got %s", cfg.ExportFormat())
	}
}

func TestLoadHierarchy(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	project := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	userCfgDir := filepath.Join(xdg, "facet")
	if err := os.MkdirAll(userCfgDir, 0o755); err != nil {
		t.Fatalf("mkdir user config: %v", err)
	}
	userCfg := `
theme:
  name: peak
  tone: dark
viewport:
  width: 390
`
	if err := os.WriteFile(filepath.Join(userCfgDir, "config.yaml"), []byte(userCfg), 0o644); err != nil {
		t.Fatalf("write user config: %v", err)
	}

	projectCfg := `
theme:
  tone: light
viewport:
  device: mobile
images:
  http_timeout: 3s
`
	if err := os.WriteFile(filepath.Join(project, config.FileName), []byte(projectCfg), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
	t.Chdir(project)
	t.Setenv("FACET_SCALING", "1.5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load returned error: %v", err)
	}

	if cfg.Theme.Name != "peak" {
		t.Fatalf("expected user theme, got %s", cfg.Theme.Name)
	}
	if cfg.Theme.Tone != "light" {
		t.Fatalf("expected project tone override, got %s", cfg.Theme.Tone)
	}
	if cfg.Viewport.Width != 390 || cfg.Viewport.Height != 800 {
		t.Fatalf("expected merged viewport, got %+v", cfg.Viewport)
	}
	if cfg.Images.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Images.HTTPTimeout)
	}
	if cfg.Theme.Scaling != 1.5 {
		t.Fatalf("expected env scaling, got %v", cfg.Theme.Scaling)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("missing files should fall back to defaults: %v", err)
	}
	if cfg.Theme.Name != config.DefaultConfig().Theme.Name {
		t.Fatalf("unexpected theme %s", cfg.Theme.Name)
	}
}

func TestLoadFromPathErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := config.LoadFromPath(filepath.Join(dir, "missing.yaml"))
	if !facetErrors.IsCode(err, facetErrors.ErrCodeConfigLoad) {
		t.Fatalf("expected CONFIG_LOAD, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = config.LoadFromPath(bad)
	if !facetErrors.IsCode(err, facetErrors.ErrCodeConfigParse) {
		t.Fatalf("expected CONFIG_PARSE, got %v", err)
	}

	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("themes:\n  name: mono\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadFromPath(unknown); err == nil {
		t.Fatal("unknown keys should be rejected")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("theme:\n  name: neon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = config.LoadFromPath(invalid)
	if !facetErrors.IsCode(err, facetErrors.ErrCodeConfigInvalid) {
		t.Fatalf("expected CONFIG_INVALID, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"tone", func(c *config.Config) { c.Theme.Tone = "sepia" }},
		{"scaling zero", func(c *config.Config) { c.Theme.Scaling = 0 }},
		{"device", func(c *config.Config) { c.Viewport.Device = "watch" }},
		{"viewport", func(c *config.Config) { c.Viewport.Width = 0 }},
		{"profile", func(c *config.Config) { c.Terminal.ColorProfile = "cga" }},
		{"rate", func(c *config.Config) { c.Images.FetchRate = -1 }},
		{"burst", func(c *config.Config) { c.Images.FetchBurst = -1 }},
		{"timeout", func(c *config.Config) { c.Images.HTTPTimeout = -time.Second }},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"log encoding", func(c *config.Config) { c.Logging.Encoding = "xml" }},
		{"export", func(c *config.Config) { c.Export.Format = "csv" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !facetErrors.IsCode(err, facetErrors.ErrCodeConfigInvalid) {
				t.Fatalf("expected CONFIG_INVALID, got %v", err)
			}
		})
	}
}

func TestContext(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme.Name = "peak"
	cfg.Theme.Tone = "dark"
	cfg.Theme.Scaling = 2
	cfg.Viewport.Device = "mobile"
	cfg.Viewport.Width = 390
	cfg.Viewport.Height = 844

	ctx, err := cfg.Context()
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if ctx.Device != view.Mobile || ctx.Size.Width != 390 {
		t.Fatalf("unexpected viewport %+v", ctx)
	}
	if ctx.Theme.Name != "peak" || ctx.Theme.Scaling != 2 || !ctx.Theme.Colors.IsDark() {
		t.Fatalf("unexpected theme %+v", ctx.Theme)
	}
	if ctx.SafeArea.Top != 36 {
		t.Fatalf("expected mobile safe area, got %+v", ctx.SafeArea)
	}

	cfg.Viewport.AutoSafeArea = false
	ctx, err = cfg.Context()
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if !ctx.SafeArea.IsZero() {
		t.Fatalf("expected no safe area, got %+v", ctx.SafeArea)
	}
}

func TestFetcherConfig(t *testing.T) {
	clearEnv(t)
	cfg := config.DefaultConfig()
	cfg.Images.CacheDir = "/tmp/facet-cache"
	fc := cfg.FetcherConfig(nil)
	if fc.CacheDir != "/tmp/facet-cache" || fc.RatePerSec != 4 || fc.Burst != 2 {
		t.Fatalf("unexpected fetcher config %+v", fc)
	}

	t.Setenv("FACET_CACHE_DIR", "/tmp/env-cache")
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Images.ResolvedCacheDir() != "/tmp/env-cache" {
		t.Fatalf("expected env cache dir, got %s", loaded.Images.ResolvedCacheDir())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	clearEnv(t)
	cfg := config.DefaultConfig()
	cfg.Theme.Name = "peak"
	data, err := config.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "facet.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("load marshalled config: %v\n%s", err, data)
	}
	if loaded.Theme.Name != "peak" || loaded.Images.HTTPTimeout != cfg.Images.HTTPTimeout {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestWatchReloads(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "facet.yaml")
	if err := os.WriteFile(path, []byte("theme:\n  name: mono\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, path, func(cfg *config.Config, err error) {
			if err == nil {
				reloaded <- cfg
			}
		})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-reloaded:
			if cfg.Theme.Name == "peak" {
				cancel()
				if err := <-done; err != nil {
					t.Fatalf("watch returned %v", err)
				}
				return
			}
		case <-tick.C:
			// Rewrite until the watcher is registered and sees the change.
			if err := os.WriteFile(path, []byte("theme:\n  name: peak\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
