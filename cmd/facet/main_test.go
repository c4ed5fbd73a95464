package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/facet/pkg/telemetry"
	"github.com/odvcencio/facet/pkg/ui/backend/spatial"
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// writeConfig isolates a test from the user's config and environment.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	for _, key := range []string{"FACET_THEME", "FACET_SCALING", "FACET_LOG_LEVEL", "FACET_CACHE_DIR", "FACET_METRICS"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	base := "images:\n  cache_dir: " + filepath.Join(dir, "cache") + "\nterminal:\n  color_profile: ascii\n"
	path := filepath.Join(dir, "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(base+body), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(out, "facet "+version))

	code, out, _ = runCLI(t, "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "COMMANDS:")
}

func TestUsageErrors(t *testing.T) {
	path := writeConfig(t, "")

	code, _, errOut := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "USAGE:")

	code, _, errOut = runCLI(t, "paint")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, `unknown command "paint"`)

	code, _, _ = runCLI(t, "render", "-no-such-flag")
	assert.Equal(t, exitUsage, code)

	code, _, errOut = runCLI(t, "render", "-config", path, "-backend", "hologram")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unknown backend")

	code, _, _ = runCLI(t, "render", "-config", path, "-backend", "spatial", "-screen")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "describe", "-config", path, "-theme", "no-such-theme")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "describe", "-config", path, "extra")
	assert.Equal(t, exitUsage, code)
}

func TestInvalidConfigFile(t *testing.T) {
	path := writeConfig(t, "viewport:\n  device: toaster\n")
	code, _, errOut := runCLI(t, "describe", "-config", path)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "Error:")
}

func TestDescribe(t *testing.T) {
	path := writeConfig(t, "")
	code, out, _ := runCLI(t, "describe", "-config", path)
	require.Equal(t, exitOK, code)

	root, err := semantic.Import([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "hstack", root.Role)

	tagged := root.FindDeep(func(n *semantic.Node) bool { return n.HasTag("primary_action") })
	require.NotNil(t, tagged)

	protected := root.FindDeep(func(n *semantic.Node) bool { return n.Protected })
	require.NotNil(t, protected)
	assert.Equal(t, "Deletes the document for every collaborator", protected.ProtectReason)

	assert.NotNil(t, root.FindRole("article"))
}

func TestDescribeTOON(t *testing.T) {
	path := writeConfig(t, "")
	code, out, _ := runCLI(t, "describe", "-config", path, "-format", "toon")
	require.Equal(t, exitOK, code)
	assert.NotEmpty(t, out)
	assert.False(t, strings.HasPrefix(out, "{"))

	code, _, _ = runCLI(t, "describe", "-config", path, "-format", "xml")
	assert.Equal(t, exitUsage, code)
}

func TestRenderBackends(t *testing.T) {
	path := writeConfig(t, "")

	code, out, _ := runCLI(t, "render", "-config", path, "-width", "1280")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Save")
	assert.NotContains(t, out, "\x1b[", "ascii profile emits no escapes")

	code, out, _ = runCLI(t, "render", "-config", path, "-backend", "semantic")
	require.Equal(t, exitOK, code)
	root, err := semantic.Import([]byte(out))
	require.NoError(t, err)
	assert.NotNil(t, root.FindRole("button"))

	code, out, _ = runCLI(t, "render", "-config", path, "-backend", "spatial")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, `"role": "sidebar_item"`)
	assert.Contains(t, out, `"billboarding": true`)

	code, out, _ = runCLI(t, "render", "-config", path, "-backend", "graphical")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Save")
}

func TestRenderFocus(t *testing.T) {
	path := writeConfig(t, "")
	code, out, _ := runCLI(t, "render", "-config", path, "-backend", "spatial", "-focus", "save")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, `"focused": true`)
}

func TestHit(t *testing.T) {
	path := writeConfig(t, "")

	vf := viewportFlags{configPath: path}
	s, err := vf.session(false)
	require.NoError(t, err)
	root := view.Render[*spatial.Node](spatial.Backend{}, s.ctx, showcase())
	want, ok := root.HitTest(spatial.NewRay(math32.Vec3(0, 0, 100), math32.Vec3(0, 0, -1)))
	require.True(t, ok)

	code, out, _ := runCLI(t, "hit", "-config", path)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "role:     "+want.Role+"\n")
	assert.Contains(t, out, "distance: "+num(want.Distance)+"\n")
}

func TestHitMiss(t *testing.T) {
	path := writeConfig(t, "")
	code, out, errOut := runCLI(t, "hit", "-config", path, "-oz", "1000", "-dz", "1")
	assert.Equal(t, exitNoHit, code)
	assert.Equal(t, "no hit\n", out)
	assert.Empty(t, errOut)

	code, _, _ = runCLI(t, "hit", "-config", path, "-dz", "0")
	assert.Equal(t, exitUsage, code)
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, exitOK, exitCodeForError(nil))
	assert.Equal(t, exitNoHit, exitCodeForError(errNoHit))
	assert.Equal(t, exitUsage, exitCodeForError(usageError(assert.AnError)))
	assert.Equal(t, exitFailure, exitCodeForError(assert.AnError))
	assert.Equal(t, exitFailure, exitCodeForError(withExitCode(assert.AnError, 0)))
}

func TestMissingConfigIsAFailureNotAMiss(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	for _, args := range [][]string{
		{"render", "-backend", "semantic", "-config", missing},
		{"hit", "-config", missing},
		{"describe", "-config", missing},
	} {
		code, out, errOut := runCLI(t, args...)
		assert.Equal(t, exitFailure, code, args)
		assert.Empty(t, out, args)
		assert.Contains(t, errOut, "Error:", args)
		assert.Contains(t, errOut, "CONFIG_LOAD", args)
	}
}

func testSession(t *testing.T) (*viewportFlags, *session) {
	t.Helper()
	vf := &viewportFlags{configPath: writeConfig(t, "")}
	s, err := vf.session(false)
	require.NoError(t, err)
	return vf, s
}

func TestRendererPublishesFrames(t *testing.T) {
	vf, s := testSession(t)
	hub := telemetry.NewHub()
	defer hub.Close()
	frames, unsub := hub.Subscribe(telemetry.EventRenderComplete)
	defer unsub()

	var out bytes.Buffer
	r := &renderer{backend: backendSemantic, out: &out, vf: vf, hub: hub, session: s}
	require.NoError(t, r.renderTo(context.Background()))
	assert.NotEmpty(t, out.String())

	require.Len(t, frames, 1)
	ev := <-frames
	assert.Equal(t, s.ctx.SessionID, ev.SessionID)
	assert.Equal(t, backendSemantic, ev.Data["backend"])
}

func TestFollowImagesCallsBackOnSettle(t *testing.T) {
	vf, s := testSession(t)
	hub := telemetry.NewHub()
	defer hub.Close()
	r := &renderer{backend: backendGraphical, vf: vf, hub: hub, session: s}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	settled := make(chan struct{}, 4)
	r.followImages(ctx, func() { settled <- struct{}{} })

	hub.Publish(telemetry.Event{Type: telemetry.EventRenderComplete})
	hub.Publish(telemetry.Event{Type: telemetry.EventImageFailed, Key: "missing.png"})

	select {
	case <-settled:
	case <-time.After(time.Second):
		t.Fatal("no callback after an image event")
	}
	assert.Empty(t, settled, "render events are not followed")
}
