package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"cogentcore.org/core/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/odvcencio/facet/pkg/config"
	"github.com/odvcencio/facet/pkg/encoding/toon"
	"github.com/odvcencio/facet/pkg/logging"
	"github.com/odvcencio/facet/pkg/telemetry"
	"github.com/odvcencio/facet/pkg/ui/backend/agent"
	"github.com/odvcencio/facet/pkg/ui/backend/graphical"
	"github.com/odvcencio/facet/pkg/ui/backend/spatial"
	"github.com/odvcencio/facet/pkg/ui/backend/terminal"
	"github.com/odvcencio/facet/pkg/ui/backend/terminal/screen"
	"github.com/odvcencio/facet/pkg/ui/imagecache"
	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// Backend names accepted by -backend.
const (
	backendTerminal  = "terminal"
	backendSemantic  = "semantic"
	backendSpatial   = "spatial"
	backendGraphical = "graphical"
)

// defaultMetricsAddr is used when telemetry.metrics is enabled in the config
// and no -metrics-addr is given.
const defaultMetricsAddr = "127.0.0.1:9464"

func parseBackend(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "terminal", "tui":
		return backendTerminal, nil
	case "semantic", "agent":
		return backendSemantic, nil
	case "spatial", "3d":
		return backendSpatial, nil
	case "graphical", "gui":
		return backendGraphical, nil
	default:
		return "", usageError(fmt.Errorf("unknown backend %q (want terminal, semantic, spatial or graphical)", name))
	}
}

// exportFormat resolves -format against the configured encoding.
func exportFormat(flagValue string, cfg *config.Config) (toon.Format, error) {
	if flagValue == "" {
		return cfg.ExportFormat(), nil
	}
	f, err := toon.ParseFormat(flagValue)
	if err != nil {
		return "", usageError(err)
	}
	return f, nil
}

func runRenderCommand(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var vf viewportFlags
	vf.register(fs)
	backendName := fs.String("backend", backendTerminal, "Backend: terminal, semantic, spatial or graphical")
	format := fs.String("format", "", "Semantic export encoding: json or toon (default: config)")
	watch := fs.Bool("watch", false, "Render again whenever the config file changes")
	fullscreen := fs.Bool("screen", false, "Present the terminal render full-screen (q to quit)")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	traceSpans := fs.Bool("trace", false, "Write OpenTelemetry spans to stderr")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	backend, err := parseBackend(*backendName)
	if err != nil {
		return err
	}
	if *fullscreen && backend != backendTerminal {
		return usageError(errors.New("-screen requires the terminal backend"))
	}

	s, err := vf.session(backend == backendTerminal)
	if err != nil {
		return err
	}
	defer s.close()

	if *traceSpans || s.cfg.Telemetry.Tracing {
		tp, err := telemetry.InitTracing(os.Stderr, "facet")
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = tp.Shutdown(shutdownCtx)
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := *metricsAddr
	if addr == "" && s.cfg.Telemetry.Metrics {
		addr = defaultMetricsAddr
	}
	if addr != "" {
		stop, err := serveMetrics(addr, s.log)
		if err != nil {
			return err
		}
		defer stop()
	}

	hub := telemetry.NewHub()
	defer hub.Close()
	r := &renderer{backend: backend, formatFlag: *format, out: stdout, vf: &vf, hub: hub, session: s}

	if *fullscreen {
		return r.presentScreen(ctx, *watch)
	}
	if err := r.renderTo(ctx); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	rerender := func() {
		if err := r.renderTo(ctx); err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
	}
	if backend == backendGraphical {
		r.followImages(ctx, rerender)
	}
	return r.watch(ctx, rerender)
}

// renderer holds the state of one render command. The session is replaced
// when the config file changes; the image store lives as long as the
// command so repeated renders reuse settled images.
type renderer struct {
	backend    string
	formatFlag string
	out        io.Writer
	vf         *viewportFlags
	hub        *telemetry.Hub

	renderMu sync.Mutex

	mu      sync.Mutex
	session *session
	images  *imagecache.Store
}

func (r *renderer) current() *session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

func (r *renderer) imageStore(s *session) *imagecache.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.images == nil {
		log := s.log.WithBackend(r.backend)
		r.images = imagecache.New(
			imagecache.NewFetcher(s.cfg.FetcherConfig(log)),
			imagecache.WithLogger(log),
			imagecache.WithHub(r.hub),
		)
	}
	return r.images
}

// renderTo renders and writes one frame. Frames triggered by config reloads
// and image events are serialized.
func (r *renderer) renderTo(ctx context.Context) error {
	r.renderMu.Lock()
	defer r.renderMu.Unlock()
	s := r.current()
	out, err := r.render(ctx, s)
	if err != nil {
		return err
	}
	r.hub.Publish(telemetry.Event{
		Type:      telemetry.EventRenderComplete,
		SessionID: s.ctx.SessionID,
		Data:      map[string]any{"backend": r.backend, "bytes": len(out)},
	})
	_, err = io.WriteString(r.out, out)
	return err
}

// followImages subscribes to image events and, in the background, calls
// onSettle each time an image leaves the loading state until ctx is done.
func (r *renderer) followImages(ctx context.Context, onSettle func()) {
	events, unsubscribe := r.hub.Subscribe(telemetry.EventImageLoaded, telemetry.EventImageFailed)
	go func() {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				r.current().log.Debug("image settled", zap.String("key", ev.Key), zap.String("event", string(ev.Type)))
				onSettle()
			}
		}
	}()
}

// watch blocks until ctx is done, swapping in a fresh session and calling
// onChange after every successful reload of the config file.
func (r *renderer) watch(ctx context.Context, onChange func()) error {
	path := resolveConfigPath(r.vf.configPath)
	log := r.current().log
	log.Info("watching config", zap.String("path", path))

	return config.WatchWithLogger(ctx, path, log, func(cfg *config.Config, err error) {
		if err != nil {
			return
		}
		next, err := r.vf.sessionFor(cfg, r.backend == backendTerminal)
		if err != nil {
			log.Warn("config rejected", zap.Error(err))
			return
		}
		r.mu.Lock()
		r.session = next
		r.mu.Unlock()
		r.hub.Publish(telemetry.Event{Type: telemetry.EventConfigReloaded, SessionID: next.ctx.SessionID, Key: path})
		onChange()
	})
}

// presentScreen paints escape-free terminal renders full-screen, sized to
// the terminal and repainted on resize.
func (r *renderer) presentScreen(ctx context.Context, watch bool) error {
	scr, err := screen.New()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer scr.Fini()

	if watch {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			_ = r.watch(watchCtx, scr.Refresh)
		}()
	}

	plain := terminal.Plain()
	var frame uint64
	return scr.Run(ctx, func(cols, rows int) string {
		s := r.current()
		frame++
		vctx := s.ctx.
			WithSize(view.Size{Width: float32(cols * cellWidth), Height: float32(rows * cellHeight)}).
			WithTick(frame)
		telemetry.RecordRender(backendTerminal)
		return view.Render[string](plain, vctx, showcase())
	})
}

// render runs one pass of the showcase through the selected backend and
// returns the printable result.
func (r *renderer) render(ctx context.Context, s *session) (string, error) {
	backend := r.backend
	_, span := telemetry.StartSpan(ctx, "render."+backend)
	defer span.End()

	log := s.log.WithBackend(backend)
	start := time.Now()
	defer func() {
		telemetry.RecordRender(backend)
		log.Debug("rendered", zap.Duration("elapsed", time.Since(start)))
	}()

	switch backend {
	case backendTerminal:
		profile, err := terminal.ParseProfile(s.cfg.Terminal.ColorProfile)
		if err != nil {
			return "", usageError(err)
		}
		return view.Render[string](terminal.New(profile), s.ctx, showcase()) + "\n", nil

	case backendSemantic:
		format, err := exportFormat(r.formatFlag, s.cfg)
		if err != nil {
			return "", err
		}
		node := view.Render[semantic.Node](agent.Backend{}, s.ctx, showcase())
		data, err := semantic.Export(node, format)
		if err != nil {
			return "", fmt.Errorf("export semantic tree: %w", err)
		}
		return string(data) + "\n", nil

	case backendSpatial:
		root := view.Render[*spatial.Node](spatial.Backend{}, s.ctx, showcase())
		data, err := json.MarshalIndent(root.ToEmpty(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode spatial tree: %w", err)
		}
		return string(data) + "\n", nil

	case backendGraphical:
		b := graphical.New(
			graphical.WithImages(r.imageStore(s)),
			graphical.WithLogger(log),
			graphical.WithDispatcher(func(msg view.Message) {
				log.Info("message", zap.Any("message", msg))
			}),
		)
		return graphical.Outline(view.Render[core.Widget](b, s.ctx, showcase())) + "\n", nil
	}
	return "", usageError(fmt.Errorf("unknown backend %q", backend))
}

// serveMetrics exposes the Prometheus registry until the returned stop
// function is called.
func serveMetrics(addr string, log *logging.Logger) (func(), error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	ready := make(chan error, 1)
	go func() {
		log.Info("serving metrics", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ready <- err
		}
	}()
	select {
	case err := <-ready:
		return nil, fmt.Errorf("metrics server failed: %w", err)
	case <-time.After(50 * time.Millisecond):
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}, nil
}

// resolveConfigPath reports the file -watch follows.
func resolveConfigPath(path string) string {
	if path == "" {
		path = config.FileName
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
