// Package imagecache is the asynchronous image source behind the graphical
// backend. Lookups never block: a miss records a Loading entry, starts a
// background fetch and returns immediately.
package imagecache

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/h2non/filetype"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	facetErrors "github.com/odvcencio/facet/pkg/errors"
	"github.com/odvcencio/facet/pkg/logging"
	"github.com/odvcencio/facet/pkg/telemetry"
)

// Kind is the lifecycle stage of a cache entry.
type Kind int

const (
	Loading Kind = iota
	Loaded
	Error
)

func (k Kind) String() string {
	switch k {
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	default:
		return "loading"
	}
}

// State is the cached value for one key.
type State struct {
	Kind Kind
	Data []byte
	MIME string
	Err  error
}

func LoadingState() State { return State{Kind: Loading} }

func LoadedState(data []byte, mime string) State {
	return State{Kind: Loaded, Data: data, MIME: mime}
}

func ErrorState(err error) State { return State{Kind: Error, Err: err} }

// Cache answers image lookups without blocking the caller.
type Cache interface {
	GetOrFetch(key string) State
}

// Store is the default Cache: a mutex-guarded map filled by background
// fetches. A key already holding Loading is never fetched twice. Fetches
// are not cancelled and have no deadline beyond what the Fetcher applies.
type Store struct {
	fetcher Fetcher
	log     *logging.Logger
	hub     *telemetry.Hub

	mu      sync.Mutex
	entries map[string]State
	wg      sync.WaitGroup
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.log = logging.OrNop(l).With(logging.ComponentImageCache) }
}

// WithHub publishes an event whenever an entry leaves the Loading state,
// so hosts know to render again.
func WithHub(h *telemetry.Hub) Option {
	return func(s *Store) { s.hub = h }
}

// New creates a Store backed by fetcher.
func New(fetcher Fetcher, opts ...Option) *Store {
	s := &Store{
		fetcher: fetcher,
		log:     logging.Nop(),
		entries: make(map[string]State),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Cache = (*Store)(nil)

// GetOrFetch returns the current state for key, starting a fetch on the
// first lookup.
func (s *Store) GetOrFetch(key string) State {
	s.mu.Lock()
	if st, ok := s.entries[key]; ok {
		s.mu.Unlock()
		telemetry.RecordImageCacheHit()
		return st
	}
	s.entries[key] = LoadingState()
	s.wg.Add(1)
	s.mu.Unlock()

	telemetry.RecordImageCacheMiss()
	go s.fetch(key)
	return LoadingState()
}

// Peek returns the state for key without starting a fetch.
func (s *Store) Peek(key string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.entries[key]
	return st, ok
}

// Len returns the number of tracked keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Wait blocks until every fetch started so far has settled.
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) fetch(key string) {
	defer s.wg.Done()

	ctx, span := telemetry.StartSpan(context.Background(), "imagecache.fetch")
	defer span.End()
	span.SetAttributes(telemetry.AttrImageKey.String(key))

	s.log.Debug("image fetch started", zap.String("key", key))
	start := time.Now()
	data, err := s.fetcher.Fetch(ctx, key)
	st := settle(key, data, err)
	telemetry.RecordImageFetch(time.Since(start), st.Kind == Loaded)

	event := telemetry.Event{Type: telemetry.EventImageLoaded, Key: key}
	if st.Kind == Error {
		span.RecordError(st.Err)
		span.SetStatus(codes.Error, st.Err.Error())
		s.log.Warn("image fetch failed", zap.String("key", key), zap.Error(st.Err))
		event.Type = telemetry.EventImageFailed
	} else {
		span.SetAttributes(telemetry.AttrImageBytes.Int(len(st.Data)))
	}

	s.mu.Lock()
	s.entries[key] = st
	s.mu.Unlock()
	s.hub.Publish(event)
}

func settle(key string, data []byte, err error) State {
	if err != nil {
		return ErrorState(err)
	}
	mime, ok := Sniff(data)
	if !ok {
		return ErrorState(facetErrors.New(facetErrors.ErrCodeFetchNotImage, "payload is not an image").
			WithContext("key", key).
			WithContext("bytes", len(data)))
	}
	return LoadedState(data, mime)
}

// Sniff reports the image MIME type of data from its magic bytes.
func Sniff(data []byte) (string, bool) {
	if filetype.IsImage(data) {
		kind, err := filetype.Match(data)
		if err == nil {
			return kind.MIME.Value, true
		}
	}
	head := data[:min(len(data), 512)]
	if bytes.Contains(head, []byte("<svg")) {
		return "image/svg+xml", true
	}
	return "", false
}

// Stub is a synchronous Cache with fixed answers. Unknown keys report
// Loading, as a real cache would on first sight.
type Stub map[string]State

func (s Stub) GetOrFetch(key string) State {
	if st, ok := s[key]; ok {
		return st
	}
	return LoadingState()
}
