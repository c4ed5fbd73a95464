package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	facetErrors "github.com/odvcencio/facet/pkg/errors"
	"github.com/odvcencio/facet/pkg/logging"
)

// Watch reloads path whenever it changes and hands the result to onChange,
// blocking until ctx is done. The parent directory is watched so editors
// that save by rename are still seen. A failed reload is reported through
// onChange with a nil config.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	return WatchWithLogger(ctx, path, nil, onChange)
}

// WatchWithLogger is Watch with watcher errors logged to log.
func WatchWithLogger(ctx context.Context, path string, log *logging.Logger, onChange func(*Config, error)) error {
	log = logging.OrNop(log).With(logging.ComponentConfig)

	abs, err := filepath.Abs(path)
	if err != nil {
		return facetErrors.Wrap(err, facetErrors.ErrCodeConfigLoad, "resolve config path").WithContext("path", path)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return facetErrors.Wrap(err, facetErrors.ErrCodeConfigLoad, "create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return facetErrors.Wrap(err, facetErrors.ErrCodeConfigLoad, "watch config dir").WithContext("path", abs)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := LoadFromPath(abs)
			if err != nil {
				log.Warn("config reload failed", zap.String("path", abs), zap.Error(err))
				onChange(nil, err)
				continue
			}
			log.Info("config reloaded", zap.String("path", abs))
			onChange(cfg, nil)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", zap.Error(err))
		}
	}
}
