package web

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/newthinker/hypergluex/internal/core"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// Watch reloads templates whenever an .html file in the templates directory
// changes. It blocks until ctx is cancelled. Only handlers created from a
// directory can be watched.
func (h *Handler) Watch(ctx context.Context) error {
	if h.templatesDir == "" {
		return core.Wrapf(core.ErrConfigMissing, "watch requires a templates directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(h.templatesDir); err != nil {
		return err
	}
	h.logger.Info("watching templates", zap.String("dir", h.templatesDir))

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)
	defer func() {
		mu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".html" {
				continue
			}

			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				h.reloadFromWatch(name)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Error("template watcher error", zap.Error(err))
		}
	}
}

func (h *Handler) reloadFromWatch(changed string) {
	err := h.Reload()
	if h.recorder != nil {
		h.recorder.RecordTemplateReload(err == nil)
	}
	if err != nil {
		h.logger.Error("template reload failed", zap.String("file", changed), zap.Error(err))
		return
	}
	h.logger.Debug("templates reloaded", zap.String("file", changed))
}
