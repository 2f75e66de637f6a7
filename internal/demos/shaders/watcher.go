package shaders

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay quiet before its program is
// reported as changed. Editors often write a file several times per save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports programs whose sources changed in a shader directory.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	log      *zap.Logger
	dir      string
	debounce time.Duration
	pending  map[string]time.Time // program name -> last event
	ready    map[string]struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for dir. Call Start to begin watching.
func NewWatcher(dir string, log *zap.Logger, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		watcher:  fw,
		log:      log,
		dir:      dir,
		debounce: debounce,
		pending:  make(map[string]time.Time),
		ready:    make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start watches the directory in a background goroutine until ctx ends or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.running = true
	w.log.Info("Watching shaders", zap.String("dir", w.dir))
	go w.run(ctx)
	return nil
}

// Stop ends watching and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("Closing shader watcher failed", zap.Error(err))
	}
}

// Changed returns the programs whose files settled since the last call,
// sorted by name.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.ready) == 0 {
		return nil
	}
	names := make([]string, 0, len(w.ready))
	for name := range w.ready {
		names = append(names, name)
	}
	w.ready = make(map[string]struct{})
	sort.Strings(names)
	return names
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("Shader watcher error", zap.Error(err))
		case now := <-ticker.C:
			w.settle(now)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	name, ok := programName(event.Name)
	if !ok {
		return
	}
	w.log.Debug("Shader file event", zap.String("file", event.Name), zap.String("op", event.Op.String()))

	w.mu.Lock()
	w.pending[name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) settle(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for name, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			delete(w.pending, name)
			w.ready[name] = struct{}{}
		}
	}
}

// programName maps color.vert or color.frag to color.
func programName(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".vert" && ext != ".frag" {
		return "", false
	}
	return strings.TrimSuffix(base, ext), true
}
