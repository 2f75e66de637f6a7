package demos

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/toxichemicals/GO/glsandbox/core"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
	"github.com/toxichemicals/GO/glsandbox/internal/demos/shaders"
)

// library owns the programs of one scene. With a shader directory
// configured it watches the directory and rebuilds programs whose files
// change.
type library struct {
	cfg      *config.Config
	programs map[string][]*core.Shader
	watcher  *shaders.Watcher
	cancel   context.CancelFunc
}

func newLibrary(cfg *config.Config) *library {
	return &library{cfg: cfg, programs: make(map[string][]*core.Shader)}
}

// load builds a program and keeps it for reloading and release.
func (l *library) load(c *core.Core, name string) (*core.Shader, error) {
	vs, fs, err := shaders.Sources(l.cfg.Assets.ShaderDir, name)
	if err != nil {
		return nil, err
	}
	s, err := core.NewShader(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", name, err)
	}
	l.programs[name] = append(l.programs[name], s)

	if l.cfg.Assets.ShaderDir != "" && l.watcher == nil {
		l.watch(c)
	}
	return s, nil
}

func (l *library) watch(c *core.Core) {
	w, err := shaders.NewWatcher(l.cfg.Assets.ShaderDir, c.Logger(), shaders.DefaultDebounce)
	if err != nil {
		c.Logger().Warn("Shader hot reload disabled", zap.Error(err))
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		cancel()
		w.Stop()
		c.Logger().Warn("Shader hot reload disabled", zap.Error(err))
		return
	}
	l.watcher, l.cancel = w, cancel
}

// poll rebuilds changed programs. A program that fails to build keeps its
// previous version.
func (l *library) poll(c *core.Core) {
	if l.watcher == nil {
		return
	}
	for _, name := range l.watcher.Changed() {
		progs := l.programs[name]
		if len(progs) == 0 {
			continue
		}
		vs, fs, err := shaders.Sources(l.cfg.Assets.ShaderDir, name)
		if err != nil {
			c.Logger().Warn("Shader reload failed", zap.String("program", name), zap.Error(err))
			continue
		}
		if err := reloadAll(progs, vs, fs); err != nil {
			c.Logger().Warn("Shader reload failed", zap.String("program", name), zap.Error(err))
			continue
		}
		c.Logger().Info("Shader reloaded", zap.String("program", name))
	}
}

func reloadAll(progs []*core.Shader, vs, fs string) error {
	for _, s := range progs {
		if err := s.Reload(vs, fs); err != nil {
			return err
		}
	}
	return nil
}

// release deletes every program and stops watching.
func (l *library) release() {
	if l.watcher != nil {
		l.cancel()
		l.watcher.Stop()
		l.watcher = nil
	}
	for name, progs := range l.programs {
		for _, s := range progs {
			s.Delete()
		}
		delete(l.programs, name)
	}
}
