// Package core wraps GLFW and OpenGL: window and context setup, the main
// loop, shader programs, meshes and textures.
package core

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/toxichemicals/GO/glsandbox/internal/config"
)

// Scene is one demo driven by Run.
type Scene interface {
	// Setup creates GL resources and registers input handlers.
	Setup(c *Core) error
	// Update advances the scene by dt seconds after events were polled.
	Update(c *Core, dt float32)
	// Draw renders one frame. Buffers are swapped by Run.
	Draw(c *Core)
	// Teardown releases what Setup created.
	Teardown()
}

// Run opens a window and drives scene until the window closes.
func Run(cfg config.WindowConfig, log *zap.Logger, scene Scene) error {
	// GLFW requires all calls to come from the main thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	c := NewCore(cfg, log)
	if err := c.Init(); err != nil {
		return fmt.Errorf("core initialization failed: %w", err)
	}
	defer c.Shutdown()

	if err := scene.Setup(c); err != nil {
		return fmt.Errorf("scene setup failed: %w", err)
	}
	defer scene.Teardown()

	log.Info("Starting main loop...")
	for !c.ShouldClose() {
		dt := c.Tick()
		c.PollEvents()
		scene.Update(c, dt)
		scene.Draw(c)
		c.SwapBuffers()
		c.updateFPS()
	}
	log.Info("Program exited", zap.Int("status", 0))
	return nil
}
