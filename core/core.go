package core

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/toxichemicals/GO/glsandbox/internal/config"
)

// Core struct encapsulates the window, GL context and per-frame input state.
type Core struct {
	window *glfw.Window
	log    *zap.Logger
	cfg    config.WindowConfig

	// Framebuffer dimensions
	width, height int

	// Internal state for main loop
	running       bool
	lastFrameTime time.Time

	// FPS counter state
	fpsFrames         int
	fpsLastUpdateTime time.Time

	vsyncEnabled bool

	// Debounce state for KeyToggled
	keyWasPressed map[glfw.Key]bool

	// Input handlers forwarded from GLFW callbacks
	onCursor      func(x, y float64)
	onScroll      func(dx, dy float64)
	onMouseButton func(button glfw.MouseButton, action glfw.Action, x, y float64)
}

// NewCore creates a Core. Call Init before using it.
func NewCore(cfg config.WindowConfig, log *zap.Logger) *Core {
	return &Core{
		cfg:           cfg,
		log:           log,
		width:         cfg.Width,
		height:        cfg.Height,
		running:       true,
		keyWasPressed: make(map[glfw.Key]bool),
	}
}

// Init initializes GLFW, creates the window and loads OpenGL.
// The calling goroutine must be locked to the main OS thread.
func (c *Core) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, c.cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, c.cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if c.cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, c.cfg.Samples)
	}

	window, err := glfw.CreateWindow(c.cfg.Width, c.cfg.Height, c.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	c.window = window
	c.window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		c.window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	c.logSpecs()

	c.SetVSync(c.cfg.VSync)

	// HiDPI framebuffers can differ from the requested window size.
	c.width, c.height = c.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(c.width), int32(c.height))
	c.installCallbacks()

	if c.cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.Enable(gl.DEPTH_TEST)

	c.lastFrameTime = time.Now()
	c.fpsLastUpdateTime = c.lastFrameTime
	return nil
}

func (c *Core) logSpecs() {
	c.log.Info("OpenGL context ready",
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
}

func (c *Core) installCallbacks() {
	c.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width == 0 || height == 0 {
			return // minimized
		}
		c.width, c.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		c.log.Debug("Framebuffer resized", zap.Int("width", width), zap.Int("height", height))
	})
	c.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if c.onCursor != nil {
			c.onCursor(x, y)
		}
	})
	c.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		if c.onScroll != nil {
			c.onScroll(dx, dy)
		}
	})
	c.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if c.onMouseButton != nil {
			x, y := w.GetCursorPos()
			c.onMouseButton(button, action, x, y)
		}
	})
}

// OnCursor registers the cursor position handler.
func (c *Core) OnCursor(fn func(x, y float64)) { c.onCursor = fn }

// OnScroll registers the scroll handler.
func (c *Core) OnScroll(fn func(dx, dy float64)) { c.onScroll = fn }

// OnMouseButton registers the mouse button handler. The cursor position at
// the time of the event is passed along.
func (c *Core) OnMouseButton(fn func(button glfw.MouseButton, action glfw.Action, x, y float64)) {
	c.onMouseButton = fn
}

// CaptureCursor hides the cursor and keeps it inside the window.
func (c *Core) CaptureCursor() {
	c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

// ShouldClose returns true once the window was asked to close.
func (c *Core) ShouldClose() bool {
	return !c.running || c.window.ShouldClose()
}

// PollEvents processes window events and the keys every demo shares:
// Escape closes the window and V toggles vsync.
func (c *Core) PollEvents() {
	glfw.PollEvents()

	if c.KeyDown(glfw.KeyEscape) {
		c.running = false
	}
	if c.KeyToggled(glfw.KeyV) {
		c.SetVSync(!c.vsyncEnabled)
	}
}

// KeyDown reports whether key is currently held.
func (c *Core) KeyDown(key glfw.Key) bool {
	return c.window.GetKey(key) == glfw.Press
}

// KeyToggled reports true once per key press, on the frame it goes down.
func (c *Core) KeyToggled(key glfw.Key) bool {
	pressed := c.KeyDown(key)
	toggled := pressed && !c.keyWasPressed[key]
	c.keyWasPressed[key] = pressed
	return toggled
}

// SetVSync caps (true) or uncaps (false) the frame rate.
func (c *Core) SetVSync(enabled bool) {
	c.vsyncEnabled = enabled
	if enabled {
		glfw.SwapInterval(1)
		c.log.Info("VSync: ON (FPS capped)")
	} else {
		glfw.SwapInterval(0)
		c.log.Info("VSync: OFF (FPS uncapped)")
	}
}

// Tick advances the frame clock and returns the seconds since the last call.
func (c *Core) Tick() float32 {
	now := time.Now()
	dt := float32(now.Sub(c.lastFrameTime).Seconds())
	c.lastFrameTime = now
	return dt
}

// Size returns the framebuffer size in pixels.
func (c *Core) Size() (width, height int) { return c.width, c.height }

// AspectRatio returns framebuffer width over height.
func (c *Core) AspectRatio() float32 {
	if c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// Logger returns the logger the Core was built with.
func (c *Core) Logger() *zap.Logger { return c.log }

// ClearFrame clears the color and depth buffers.
func (c *Core) ClearFrame(r, g, b float32) {
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers to display the rendered frame.
func (c *Core) SwapBuffers() {
	c.window.SwapBuffers()
}

// updateFPS shows the frame rate in the window title once per second.
func (c *Core) updateFPS() {
	if !c.cfg.ShowFPS {
		return
	}
	c.fpsFrames++
	if elapsed := time.Since(c.fpsLastUpdateTime); elapsed >= time.Second {
		fps := float64(c.fpsFrames) / elapsed.Seconds()
		c.window.SetTitle(fmt.Sprintf("%s | FPS: %.2f", c.cfg.Title, fps))
		c.fpsFrames = 0
		c.fpsLastUpdateTime = time.Now()
	}
}

// Shutdown destroys the window and terminates GLFW.
func (c *Core) Shutdown() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	glfw.Terminate()
}
