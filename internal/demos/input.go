package demos

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/glsandbox/arcball"
	"github.com/toxichemicals/GO/glsandbox/camera"
	"github.com/toxichemicals/GO/glsandbox/core"
)

// bindOrbital wires the mouse to an orbital camera: left drag rotates, right
// drag dollies and the wheel zooms.
func bindOrbital(c *core.Core, o *camera.Orbital, scrollScale float32) {
	ndc := func(x, y float64) mgl32.Vec2 {
		w, h := c.Size()
		return arcball.ScreenToNDC(x, y, w, h)
	}
	c.OnMouseButton(func(button glfw.MouseButton, action glfw.Action, x, y float64) {
		switch {
		case button == glfw.MouseButtonLeft && action == glfw.Press:
			o.BeginRotation(ndc(x, y))
		case button == glfw.MouseButtonLeft && action == glfw.Release:
			o.EndRotation()
		case button == glfw.MouseButtonRight && action == glfw.Press:
			o.BeginTranslation()
		case button == glfw.MouseButtonRight && action == glfw.Release:
			o.EndTranslation()
		}
	})
	c.OnCursor(func(x, y float64) {
		o.Drag(ndc(x, y))
	})
	c.OnScroll(func(_, dy float64) {
		o.AdjustFOV(float32(dy) * scrollScale)
	})
}

// bindArcball rotates a with left drags.
func bindArcball(c *core.Core, a *arcball.Arcball) {
	ndc := func(x, y float64) mgl32.Vec2 {
		w, h := c.Size()
		return arcball.ScreenToNDC(x, y, w, h)
	}
	c.OnMouseButton(func(button glfw.MouseButton, action glfw.Action, x, y float64) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			a.BeginRotation(ndc(x, y))
		case glfw.Release:
			a.EndRotation()
		}
	})
	c.OnCursor(func(x, y float64) {
		a.Rotate(ndc(x, y))
	})
}

// bindFreeFly points mouse look and zoom at a free-fly camera and captures
// the cursor.
func bindFreeFly(c *core.Core, cam *camera.Camera, scrollScale float32) {
	c.CaptureCursor()
	c.OnCursor(cam.Cursor)
	c.OnScroll(func(_, dy float64) {
		cam.AdjustFOV(float32(dy) * scrollScale)
	})
}

func moveFreeFly(c *core.Core, cam *camera.Camera, dt float32) {
	if c.KeyDown(glfw.KeyW) {
		cam.Move(camera.Forward, dt)
	}
	if c.KeyDown(glfw.KeyS) {
		cam.Move(camera.Backward, dt)
	}
	if c.KeyDown(glfw.KeyA) {
		cam.Move(camera.Left, dt)
	}
	if c.KeyDown(glfw.KeyD) {
		cam.Move(camera.Right, dt)
	}
	if c.KeyDown(glfw.KeyR) {
		cam.Reset()
	}
}
