package demos

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/glsandbox/assets"
	"github.com/toxichemicals/GO/glsandbox/camera"
	"github.com/toxichemicals/GO/glsandbox/core"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
	"github.com/toxichemicals/GO/glsandbox/internal/demos/shaders"
)

// window only clears the screen.
type window struct{}

func newWindow(*config.Config) core.Scene { return window{} }

func (window) Setup(*core.Core) error { return nil }

func (window) Update(*core.Core, float32) {}

func (window) Draw(c *core.Core) { c.ClearFrame(0.2, 0.3, 0.3) }

func (window) Teardown() {}

// triangle draws one vertex-colored triangle in clip space.
type triangle struct {
	lib    *library
	shader *core.Shader
	mesh   *core.Mesh
}

func newTriangle(cfg *config.Config) core.Scene { return &triangle{lib: newLibrary(cfg)} }

func (t *triangle) Setup(c *core.Core) error {
	s, err := t.lib.load(c, shaders.Color)
	if err != nil {
		return err
	}
	m, err := core.NewMesh(assets.TriangleData())
	if err != nil {
		t.lib.release()
		return err
	}
	t.shader, t.mesh = s, m
	return nil
}

func (t *triangle) Update(c *core.Core, _ float32) { t.lib.poll(c) }

func (t *triangle) Draw(c *core.Core) {
	c.ClearFrame(0.2, 0.2, 0.2)
	t.shader.Use()
	setMVP(t.shader, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4())
	t.mesh.Draw()
}

func (t *triangle) Teardown() {
	t.mesh.Delete()
	t.lib.release()
}

// Spin rates of the ebo cube, in degrees per second.
const (
	spinY = 50
	spinX = 25
)

// ebo spins the vertex-colored cube in front of a free-fly camera.
type ebo struct {
	cfg    *config.Config
	lib    *library
	cam    *camera.Camera
	shader *core.Shader
	mesh   *core.Mesh
	angle  mgl32.Vec2 // x, y in degrees
}

func newFlyCamera(cfg *config.Config) *camera.Camera {
	return camera.New(vec3(cfg.Camera.FlyPosition), config.WorldUp,
		camera.WithSpeed(cfg.Camera.Speed), camera.WithSensitivity(cfg.Camera.Sensitivity))
}

func newEBO(cfg *config.Config) core.Scene {
	return &ebo{cfg: cfg, lib: newLibrary(cfg), cam: newFlyCamera(cfg)}
}

func (e *ebo) Setup(c *core.Core) error {
	s, err := e.lib.load(c, shaders.Lit)
	if err != nil {
		return err
	}
	m, err := core.NewMesh(assets.CubeData())
	if err != nil {
		e.lib.release()
		return err
	}
	e.shader, e.mesh = s, m
	bindFreeFly(c, e.cam, e.cfg.Camera.ScrollScale)
	return nil
}

func (e *ebo) Update(c *core.Core, dt float32) {
	e.lib.poll(c)
	moveFreeFly(c, e.cam, dt)
	e.angle[0] = float32(math.Mod(float64(e.angle[0]+spinX*dt), 360))
	e.angle[1] = float32(math.Mod(float64(e.angle[1]+spinY*dt), 360))
}

func (e *ebo) Draw(c *core.Core) {
	c.ClearFrame(0.5, 0.5, 0.5)
	model := mgl32.HomogRotate3DY(mgl32.DegToRad(e.angle[1])).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(e.angle[0]))).
		Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))

	e.shader.Use()
	e.shader.SetBool("useLighting", false)
	e.shader.SetBool("useTexture", false)
	setMVP(e.shader, model, e.cam.ViewMatrix(), projection(c, e.cam.FOV()))
	e.mesh.Draw()
}

func (e *ebo) Teardown() {
	e.mesh.Delete()
	e.lib.release()
}
