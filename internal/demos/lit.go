package demos

import (
	"errors"
	"image"
	"io/fs"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/toxichemicals/GO/glsandbox/arcball"
	"github.com/toxichemicals/GO/glsandbox/assets"
	"github.com/toxichemicals/GO/glsandbox/camera"
	"github.com/toxichemicals/GO/glsandbox/core"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
	"github.com/toxichemicals/GO/glsandbox/internal/demos/shaders"
)

// litMesh is a model drawn with the lit program under a lightRig. Models
// without a texture use their vertex colors.
type litMesh struct {
	cfg  *config.Config
	lib  *library
	load func() (assets.Model, error)
	rig  *lightRig

	shader *core.Shader
	mesh   *core.Mesh
	tex    *core.Texture
}

func newLitCube(cfg *config.Config, textured bool, keys lightKeys) litMesh {
	cube := assets.Model{Mesh: assets.CubeData()}
	if textured {
		cube.Texture = cfg.Assets.Texture
	}
	return litMesh{
		cfg:  cfg,
		lib:  newLibrary(cfg),
		load: func() (assets.Model, error) { return cube, nil },
		rig:  newLightRig(cfg.Light, keys),
	}
}

// setup releases whatever it created when it fails. The texture is decoded
// on another goroutine while the GL thread builds programs and buffers.
func (l *litMesh) setup(c *core.Core) (err error) {
	defer func() {
		if err != nil {
			l.teardown()
		}
	}()

	src, err := loadOrCube(l.load, c.Logger())
	if err != nil {
		return err
	}

	var (
		g   errgroup.Group
		img *image.RGBA
	)
	if src.Texture != "" {
		g.Go(func() error {
			var err error
			img, err = assets.LoadImage(src.Texture, true)
			return err
		})
	}

	if err := l.rig.setup(c, l.lib); err != nil {
		_ = g.Wait()
		return err
	}
	if l.shader, err = l.lib.load(c, shaders.Lit); err != nil {
		_ = g.Wait()
		return err
	}
	if l.mesh, err = core.NewMesh(src.Mesh); err != nil {
		_ = g.Wait()
		return err
	}

	if err := g.Wait(); err != nil {
		c.Logger().Warn("Texture unavailable, using vertex colors", zap.Error(err))
	} else if img != nil {
		l.tex = core.NewTexture(img)
		l.shader.Use()
		l.shader.SetInt("tex", 0)
	}
	enableCulling()
	return nil
}

// loadOrCube falls back to the built-in cube when the model file is missing.
// Files that exist but do not parse are still an error.
func loadOrCube(load func() (assets.Model, error), log *zap.Logger) (assets.Model, error) {
	m, err := load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("Model file missing, drawing a cube instead", zap.Error(err))
		return assets.Model{Mesh: assets.CubeData()}, nil
	}
	return m, err
}

func (l *litMesh) update(c *core.Core, dt float32) {
	l.lib.poll(c)
	l.rig.update(c, dt)
}

func (l *litMesh) draw(model, view, proj mgl32.Mat4, viewPos mgl32.Vec3) {
	l.rig.drawLamp(view, proj)

	if l.tex != nil {
		l.tex.Bind(0)
	}
	l.shader.Use()
	l.rig.apply(l.shader, viewPos)
	l.shader.SetBool("useTexture", l.tex != nil)
	setMVP(l.shader, model, view, proj)
	l.mesh.Draw()
}

func (l *litMesh) teardown() {
	if l.tex != nil {
		l.tex.Delete()
		l.tex = nil
	}
	if l.mesh != nil {
		l.mesh.Delete()
		l.mesh = nil
	}
	l.rig.teardown()
	l.lib.release()
	disableCulling()
}

// shaded is a lit cube seen through the free-fly camera. The arrow keys,
// Space and Left Shift move the light.
type shaded struct {
	litMesh
	cam *camera.Camera
}

func newFreeFly(cfg *config.Config, textured bool) *shaded {
	return &shaded{
		litMesh: newLitCube(cfg, textured, arrowKeys),
		cam:     newFlyCamera(cfg),
	}
}

func newShaded(cfg *config.Config) core.Scene   { return newFreeFly(cfg, false) }
func newTextured(cfg *config.Config) core.Scene { return newFreeFly(cfg, true) }

func (s *shaded) Setup(c *core.Core) error {
	if err := s.setup(c); err != nil {
		return err
	}
	bindFreeFly(c, s.cam, s.cfg.Camera.ScrollScale)
	return nil
}

func (s *shaded) Update(c *core.Core, dt float32) {
	moveFreeFly(c, s.cam, dt)
	s.update(c, dt)
}

func (s *shaded) Draw(c *core.Core) {
	c.ClearFrame(0.5, 0.5, 0.5)
	s.draw(mgl32.Ident4(), s.cam.ViewMatrix(), projection(c, s.cam.FOV()), s.cam.Position())
}

func (s *shaded) Teardown() { s.teardown() }

// arcballDemo rotates the cube itself with the arcball in front of a fixed
// camera.
type arcballDemo struct {
	litMesh
	cam  *camera.Camera
	ball *arcball.Arcball
}

func newArcballDemo(cfg *config.Config) core.Scene {
	return &arcballDemo{
		litMesh: newLitCube(cfg, true, wasdKeys),
		cam:     camera.New(vec3(cfg.Camera.OrbitPosition), config.WorldUp),
		ball:    arcball.New(arcballOptions(cfg)...),
	}
}

func (a *arcballDemo) Setup(c *core.Core) error {
	if err := a.setup(c); err != nil {
		return err
	}
	bindArcball(c, a.ball)
	return nil
}

func (a *arcballDemo) Update(c *core.Core, dt float32) {
	a.update(c, dt)
	if c.KeyToggled(glfw.KeyR) {
		a.ball.Reset()
	}
}

func (a *arcballDemo) Draw(c *core.Core) {
	c.ClearFrame(0, 0, 0)
	a.draw(a.ball.RotationMatrix(), a.cam.ViewMatrix(), projection(c, a.cam.FOV()), a.cam.Position())
}

func (a *arcballDemo) Teardown() { a.teardown() }

// orbit circles a lit cube with the orbital camera.
type orbit struct {
	litMesh
	cam *camera.Orbital
}

func arcballOptions(cfg *config.Config) []arcball.Option {
	return []arcball.Option{
		arcball.WithRadius(cfg.Camera.ArcballRadius),
		arcball.WithInvertY(cfg.Camera.InvertY),
	}
}

func newOrbital(cfg *config.Config) *camera.Orbital {
	return camera.NewOrbital(vec3(cfg.Camera.OrbitPosition), vec3(cfg.Camera.Target), config.WorldUp,
		arcballOptions(cfg)...)
}

func newOrbit(cfg *config.Config) core.Scene {
	return &orbit{litMesh: newLitCube(cfg, true, wasdKeys), cam: newOrbital(cfg)}
}

func (o *orbit) Setup(c *core.Core) error {
	if err := o.setup(c); err != nil {
		return err
	}
	bindOrbital(c, o.cam, o.cfg.Camera.ScrollScale)
	return nil
}

func (o *orbit) Update(c *core.Core, dt float32) {
	o.update(c, dt)
	if c.KeyToggled(glfw.KeyR) {
		o.cam.Reset()
	}
}

func (o *orbit) Draw(c *core.Core) {
	c.ClearFrame(0, 0, 0)
	o.draw(mgl32.Ident4(), o.cam.ViewMatrix(), projection(c, o.cam.FOV()), o.cam.Position())
}

func (o *orbit) Teardown() { o.teardown() }

// modelDemo is a glTF or .holym model standing on a floor, seen through the
// orbital camera.
type modelDemo struct {
	litMesh
	cam   *camera.Orbital
	floor *core.Mesh
}

const floorSize = 10

func newModel(cfg *config.Config) core.Scene {
	return &modelDemo{
		litMesh: litMesh{
			cfg:  cfg,
			lib:  newLibrary(cfg),
			load: func() (assets.Model, error) { return assets.LoadModel(cfg.Assets.Model) },
			rig:  newLightRig(cfg.Light, wasdKeys),
		},
		cam: newOrbital(cfg),
	}
}

func (m *modelDemo) Setup(c *core.Core) error {
	if err := m.setup(c); err != nil {
		return err
	}
	floor, err := core.NewMesh(assets.PlaneData())
	if err != nil {
		m.teardown()
		return err
	}
	m.floor = floor

	// model winding is not guaranteed
	disableCulling()
	bindOrbital(c, m.cam, m.cfg.Camera.ScrollScale)
	c.Logger().Info("Model loaded", zap.String("path", m.cfg.Assets.Model))
	return nil
}

func (m *modelDemo) Update(c *core.Core, dt float32) {
	m.update(c, dt)
	if c.KeyToggled(glfw.KeyR) {
		m.cam.Reset()
	}
}

func (m *modelDemo) Draw(c *core.Core) {
	c.ClearFrame(0.1, 0.1, 0.1)
	view, proj := m.cam.ViewMatrix(), projection(c, m.cam.FOV())
	m.draw(mgl32.Ident4(), view, proj, m.cam.Position())

	floor := mgl32.Translate3D(0, -1, 0).Mul4(mgl32.Scale3D(floorSize, 1, floorSize))
	m.shader.SetBool("useTexture", false)
	m.shader.SetMat4("model", floor)
	m.floor.Draw()
}

func (m *modelDemo) Teardown() {
	if m.floor != nil {
		m.floor.Delete()
	}
	m.teardown()
}
