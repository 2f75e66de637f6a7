package demos

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/glsandbox/assets"
	"github.com/toxichemicals/GO/glsandbox/camera"
	"github.com/toxichemicals/GO/glsandbox/core"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
	"github.com/toxichemicals/GO/glsandbox/internal/demos/shaders"
)

const letterScale = 0.5

// letters stands the glyphs on the four sides of a unit square, each facing
// outwards, and views them through the orbital camera.
type letters struct {
	cfg    *config.Config
	lib    *library
	cam    *camera.Orbital
	shader *core.Shader
	meshes []*core.Mesh
	models []mgl32.Mat4
}

func newLetters(cfg *config.Config) core.Scene {
	return &letters{
		cfg: cfg,
		lib: newLibrary(cfg),
		cam: camera.NewOrbital(mgl32.Vec3{0, 0, 3}, vec3(cfg.Camera.Target), config.WorldUp,
			arcballOptions(cfg)...),
	}
}

// letterPlacement returns the model matrix of the i-th glyph: translated one
// unit out along +z, +x, -z, -x and turned 90 degrees further each time.
func letterPlacement(i int) mgl32.Mat4 {
	offsets := [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 0}, {0, 0, -1}, {-1, 0, 0}}
	o := offsets[i%4]
	return mgl32.Translate3D(o.X(), o.Y(), o.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(90 * (i % 4))))).
		Mul4(mgl32.Scale3D(letterScale, letterScale, letterScale))
}

func (l *letters) Setup(c *core.Core) error {
	s, err := l.lib.load(c, shaders.Color)
	if err != nil {
		return err
	}
	l.shader = s

	for i, letter := range assets.Letters() {
		m, err := core.NewMesh(letter.Mesh)
		if err != nil {
			l.Teardown()
			return err
		}
		l.meshes = append(l.meshes, m)
		l.models = append(l.models, letterPlacement(i))
	}

	// glyphs are seen from both sides
	disableCulling()
	bindOrbital(c, l.cam, l.cfg.Camera.ScrollScale)
	return nil
}

func (l *letters) Update(c *core.Core, _ float32) {
	l.lib.poll(c)
	if c.KeyToggled(glfw.KeyR) {
		l.cam.Reset()
	}
}

func (l *letters) Draw(c *core.Core) {
	c.ClearFrame(0.5, 0.5, 0.5)
	l.shader.Use()
	view := l.cam.ViewMatrix()
	proj := projection(c, l.cam.FOV())
	for i, m := range l.meshes {
		setMVP(l.shader, l.models[i], view, proj)
		m.Draw()
	}
}

func (l *letters) Teardown() {
	for _, m := range l.meshes {
		m.Delete()
	}
	l.meshes = nil
	l.lib.release()
}
