package demos

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/toxichemicals/GO/glsandbox/assets"
	"github.com/toxichemicals/GO/glsandbox/core"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
	"github.com/toxichemicals/GO/glsandbox/internal/demos/shaders"
)

// lightKeys maps keys to light movement along -z, +z, -x, +x, +y, -y.
type lightKeys [6]glfw.Key

var (
	// free-fly demos steer the camera with WASD
	arrowKeys = lightKeys{glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight, glfw.KeySpace, glfw.KeyLeftShift}
	wasdKeys  = lightKeys{glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD, glfw.KeySpace, glfw.KeyLeftShift}
)

var lightSteps = [6]mgl32.Vec3{
	{0, 0, -1}, {0, 0, 1}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0},
}

// lightRig is the movable point light shared by the lit demos. It draws a
// small cube where the light is and toggles Blinn-Phong with B.
type lightRig struct {
	light      assets.PointLight
	color      mgl32.Vec3
	speed      float32
	scale      float32
	blinnPhong bool
	keys       lightKeys

	shader *core.Shader
	lamp   *core.Mesh
}

func newLightRig(cfg config.LightConfig, keys lightKeys) *lightRig {
	color := vec3(cfg.Color)
	return &lightRig{
		light:      assets.NewPointLight(vec3(cfg.Position), color),
		color:      color,
		speed:      cfg.Speed,
		scale:      cfg.Scale,
		blinnPhong: cfg.BlinnPhong,
		keys:       keys,
	}
}

// setup builds the lamp. Its program belongs to lib.
func (r *lightRig) setup(c *core.Core, lib *library) error {
	s, err := lib.load(c, shaders.Light)
	if err != nil {
		return err
	}
	lamp, err := core.NewMesh(assets.CubeData())
	if err != nil {
		return err
	}
	r.shader, r.lamp = s, lamp
	return nil
}

func (r *lightRig) update(c *core.Core, dt float32) {
	for i, key := range r.keys {
		if c.KeyDown(key) {
			r.light.Position = r.light.Position.Add(lightSteps[i].Mul(r.speed * dt))
		}
	}
	if c.KeyToggled(glfw.KeyB) {
		r.blinnPhong = !r.blinnPhong
		c.Logger().Info("Shading model changed", zap.Bool("blinn_phong", r.blinnPhong))
	}
}

// drawLamp renders the light marker.
func (r *lightRig) drawLamp(view, proj mgl32.Mat4) {
	model := mgl32.Translate3D(r.light.Position.Elem()).
		Mul4(mgl32.Scale3D(r.scale, r.scale, r.scale))
	r.shader.Use()
	r.shader.SetVec3("lightColor", r.color)
	setMVP(r.shader, model, view, proj)
	r.lamp.Draw()
}

// apply uploads the light and shading switches to a lit program.
func (r *lightRig) apply(s *core.Shader, viewPos mgl32.Vec3) {
	r.light.Apply(s, "light")
	s.SetVec3("viewPos", viewPos)
	s.SetBool("useLighting", true)
	s.SetBool("useBlinnPhong", r.blinnPhong)
	s.SetFloat("shininess", shininess)
}

func (r *lightRig) teardown() {
	if r.lamp != nil {
		r.lamp.Delete()
		r.lamp = nil
	}
}

func enableCulling() {
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

func disableCulling() {
	gl.Disable(gl.CULL_FACE)
}
