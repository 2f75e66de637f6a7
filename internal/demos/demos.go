// Package demos holds the scenes the sandbox can run. Each scene builds its
// GL resources in Setup and reads its settings from a config.Config.
package demos

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/glsandbox/core"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
)

// Demo is a named scene constructor.
type Demo struct {
	Name  string
	Short string
	New   func(cfg *config.Config) core.Scene
}

var registry = map[string]Demo{}

func register(d Demo) {
	if _, dup := registry[d.Name]; dup {
		panic("demos: duplicate demo " + d.Name)
	}
	registry[d.Name] = d
}

func init() {
	register(Demo{"window", "Clear an empty window", newWindow})
	register(Demo{"triangle", "A single vertex-colored triangle", newTriangle})
	register(Demo{"ebo", "A spinning indexed cube", newEBO})
	register(Demo{"shaded", "Free-fly camera around a lit cube", newShaded})
	register(Demo{"textured", "Free-fly camera around a lit, textured cube", newTextured})
	register(Demo{"arcball", "Rotate a textured cube with the arcball", newArcballDemo})
	register(Demo{"orbit", "Orbit a textured cube with the arcball camera", newOrbit})
	register(Demo{"letters", "Letters J, D, T and II seen through the orbital camera", newLetters})
	register(Demo{"model", "A glTF model seen through the orbital camera", newModel})
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	d, ok := registry[name]
	return d, ok
}

const (
	frustumNear = 0.01
	frustumFar  = 100
	shininess   = 32
)

func projection(c *core.Core, fov float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fov), c.AspectRatio(), frustumNear, frustumFar)
}

func setMVP(s *core.Shader, model, view, proj mgl32.Mat4) {
	s.SetMat4("model", model)
	s.SetMat4("view", view)
	s.SetMat4("projection", proj)
}

func vec3(v [3]float32) mgl32.Vec3 { return mgl32.Vec3(v) }
