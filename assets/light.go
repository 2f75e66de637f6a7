package assets

import "github.com/go-gl/mathgl/mgl32"

// PointLight is an attenuated light uploaded to a GLSL struct with fields
// position, ambient, diffuse, specular, constant, linear and quadratic.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// NewPointLight returns a light of one color with an attenuation range of
// roughly 50 units.
func NewPointLight(position, color mgl32.Vec3) PointLight {
	return PointLight{
		Position:  position,
		Ambient:   color,
		Diffuse:   color,
		Specular:  color,
		Constant:  1.0,
		Linear:    0.09,
		Quadratic: 0.032,
	}
}

// Attenuation returns the intensity factor at distance d.
func (l PointLight) Attenuation(d float32) float32 {
	denom := l.Constant + l.Linear*d + l.Quadratic*d*d
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

// Uniforms is the part of a shader program a light writes to.
type Uniforms interface {
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
}

// Apply uploads the light into the struct uniform called name.
func (l PointLight) Apply(s Uniforms, name string) {
	s.SetVec3(name+".position", l.Position)
	s.SetVec3(name+".ambient", l.Ambient)
	s.SetVec3(name+".diffuse", l.Diffuse)
	s.SetVec3(name+".specular", l.Specular)
	s.SetFloat(name+".constant", l.Constant)
	s.SetFloat(name+".linear", l.Linear)
	s.SetFloat(name+".quadratic", l.Quadratic)
}
