// Package arcball turns 2D pointer drags into 3D rotations.
//
// Pointer positions are projected onto a virtual hemisphere of a given radius
// centred on the screen. The rotation between the drag's start and current
// positions is composed with the orientation accumulated by earlier drags.
package arcball

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultRadius is the radius of the virtual sphere in NDC units.
const DefaultRadius float32 = 1.0

// epsilon below which a drag is treated as no movement.
const epsilon = 1e-6

// Arcball tracks the orientation produced by a sequence of pointer drags.
type Arcball struct {
	last    mgl32.Quat // orientation accumulated by finished drags
	current mgl32.Quat // rotation of the drag in progress
	start   mgl32.Vec2
	end     mgl32.Vec2

	radius   float32
	invertY  bool
	rotating bool
}

// Option configures an Arcball.
type Option func(*Arcball)

// WithRadius sets the radius of the virtual sphere. Non-positive values keep
// DefaultRadius.
func WithRadius(r float32) Option {
	return func(a *Arcball) {
		if r > 0 {
			a.radius = r
		}
	}
}

// WithInvertY keeps pointer y as given. By default y is negated because
// window coordinates grow downwards.
func WithInvertY(invert bool) Option {
	return func(a *Arcball) {
		a.invertY = invert
	}
}

// New returns an Arcball at the identity orientation.
func New(opts ...Option) *Arcball {
	a := &Arcball{
		last:    mgl32.QuatIdent(),
		current: mgl32.QuatIdent(),
		radius:  DefaultRadius,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BeginRotation starts a drag at pos, given in NDC.
func (a *Arcball) BeginRotation(pos mgl32.Vec2) {
	a.start = a.orient(pos)
	a.end = a.start
	a.current = mgl32.QuatIdent()
	a.rotating = true
}

// Rotate updates the drag in progress with the pointer at pos. It does nothing
// when no drag is active.
func (a *Arcball) Rotate(pos mgl32.Vec2) {
	if !a.rotating {
		return
	}
	a.end = a.orient(pos)
	a.current = a.rotationBetween(a.start, a.end)
}

// EndRotation folds the drag in progress into the accumulated orientation.
func (a *Arcball) EndRotation() {
	if !a.rotating {
		return
	}
	a.last = a.current.Mul(a.last).Normalize()
	a.current = mgl32.QuatIdent()
	a.rotating = false
}

// IsRotating reports whether a drag is in progress.
func (a *Arcball) IsRotating() bool {
	return a.rotating
}

// Orientation returns the accumulated orientation including the drag in
// progress.
func (a *Arcball) Orientation() mgl32.Quat {
	return a.current.Mul(a.last)
}

// RotationMatrix returns Orientation as a homogeneous rotation matrix.
func (a *Arcball) RotationMatrix() mgl32.Mat4 {
	return a.Orientation().Mat4()
}

// Radius returns the virtual sphere radius.
func (a *Arcball) Radius() float32 {
	return a.radius
}

// Reset discards all accumulated rotation and cancels any drag.
func (a *Arcball) Reset() {
	a.last = mgl32.QuatIdent()
	a.current = mgl32.QuatIdent()
	a.start = mgl32.Vec2{}
	a.end = mgl32.Vec2{}
	a.rotating = false
}

// MapToSurface lifts an NDC point onto the sphere. Points outside the sphere's
// silhouette stay in the z = 0 plane.
func (a *Arcball) MapToSurface(pos mgl32.Vec2) mgl32.Vec3 {
	r2 := a.radius * a.radius
	d2 := pos.X()*pos.X() + pos.Y()*pos.Y()
	var z float32
	if d2 <= r2 {
		z = float32(math.Sqrt(float64(r2 - d2)))
	}
	return mgl32.Vec3{pos.X(), pos.Y(), z}
}

func (a *Arcball) orient(pos mgl32.Vec2) mgl32.Vec2 {
	if !a.invertY {
		pos[1] = -pos[1]
	}
	return pos
}

// rotationBetween returns the unit quaternion turning the sphere point under
// start onto the one under end.
func (a *Arcball) rotationBetween(start, end mgl32.Vec2) mgl32.Quat {
	from := a.MapToSurface(start)
	to := a.MapToSurface(end)

	lengths := from.Len() * to.Len()
	if lengths < epsilon {
		return mgl32.QuatIdent()
	}
	axis := from.Cross(to)
	if axis.Len() < epsilon {
		return mgl32.QuatIdent()
	}

	cos := mgl32.Clamp(from.Dot(to)/lengths, -1, 1)
	angle := float32(math.Acos(float64(cos)))
	return mgl32.QuatRotate(angle, axis.Normalize()).Normalize()
}

// ScreenToNDC maps window coordinates to [-1, 1] on both axes. Window y is not
// flipped here; the arcball does that itself unless built WithInvertY.
func ScreenToNDC(x, y float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	nx := (x/float64(width) - 0.5) * 2
	ny := (y/float64(height) - 0.5) * 2
	return mgl32.Vec2{float32(nx), float32(ny)}
}
