package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/glsandbox/arcball"
)

const (
	// TranslationSpeed scales a dolly offset in NDC units to world units.
	TranslationSpeed float32 = 7

	// minDistance keeps the dolly from reaching the target.
	minDistance float32 = 0.05

	degenerateAxis float32 = 1e-6
)

// Orbital looks at a fixed target. Dragging with the embedded arcball rotates
// the scene about the target, Translate dollies along the line of sight.
type Orbital struct {
	*arcball.Arcball

	initialPosition mgl32.Vec3
	position        mgl32.Vec3
	target          mgl32.Vec3
	worldUp         mgl32.Vec3
	front           mgl32.Vec3 // unit vector from target to position
	right           mgl32.Vec3
	up              mgl32.Vec3
	fov             float32

	translating bool
	lastY       float32
	haveLastY   bool
}

// NewOrbital returns an orbital camera at position looking at target.
// Arcball options are passed through to the embedded arcball.
func NewOrbital(position, target, worldUp mgl32.Vec3, opts ...arcball.Option) *Orbital {
	o := &Orbital{
		Arcball:         arcball.New(opts...),
		initialPosition: position,
		position:        position,
		target:          target,
		worldUp:         worldUp,
		fov:             DefaultFOV,
	}
	o.updateVectors()
	return o
}

// NewDefaultOrbital returns an orbital camera on +Z looking at the origin.
func NewDefaultOrbital() *Orbital {
	return NewOrbital(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// BeginTranslation starts a dolly drag.
func (o *Orbital) BeginTranslation() {
	o.translating = true
	o.haveLastY = false
}

// Translate dollies by offset; positive offsets move towards the target.
func (o *Orbital) Translate(offset float32) {
	velocity := -offset * TranslationSpeed
	next := o.position.Add(o.front.Mul(velocity))

	// Stop short of the target instead of passing through it.
	if next.Sub(o.target).Dot(o.front) < minDistance {
		next = o.target.Add(o.front.Mul(minDistance))
	}
	o.position = next
}

// EndTranslation finishes a dolly drag.
func (o *Orbital) EndTranslation() {
	o.translating = false
	o.haveLastY = false
}

// IsTranslating reports whether a dolly drag is in progress.
func (o *Orbital) IsTranslating() bool {
	return o.translating
}

// Drag feeds a pointer position in NDC to whichever drag is active. While
// dollying, upward pointer motion moves towards the target.
func (o *Orbital) Drag(pos mgl32.Vec2) {
	switch {
	case o.IsRotating():
		o.Rotate(pos)
	case o.translating:
		if !o.haveLastY {
			o.lastY = pos.Y()
			o.haveLastY = true
			return
		}
		offset := o.lastY - pos.Y() // NDC y from the window grows downwards
		o.lastY = pos.Y()
		o.Translate(offset)
	}
}

// AdjustFOV zooms by offset degrees; positive offsets zoom in.
func (o *Orbital) AdjustFOV(offset float32) {
	o.fov = clampFOV(o.fov - offset)
}

// ViewMatrix returns the look-at transform followed by the arcball rotation
// pivoted on the target, so the scene turns about the target.
func (o *Orbital) ViewMatrix() mgl32.Mat4 {
	pivot := mgl32.Translate3D(o.target.X(), o.target.Y(), o.target.Z()).
		Mul4(o.RotationMatrix()).
		Mul4(mgl32.Translate3D(-o.target.X(), -o.target.Y(), -o.target.Z()))
	return mgl32.LookAtV(o.position, o.target, o.up).Mul4(pivot)
}

func (o *Orbital) FOV() float32 { return o.fov }

func (o *Orbital) Position() mgl32.Vec3 { return o.position }

func (o *Orbital) Target() mgl32.Vec3 { return o.target }

// Distance returns how far the camera is from its target.
func (o *Orbital) Distance() float32 {
	return o.position.Sub(o.target).Len()
}

// Reset restores the initial position, field of view and orientation.
func (o *Orbital) Reset() {
	o.Arcball.Reset()
	o.position = o.initialPosition
	o.fov = DefaultFOV
	o.translating = false
	o.haveLastY = false
	o.updateVectors()
}

func (o *Orbital) updateVectors() {
	o.front = o.position.Sub(o.target).Normalize()
	right := o.front.Cross(o.worldUp)
	if right.Len() < degenerateAxis {
		// Looking along worldUp leaves no horizon; any axis across the line
		// of sight will do.
		right = o.front.Cross(mgl32.Vec3{0, 0, 1})
		if right.Len() < degenerateAxis {
			right = mgl32.Vec3{1, 0, 0}
		}
	}
	o.right = right.Normalize()
	o.up = o.right.Cross(o.front).Normalize()
}
