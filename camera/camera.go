// Package camera provides the two viewpoints used by the demos: a free-fly
// camera steered by keyboard and mouse look, and an orbital camera built on
// an arcball.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Field of view limits shared by both cameras, in degrees.
const (
	DefaultFOV float32 = 45
	MinFOV     float32 = 1
	MaxFOV     float32 = 45
)

const (
	DefaultPitch       float32 = 0
	DefaultYaw         float32 = -90
	DefaultSpeed       float32 = 5
	DefaultSensitivity float32 = 0.1

	// Looking straight up or down makes front parallel to worldUp.
	maxPitch float32 = 89
)

// Movement is a direction for Camera.Move.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Camera is a free-fly camera described by Euler angles.
type Camera struct {
	initialPosition mgl32.Vec3
	position        mgl32.Vec3
	front           mgl32.Vec3
	right           mgl32.Vec3
	up              mgl32.Vec3
	worldUp         mgl32.Vec3

	pitch, yaw  float32
	speed       float32
	sensitivity float32
	fov         float32

	// cursor state for Cursor
	lastX, lastY float64
	firstCursor  bool
}

// Option configures a Camera.
type Option func(*Camera)

// WithAngles sets the initial pitch and yaw in degrees.
func WithAngles(pitch, yaw float32) Option {
	return func(c *Camera) {
		c.pitch, c.yaw = pitch, yaw
	}
}

// WithSpeed sets the movement speed in units per second.
func WithSpeed(speed float32) Option {
	return func(c *Camera) {
		if speed > 0 {
			c.speed = speed
		}
	}
}

// WithSensitivity sets the look sensitivity in degrees per pixel.
func WithSensitivity(s float32) Option {
	return func(c *Camera) {
		if s > 0 {
			c.sensitivity = s
		}
	}
}

// New returns a camera at position looking down -Z by default.
func New(position, worldUp mgl32.Vec3, opts ...Option) *Camera {
	c := &Camera{
		initialPosition: position,
		position:        position,
		worldUp:         worldUp,
		pitch:           DefaultPitch,
		yaw:             DefaultYaw,
		speed:           DefaultSpeed,
		sensitivity:     DefaultSensitivity,
		fov:             DefaultFOV,
		firstCursor:     true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pitch = mgl32.Clamp(c.pitch, -maxPitch, maxPitch)
	c.updateVectors()
	return c
}

// Move translates the camera for dt seconds in the given direction.
func (c *Camera) Move(dir Movement, dt float32) {
	velocity := c.speed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// Look turns the camera by pointer offsets in pixels.
func (c *Camera) Look(dx, dy float32, constrainPitch bool) {
	c.yaw += dx * c.sensitivity
	c.pitch += dy * c.sensitivity
	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, -maxPitch, maxPitch)
	}
	c.updateVectors()
}

// Cursor feeds an absolute cursor position. The first sample only records
// the position so the view does not jump when the pointer enters the window.
func (c *Camera) Cursor(x, y float64) {
	if c.firstCursor {
		c.lastX, c.lastY = x, y
		c.firstCursor = false
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(c.lastY - y) // window y grows downwards
	c.lastX, c.lastY = x, y
	c.Look(dx, dy, true)
}

// AdjustFOV zooms by offset degrees; positive offsets zoom in.
func (c *Camera) AdjustFOV(offset float32) {
	c.fov = clampFOV(c.fov - offset)
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float32 { return c.fov }

func (c *Camera) Position() mgl32.Vec3 { return c.position }

func (c *Camera) Front() mgl32.Vec3 { return c.front }

func (c *Camera) Up() mgl32.Vec3 { return c.up }

// Angles returns pitch and yaw in degrees.
func (c *Camera) Angles() (pitch, yaw float32) { return c.pitch, c.yaw }

// Reset restores the initial position, default angles and field of view.
func (c *Camera) Reset() {
	c.position = c.initialPosition
	c.pitch = DefaultPitch
	c.yaw = DefaultYaw
	c.fov = DefaultFOV
	c.firstCursor = true
	c.updateVectors()
}

func (c *Camera) updateVectors() {
	pitch := float64(mgl32.DegToRad(c.pitch))
	yaw := float64(mgl32.DegToRad(c.yaw))
	c.front = mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clampFOV(fov float32) float32 {
	return mgl32.Clamp(fov, MinFOV, MaxFOV)
}
