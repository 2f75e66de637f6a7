package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

var worldUp = mgl32.Vec3{0, 1, 0}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, worldUp)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, DefaultFOV, c.FOV())

	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, worldUp)
	assert.True(t, want.ApproxEqualThreshold(c.ViewMatrix(), delta))
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  Movement
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -5}},
		{Backward, mgl32.Vec3{0, 0, 5}},
		{Left, mgl32.Vec3{-5, 0, 0}},
		{Right, mgl32.Vec3{5, 0, 0}},
	}
	for _, tt := range tests {
		c := New(mgl32.Vec3{}, worldUp)
		c.Move(tt.dir, 1)
		assertVec3(t, tt.want, c.Position())
	}
}

func TestWithSpeedScalesMovement(t *testing.T) {
	c := New(mgl32.Vec3{}, worldUp, WithSpeed(2))
	c.Move(Forward, 0.5)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Position())
}

func TestLookClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, worldUp)
	c.Look(0, 10000, true)
	pitch, _ := c.Angles()
	assert.Equal(t, maxPitch, pitch)
	assert.False(t, c.Front().Cross(worldUp).Len() == 0)

	c.Look(0, -20000, true)
	pitch, _ = c.Angles()
	assert.Equal(t, -maxPitch, pitch)
}

func TestLookYawTurnsRight(t *testing.T) {
	c := New(mgl32.Vec3{}, worldUp)
	c.Look(900, 0, true) // 90 degrees at the default sensitivity
	_, yaw := c.Angles()
	assert.InDelta(t, 0, yaw, delta)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Front())
}

func TestCursorIgnoresFirstSample(t *testing.T) {
	c := New(mgl32.Vec3{}, worldUp)
	c.Cursor(400, 300)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front())

	c.Cursor(400, 200) // pointer moved up by 100px
	pitch, _ := c.Angles()
	assert.InDelta(t, 10, pitch, delta)
}

func TestAdjustFOVClamps(t *testing.T) {
	c := New(mgl32.Vec3{}, worldUp)
	c.AdjustFOV(10)
	assert.Equal(t, float32(35), c.FOV())
	c.AdjustFOV(100)
	assert.Equal(t, MinFOV, c.FOV())
	c.AdjustFOV(-100)
	assert.Equal(t, MaxFOV, c.FOV())
}

func TestReset(t *testing.T) {
	start := mgl32.Vec3{1, 2, 3}
	c := New(start, worldUp)
	c.Move(Forward, 3)
	c.Look(50, 50, true)
	c.AdjustFOV(20)

	c.Reset()
	assertVec3(t, start, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assert.Equal(t, DefaultFOV, c.FOV())
}

func TestWithAnglesClampsInitialPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, worldUp, WithAngles(120, 0))
	pitch, yaw := c.Angles()
	require.Equal(t, maxPitch, pitch)
	assert.Equal(t, float32(0), yaw)
}
