package arcball

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func assertQuat(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, delta), "want %v, got %v", want, got)
}

func TestNewStartsAtIdentity(t *testing.T) {
	a := New()
	assert.False(t, a.IsRotating())
	assert.Equal(t, DefaultRadius, a.Radius())
	assertQuat(t, mgl32.QuatIdent(), a.Orientation())
	assert.True(t, mgl32.Ident4().ApproxEqual(a.RotationMatrix()))
}

func TestWithRadiusIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultRadius, New(WithRadius(0)).Radius())
	assert.Equal(t, DefaultRadius, New(WithRadius(-3)).Radius())
	assert.Equal(t, float32(2.5), New(WithRadius(2.5)).Radius())
}

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		name          string
		x, y          float64
		width, height int
		want          mgl32.Vec2
	}{
		{"centre", 400, 300, 800, 600, mgl32.Vec2{0, 0}},
		{"top left", 0, 0, 800, 600, mgl32.Vec2{-1, -1}},
		{"bottom right", 800, 600, 800, 600, mgl32.Vec2{1, 1}},
		{"quarter", 200, 450, 800, 600, mgl32.Vec2{-0.5, 0.5}},
		{"zero width", 10, 10, 0, 600, mgl32.Vec2{0, 0}},
		{"negative height", 10, 10, 800, -1, mgl32.Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToNDC(tt.x, tt.y, tt.width, tt.height)
			assert.InDelta(t, tt.want.X(), got.X(), delta)
			assert.InDelta(t, tt.want.Y(), got.Y(), delta)
		})
	}
}

func TestMapToSurface(t *testing.T) {
	a := New()
	assertVec3(t, mgl32.Vec3{0, 0, 1}, a.MapToSurface(mgl32.Vec2{0, 0}))
	assertVec3(t, mgl32.Vec3{0.6, 0, 0.8}, a.MapToSurface(mgl32.Vec2{0.6, 0}))
	assertVec3(t, mgl32.Vec3{1, 0, 0}, a.MapToSurface(mgl32.Vec2{1, 0}))
	assertVec3(t, mgl32.Vec3{2, 0, 0}, a.MapToSurface(mgl32.Vec2{2, 0}))

	big := New(WithRadius(2))
	assertVec3(t, mgl32.Vec3{0, 0, 2}, big.MapToSurface(mgl32.Vec2{0, 0}))
}

func TestDragRightRotatesAboutY(t *testing.T) {
	a := New()
	a.BeginRotation(mgl32.Vec2{0, 0})
	require.True(t, a.IsRotating())
	a.Rotate(mgl32.Vec2{0.5, 0})

	want := mgl32.QuatRotate(math.Pi/6, mgl32.Vec3{0, 1, 0})
	assertQuat(t, want, a.Orientation())
	// The point under the pointer follows it.
	assertVec3(t, a.MapToSurface(mgl32.Vec2{0.5, 0}), a.Orientation().Rotate(mgl32.Vec3{0, 0, 1}))
}

func TestWindowYIsFlippedUnlessInverted(t *testing.T) {
	down := mgl32.Vec2{0, 0.5}

	a := New()
	a.BeginRotation(mgl32.Vec2{0, 0})
	a.Rotate(down)
	assertVec3(t, mgl32.Vec3{0, -0.5, float32(math.Sqrt(0.75))}, a.Orientation().Rotate(mgl32.Vec3{0, 0, 1}))

	inv := New(WithInvertY(true))
	inv.BeginRotation(mgl32.Vec2{0, 0})
	inv.Rotate(down)
	assertVec3(t, mgl32.Vec3{0, 0.5, float32(math.Sqrt(0.75))}, inv.Orientation().Rotate(mgl32.Vec3{0, 0, 1}))
}

func TestEndRotationAccumulates(t *testing.T) {
	a := New()
	for i := 0; i < 2; i++ {
		a.BeginRotation(mgl32.Vec2{0, 0})
		a.Rotate(mgl32.Vec2{0.5, 0})
		a.EndRotation()
		assert.False(t, a.IsRotating())
	}

	want := mgl32.QuatRotate(math.Pi/3, mgl32.Vec3{0, 1, 0})
	assertQuat(t, want, a.Orientation())
	assert.True(t, want.Mat4().ApproxEqualThreshold(a.RotationMatrix(), delta))
}

func TestNewDragStartsFromAccumulatedOrientation(t *testing.T) {
	a := New()
	a.BeginRotation(mgl32.Vec2{0, 0})
	a.Rotate(mgl32.Vec2{0.5, 0})
	a.EndRotation()
	before := a.Orientation()

	// Beginning a drag alone must not move anything.
	a.BeginRotation(mgl32.Vec2{0.3, 0.3})
	assertQuat(t, before, a.Orientation())
}

func TestRotateWithoutDragIsIgnored(t *testing.T) {
	a := New()
	a.Rotate(mgl32.Vec2{0.5, 0.5})
	a.EndRotation()
	assertQuat(t, mgl32.QuatIdent(), a.Orientation())
}

func TestDegenerateDragsStayFinite(t *testing.T) {
	tests := []struct {
		name       string
		start, end mgl32.Vec2
	}{
		{"no movement", mgl32.Vec2{0.2, 0.1}, mgl32.Vec2{0.2, 0.1}},
		{"opposite rim points", mgl32.Vec2{1.5, 0}, mgl32.Vec2{-1.5, 0}},
		{"same direction outside", mgl32.Vec2{2, 0}, mgl32.Vec2{3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			a.BeginRotation(tt.start)
			a.Rotate(tt.end)
			q := a.Orientation()
			assert.False(t, math.IsNaN(float64(q.W)))
			assertQuat(t, mgl32.QuatIdent(), q)
		})
	}
}

func TestRotationsAreUnitLength(t *testing.T) {
	a := New()
	points := []mgl32.Vec2{{0.9, -0.2}, {-0.4, 0.7}, {2, 0}, {0, 2}, {-0.1, -0.95}}
	prev := mgl32.Vec2{0, 0}
	for _, p := range points {
		a.BeginRotation(prev)
		a.Rotate(p)
		assert.InDelta(t, 1, a.Orientation().Len(), delta)
		a.EndRotation()
		prev = p
	}
	assert.InDelta(t, 1, a.Orientation().Len(), delta)
}

func TestReset(t *testing.T) {
	a := New()
	a.BeginRotation(mgl32.Vec2{0, 0})
	a.Rotate(mgl32.Vec2{0.5, 0.5})
	a.Reset()
	assert.False(t, a.IsRotating())
	assertQuat(t, mgl32.QuatIdent(), a.Orientation())
}
