package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func apply(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestModelMatrixOrder(t *testing.T) {
	// scale x2, then rotate 90 about X, then 90 about Z, then translate
	m := ModelMatrix(mgl32.Vec3{2, 1, 1}, 90, 0, 90, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{})

	cases := []struct {
		in, want mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 4, 3}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 2, 4}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{2, 2, 3}},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 3}},
	}
	for _, tc := range cases {
		got := apply(m, tc.in)
		assert.True(t, tc.want.ApproxEqualThreshold(got, 1e-5), "%v: want %v, got %v", tc.in, tc.want, got)
	}
}

func TestModelMatrixOffset(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	got := apply(m, mgl32.Vec3{1, 0, 0})
	assert.True(t, mgl32.Vec3{1, 0, -1}.ApproxEqualThreshold(got, 1e-5), "got %v", got)
}

func TestModelMatrixIdentity(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{}, mgl32.Vec3{})
	assert.True(t, mgl32.Ident4().ApproxEqual(m))
}
