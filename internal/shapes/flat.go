package shapes

import "github.com/go-gl/mathgl/mgl32"

// buildPlane spans [-1,1] in X and Z at y=0, facing +Y. v=1 is at -Z.
func buildPlane(b *builder) {
	n := mgl32.Vec3{0, 1, 0}
	b.begin()
	i0 := b.vertex(mgl32.Vec3{-1, 0, -1}, n, mgl32.Vec2{0, 1})
	i1 := b.vertex(mgl32.Vec3{-1, 0, 1}, n, mgl32.Vec2{0, 0})
	i2 := b.vertex(mgl32.Vec3{1, 0, 1}, n, mgl32.Vec2{1, 0})
	i3 := b.vertex(mgl32.Vec3{1, 0, -1}, n, mgl32.Vec2{1, 1})
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
	b.end(PartTop)
}

// boxFaces lists each face of the unit box as (part, normal, u axis, v axis)
// with u x v == normal, and v pointing up on the vertical faces.
var boxFaces = []struct {
	part    Part
	n, u, v mgl32.Vec3
}{
	{PartBack, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{PartBottom, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{PartLeft, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{PartRight, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{PartTop, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{PartFront, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// buildBox is the unit cube centred on the origin, one part per face.
func buildBox(b *builder) {
	for _, f := range boxFaces {
		c := f.n.Mul(0.5)
		u := f.u.Mul(0.5)
		v := f.v.Mul(0.5)
		b.begin()
		b.quad(
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		)
		b.end(f.part)
	}
}

// buildPrism is a triangular prism: the triangle (-.5,-.5) (.5,-.5) (0,.5)
// in XY extruded over z in [-.5,.5].
func buildPrism(b *builder) {
	lf, rf, tf := mgl32.Vec3{-0.5, -0.5, 0.5}, mgl32.Vec3{0.5, -0.5, 0.5}, mgl32.Vec3{0, 0.5, 0.5}
	lb, rb, tb := mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, -0.5, -0.5}, mgl32.Vec3{0, 0.5, -0.5}

	b.begin()
	b.flatTri(lf, rf, tf, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})
	b.end(PartFront)

	b.begin()
	b.flatTri(rb, lb, tb, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})
	b.end(PartBack)

	b.begin()
	b.quad(lb, rb, rf, lf)
	b.quad(rf, rb, tb, tf)
	b.quad(tf, tb, lb, lf)
	b.end(PartSides)
}

// buildPyramid3 has a triangular base at y=-.5 and its apex at (0,.5,0).
func buildPyramid3(b *builder) {
	p0, p1, p2 := mgl32.Vec3{-0.5, -0.5, 0.5}, mgl32.Vec3{0.5, -0.5, 0.5}, mgl32.Vec3{0, -0.5, -0.5}
	apex := mgl32.Vec3{0, 0.5, 0}
	uvL, uvR, uvT := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1}

	b.begin()
	b.flatTri(p0, p1, apex, uvL, uvR, uvT)
	b.flatTri(p1, p2, apex, uvL, uvR, uvT)
	b.flatTri(p2, p0, apex, uvL, uvR, uvT)
	b.end(PartSides)

	b.begin()
	b.flatTri(p0, p2, p1, mgl32.Vec2{0, 1}, mgl32.Vec2{0.5, 0}, mgl32.Vec2{1, 1})
	b.end(PartBottom)
}

// buildPyramid4 has a square base at y=-.5 and its apex at (0,.5,0).
func buildPyramid4(b *builder) {
	a := mgl32.Vec3{-0.5, -0.5, -0.5}
	bb := mgl32.Vec3{0.5, -0.5, -0.5}
	c := mgl32.Vec3{0.5, -0.5, 0.5}
	d := mgl32.Vec3{-0.5, -0.5, 0.5}
	apex := mgl32.Vec3{0, 0.5, 0}
	uvL, uvR, uvT := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1}

	b.begin()
	b.flatTri(d, c, apex, uvL, uvR, uvT)
	b.flatTri(c, bb, apex, uvL, uvR, uvT)
	b.flatTri(bb, a, apex, uvL, uvR, uvT)
	b.flatTri(a, d, apex, uvL, uvR, uvT)
	b.end(PartSides)

	b.begin()
	b.quad(a, bb, c, d)
	b.end(PartBottom)
}
