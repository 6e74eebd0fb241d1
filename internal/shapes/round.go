package shapes

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ring returns the unit circle point at segment i of segs in the XZ plane.
func ring(i, segs int) (float32, float32) {
	theta := 2 * math32.Pi * float32(i) / float32(segs)
	return math32.Cos(theta), math32.Sin(theta)
}

// disk appends a disk of radius r at height y. Facing up when up is true.
func (b *builder) disk(y, r float32, segs int, up bool) {
	n := mgl32.Vec3{0, -1, 0}
	if up {
		n = mgl32.Vec3{0, 1, 0}
	}
	center := b.vertex(mgl32.Vec3{0, y, 0}, n, mgl32.Vec2{0.5, 0.5})
	first := uint32(b.mesh.VertexCount())
	for i := 0; i <= segs; i++ {
		c, s := ring(i, segs)
		b.vertex(mgl32.Vec3{r * c, y, r * s}, n, mgl32.Vec2{0.5 + 0.5*c, 0.5 + 0.5*s})
	}
	for i := 0; i < segs; i++ {
		cur, next := first+uint32(i), first+uint32(i+1)
		if up {
			b.tri(center, next, cur)
		} else {
			b.tri(center, cur, next)
		}
	}
}

// buildCylinder spans y in [0,1] with bottom radius r0 and top radius r1.
// Parts are bottom, top and sides in that order.
func buildCylinder(b *builder, r0, r1 float32, segs int) {
	b.begin()
	b.disk(0, r0, segs, false)
	b.end(PartBottom)

	b.begin()
	b.disk(1, r1, segs, true)
	b.end(PartTop)

	// slope of the side normal for a tapered wall of height 1
	ny := r0 - r1
	b.begin()
	first := uint32(b.mesh.VertexCount())
	for i := 0; i <= segs; i++ {
		c, s := ring(i, segs)
		n := mgl32.Vec3{c, ny, s}.Normalize()
		u := float32(i) / float32(segs)
		b.vertex(mgl32.Vec3{r0 * c, 0, r0 * s}, n, mgl32.Vec2{u, 0})
		b.vertex(mgl32.Vec3{r1 * c, 1, r1 * s}, n, mgl32.Vec2{u, 1})
	}
	for i := 0; i < segs; i++ {
		bot := first + uint32(2*i)
		top := bot + 1
		nextBot := bot + 2
		nextTop := bot + 3
		b.tri(bot, top, nextBot)
		b.tri(nextBot, top, nextTop)
	}
	b.end(PartSides)
}

// buildCone has a unit-radius base at y=0 and its apex at y=1.
// Parts are bottom and sides.
func buildCone(b *builder, segs int) {
	b.begin()
	b.disk(0, 1, segs, false)
	b.end(PartBottom)

	b.begin()
	first := uint32(b.mesh.VertexCount())
	for i := 0; i <= segs; i++ {
		c, s := ring(i, segs)
		u := float32(i) / float32(segs)
		b.vertex(mgl32.Vec3{c, 0, s}, mgl32.Vec3{c, 1, s}.Normalize(), mgl32.Vec2{u, 0})
	}
	// one apex vertex per segment so each facet gets its own normal
	apexFirst := uint32(b.mesh.VertexCount())
	for i := 0; i < segs; i++ {
		mid := 2 * math32.Pi * (float32(i) + 0.5) / float32(segs)
		c, s := math32.Cos(mid), math32.Sin(mid)
		u := (float32(i) + 0.5) / float32(segs)
		b.vertex(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{c, 1, s}.Normalize(), mgl32.Vec2{u, 1})
	}
	for i := 0; i < segs; i++ {
		b.tri(first+uint32(i), apexFirst+uint32(i), first+uint32(i+1))
	}
	b.end(PartSides)
}

// buildSphere is a unit UV sphere centred on the origin.
func buildSphere(b *builder, stacks, slices int) {
	b.begin()
	first := uint32(b.mesh.VertexCount())
	for st := 0; st <= stacks; st++ {
		phi := math32.Pi * float32(st) / float32(stacks)
		y := math32.Cos(phi)
		r := math32.Sin(phi)
		for sl := 0; sl <= slices; sl++ {
			c, s := ring(sl, slices)
			p := mgl32.Vec3{r * c, y, r * s}
			n := p
			if n.Len() > 0 {
				n = n.Normalize()
			}
			b.vertex(p, n, mgl32.Vec2{float32(sl) / float32(slices), 1 - float32(st)/float32(stacks)})
		}
	}
	row := uint32(slices + 1)
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			a := first + uint32(st)*row + uint32(sl)
			below := a + row
			b.tri(a, a+1, below)
			b.tri(a+1, below+1, below)
		}
	}
	b.end(PartSides)
}

// buildTorus lies in the XY plane around the Z axis with ring radius radius
// and tube radius tube.
func buildTorus(b *builder, radius, tube float32, radialSegs, tubeSegs int) {
	b.begin()
	first := uint32(b.mesh.VertexCount())
	for j := 0; j <= tubeSegs; j++ {
		v := 2 * math32.Pi * float32(j) / float32(tubeSegs)
		for i := 0; i <= radialSegs; i++ {
			u := 2 * math32.Pi * float32(i) / float32(radialSegs)
			center := mgl32.Vec3{radius * math32.Cos(u), radius * math32.Sin(u), 0}
			p := mgl32.Vec3{
				(radius + tube*math32.Cos(v)) * math32.Cos(u),
				(radius + tube*math32.Cos(v)) * math32.Sin(u),
				tube * math32.Sin(v),
			}
			b.vertex(p, p.Sub(center).Normalize(), mgl32.Vec2{float32(i) / float32(radialSegs), float32(j) / float32(tubeSegs)})
		}
	}
	row := uint32(radialSegs + 1)
	for j := 1; j <= tubeSegs; j++ {
		for i := 1; i <= radialSegs; i++ {
			a := first + row*uint32(j) + uint32(i-1)
			bb := first + row*uint32(j-1) + uint32(i-1)
			c := first + row*uint32(j-1) + uint32(i)
			d := first + row*uint32(j) + uint32(i)
			b.tri(a, bb, d)
			b.tri(bb, c, d)
		}
	}
	b.end(PartSides)
}
