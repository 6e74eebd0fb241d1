// Package shapes generates the CPU-side geometry for the basic solids the
// scene is assembled from. Every mesh is interleaved position(3) normal(3)
// uv(2) with a uint32 index buffer, and records the index range of each
// independently drawable part (cap, side, box face).
package shapes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved vertex stride in floats.
const FloatsPerVertex = 8

// Kind identifies one of the basic solids.
type Kind int

const (
	Plane Kind = iota
	Box
	Cone
	Cylinder
	TaperedCylinder
	Torus
	Sphere
	Prism
	Pyramid3
	Pyramid4
	KindCount
)

var kindNames = [KindCount]string{
	Plane:           "plane",
	Box:             "box",
	Cone:            "cone",
	Cylinder:        "cylinder",
	TaperedCylinder: "tapered-cylinder",
	Torus:           "torus",
	Sphere:          "sphere",
	Prism:           "prism",
	Pyramid3:        "pyramid3",
	Pyramid4:        "pyramid4",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Part names an independently drawable index range of a mesh.
type Part int

const (
	PartSides Part = iota
	PartTop
	PartBottom
	PartFront
	PartBack
	PartLeft
	PartRight
)

var partNames = map[Part]string{
	PartSides:  "sides",
	PartTop:    "top",
	PartBottom: "bottom",
	PartFront:  "front",
	PartBack:   "back",
	PartLeft:   "left",
	PartRight:  "right",
}

func (p Part) String() string {
	if n, ok := partNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// Range is a span of the index buffer, in indices.
type Range struct {
	Offset int
	Count  int
}

// Mesh is generated geometry ready for upload.
type Mesh struct {
	Kind     Kind
	Vertices []float32
	Indices  []uint32
	Parts    map[Part]Range
	order    []Part
}

// VertexCount returns the number of interleaved vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Part returns the index range of p.
func (m *Mesh) Part(p Part) (Range, bool) {
	r, ok := m.Parts[p]
	return r, ok
}

// PartOrder lists the parts in index buffer order.
func (m *Mesh) PartOrder() []Part {
	return append([]Part(nil), m.order...)
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	o := i*FloatsPerVertex + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// UV returns the texture coordinate of vertex i.
func (m *Mesh) UV(i int) mgl32.Vec2 {
	o := i*FloatsPerVertex + 6
	return mgl32.Vec2{m.Vertices[o], m.Vertices[o+1]}
}

// Generate builds the mesh for k.
func Generate(k Kind) (*Mesh, error) {
	b := newBuilder(k)
	switch k {
	case Plane:
		buildPlane(b)
	case Box:
		buildBox(b)
	case Cone:
		buildCone(b, defaultSegments)
	case Cylinder:
		buildCylinder(b, 1, 1, defaultSegments)
	case TaperedCylinder:
		buildCylinder(b, 1, 0.5, defaultSegments)
	case Torus:
		buildTorus(b, 1, 0.1, defaultSegments, 24)
	case Sphere:
		buildSphere(b, defaultSegments/2, defaultSegments)
	case Prism:
		buildPrism(b)
	case Pyramid3:
		buildPyramid3(b)
	case Pyramid4:
		buildPyramid4(b)
	default:
		return nil, fmt.Errorf("unknown shape kind %d", int(k))
	}
	return b.mesh, nil
}

const defaultSegments = 36

type builder struct {
	mesh      *Mesh
	partStart int
}

func newBuilder(k Kind) *builder {
	return &builder{mesh: &Mesh{Kind: k, Parts: make(map[Part]Range)}}
}

func (b *builder) vertex(p, n mgl32.Vec3, uv mgl32.Vec2) uint32 {
	idx := uint32(b.mesh.VertexCount())
	b.mesh.Vertices = append(b.mesh.Vertices, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	return idx
}

func (b *builder) tri(i0, i1, i2 uint32) {
	b.mesh.Indices = append(b.mesh.Indices, i0, i1, i2)
}

func (b *builder) begin() {
	b.partStart = len(b.mesh.Indices)
}

func (b *builder) end(p Part) {
	b.mesh.Parts[p] = Range{Offset: b.partStart, Count: len(b.mesh.Indices) - b.partStart}
	b.mesh.order = append(b.mesh.order, p)
}

// quad appends a flat quad with corners in counter-clockwise order seen from
// the front side.
func (b *builder) quad(c0, c1, c2, c3 mgl32.Vec3) {
	n := c1.Sub(c0).Cross(c2.Sub(c0)).Normalize()
	i0 := b.vertex(c0, n, mgl32.Vec2{0, 0})
	i1 := b.vertex(c1, n, mgl32.Vec2{1, 0})
	i2 := b.vertex(c2, n, mgl32.Vec2{1, 1})
	i3 := b.vertex(c3, n, mgl32.Vec2{0, 1})
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

// flatTri appends a triangle with a face normal derived from its winding.
func (b *builder) flatTri(c0, c1, c2 mgl32.Vec3, uv0, uv1, uv2 mgl32.Vec2) {
	n := c1.Sub(c0).Cross(c2.Sub(c0)).Normalize()
	b.tri(b.vertex(c0, n, uv0), b.vertex(c1, n, uv1), b.vertex(c2, n, uv2))
}
