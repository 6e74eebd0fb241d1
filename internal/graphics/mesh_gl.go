package graphics

import (
	"fmt"
	"log"

	"tabletop/internal/shapes"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type glMesh struct {
	vao, vbo, ebo uint32
	mesh          *shapes.Mesh
}

// GLMeshes owns one vertex array per loaded shape kind.
type GLMeshes struct {
	meshes map[shapes.Kind]*glMesh
}

func NewGLMeshes() *GLMeshes {
	return &GLMeshes{meshes: make(map[shapes.Kind]*glMesh)}
}

// LoadShape generates and uploads the geometry for kind. Loading a kind
// twice is a no-op.
func (m *GLMeshes) LoadShape(kind shapes.Kind) error {
	if _, ok := m.meshes[kind]; ok {
		return nil
	}
	mesh, err := shapes.Generate(kind)
	if err != nil {
		return fmt.Errorf("generate %s: %w", kind, err)
	}

	g := &glMesh{mesh: mesh}
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)
	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(shapes.FloatsPerVertex * 4)
	// Position attribute (location = 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	// Normal attribute (location = 1)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	// Texture coordinate attribute (location = 2)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	CheckError("mesh upload " + kind.String())

	m.meshes[kind] = g
	return nil
}

// Loaded reports whether kind has been uploaded.
func (m *GLMeshes) Loaded(kind shapes.Kind) bool {
	_, ok := m.meshes[kind]
	return ok
}

// DrawShape draws the given parts of kind, or the whole mesh when no part is
// named. Parts the mesh does not have are skipped.
func (m *GLMeshes) DrawShape(kind shapes.Kind, parts ...shapes.Part) {
	g, ok := m.meshes[kind]
	if !ok {
		log.Printf("draw of unloaded mesh %s", kind)
		return
	}
	gl.BindVertexArray(g.vao)
	if len(parts) == 0 {
		gl.DrawElements(gl.TRIANGLES, int32(len(g.mesh.Indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
	for _, p := range parts {
		r, ok := g.mesh.Part(p)
		if !ok {
			continue
		}
		gl.DrawElements(gl.TRIANGLES, int32(r.Count), gl.UNSIGNED_INT, gl.PtrOffset(r.Offset*4))
	}
	gl.BindVertexArray(0)
}

// Dispose deletes every uploaded mesh.
func (m *GLMeshes) Dispose() {
	for kind, g := range m.meshes {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		delete(m.meshes, kind)
	}
}
