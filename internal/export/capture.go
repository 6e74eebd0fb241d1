// Package export records the scene's draw sequence without a GL context and
// writes it out as glTF.
package export

import (
	"fmt"

	"tabletop/internal/graphics"
	"tabletop/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// Draw is the uniform state in effect for one DrawShape call.
type Draw struct {
	Kind  shapes.Kind
	Parts []shapes.Part

	Model    mgl32.Mat4
	Textured bool
	Slot     int32
	UVScale  mgl32.Vec2
	Color    mgl32.Vec4

	HasMaterial bool
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	Shininess   float32
}

// Capture stands in for the shader, texture and mesh backends and records
// one Draw per draw call.
type Capture struct {
	state   Draw
	meshes  map[shapes.Kind]*shapes.Mesh
	draws   []Draw
	handles uint32
}

func NewCapture() *Capture {
	return &Capture{
		meshes: make(map[shapes.Kind]*shapes.Mesh),
		state:  Draw{Model: mgl32.Ident4(), UVScale: mgl32.Vec2{1, 1}},
	}
}

func (c *Capture) SetBool(name string, value bool) {
	if name == "bUseTexture" {
		c.state.Textured = value
	}
}

func (c *Capture) SetInt(name string, value int32) {}

func (c *Capture) SetFloat(name string, value float32) {
	if name == "material.shininess" {
		c.state.Shininess = value
		c.state.HasMaterial = true
	}
}

func (c *Capture) SetVec2(name string, value mgl32.Vec2) {
	if name == "UVscale" {
		c.state.UVScale = value
	}
}

func (c *Capture) SetVec3(name string, value mgl32.Vec3) {
	switch name {
	case "material.diffuseColor":
		c.state.Diffuse = value
		c.state.HasMaterial = true
	case "material.specularColor":
		c.state.Specular = value
		c.state.HasMaterial = true
	}
}

func (c *Capture) SetVec4(name string, value mgl32.Vec4) {
	if name == "objectColor" {
		c.state.Color = value
	}
}

func (c *Capture) SetMat4(name string, value mgl32.Mat4) {
	if name == "model" {
		c.state.Model = value
	}
}

func (c *Capture) SetSampler2D(name string, unit int32) {
	if name == "objectTexture" {
		c.state.Slot = unit
	}
}

// Upload hands out handles; pixels stay on disk and are referenced by path.
func (c *Capture) Upload(img *graphics.ImageData) (uint32, error) {
	c.handles++
	return c.handles, nil
}

func (c *Capture) Bind(unit int, handle uint32) {}

func (c *Capture) Delete(handles []uint32) {}

func (c *Capture) LoadShape(kind shapes.Kind) error {
	if _, ok := c.meshes[kind]; ok {
		return nil
	}
	mesh, err := shapes.Generate(kind)
	if err != nil {
		return fmt.Errorf("generate %s: %w", kind, err)
	}
	c.meshes[kind] = mesh
	return nil
}

// DrawShape records the current state. Material values only carry over to
// the draw they were pushed for.
func (c *Capture) DrawShape(kind shapes.Kind, parts ...shapes.Part) {
	d := c.state
	d.Kind = kind
	d.Parts = append([]shapes.Part(nil), parts...)
	c.draws = append(c.draws, d)

	c.state.HasMaterial = false
}

func (c *Capture) Dispose() {
	clear(c.meshes)
}

// Draws returns the recorded draws in order.
func (c *Capture) Draws() []Draw {
	return append([]Draw(nil), c.draws...)
}

// Mesh returns the geometry loaded for kind.
func (c *Capture) Mesh(kind shapes.Kind) (*shapes.Mesh, bool) {
	m, ok := c.meshes[kind]
	return m, ok
}
