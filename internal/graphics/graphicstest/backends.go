package graphicstest

import (
	"fmt"

	"tabletop/internal/graphics"
	"tabletop/internal/shapes"
)

// Textures hands out sequential handles and records binds and deletes.
type Textures struct {
	Uploaded []*graphics.ImageData
	Binds    map[int]uint32
	Deleted  []uint32
	next     uint32
}

func NewTextures() *Textures {
	return &Textures{Binds: make(map[int]uint32), next: 100}
}

func (t *Textures) Upload(img *graphics.ImageData) (uint32, error) {
	t.Uploaded = append(t.Uploaded, img)
	t.next++
	return t.next, nil
}

func (t *Textures) Bind(unit int, handle uint32) {
	t.Binds[unit] = handle
}

func (t *Textures) Delete(handles []uint32) {
	t.Deleted = append(t.Deleted, handles...)
}

// Draw is one recorded DrawShape call.
type Draw struct {
	Kind  shapes.Kind
	Parts []shapes.Part
}

// Meshes records loads and draws. Drawing a kind that was never loaded is
// recorded in Violations.
type Meshes struct {
	Loaded     map[shapes.Kind]bool
	Draws      []Draw
	Fail       map[shapes.Kind]bool
	Violations []string
	Disposed   bool
}

func NewMeshes() *Meshes {
	return &Meshes{Loaded: make(map[shapes.Kind]bool), Fail: make(map[shapes.Kind]bool)}
}

func (m *Meshes) LoadShape(kind shapes.Kind) error {
	if m.Fail[kind] {
		return fmt.Errorf("load %s failed", kind)
	}
	m.Loaded[kind] = true
	return nil
}

func (m *Meshes) DrawShape(kind shapes.Kind, parts ...shapes.Part) {
	if !m.Loaded[kind] {
		m.Violations = append(m.Violations, fmt.Sprintf("draw of unloaded %s", kind))
	}
	m.Draws = append(m.Draws, Draw{kind, parts})
}

func (m *Meshes) Dispose() {
	clear(m.Loaded)
	m.Disposed = true
}
