// Package scene loads the still life's assets and issues its draw calls.
package scene

import (
	"log"
	"path/filepath"

	"tabletop/internal/graphics"
	"tabletop/internal/graphics/renderer"
	"tabletop/internal/profiling"
	"tabletop/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshBackend uploads and draws shape geometry.
type MeshBackend interface {
	LoadShape(kind shapes.Kind) error
	DrawShape(kind shapes.Kind, parts ...shapes.Part)
	Dispose()
}

// Manager owns the scene's textures, materials and meshes and draws the
// fixed layout through a Uniforms sink.
type Manager struct {
	uniforms    graphics.Uniforms
	textures    *TextureRegistry
	materials   MaterialRegistry
	meshes      MeshBackend
	loaded      map[shapes.Kind]bool
	lights      []PointLight
	layout      []Object
	texturesDir string

	prepared bool
	warned   bool
}

func NewManager(u graphics.Uniforms, textures TextureBackend, meshes MeshBackend, texturesDir string) *Manager {
	return &Manager{
		uniforms:    u,
		textures:    NewTextureRegistry(textures),
		meshes:      meshes,
		loaded:      make(map[shapes.Kind]bool),
		layout:      Layout(),
		texturesDir: texturesDir,
	}
}

// Init implements renderer.Renderable.
func (m *Manager) Init() error {
	return m.Prepare()
}

// Prepare defines materials, pushes the lights, loads and binds textures
// and uploads meshes. Failed assets are logged and skipped. Calling it
// again is a no-op.
func (m *Manager) Prepare() error {
	if m.prepared {
		return nil
	}
	defineMaterials(&m.materials)

	m.lights = Lights()
	PushLights(m.uniforms, m.lights)

	for _, t := range Textures {
		path := filepath.Join(m.texturesDir, t.File)
		if err := m.textures.Load(path, t.Tag); err != nil {
			log.Printf("texture %q not loaded: %v", t.Tag, err)
		}
	}
	bound := m.textures.BindAll()
	log.Printf("bound %d/%d textures", bound, len(Textures))

	for _, k := range Meshes {
		if err := m.meshes.LoadShape(k); err != nil {
			log.Printf("mesh %s not loaded: %v", k, err)
			continue
		}
		m.loaded[k] = true
	}

	m.prepared = true
	return nil
}

// Prepared reports whether Prepare has run.
func (m *Manager) Prepared() bool {
	return m.prepared
}

// Render implements renderer.Renderable.
func (m *Manager) Render(ctx renderer.RenderContext) {
	defer profiling.Track("scene.render")()
	m.RenderScene()
}

// RenderScene draws every object of the layout in order.
func (m *Manager) RenderScene() {
	if !m.prepared {
		if !m.warned {
			log.Printf("scene render before prepare, skipping")
			m.warned = true
		}
		return
	}
	for _, o := range m.layout {
		m.DrawObject(o)
	}
}

// DrawObject issues the uniforms and draw call for one object.
func (m *Manager) DrawObject(o Object) {
	if o.Textured() {
		m.DrawTextured(o)
	} else {
		m.DrawColored(o)
	}
}

// DrawTextured samples o.Texture with o.UV tiling. Only the faces selected
// by o.Faces are drawn. No material is pushed.
func (m *Manager) DrawTextured(o Object) {
	kind, parts, ok := m.resolve(o, o.Faces)
	if !ok {
		return
	}
	m.SetShaderTexture(o.Texture)
	m.SetTextureUVScale(o.UV.X(), o.UV.Y())
	m.SetTransformations(o.Scale, o.Rotation.X(), o.Rotation.Y(), o.Rotation.Z(), o.Position, o.Offset)
	m.meshes.DrawShape(kind, parts...)
}

// DrawColored draws the whole mesh in o.Color lit with o.Material.
func (m *Manager) DrawColored(o Object) {
	kind, parts, ok := m.resolve(o, FacesAll)
	if !ok {
		return
	}
	m.SetTransformations(o.Scale, o.Rotation.X(), o.Rotation.Y(), o.Rotation.Z(), o.Position, o.Offset)
	m.SetShaderColor(o.Color.X(), o.Color.Y(), o.Color.Z(), o.Color.W())
	m.SetShaderMaterial(o.Material)
	m.meshes.DrawShape(kind, parts...)
}

func (m *Manager) resolve(o Object, faces Faces) (shapes.Kind, []shapes.Part, bool) {
	kind, parts, err := o.Mesh.Resolve(faces)
	if err != nil {
		log.Printf("%s: %v", o.Name, err)
		return 0, nil, false
	}
	if !m.loaded[kind] {
		log.Printf("%s: mesh %s not loaded", o.Name, kind)
		return 0, nil, false
	}
	return kind, parts, true
}

// SetTransformations pushes the model matrix.
func (m *Manager) SetTransformations(scale mgl32.Vec3, rx, ry, rz float32, position, offset mgl32.Vec3) {
	m.uniforms.SetMat4("model", ModelMatrix(scale, rx, ry, rz, position, offset))
}

// SetShaderColor disables texturing and sets the flat color.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.uniforms.SetBool("bUseTexture", false)
	m.uniforms.SetVec4("objectColor", mgl32.Vec4{r, g, b, a})
}

// SetShaderTexture enables texturing from the slot of tag, -1 if unknown.
func (m *Manager) SetShaderTexture(tag string) {
	m.uniforms.SetBool("bUseTexture", true)
	m.uniforms.SetSampler2D("objectTexture", int32(m.textures.FindSlot(tag)))
}

func (m *Manager) SetTextureUVScale(u, v float32) {
	m.uniforms.SetVec2("UVscale", mgl32.Vec2{u, v})
}

// SetShaderMaterial pushes the named material. Unknown tags push nothing.
func (m *Manager) SetShaderMaterial(tag string) {
	mat, ok := m.materials.Find(tag)
	if !ok {
		return
	}
	m.uniforms.SetVec3("material.diffuseColor", mat.DiffuseColor)
	m.uniforms.SetVec3("material.specularColor", mat.SpecularColor)
	m.uniforms.SetFloat("material.shininess", mat.Shininess)
}

// OnShaderReload restores state that lives in the program object.
func (m *Manager) OnShaderReload() {
	if m.prepared {
		PushLights(m.uniforms, m.lights)
	}
}

func (m *Manager) Textures() *TextureRegistry {
	return m.textures
}

func (m *Manager) Materials() *MaterialRegistry {
	return &m.materials
}

// Objects returns the layout in draw order.
func (m *Manager) Objects() []Object {
	return append([]Object(nil), m.layout...)
}

// SetViewport implements renderer.Renderable.
func (m *Manager) SetViewport(width, height int) {}

// Dispose frees textures and meshes.
func (m *Manager) Dispose() {
	m.textures.Destroy()
	m.meshes.Dispose()
	clear(m.loaded)
	m.prepared = false
}
