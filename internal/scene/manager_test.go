package scene

import (
	"path/filepath"
	"testing"

	"tabletop/internal/graphics/graphicstest"
	"tabletop/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uniforms *graphicstest.Uniforms
	textures *graphicstest.Textures
	meshes   *graphicstest.Meshes
	manager  *Manager
}

// newFixture writes every scene texture except skip into a temp dir.
func newFixture(t *testing.T, skip ...string) *fixture {
	t.Helper()
	dir := t.TempDir()
	skipped := make(map[string]bool)
	for _, s := range skip {
		skipped[s] = true
	}
	for _, tf := range Textures {
		if skipped[tf.Tag] {
			continue
		}
		graphicstest.WritePNG(t, filepath.Join(dir, tf.File), 3)
	}
	f := &fixture{
		uniforms: graphicstest.NewUniforms(),
		textures: graphicstest.NewTextures(),
		meshes:   graphicstest.NewMeshes(),
	}
	f.manager = NewManager(f.uniforms, f.textures, f.meshes, dir)
	return f
}

func TestPrepareLoadsEverything(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Init())

	assert.True(t, f.manager.Prepared())
	assert.Equal(t, len(Textures), f.manager.Textures().Len())
	assert.Len(t, f.textures.Binds, 12)
	for i, tf := range Textures {
		assert.Equal(t, i, f.manager.Textures().FindSlot(tf.Tag))
	}
	for _, k := range Meshes {
		assert.True(t, f.meshes.Loaded[k], "mesh %s", k)
	}
	assert.Equal(t, 5, f.manager.Materials().Len())
	assert.Equal(t, true, f.uniforms.Values["bUseLighting"])
}

func TestPrepareContinuesPastFailures(t *testing.T) {
	f := newFixture(t, "tile")
	f.meshes.Fail[shapes.Sphere] = true
	require.NoError(t, f.manager.Prepare())

	assert.Equal(t, 11, f.manager.Textures().Len())
	assert.Len(t, f.textures.Binds, 11)
	assert.Equal(t, -1, f.manager.Textures().FindSlot("tile"))
	assert.False(t, f.meshes.Loaded[shapes.Sphere])

	f.uniforms.Reset()
	f.manager.RenderScene()
	assert.Empty(t, f.meshes.Violations)
	// the bulb is skipped, the wall draws with no texture slot
	assert.Equal(t, len(Layout())-1, len(f.meshes.Draws))
	assert.Contains(t, samplerValues(f.uniforms), int32(-1))
}

func samplerValues(u *graphicstest.Uniforms) []int32 {
	var out []int32
	for _, c := range u.Calls {
		if c.Name == "objectTexture" {
			out = append(out, c.Value.(int32))
		}
	}
	return out
}

func TestRenderBeforePrepare(t *testing.T) {
	f := newFixture(t)
	f.manager.RenderScene()
	f.manager.RenderScene()
	assert.Empty(t, f.uniforms.Calls)
	assert.Empty(t, f.meshes.Draws)
}

func TestRenderSequence(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Prepare())
	f.uniforms.Reset()

	f.manager.RenderScene()

	layout := Layout()
	assert.Equal(t, len(layout), f.uniforms.Count("model"), "one model push per object")
	assert.Len(t, f.meshes.Draws, len(layout))
	assert.Empty(t, f.meshes.Violations)

	textured := 0
	for _, o := range layout {
		if o.Textured() {
			textured++
		}
	}
	assert.Equal(t, textured, f.uniforms.Count("objectTexture"))
	assert.Equal(t, textured, f.uniforms.Count("UVscale"))
	assert.Equal(t, len(layout)-textured, f.uniforms.Count("objectColor"))
	assert.Equal(t, len(layout)-textured, f.uniforms.Count("material.shininess"))
}

func TestTexturedDrawUniforms(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Prepare())
	f.uniforms.Reset()

	f.manager.DrawObject(Object{
		Name:     "cap",
		Mesh:     Cylinder,
		Scale:    mgl32.Vec3{1, 1, 1},
		Texture:  "cap_top",
		UV:       mgl32.Vec2{2, 3},
		Material: "metal",
		Faces:    FaceTop,
	})

	assert.Equal(t, []string{"bUseTexture", "objectTexture", "UVscale", "model"}, f.uniforms.Names())
	assert.Equal(t, true, f.uniforms.Values["bUseTexture"])
	assert.Equal(t, int32(2), f.uniforms.Values["objectTexture"])
	assert.Equal(t, mgl32.Vec2{2, 3}, f.uniforms.Values["UVscale"])
	require.Len(t, f.meshes.Draws, 1)
	assert.Equal(t, graphicstest.Draw{Kind: shapes.Cylinder, Parts: []shapes.Part{shapes.PartTop}}, f.meshes.Draws[0])
}

func TestColoredDrawUniforms(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Prepare())
	f.uniforms.Reset()

	f.manager.DrawObject(Object{
		Name:     "ring",
		Mesh:     Cylinder,
		Scale:    mgl32.Vec3{1, 1, 1},
		Color:    mgl32.Vec4{0.1, 0.2, 0.3, 1},
		Material: "metal",
		Faces:    FaceTop,
	})
	assert.Equal(t, []string{
		"model", "bUseTexture", "objectColor",
		"material.diffuseColor", "material.specularColor", "material.shininess",
	}, f.uniforms.Names())
	assert.Equal(t, false, f.uniforms.Values["bUseTexture"])
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 1}, f.uniforms.Values["objectColor"])
	// faces do not restrict flat draws
	require.Len(t, f.meshes.Draws, 1)
	assert.Len(t, f.meshes.Draws[0].Parts, 3)

	f.uniforms.Reset()
	f.manager.DrawObject(Object{Name: "odd", Mesh: Sphere, Color: mgl32.Vec4{1, 1, 1, 1}, Material: "velvet"})
	assert.Equal(t, []string{"model", "bUseTexture", "objectColor"}, f.uniforms.Names())
}

func TestShaderReloadPushesLights(t *testing.T) {
	f := newFixture(t)
	f.manager.OnShaderReload()
	assert.Empty(t, f.uniforms.Calls)

	require.NoError(t, f.manager.Prepare())
	f.uniforms.Reset()
	f.manager.OnShaderReload()
	assert.Equal(t, 1, f.uniforms.Count("bUseLighting"))
	assert.Equal(t, 1, f.uniforms.Count("pointLights[1].position"))
}

func TestDispose(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Prepare())
	f.manager.Dispose()

	assert.Len(t, f.textures.Deleted, 12)
	assert.True(t, f.meshes.Disposed)
	assert.False(t, f.manager.Prepared())
}
