package export

import (
	"path/filepath"
	"testing"

	"tabletop/internal/graphics/graphicstest"
	"tabletop/internal/scene"
	"tabletop/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTextures(t *testing.T, dir string) {
	t.Helper()
	for _, tf := range scene.Textures {
		graphicstest.WritePNG(t, filepath.Join(dir, tf.File), 3)
	}
}

func TestWriteSceneEmitsNodePerDraw(t *testing.T) {
	root := t.TempDir()
	textures := filepath.Join(root, "textures")
	writeTextures(t, textures)
	out := filepath.Join(root, "scene.gltf")

	require.NoError(t, WriteScene(textures, out))

	doc, err := gltf.Open(out)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, len(scene.Layout()))
	assert.Len(t, doc.Scenes[0].Nodes, len(scene.Layout()))
	require.Len(t, doc.Images, len(scene.Textures))
	for _, img := range doc.Images {
		assert.Contains(t, img.URI, "textures/")
	}
}

func TestWriteSceneBinary(t *testing.T) {
	root := t.TempDir()
	writeTextures(t, root)
	out := filepath.Join(root, "scene.glb")

	require.NoError(t, WriteScene(root, out))

	doc, err := gltf.Open(out)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, len(scene.Layout()))
}

func TestDocumentWithoutDraws(t *testing.T) {
	_, err := Document(NewCapture(), nil, t.TempDir())
	assert.ErrorIs(t, err, ErrNothingDrawn)
}

func TestCaptureMaterialOnlyForItsDraw(t *testing.T) {
	c := NewCapture()
	require.NoError(t, c.LoadShape(shapes.Box))

	c.SetBool("bUseTexture", false)
	c.SetVec4("objectColor", mgl32.Vec4{1, 0, 0, 1})
	c.SetVec3("material.diffuseColor", mgl32.Vec3{1, 1, 1})
	c.SetVec3("material.specularColor", mgl32.Vec3{0.5, 0.5, 0.5})
	c.SetFloat("material.shininess", 32)
	c.DrawShape(shapes.Box)
	c.DrawShape(shapes.Box)

	draws := c.Draws()
	require.Len(t, draws, 2)
	assert.True(t, draws[0].HasMaterial)
	assert.Equal(t, float32(32), draws[0].Shininess)
	assert.False(t, draws[1].HasMaterial)
}

func TestDocumentSharesMeshesAndMaterials(t *testing.T) {
	c := NewCapture()
	require.NoError(t, c.LoadShape(shapes.Cylinder))

	c.SetVec4("objectColor", mgl32.Vec4{0, 1, 0, 1})
	c.SetMat4("model", mgl32.Translate3D(1, 2, 3))
	c.DrawShape(shapes.Cylinder, shapes.PartSides)
	c.SetMat4("model", mgl32.Translate3D(-1, 0, 0))
	c.DrawShape(shapes.Cylinder, shapes.PartSides)
	c.DrawShape(shapes.Cylinder)

	doc, err := Document(c, nil, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 3)
	assert.Len(t, doc.Meshes, 2)
	assert.Len(t, doc.Materials, 1)
	assert.Equal(t, 1.0, doc.Nodes[0].Matrix[12])
	assert.Equal(t, 3.0, doc.Nodes[0].Matrix[14])
}

func TestDocumentUnloadedMesh(t *testing.T) {
	c := NewCapture()
	c.DrawShape(shapes.Torus)
	_, err := Document(c, nil, t.TempDir())
	assert.Error(t, err)
}

func TestTexturedDrawWithoutEntry(t *testing.T) {
	c := NewCapture()
	require.NoError(t, c.LoadShape(shapes.Plane))
	c.SetBool("bUseTexture", true)
	c.SetSampler2D("objectTexture", -1)
	c.DrawShape(shapes.Plane)

	doc, err := Document(c, nil, t.TempDir())
	require.NoError(t, err)
	require.Len(t, doc.Materials, 1)
	assert.Nil(t, doc.Materials[0].PBRMetallicRoughness.BaseColorTexture)
	assert.Empty(t, doc.Images)
}

func TestRoughness(t *testing.T) {
	assert.InDelta(t, 1.0, roughness(0), 1e-6)
	assert.Less(t, roughness(128), roughness(8))
}
