package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findObject(t *testing.T, name string) Object {
	t.Helper()
	for _, o := range Layout() {
		if o.Name == name {
			return o
		}
	}
	t.Fatalf("no object %q", name)
	return Object{}
}

func vecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v, got %v", want, got)
}

func TestLayoutReferences(t *testing.T) {
	tags := make(map[string]bool)
	for _, tf := range Textures {
		tags[tf.Tag] = true
	}
	var materials MaterialRegistry
	defineMaterials(&materials)

	for _, o := range Layout() {
		if o.Textured() {
			assert.True(t, tags[o.Texture], "%s uses unknown texture %q", o.Name, o.Texture)
			continue
		}
		_, ok := materials.Find(o.Material)
		assert.True(t, ok, "%s uses unknown material %q", o.Name, o.Material)
	}
}

func TestLayoutShape(t *testing.T) {
	objs := Layout()
	require.Len(t, objs, 1+4+4+3+1+6+2+2)
	assert.Equal(t, "platform", objs[0].Name)
	assert.Equal(t, "wall", objs[12].Name)
}

func TestLayoutDerivedPositions(t *testing.T) {
	shade := findObject(t, "lamp shade")
	vecNear(t, mgl32.Vec3{0, 11.6, 0}, shade.Position)

	leg := findObject(t, "butter left leg")
	vecNear(t, mgl32.Vec3{0.25, 1.5, 0.25}, leg.Scale)
	vecNear(t, mgl32.Vec3{-0.44, 0.75, 0.27}, leg.Position)

	arm := findObject(t, "butter right arm")
	vecNear(t, mgl32.Vec3{1.05, 2.625, 0.225}, arm.Position)
	vecNear(t, mgl32.Vec3{180, 0, 0}, arm.Rotation)
}
