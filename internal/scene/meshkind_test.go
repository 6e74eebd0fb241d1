package scene

import (
	"testing"

	"tabletop/internal/shapes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		kind  MeshKind
		faces Faces
		shape shapes.Kind
		parts []shapes.Part
	}{
		{Plane, FaceTop, shapes.Plane, nil},
		{Box, FaceBottom, shapes.Box, nil},
		{BoxFront, 0, shapes.Box, []shapes.Part{shapes.PartFront}},
		{BoxBack, 0, shapes.Box, []shapes.Part{shapes.PartBack}},
		{BoxLeft, 0, shapes.Box, []shapes.Part{shapes.PartLeft}},
		{BoxRight, 0, shapes.Box, []shapes.Part{shapes.PartRight}},
		{BoxTop, 0, shapes.Box, []shapes.Part{shapes.PartTop}},
		{BoxBottom, FaceSides, shapes.Box, []shapes.Part{shapes.PartBottom}},
		{Cone, FaceSides, shapes.Cone, []shapes.Part{shapes.PartSides}},
		{Cone, 0, shapes.Cone, []shapes.Part{shapes.PartSides, shapes.PartBottom}},
		{Cylinder, FaceTop, shapes.Cylinder, []shapes.Part{shapes.PartTop}},
		{Cylinder, FaceTop | FaceSides, shapes.Cylinder, []shapes.Part{shapes.PartTop, shapes.PartSides}},
		{Cylinder, 0, shapes.Cylinder, []shapes.Part{shapes.PartTop, shapes.PartBottom, shapes.PartSides}},
		{TaperedCylinder, FaceSides, shapes.TaperedCylinder, []shapes.Part{shapes.PartSides}},
		{Prism, FaceTop, shapes.Prism, nil},
		{Pyramid3, 0, shapes.Pyramid3, nil},
		{Pyramid4, 0, shapes.Pyramid4, nil},
		{Sphere, 0, shapes.Sphere, nil},
		{Torus, 0, shapes.Torus, nil},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			shape, parts, err := tc.kind.Resolve(tc.faces)
			require.NoError(t, err)
			assert.Equal(t, tc.shape, shape)
			assert.Equal(t, tc.parts, parts)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	_, _, err := MeshKind(99).Resolve(FacesAll)
	assert.Error(t, err)
	assert.Equal(t, "MeshKind(99)", MeshKind(99).String())
}

// Every part a resolved draw names exists in the generated mesh.
func TestResolvedPartsExist(t *testing.T) {
	for k := Plane; k <= Torus; k++ {
		shape, parts, err := k.Resolve(FacesAll)
		require.NoError(t, err)
		mesh, err := shapes.Generate(shape)
		require.NoError(t, err)
		for _, p := range parts {
			_, ok := mesh.Part(p)
			assert.True(t, ok, "%s has no %s", shape, p)
		}
	}
}
