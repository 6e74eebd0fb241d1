package scene

import (
	"fmt"

	"tabletop/internal/shapes"
)

// MeshKind selects a shape, or a single face of the box.
type MeshKind int

const (
	Plane MeshKind = iota
	Box
	BoxFront
	BoxBack
	BoxLeft
	BoxRight
	BoxTop
	BoxBottom
	Cone
	Cylinder
	Prism
	Pyramid3
	Pyramid4
	Sphere
	TaperedCylinder
	Torus
)

func (k MeshKind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case BoxFront:
		return "box-front"
	case BoxBack:
		return "box-back"
	case BoxLeft:
		return "box-left"
	case BoxRight:
		return "box-right"
	case BoxTop:
		return "box-top"
	case BoxBottom:
		return "box-bottom"
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	case Prism:
		return "prism"
	case Pyramid3:
		return "pyramid3"
	case Pyramid4:
		return "pyramid4"
	case Sphere:
		return "sphere"
	case TaperedCylinder:
		return "tapered-cylinder"
	case Torus:
		return "torus"
	}
	return fmt.Sprintf("MeshKind(%d)", int(k))
}

// Faces restricts which parts of a cylinder or cone are drawn. The zero
// value means all faces.
type Faces uint8

const (
	FaceTop Faces = 1 << iota
	FaceBottom
	FaceSides

	FacesAll = FaceTop | FaceBottom | FaceSides
)

// Resolve maps k and faces to the shape to draw and the parts to draw of
// it. A nil part list draws the whole shape. Box, plane and the other
// single-part shapes ignore faces; a cone always draws its sides.
func (k MeshKind) Resolve(faces Faces) (shapes.Kind, []shapes.Part, error) {
	if faces == 0 {
		faces = FacesAll
	}
	switch k {
	case Plane:
		return shapes.Plane, nil, nil
	case Box:
		return shapes.Box, nil, nil
	case BoxFront:
		return shapes.Box, []shapes.Part{shapes.PartFront}, nil
	case BoxBack:
		return shapes.Box, []shapes.Part{shapes.PartBack}, nil
	case BoxLeft:
		return shapes.Box, []shapes.Part{shapes.PartLeft}, nil
	case BoxRight:
		return shapes.Box, []shapes.Part{shapes.PartRight}, nil
	case BoxTop:
		return shapes.Box, []shapes.Part{shapes.PartTop}, nil
	case BoxBottom:
		return shapes.Box, []shapes.Part{shapes.PartBottom}, nil
	case Cone:
		parts := []shapes.Part{shapes.PartSides}
		if faces&FaceBottom != 0 {
			parts = append(parts, shapes.PartBottom)
		}
		return shapes.Cone, parts, nil
	case Cylinder:
		return shapes.Cylinder, roundParts(faces), nil
	case TaperedCylinder:
		return shapes.TaperedCylinder, roundParts(faces), nil
	case Prism:
		return shapes.Prism, nil, nil
	case Pyramid3:
		return shapes.Pyramid3, nil, nil
	case Pyramid4:
		return shapes.Pyramid4, nil, nil
	case Sphere:
		return shapes.Sphere, nil, nil
	case Torus:
		return shapes.Torus, nil, nil
	}
	return 0, nil, fmt.Errorf("unknown mesh kind %s", k)
}

func roundParts(faces Faces) []shapes.Part {
	parts := make([]shapes.Part, 0, 3)
	if faces&FaceTop != 0 {
		parts = append(parts, shapes.PartTop)
	}
	if faces&FaceBottom != 0 {
		parts = append(parts, shapes.PartBottom)
	}
	if faces&FaceSides != 0 {
		parts = append(parts, shapes.PartSides)
	}
	return parts
}
