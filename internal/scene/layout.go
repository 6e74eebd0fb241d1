package scene

import (
	"tabletop/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureFile pairs a file in the textures directory with its tag.
type TextureFile struct {
	File string
	Tag  string
}

// Textures lists the scene's images in registration (slot) order.
var Textures = []TextureFile{
	{"saltshaker.png", "shaker"},
	{"cap_sides.png", "cap_sides"},
	{"cap_top.png", "cap_top"},
	{"cap_torus.png", "cap_torus"},
	{"butter_face.png", "butter_front"},
	{"butter_side1.png", "butter_left"},
	{"butter_side2.png", "butter_right"},
	{"butter_side3.png", "butter_back"},
	{"butter_top.png", "butter_top"},
	{"butter_bottom.png", "butter_bottom"},
	{"Tile.png", "tile"},
	{"wood_top.png", "wood_tex"},
}

// Meshes lists the shapes uploaded during preparation.
var Meshes = []shapes.Kind{
	shapes.Plane,
	shapes.Box,
	shapes.TaperedCylinder,
	shapes.Cylinder,
	shapes.Torus,
	shapes.Cone,
	shapes.Sphere,
}

// Object is one draw of the fixed layout. A non-empty Texture makes it a
// textured draw; otherwise it is drawn in Color with Material.
type Object struct {
	Name     string
	Mesh     MeshKind
	Scale    mgl32.Vec3
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Offset   mgl32.Vec3

	Texture string
	UV      mgl32.Vec2

	Color    mgl32.Vec4
	Material string

	Faces Faces
}

// Textured reports whether o samples a texture.
func (o Object) Textured() bool {
	return o.Texture != ""
}

// Layout returns the still life in draw order.
func Layout() []Object {
	objs := []Object{
		{
			Name:     "platform",
			Mesh:     Box,
			Scale:    mgl32.Vec3{60, 1.5, 15},
			Texture:  "wood_tex",
			UV:       mgl32.Vec2{1, 1},
			Material: "wood",
			Faces:    FaceBottom,
		},
	}
	objs = append(objs, saltShaker("left", -10)...)
	objs = append(objs, saltShaker("right", 10)...)
	objs = append(objs, lamp()...)
	objs = append(objs, Object{
		Name:     "wall",
		Mesh:     Plane,
		Scale:    mgl32.Vec3{30, 1, 18},
		Position: mgl32.Vec3{0, 17, -7.5},
		Rotation: mgl32.Vec3{90, 0, 0},
		Texture:  "tile",
		UV:       mgl32.Vec2{12, 6},
		Material: "tile",
		Faces:    FacesAll,
	})
	objs = append(objs, butter()...)
	return objs
}

func saltShaker(side string, x float32) []Object {
	return []Object{
		{
			Name:     side + " shaker body",
			Mesh:     TaperedCylinder,
			Scale:    mgl32.Vec3{2, 4.5, 2},
			Position: mgl32.Vec3{x, 0.75, 0},
			Texture:  "shaker",
			UV:       mgl32.Vec2{1, 1},
			Material: "glass",
			Faces:    FaceSides,
		},
		{
			Name:     side + " shaker cap sides",
			Mesh:     Cylinder,
			Scale:    mgl32.Vec3{1.1, 0.6, 1.1},
			Position: mgl32.Vec3{x, 4.75, 0},
			Texture:  "cap_sides",
			UV:       mgl32.Vec2{1, 1},
			Material: "metal",
			Faces:    FaceSides,
		},
		{
			Name:     side + " shaker cap top",
			Mesh:     Cylinder,
			Scale:    mgl32.Vec3{1.1, 0.6, 1.1},
			Position: mgl32.Vec3{x, 4.75, 0},
			Texture:  "cap_top",
			UV:       mgl32.Vec2{1, 1},
			Material: "metal",
			Faces:    FaceTop,
		},
		{
			Name:     side + " shaker ring",
			Mesh:     Torus,
			Scale:    mgl32.Vec3{1.05, 1.05, 1.05},
			Position: mgl32.Vec3{x, 4.7, 0},
			Rotation: mgl32.Vec3{90, 0, 0},
			Color:    mgl32.Vec4{0.447, 0.447, 0.447, 1},
			Material: "metal",
		},
	}
}

func lamp() []Object {
	base := mgl32.Vec3{0, 18.5, 0}
	var drop float32 = 6
	coneBase := base.Add(mgl32.Vec3{0, -(drop + 0.9), 0})

	return []Object{
		{
			Name:     "lamp cord",
			Mesh:     Cylinder,
			Scale:    mgl32.Vec3{0.1, drop, 0.1},
			Position: base,
			Rotation: mgl32.Vec3{180, 0, 0},
			Color:    mgl32.Vec4{0.55, 0.55, 0.55, 1},
			Material: "metal",
		},
		{
			Name:     "lamp shade",
			Mesh:     Cone,
			Scale:    mgl32.Vec3{1, 1, 1},
			Position: coneBase,
			Color:    mgl32.Vec4{0.65, 0.65, 0.65, 1},
			Material: "plastic",
		},
		{
			Name:     "lamp bulb",
			Mesh:     Sphere,
			Scale:    mgl32.Vec3{0.5, 0.5, 0.5},
			Position: coneBase,
			Color:    mgl32.Vec4{1.00, 0.95, 0.75, 1},
			Material: "plastic",
		},
	}
}

func butter() []Object {
	base := mgl32.Vec3{0, 1.5 + 1.125, 0}
	body := mgl32.Vec3{2, 2.25, 1.5}
	color := mgl32.Vec4{0.95, 0.85, 0.25, 1}

	faces := []struct {
		mesh MeshKind
		tag  string
	}{
		{BoxFront, "butter_front"},
		{BoxLeft, "butter_left"},
		{BoxRight, "butter_right"},
		{BoxBack, "butter_back"},
		{BoxBottom, "butter_bottom"},
		{BoxTop, "butter_top"},
	}
	var objs []Object
	for _, f := range faces {
		objs = append(objs, Object{
			Name:     "butter " + f.mesh.String(),
			Mesh:     f.mesh,
			Scale:    body,
			Position: base,
			Texture:  f.tag,
			UV:       mgl32.Vec2{1, 1},
			Material: "plastic",
		})
	}

	bodyBottom := base.Y() - body.Y()*0.5
	leg := mgl32.Vec3{0.25, bodyBottom, 0.25}
	legX := body.X() * 0.22
	legZ := body.Z() * 0.18
	for _, l := range []struct {
		name string
		x    float32
	}{{"left", -legX}, {"right", legX}} {
		objs = append(objs, Object{
			Name:     "butter " + l.name + " leg",
			Mesh:     Cylinder,
			Scale:    leg,
			Position: mgl32.Vec3{base.X() + l.x, leg.Y() * 0.5, base.Z() + legZ},
			Color:    color,
			Material: "plastic",
		})
	}

	arm := mgl32.Vec3{0.20, 1, 0.20}
	armX := body.X()*0.5 + arm.X()*0.5 - 0.05
	armZ := body.Z() * 0.15
	for _, a := range []struct {
		name string
		x    float32
	}{{"left", -armX}, {"right", armX}} {
		objs = append(objs, Object{
			Name:     "butter " + a.name + " arm",
			Mesh:     Cylinder,
			Scale:    arm,
			Position: mgl32.Vec3{base.X() + a.x, base.Y(), base.Z() + armZ},
			Rotation: mgl32.Vec3{180, 0, 0},
			Color:    color,
			Material: "plastic",
		})
	}
	return objs
}
