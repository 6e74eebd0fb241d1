package scene

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix composes translate(position+offset) * rotZ * rotY * rotX * scale.
// Rotations are in degrees.
func ModelMatrix(scale mgl32.Vec3, rx, ry, rz float32, position, offset mgl32.Vec3) mgl32.Mat4 {
	p := position.Add(offset)
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rz))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(ry))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rx))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}
