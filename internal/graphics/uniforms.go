package graphics

import "github.com/go-gl/mathgl/mgl32"

// Uniforms is the write side of a shader program's uniform state.
// *Shader implements it against OpenGL; tests and the glTF exporter record
// the calls instead.
type Uniforms interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetMat4(name string, value mgl32.Mat4)
	SetSampler2D(name string, unit int32)
}
