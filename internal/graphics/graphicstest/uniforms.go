// Package graphicstest provides GL-free stand-ins for graphics backends.
package graphicstest

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded uniform write.
type Call struct {
	Name  string
	Value any
}

// Uniforms records every write in order and keeps the latest value per name.
type Uniforms struct {
	Calls  []Call
	Values map[string]any
}

func NewUniforms() *Uniforms {
	return &Uniforms{Values: make(map[string]any)}
}

func (u *Uniforms) record(name string, v any) {
	u.Calls = append(u.Calls, Call{name, v})
	u.Values[name] = v
}

func (u *Uniforms) SetBool(name string, value bool) { u.record(name, value) }
func (u *Uniforms) SetInt(name string, value int32) { u.record(name, value) }
func (u *Uniforms) SetFloat(name string, value float32) { u.record(name, value) }
func (u *Uniforms) SetVec2(name string, value mgl32.Vec2) { u.record(name, value) }
func (u *Uniforms) SetVec3(name string, value mgl32.Vec3) { u.record(name, value) }
func (u *Uniforms) SetVec4(name string, value mgl32.Vec4) { u.record(name, value) }
func (u *Uniforms) SetMat4(name string, value mgl32.Mat4) { u.record(name, value) }
func (u *Uniforms) SetSampler2D(name string, unit int32) { u.record(name, unit) }

// Count returns how many times name was written.
func (u *Uniforms) Count(name string) int {
	n := 0
	for _, c := range u.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the written names in order.
func (u *Uniforms) Names() []string {
	names := make([]string, len(u.Calls))
	for i, c := range u.Calls {
		names[i] = c.Name
	}
	return names
}

// Reset forgets all writes.
func (u *Uniforms) Reset() {
	u.Calls = nil
	clear(u.Values)
}
