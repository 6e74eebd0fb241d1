package scene

import (
	"fmt"

	"tabletop/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is one entry of the shader's pointLights array.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// Lights returns the scene's fixed lights: a warm lamp and a soft fill.
func Lights() []PointLight {
	return []PointLight{
		{
			Position: mgl32.Vec3{0, 11.05, 2},
			Ambient:  mgl32.Vec3{0.05, 0.04, 0.03},
			Diffuse:  mgl32.Vec3{1.00, 0.85, 0.55},
			Specular: mgl32.Vec3{0.25, 0.22, 0.18},
			Active:   true,
		},
		{
			Position: mgl32.Vec3{0, 2.5, 4},
			Ambient:  mgl32.Vec3{0.03, 0.03, 0.03},
			Diffuse:  mgl32.Vec3{0.45, 0.45, 0.45},
			Specular: mgl32.Vec3{0.10, 0.10, 0.10},
			Active:   true,
		},
	}
}

// PushLights enables lighting and writes lights to consecutive pointLights slots.
func PushLights(u graphics.Uniforms, lights []PointLight) {
	u.SetBool("bUseLighting", true)
	for i, l := range lights {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u.SetVec3(prefix+"position", l.Position)
		u.SetVec3(prefix+"ambient", l.Ambient)
		u.SetVec3(prefix+"diffuse", l.Diffuse)
		u.SetVec3(prefix+"specular", l.Specular)
		u.SetBool(prefix+"bActive", l.Active)
	}
}
