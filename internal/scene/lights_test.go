package scene

import (
	"testing"

	"tabletop/internal/graphics/graphicstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPushLights(t *testing.T) {
	u := graphicstest.NewUniforms()
	PushLights(u, Lights())

	assert.Equal(t, "bUseLighting", u.Calls[0].Name)
	assert.Equal(t, true, u.Values["bUseLighting"])
	assert.Len(t, u.Calls, 1+2*5)

	assert.Equal(t, mgl32.Vec3{0, 11.05, 2}, u.Values["pointLights[0].position"])
	assert.Equal(t, mgl32.Vec3{1.00, 0.85, 0.55}, u.Values["pointLights[0].diffuse"])
	assert.Equal(t, mgl32.Vec3{0, 2.5, 4}, u.Values["pointLights[1].position"])
	assert.Equal(t, mgl32.Vec3{0.10, 0.10, 0.10}, u.Values["pointLights[1].specular"])
	assert.Equal(t, true, u.Values["pointLights[1].bActive"])
}
