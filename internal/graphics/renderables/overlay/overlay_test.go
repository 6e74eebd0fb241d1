package overlay

import (
	"testing"

	"tabletop/internal/graphics"
	"tabletop/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	cam := graphics.NewCamera(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 1, 0}, -90, 0)
	cam.Zoom = 80
	ctx := renderer.RenderContext{Camera: cam, Mode: "perspective"}

	lines := StatusLines(ctx, 60, "scene.render:1.00ms, view.prepare:0.10ms")
	assert.Equal(t, "FPS: 60", lines[0])
	assert.Equal(t, "Projection: perspective (P/O)", lines[1])
	assert.Equal(t, "Camera: 0.00 5.00 12.00", lines[2])
	assert.Equal(t, "Yaw -90.0 Pitch 0.0 Zoom 80.0", lines[3])
	assert.Equal(t, "scene.render:1.00ms", lines[4])
	assert.Equal(t, "view.prepare:0.10ms", lines[5])
	assert.Len(t, lines, 7)
}

func TestStatusLinesWithoutCamera(t *testing.T) {
	lines := StatusLines(renderer.RenderContext{Mode: "orthographic"}, 0, "")
	assert.Equal(t, []string{
		"FPS: 0",
		"Projection: orthographic (P/O)",
		"WASD/QE move, Tab cursor, F1 overlay, Esc quit",
	}, lines)
}
