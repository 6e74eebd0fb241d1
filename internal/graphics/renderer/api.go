package renderer

import (
	"tabletop/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state to all renderables
type RenderContext struct {
	Camera       *graphics.Camera
	DT           float64
	View         mgl32.Mat4
	Proj         mgl32.Mat4
	ViewPosition mgl32.Vec3
	Mode         string
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// Program is the shader program the scene pass draws with.
type Program interface {
	Use()
}

// FramePreparer computes and pushes the camera state for a frame. It runs
// with the scene program current.
type FramePreparer interface {
	PrepareFrame() RenderContext
	SetViewport(width, height int)
}
