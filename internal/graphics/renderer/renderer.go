package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	program     Program
	view        FramePreparer
	renderables []Renderable
}

// NewRenderer configures depth testing and initializes the renderables in
// order. program is made current before the view is prepared each frame.
func NewRenderer(program Program, view FramePreparer, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL. Culling stays off: several scene parts are single
	// sided and seen from both sides.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	renderer := &Renderer{
		program:     program,
		view:        view,
		renderables: rs,
	}

	program.Use()
	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render clears the frame, prepares the view and draws every renderable.
func (r *Renderer) Render() RenderContext {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	ctx := r.view.PrepareFrame()

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
	return ctx
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport and informs the view and renderables.
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.view.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
