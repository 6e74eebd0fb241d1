package view

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// CreateDisplayWindow opens the window with a 4.1 core context, loads GL,
// captures the cursor and routes mouse input into m. glfw must already be
// initialized. On failure glfw is terminated.
func (m *Manager) CreateDisplayWindow(title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(m.width, m.height, title, nil, nil)
	if err != nil {
		log.Printf("failed to create GLFW window: %v", err)
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Printf("failed to initialize OpenGL: %v", err)
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		m.MouseMove(x, y)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, y float64) {
		m.Scroll(y)
	})

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	m.Attach(window)
	return window, nil
}
