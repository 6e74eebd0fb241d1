// Package view owns the camera, turns input into camera motion and pushes
// the per-frame view and projection uniforms.
package view

import (
	"fmt"

	"tabletop/internal/config"
	"tabletop/internal/graphics"
	"tabletop/internal/graphics/renderer"
	"tabletop/internal/input"
	"tabletop/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects the projection matrix.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return fmt.Sprintf("ProjectionMode(%d)", int(m))
}

const (
	nearPlane  float32 = 0.1
	farPlane   float32 = 100
	orthoHalfH float32 = 10
)

// Window is the part of a glfw window the view manager drives.
type Window interface {
	SetShouldClose(value bool)
	SetInputMode(mode glfw.InputMode, value int)
}

// Frame is the camera state computed for one frame.
type Frame struct {
	DT           float64
	View         mgl32.Mat4
	Projection   mgl32.Mat4
	ViewPosition mgl32.Vec3
	Mode         ProjectionMode
	Camera       *graphics.Camera
}

// Manager drives a single camera from keyboard, mouse and scroll input.
type Manager struct {
	uniforms graphics.Uniforms
	input    *input.InputManager
	camera   *graphics.Camera
	window   Window
	clock    func() float64

	home          mgl32.Vec3
	mode          ProjectionMode
	width, height int

	firstMouse     bool
	lastX, lastY   float64
	tabPressed     bool
	cursorDisabled bool

	lastFrame float64
	deltaTime float64
}

// NewManager builds the camera from settings. The clock defaults to
// glfw.GetTime.
func NewManager(u graphics.Uniforms, in *input.InputManager, s config.Settings) *Manager {
	home := mgl32.Vec3(s.Camera.Position)
	cam := graphics.NewCamera(home, mgl32.Vec3{0, 1, 0}, graphics.DefaultYaw, graphics.DefaultPitch)
	// Front stays as configured until the first mouse event rebuilds it
	// from yaw and pitch.
	cam.Front = mgl32.Vec3(s.Camera.Front)
	cam.Up = mgl32.Vec3{0, 1, 0}
	cam.Zoom = s.Camera.Zoom
	cam.MovementSpeed = s.Camera.Speed
	cam.MouseSensitivity = s.Camera.Sensitivity

	return &Manager{
		uniforms:       u,
		input:          in,
		camera:         cam,
		clock:          glfw.GetTime,
		home:           home,
		width:          s.Window.Width,
		height:         s.Window.Height,
		firstMouse:     true,
		cursorDisabled: true,
	}
}

// SetClock replaces the frame clock. The clock returns seconds.
func (m *Manager) SetClock(clock func() float64) {
	m.clock = clock
	m.lastFrame = clock()
}

// SetUniforms replaces the sink the view and projection are pushed into.
func (m *Manager) SetUniforms(u graphics.Uniforms) {
	m.uniforms = u
}

// Attach sets the window that receives close requests and cursor modes.
func (m *Manager) Attach(w Window) {
	m.window = w
}

func (m *Manager) Camera() *graphics.Camera {
	return m.camera
}

func (m *Manager) Mode() ProjectionMode {
	return m.mode
}

// CursorDisabled reports whether the cursor is captured by the window.
func (m *Manager) CursorDisabled() bool {
	return m.cursorDisabled
}

// SetViewport updates the aspect ratio used by both projections.
func (m *Manager) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
}

// MouseMove handles a cursor position event. The first event only primes
// the last position. Look input is ignored in orthographic mode.
func (m *Manager) MouseMove(x, y float64) {
	if m.firstMouse {
		m.lastX, m.lastY = x, y
		m.firstMouse = false
	}
	xOffset := float32(x - m.lastX)
	// reversed: window y grows downward
	yOffset := float32(m.lastY - y)
	m.lastX, m.lastY = x, y

	if m.mode == Orthographic {
		return
	}
	m.camera.ProcessMouseMovement(xOffset, yOffset)
}

// Scroll handles a wheel event.
func (m *Manager) Scroll(yOffset float64) {
	m.camera.ProcessMouseScroll(float32(yOffset))
}

// ProcessKeyboardEvents applies held and edge-triggered actions for this
// frame using the current frame delta.
func (m *Manager) ProcessKeyboardEvents() {
	in := m.input
	if in.IsActive(input.ActionQuit) && m.window != nil {
		m.window.SetShouldClose(true)
	}

	if in.IsActive(input.ActionToggleCursor) || in.JustPressed(input.ActionToggleCursor) {
		m.tabPressed = true
	}
	if m.tabPressed && !in.IsActive(input.ActionToggleCursor) {
		m.tabPressed = false
		m.cursorDisabled = !m.cursorDisabled
		if m.window != nil {
			mode := glfw.CursorNormal
			if m.cursorDisabled {
				mode = glfw.CursorDisabled
			}
			m.window.SetInputMode(glfw.CursorMode, mode)
		}
	}

	dt := float32(m.deltaTime)
	moves := []struct {
		action input.Action
		dir    graphics.CameraMovement
	}{
		{input.ActionMoveForward, graphics.Forward},
		{input.ActionMoveBackward, graphics.Backward},
		{input.ActionMoveLeft, graphics.Left},
		{input.ActionMoveRight, graphics.Right},
		{input.ActionMoveUp, graphics.Up},
		{input.ActionMoveDown, graphics.Down},
	}
	for _, mv := range moves {
		if in.IsActive(mv.action) {
			m.camera.ProcessKeyboard(mv.dir, dt)
		}
	}

	if in.IsActive(input.ActionPerspective) {
		m.mode = Perspective
	}
	if in.IsActive(input.ActionOrthographic) {
		m.mode = Orthographic
		m.camera.Reset(m.home, graphics.DefaultYaw, graphics.DefaultPitch)
		// avoid a jump when returning to perspective
		m.firstMouse = true
	}
}

// Projection returns the matrix for the current mode and viewport.
func (m *Manager) Projection() mgl32.Mat4 {
	aspect := float32(m.width) / float32(m.height)
	if m.mode == Orthographic {
		return mgl32.Ortho(-orthoHalfH*aspect, orthoHalfH*aspect, -orthoHalfH, orthoHalfH, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(m.camera.Zoom), aspect, nearPlane, farPlane)
}

// PrepareSceneView advances the frame clock, processes the keyboard and
// pushes view, projection and viewPosition.
func (m *Manager) PrepareSceneView() Frame {
	defer profiling.Track("view.prepare")()

	now := m.clock()
	m.deltaTime = now - m.lastFrame
	m.lastFrame = now

	m.ProcessKeyboardEvents()

	view := m.camera.ViewMatrix()
	projection := m.Projection()

	m.uniforms.SetMat4("view", view)
	m.uniforms.SetMat4("projection", projection)
	m.uniforms.SetVec3("viewPosition", m.camera.Position)

	return Frame{
		DT:           m.deltaTime,
		View:         view,
		Projection:   projection,
		ViewPosition: m.camera.Position,
		Mode:         m.mode,
		Camera:       m.camera,
	}
}

// PrepareFrame implements renderer.FramePreparer.
func (m *Manager) PrepareFrame() renderer.RenderContext {
	f := m.PrepareSceneView()
	return renderer.RenderContext{
		Camera:       f.Camera,
		DT:           f.DT,
		View:         f.View,
		Proj:         f.Projection,
		ViewPosition: f.ViewPosition,
		Mode:         f.Mode.String(),
	}
}
