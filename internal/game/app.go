package game

import (
	"log"
	"time"

	"tabletop/internal/config"
	"tabletop/internal/graphics/renderer"
	"tabletop/internal/input"
	"tabletop/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// ShaderReloader recompiles a program from its sources.
type ShaderReloader interface {
	Reload() error
}

// ChangeNotifier reports pending source changes.
type ChangeNotifier interface {
	Pending() bool
}

// ReloadListener restores program state after a reload.
type ReloadListener interface {
	OnShaderReload()
}

// App runs the frame loop for one window.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer

	hotReload  *HotReload
	fpsLimiter *FPSLimiter
}

func NewApp(window *glfw.Window, im *input.InputManager, r *renderer.Renderer, hr *HotReload) *App {
	a := &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		hotReload:    hr,
		fpsLimiter:   NewFPSLimiter(),
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			r.UpdateViewport(width, height)
		}
	})
	width, height := window.GetFramebufferSize()
	r.UpdateViewport(width, height)

	return a
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.inputManager.JustPressed(input.ActionToggleOverlay) {
		config.SetOverlay(!config.GetOverlay())
	}
	a.hotReload.Check()

	func() { defer profiling.Track("renderer.Render")(); a.renderer.Render() }()

	processingDuration := time.Since(startTick)
	if processingDuration > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait()
}

// HotReload recompiles a shader when its sources change and lets
// listeners re-push state the old program held.
type HotReload struct {
	shader    ShaderReloader
	notifier  ChangeNotifier
	listeners []ReloadListener
}

func NewHotReload(shader ShaderReloader, notifier ChangeNotifier, listeners ...ReloadListener) *HotReload {
	return &HotReload{shader: shader, notifier: notifier, listeners: listeners}
}

// Check reloads when a change is pending. It reports whether a new
// program is in use. A nil HotReload never reloads.
func (h *HotReload) Check() bool {
	if h == nil || h.notifier == nil || !h.notifier.Pending() {
		return false
	}
	if err := h.shader.Reload(); err != nil {
		log.Printf("shader reload failed, keeping previous program: %v", err)
		return false
	}
	for _, l := range h.listeners {
		l.OnShaderReload()
	}
	log.Printf("shader reloaded")
	return true
}
