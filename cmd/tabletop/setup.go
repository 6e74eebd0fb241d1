package main

import (
	"fmt"
	"log"
	"path/filepath"

	"tabletop/internal/config"
	"tabletop/internal/game"
	"tabletop/internal/graphics"
	"tabletop/internal/graphics/renderables/overlay"
	renderer "tabletop/internal/graphics/renderer"
	"tabletop/internal/input"
	"tabletop/internal/scene"
	"tabletop/internal/view"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// components holds everything main wires together.
type components struct {
	window   *glfw.Window
	shader   *graphics.Shader
	renderer *renderer.Renderer
	watcher  *graphics.ShaderWatcher
	app      *game.App
}

func setup(s config.Settings) (*components, error) {
	inputManager := input.NewInputManager()

	// The scene shader needs a context, so the view gets its sink after
	// the window exists.
	viewManager := view.NewManager(nil, inputManager, s)
	window, err := viewManager.CreateDisplayWindow(s.Window.Title)
	if err != nil {
		return nil, err
	}
	inputManager.SetKeyCallback(window)
	if s.Render.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	sceneDir := filepath.Join(s.Assets.ShadersDir, "scene")
	vertPath := filepath.Join(sceneDir, "scene.vert")
	fragPath := filepath.Join(sceneDir, "scene.frag")
	shader, err := graphics.NewShader(vertPath, fragPath)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	viewManager.SetUniforms(shader)

	sceneManager := scene.NewManager(shader, graphics.GLTextures{}, graphics.NewGLMeshes(), s.Assets.TexturesDir)
	width, height := window.GetFramebufferSize()
	textOverlay := overlay.New(s.Assets.ShadersDir, width, height)

	r, err := renderer.NewRenderer(shader, viewManager, sceneManager, textOverlay)
	if err != nil {
		shader.Delete()
		window.Destroy()
		return nil, err
	}

	c := &components{window: window, shader: shader, renderer: r}

	var hotReload *game.HotReload
	if s.Render.WatchShaders {
		watcher, err := graphics.NewShaderWatcher(vertPath, fragPath)
		if err != nil {
			log.Printf("shader watch disabled: %v", err)
		} else {
			c.watcher = watcher
			hotReload = game.NewHotReload(shader, watcher, sceneManager)
		}
	}

	c.app = game.NewApp(window, inputManager, r, hotReload)
	return c, nil
}

func (c *components) run() {
	c.app.Run()
}

// dispose releases GL resources. It must run on the main thread with the
// context current.
func (c *components) dispose() {
	c.renderer.Dispose()
	c.shader.Delete()
	c.window.Destroy()
}

func (c *components) closeWatcher() {
	if c.watcher != nil {
		if err := c.watcher.Close(); err != nil {
			log.Printf("close shader watcher: %v", err)
		}
	}
	log.Printf("bye")
}
