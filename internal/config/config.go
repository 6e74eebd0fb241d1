package config

import "sync"

// WindowSettings describes the display surface.
type WindowSettings struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// CameraSettings holds the starting camera pose and input response.
type CameraSettings struct {
	Position    [3]float32 `toml:"position"`
	Front       [3]float32 `toml:"front"`
	Zoom        float32    `toml:"zoom"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
}

// AssetSettings points at the on-disk textures and shaders.
type AssetSettings struct {
	TexturesDir string `toml:"textures_dir"`
	ShadersDir  string `toml:"shaders_dir"`
}

// RenderSettings holds render loop configuration
type RenderSettings struct {
	FPSLimit     int  `toml:"fps_limit"` // 0 means unlimited
	VSync        bool `toml:"vsync"`
	Overlay      bool `toml:"overlay"`
	WatchShaders bool `toml:"watch_shaders"`
}

// Settings is the full viewer configuration.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Camera CameraSettings `toml:"camera"`
	Assets AssetSettings  `toml:"assets"`
	Render RenderSettings `toml:"render"`
}

// Default returns the built-in configuration.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Title:  "Tabletop Still Life",
			Width:  1000,
			Height: 800,
		},
		Camera: CameraSettings{
			Position:    [3]float32{0, 5, 12},
			Front:       [3]float32{0, -0.5, -2},
			Zoom:        80,
			Speed:       20,
			Sensitivity: 0.1,
		},
		Assets: AssetSettings{
			TexturesDir: "textures",
			ShadersDir:  "assets/shaders",
		},
		Render: RenderSettings{
			FPSLimit:     144,
			VSync:        true,
			Overlay:      true,
			WatchShaders: true,
		},
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns a copy of the active settings.
func Get() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active settings after clamping them to sane values.
func Set(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	current = clamp(s)
}

// GetFPSLimit returns the frame cap, 0 when uncapped.
func GetFPSLimit() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.Render.FPSLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	mu.Lock()
	defer mu.Unlock()
	current.Render.FPSLimit = clampFPS(limit)
}

// GetOverlay reports whether the status overlay is drawn.
func GetOverlay() bool {
	mu.RLock()
	defer mu.RUnlock()
	return current.Render.Overlay
}

// SetOverlay enables or disables the status overlay.
func SetOverlay(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	current.Render.Overlay = enabled
}

// GetWindowSize returns the configured window size in screen coordinates.
func GetWindowSize() (int, int) {
	mu.RLock()
	defer mu.RUnlock()
	return current.Window.Width, current.Window.Height
}

func clamp(s Settings) Settings {
	d := Default()
	if s.Window.Width <= 0 {
		s.Window.Width = d.Window.Width
	}
	if s.Window.Height <= 0 {
		s.Window.Height = d.Window.Height
	}
	if s.Window.Title == "" {
		s.Window.Title = d.Window.Title
	}
	if s.Camera.Zoom < 1 {
		s.Camera.Zoom = 1
	}
	if s.Camera.Zoom > 90 {
		s.Camera.Zoom = 90
	}
	if s.Camera.Speed <= 0 {
		s.Camera.Speed = d.Camera.Speed
	}
	if s.Camera.Sensitivity <= 0 {
		s.Camera.Sensitivity = d.Camera.Sensitivity
	}
	if s.Camera.Front == [3]float32{} {
		s.Camera.Front = d.Camera.Front
	}
	if s.Assets.TexturesDir == "" {
		s.Assets.TexturesDir = d.Assets.TexturesDir
	}
	if s.Assets.ShadersDir == "" {
		s.Assets.ShadersDir = d.Assets.ShadersDir
	}
	s.Render.FPSLimit = clampFPS(s.Render.FPSLimit)
	return s
}

func clampFPS(limit int) int {
	if limit < 0 {
		return 0
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}
