// Package overlay draws the status text in the top left corner.
package overlay

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tabletop/internal/config"
	"tabletop/internal/graphics"
	"tabletop/internal/graphics/renderer"
	"tabletop/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 18
	lineStep   = 20
	topLine    = 24
	leftMargin = 10
)

// Overlay implements renderer.Renderable for the status text.
type Overlay struct {
	shadersDir    string
	width, height int

	fontRenderer *graphics.FontRenderer

	frames       int
	lastFPSCheck time.Time
	currentFPS   int
}

// New returns an overlay that loads its shader from shadersDir/font.
func New(shadersDir string, width, height int) *Overlay {
	return &Overlay{shadersDir: shadersDir, width: width, height: height}
}

// Init bakes the font atlas and compiles the text shader.
func (o *Overlay) Init() error {
	atlas, err := graphics.BakeFontAtlas(fontPixels)
	if err != nil {
		return err
	}
	dir := filepath.Join(o.shadersDir, "font")
	fr, err := graphics.NewFontRenderer(atlas, filepath.Join(dir, "font.vert"), filepath.Join(dir, "font.frag"), o.width, o.height)
	if err != nil {
		return err
	}
	o.fontRenderer = fr
	o.lastFPSCheck = time.Now()
	return nil
}

// Render draws the status lines when the overlay is enabled.
func (o *Overlay) Render(ctx renderer.RenderContext) {
	o.frames++
	if time.Since(o.lastFPSCheck) >= time.Second {
		o.currentFPS = o.frames
		o.lastFPSCheck = time.Now()
		o.frames = 0
	}
	if !config.GetOverlay() || o.fontRenderer == nil {
		return
	}
	defer profiling.Track("overlay.render")()
	lines := StatusLines(ctx, o.currentFPS, profiling.TopN(3))
	o.fontRenderer.RenderLines(lines, leftMargin, topLine, lineStep, 1, mgl32.Vec3{1, 1, 1})
}

func (o *Overlay) SetViewport(width, height int) {
	o.width, o.height = width, height
	if o.fontRenderer != nil {
		o.fontRenderer.SetViewport(width, height)
	}
}

func (o *Overlay) Dispose() {
	if o.fontRenderer != nil {
		o.fontRenderer.Dispose()
		o.fontRenderer = nil
	}
}

// StatusLines formats the overlay text for one frame.
func StatusLines(ctx renderer.RenderContext, fps int, top string) []string {
	lines := []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Projection: %s (P/O)", ctx.Mode),
	}
	if cam := ctx.Camera; cam != nil {
		p := cam.Position
		lines = append(lines,
			fmt.Sprintf("Camera: %.2f %.2f %.2f", p.X(), p.Y(), p.Z()),
			fmt.Sprintf("Yaw %.1f Pitch %.1f Zoom %.1f", cam.Yaw, cam.Pitch, cam.Zoom),
		)
	}
	if top != "" {
		lines = append(lines, strings.Split(top, ", ")...)
	}
	lines = append(lines, "WASD/QE move, Tab cursor, F1 overlay, Esc quit")
	return lines
}
