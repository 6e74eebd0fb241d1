package graphics

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontUnit is the texture unit the glyph atlas binds to, above the units
// the scene owns.
const FontUnit = MaxTextureSlots

const (
	firstGlyph = ' '
	lastGlyph  = '~'
	atlasWidth = 512
	padding    = 1
)

// Glyph is one character's place in the atlas and its metrics, in pixels.
type Glyph struct {
	AtlasX, AtlasY float32
	Width, Height  float32
	BearingX       float32
	BearingY       float32
	Advance        float32
}

// FontAtlas is a baked single channel glyph sheet.
type FontAtlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
}

// BakeFontAtlas rasterizes printable ASCII from the Go Regular face at
// the given pixel size.
func BakeFontAtlas(pixels float64) (*FontAtlas, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	// Pack rows left to right; height is known only after the first pass.
	type placed struct {
		r       rune
		x, y    int
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []placed
	x, y, rowH := 0, 0, 0
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		if x+dr.Dx()+padding > atlasWidth {
			x = 0
			y += rowH + padding
			rowH = 0
		}
		glyphs = append(glyphs, placed{r, x, y, dr, mask, maskp, advance})
		x += dr.Dx() + padding
		rowH = max(rowH, dr.Dy())
	}
	height := 1
	for height < y+rowH {
		height <<= 1
	}

	atlas := &FontAtlas{
		Image:  image.NewAlpha(image.Rect(0, 0, atlasWidth, height)),
		Glyphs: make(map[rune]Glyph, len(glyphs)),
	}
	for _, g := range glyphs {
		if g.dr.Dx() > 0 && g.dr.Dy() > 0 {
			dst := image.Rect(g.x, g.y, g.x+g.dr.Dx(), g.y+g.dr.Dy())
			draw.Draw(atlas.Image, dst, g.mask, g.maskp, draw.Src)
		}
		atlas.Glyphs[g.r] = Glyph{
			AtlasX:   float32(g.x),
			AtlasY:   float32(g.y),
			Width:    float32(g.dr.Dx()),
			Height:   float32(g.dr.Dy()),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  float32(math.Round(float64(g.advance) / 64.0)),
		}
	}
	return atlas, nil
}

// Measure returns the width and tallest glyph height of text at scale.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var w, h float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		w += g.Advance * scale
		h = max(h, g.Height*scale)
	}
	return w, h
}

// Quads returns two triangles per glyph of text, 4 floats per vertex
// (screen x, y and atlas u, v), with y growing downward from the baseline.
func (a *FontAtlas) Quads(text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())
	out := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			x += a.Glyphs[' '].Advance * scale
			continue
		}
		if g.Width > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1, y1 := x0+g.Width*scale, y0+g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := u0+g.Width/aw, v0+g.Height/ah
			out = append(out,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return out
}

// FontRenderer draws text from a FontAtlas in window pixel coordinates.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	texture    uint32
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and compiles the text shader.
func NewFontRenderer(atlas *FontAtlas, vertPath, fragPath string, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(vertPath, fragPath)
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(width, height)

	gl.GenTextures(1, &fr.texture)
	gl.ActiveTexture(gl.TEXTURE0 + FontUnit)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	size := atlas.Image.Rect.Size()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(size.X), int32(size.Y), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	CheckError("font init")

	return fr, nil
}

// SetViewport maps text coordinates to a width x height window, origin top left.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// RenderLines draws lines starting at (x, yStart), each lineStep pixels
// below the previous one, in a single draw call.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	y := yStart
	for _, line := range lines {
		verts = append(verts, fr.atlas.Quads(line, x, y, scale)...)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMat4("projection", fr.projection)
	fr.shader.SetSampler2D("text", FontUnit)

	gl.ActiveTexture(gl.TEXTURE0 + FontUnit)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// orphan then fill
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Enable(gl.DEPTH_TEST)
}

// Measure returns the pixel size of text at scale.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return fr.atlas.Measure(text, scale)
}

func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
	}
	fr.shader.Delete()
}
