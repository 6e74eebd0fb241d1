package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxTextureSlots is the number of texture units reserved for the scene.
// Units at and above it are free for overlays.
const MaxTextureSlots = 16

// GLTextures uploads decoded images as 2D textures on the current context.
type GLTextures struct{}

// Upload creates a mipmapped, repeating, linearly filtered texture from img.
func (GLTextures) Upload(img *ImageData) (uint32, error) {
	var internal int32
	var format uint32
	switch img.Channels {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("cannot upload %d channel image", img.Channels)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for odd widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internal,
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	CheckError("texture upload")

	return texture, nil
}

// Bind binds handle to texture unit unit.
func (GLTextures) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Delete releases the given textures.
func (GLTextures) Delete(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
