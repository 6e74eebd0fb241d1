package graphics

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageData is a decoded image ready for upload: rows bottom-up (OpenGL
// order), Channels bytes per pixel, tightly packed.
type ImageData struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// LoadImage reads and decodes an image file. See DecodeImage.
func LoadImage(path string) (*ImageData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	img, err := DecodeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes raw image bytes, flips the rows vertically and reports
// the channel count of the source. Sources with one or two channels are
// expanded to RGB so the caller can still inspect them, but Channels keeps
// the source count.
func DecodeImage(raw []byte) (*ImageData, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	channels := sourceChannels(raw, img)
	if channels == 0 {
		return nil, fmt.Errorf("unknown color model %T", img.ColorModel())
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	out := 3
	if channels == 4 {
		out = 4
	}
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 0, w*h*out)
	for y := h - 1; y >= 0; y-- {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		if out == 4 {
			pix = append(pix, row...)
			continue
		}
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return &ImageData{Width: w, Height: h, Channels: channels, Pix: pix}, nil
}

func sourceChannels(raw []byte, img image.Image) int {
	if n, ok := pngChannels(raw); ok {
		return n
	}
	switch m := img.ColorModel().(type) {
	case color.Palette:
		for _, c := range m {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		switch m {
		case color.GrayModel, color.Gray16Model:
			return 1
		case color.NRGBAModel, color.NRGBA64Model:
			return 4
		case color.RGBAModel, color.RGBA64Model, color.YCbCrModel, color.CMYKModel:
			return 3
		case color.AlphaModel, color.Alpha16Model:
			return 1
		}
	}
	return 0
}

// pngChannels reads the channel count from the IHDR colour type. Palette
// images count as RGBA when a tRNS chunk is present.
func pngChannels(raw []byte) (int, bool) {
	if len(raw) < 33 || !bytes.Equal(raw[:8], pngSignature) {
		return 0, false
	}
	switch raw[25] {
	case 0:
		return 1, true
	case 2:
		return 3, true
	case 3:
		if hasChunk(raw, "tRNS") {
			return 4, true
		}
		return 3, true
	case 4:
		return 2, true
	case 6:
		return 4, true
	}
	return 0, false
}

func hasChunk(raw []byte, name string) bool {
	for off := 8; off+8 <= len(raw); {
		length := int(binary.BigEndian.Uint32(raw[off:]))
		kind := string(raw[off+4 : off+8])
		if kind == name {
			return true
		}
		if kind == "IDAT" || kind == "IEND" {
			return false
		}
		off += 12 + length
	}
	return false
}
