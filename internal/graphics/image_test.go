package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodePNGChannels(t *testing.T) {
	opaque := solid(3, 2, color.NRGBA{10, 20, 30, 255})
	translucent := solid(3, 2, color.NRGBA{10, 20, 30, 255})
	translucent.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 128})

	gray := image.NewGray(image.Rect(0, 0, 2, 2))

	pal := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 255, 0, 255}})
	palAlpha := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 0, 0, 0}})

	cases := []struct {
		name string
		img  image.Image
		want int
	}{
		{"rgb", opaque, 3},
		{"rgba", translucent, 4},
		{"gray", gray, 1},
		{"palette", pal, 3},
		{"palette with transparency", palAlpha, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := DecodeImage(encodePNG(t, tc.img))
			require.NoError(t, err)
			assert.Equal(t, tc.want, data.Channels)
			out := 3
			if tc.want == 4 {
				out = 4
			}
			b := tc.img.Bounds()
			assert.Len(t, data.Pix, b.Dx()*b.Dy()*out)
		})
	}
}

func TestDecodeFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})

	data, err := DecodeImage(encodePNG(t, img))
	require.NoError(t, err)
	require.Equal(t, 3, data.Channels)
	// bottom row of the source comes first
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0}, data.Pix)
}

func TestDecodeOtherFormats(t *testing.T) {
	var jbuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jbuf, solid(8, 8, color.NRGBA{200, 100, 50, 255}), nil))
	data, err := DecodeImage(jbuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 3, data.Channels)

	var gbuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&gbuf, image.NewGray(image.Rect(0, 0, 8, 8)), nil))
	data, err = DecodeImage(gbuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, data.Channels)

	var bbuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bbuf, solid(4, 4, color.NRGBA{1, 2, 3, 255})))
	data, err = DecodeImage(bbuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 3, data.Channels)
	assert.Equal(t, []byte{1, 2, 3}, data.Pix[:3])
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeImage([]byte("not an image"))
	assert.Error(t, err)
}

func TestLoadImage(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "tex.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, solid(4, 2, color.NRGBA{9, 9, 9, 255})), 0o644))
	data, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 4, data.Width)
	assert.Equal(t, 2, data.Height)
}
