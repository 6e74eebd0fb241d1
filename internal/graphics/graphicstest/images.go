package graphicstest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// WritePNG writes a small PNG to path whose IHDR reports the given
// channel count (1 gray, 3 RGB, 4 RGBA).
func WritePNG(tb testing.TB, path string, channels int) {
	tb.Helper()
	var img image.Image
	switch channels {
	case 1:
		img = image.NewGray(image.Rect(0, 0, 4, 4))
	case 3, 4:
		rgba := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for i := range rgba.Pix {
			rgba.Pix[i] = 0xff
		}
		if channels == 4 {
			rgba.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 40})
		}
		img = rgba
	default:
		tb.Fatalf("no PNG encoding for %d channels", channels)
	}

	f, err := os.Create(path)
	if err != nil {
		tb.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		tb.Fatal(err)
	}
}
