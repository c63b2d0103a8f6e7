package preprocess

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Grayscale converts img to a single-channel luminance buffer of the same
// size. Transparent areas are flattened onto white first so they read as
// paper rather than ink.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	if !isOpaque(img) {
		bg := imaging.New(b.Dx(), b.Dy(), color.White)
		img = imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
	}
	// imaging.Grayscale uses BT.601 weights and leaves R == G == B.
	nrgba := imaging.Grayscale(img)

	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+b.Dx()*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+b.Dx()]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return out
}

func isOpaque(img image.Image) bool {
	o, ok := img.(interface{ Opaque() bool })
	return ok && o.Opaque()
}
