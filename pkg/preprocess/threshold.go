package preprocess

import "image"

// DefaultThreshold is tuned for faint carbon-copy receipts, where the ink is
// only a little darker than the paper. Pixels darker than this become black.
const DefaultThreshold uint8 = 189

// Threshold maps every pixel of src to 0 when it is below t and to 255
// otherwise. The result has the same bounds as src.
func Threshold(src *image.Gray, t uint8) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(b)
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(b.Min.X, b.Min.Y+y)
		row := src.Pix[si : si+w]
		dst := out.Pix[di : di+w]
		for x, v := range row {
			if v < t {
				dst[x] = 0
			} else {
				dst[x] = 255
			}
		}
	}
	return out
}

// Binarize runs grayscale conversion and the default threshold in one go.
func Binarize(img image.Image) *image.Gray {
	return Threshold(Grayscale(img), DefaultThreshold)
}
