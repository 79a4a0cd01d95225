// Package intensity builds and manipulates the per-pixel scalar intensity
// image the grid detector and cell classifier operate on.
package intensity

import (
	"gonum.org/v1/gonum/mat"
)

// Image is a W x H array of non-negative intensity values, derived from an
// RGBA frame by a fixed luminance formula. It owns its storage exclusively;
// detectors only ever hold read views into it.
type Image struct {
	w, h int
	data *mat.Dense
}

// FromRGBA builds an Image from a row-major RGBA byte buffer (alpha
// ignored), applying the luminance formula Y = (30R+59G+11B)/34 and then the
// dark-mode normalization pass.
func FromRGBA(w, h int, rgba []byte) *Image {
	data := mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			r := float64(rgba[i])
			g := float64(rgba[i+1])
			b := float64(rgba[i+2])
			y32 := (30*r + 59*g + 11*b) / 34
			data.Set(y, x, y32)
		}
	}
	img := &Image{w: w, h: h, data: data}
	img.adjustDarkMode()
	return img
}

// FromMatrix wraps a precomputed intensity matrix, skipping dark-mode
// normalization (used by tests that want exact control of pixel values).
func FromMatrix(data *mat.Dense) *Image {
	h, w := data.Dims()
	return &Image{w: w, h: h, data: data}
}

// Width and Height report the image dimensions.
func (img *Image) Width() int  { return img.w }
func (img *Image) Height() int { return img.h }

// At returns the intensity at (x, y).
func (img *Image) At(x, y int) float64 {
	return img.data.At(y, x)
}

// ColumnProjection returns the mean intensity of each column, the column
// projection the grid detector scans (§4.3 step 1), normalized by both the
// row count and a fixed divisor of 3.
func (img *Image) ColumnProjection() []float64 {
	out := make([]float64, img.w)
	for x := 0; x < img.w; x++ {
		sum := 0.0
		for y := 0; y < img.h; y++ {
			sum += img.data.At(y, x)
		}
		out[x] = sum / float64(img.h) / 3
	}
	return out
}

// Matrix exposes the backing gonum matrix for callers that need raw
// row/column views.
func (img *Image) Matrix() *mat.Dense {
	return img.data
}

// adjustDarkMode inverts and rescales a bright-on-dark image so it detects
// identically to a dark-on-bright one (§4.1). A perfectly uniform image
// (max == min) is left untouched: the rescale is undefined when they
// coincide (§9).
func (img *Image) adjustDarkMode() {
	n := img.w * img.h
	sum, min, max := 0.0, img.data.At(0, 0), img.data.At(0, 0)
	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			v := img.data.At(y, x)
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	mean := sum / float64(n)
	if mean >= 128*3 {
		return
	}
	rescaledMax := (max + mean) / 2
	rescaledMin := (min + mean) / 2
	if rescaledMax == rescaledMin {
		return
	}
	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			v := img.data.At(y, x)
			sat := rescaledMax - v
			if sat < 0 {
				sat = 0
			}
			if sat > rescaledMax-rescaledMin {
				sat = rescaledMax - rescaledMin
			}
			img.data.Set(y, x, 256*3*sat/(rescaledMax-rescaledMin))
		}
	}
}

// GetImageData exports the image back to a grayscale RGBA buffer where
// R=G=B=Y/3 per pixel, the round-trip invariant of §8.
func (img *Image) GetImageData() []byte {
	out := make([]byte, img.w*img.h*4)
	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			v := byte(img.data.At(y, x) / 3)
			i := (y*img.w + x) * 4
			out[i] = v
			out[i+1] = v
			out[i+2] = v
			out[i+3] = 255
		}
	}
	return out
}
