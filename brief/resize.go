package brief

import "math"

// catmullRom evaluates the Catmull-Rom spline through four samples at
// parameter t in [0,1], p1..p2 being the interpolated span.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// sample1D interpolates src (length n) at fractional position x using
// Catmull-Rom, clamping the four taps to the array bounds.
func sample1D(src []float64, n int, x float64) float64 {
	i := int(x)
	f := x - float64(i)
	p0 := src[clampIdx(i-1, n)]
	p1 := src[clampIdx(i, n)]
	p2 := src[clampIdx(i+1, n)]
	p3 := src[clampIdx(i+2, n)]
	return catmullRom(p0, p1, p2, p3, f)
}

// resizeCatmullRom resizes a srcW x srcH grayscale patch to dstW x dstH using
// separable Catmull-Rom interpolation (rows, then columns).
func resizeCatmullRom(src []float64, srcW, srcH, dstW, dstH int) []float64 {
	// Horizontal pass: srcH rows of width dstW.
	horiz := make([]float64, srcH*dstW)
	scaleX := float64(srcW) / float64(dstW)
	for y := 0; y < srcH; y++ {
		row := src[y*srcW : (y+1)*srcW]
		for x := 0; x < dstW; x++ {
			sx := (float64(x)+0.5)*scaleX - 0.5
			horiz[y*dstW+x] = sample1D(row, srcW, sx)
		}
	}

	// Vertical pass: dstW columns of height dstH.
	out := make([]float64, dstH*dstW)
	scaleY := float64(srcH) / float64(dstH)
	col := make([]float64, srcH)
	for x := 0; x < dstW; x++ {
		for y := 0; y < srcH; y++ {
			col[y] = horiz[y*dstW+x]
		}
		for y := 0; y < dstH; y++ {
			sy := (float64(y)+0.5)*scaleY - 0.5
			out[y*dstW+x] = sample1D(col, srcH, sy)
		}
	}
	return out
}

// gaussianKernel1D returns a normalized 1-D Gaussian kernel for the given
// sigma, radius chosen to cover 3 standard deviations.
func gaussianKernel1D(sigma float64) []float64 {
	radius := int(3*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}
	k := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range k {
		d := float64(i - radius)
		v := math.Exp(-(d * d) / (2 * sigma * sigma))
		k[i] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// gaussianBlur applies a separable Gaussian blur of the given sigma to a
// w x h grayscale image, clamping at the borders.
func gaussianBlur(src []float64, w, h int, sigma float64) []float64 {
	k := gaussianKernel1D(sigma)
	radius := len(k) / 2

	horiz := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0.0
			for i, weight := range k {
				sx := clampIdx(x+i-radius, w)
				sum += weight * src[y*w+sx]
			}
			horiz[y*w+x] = sum
		}
	}

	out := make([]float64, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sum := 0.0
			for i, weight := range k {
				sy := clampIdx(y+i-radius, h)
				sum += weight * horiz[sy*w+x]
			}
			out[y*w+x] = sum
		}
	}
	return out
}
