// Package brief builds and compares BRIEF (Binary Robust Independent
// Elementary Features) descriptors of small grayscale patches, the signature
// the Cell Classifier matches against the static icon catalogue.
package brief

import (
	"math/bits"

	"github.com/kriolyth/gv-subway/catalogue"
)

// PatchSize is the fixed resolution a source patch is resized to before
// descriptor bits are sampled.
const PatchSize = 24

// blurSigma is the Gaussian blur applied after resizing.
const blurSigma = 0.6

// Descriptor is a 192-bit BRIEF signature, carried as six uint32 words to
// match the catalogue's wire layout.
type Descriptor struct {
	Bits [6]uint32
}

// Hamming returns the number of differing bits between two descriptors.
func (d Descriptor) Hamming(o Descriptor) int {
	n := 0
	for i := range d.Bits {
		n += bits.OnesCount32(d.Bits[i] ^ o.Bits[i])
	}
	return n
}

// FeatureVector is the pair of descriptors taken at a patch's center of mass
// and at one column to its right, tolerating a one-pixel misalignment.
type FeatureVector struct {
	CenterX, CenterY int
	A, B             Descriptor
}

// Threshold computes the BRIEF construction threshold for a patch given its
// min and max intensity: near-uniform patches threshold at zero rather than
// producing a meaningless split.
func Threshold(min, max float64) float64 {
	if max-min < 30 {
		return 0
	}
	return (2*min + 5*max) / 7
}

// Build constructs a FeatureVector from a w x h grayscale patch (typically an
// 8x8 cell inset). It thresholds, resizes to 24x24 with Catmull-Rom
// interpolation, blurs, locates the binary center of mass, and samples the
// fixed offset pairs at that center and one column to the right.
func Build(patch []float64, w, h int) FeatureVector {
	min, max := minMax(patch)
	thr := Threshold(min, max)

	binary := make([]float64, len(patch))
	for i, v := range patch {
		if v > thr {
			binary[i] = 1
		}
	}

	resized := resizeCatmullRom(binary, w, h, PatchSize, PatchSize)
	blurred := gaussianBlur(resized, PatchSize, PatchSize, blurSigma)

	cx, cy := centerOfMass(resized, PatchSize, PatchSize)

	return FeatureVector{
		CenterX: cx,
		CenterY: cy,
		A:       sampleDescriptor(blurred, PatchSize, PatchSize, cx, cy),
		B:       sampleDescriptor(blurred, PatchSize, PatchSize, cx+1, cy),
	}
}

// sampleDescriptor emits one bit per fixed offset pair, comparing intensities
// at the two pixels of the pair relative to the given center.
func sampleDescriptor(img []float64, w, h, cx, cy int) Descriptor {
	var d Descriptor
	for i, p := range pairs {
		ax := clampIdx(cx+p.ax, w)
		ay := clampIdx(cy+p.ay, h)
		bx := clampIdx(cx+p.bx, w)
		by := clampIdx(cy+p.by, h)
		left := img[ay*w+ax]
		right := img[by*w+bx]
		if left > right {
			word := i / 32
			bit := uint(i % 32)
			d.Bits[word] |= 1 << bit
		}
	}
	return d
}

// centerOfMass returns the center of mass of the pixels of a w x h grayscale
// patch whose value exceeds 0.5, each weighted by its value (the patch has
// already been through a 0/1 threshold and smooth-resized, so 0.5 is the
// natural foreground/background split).
func centerOfMass(img []float64, w, h int) (int, int) {
	var sumX, sumY, mass float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := img[y*w+x]
			if v <= 0.5 {
				continue
			}
			sumX += float64(x) * v
			sumY += float64(y) * v
			mass += v
		}
	}
	if mass == 0 {
		return w / 2, h / 2
	}
	return int(sumX / mass), int(sumY / mass)
}

func minMax(v []float64) (float64, float64) {
	if len(v) == 0 {
		return 0, 0
	}
	min, max := v[0], v[0]
	for _, x := range v[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

// DistanceTo returns the minimum Hamming distance between this feature
// vector and a catalogue entry, trying both horizontal-offset alignments
// (§4.2): min(H(a0,b0), H(a0,b1), H(a1,b1)).
func (fv FeatureVector) DistanceTo(e catalogue.Entry) int {
	eb0 := Descriptor{Bits: e.Bits1}
	eb1 := Descriptor{Bits: e.Bits2}
	d1 := fv.A.Hamming(eb0)
	d2 := fv.A.Hamming(eb1)
	d3 := fv.B.Hamming(eb1)
	min := d1
	if d2 < min {
		min = d2
	}
	if d3 < min {
		min = d3
	}
	return min
}

// Classify scans the static catalogue and returns the mark with the smallest
// distance, and that distance. The caller is responsible for rejecting
// matches above DETECT_THRESHOLD.
func Classify(fv FeatureVector) (catalogue.Mark, int) {
	best := catalogue.MarkNone
	bestDist := 1 << 30
	for _, e := range catalogue.Table {
		d := fv.DistanceTo(e)
		if d < bestDist {
			bestDist = d
			best = e.Mark
		}
	}
	return best, bestDist
}
