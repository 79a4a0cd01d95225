package brief

import (
	"testing"

	"github.com/kriolyth/gv-subway/catalogue"
)

func TestDescriptorSelfDistanceZero(t *testing.T) {
	d := Descriptor{Bits: [6]uint32{1, 2, 3, 4, 5, 6}}
	if got := d.Hamming(d); got != 0 {
		t.Fatalf("Hamming(d,d) = %d, want 0", got)
	}
}

func TestFeatureVectorDistanceToOwnEntryIsZero(t *testing.T) {
	patch := make([]float64, 8*8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				patch[y*8+x] = 200
			} else {
				patch[y*8+x] = 10
			}
		}
	}
	fv := Build(patch, 8, 8)

	entry := catalogue.Entry{Bits1: fv.A.Bits, Bits2: fv.B.Bits, Mark: catalogue.MarkEntrance}
	if d := fv.DistanceTo(entry); d != 0 {
		t.Fatalf("distance to own entry = %d, want 0", d)
	}
}

func TestThresholdNearUniformIsZero(t *testing.T) {
	if got := Threshold(100, 110); got != 0 {
		t.Fatalf("Threshold(100,110) = %v, want 0", got)
	}
}

func TestThresholdSplitsOnRange(t *testing.T) {
	got := Threshold(0, 70)
	want := (2*0 + 5*70) / 7.0
	if got != want {
		t.Fatalf("Threshold(0,70) = %v, want %v", got, want)
	}
}

// TestClassifyMatchesIndependentlyRenderedEntranceIcon renders an Entrance
// icon from its shape rule directly (vertical stripes, one pixel perturbed
// to stand in for sensor noise) rather than deriving a FeatureVector's bits
// and wrapping them back into a catalogue.Entry, then checks it against the
// real static catalogue end to end.
func TestClassifyMatchesIndependentlyRenderedEntranceIcon(t *testing.T) {
	patch := make([]float64, 8*8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			stripe := x%2 == 0
			if x == 2 && y == 3 {
				stripe = !stripe
			}
			if stripe {
				patch[y*8+x] = 220
			} else {
				patch[y*8+x] = 30
			}
		}
	}

	fv := Build(patch, 8, 8)
	mark, dist := Classify(fv)

	if mark != catalogue.MarkEntrance {
		t.Fatalf("Classify(independently rendered Entrance icon) = %v, want MarkEntrance", mark)
	}
	if dist >= 30 {
		t.Fatalf("distance to catalogue = %d, want < 30 (detect_threshold)", dist)
	}
}

func TestClassifyPicksMinimumDistance(t *testing.T) {
	mark, dist := Classify(FeatureVector{A: Descriptor{Bits: catalogue.Table[24].Bits1}, B: Descriptor{Bits: catalogue.Table[24].Bits2}})
	if mark != catalogue.MarkNone {
		t.Fatalf("Classify of the None entry's own bits = %v, want MarkNone", mark)
	}
	if dist != 0 {
		t.Fatalf("distance = %d, want 0", dist)
	}
}
