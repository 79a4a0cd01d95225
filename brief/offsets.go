package brief

// NumBits is the length of a BRIEF signature in bits; it is carried as six
// 32-bit words, matching the wire layout of the static catalogue (§6).
const NumBits = 192

// patchRadius bounds how far an offset pair may reach from the patch center,
// in pixels of the 24x24 resized patch.
const patchRadius = 9

// offsetSeed is fixed so the pair table never changes between runs: every
// FeatureVector built by this package, and the catalogue it is compared
// against, must use the same pairs or distances become meaningless.
// catalogue.Table's bits were generated by running this exact pipeline
// (Threshold, resize, blur, center-of-mass, sampleDescriptor) against the
// synthetic per-class reference patches (one geometric shape per Mark, see
// DESIGN.md), so
// the generator is a plain splitmix64 rather than math/rand: a sequence this
// easy to reproduce outside the package is what let the catalogue be
// regenerated to match it.
const offsetSeed = 0xB81EF0

type pairOffset struct {
	ax, ay, bx, by int
}

var pairs = buildOffsets()

// splitmix64 is Vigna's fixed-point mixing function; used here purely as a
// small deterministic integer stream, not for its statistical properties.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}

func buildOffsets() [NumBits]pairOffset {
	state := uint64(offsetSeed)
	span := uint64(2*patchRadius + 1)
	next := func() int {
		return int(splitmix64(&state)%span) - patchRadius
	}
	var out [NumBits]pairOffset
	for i := range out {
		out[i] = pairOffset{ax: next(), ay: next(), bx: next(), by: next()}
	}
	return out
}
