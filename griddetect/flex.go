package griddetect

import (
	"sort"

	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/intensity"
)

// FlexGrid describes an irregular maze layout: explicit sorted gutter
// offsets per axis plus a common cell pitch. len(Rows) and len(Cols) are
// both at least 5 when valid (§3).
type FlexGrid struct {
	CellSize int
	Rows     []int
	Cols     []int
}

// Valid reports whether a flex grid was actually detected.
func (g FlexGrid) Valid() bool {
	return len(g.Rows) >= 5 && len(g.Cols) >= 5
}

// DetectFlexGrid runs the flexible grid detector (§4.4).
func DetectFlexGrid(img *intensity.Image, cfg config.DetectionConfig) FlexGrid {
	rowProfile := rowMeans(img)
	colProfile := img.ColumnProjection()

	rows, period := chainDips(rowProfile, cfg, 0)
	if len(rows) < 5 {
		return FlexGrid{}
	}

	cols, _ := chainDips(colProfile, cfg, period)
	if len(cols) < 5 {
		return FlexGrid{}
	}

	filteredRows := filterByIntersection(img, rows, cols)
	if len(filteredRows) < 5 {
		return FlexGrid{}
	}

	return FlexGrid{CellSize: period, Rows: filteredRows, Cols: cols}
}

// chainDips finds the dip spacing ("gutter" positions) of a 1-D profile. If
// lockPeriod is nonzero, only a narrow window around it is tried.
func chainDips(profile []float64, cfg config.DetectionConfig, lockPeriod int) ([]int, int) {
	g := 2
	dips := dipIndices(profile, g, cfg)
	chain, period := longestChain(dips, cfg, lockPeriod)
	if lockPeriod == 0 && period > 26 {
		g = 3
		dips = dipIndices(profile, g, cfg)
		chain, period = longestChain(dips, cfg, lockPeriod)
	}
	return chain, period
}

// dipIndices finds local valleys: profile[i] < profile[i+g] < profile[i+2g],
// with both adjacent differences exceeding SPIKE_THRESHOLD.
func dipIndices(profile []float64, g int, cfg config.DetectionConfig) []int {
	var out []int
	spike := float64(cfg.SpikeThreshold)
	for i := 0; i+2*g < len(profile); i++ {
		a, b, c := profile[i], profile[i+g], profile[i+2*g]
		if a < b && b < c && diff(b, a) > spike && diff(c, b) > spike {
			out = append(out, i+g)
		}
	}
	return out
}

// longestChain greedily chains dips spaced ~period apart and returns the
// longest chain found across all (start, period) pairs, or the single
// period window when lockPeriod is set.
func longestChain(dips []int, cfg config.DetectionConfig, lockPeriod int) ([]int, int) {
	periods := []int{lockPeriod}
	if lockPeriod == 0 {
		periods = periods[:0]
		for p := minPeriod; p < maxPeriod; p++ {
			periods = append(periods, p)
		}
	} else {
		periods = []int{lockPeriod - 1, lockPeriod, lockPeriod + 1}
	}

	var best []int
	bestPeriod := 0
	for _, period := range periods {
		for _, start := range dips {
			chain := []int{start}
			prev := start
			for {
				next, ok := nearestWithin(dips, prev+period, 2)
				if !ok {
					break
				}
				chain = append(chain, next)
				prev = next
			}
			if len(chain) > len(best) {
				best = chain
				bestPeriod = period
			}
		}
	}
	return best, bestPeriod
}

func nearestWithin(dips []int, target, tol int) (int, bool) {
	best := -1
	bestDiff := tol + 1
	for _, d := range dips {
		if diff(float64(d), float64(target)) <= float64(tol) {
			dd := int(diff(float64(d), float64(target)))
			if dd < bestDiff {
				bestDiff = dd
				best = d
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// filterByIntersection keeps only row offsets that intersect at least 5
// column offsets at a genuine "+" intersection.
func filterByIntersection(img *intensity.Image, rows, cols []int) []int {
	var out []int
	for _, r := range rows {
		count := 0
		for _, c := range cols {
			if isIntersection(img, c, r) {
				count++
			}
		}
		if count >= 5 {
			out = append(out, r)
		}
	}
	sort.Ints(out)
	return out
}

// isIntersection tests a small patch around (x, y): corners bright, at
// least one horizontal arm and one vertical arm dark.
func isIntersection(img *intensity.Image, x, y int) bool {
	w, h := img.Width(), img.Height()
	const arm = 3
	if x-arm < 0 || x+arm >= w || y-arm < 0 || y+arm >= h {
		return false
	}
	avg := img.At(x, y)

	corners := []float64{
		img.At(x-arm, y-arm), img.At(x+arm, y-arm),
		img.At(x-arm, y+arm), img.At(x+arm, y+arm),
	}
	cornersBright := true
	for _, c := range corners {
		if c <= avg {
			cornersBright = false
			break
		}
	}

	horizDark := img.At(x-arm, y) < avg || img.At(x+arm, y) < avg
	vertDark := img.At(x, y-arm) < avg || img.At(x, y+arm) < avg

	return cornersBright && horizDark && vertDark
}
