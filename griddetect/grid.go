// Package griddetect locates the maze's grid of wall/passage cells in an
// intensity image, either as a uniform Grid or, when cells are not
// perfectly regular, a FlexGrid.
package griddetect

import (
	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/intensity"
)

// Grid is a uniform cell grid: a fixed pitch (including one gutter pixel)
// repeated row_count times down and col_count times across, starting at
// (row_offset, col_offset). Size == 0 denotes "no grid detected" (§3).
type Grid struct {
	Size               int
	RowOffset, ColOffset int
	RowCount, ColCount int
}

// Valid reports whether a grid was actually detected.
func (g Grid) Valid() bool {
	return g.Size != 0
}

const (
	minPeriod = 12
	maxPeriod = 60
)

type axisResult struct {
	offset, period, count int
}

// DetectGrid runs the uniform grid detector (§4.3) against an intensity
// image, using the given detection thresholds.
func DetectGrid(img *intensity.Image, cfg config.DetectionConfig) Grid {
	rowProfile := rowMeans(img)
	colProfile := img.ColumnProjection()

	avgRow := mean(rowProfile)
	darkModeRow := avgRow < 128

	best, ok := bestAxis(rowProfile, avgRow, darkModeRow, cfg, 0)
	if !ok {
		return Grid{}
	}

	avgCol := mean(colProfile)
	darkModeCol := avgCol < 128
	colBest, ok := bestAxis(colProfile, avgCol, darkModeCol, cfg, best.period)
	if !ok {
		return Grid{}
	}

	grid := Grid{
		Size:      best.period,
		RowOffset: best.offset,
		ColOffset: colBest.offset,
		RowCount:  best.count,
		ColCount:  colBest.count,
	}

	if grid.RowCount >= 20 || grid.ColCount >= 20 || grid.RowCount < 5 || grid.ColCount < 5 {
		return Grid{}
	}
	return grid
}

// rowMeans computes the mean intensity of each row, normalized by column
// count and the fixed divisor of 3, mirroring ColumnProjection for the
// perpendicular axis.
func rowMeans(img *intensity.Image) []float64 {
	h, w := img.Height(), img.Width()
	out := make([]float64, h)
	for y := 0; y < h; y++ {
		sum := 0.0
		for x := 0; x < w; x++ {
			sum += img.At(x, y)
		}
		out[y] = sum / float64(w) / 3
	}
	return out
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// bestAxis finds the best-scoring grid axis candidate in profile. If
// lockPeriod is nonzero, only that period is tried (used when the column
// axis must share the row axis's period).
func bestAxis(profile []float64, avg float64, darkMode bool, cfg config.DetectionConfig, lockPeriod int) (axisResult, bool) {
	n := len(profile)
	var best axisResult
	found := false

	periods := []int{lockPeriod}
	if lockPeriod == 0 {
		periods = periods[:0]
		for p := minPeriod; p < maxPeriod; p++ {
			periods = append(periods, p)
		}
	}

	for offset := 0; offset < n; offset++ {
		onIconSide := (profile[offset] > avg) != darkMode
		if !onIconSide {
			continue
		}
		for _, period := range periods {
			count, ok := tryAxis(profile, avg, offset, period, cfg)
			if !ok {
				continue
			}
			if !found || count > best.count {
				best = axisResult{offset: offset, period: period, count: count}
				found = true
			}
		}
	}
	return best, found
}

// tryAxis attempts the seek -> expand -> verify sequence for one
// (offset, period) candidate, returning the surviving count.
func tryAxis(profile []float64, avg float64, offset, period int, cfg config.DetectionConfig) (int, bool) {
	n := len(profile)
	seekSize := cfg.InitialSeekSize
	if seekSize <= 0 {
		seekSize = 12
	}

	// Seek: INITIAL_SEEK_SIZE evenly spaced samples, all on the same side of avg.
	firstSide := profile[offset] > avg
	sum := 0.0
	for i := 0; i < seekSize; i++ {
		idx := offset + i*period
		if idx >= n {
			return 0, false
		}
		if (profile[idx] > avg) != firstSide {
			return 0, false
		}
		sum += profile[idx]
	}
	count := seekSize
	runningMean := sum / float64(seekSize)

	// Expand: greedily extend while the next sample stays close to the mean.
	for {
		idx := offset + count*period
		if idx >= n {
			break
		}
		v := profile[idx]
		if diff(v, runningMean) >= float64(cfg.GridSensitivity) {
			break
		}
		sum += v
		count++
		runningMean = sum / float64(count)
	}

	// Verify: midpoints between lines must contrast strongly against the mean.
	verified := 0
	sensitivity := float64(cfg.GridSensitivity)
	for k := 0; k < count; k++ {
		idx := offset + period/2 + k*period
		if idx >= n {
			break
		}
		if diff(profile[idx], runningMean) <= sensitivity {
			break
		}
		verified++
	}
	if verified == 0 {
		return 0, false
	}
	return verified, true
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
