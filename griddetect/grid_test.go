package griddetect

import (
	"testing"

	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/intensity"
)

// buildGridImage renders a synthetic maze screenshot: dark grid lines every
// period pixels, bright interior cells, matching the shape of S5's smoke
// test fixture.
func buildGridImage(size, period int) *intensity.Image {
	rgba := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			onLine := x%period < 2 || y%period < 2
			v := byte(220)
			if onLine {
				v = 20
			}
			rgba[i], rgba[i+1], rgba[i+2], rgba[i+3] = v, v, v, 255
		}
	}
	return intensity.FromRGBA(size, size, rgba)
}

func TestDetectGridSmokeTest(t *testing.T) {
	img := buildGridImage(240, 20)
	cfg := config.DetectionConfig{
		DetectThreshold:  30,
		GridSensitivity:  15,
		SpikeThreshold:   40,
		InitialSeekSize:  12,
		WallFactorUniform: 15,
		WallFactorFlex:   25,
	}
	grid := DetectGrid(img, cfg)
	if !grid.Valid() {
		t.Fatalf("expected a valid grid to be detected")
	}
	if grid.RowCount < 5 || grid.RowCount >= 20 {
		t.Fatalf("row count out of bounds: %d", grid.RowCount)
	}
	if grid.ColCount < 5 || grid.ColCount >= 20 {
		t.Fatalf("col count out of bounds: %d", grid.ColCount)
	}
}

func TestDetectGridEmptyImageYieldsNoGrid(t *testing.T) {
	rgba := make([]byte, 40*40*4)
	for i := 3; i < len(rgba); i += 4 {
		rgba[i] = 255
	}
	img := intensity.FromRGBA(40, 40, rgba)
	cfg := config.DetectionConfig{GridSensitivity: 15, InitialSeekSize: 12}
	grid := DetectGrid(img, cfg)
	if grid.Valid() {
		t.Fatalf("expected no grid on a uniform image, got %+v", grid)
	}
}
