package imageproc

import (
	"testing"

	"github.com/kriolyth/gv-subway/config"
)

func testConfig() config.DetectionConfig {
	return config.DetectionConfig{
		DetectThreshold:   30,
		GridSensitivity:   15,
		SpikeThreshold:    40,
		InitialSeekSize:   12,
		WallFactorUniform: 15,
		WallFactorFlex:    25,
		PassUniformSpread: 40,
		IconSpreadUniform: 100,
	}
}

func buildFrame(size, period int) []byte {
	rgba := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			v := byte(220)
			if x%period < 2 || y%period < 2 {
				v = 20
			}
			rgba[i], rgba[i+1], rgba[i+2], rgba[i+3] = v, v, v, 255
		}
	}
	return rgba
}

func TestNewAndRoundTrip(t *testing.T) {
	rgba := buildFrame(40, 20)
	p := New(40, 40, rgba, testConfig(), false)
	if p.Width() != 40 || p.Height() != 40 {
		t.Fatalf("dimensions = %dx%d, want 40x40", p.Width(), p.Height())
	}
	out := p.GetImageData()
	if len(out) != len(rgba) {
		t.Fatalf("GetImageData length = %d, want %d", len(out), len(rgba))
	}
}

func TestDetectGridThenMaze(t *testing.T) {
	rgba := buildFrame(240, 20)
	p := New(240, 240, rgba, testConfig(), false)
	grid := p.DetectGrid()
	if !grid.Valid() {
		t.Fatalf("expected a valid grid")
	}
	m := p.DetectMaze(grid)
	if !m.IsValid() {
		t.Fatalf("expected a valid maze")
	}
}

func TestDebugDrawNoopWhenDisabled(t *testing.T) {
	rgba := buildFrame(240, 20)
	p := New(240, 240, rgba, testConfig(), false)
	grid := p.DetectGrid()
	m := p.DetectMaze(grid)
	p.DebugDraw(m) // must not panic when debug is off
}
