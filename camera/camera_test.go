package camera

import "testing"

func TestNewCentersOnWorld(t *testing.T) {
	c := New(800, 600, 400, 400)
	if c.X != 200 || c.Y != 200 {
		t.Fatalf("center = (%v,%v), want (200,200)", c.X, c.Y)
	}
}

func TestPanClampsToWorldBounds(t *testing.T) {
	c := New(100, 100, 400, 400)
	c.SetZoom(4) // half-extent 12.5, well inside bounds

	c.Pan(-100000, -100000)
	if c.X < 0 || c.Y < 0 {
		t.Fatalf("camera panned past the world origin: (%v,%v)", c.X, c.Y)
	}

	c.Pan(100000, 100000)
	if c.X > c.WorldW || c.Y > c.WorldH {
		t.Fatalf("camera panned past the world extent: (%v,%v)", c.X, c.Y)
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	c := New(800, 600, 400, 400)
	sx, sy := c.WorldToScreen(150, 250)
	wx, wy := c.ScreenToWorld(sx, sy)
	if absf(wx-150) > 1e-3 || absf(wy-250) > 1e-3 {
		t.Fatalf("round trip = (%v,%v), want (150,250)", wx, wy)
	}
}

func TestSetZoomClampsToRange(t *testing.T) {
	c := New(800, 600, 400, 400)
	c.SetZoom(0.01)
	if c.Zoom != c.MinZoom {
		t.Fatalf("zoom = %v, want MinZoom %v", c.Zoom, c.MinZoom)
	}
	c.SetZoom(1000)
	if c.Zoom != c.MaxZoom {
		t.Fatalf("zoom = %v, want MaxZoom %v", c.Zoom, c.MaxZoom)
	}
}
