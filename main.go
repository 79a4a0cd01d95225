// Command gv-subway is the interactive overlay viewer: load a maze
// screenshot, detect its grid and icons, run the flow stepper, and draw the
// visit-probability heatmap over the source image.
package main

import (
	"flag"
	"fmt"
	"os"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/kriolyth/gv-subway/camera"
	"github.com/kriolyth/gv-subway/config"
	"github.com/kriolyth/gv-subway/imageproc"
	"github.com/kriolyth/gv-subway/maze"
	"github.com/kriolyth/gv-subway/subway"
)

const (
	windowWidth  = 1100
	windowHeight = 760
	panelWidth   = 260
)

var (
	imagePath  = flag.String("image", "", "Maze screenshot to analyze (empty = built-in demo maze)")
	configPath = flag.String("config", "", "Config YAML file (empty = embedded defaults)")
	debug      = flag.Bool("debug", false, "Enable the debug logging channel")
)

// viewer holds everything the overlay draws and steps each frame.
type viewer struct {
	cfg   *config.Config
	proc  *imageproc.Processor
	field *subway.Field
	cam   *camera.Camera

	sourceW, sourceH int32
	texture          rl.Texture2D

	tick        uint32
	running     bool
	jumpy       bool
	stepsPerSec float32
	accum       float32
}

func main() {
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "gv-subway overlay viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	v := newViewer(config.Cfg())
	defer rl.UnloadTexture(v.texture)

	for !rl.WindowShouldClose() {
		v.update()
		v.draw()
	}
}

func newViewer(cfg *config.Config) *viewer {
	v := &viewer{cfg: cfg, stepsPerSec: 5, field: subway.New(cfg.Simulation)}

	var rgba []byte
	if *imagePath != "" {
		img := rl.LoadImage(*imagePath)
		defer rl.UnloadImage(img)
		v.sourceW, v.sourceH = img.Width, img.Height
		rgba = imageToRGBA(img)
	} else {
		v.sourceW, v.sourceH = 240, 240
		rgba = demoFrame(int(v.sourceW), int(v.sourceH))
	}

	v.proc = imageproc.New(int(v.sourceW), int(v.sourceH), rgba, cfg.Detection, *debug)
	v.cam = camera.New(windowWidth-panelWidth, windowHeight, float32(v.sourceW), float32(v.sourceH))

	v.detect()
	v.texture = v.textureFromFrame(v.proc.GetImageData())

	return v
}

// textureFromFrame builds a GPU texture directly from a raw RGBA buffer,
// the same rl.Image-literal pattern used to upload generated terrain data.
func (v *viewer) textureFromFrame(rgba []byte) rl.Texture2D {
	img := rl.Image{
		Data:    unsafe.Pointer(&rgba[0]),
		Width:   v.sourceW,
		Height:  v.sourceH,
		Mipmaps: 1,
		Format:  rl.UncompressedR8g8b8a8,
	}
	return rl.LoadTextureFromImage(&img)
}

// detect runs grid+maze detection once and (re)initializes the field.
func (v *viewer) detect() {
	grid := v.proc.DetectGrid()
	var m *maze.Maze
	if grid.Valid() {
		m = v.proc.DetectMaze(grid)
	} else {
		flex := v.proc.DetectFlexGrid()
		m = v.proc.DetectFlexMaze(flex)
	}
	v.proc.DebugDraw(m)

	v.field.ApplyMaze(m)
	v.field.Init(v.jumpy)
	v.tick = 0
}

func (v *viewer) update() {
	dt := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeySpace) {
		v.running = !v.running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.detect()
		v.running = false
	}
	if rl.IsKeyPressed(rl.KeyJ) {
		v.jumpy = !v.jumpy
		v.detect()
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		v.stepSim()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		v.cam.Pan(-d.X, -d.Y)
	}

	if v.running {
		v.accum += dt
		interval := 1.0 / v.stepsPerSec
		for v.accum >= interval {
			v.accum -= interval
			v.stepSim()
		}
	}
}

func (v *viewer) stepSim() {
	v.tick++
	v.field.Step(v.tick)
}

func (v *viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	visW, visH := windowWidth-panelWidth, windowHeight
	rl.BeginMode2D(rl.Camera2D{
		Offset: rl.Vector2{X: float32(visW) / 2, Y: float32(visH) / 2},
		Target: rl.Vector2{X: v.cam.X, Y: v.cam.Y},
		Zoom:   v.cam.Zoom,
	})
	rl.DrawTexture(v.texture, 0, 0, rl.White)
	v.drawHeatmap(int(v.sourceW), int(v.sourceH))
	rl.EndMode2D()
	v.drawPanel(visW)
	rl.DrawText(fmt.Sprintf("tick %d   fps %d", v.tick, rl.GetFPS()), 10, visH-25, 16, rl.RayWhite)

	rl.EndDrawing()
}

// drawHeatmap overlays the 20x20 Subway Field's visited probabilities as
// translucent circles spread evenly over a visW x visH area (the source
// image's extent in camera world coordinates), independent of the source
// image's own grid pitch.
func (v *viewer) drawHeatmap(visW, visH int) {
	cellW := float32(visW) / subway.Size
	cellH := float32(visH) / subway.Size

	maxVisited := 0.0
	for idx := 0; idx < subway.FlatSize; idx++ {
		if p := v.field.GetVisitedProbability(idx); p > maxVisited {
			maxVisited = p
		}
	}
	if maxVisited == 0 {
		return
	}

	for idx := 0; idx < subway.FlatSize; idx++ {
		p := v.field.GetVisitedProbability(idx)
		if p <= 0 {
			continue
		}
		row, col := subway.FromIdx(idx)
		cx := (float32(col) + 0.5) * cellW
		cy := (float32(row) + 0.5) * cellH
		alpha := uint8(60 + 180*(p/maxVisited))
		rl.DrawCircle(int32(cx), int32(cy), cellW*0.4, rl.Color{R: 255, G: 80, B: 20, A: alpha})
	}
}

func (v *viewer) drawPanel(panelX int) {
	px := int32(panelX)
	rl.DrawRectangle(px, 0, panelWidth, windowHeight, rl.Color{R: 20, G: 25, B: 30, A: 230})

	y := int32(10)
	rl.DrawText("gv-subway", px+10, y, 20, rl.White)
	y += 35

	newSpeed := gui.SliderBar(
		rl.Rectangle{X: float32(px + 10), Y: float32(y), Width: float32(panelWidth - 80), Height: 20},
		"1", "30",
		v.stepsPerSec, 1, 30,
	)
	rl.DrawText(fmt.Sprintf("%.0f tps", newSpeed), px+int32(panelWidth)-70, y+2, 16, rl.LightGray)
	v.stepsPerSec = newSpeed
	y += 40

	if gui.Button(rl.Rectangle{X: float32(px + 10), Y: float32(y), Width: 110, Height: 30}, toggleLabel(v.running, "Pause", "Run")) {
		v.running = !v.running
	}
	if gui.Button(rl.Rectangle{X: float32(px + 130), Y: float32(y), Width: 110, Height: 30}, "Step") {
		v.stepSim()
	}
	y += 40

	if gui.Button(rl.Rectangle{X: float32(px + 10), Y: float32(y), Width: 110, Height: 30}, "Reset") {
		v.detect()
		v.running = false
	}
	if gui.Button(rl.Rectangle{X: float32(px + 130), Y: float32(y), Width: 110, Height: 30}, toggleLabel(v.jumpy, "Jumpy: on", "Jumpy: off")) {
		v.jumpy = !v.jumpy
		v.detect()
	}
	y += 45

	rl.DrawText("SPACE run/pause  .  step once", px+10, y, 12, rl.Gray)
	y += 16
	rl.DrawText("R reset  J jumpy  wheel zoom  RMB pan", px+10, y, 12, rl.Gray)
}

func toggleLabel(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}

// imageToRGBA extracts a raw RGBA byte buffer from a loaded raylib image.
func imageToRGBA(img *rl.Image) []byte {
	colors := rl.LoadImageColors(img)
	out := make([]byte, len(colors)*4)
	for i, c := range colors {
		out[i*4] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}

// demoFrame renders a plain uniform grid as a fallback maze when no image
// path is given, so the viewer has something to detect and step through.
func demoFrame(w, h int) []byte {
	rgba := make([]byte, w*h*4)
	period := 20
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			v := byte(210)
			if x%period < 2 || y%period < 2 {
				v = 20
			}
			rgba[i], rgba[i+1], rgba[i+2], rgba[i+3] = v, v, v, 255
		}
	}
	return rgba
}
