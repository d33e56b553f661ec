// Command gen renders every canvas mode with scripted clicks, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/canvas"
	"github.com/go-theft-auto/canvas/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single canvas screenshot to capture.
type screenshot struct {
	name   string         // filename without extension
	mode   canvas.Mode    // canvas mode
	events []canvas.Event // events replayed before capture
}

const (
	shotWidth  = 800
	shotHeight = 600
)

func run() error {
	window, err := opengl.OpenWindow(canvas.WindowConfig{
		Width:  shotWidth,
		Height: shotHeight,
		Title:  "screenshot-gen",
		Hidden: true,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := opengl.NewRenderer(shotWidth, shotHeight)
	if err != nil {
		return fmt.Errorf("canvas renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(window, renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(window *opengl.Window, renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Fresh canvas per screenshot; the seed keeps spawn colors stable between runs.
	c := canvas.New(renderer, shotWidth, shotHeight, canvas.WithMode(s.mode), canvas.WithSeed(1))
	for _, e := range s.events {
		c.Push(e)
	}

	// Two frames: the first uploads, the second draws from the same buffer.
	for i := 0; i < 2; i++ {
		window.UpdateViewport()
		if err := c.Frame(); err != nil {
			return err
		}
	}

	img := opengl.ReadPixels(shotWidth, shotHeight)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all screenshots to generate.
func buildScreenshots() []screenshot {
	left := canvas.MouseButtonLeft

	var spawnClicks []canvas.Event
	for i := 0; i < 8; i++ {
		x := 100 + float64(i)*85
		y := 150 + float64(i%3)*150
		spawnClicks = append(spawnClicks, canvas.MousePress(left, x, y))
	}

	tripletClicks := []canvas.Event{
		canvas.MousePress(left, 100, 500), canvas.MousePress(left, 300, 500), canvas.MousePress(left, 200, 300),
		canvas.MousePress(left, 350, 450), canvas.MousePress(left, 600, 450), canvas.MousePress(left, 480, 100),
		canvas.MousePress(left, 550, 550), canvas.MousePress(left, 750, 550), canvas.MousePress(left, 700, 350),
		// Two dangling clicks stay buffered and draw nothing.
		canvas.MousePress(left, 50, 50), canvas.MousePress(left, 90, 60),
	}

	return []screenshot{
		{name: "static", mode: canvas.ModeStatic},
		{name: "spawn", mode: canvas.ModeSpawn, events: spawnClicks},
		{name: "triplet", mode: canvas.ModeTriplet, events: tripletClicks},
	}
}
