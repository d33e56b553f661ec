// Example opens a window with an interactive triangle canvas.
//
// Usage:
//
//	go run ./example/                     # spawn mode, 800x600
//	go run ./example/ -mode triplet       # build triangles from three clicks
//	go run ./example/ -config canvas.yaml # settings from a YAML file
//
// Prerequisites: a C toolchain plus OpenGL and X11 headers for GLFW.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/canvas"
	"github.com/go-theft-auto/canvas/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", "", "static, spawn or triplet (overrides the config)")
	flag.Parse()

	cfg := canvas.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = canvas.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *mode != "" {
		m, err := canvas.ParseMode(*mode)
		if err != nil {
			return err
		}
		cfg.Mode = m
	}

	level, err := canvas.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	canvas.SetLogger(logger)

	window, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("canvas renderer: %w", err)
	}
	defer renderer.Delete()

	c := canvas.New(renderer, cfg.Window.Width, cfg.Window.Height, cfg.Options()...)
	events := opengl.NewGLFWEventSource(window.Window, c.Events())
	defer events.Detach()

	// Main loop.
	for !c.ShouldClose() && !window.ShouldClose() {
		glfw.PollEvents()
		window.UpdateViewport()

		if err := c.Frame(); err != nil {
			return fmt.Errorf("canvas render: %w", err)
		}

		window.SwapBuffers()
	}

	logger.Info("shutting down", "triangles", c.Store().Len(), "frames", c.FrameCount())
	return nil
}
