/*
Package canvas provides an interactive triangle canvas over a minimal
rendering interface.

# Overview

A Canvas owns a GeometryStore of triangles. Window events (mouse clicks,
resizes, close requests) are pushed into an EventQueue by a backend and
drained at the start of every frame. Left clicks go to the mode's
InputAdapter, which appends triangles. Each frame the canvas builds a
DrawList with one command per triangle, in insertion order, and hands it
to a Renderer.

# Modes

	static   five white triangles in a row, clicks ignored (NDC)
	spawn    every click adds a randomly colored triangle at the cursor (NDC)
	triplet  every three clicks become one triangle, palette colors (pixels)

Spawn mode converts the cursor with ToNDC:

	ndc_x = px/width*2 - 1
	ndc_y = 1 - py/height*2

Triplet mode stores raw pixel positions and draws them with an orthographic
projection of the current window size, so (0,0) is the top-left corner.
The k-th completed triangle uses palette color (k-1) mod len(palette).

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	defer renderer.Delete()

	c := canvas.New(renderer, 800, 600, canvas.WithMode(canvas.ModeTriplet))
	opengl.NewGLFWEventSource(window, c.Events())

	for !c.ShouldClose() && !window.ShouldClose() {
	    glfw.PollEvents()
	    if err := c.Frame(); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Configuration

Config is decoded from YAML:

	window:
	  width: 800
	  height: 600
	  title: Triangles
	  vsync: true
	mode: triplet
	clear_color: [0, 0, 0, 1]
	palette:
	  - [200, 191, 231]
	  - [174, 217, 224]
	shape: [[-0.1, -0.1], [0.1, -0.1], [0, 0.1]]
	seed: 42
	log_level: debug

# Logging

Nothing is logged until SetLogger is called with a *slog.Logger.
*/
package canvas
