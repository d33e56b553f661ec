package canvas

// Renderer draws a frame described by a DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Canvas ties the event queue, the canvas state and a renderer together.
type Canvas struct {
	renderer   Renderer
	queue      *EventQueue
	state      *CanvasState
	mode       Mode
	clearColor Color
	frames     uint64
}

// New creates a canvas for a window of the given size.
func New(renderer Renderer, width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		renderer:   renderer,
		queue:      NewEventQueue(),
		state:      NewCanvasState(width, height, o.adapter()),
		mode:       o.mode,
		clearColor: o.mode.DefaultClearColor(),
	}
	if o.clearColor != nil {
		c.clearColor = *o.clearColor
	}

	if o.mode == ModeStatic {
		for _, t := range RowOfTriangles(DefaultRowCount, DefaultRowSpacing, o.shape, ColorWhite) {
			c.state.Store.Add(t)
		}
	}
	for _, t := range o.triangles {
		c.state.Store.Add(t)
	}

	Logger().Info("canvas created",
		"mode", o.mode.String(), "space", c.state.Space.String(),
		"width", width, "height", height, "triangles", c.state.Store.Len())
	return c
}

// Events returns the queue backends push window events into.
func (c *Canvas) Events() *EventQueue {
	return c.queue
}

// Push queues a single event for the next frame.
func (c *Canvas) Push(e Event) {
	c.queue.Push(e)
}

// Frame drains pending events into the state, then renders every triangle.
// Call once per iteration of the main loop, after polling window events.
func (c *Canvas) Frame() error {
	c.queue.Drain(func(e Event) {
		if c.state.Handle(e) {
			c.renderer.Resize(c.state.Width, c.state.Height)
			Logger().Debug("canvas resized", "width", c.state.Width, "height", c.state.Height)
		}
	})

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.Build(c.state, c.clearColor)
	if err := c.renderer.Render(dl); err != nil {
		return err
	}
	if dl.Upload {
		c.state.Store.MarkClean()
	}
	c.frames++
	return nil
}

// ShouldClose reports whether a close event was processed.
func (c *Canvas) ShouldClose() bool {
	return c.state.Closed()
}

// State returns the canvas state.
func (c *Canvas) State() *CanvasState {
	return c.state
}

// Store returns the geometry store.
func (c *Canvas) Store() *GeometryStore {
	return c.state.Store
}

// Mode returns the interaction mode.
func (c *Canvas) Mode() Mode {
	return c.mode
}

// ClearColor returns the frame background color.
func (c *Canvas) ClearColor() Color {
	return c.clearColor
}

// FrameCount returns the number of frames rendered successfully.
func (c *Canvas) FrameCount() uint64 {
	return c.frames
}
