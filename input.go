package canvas

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Action is the state change of a button.
type Action int

const (
	Press Action = iota
	Release
)

// EventKind identifies the type of a window event.
type EventKind int

const (
	EventMouseButton EventKind = iota
	EventResize
	EventClose
)

// String returns a readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMouseButton:
		return "mouse-button"
	case EventResize:
		return "resize"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is a single window event captured by a backend.
type Event struct {
	Kind EventKind

	// Mouse button events
	Button MouseButton
	Action Action
	X, Y   float64 // Cursor position in window pixels

	// Resize events
	Width, Height int
}

// MousePress creates a button-press event at the given cursor position.
func MousePress(button MouseButton, x, y float64) Event {
	return Event{Kind: EventMouseButton, Button: button, Action: Press, X: x, Y: y}
}

// MouseRelease creates a button-release event at the given cursor position.
func MouseRelease(button MouseButton, x, y float64) Event {
	return Event{Kind: EventMouseButton, Button: button, Action: Release, X: x, Y: y}
}

// ResizeEvent creates a window resize event.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// CloseEvent creates a window close request.
func CloseEvent() Event {
	return Event{Kind: EventClose}
}

// EventQueue buffers window events between frames.
// Backends push from their callbacks during event polling; the canvas
// drains the queue on the same thread before drawing, so no locking is done.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain calls fn for every pending event in arrival order, then empties the queue.
// Events pushed by fn are delivered in the same drain.
func (q *EventQueue) Drain(fn func(Event)) {
	for i := 0; i < len(q.events); i++ {
		fn(q.events[i])
	}
	q.events = q.events[:0]
}
