package window

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Window provides platform windowing and publishes its input as decoded
// events. It is the desktop input.Source for camera controls.
type Window interface {
	input.Source

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and the event dispatcher.
type engineWindow struct {
	input.Dispatcher

	// title is the window title displayed in the title bar.
	title string

	// size limits applied while the user resizes the window.
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// winWidth and winHeight are the window size in screen coordinates,
	// which GLFW reports cursor positions in.
	winWidth  int
	winHeight int

	// cursorX and cursorY track the last cursor position in framebuffer
	// pixels so button events can carry coordinates.
	cursorX float64
	cursorY float64

	// held lists pressed mouse buttons in press order.
	held []int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate func()
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:     "Orbit Viewer",
		maxWidth:  1600,
		maxHeight: 1200,
		minWidth:  600,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.winWidth, w.winHeight = w.width, w.height
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// --- platform callback translation ---

func (w *engineWindow) handleButton(button int, pressed bool) {
	i := slices.Index(w.held, button)
	switch {
	case pressed && i < 0:
		w.held = append(w.held, button)
	case !pressed && i >= 0:
		w.held = slices.Delete(w.held, i, i+1)
	case !pressed:
		// Already released on focus loss.
		return
	}

	typ := input.EventPointerUp
	if pressed {
		typ = input.EventPointerDown
	}
	w.Dispatch(input.Event{Type: typ, Button: button, X: w.cursorX, Y: w.cursorY})
}

// handleCursor takes screen coordinates and publishes framebuffer pixels.
func (w *engineWindow) handleCursor(x, y float64) {
	sx, sy := w.pixelScale()
	w.cursorX, w.cursorY = x*sx, y*sy
	w.Dispatch(input.Event{Type: input.EventPointerMove, X: w.cursorX, Y: w.cursorY})
}

// handleFocus releases every held button when the window loses focus, since
// the matching release events go to another window.
func (w *engineWindow) handleFocus(focused bool) {
	if focused {
		return
	}
	held := w.held
	w.held = nil
	for _, button := range held {
		w.Dispatch(input.Event{Type: input.EventPointerUp, Button: button, X: w.cursorX, Y: w.cursorY})
	}
}

// handleScroll converts a GLFW y offset (positive scrolls up) to a DOM-style deltaY.
func (w *engineWindow) handleScroll(yoff float64) {
	if yoff == 0 {
		return
	}
	w.Dispatch(input.Event{Type: input.EventWheel, DeltaY: -yoff})
}

func (w *engineWindow) handleKey(key int) {
	w.Dispatch(input.Event{Type: input.EventKeyDown, Key: key})
}

// handleResize records the framebuffer size in pixels.
func (w *engineWindow) handleResize(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// handleWindowSize records the window size in screen coordinates.
func (w *engineWindow) handleWindowSize(width, height int) {
	w.winWidth = width
	w.winHeight = height
}

// pixelScale is the framebuffer pixels per screen coordinate on each axis,
// 1 while either size is unknown or minimized to zero.
func (w *engineWindow) pixelScale() (float64, float64) {
	if w.winWidth <= 0 || w.winHeight <= 0 || w.width <= 0 || w.height <= 0 {
		return 1, 1
	}
	return float64(w.width) / float64(w.winWidth), float64(w.height) / float64(w.winHeight)
}
