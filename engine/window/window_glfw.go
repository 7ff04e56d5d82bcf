package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var errNotInitialized = errors.New("window is not initialized")

// glfwWindow owns the GLFW handle behind an engineWindow.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow opens a GLFW window without a client API (WebGPU draws
// into it) and routes its callbacks into the engineWindow translators.
//
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{parent: w, window: win, running: true}
	gw.install()
	w.internalWindow = gw

	// Controls measure drags against the framebuffer, which is larger than
	// the window on high-DPI displays.
	fbWidth, fbHeight := win.GetFramebufferSize()
	winWidth, winHeight := win.GetSize()
	w.handleResize(fbWidth, fbHeight)
	w.handleWindowSize(winWidth, winHeight)
	w.handleCursor(win.GetCursorPos())

	return nil
}

func (gw *glfwWindow) install() {
	w := gw.parent

	gw.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			gw.stop()
			return
		}
		w.handleKey(int(key))
	})

	gw.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.handleScroll(yoff)
	})

	gw.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.handleButton(int(button), action == glfw.Press)
	})

	gw.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.handleCursor(x, y)
	})

	gw.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.handleFocus(focused)
	})

	gw.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.handleResize(width, height)
	})

	gw.window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.handleWindowSize(width, height)
	})
}

func (gw *glfwWindow) stop() {
	gw.running = false
	gw.window.SetShouldClose(true)
}

func (gw *glfwWindow) alive() bool {
	return gw.running && !gw.window.ShouldClose()
}

// platform returns the GLFW state, or nil before newPlatformWindow succeeded.
func platform(w *engineWindow) *glfwWindow {
	gw, _ := w.internalWindow.(*glfwWindow)
	return gw
}

// platformGetSurfaceDescriptor bridges the GLFW handle to a wgpu surface.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw := platform(w)
	if gw == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw := platform(w)
	return gw != nil && gw.alive()
}

// platformCloseWindow destroys the window and terminates GLFW.
//
// Returns:
//   - error: errNotInitialized if there is no platform window
func platformCloseWindow(w *engineWindow) error {
	gw := platform(w)
	if gw == nil {
		return errNotInitialized
	}
	w.handleFocus(false)
	gw.stop()
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls pending GLFW events without blocking.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
