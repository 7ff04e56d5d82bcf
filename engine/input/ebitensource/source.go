// Package ebitensource adapts ebiten's polled input state to an input.Source.
// Call Update once per ebiten tick (from Game.Update) and SetSize from
// Game.Layout; Update diffs the current mouse, wheel, touch and key state
// against the previous tick and dispatches the resulting events.
package ebitensource

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// ebiten buttons in common.MouseButton* order.
var mouseButtons = [...]ebiten.MouseButton{
	common.MouseButtonLeft:   ebiten.MouseButtonLeft,
	common.MouseButtonRight:  ebiten.MouseButtonRight,
	common.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// keyCodes maps the ebiten keys the controls care about to GLFW codes.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyArrowLeft:  common.KeyLeft,
	ebiten.KeyArrowUp:    common.KeyUp,
	ebiten.KeyArrowRight: common.KeyRight,
	ebiten.KeyArrowDown:  common.KeyDown,
	ebiten.KeyW:          common.KeyW,
	ebiten.KeyA:          common.KeyA,
	ebiten.KeyS:          common.KeyS,
	ebiten.KeyD:          common.KeyD,
	ebiten.KeyR:          common.KeyR,
	ebiten.KeySpace:      common.KeySpace,
	ebiten.KeyEscape:     common.KeyEsc,
}

// Source polls ebiten for input. It must be used from the ebiten game goroutine.
type Source struct {
	input.Dispatcher

	width, height int
	prev          snapshot

	touchIDs []ebiten.TouchID
	keys     []ebiten.Key
}

var _ input.Source = &Source{}

// New creates a source for a surface of the given size.
//
// Parameters:
//   - width, height: logical screen size in pixels
//
// Returns:
//   - *Source: the newly created source
func New(width, height int) *Source {
	return &Source{width: width, height: height}
}

func (s *Source) Width() int {
	return s.width
}

func (s *Source) Height() int {
	return s.height
}

// SetSize updates the surface size. Call it from Game.Layout.
//
// Parameters:
//   - width, height: logical screen size in pixels
func (s *Source) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update polls ebiten and dispatches the events since the previous call.
func (s *Source) Update() {
	s.apply(s.poll())
}

func (s *Source) poll() snapshot {
	var snap snapshot

	x, y := ebiten.CursorPosition()
	snap.cursorX, snap.cursorY = float64(x), float64(y)

	for i, b := range mouseButtons {
		snap.buttons[i] = ebiten.IsMouseButtonPressed(b)
	}

	_, wheelY := ebiten.Wheel()
	snap.wheelY = wheelY

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		snap.touches = append(snap.touches, input.Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if code, ok := keyCodes[k]; ok {
			snap.keys = append(snap.keys, code)
		}
	}

	return snap
}
