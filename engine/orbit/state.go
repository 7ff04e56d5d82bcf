package orbit

import "fmt"

// GestureKind is the interaction currently driving the controls.
type GestureKind int

const (
	GestureNone GestureKind = iota - 1
	GestureRotate
	GestureDolly
	GesturePan
	GestureTouchRotate
	GestureTouchDolly
	GestureTouchPan
)

func (k GestureKind) String() string {
	switch k {
	case GestureNone:
		return "none"
	case GestureRotate:
		return "rotate"
	case GestureDolly:
		return "dolly"
	case GesturePan:
		return "pan"
	case GestureTouchRotate:
		return "touch-rotate"
	case GestureTouchDolly:
		return "touch-dolly"
	case GestureTouchPan:
		return "touch-pan"
	default:
		return fmt.Sprintf("GestureKind(%d)", int(k))
	}
}

// IsTouch reports whether k is one of the touch gestures.
func (k GestureKind) IsTouch() bool {
	return k == GestureTouchRotate || k == GestureTouchDolly || k == GestureTouchPan
}

// IsPointer reports whether k is one of the mouse-driven gestures.
func (k GestureKind) IsPointer() bool {
	return k == GestureRotate || k == GestureDolly || k == GesturePan
}

// PanDirection is a screen-space direction for keyboard panning.
type PanDirection int

const (
	PanUp PanDirection = iota
	PanBottom
	PanLeft
	PanRight
)
