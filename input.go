package trackview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	doubleClickWindow = 300 * time.Millisecond
	doubleClickSlop   = 6.0 // px between the two presses
)

// InputAdapter polls Ebitengine mouse, wheel, and touch state once per frame
// and translates edges into gesture manager calls. Embedding applications
// call Update from their ebiten.Game.Update.
type InputAdapter struct {
	gestures *GestureManager

	mouseDown    bool
	lastClickAt  time.Time
	lastClickPos Vec2

	touchIDs []ebiten.TouchID
	pinching bool

	injectQueue []syntheticEvent
	now         func() time.Time
}

// NewInputAdapter creates an adapter feeding the given gesture manager.
func NewInputAdapter(gestures *GestureManager) *InputAdapter {
	return &InputAdapter{gestures: gestures, now: time.Now}
}

// Update consumes one injected event if any are queued, otherwise polls live
// Ebitengine input.
func (ia *InputAdapter) Update() {
	if ia.processInjected() {
		return
	}
	now := ia.now()

	// Two active touches form a pinch and override mouse handling.
	ia.touchIDs = ebiten.AppendTouchIDs(ia.touchIDs[:0])
	if len(ia.touchIDs) >= 2 {
		x0, y0 := ebiten.TouchPosition(ia.touchIDs[0])
		x1, y1 := ebiten.TouchPosition(ia.touchIDs[1])
		p0 := Vec2{float64(x0), float64(y0)}
		p1 := Vec2{float64(x1), float64(y1)}
		if !ia.pinching {
			ia.pinching = true
			ia.gestures.TouchStart(p0, p1)
		} else {
			ia.gestures.TouchMove(p0, p1)
		}
		return
	}
	if ia.pinching {
		ia.pinching = false
		ia.gestures.TouchEnd()
	}

	mx, my := ebiten.CursorPosition()
	cursor := Vec2{float64(mx), float64(my)}

	if _, wy := ebiten.Wheel(); wy != 0 {
		// Ebitengine reports scroll-up as positive; the gesture manager
		// follows the browser convention where positive deltaY zooms out.
		ia.gestures.Wheel(cursor, -wy)
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !ia.mouseDown:
		ia.mouseDown = true
		if now.Sub(ia.lastClickAt) <= doubleClickWindow && cursor.DistTo(ia.lastClickPos) <= doubleClickSlop {
			ia.gestures.DoubleClick(cursor)
			ia.lastClickAt = time.Time{}
		} else {
			ia.lastClickAt = now
			ia.lastClickPos = cursor
			ia.gestures.PointerDown(cursor, now)
		}
	case pressed && ia.mouseDown:
		ia.gestures.PointerMove(cursor, now)
	case !pressed && ia.mouseDown:
		ia.mouseDown = false
		ia.gestures.PointerUp(cursor, now)
	}
}
