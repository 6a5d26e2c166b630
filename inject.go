package trackview

// Synthetic input lets scripts and tests drive the gesture manager through
// the same adapter path as real input, one event per frame, without a live
// input device.

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthWheel
	synthDoubleClick
	synthTouch
	synthTouchEnd
)

type syntheticEvent struct {
	kind   syntheticKind
	p      Vec2 // screen point (first touch point for synthTouch)
	p1     Vec2 // second touch point for synthTouch
	deltaY float64
}

// InjectPress queues a pointer press at the given screen coordinates.
func (ia *InputAdapter) InjectPress(x, y float64) {
	ia.injectQueue = append(ia.injectQueue, syntheticEvent{kind: synthPress, p: Vec2{x, y}})
}

// InjectMove queues a pointer move with the button held down.
func (ia *InputAdapter) InjectMove(x, y float64) {
	ia.injectQueue = append(ia.injectQueue, syntheticEvent{kind: synthMove, p: Vec2{x, y}})
}

// InjectRelease queues a pointer release.
func (ia *InputAdapter) InjectRelease(x, y float64) {
	ia.injectQueue = append(ia.injectQueue, syntheticEvent{kind: synthRelease, p: Vec2{x, y}})
}

// InjectWheel queues a wheel event at the given cursor position. Positive
// deltaY zooms out, matching the gesture manager's convention.
func (ia *InputAdapter) InjectWheel(x, y, deltaY float64) {
	ia.injectQueue = append(ia.injectQueue, syntheticEvent{kind: synthWheel, p: Vec2{x, y}, deltaY: deltaY})
}

// InjectDoubleClick queues a double-click zoom at the given position.
func (ia *InputAdapter) InjectDoubleClick(x, y float64) {
	ia.injectQueue = append(ia.injectQueue, syntheticEvent{kind: synthDoubleClick, p: Vec2{x, y}})
}

// InjectTouchPair queues a two-finger touch sample. The first queued pair
// starts a pinch; subsequent pairs move it.
func (ia *InputAdapter) InjectTouchPair(x0, y0, x1, y1 float64) {
	ia.injectQueue = append(ia.injectQueue, syntheticEvent{kind: synthTouch, p: Vec2{x0, y0}, p1: Vec2{x1, y1}})
}

// InjectTouchEnd queues the end of a pinch.
func (ia *InputAdapter) InjectTouchEnd() {
	ia.injectQueue = append(ia.injectQueue, syntheticEvent{kind: synthTouchEnd})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and release at (toX, toY). Minimum frames is 2.
func (ia *InputAdapter) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	ia.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		ia.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	ia.InjectRelease(toX, toY)
}

// processInjected pops one queued event and feeds it to the gesture manager.
// Returns true if an event was consumed (live input is skipped that frame).
func (ia *InputAdapter) processInjected() bool {
	if len(ia.injectQueue) == 0 {
		return false
	}
	evt := ia.injectQueue[0]
	copy(ia.injectQueue, ia.injectQueue[1:])
	ia.injectQueue = ia.injectQueue[:len(ia.injectQueue)-1]

	now := ia.now()
	switch evt.kind {
	case synthPress:
		ia.gestures.PointerDown(evt.p, now)
	case synthMove:
		ia.gestures.PointerMove(evt.p, now)
	case synthRelease:
		ia.gestures.PointerUp(evt.p, now)
	case synthWheel:
		ia.gestures.Wheel(evt.p, evt.deltaY)
	case synthDoubleClick:
		ia.gestures.DoubleClick(evt.p)
	case synthTouch:
		if ia.pinching {
			ia.gestures.TouchMove(evt.p, evt.p1)
		} else {
			ia.pinching = true
			ia.gestures.TouchStart(evt.p, evt.p1)
		}
	case synthTouchEnd:
		if ia.pinching {
			ia.pinching = false
			ia.gestures.TouchEnd()
		}
	}
	return true
}
