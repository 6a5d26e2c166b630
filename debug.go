package trackview

import (
	"fmt"
	"os"
)

// debugLog prints the engine state line to stderr. Only called when debug
// mode is on.
func (e *Engine) debugLog() {
	_, _ = fmt.Fprintf(os.Stderr,
		"[trackview] tick %d | gesture: %s | zoom: %.3f | pan: (%.1f, %.1f) | trains: %d\n",
		e.ticks, e.Gestures.Kind(), e.Viewport.Zoom, e.Viewport.Pan.X, e.Viewport.Pan.Y,
		e.World.Len())
}
