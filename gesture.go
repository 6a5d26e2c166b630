package trackview

import (
	"math"
	"time"
)

// GestureManager classifies raw pointer and touch input into pan, pinch, and
// entity-drag sessions and drives the viewport and train arena accordingly.
//
// At most one session is active at a time; starting any session cancels
// running viewport animations so stale inertia never fights live input. All
// methods are synchronous and must be called from the same goroutine as
// Engine.Update.
type GestureManager struct {
	viewport *Viewport
	world    *World
	animator *Animator
	network  *Network
	cfg      Config

	// PlaceMode switches pointer-down over empty space from panning to
	// entity creation.
	PlaceMode bool

	// OnPlaceEntity is called in place mode with the nearest waypoint id and
	// the world point of the press. The consumer spawns the train and
	// returns its id; the manager then drags the new train. Returning ""
	// leaves the manager idle.
	OnPlaceEntity func(waypointID string, world Vec2) string

	kind       GestureKind
	lastScreen Vec2
	lastTime   time.Time
	velocity   Vec2 // px/ms, estimated over the last two samples
	dragID     string

	pinchLastDist float64
}

// NewGestureManager wires a manager to the viewport, arena, and animator.
func NewGestureManager(viewport *Viewport, world *World, animator *Animator, network *Network, cfg Config) *GestureManager {
	return &GestureManager{
		viewport: viewport,
		world:    world,
		animator: animator,
		network:  network,
		cfg:      cfg,
	}
}

// Kind returns the active gesture session kind.
func (g *GestureManager) Kind() GestureKind {
	return g.kind
}

// DraggedEntity returns the id of the train currently being dragged, or "".
// The animator skips this train for the tick so the drag write wins.
func (g *GestureManager) DraggedEntity() string {
	if g.kind == GestureEntityDrag {
		return g.dragID
	}
	return ""
}

// hitTest returns the id of the train whose marker contains the screen
// point, or "". The nearest marker within the hit radius wins.
func (g *GestureManager) hitTest(screen Vec2) string {
	best := ""
	bestDist := g.cfg.HitRadius
	for id := range g.world.byID {
		pos, _ := g.world.PositionOf(id)
		d := screen.DistTo(g.viewport.WorldToScreen(pos.Pos))
		if d <= bestDist {
			best = id
			bestDist = d
		}
	}
	return best
}

// PointerDown begins a session: entity drag when over a marker, entity
// creation in place mode, panning otherwise.
func (g *GestureManager) PointerDown(screen Vec2, at time.Time) {
	g.viewport.CancelAnimations()
	g.lastScreen = screen
	g.lastTime = at
	g.velocity = Vec2{}

	if id := g.hitTest(screen); id != "" {
		g.kind = GestureEntityDrag
		g.dragID = id
		return
	}

	if g.PlaceMode {
		world := g.viewport.ScreenToWorld(screen)
		if g.OnPlaceEntity != nil {
			if id := g.OnPlaceEntity(g.network.NearestWaypoint(world), world); id != "" {
				g.kind = GestureEntityDrag
				g.dragID = id
				return
			}
		}
		g.kind = GestureNone
		return
	}

	g.kind = GesturePan
}

// PointerMove pans the viewport or drags the held train.
func (g *GestureManager) PointerMove(screen Vec2, at time.Time) {
	switch g.kind {
	case GesturePan:
		delta := screen.Sub(g.lastScreen)
		g.viewport.PanBy(delta)
		// Floor the divisor so near-zero time deltas don't spike the
		// velocity estimate.
		dt := math.Max(g.cfg.VelocityFloorMS, float64(at.Sub(g.lastTime))/float64(time.Millisecond))
		g.velocity = delta.Mul(1 / dt)
	case GestureEntityDrag:
		g.animator.SnapToRail(g.dragID, g.viewport.ScreenToWorld(screen))
	default:
		return
	}
	g.lastScreen = screen
	g.lastTime = at
}

// PointerUp ends the session. A pan released above the flick speed hands its
// velocity to the viewport's inertia animation.
func (g *GestureManager) PointerUp(screen Vec2, at time.Time) {
	if g.kind == GesturePan && g.velocity.Len() > g.cfg.FlickMinSpeed {
		g.viewport.BeginInertia(g.velocity)
	}
	g.kind = GestureNone
	g.dragID = ""
}

// TouchStart begins a pinch session from two touch points.
func (g *GestureManager) TouchStart(p0, p1 Vec2) {
	g.viewport.CancelAnimations()
	g.kind = GesturePinch
	g.dragID = ""
	g.pinchLastDist = p0.DistTo(p1)
}

// TouchMove zooms at the pinch midpoint by the ratio of inter-finger
// distances. The previous distance is floored at 1 so a noisy or collapsed
// pinch cannot produce an unbounded factor.
func (g *GestureManager) TouchMove(p0, p1 Vec2) {
	if g.kind != GesturePinch {
		return
	}
	dist := p0.DistTo(p1)
	center := p0.Add(p1).Mul(0.5)
	factor := dist / math.Max(1, g.pinchLastDist)
	g.viewport.ZoomAt(center, factor)
	g.pinchLastDist = dist
}

// TouchEnd ends a pinch session.
func (g *GestureManager) TouchEnd() {
	if g.kind == GesturePinch {
		g.kind = GestureNone
	}
}

// Wheel is a single-shot zoom pseudo-gesture at the cursor. Positive deltaY
// (scroll toward the user) zooms out.
func (g *GestureManager) Wheel(cursorScreen Vec2, deltaY float64) {
	g.viewport.CancelAnimations()
	if deltaY > 0 {
		g.viewport.ZoomAt(cursorScreen, g.cfg.WheelZoomOut)
	} else {
		g.viewport.ZoomAt(cursorScreen, g.cfg.WheelZoomIn)
	}
}

// DoubleClick is a single-shot zoom-in pseudo-gesture at the click point.
func (g *GestureManager) DoubleClick(clickScreen Vec2) {
	g.viewport.CancelAnimations()
	g.viewport.ZoomAt(clickScreen, g.cfg.DoubleClickZoom)
}
