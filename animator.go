package trackview

import "github.com/yohamta/donburi"

// Animator advances every path-bound train along its route on a fixed tick.
// It is the only writer of Progress state; position writes are suppressed for
// a train being dragged so the drag write wins on that tick.
type Animator struct {
	network *Network
	world   *World
	cfg     Config
}

// NewAnimator creates an animator over the given network and arena.
func NewAnimator(network *Network, world *World, cfg Config) *Animator {
	return &Animator{network: network, world: world, cfg: cfg}
}

// Tick advances all bound trains by one step. skipID names a train currently
// being dragged; it is left untouched for this tick. Pass "" when nothing is
// dragged.
//
// Per train: resolve the current leg's path (hold at the last known waypoint
// if unresolved), advance progress by speed and delay factors, roll over to
// the next leg when progress reaches 1, and write the interpolated position
// and tangent. A perpendicular lane offset de-overlaps markers visually and
// never feeds back into stored progress.
func (a *Animator) Tick(skipID string) {
	a.world.Each(func(e *donburi.Entry) {
		t := Train.Get(e)
		if !t.Bound || t.ID == skipID {
			return
		}
		a.step(e, t)
	})
}

func (a *Animator) step(e *donburi.Entry, t *TrainData) {
	pr := Progress.Get(e)
	if pr.Current == "" || pr.Next == "" {
		return
	}

	path := a.network.ResolvePath(pr.Current, pr.Next)
	if path == nil {
		a.holdAt(e, pr.Current)
		return
	}

	speedFactor := t.Speed / a.cfg.ReferenceSpeed
	delayFactor := 1.0
	if t.Delay > 0 {
		delayFactor = a.cfg.DelayFactor
	}
	pr.Progress += speedFactor * delayFactor * a.cfg.BaseRate

	if pr.Progress >= 1 {
		// Progress wraps and the waypoint pair advances together, so no
		// tick ever observes progress 1 paired with the old leg.
		pr.Progress = 0
		pr.Current = pr.Next
		pr.Next = successorOf(t.Route, pr.Next)
		path = a.network.ResolvePath(pr.Current, pr.Next)
		if path == nil {
			a.holdAt(e, pr.Current)
			return
		}
	}

	pos, tangent := PointAlongPath(path, pr.Progress)
	if t.Lane > 0 && a.cfg.LaneSpacing > 0 {
		pos = pos.Add(tangent.Perp().Normalized().Mul(float64(t.Lane) * a.cfg.LaneSpacing))
	}
	p := Position.Get(e)
	p.Pos = pos
	p.Tangent = tangent
}

// holdAt pins a train to a waypoint's known position when its leg cannot be
// resolved. Progress is left untouched so the train resumes where it was
// once the topology fills in.
func (a *Animator) holdAt(e *donburi.Entry, waypointID string) {
	if wp, ok := a.network.Waypoint(waypointID); ok {
		Position.Get(e).Pos = wp.Position
	}
}

// SnapToRail projects a dragged world point onto a bound train's current leg
// and writes the result as its position. Free trains take the point as-is.
// Returns the position actually written. Unknown ids are a no-op.
func (a *Animator) SnapToRail(id string, world Vec2) Vec2 {
	e, ok := a.world.Entry(id)
	if !ok {
		return world
	}
	t := Train.Get(e)
	pos := world
	if t.Bound {
		pr := Progress.Get(e)
		if path := a.network.ResolvePath(pr.Current, pr.Next); path != nil {
			pos = ProjectOntoPolyline(world, path)
		} else if wp, ok := a.network.Waypoint(pr.Current); ok {
			pos = wp.Position
		}
	}
	Position.Get(e).Pos = pos
	return pos
}
