package trackview

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// TrainData is the consumer-supplied description of a moving entity. The
// engine reads Speed/Delay/Route and never owns train identity or lifecycle
// beyond the arena entry.
type TrainData struct {
	ID    string
	Name  string
	Speed float64 // km/h, compared against Config.ReferenceSpeed
	Delay float64 // minutes; > 0 slows progress by Config.DelayFactor
	// Route is the ordered waypoint id cycle the train follows. Trains with
	// fewer than 2 route waypoints cannot be path-bound.
	Route []string
	// Bound constrains the train to its rail; free trains may occupy any
	// world point while dragged.
	Bound bool
	// Lane is a stable per-train index used for the visual de-overlap
	// offset. Assigned at spawn, never recomputed.
	Lane int
}

// ProgressData is the path-following state of one train: normalized
// arc-length progress in [0,1) along the leg from Current to Next. Mutated
// exclusively by the Animator (and drag snapping).
type ProgressData struct {
	Progress float64
	Current  string
	Next     string
}

// PositionData is the engine's output per train: world position and the
// direction of travel (raw segment delta, not normalized).
type PositionData struct {
	Pos     Vec2
	Tangent Vec2
}

// Component types for the train arena.
var (
	Train    = donburi.NewComponentType[TrainData]()
	Progress = donburi.NewComponentType[ProgressData]()
	Position = donburi.NewComponentType[PositionData]()
)

var trainQuery = donburi.NewQuery(filter.Contains(Train, Progress, Position))

// World is the train arena: a donburi world plus a string-id index. Gesture
// and animator code address trains by id instead of holding references, so
// there are no marker↔entity reference cycles.
type World struct {
	ecs      donburi.World
	byID     map[string]*donburi.Entry
	nextLane int
}

// NewWorld creates an empty train arena.
func NewWorld() *World {
	return &World{
		ecs:  donburi.NewWorld(),
		byID: make(map[string]*donburi.Entry),
	}
}

// Spawn adds a train to the arena. Progress starts at 0 on the first route
// leg; the initial position is the first route waypoint's position if the
// network knows it. Lane is assigned from a monotonic counter when the
// caller leaves it at 0 and keeps its value otherwise. Spawning an id that
// already exists replaces the previous train.
func (w *World) Spawn(t TrainData, n *Network) *donburi.Entry {
	if old, ok := w.byID[t.ID]; ok {
		w.ecs.Remove(old.Entity())
	}
	if t.Lane == 0 {
		w.nextLane++
		t.Lane = w.nextLane
	}

	entry := w.ecs.Entry(w.ecs.Create(Train, Progress, Position))
	Train.SetValue(entry, t)

	var pr ProgressData
	if len(t.Route) >= 2 {
		pr = ProgressData{Current: t.Route[0], Next: t.Route[1]}
	}
	Progress.SetValue(entry, pr)

	var pos PositionData
	pos.Tangent = defaultTangent
	if n != nil && pr.Current != "" {
		if wp, ok := n.Waypoint(pr.Current); ok {
			pos.Pos = wp.Position
		}
	}
	Position.SetValue(entry, pos)

	w.byID[t.ID] = entry
	return entry
}

// Entry returns the arena entry for a train id.
func (w *World) Entry(id string) (*donburi.Entry, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// Remove deletes a train from the arena. Unknown ids are a no-op.
func (w *World) Remove(id string) {
	if e, ok := w.byID[id]; ok {
		w.ecs.Remove(e.Entity())
		delete(w.byID, id)
	}
}

// Len returns the number of trains in the arena.
func (w *World) Len() int {
	return len(w.byID)
}

// Each calls fn for every train in the arena.
func (w *World) Each(fn func(*donburi.Entry)) {
	trainQuery.Each(w.ecs, fn)
}

// SetPosition overwrites a train's world position, keeping its tangent.
// Used by entity-drag; the animator is suppressed for the dragged train on
// the same tick so this write wins.
func (w *World) SetPosition(id string, pos Vec2) {
	if e, ok := w.byID[id]; ok {
		p := Position.Get(e)
		p.Pos = pos
	}
}

// PositionOf returns a train's current world position and tangent.
func (w *World) PositionOf(id string) (PositionData, bool) {
	if e, ok := w.byID[id]; ok {
		return *Position.Get(e), true
	}
	return PositionData{}, false
}
