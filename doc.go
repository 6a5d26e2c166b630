// Package trackview is the interactive map engine behind a rail-traffic
// dashboard: a pan/zoom viewport with inertial panning and anchor-preserving
// zoom, a gesture state machine for mouse, wheel, and multi-touch input, and
// a path-following animator that moves trains along piecewise-linear tracks
// at constant arc-length progress.
//
// The engine owns geometry and interaction state only. Rendering of markers
// and legends, dashboard layout, and data services are collaborators that
// read the engine's outputs (viewport transform, per-train position and
// tangent) and feed it inputs (topology, train snapshots, raw input events).
//
// # Quick start
//
//	cfg := trackview.DefaultConfig()
//	engine := trackview.NewEngine(cfg)
//	engine.Network.AddWaypoint(trackview.Waypoint{ID: "ADI", Position: trackview.Vec2{X: 120, Y: 80}})
//	// ... register waypoints and tracks, spawn trains ...
//	engine.World.Spawn(trackview.TrainData{
//		ID: "T001", Speed: 120, Route: []string{"MSH", "ADI"}, Bound: true,
//	}, engine.Network)
//
// Each frame, feed input and advance time:
//
//	input := trackview.NewInputAdapter(engine.Gestures)
//	// in ebiten.Game.Update:
//	input.Update()
//	engine.Update(1000.0 / 60.0) // dt in milliseconds
//
// Rendering code then reads engine.Viewport.WorldToScreen and each train's
// Position component.
//
// # Coordinate spaces
//
// Screen coordinates are pixels with the origin at the view's top-left.
// World coordinates are arbitrary map units. The viewport transform is
// screen = world*Zoom + Pan; there is no rotation.
//
// # Concurrency
//
// The engine is single-goroutine and cooperative. Input callbacks and
// Engine.Update must run on the same goroutine; every operation is a
// bounded, synchronous computation. Malformed input (zero-length paths,
// unresolved topology, collapsed pinches) degrades to "no movement" —
// nothing in the engine panics or returns errors on the hot path.
package trackview
