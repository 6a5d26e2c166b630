package trackview

// Engine ties the viewport, gesture manager, animator, network, and train
// arena together behind one Update loop.
//
// Everything is single-goroutine and cooperative: pointer/touch callbacks run
// to completion before the next Update, and Update interleaves two time
// sources — viewport animations advance every call, while the path animator
// fires on a fixed interval accumulated from dt.
type Engine struct {
	Config   Config
	Viewport *Viewport
	Network  *Network
	World    *World
	Animator *Animator
	Gestures *GestureManager

	tickAcc float64
	debug   bool
	ticks   uint64
}

// NewEngine creates an engine with an empty network and arena.
func NewEngine(cfg Config) *Engine {
	network := NewNetwork()
	world := NewWorld()
	viewport := NewViewport(cfg)
	animator := NewAnimator(network, world, cfg)
	return &Engine{
		Config:   cfg,
		Viewport: viewport,
		Network:  network,
		World:    world,
		Animator: animator,
		Gestures: NewGestureManager(viewport, world, animator, network, cfg),
	}
}

// Update advances the engine by dt milliseconds: inertia and scroll
// animations first, then as many fixed animator ticks as the accumulated
// time covers. A train being dragged is suppressed for those ticks.
func (e *Engine) Update(dt float64) {
	e.Viewport.Update(dt)

	e.tickAcc += dt
	for e.tickAcc >= e.Config.TickIntervalMS {
		e.tickAcc -= e.Config.TickIntervalMS
		e.Animator.Tick(e.Gestures.DraggedEntity())
		e.ticks++
	}

	if e.debug {
		e.debugLog()
	}
}

// SetDebugMode enables per-update stats logging to stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}
