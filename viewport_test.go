package trackview

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportDefaults(t *testing.T) {
	v := NewViewport(DefaultConfig())
	if v.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", v.Zoom)
	}
	if v.Pan != (Vec2{}) {
		t.Errorf("Pan = %v, want (0,0)", v.Pan)
	}
	if v.ZoomMin != 0.3 || v.ZoomMax != 3.0 {
		t.Errorf("bounds = [%f, %f], want [0.3, 3.0]", v.ZoomMin, v.ZoomMax)
	}
}

func TestCoordinateRoundtrip(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.Zoom = 1.7
	v.Pan = Vec2{42, -13}

	world := Vec2{123, -456}
	got := v.ScreenToWorld(v.WorldToScreen(world))
	if !approxVec(got, world, 1e-9) {
		t.Errorf("roundtrip: got %v, want %v", got, world)
	}
}

func TestZoomAt_Basic(t *testing.T) {
	// Scenario: viewport {zoom:1, pan:(0,0)}, ZoomAt((100,100), 1.2).
	v := NewViewport(DefaultConfig())
	anchor := Vec2{100, 100}
	worldUnderAnchor := v.ScreenToWorld(anchor)

	v.ZoomAt(anchor, 1.2)

	if !approxEqual(v.Zoom, 1.2, 1e-9) {
		t.Errorf("Zoom = %f, want 1.2", v.Zoom)
	}
	if got := v.WorldToScreen(worldUnderAnchor); !approxVec(got, anchor, 1e-6) {
		t.Errorf("anchor drifted to %v, want %v", got, anchor)
	}
}

func TestZoomAt_AnchorPreservedAcrossFactors(t *testing.T) {
	factors := []float64{1.1, 0.9, 1.25, 2.0, 0.5, 1.000001}
	for _, f := range factors {
		v := NewViewport(DefaultConfig())
		v.Zoom = 1.2
		v.Pan = Vec2{-30, 44}
		anchor := Vec2{250, 180}
		world := v.ScreenToWorld(anchor)

		v.ZoomAt(anchor, f)

		if got := v.WorldToScreen(world); !approxVec(got, anchor, 1e-6) {
			t.Errorf("factor %f: anchor drifted to %v", f, got)
		}
	}
}

func TestZoomAt_ClampedSequences(t *testing.T) {
	v := NewViewport(DefaultConfig())
	anchor := Vec2{100, 100}
	for i := 0; i < 50; i++ {
		v.ZoomAt(anchor, 1.3)
		if v.Zoom > v.ZoomMax {
			t.Fatalf("zoom %f exceeded max %f", v.Zoom, v.ZoomMax)
		}
	}
	if !approxEqual(v.Zoom, v.ZoomMax, 1e-9) {
		t.Errorf("zoom = %f, want pinned at max %f", v.Zoom, v.ZoomMax)
	}
	for i := 0; i < 80; i++ {
		v.ZoomAt(anchor, 0.8)
		if v.Zoom < v.ZoomMin {
			t.Fatalf("zoom %f went below min %f", v.Zoom, v.ZoomMin)
		}
	}
	if !approxEqual(v.Zoom, v.ZoomMin, 1e-9) {
		t.Errorf("zoom = %f, want pinned at min %f", v.Zoom, v.ZoomMin)
	}
}

func TestZoomAt_AnchorStableAtBounds(t *testing.T) {
	// Even when the factor is fully clamped away, the anchor must not move.
	v := NewViewport(DefaultConfig())
	anchor := Vec2{80, 60}
	for i := 0; i < 20; i++ {
		v.ZoomAt(anchor, 2.0)
	}
	world := v.ScreenToWorld(anchor)
	v.ZoomAt(anchor, 2.0) // no-op zoom, already at max
	if got := v.WorldToScreen(world); !approxVec(got, anchor, 1e-6) {
		t.Errorf("anchor drifted at zoom bound: %v", got)
	}
}

func TestPanBy(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.PanBy(Vec2{10, -5})
	v.PanBy(Vec2{2, 3})
	if v.Pan != (Vec2{12, -2}) {
		t.Errorf("Pan = %v, want (12,-2)", v.Pan)
	}
	if v.Zoom != 1.0 {
		t.Errorf("PanBy changed zoom to %f", v.Zoom)
	}
}

func TestReset(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.ZoomAt(Vec2{50, 50}, 2.0)
	v.PanBy(Vec2{100, 100})
	v.BeginInertia(Vec2{1, 0})

	v.Reset()

	if v.Zoom != 1.0 || v.Pan != (Vec2{}) {
		t.Errorf("after reset: zoom %f pan %v", v.Zoom, v.Pan)
	}
	if v.Animating() {
		t.Error("reset left an animation running")
	}
}

func TestInertia_DecaysAndStops(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.BeginInertia(Vec2{0.5, 0}) // px/ms

	// First tick of 16ms moves pan by 8px, then decays velocity.
	v.Update(16)
	if !approxEqual(v.Pan.X, 8, 1e-9) {
		t.Errorf("after first tick: Pan.X = %f, want 8", v.Pan.X)
	}

	for i := 0; i < 1000 && v.Animating(); i++ {
		v.Update(16)
	}
	if v.Animating() {
		t.Fatal("inertia never stopped")
	}

	// Once stopped, further updates leave the pan alone.
	pan := v.Pan
	v.Update(16)
	if v.Pan != pan {
		t.Errorf("pan moved after inertia stopped: %v -> %v", pan, v.Pan)
	}
}

func TestInertia_BelowThresholdStopsImmediately(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.BeginInertia(Vec2{0.005, 0}) // below InertiaMinSpeed after one decay
	v.Update(16)
	if v.Animating() {
		t.Error("near-zero inertia still animating after one tick")
	}
}

func TestCancelAnimations(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.BeginInertia(Vec2{1, 1})
	v.CancelAnimations()
	if v.Animating() {
		t.Error("inertia survived cancel")
	}
	pan := v.Pan
	v.Update(16)
	if v.Pan != pan {
		t.Error("canceled inertia still moved the pan")
	}
}

func TestScrollTo_CentersWorldPoint(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.Zoom = 2.0
	world := Vec2{100, 50}
	screenTarget := Vec2{400, 300}

	v.ScrollTo(world, screenTarget, 1.0, ease.Linear)
	for i := 0; i < 80; i++ { // 80 * 16ms > 1s
		v.Update(16)
	}

	if got := v.WorldToScreen(world); !approxVec(got, screenTarget, 0.5) {
		t.Errorf("world point at %v, want ~%v", got, screenTarget)
	}
	if v.Animating() {
		t.Error("scroll tween not cleared after completion")
	}
}

func TestScrollTo_CanceledByInertia(t *testing.T) {
	v := NewViewport(DefaultConfig())
	v.ScrollTo(Vec2{100, 100}, Vec2{0, 0}, 5.0, ease.Linear)
	v.BeginInertia(Vec2{1, 0})
	v.Update(16)
	// Only the inertia should have moved the pan.
	if !approxEqual(v.Pan.X, 16, 1e-9) || !approxEqual(v.Pan.Y, 0, 1e-9) {
		t.Errorf("Pan = %v, want (16,0)", v.Pan)
	}
}
