package trackview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds the active scroll-to tweens for pan X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport owns the pan/zoom transform of a map view:
//
//	screen = world*Zoom + Pan
//
// Zoom always stays within [ZoomMin, ZoomMax]; every mutating method clamps.
// Mutate only through the methods — the fields are exported for reading by
// rendering code.
type Viewport struct {
	Zoom float64
	Pan  Vec2

	ZoomMin float64
	ZoomMax float64

	// Inertia state. Velocity is in screen px per millisecond.
	inertiaVel    Vec2
	inertiaActive bool
	decay         float64
	minSpeed      float64

	scrollTween *scrollAnim
}

// NewViewport creates a viewport at zoom 1, pan (0,0) with the given tuning.
func NewViewport(cfg Config) *Viewport {
	return &Viewport{
		Zoom:     1,
		ZoomMin:  cfg.ZoomMin,
		ZoomMax:  cfg.ZoomMax,
		decay:    cfg.InertiaDecay,
		minSpeed: cfg.InertiaMinSpeed,
	}
}

// WorldToScreen converts a world point to screen coordinates.
func (v *Viewport) WorldToScreen(p Vec2) Vec2 {
	return p.Mul(v.Zoom).Add(v.Pan)
}

// ScreenToWorld converts a screen point to world coordinates.
func (v *Viewport) ScreenToWorld(p Vec2) Vec2 {
	return p.Sub(v.Pan).Mul(1 / v.Zoom)
}

// ZoomAt applies a multiplicative zoom anchored at a screen point: the world
// coordinate under the anchor stays at the same screen position. The new zoom
// is clamped to [ZoomMin, ZoomMax] before the pan compensation, so repeated
// calls at a bound leave the transform unchanged.
func (v *Viewport) ZoomAt(anchorScreen Vec2, factor float64) {
	newZoom := clamp(v.Zoom*factor, v.ZoomMin, v.ZoomMax)
	// Convert with the pre-update transform, then re-derive pan so the
	// anchor's world point maps back onto the anchor.
	worldAnchor := v.ScreenToWorld(anchorScreen)
	v.Pan = anchorScreen.Sub(worldAnchor.Mul(newZoom))
	v.Zoom = newZoom
}

// PanBy translates the viewport by a screen-space delta. Zoom is unchanged.
func (v *Viewport) PanBy(delta Vec2) {
	v.Pan = v.Pan.Add(delta)
}

// Reset restores zoom 1 and pan (0,0) and cancels running animations.
func (v *Viewport) Reset() {
	v.CancelAnimations()
	v.Zoom = 1
	v.Pan = Vec2{}
}

// BeginInertia starts a decaying pan animation from the given release
// velocity (px/ms). Each Update tick moves the pan by velocity*dt and decays
// the velocity; the animation stops once speed drops below the configured
// minimum. Starting a new gesture cancels it immediately via
// CancelAnimations.
func (v *Viewport) BeginInertia(velocity Vec2) {
	v.scrollTween = nil
	v.inertiaVel = velocity
	v.inertiaActive = true
}

// ScrollTo animates the pan so that the given world point ends up at the
// given screen point after duration seconds. Used by "focus station" actions.
// Canceled by any new gesture.
func (v *Viewport) ScrollTo(world, screenTarget Vec2, duration float32, easeFn ease.TweenFunc) {
	v.inertiaActive = false
	target := screenTarget.Sub(world.Mul(v.Zoom))
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.Pan.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(v.Pan.Y), float32(target.Y), duration, easeFn),
	}
}

// CancelAnimations stops inertia and any scroll tween. Called at the start
// of every new gesture so stale animation state never fights live input.
func (v *Viewport) CancelAnimations() {
	v.inertiaActive = false
	v.inertiaVel = Vec2{}
	v.scrollTween = nil
}

// Animating reports whether an inertia or scroll animation is running.
func (v *Viewport) Animating() bool {
	return v.inertiaActive || v.scrollTween != nil
}

// Update advances inertia and scroll animations by dt milliseconds.
func (v *Viewport) Update(dt float64) {
	if v.inertiaActive {
		v.Pan = v.Pan.Add(v.inertiaVel.Mul(dt))
		v.inertiaVel = v.inertiaVel.Mul(v.decay)
		if v.inertiaVel.Len() < v.minSpeed {
			v.inertiaActive = false
			v.inertiaVel = Vec2{}
		}
	}

	if v.scrollTween != nil {
		dtSec := float32(dt / 1000)
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dtSec)
			v.Pan.X = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dtSec)
			v.Pan.Y = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}
}
