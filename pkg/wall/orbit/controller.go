package orbit

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSensitivity converts pointer pixels to degrees.
const DefaultSensitivity = 0.5

// DefaultResetDuration is how long ResetView animates back to the origin.
const DefaultResetDuration = time.Second

// Angles is a cumulative rotation in degrees. Values are never wrapped or clamped.
type Angles struct {
	X, Y float64
}

// Point is a pointer or touch position in screen pixels.
type Point struct {
	X, Y float64
}

// Phase is the interaction half of the controller state.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Mode is the rotation-source half of the controller state.
type Mode int

const (
	Auto Mode = iota
	Manual
)

func (m Mode) String() string {
	if m == Manual {
		return "manual"
	}
	return "auto"
}

// Renderer receives the visual side effects of state transitions.
type Renderer interface {
	// ApplyRotation sets the manual rotation of the whole collection,
	// animated over transition (zero means instantaneous).
	ApplyRotation(a Angles, transition time.Duration)

	// ClearOverride removes the manual rotation so only the ambient
	// animation (if running) is visible.
	ClearOverride()

	// SetAmbient pauses or resumes the auto-rotate animation.
	SetAmbient(running bool)
}

// NopRenderer discards all visual effects.
type NopRenderer struct{}

func (NopRenderer) ApplyRotation(Angles, time.Duration) {}
func (NopRenderer) ClearOverride()                      {}
func (NopRenderer) SetAmbient(bool)                     {}

// Controller is the orbit state machine.
type Controller struct {
	renderer      Renderer
	sensitivity   float64
	resetDuration time.Duration

	angles Angles
	phase  Phase
	mode   Mode
	last   Point

	// reset transition, nil when no transition is running
	tweenX, tweenY *gween.Tween
	shown          Angles
}

// Option configures a Controller.
type Option func(*Controller)

// WithSensitivity sets the degrees-per-pixel factor k.
func WithSensitivity(k float64) Option { return func(c *Controller) { c.sensitivity = k } }

// WithResetDuration sets the ResetView transition length.
func WithResetDuration(d time.Duration) Option { return func(c *Controller) { c.resetDuration = d } }

// New returns a controller at (0,0), idle, with auto-rotate on.
// A nil renderer is replaced with NopRenderer.
func New(r Renderer, opts ...Option) *Controller {
	if r == nil {
		r = NopRenderer{}
	}
	c := &Controller{
		renderer:      r,
		sensitivity:   DefaultSensitivity,
		resetDuration: DefaultResetDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Angles returns the logical rotation.
func (c *Controller) Angles() Angles { return c.angles }

// Phase returns Idle or Dragging.
func (c *Controller) Phase() Phase { return c.phase }

// Mode returns Auto or Manual.
func (c *Controller) Mode() Mode { return c.mode }

// Sensitivity returns k.
func (c *Controller) Sensitivity() float64 { return c.sensitivity }

// Transitioning reports whether a reset animation is still running.
func (c *Controller) Transitioning() bool { return c.tweenX != nil }

// BeginDrag records the pointer origin. Angles are unchanged.
func (c *Controller) BeginDrag(p Point) {
	c.stopTransition()
	c.phase = Dragging
	c.last = p
	c.renderer.SetAmbient(false)
}

// DragTo rotates by the delta from the last pointer position:
// yaw += dx·k, pitch -= dy·k. It is ignored unless a drag is active,
// and cancels a running reset transition.
func (c *Controller) DragTo(p Point) {
	if c.phase != Dragging {
		return
	}
	c.stopTransition()
	c.angles.Y += (p.X - c.last.X) * c.sensitivity
	c.angles.X -= (p.Y - c.last.Y) * c.sensitivity
	c.last = p
	c.renderer.ApplyRotation(c.angles, 0)
}

// EndDrag finishes the drag. In auto mode control passes back to the
// ambient animation; accumulated angles are kept either way.
func (c *Controller) EndDrag() {
	if c.phase != Dragging {
		return
	}
	c.phase = Idle
	if c.mode == Auto {
		c.renderer.SetAmbient(true)
	}
}

// TouchStart begins a drag only when exactly one touch point is active.
func (c *Controller) TouchStart(touches []Point) {
	if len(touches) != 1 {
		return
	}
	c.BeginDrag(touches[0])
}

// TouchMove continues a drag only when exactly one touch point is active.
// Multi-touch gestures leave the angles untouched.
func (c *Controller) TouchMove(touches []Point) {
	if len(touches) != 1 {
		return
	}
	c.DragTo(touches[0])
}

// TouchEnd ends the drag whenever a finger lifts. Points carry no
// identity, so a finger left on the screen never takes over the drag;
// a fresh TouchStart is needed to rotate again.
func (c *Controller) TouchEnd(remaining []Point) {
	c.EndDrag()
}

// SetAutoRotate switches modes. Enabling resets the angles to (0,0) and
// drops the manual override; disabling freezes the current angles.
func (c *Controller) SetAutoRotate(enabled bool) {
	if enabled {
		c.stopTransition()
		c.mode = Auto
		c.angles = Angles{}
		c.renderer.ClearOverride()
		c.renderer.SetAmbient(true)
		return
	}
	c.mode = Manual
	c.renderer.SetAmbient(false)
	c.renderer.ApplyRotation(c.angles, 0)
}

// ToggleAutoRotate flips the mode and returns the new one.
func (c *Controller) ToggleAutoRotate() Mode {
	c.SetAutoRotate(c.mode == Manual)
	return c.mode
}

// ResetView returns the angles to (0,0). The renderer is asked to animate
// over the reset duration; Displayed eases along when Advance is called.
func (c *Controller) ResetView() {
	from := c.Displayed()
	c.angles = Angles{}
	c.renderer.ApplyRotation(c.angles, c.resetDuration)

	if c.resetDuration <= 0 {
		c.stopTransition()
		return
	}
	secs := float32(c.resetDuration.Seconds())
	c.tweenX = gween.New(float32(from.X), 0, secs, ease.OutCubic)
	c.tweenY = gween.New(float32(from.Y), 0, secs, ease.OutCubic)
	c.shown = from
}

// Advance moves a running reset transition forward by dt. Once it
// finishes the transition is cleared, so later drags apply instantly.
func (c *Controller) Advance(dt time.Duration) {
	if c.tweenX == nil {
		return
	}
	d := float32(dt.Seconds())
	x, doneX := c.tweenX.Update(d)
	y, doneY := c.tweenY.Update(d)
	c.shown = Angles{X: float64(x), Y: float64(y)}
	if doneX && doneY {
		c.stopTransition()
	}
}

// Displayed returns the angles a self-drawing renderer should show: the
// eased value during a reset, the logical angles otherwise.
func (c *Controller) Displayed() Angles {
	if c.tweenX != nil {
		return c.shown
	}
	return c.angles
}

func (c *Controller) stopTransition() {
	c.tweenX, c.tweenY = nil, nil
	c.shown = Angles{}
}
