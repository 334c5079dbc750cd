// Package orbit implements the drag-to-rotate interaction for the photo wall.
//
// A [Controller] tracks a two-axis cumulative rotation (pitch around X, yaw
// around Y) and a mode flag choosing between the ambient auto-rotate
// animation and manual control. Its states are {Idle, Dragging} × {Auto,
// Manual}:
//
//	           BeginDrag / single TouchStart
//	   Idle ───────────────────────────────▶ Dragging ──┐ DragTo / TouchMove
//	    ▲                                        │ ◀──────┘ (angles += delta·k)
//	    └────────────── EndDrag / TouchEnd ──────┘
//
//	SetAutoRotate(true):  angles → (0,0), override cleared, ambient resumes
//	SetAutoRotate(false): angles freeze, manual control
//	ResetView():          angles → (0,0) over ResetDuration
//
// The controller never owns timers. Visual effects go through an injected
// [Renderer]; renderers that draw their own frames call [Controller.Advance]
// and read [Controller.Displayed] for the eased view during a reset.
//
// All methods are meant to be called from a single event-dispatch goroutine.
package orbit
