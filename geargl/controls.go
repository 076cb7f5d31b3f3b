package geargl

import "math"

const (
	// DefaultStep is the camera rotation per key press.
	DefaultStep = 5 * math.Pi / 180
	// DefaultDragScale converts pointer pixels to radians.
	DefaultDragScale = 1.0 / 200
)

// Controller turns input into camera state between frames.
//
// It does not depend on any input system; the host forwards key presses and
// pointer positions.
type Controller struct {
	State     CameraState
	Wireframe bool

	Step      Scalar
	DragScale Scalar

	dragging bool
	lastX    Scalar
	lastY    Scalar
}

// NewController starts from the given pitch and yaw with the default step and
// drag scale.
func NewController(pitch, yaw Scalar) *Controller {
	return &Controller{
		State:     CameraState{Pitch: pitch, Yaw: yaw},
		Step:      DefaultStep,
		DragScale: DefaultDragScale,
	}
}

func (c *Controller) Rotate(deltaYaw, deltaPitch Scalar) {
	c.State.Yaw += deltaYaw
	c.State.Pitch += deltaPitch
}

// StepYaw rotates by n key steps about the vertical axis. Left is positive.
func (c *Controller) StepYaw(n int) { c.Rotate(Scalar(n)*c.step(), 0) }

// StepPitch rotates by n key steps about the horizontal axis. Up is positive.
func (c *Controller) StepPitch(n int) { c.Rotate(0, Scalar(n)*c.step()) }

func (c *Controller) ToggleWireframe() { c.Wireframe = !c.Wireframe }

// Mode returns the render mode selected by the wireframe toggle.
func (c *Controller) Mode() RenderMode {
	if c.Wireframe {
		return RenderWireframe
	}
	return RenderSolidFlat
}

// PointerDown anchors a drag at (x, y).
func (c *Controller) PointerDown(x, y Scalar) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// PointerMove rotates by the distance moved since the anchor and moves the
// anchor. Moves without a held pointer are ignored.
func (c *Controller) PointerMove(x, y Scalar) {
	if !c.dragging {
		return
	}
	s := c.DragScale
	if s == 0 {
		s = DefaultDragScale
	}
	c.Rotate((x-c.lastX)*s, (y-c.lastY)*s)
	c.lastX, c.lastY = x, y
}

func (c *Controller) PointerUp() { c.dragging = false }

// Dragging reports whether a pointer drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) step() Scalar {
	if c.Step == 0 {
		return DefaultStep
	}
	return c.Step
}
