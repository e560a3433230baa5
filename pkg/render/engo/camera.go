// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// CameraSystem keeps the view centered on the player's ship
type CameraSystem struct {
	controls Controls
	dispatch func(engo.Message)

	// Target to follow
	target    physics.Vector2D
	targetSet bool

	// Camera properties
	zoom    float32
	minZoom float32
	maxZoom float32

	// Smooth following
	followSpeed float32
	smoothing   bool

	// Current camera state
	currentPos physics.Vector2D
	placed     bool
}

// NewCameraSystem creates a new camera system. controls may be nil, in which
// case the zoom is fixed.
func NewCameraSystem(controls Controls) *CameraSystem {
	return &CameraSystem{
		controls:    controls,
		dispatch:    dispatchMessage,
		zoom:        1.0,
		minZoom:     0.25,
		maxZoom:     3.0,
		followSpeed: 6.0,
		smoothing:   true,
	}
}

// dispatchMessage posts to engo's mailbox once the engine is running
func dispatchMessage(m engo.Message) {
	if engo.Mailbox != nil {
		engo.Mailbox.Dispatch(m)
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update updates the camera position and zoom
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}

	cs.applyCameraTransform()
}

// handleZoomInput processes zoom-related input
func (cs *CameraSystem) handleZoomInput() {
	if cs.controls == nil {
		return
	}

	if scroll := cs.controls.Scroll(); scroll != 0 {
		cs.SetZoom(cs.zoom * (1.0 + scroll*0.1))
	}
	if cs.controls.Down(ButtonZoomIn) {
		cs.SetZoom(cs.zoom * 1.02)
	}
	if cs.controls.Down(ButtonZoomOut) {
		cs.SetZoom(cs.zoom * 0.98)
	}
	if cs.controls.JustPressed(ButtonResetZoom) {
		cs.SetZoom(1.0)
	}
}

// updateCameraPosition moves the camera toward the target. The smoothed
// step never overshoots.
func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}

	step := float64(cs.followSpeed * dt)
	if step > 1 {
		step = 1
	}
	cs.currentPos = cs.currentPos.Add(cs.target.Sub(cs.currentPos).Scale(step))
}

// applyCameraTransform moves engo's camera to the current position. The
// camera's z axis is a distance, so zooming in shrinks it.
func (cs *CameraSystem) applyCameraTransform() {
	cs.dispatch(common.CameraMessage{Axis: common.XAxis, Value: float32(cs.currentPos.X)})
	cs.dispatch(common.CameraMessage{Axis: common.YAxis, Value: float32(cs.currentPos.Y)})
	cs.dispatch(common.CameraMessage{Axis: common.ZAxis, Value: 1 / cs.zoom})
}

// SetTarget sets the position for the camera to follow. The first target,
// and every target while smoothing is off, is jumped to directly.
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	cs.target = target
	cs.targetSet = true

	if !cs.smoothing || !cs.placed {
		cs.currentPos = target
		cs.placed = true
	}
}

// Snap jumps straight to the target, for example after a hyperjump
func (cs *CameraSystem) Snap(target physics.Vector2D) {
	cs.target = target
	cs.targetSet = true
	cs.currentPos = target
	cs.placed = true
}

// ClearTarget clears the camera target
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the camera zoom level
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// SetFollowSpeed sets the fraction of the remaining distance covered per
// second
func (cs *CameraSystem) SetFollowSpeed(speed float32) {
	cs.followSpeed = speed
}

// EnableSmoothing enables or disables camera smoothing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// GetCurrentPosition returns the current camera position
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// WorldToScreen converts world coordinates to window coordinates
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D) physics.Vector2D {
	rel := worldPos.Sub(cs.currentPos).Scale(float64(cs.zoom))
	return physics.Vector2D{
		X: rel.X + float64(engo.GameWidth())/2,
		Y: rel.Y + float64(engo.GameHeight())/2,
	}
}

// ScreenToWorld converts window coordinates to world coordinates
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector2D {
	rel := physics.Vector2D{
		X: screenPos.X - float64(engo.GameWidth())/2,
		Y: screenPos.Y - float64(engo.GameHeight())/2,
	}
	return rel.Scale(1 / float64(cs.zoom)).Add(cs.currentPos)
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (cs *CameraSystem) SetZoomLimits(min, max float32) {
	cs.minZoom = min
	cs.maxZoom = max
	cs.zoom = cs.clampZoom(cs.zoom)
}
