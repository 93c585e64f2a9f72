package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	MinPitch = float32(-89.0)
	MaxPitch = float32(89.0)
	MinFov   = float32(1.0)
	MaxFov   = float32(90.0)
)

var worldUp = mgl32.Vec3{0, 1, 0}

// CameraState is a first-person camera. Angles are in degrees.
type CameraState struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Fov         float32
	Aspect      float32
	Near        float32
	Far         float32
	Speed       float32
	Sensitivity float32
}

func NewCameraState() *CameraState {
	return &CameraState{
		Position:    mgl32.Vec3{0, 5, 0},
		Yaw:         -90,
		Pitch:       0,
		Fov:         90,
		Aspect:      16.0 / 9.0,
		Near:        0.01,
		Far:         100,
		Speed:       2.5,
		Sensitivity: 0.2,
	}
}

func (c *CameraState) GetForward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}.Normalize()
}

func (c *CameraState) GetRight() mgl32.Vec3 {
	return c.GetForward().Cross(worldUp).Normalize()
}

func (c *CameraState) GetUp() mgl32.Vec3 {
	return c.GetRight().Cross(c.GetForward()).Normalize()
}

// Move translates the camera along one of its local axes for dt seconds.
func (c *CameraState) Move(dir Direction, dt float32) {
	var axis mgl32.Vec3
	switch dir {
	case Forward:
		axis = c.GetForward()
	case Backward:
		axis = c.GetForward().Mul(-1)
	case Right:
		axis = c.GetRight()
	case Left:
		axis = c.GetRight().Mul(-1)
	case Up:
		axis = c.GetUp()
	case Down:
		axis = c.GetUp().Mul(-1)
	default:
		return
	}
	c.Position = c.Position.Add(axis.Mul(c.Speed * dt))
}

func (c *CameraState) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, MinPitch, MaxPitch)
}

func (c *CameraState) Zoom(dy float32) {
	c.Fov = mgl32.Clamp(c.Fov-dy, MinFov, MaxFov)
}

// SetAspect updates the aspect ratio; zero sizes (minimised window) are ignored.
func (c *CameraState) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *CameraState) GetViewMatrix() mgl32.Mat4 {
	eye := c.Position
	return mgl32.LookAtV(eye, eye.Add(c.GetForward()), c.GetUp())
}

// GetProjectionMatrix returns an OpenGL-style perspective matrix (clip z in [-1, 1]).
func (c *CameraState) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}
