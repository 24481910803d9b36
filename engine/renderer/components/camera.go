package components

import (
	"github.com/spaghettifunk/motion/engine/math"
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

/** @brief The field of view, in degrees, of a freshly reset camera. */
const DEFAULT_FIELD_OF_VIEW float32 = 70

/**
 * @brief Represents the viewpoint a scene is observed from. Cameras are
 * created and managed by the camera system and animated by scenes.
 */
type Camera struct {
	/**
	 * @brief Where the camera sits and where it points.
	 * NOTE: Do not set this directly, use SetCFrame() instead
	 * so the view matrix is recalculated when needed.
	 */
	CFrame math.CFrame
	/** @brief Vertical field of view in degrees. */
	FieldOfView float32
	/** @brief The point the camera is focused on. */
	Focus math.Vec3
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.CFrame = math.NewCFrameIdentity()
	c.FieldOfView = DEFAULT_FIELD_OF_VIEW
	c.Focus = math.NewVec3Zero()
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetCFrame() math.CFrame {
	return c.CFrame
}

func (c *Camera) SetCFrame(cframe math.CFrame) {
	c.CFrame = cframe
	c.IsDirty = true
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.CFrame.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.CFrame.Position = position
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.CFrame.Rotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.CFrame.Rotation = rotation
	c.IsDirty = true
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = c.CFrame.Matrix().Inverse()
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Forward() math.Vec3 {
	return c.GetView().Forward()
}

func (c *Camera) Right() math.Vec3 {
	return c.GetView().Right()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.CFrame.Position = c.CFrame.Position.Add(direction.MulScalar(amount))
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Forward(), -amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Right(), -amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Down(), amount)
}

func (c *Camera) Yaw(amount float32) {
	c.CFrame.Rotation.Y += amount
	c.IsDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.CFrame.Rotation.X += amount

	// Clamp to avoid Gimbal lock.
	limit := float32(1.55334306) // 89 degrees
	c.CFrame.Rotation.X = math.Clamp(c.CFrame.Rotation.X, -limit, limit)

	c.IsDirty = true
}
