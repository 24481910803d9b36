package math

// NewCFrame returns a CFrame at position with no rotation.
func NewCFrame(position Vec3) CFrame {
	return CFrame{Position: position}
}

func NewCFrameIdentity() CFrame {
	return CFrame{}
}

func (c CFrame) WithPosition(position Vec3) CFrame {
	c.Position = position
	return c
}

func (c CFrame) WithRotation(rotation Vec3) CFrame {
	c.Rotation = rotation
	return c
}

// Translate returns a copy moved by translation.
func (c CFrame) Translate(translation Vec3) CFrame {
	c.Position = c.Position.Add(translation)
	return c
}

// Lerp blends position and Euler angles component-wise.
func (c CFrame) Lerp(other CFrame, t float32) CFrame {
	return CFrame{
		Position: c.Position.Lerp(other.Position, t),
		Rotation: c.Rotation.Lerp(other.Rotation, t),
	}
}

// Compare reports whether both position and rotation are within tolerance.
func (c CFrame) Compare(other CFrame, tolerance float32) bool {
	return c.Position.Compare(other.Position, tolerance) && c.Rotation.Compare(other.Rotation, tolerance)
}

// Matrix returns the rotation followed by the translation as a single matrix.
func (c CFrame) Matrix() Mat4 {
	rotation := NewMat4EulerXYZ(c.Rotation.X, c.Rotation.Y, c.Rotation.Z)
	return rotation.Mul(NewMat4Translation(c.Position))
}

// LookVector is the unit direction the frame faces.
func (c CFrame) LookVector() Vec3 {
	return c.Matrix().Forward()
}
