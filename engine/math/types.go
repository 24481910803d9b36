package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Mat4 is a 4x4 matrix stored row by row.
type Mat4 struct {
	Data [16]float32
}

// CFrame is where an object sits in the world: a position and an orientation
// as Euler angles in radians, applied X then Y then Z. There is no scale and
// no parent transform.
type CFrame struct {
	Position Vec3
	Rotation Vec3
}
