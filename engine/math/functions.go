package math

import (
	m "math"
)

const (
	K_PI float32 = 3.14159265358979323846
	// Half of K_PI, a quarter turn.
	K_HALF_PI float32 = 0.5 * K_PI
	// Degrees to radians.
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	// Smallest positive number where 1.0 + K_FLOAT_EPSILON != 1.0
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func NewVec3Zero() Vec3 {
	return Vec3{}
}

func NewVec3Up() Vec3 {
	return Vec3{Y: 1}
}

func NewVec3Down() Vec3 {
	return Vec3{Y: -1}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MulScalar scales every component by scalar.
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length is the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return ksqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length. The zero vector comes back
// unchanged.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.MulScalar(1 / length)
}

// Compare reports whether every component of v is within tolerance of other.
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	d := v.Sub(other)
	return kabs(d.X) <= tolerance && kabs(d.Y) <= tolerance && kabs(d.Z) <= tolerance
}

// Lerp returns the point a fraction t of the way from v to other.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.Add(other.Sub(v).MulScalar(t))
}

// Transform treats v as a point (w = 1) and multiplies it by mt.
func (v Vec3) Transform(mt Mat4) Vec3 {
	d := &mt.Data
	return Vec3{
		X: v.X*d[0] + v.Y*d[4] + v.Z*d[8] + d[12],
		Y: v.X*d[1] + v.Y*d[5] + v.Z*d[9] + d[13],
		Z: v.X*d[2] + v.Y*d[6] + v.Z*d[10] + d[14],
	}
}

func NewMat4Identity() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		out.Data[i*5] = 1
	}
	return out
}

// Mul returns mt * other.
func (mt Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out.Data[row*4+col] = sum
		}
	}
	return out
}

// Inverse returns the inverse of mt by Gauss-Jordan elimination with partial
// pivoting. A singular matrix yields the identity.
func (mt Mat4) Inverse() Mat4 {
	a := mt.Data
	inv := NewMat4Identity().Data

	for col := 0; col < 4; col++ {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if kabs(a[row*4+col]) > kabs(a[pivot*4+col]) {
				pivot = row
			}
		}
		if kabs(a[pivot*4+col]) < K_FLOAT_EPSILON {
			return NewMat4Identity()
		}
		if pivot != col {
			for k := 0; k < 4; k++ {
				a[col*4+k], a[pivot*4+k] = a[pivot*4+k], a[col*4+k]
				inv[col*4+k], inv[pivot*4+k] = inv[pivot*4+k], inv[col*4+k]
			}
		}

		scale := 1 / a[col*4+col]
		for k := 0; k < 4; k++ {
			a[col*4+k] *= scale
			inv[col*4+k] *= scale
		}

		for row := 0; row < 4; row++ {
			f := a[row*4+col]
			if row == col || f == 0 {
				continue
			}
			for k := 0; k < 4; k++ {
				a[row*4+k] -= f * a[col*4+k]
				inv[row*4+k] -= f * inv[col*4+k]
			}
		}
	}
	return Mat4{Data: inv}
}

func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

// rotation about a single axis; i and j are the indices of the two other axes
func newMat4Rotation(i, j int, angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c, s := kcos(angleRadians), ksin(angleRadians)
	out.Data[i*4+i] = c
	out.Data[i*4+j] = s
	out.Data[j*4+i] = -s
	out.Data[j*4+j] = c
	return out
}

func NewMat4EulerX(angleRadians float32) Mat4 {
	return newMat4Rotation(1, 2, angleRadians)
}

func NewMat4EulerY(angleRadians float32) Mat4 {
	return newMat4Rotation(2, 0, angleRadians)
}

func NewMat4EulerZ(angleRadians float32) Mat4 {
	return newMat4Rotation(0, 1, angleRadians)
}

// NewMat4EulerXYZ applies the X rotation first, then Y, then Z.
func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	return NewMat4EulerX(xRadians).Mul(NewMat4EulerY(yRadians)).Mul(NewMat4EulerZ(zRadians))
}

// Forward is the unit -Z axis of the matrix.
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalized()
}

// Right is the unit +X axis of the matrix.
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalized()
}

func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}
